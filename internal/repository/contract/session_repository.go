package contract

import (
	"context"

	"jukugi-bokujo-be/internal/entity"
	"jukugi-bokujo-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	Update(ctx context.Context, session *entity.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	AddParticipant(ctx context.Context, participant *entity.SessionParticipant) error
	RemoveParticipant(ctx context.Context, sessionId, agentId uuid.UUID) error
	FindParticipants(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionParticipant, error)
}
