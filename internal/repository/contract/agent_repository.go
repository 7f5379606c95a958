package contract

import (
	"context"

	"jukugi-bokujo-be/internal/entity"
	"jukugi-bokujo-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AgentRepository interface {
	Create(ctx context.Context, agent *entity.Agent) error
	Update(ctx context.Context, agent *entity.Agent) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Agent, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Agent, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreatePersonaChange(ctx context.Context, change *entity.PersonaChange) error
	FindPersonaChanges(ctx context.Context, specs ...specification.Specification) ([]*entity.PersonaChange, error)
}
