package contract

import (
	"context"

	"jukugi-bokujo-be/internal/entity"
	"jukugi-bokujo-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TurnRepository interface {
	Create(ctx context.Context, turn *entity.Turn) error
	Update(ctx context.Context, turn *entity.Turn) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Turn, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Turn, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type StatementRepository interface {
	Create(ctx context.Context, statement *entity.Statement) error
	CreateBulk(ctx context.Context, statements []*entity.Statement) error
	Update(ctx context.Context, statement *entity.Statement) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Statement, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Statement, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
