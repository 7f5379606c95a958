package implementation

import (
	"context"
	"errors"

	"jukugi-bokujo-be/internal/entity"
	"jukugi-bokujo-be/internal/mapper"
	"jukugi-bokujo-be/internal/model"
	"jukugi-bokujo-be/internal/repository/contract"
	"jukugi-bokujo-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatementRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StatementMapper
}

func NewStatementRepository(db *gorm.DB) contract.StatementRepository {
	return &StatementRepositoryImpl{
		db:     db,
		mapper: mapper.NewStatementMapper(),
	}
}

func (r *StatementRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StatementRepositoryImpl) Create(ctx context.Context, statement *entity.Statement) error {
	m := r.mapper.ToModel(statement)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*statement = *r.mapper.ToEntity(m)
	return nil
}

func (r *StatementRepositoryImpl) CreateBulk(ctx context.Context, statements []*entity.Statement) error {
	if len(statements) == 0 {
		return nil
	}
	models := make([]*model.Statement, 0, len(statements))
	for _, s := range statements {
		models = append(models, r.mapper.ToModel(s))
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*statements[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *StatementRepositoryImpl) Update(ctx context.Context, statement *entity.Statement) error {
	m := r.mapper.ToModel(statement)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*statement = *r.mapper.ToEntity(m)
	return nil
}

func (r *StatementRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Statement{}, id).Error
}

func (r *StatementRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Statement, error) {
	var m model.Statement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *StatementRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Statement, error) {
	var models []*model.Statement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *StatementRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Statement{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
