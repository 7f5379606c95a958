package mapper

import (
	"time"

	"jukugi-bokujo-be/internal/entity"
	"jukugi-bokujo-be/internal/model"

	"gorm.io/gorm"
)

type TurnMapper struct{}

func NewTurnMapper() *TurnMapper {
	return &TurnMapper{}
}

func (m *TurnMapper) ToEntity(t *model.Turn) *entity.Turn {
	if t == nil {
		return nil
	}

	var deletedAt *time.Time
	if t.DeletedAt.Valid {
		tt := t.DeletedAt.Time
		deletedAt = &tt
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		tt := t.UpdatedAt
		updatedAt = &tt
	}

	return &entity.Turn{
		Id:         t.Id,
		SessionId:  t.SessionId,
		TurnNumber: t.TurnNumber,
		Phase:      t.Phase,
		PhaseLabel: t.PhaseLabel,
		Status:     entity.TurnStatus(t.Status),
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  t.DeletedAt.Valid,
	}
}

func (m *TurnMapper) ToModel(t *entity.Turn) *model.Turn {
	if t == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if t.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *t.DeletedAt, Valid: true}
	} else if t.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.Turn{
		Id:         t.Id,
		SessionId:  t.SessionId,
		TurnNumber: t.TurnNumber,
		Phase:      t.Phase,
		PhaseLabel: t.PhaseLabel,
		Status:     string(t.Status),
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
	}
}

func (m *TurnMapper) ToEntities(turns []*model.Turn) []*entity.Turn {
	entities := make([]*entity.Turn, len(turns))
	for i, t := range turns {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
