package mapper

import (
	"time"

	"jukugi-bokujo-be/internal/entity"
	"jukugi-bokujo-be/internal/model"

	"gorm.io/gorm"
)

type StatementMapper struct{}

func NewStatementMapper() *StatementMapper {
	return &StatementMapper{}
}

func (m *StatementMapper) ToEntity(s *model.Statement) *entity.Statement {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Statement{
		Id:         s.Id,
		TurnId:     s.TurnId,
		SessionId:  s.SessionId,
		AgentId:    s.AgentId,
		Content:    s.Content,
		Confidence: s.Confidence,
		CharCount:  s.CharCount,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  s.DeletedAt.Valid,
	}
}

func (m *StatementMapper) ToModel(s *entity.Statement) *model.Statement {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Statement{
		Id:         s.Id,
		TurnId:     s.TurnId,
		SessionId:  s.SessionId,
		AgentId:    s.AgentId,
		Content:    s.Content,
		Confidence: s.Confidence,
		CharCount:  s.CharCount,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
	}
}

func (m *StatementMapper) ToEntities(statements []*model.Statement) []*entity.Statement {
	entities := make([]*entity.Statement, len(statements))
	for i, s := range statements {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
