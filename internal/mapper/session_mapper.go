package mapper

import (
	"time"

	"jukugi-bokujo-be/internal/entity"
	"jukugi-bokujo-be/internal/model"

	"gorm.io/gorm"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.Session) *entity.Session {
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

	return &entity.Session{
		Id:          s.Id,
		TopicId:     s.TopicId,
		UserId:      s.UserId,
		Mode:        s.Mode,
		Status:      entity.SessionStatus(s.Status),
		CurrentTurn: s.CurrentTurn,
		MaxTurns:    s.MaxTurns,
		StartedAt:   s.StartedAt,
		CompletedAt: s.CompletedAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   s.DeletedAt.Valid,
	}
}

func (m *SessionMapper) ToModel(s *entity.Session) *model.Session {
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

	return &model.Session{
		Id:          s.Id,
		TopicId:     s.TopicId,
		UserId:      s.UserId,
		Mode:        s.Mode,
		Status:      string(s.Status),
		CurrentTurn: s.CurrentTurn,
		MaxTurns:    s.MaxTurns,
		StartedAt:   s.StartedAt,
		CompletedAt: s.CompletedAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *SessionMapper) ToEntities(sessions []*model.Session) []*entity.Session {
	entities := make([]*entity.Session, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *SessionMapper) ParticipantToEntity(p *model.SessionParticipant) *entity.SessionParticipant {
	if p == nil {
		return nil
	}
	return &entity.SessionParticipant{
		Id:        p.Id,
		SessionId: p.SessionId,
		AgentId:   p.AgentId,
		JoinOrder: p.JoinOrder,
		CreatedAt: p.CreatedAt,
	}
}

func (m *SessionMapper) ParticipantToModel(p *entity.SessionParticipant) *model.SessionParticipant {
	if p == nil {
		return nil
	}
	return &model.SessionParticipant{
		Id:        p.Id,
		SessionId: p.SessionId,
		AgentId:   p.AgentId,
		JoinOrder: p.JoinOrder,
		CreatedAt: p.CreatedAt,
	}
}

func (m *SessionMapper) ParticipantsToEntities(participants []*model.SessionParticipant) []*entity.SessionParticipant {
	entities := make([]*entity.SessionParticipant, len(participants))
	for i, p := range participants {
		entities[i] = m.ParticipantToEntity(p)
	}
	return entities
}
