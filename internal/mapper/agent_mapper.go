package mapper

import (
	"encoding/json"
	"time"

	"jukugi-bokujo-be/internal/entity"
	"jukugi-bokujo-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AgentMapper struct{}

func NewAgentMapper() *AgentMapper {
	return &AgentMapper{}
}

func (m *AgentMapper) ToEntity(a *model.Agent) *entity.Agent {
	if a == nil {
		return nil
	}

	var deletedAt *time.Time
	if a.DeletedAt.Valid {
		t := a.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	var traits map[string]interface{}
	if len(a.Traits) > 0 {
		// Malformed JSONB yields nil traits rather than an error.
		_ = json.Unmarshal(a.Traits, &traits)
	}

	return &entity.Agent{
		Id:        a.Id,
		UserId:    a.UserId,
		Name:      a.Name,
		Persona:   a.Persona,
		Tone:      a.Tone,
		Stance:    a.Stance,
		Traits:    traits,
		AvatarURL: a.AvatarURL,
		CreatedAt: a.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: a.DeletedAt.Valid,
	}
}

func (m *AgentMapper) ToModel(a *entity.Agent) *model.Agent {
	if a == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if a.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *a.DeletedAt, Valid: true}
	} else if a.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	var traits datatypes.JSON
	if a.Traits != nil {
		data, err := json.Marshal(a.Traits)
		if err == nil {
			traits = datatypes.JSON(data)
		}
	}

	return &model.Agent{
		Id:        a.Id,
		UserId:    a.UserId,
		Name:      a.Name,
		Persona:   a.Persona,
		Tone:      a.Tone,
		Stance:    a.Stance,
		Traits:    traits,
		AvatarURL: a.AvatarURL,
		CreatedAt: a.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *AgentMapper) ToEntities(agents []*model.Agent) []*entity.Agent {
	entities := make([]*entity.Agent, len(agents))
	for i, a := range agents {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

func (m *AgentMapper) PersonaChangeToEntity(p *model.PersonaChange) *entity.PersonaChange {
	if p == nil {
		return nil
	}
	return &entity.PersonaChange{
		Id:            p.Id,
		AgentId:       p.AgentId,
		SessionId:     p.SessionId,
		PersonaBefore: p.PersonaBefore,
		PersonaAfter:  p.PersonaAfter,
		Reason:        p.Reason,
		CreatedAt:     p.CreatedAt,
	}
}

func (m *AgentMapper) PersonaChangeToModel(p *entity.PersonaChange) *model.PersonaChange {
	if p == nil {
		return nil
	}
	return &model.PersonaChange{
		Id:            p.Id,
		AgentId:       p.AgentId,
		SessionId:     p.SessionId,
		PersonaBefore: p.PersonaBefore,
		PersonaAfter:  p.PersonaAfter,
		Reason:        p.Reason,
		CreatedAt:     p.CreatedAt,
	}
}

func (m *AgentMapper) PersonaChangesToEntities(changes []*model.PersonaChange) []*entity.PersonaChange {
	entities := make([]*entity.PersonaChange, len(changes))
	for i, p := range changes {
		entities[i] = m.PersonaChangeToEntity(p)
	}
	return entities
}
