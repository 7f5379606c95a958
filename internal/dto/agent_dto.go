package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAgentRequest struct {
	Name    string                 `json:"name" validate:"required,min=1,max=255"`
	Persona string                 `json:"persona" validate:"required"`
	Tone    string                 `json:"tone"`
	Stance  string                 `json:"stance"`
	Traits  map[string]interface{} `json:"traits"`
}

type CreateAgentResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateAgentRequest struct {
	Id      uuid.UUID
	Name    string                 `json:"name" validate:"required,min=1,max=255"`
	Persona string                 `json:"persona" validate:"required"`
	Tone    string                 `json:"tone"`
	Stance  string                 `json:"stance"`
	Traits  map[string]interface{} `json:"traits"`
}

type UpdateAgentResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowAgentResponse struct {
	Id        uuid.UUID              `json:"id"`
	Name      string                 `json:"name"`
	Persona   string                 `json:"persona"`
	Tone      string                 `json:"tone"`
	Stance    string                 `json:"stance"`
	Traits    map[string]interface{} `json:"traits"`
	AvatarURL *string                `json:"avatar_url,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt *time.Time             `json:"updated_at"`
}

type PersonaChangeResponse struct {
	Id            uuid.UUID  `json:"id"`
	SessionId     *uuid.UUID `json:"session_id,omitempty"`
	PersonaBefore string     `json:"persona_before"`
	PersonaAfter  string     `json:"persona_after"`
	Reason        string     `json:"reason"`
	CreatedAt     time.Time  `json:"created_at"`
}
