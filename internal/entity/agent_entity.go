package entity

import (
	"time"

	"github.com/google/uuid"
)

type Agent struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	Persona   string
	Tone      string
	Stance    string
	Traits    map[string]interface{}
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

type PersonaChange struct {
	Id            uuid.UUID
	AgentId       uuid.UUID
	SessionId     *uuid.UUID
	PersonaBefore string
	PersonaAfter  string
	Reason        string
	CreatedAt     time.Time
}
