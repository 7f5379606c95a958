package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Agent struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Persona   string         `gorm:"type:text;not null"`
	Tone      string         `gorm:"type:varchar(100)"`
	Stance    string         `gorm:"type:varchar(100)"`
	Traits    datatypes.JSON `gorm:"type:jsonb"`
	AvatarURL *string        `gorm:"type:text"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Agent) TableName() string {
	return "agents"
}

type PersonaChange struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgentId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	SessionId     *uuid.UUID `gorm:"type:uuid;index"`
	PersonaBefore string     `gorm:"type:text;not null"`
	PersonaAfter  string     `gorm:"type:text;not null"`
	Reason        string     `gorm:"type:text"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
}

func (PersonaChange) TableName() string {
	return "persona_changes"
}
