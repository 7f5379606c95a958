package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Turn struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId  uuid.UUID      `gorm:"type:uuid;not null;index:idx_session_turn,unique"`
	TurnNumber int            `gorm:"not null;index:idx_session_turn,unique"`
	Phase      string         `gorm:"type:varchar(50);not null"`
	PhaseLabel string         `gorm:"type:varchar(255)"`
	Status     string         `gorm:"type:varchar(50);not null;default:'pending'"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Turn) TableName() string {
	return "turns"
}

type Statement struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TurnId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	SessionId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	AgentId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Content    string         `gorm:"type:text;not null"`
	Confidence *int           `gorm:""`
	CharCount  int            `gorm:"not null;default:0"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Statement) TableName() string {
	return "statements"
}
