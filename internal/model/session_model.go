package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Session struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TopicId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Mode        string         `gorm:"type:varchar(50);not null;default:'double_diamond'"`
	Status      string         `gorm:"type:varchar(50);not null;default:'pending'"`
	CurrentTurn int            `gorm:"not null;default:0"`
	MaxTurns    int            `gorm:"not null"`
	StartedAt   *time.Time     `gorm:""`
	CompletedAt *time.Time     `gorm:""`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Session) TableName() string {
	return "sessions"
}

type SessionParticipant struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId uuid.UUID `gorm:"type:uuid;not null;index:idx_session_agent,unique"`
	AgentId   uuid.UUID `gorm:"type:uuid;not null;index:idx_session_agent,unique"`
	JoinOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (SessionParticipant) TableName() string {
	return "session_participants"
}
