package entity

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "pending"
	SessionStatusRunning   SessionStatus = "running"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusFailed    SessionStatus = "failed"
)

type Session struct {
	Id          uuid.UUID
	TopicId     uuid.UUID
	UserId      uuid.UUID
	Mode        string
	Status      SessionStatus
	CurrentTurn int
	MaxTurns    int
	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}

type SessionParticipant struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	AgentId   uuid.UUID
	JoinOrder int
	CreatedAt time.Time
}
