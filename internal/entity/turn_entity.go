package entity

import (
	"time"

	"github.com/google/uuid"
)

type TurnStatus string

const (
	TurnStatusPending   TurnStatus = "pending"
	TurnStatusRunning   TurnStatus = "running"
	TurnStatusCompleted TurnStatus = "completed"
	TurnStatusFailed    TurnStatus = "failed"
)

type Turn struct {
	Id         uuid.UUID
	SessionId  uuid.UUID
	TurnNumber int
	Phase      string
	PhaseLabel string
	Status     TurnStatus
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}

type Statement struct {
	Id         uuid.UUID
	TurnId     uuid.UUID
	SessionId  uuid.UUID
	AgentId    uuid.UUID
	Content    string
	Confidence *int
	CharCount  int
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}
