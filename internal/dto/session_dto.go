package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	TopicId  uuid.UUID   `json:"topic_id" validate:"required"`
	Mode     string      `json:"mode"`
	MaxTurns int         `json:"max_turns" validate:"omitempty,min=1,max=50"`
	AgentIds []uuid.UUID `json:"agent_ids" validate:"required,min=2,max=6"`
}

type CreateSessionResponse struct {
	Id       uuid.UUID `json:"id"`
	Mode     string    `json:"mode"`
	MaxTurns int       `json:"max_turns"`
}

type StartSessionResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type SessionListItemResponse struct {
	Id          uuid.UUID  `json:"id"`
	TopicId     uuid.UUID  `json:"topic_id"`
	TopicTitle  string     `json:"topic_title"`
	Mode        string     `json:"mode"`
	Status      string     `json:"status"`
	CurrentTurn int        `json:"current_turn"`
	MaxTurns    int        `json:"max_turns"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type StatementResponse struct {
	Id         uuid.UUID `json:"id"`
	AgentId    uuid.UUID `json:"agent_id"`
	AgentName  string    `json:"agent_name"`
	Content    string    `json:"content"`
	Confidence *int      `json:"confidence,omitempty"`
	CharCount  int       `json:"char_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type TurnResponse struct {
	Id         uuid.UUID           `json:"id"`
	TurnNumber int                 `json:"turn_number"`
	Phase      string              `json:"phase"`
	PhaseLabel string              `json:"phase_label"`
	Status     string              `json:"status"`
	Statements []StatementResponse `json:"statements"`
}

type SessionParticipantResponse struct {
	AgentId   uuid.UUID `json:"agent_id"`
	AgentName string    `json:"agent_name"`
	JoinOrder int       `json:"join_order"`
}

type ShowSessionResponse struct {
	Id           uuid.UUID                    `json:"id"`
	TopicId      uuid.UUID                    `json:"topic_id"`
	TopicTitle   string                       `json:"topic_title"`
	Mode         string                       `json:"mode"`
	Status       string                       `json:"status"`
	CurrentTurn  int                          `json:"current_turn"`
	MaxTurns     int                          `json:"max_turns"`
	StartedAt    *time.Time                   `json:"started_at,omitempty"`
	CompletedAt  *time.Time                   `json:"completed_at,omitempty"`
	Participants []SessionParticipantResponse `json:"participants"`
	Turns        []TurnResponse               `json:"turns"`
}
