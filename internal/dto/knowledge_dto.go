package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateKnowledgeRequest struct {
	AgentId uuid.UUID `json:"agent_id" validate:"required"`
	Title   string    `json:"title" validate:"required,min=1,max=255"`
	Content string    `json:"content" validate:"required"`
	Source  string    `json:"source"`
}

type CreateKnowledgeResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowKnowledgeResponse struct {
	Id        uuid.UUID  `json:"id"`
	AgentId   uuid.UUID  `json:"agent_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Source    string     `json:"source"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type SearchKnowledgeRequest struct {
	AgentId uuid.UUID `json:"agent_id" validate:"required"`
	Query   string    `json:"query" validate:"required"`
	Limit   int       `json:"limit" validate:"omitempty,min=1,max=20"`
}

type KnowledgeMatchResponse struct {
	KnowledgeId uuid.UUID `json:"knowledge_id"`
	Document    string    `json:"document"`
	Similarity  float64   `json:"similarity"`
}
