package entity

import (
	"time"

	"github.com/google/uuid"
)

type Knowledge struct {
	Id        uuid.UUID
	AgentId   uuid.UUID
	Title     string
	Content   string
	Source    string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

type KnowledgeEmbedding struct {
	Id             uuid.UUID
	KnowledgeId    uuid.UUID
	AgentId        uuid.UUID
	Document       string
	EmbeddingValue []float32
	ChunkIndex     int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}

// KnowledgeMatch is a retrieval hit used during prompt assembly.
type KnowledgeMatch struct {
	KnowledgeId uuid.UUID
	Document    string
	Score       float64
}
