package dto

import "github.com/google/uuid"

// PublishEmbedKnowledgeMessage is the payload for the knowledge embedding worker.
type PublishEmbedKnowledgeMessage struct {
	KnowledgeId uuid.UUID `json:"knowledge_id"`
}

// ProcessTurnMessage is the payload for the discussion turn worker.
type ProcessTurnMessage struct {
	SessionId uuid.UUID `json:"session_id"`
}
