package unitofwork

import (
	"context"

	"jukugi-bokujo-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	AgentRepository() contract.AgentRepository
	TopicRepository() contract.TopicRepository
	SessionRepository() contract.SessionRepository
	TurnRepository() contract.TurnRepository
	StatementRepository() contract.StatementRepository
	FeedbackRepository() contract.FeedbackRepository
	KnowledgeRepository() contract.KnowledgeRepository
	KnowledgeEmbeddingRepository() contract.KnowledgeEmbeddingRepository
}
