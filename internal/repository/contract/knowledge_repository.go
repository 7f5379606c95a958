package contract

import (
	"context"

	"jukugi-bokujo-be/internal/entity"
	"jukugi-bokujo-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredKnowledgeEmbedding wraps a knowledge chunk with its similarity score.
type ScoredKnowledgeEmbedding struct {
	Embedding  *entity.KnowledgeEmbedding
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type KnowledgeRepository interface {
	Create(ctx context.Context, knowledge *entity.Knowledge) error
	Update(ctx context.Context, knowledge *entity.Knowledge) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Knowledge, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Knowledge, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type KnowledgeEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.KnowledgeEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*entity.KnowledgeEmbedding) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByKnowledgeId(ctx context.Context, knowledgeId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SearchSimilar returns the agent's chunks closest to the query embedding,
	// best match first, filtered by a cosine-similarity threshold.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, agentId uuid.UUID, threshold float64) ([]*ScoredKnowledgeEmbedding, error)
}
