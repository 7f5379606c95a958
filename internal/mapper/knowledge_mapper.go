package mapper

import (
	"time"

	"jukugi-bokujo-be/internal/entity"
	"jukugi-bokujo-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) ToEntity(k *model.Knowledge) *entity.Knowledge {
	if k == nil {
		return nil
	}

	var deletedAt *time.Time
	if k.DeletedAt.Valid {
		t := k.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !k.UpdatedAt.IsZero() {
		t := k.UpdatedAt
		updatedAt = &t
	}

	return &entity.Knowledge{
		Id:        k.Id,
		AgentId:   k.AgentId,
		Title:     k.Title,
		Content:   k.Content,
		Source:    k.Source,
		CreatedAt: k.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: k.DeletedAt.Valid,
	}
}

func (m *KnowledgeMapper) ToModel(k *entity.Knowledge) *model.Knowledge {
	if k == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if k.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *k.DeletedAt, Valid: true}
	} else if k.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if k.UpdatedAt != nil {
		updatedAt = *k.UpdatedAt
	}

	return &model.Knowledge{
		Id:        k.Id,
		AgentId:   k.AgentId,
		Title:     k.Title,
		Content:   k.Content,
		Source:    k.Source,
		CreatedAt: k.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *KnowledgeMapper) ToEntities(knowledges []*model.Knowledge) []*entity.Knowledge {
	entities := make([]*entity.Knowledge, len(knowledges))
	for i, k := range knowledges {
		entities[i] = m.ToEntity(k)
	}
	return entities
}

func (m *KnowledgeMapper) EmbeddingToEntity(e *model.KnowledgeEmbedding) *entity.KnowledgeEmbedding {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.KnowledgeEmbedding{
		Id:             e.Id,
		KnowledgeId:    e.KnowledgeId,
		AgentId:        e.AgentId,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      e.DeletedAt.Valid,
	}
}

func (m *KnowledgeMapper) EmbeddingToModel(e *entity.KnowledgeEmbedding) *model.KnowledgeEmbedding {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.KnowledgeEmbedding{
		Id:             e.Id,
		KnowledgeId:    e.KnowledgeId,
		AgentId:        e.AgentId,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *KnowledgeMapper) EmbeddingsToEntities(embeddings []*model.KnowledgeEmbedding) []*entity.KnowledgeEmbedding {
	entities := make([]*entity.KnowledgeEmbedding, len(embeddings))
	for i, e := range embeddings {
		entities[i] = m.EmbeddingToEntity(e)
	}
	return entities
}

func (m *KnowledgeMapper) EmbeddingsToModels(embeddings []*entity.KnowledgeEmbedding) []*model.KnowledgeEmbedding {
	models := make([]*model.KnowledgeEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = m.EmbeddingToModel(e)
	}
	return models
}
