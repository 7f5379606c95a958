// FILE: internal/service/knowledge_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"jukugi-bokujo-be/internal/dto"
	"jukugi-bokujo-be/internal/entity"
	"jukugi-bokujo-be/internal/repository/specification"
	"jukugi-bokujo-be/internal/repository/unitofwork"
	"jukugi-bokujo-be/pkg/embedding"

	"github.com/google/uuid"
)

type IKnowledgeService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateKnowledgeRequest) (*dto.CreateKnowledgeResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowKnowledgeResponse, error)
	ListByAgent(ctx context.Context, userId uuid.UUID, agentId uuid.UUID) ([]*dto.ShowKnowledgeResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Search(ctx context.Context, userId uuid.UUID, req *dto.SearchKnowledgeRequest) ([]*dto.KnowledgeMatchResponse, error)
}

type knowledgeService struct {
	uowFactory        unitofwork.RepositoryFactory
	publisherService  IPublisherService
	embeddingProvider embedding.EmbeddingProvider
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	embeddingProvider embedding.EmbeddingProvider,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory:        uowFactory,
		publisherService:  publisherService,
		embeddingProvider: embeddingProvider,
	}
}

func (s *knowledgeService) ownedAgent(ctx context.Context, uow unitofwork.UnitOfWork, userId, agentId uuid.UUID) (*entity.Agent, error) {
	agent, err := uow.AgentRepository().FindOne(ctx,
		specification.ByID{ID: agentId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, errors.New("agent not found")
	}
	return agent, nil
}

func (s *knowledgeService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateKnowledgeRequest) (*dto.CreateKnowledgeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedAgent(ctx, uow, userId, req.AgentId); err != nil {
		return nil, err
	}

	knowledge := entity.Knowledge{
		Id:        uuid.New(),
		AgentId:   req.AgentId,
		Title:     req.Title,
		Content:   req.Content,
		Source:    req.Source,
		CreatedAt: time.Now(),
	}

	if err := uow.KnowledgeRepository().Create(ctx, &knowledge); err != nil {
		return nil, err
	}

	// Embedding happens asynchronously in the consumer worker.
	msgPayload := dto.PublishEmbedKnowledgeMessage{KnowledgeId: knowledge.Id}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	return &dto.CreateKnowledgeResponse{Id: knowledge.Id}, nil
}

func (s *knowledgeService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowKnowledgeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	knowledge, err := uow.KnowledgeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if knowledge == nil {
		return nil, nil
	}

	if _, err := s.ownedAgent(ctx, uow, userId, knowledge.AgentId); err != nil {
		return nil, err
	}

	return knowledgeToResponse(knowledge), nil
}

func (s *knowledgeService) ListByAgent(ctx context.Context, userId uuid.UUID, agentId uuid.UUID) ([]*dto.ShowKnowledgeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedAgent(ctx, uow, userId, agentId); err != nil {
		return nil, err
	}

	knowledges, err := uow.KnowledgeRepository().FindAll(ctx,
		specification.ByAgentID{AgentID: agentId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ShowKnowledgeResponse, len(knowledges))
	for i, k := range knowledges {
		res[i] = knowledgeToResponse(k)
	}
	return res, nil
}

func (s *knowledgeService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	knowledge, err := uow.KnowledgeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if knowledge == nil {
		return errors.New("knowledge not found")
	}

	if _, err := s.ownedAgent(ctx, uow, userId, knowledge.AgentId); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.KnowledgeEmbeddingRepository().DeleteByKnowledgeId(ctx, id); err != nil {
		return err
	}
	if err := uow.KnowledgeRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *knowledgeService) Search(ctx context.Context, userId uuid.UUID, req *dto.SearchKnowledgeRequest) ([]*dto.KnowledgeMatchResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedAgent(ctx, uow, userId, req.AgentId); err != nil {
		return nil, err
	}

	res, err := s.embeddingProvider.Generate(req.Query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}

	scored, err := uow.KnowledgeEmbeddingRepository().SearchSimilar(ctx, res.Embedding.Values, limit, req.AgentId, 0.3)
	if err != nil {
		return nil, err
	}

	matches := make([]*dto.KnowledgeMatchResponse, len(scored))
	for i, sc := range scored {
		matches[i] = &dto.KnowledgeMatchResponse{
			KnowledgeId: sc.Embedding.KnowledgeId,
			Document:    sc.Embedding.Document,
			Similarity:  sc.Similarity,
		}
	}
	return matches, nil
}

func knowledgeToResponse(k *entity.Knowledge) *dto.ShowKnowledgeResponse {
	return &dto.ShowKnowledgeResponse{
		Id:        k.Id,
		AgentId:   k.AgentId,
		Title:     k.Title,
		Content:   k.Content,
		Source:    k.Source,
		CreatedAt: k.CreatedAt,
		UpdatedAt: k.UpdatedAt,
	}
}
