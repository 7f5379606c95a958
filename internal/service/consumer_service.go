// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"jukugi-bokujo-be/internal/dto"
	"jukugi-bokujo-be/internal/entity"
	"jukugi-bokujo-be/internal/repository/specification"
	"jukugi-bokujo-be/internal/repository/unitofwork"
	"jukugi-bokujo-be/pkg/embedding"
	"jukugi-bokujo-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedKnowledgeMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing embeddings for KnowledgeId: %s", payload.KnowledgeId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	knowledge, err := uow.KnowledgeRepository().FindOne(ctx, specification.ByID{ID: payload.KnowledgeId})
	if err != nil {
		log.Printf("[ERROR] Failed to get knowledge %s: %v", payload.KnowledgeId, err)
		msg.Nack()
		return
	}
	if knowledge == nil {
		log.Printf("[ERROR] Knowledge not found: %s", payload.KnowledgeId)
		msg.Ack() // Deleted meanwhile? Ack.
		return
	}

	content := fmt.Sprintf(`Title: %s
Source: %s

%s`,
		knowledge.Title,
		knowledge.Source,
		knowledge.Content,
	)

	// ChunkSize 1500 chars with 200 overlap keeps each chunk well inside
	// the embedding model's context.
	chunks := utils.SplitText(content, 1500, 200)
	log.Printf("[INFO] Content split into %d chunks", len(chunks))

	var newEmbeddings []*entity.KnowledgeEmbedding

	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			log.Printf("[ERROR] Failed to generate embedding for chunk %d of knowledge %s: %v", i, payload.KnowledgeId, err)
			msg.Nack()
			return
		}

		newEmbeddings = append(newEmbeddings, &entity.KnowledgeEmbedding{
			Id:             uuid.New(),
			KnowledgeId:    knowledge.Id,
			AgentId:        knowledge.AgentId,
			Document:       chunk,
			EmbeddingValue: res.Embedding.Values,
			ChunkIndex:     i,
			CreatedAt:      time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.KnowledgeEmbeddingRepository().DeleteByKnowledgeId(ctx, knowledge.Id); err != nil {
		log.Printf("[ERROR] Failed to delete old embeddings: %v", err)
		msg.Nack()
		return
	}

	if len(newEmbeddings) > 0 {
		if err := uow.KnowledgeEmbeddingRepository().CreateBulk(ctx, newEmbeddings); err != nil {
			log.Printf("[ERROR] Failed to create bulk embeddings: %v", err)
			msg.Nack()
			return
		}
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Knowledge processed: %d chunks for KnowledgeId: %s", len(newEmbeddings), payload.KnowledgeId)
	msg.Ack()
}
