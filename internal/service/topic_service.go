// FILE: internal/service/topic_service.go
package service

import (
	"context"
	"errors"
	"time"

	"jukugi-bokujo-be/internal/dto"
	"jukugi-bokujo-be/internal/entity"
	"jukugi-bokujo-be/internal/repository/specification"
	"jukugi-bokujo-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITopicService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTopicRequest) (*dto.CreateTopicResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowTopicResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowTopicResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTopicRequest) (*dto.UpdateTopicResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type topicService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTopicService(uowFactory unitofwork.RepositoryFactory) ITopicService {
	return &topicService{
		uowFactory: uowFactory,
	}
}

func (s *topicService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTopicRequest) (*dto.CreateTopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	topic := entity.Topic{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := uow.TopicRepository().Create(ctx, &topic); err != nil {
		return nil, err
	}

	return &dto.CreateTopicResponse{Id: topic.Id}, nil
}

func (s *topicService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowTopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	topic, err := uow.TopicRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, nil
	}

	return topicToResponse(topic), nil
}

func (s *topicService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowTopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	topics, err := uow.TopicRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ShowTopicResponse, len(topics))
	for i, t := range topics {
		res[i] = topicToResponse(t)
	}
	return res, nil
}

func (s *topicService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTopicRequest) (*dto.UpdateTopicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	topic, err := uow.TopicRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, errors.New("topic not found")
	}

	topic.Title = req.Title
	topic.Description = req.Description
	now := time.Now()
	topic.UpdatedAt = &now

	if err := uow.TopicRepository().Update(ctx, topic); err != nil {
		return nil, err
	}

	return &dto.UpdateTopicResponse{Id: topic.Id}, nil
}

func (s *topicService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	topic, err := uow.TopicRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if topic == nil {
		return errors.New("topic not found")
	}

	return uow.TopicRepository().Delete(ctx, id)
}

func topicToResponse(t *entity.Topic) *dto.ShowTopicResponse {
	return &dto.ShowTopicResponse{
		Id:          t.Id,
		Title:       t.Title,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
