// FILE: internal/service/feedback_service.go
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

type IFeedbackService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFeedbackRequest) (*dto.CreateFeedbackResponse, error)
	ListByStatement(ctx context.Context, userId uuid.UUID, statementId uuid.UUID) ([]*dto.FeedbackResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type feedbackService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFeedbackService(uowFactory unitofwork.RepositoryFactory) IFeedbackService {
	return &feedbackService{
		uowFactory: uowFactory,
	}
}

func (s *feedbackService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFeedbackRequest) (*dto.CreateFeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	statement, err := uow.StatementRepository().FindOne(ctx, specification.ByID{ID: req.StatementId})
	if err != nil {
		return nil, err
	}
	if statement == nil {
		return nil, errors.New("statement not found")
	}

	// The statement must belong to one of the caller's sessions.
	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: statement.SessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errors.New("statement not found")
	}

	feedback := entity.Feedback{
		Id:          uuid.New(),
		StatementId: req.StatementId,
		UserId:      userId,
		Kind:        entity.FeedbackKind(req.Kind),
		Comment:     req.Comment,
		CreatedAt:   time.Now(),
	}

	if err := uow.FeedbackRepository().Create(ctx, &feedback); err != nil {
		return nil, err
	}

	return &dto.CreateFeedbackResponse{Id: feedback.Id}, nil
}

func (s *feedbackService) ListByStatement(ctx context.Context, userId uuid.UUID, statementId uuid.UUID) ([]*dto.FeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feedbacks, err := uow.FeedbackRepository().FindAll(ctx,
		specification.ByStatementID{StatementID: statementId},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.FeedbackResponse, len(feedbacks))
	for i, f := range feedbacks {
		res[i] = &dto.FeedbackResponse{
			Id:          f.Id,
			StatementId: f.StatementId,
			Kind:        string(f.Kind),
			Comment:     f.Comment,
			CreatedAt:   f.CreatedAt,
		}
	}
	return res, nil
}

func (s *feedbackService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feedback, err := uow.FeedbackRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if feedback == nil {
		return errors.New("feedback not found")
	}

	return uow.FeedbackRepository().Delete(ctx, id)
}
