// FILE: internal/service/session_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jukugi-bokujo-be/internal/dto"
	"jukugi-bokujo-be/internal/entity"
	"jukugi-bokujo-be/internal/repository/memory"
	"jukugi-bokujo-be/internal/repository/specification"
	"jukugi-bokujo-be/internal/repository/unitofwork"
	"jukugi-bokujo-be/pkg/events"
	pktNats "jukugi-bokujo-be/pkg/nats"
	"jukugi-bokujo-be/pkg/sessionmode"
	"jukugi-bokujo-be/pkg/store"

	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	Start(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.StartSessionResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowSessionResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.SessionListItemResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type sessionService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	liveSessions     *memory.LiveSessionRepository
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	liveSessions *memory.LiveSessionRepository,
) ISessionService {
	return &sessionService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		liveSessions:     liveSessions,
	}
}

func (s *sessionService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	topic, err := uow.TopicRepository().FindOne(ctx,
		specification.ByID{ID: req.TopicId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, errors.New("topic not found")
	}

	// Unknown mode falls back to the default strategy rather than failing.
	strategy := sessionmode.GetModeStrategy(req.Mode)

	maxTurns := req.MaxTurns
	if maxTurns <= 0 {
		maxTurns = strategy.DefaultMaxTurns()
	}

	agents, err := uow.AgentRepository().FindAll(ctx,
		specification.ByIDs{IDs: req.AgentIds},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if len(agents) != len(req.AgentIds) {
		return nil, errors.New("one or more agents not found")
	}

	session := entity.Session{
		Id:        uuid.New(),
		TopicId:   topic.Id,
		UserId:    userId,
		Mode:      strategy.ModeID(),
		Status:    entity.SessionStatusPending,
		MaxTurns:  maxTurns,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.SessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	for i, agentId := range req.AgentIds {
		participant := &entity.SessionParticipant{
			Id:        uuid.New(),
			SessionId: session.Id,
			AgentId:   agentId,
			JoinOrder: i,
			CreatedAt: time.Now(),
		}
		if err := uow.SessionRepository().AddParticipant(ctx, participant); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{
		Id:       session.Id,
		Mode:     session.Mode,
		MaxTurns: session.MaxTurns,
	}, nil
}

func (s *sessionService) Start(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.StartSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errors.New("session not found")
	}
	if session.Status != entity.SessionStatusPending {
		return nil, errors.New("session already started")
	}

	now := time.Now()
	session.Status = entity.SessionStatusRunning
	session.StartedAt = &now
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	s.liveSessions.Save(&store.LiveSession{
		ID:          session.Id.String(),
		UserID:      userId.String(),
		Mode:        session.Mode,
		Status:      store.LiveStatusRunning,
		CurrentTurn: 0,
		MaxTurns:    session.MaxTurns,
	})

	// Hand off to the turn worker; the worker chains subsequent turns itself.
	msgPayload := dto.ProcessTurnMessage{SessionId: session.Id}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "SESSION_STARTED",
			Data: map[string]interface{}{
				"session_id": session.Id,
				"user_id":    userId,
				"mode":       session.Mode,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish SESSION_STARTED event: %v\n", err)
		}
	}

	return &dto.StartSessionResponse{
		Id:     session.Id,
		Status: string(session.Status),
	}, nil
}

func (s *sessionService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	topic, err := uow.TopicRepository().FindOne(ctx, specification.ByID{ID: session.TopicId})
	if err != nil {
		return nil, err
	}
	topicTitle := ""
	if topic != nil {
		topicTitle = topic.Title
	}

	participants, err := uow.SessionRepository().FindParticipants(ctx,
		specification.BySessionID{SessionID: session.Id},
	)
	if err != nil {
		return nil, err
	}

	agentNames := make(map[uuid.UUID]string)
	participantRes := make([]dto.SessionParticipantResponse, len(participants))
	for i, p := range participants {
		agent, err := uow.AgentRepository().FindOne(ctx, specification.ByID{ID: p.AgentId})
		if err != nil {
			return nil, err
		}
		name := ""
		if agent != nil {
			name = agent.Name
		}
		agentNames[p.AgentId] = name
		participantRes[i] = dto.SessionParticipantResponse{
			AgentId:   p.AgentId,
			AgentName: name,
			JoinOrder: p.JoinOrder,
		}
	}

	turns, err := uow.TurnRepository().FindAll(ctx,
		specification.BySessionID{SessionID: session.Id},
		specification.OrderBy{Field: "turn_number"},
	)
	if err != nil {
		return nil, err
	}

	turnRes := make([]dto.TurnResponse, len(turns))
	for i, t := range turns {
		statements, err := uow.StatementRepository().FindAll(ctx,
			specification.ByTurnID{TurnID: t.Id},
			specification.OrderBy{Field: "created_at"},
		)
		if err != nil {
			return nil, err
		}

		stmtRes := make([]dto.StatementResponse, len(statements))
		for j, st := range statements {
			stmtRes[j] = dto.StatementResponse{
				Id:         st.Id,
				AgentId:    st.AgentId,
				AgentName:  agentNames[st.AgentId],
				Content:    st.Content,
				Confidence: st.Confidence,
				CharCount:  st.CharCount,
				CreatedAt:  st.CreatedAt,
			}
		}

		turnRes[i] = dto.TurnResponse{
			Id:         t.Id,
			TurnNumber: t.TurnNumber,
			Phase:      t.Phase,
			PhaseLabel: t.PhaseLabel,
			Status:     string(t.Status),
			Statements: stmtRes,
		}
	}

	return &dto.ShowSessionResponse{
		Id:           session.Id,
		TopicId:      session.TopicId,
		TopicTitle:   topicTitle,
		Mode:         session.Mode,
		Status:       string(session.Status),
		CurrentTurn:  session.CurrentTurn,
		MaxTurns:     session.MaxTurns,
		StartedAt:    session.StartedAt,
		CompletedAt:  session.CompletedAt,
		Participants: participantRes,
		Turns:        turnRes,
	}, nil
}

func (s *sessionService) List(ctx context.Context, userId uuid.UUID) ([]*dto.SessionListItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.SessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SessionListItemResponse, len(sessions))
	for i, sess := range sessions {
		topicTitle := ""
		topic, err := uow.TopicRepository().FindOne(ctx, specification.ByID{ID: sess.TopicId})
		if err != nil {
			return nil, err
		}
		if topic != nil {
			topicTitle = topic.Title
		}

		res[i] = &dto.SessionListItemResponse{
			Id:          sess.Id,
			TopicId:     sess.TopicId,
			TopicTitle:  topicTitle,
			Mode:        sess.Mode,
			Status:      string(sess.Status),
			CurrentTurn: sess.CurrentTurn,
			MaxTurns:    sess.MaxTurns,
			CreatedAt:   sess.CreatedAt,
			CompletedAt: sess.CompletedAt,
		}
	}
	return res, nil
}

func (s *sessionService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return errors.New("session not found")
	}
	if session.Status == entity.SessionStatusRunning {
		return errors.New("cannot delete a running session")
	}

	s.liveSessions.Delete(id.String())
	return uow.SessionRepository().Delete(ctx, id)
}
