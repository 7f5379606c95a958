// FILE: internal/service/agent_service.go
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

type IAgentService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateAgentRequest) (*dto.CreateAgentResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowAgentResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowAgentResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateAgentRequest) (*dto.UpdateAgentResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	PersonaHistory(ctx context.Context, userId uuid.UUID, agentId uuid.UUID) ([]*dto.PersonaChangeResponse, error)
}

type agentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAgentService(uowFactory unitofwork.RepositoryFactory) IAgentService {
	return &agentService{
		uowFactory: uowFactory,
	}
}

func (s *agentService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateAgentRequest) (*dto.CreateAgentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	agent := entity.Agent{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      req.Name,
		Persona:   req.Persona,
		Tone:      req.Tone,
		Stance:    req.Stance,
		Traits:    req.Traits,
		CreatedAt: time.Now(),
	}

	if err := uow.AgentRepository().Create(ctx, &agent); err != nil {
		return nil, err
	}

	return &dto.CreateAgentResponse{Id: agent.Id}, nil
}

func (s *agentService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowAgentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	agent, err := uow.AgentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, nil
	}

	return agentToResponse(agent), nil
}

func (s *agentService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowAgentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	agents, err := uow.AgentRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ShowAgentResponse, len(agents))
	for i, a := range agents {
		res[i] = agentToResponse(a)
	}
	return res, nil
}

func (s *agentService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateAgentRequest) (*dto.UpdateAgentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	agent, err := uow.AgentRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, errors.New("agent not found")
	}

	personaChanged := agent.Persona != req.Persona
	personaBefore := agent.Persona

	agent.Name = req.Name
	agent.Persona = req.Persona
	agent.Tone = req.Tone
	agent.Stance = req.Stance
	agent.Traits = req.Traits
	now := time.Now()
	agent.UpdatedAt = &now

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.AgentRepository().Update(ctx, agent); err != nil {
		return nil, err
	}

	// Persona edits are tracked so the frontend can show how a character drifted.
	if personaChanged {
		change := &entity.PersonaChange{
			Id:            uuid.New(),
			AgentId:       agent.Id,
			PersonaBefore: personaBefore,
			PersonaAfter:  req.Persona,
			Reason:        "manual_edit",
			CreatedAt:     time.Now(),
		}
		if err := uow.AgentRepository().CreatePersonaChange(ctx, change); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.UpdateAgentResponse{Id: agent.Id}, nil
}

func (s *agentService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	agent, err := uow.AgentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if agent == nil {
		return errors.New("agent not found")
	}

	return uow.AgentRepository().Delete(ctx, id)
}

func (s *agentService) PersonaHistory(ctx context.Context, userId uuid.UUID, agentId uuid.UUID) ([]*dto.PersonaChangeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
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

	changes, err := uow.AgentRepository().FindPersonaChanges(ctx,
		specification.ByAgentID{AgentID: agentId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PersonaChangeResponse, len(changes))
	for i, c := range changes {
		res[i] = &dto.PersonaChangeResponse{
			Id:            c.Id,
			SessionId:     c.SessionId,
			PersonaBefore: c.PersonaBefore,
			PersonaAfter:  c.PersonaAfter,
			Reason:        c.Reason,
			CreatedAt:     c.CreatedAt,
		}
	}
	return res, nil
}

func agentToResponse(a *entity.Agent) *dto.ShowAgentResponse {
	return &dto.ShowAgentResponse{
		Id:        a.Id,
		Name:      a.Name,
		Persona:   a.Persona,
		Tone:      a.Tone,
		Stance:    a.Stance,
		Traits:    a.Traits,
		AvatarURL: a.AvatarURL,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
