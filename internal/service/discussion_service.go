// FILE: internal/service/discussion_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"time"

	"jukugi-bokujo-be/internal/dto"
	"jukugi-bokujo-be/internal/entity"
	"jukugi-bokujo-be/internal/repository/memory"
	"jukugi-bokujo-be/internal/repository/specification"
	"jukugi-bokujo-be/internal/repository/unitofwork"
	"jukugi-bokujo-be/internal/websocket"
	"jukugi-bokujo-be/pkg/embedding"
	"jukugi-bokujo-be/pkg/events"
	"jukugi-bokujo-be/pkg/llm"
	pktNats "jukugi-bokujo-be/pkg/nats"
	"jukugi-bokujo-be/pkg/prompt"
	"jukugi-bokujo-be/pkg/sessionmode"
	"jukugi-bokujo-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// confidencePattern matches the self-assessment marker agents append in
// convergence-oriented modes, e.g. 【確信度: 7/10】.
var confidencePattern = regexp.MustCompile(`【確信度[:：]\s*(\d+)\s*/\s*10】`)

type IDiscussionService interface {
	Consume(ctx context.Context) error
}

type discussionService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	llmProvider       llm.LLMProvider
	embeddingProvider embedding.EmbeddingProvider
	composer          *prompt.Composer
	hub               *websocket.Hub
	eventPublisher    *pktNats.Publisher
	liveSessions      *memory.LiveSessionRepository
}

func NewDiscussionService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	embeddingProvider embedding.EmbeddingProvider,
	hub *websocket.Hub,
	eventPublisher *pktNats.Publisher,
	liveSessions *memory.LiveSessionRepository,
) IDiscussionService {
	return &discussionService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		llmProvider:       llmProvider,
		embeddingProvider: embeddingProvider,
		composer:          prompt.NewComposer(),
		hub:               hub,
		eventPublisher:    eventPublisher,
		liveSessions:      liveSessions,
	}
}

func (ds *discussionService) Consume(ctx context.Context) error {
	messages, err := ds.pubSub.Subscribe(ctx, ds.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ds.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (ds *discussionService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ProcessTurnMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal turn message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := ds.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: payload.SessionId})
	if err != nil {
		log.Printf("[ERROR] Failed to get session %s: %v", payload.SessionId, err)
		msg.Nack()
		return
	}
	if session == nil {
		log.Printf("[ERROR] Session not found: %s", payload.SessionId)
		msg.Ack()
		return
	}
	if session.Status != entity.SessionStatusRunning {
		log.Printf("[INFO] Session %s is %s, skipping turn", session.Id, session.Status)
		msg.Ack()
		return
	}

	turnNumber := session.CurrentTurn + 1
	if turnNumber > session.MaxTurns {
		log.Printf("[INFO] Session %s already at max turns", session.Id)
		msg.Ack()
		return
	}

	if err := ds.runTurn(ctx, uow, session, turnNumber); err != nil {
		log.Printf("[ERROR] Turn %d of session %s failed: %v", turnNumber, session.Id, err)
		ds.failSession(ctx, uow, session)
		msg.Ack() // the session is marked failed, retrying won't help
		return
	}

	// Chain the next turn unless the session just finished.
	if turnNumber < session.MaxTurns {
		next, err := json.Marshal(dto.ProcessTurnMessage{SessionId: session.Id})
		if err == nil {
			nextMsg := message.NewMessage(msg.UUID+"-next", next)
			if err := ds.pubSub.Publish(ds.topicName, nextMsg); err != nil {
				log.Printf("[ERROR] Failed to enqueue next turn for session %s: %v", session.Id, err)
			}
		}
	}

	msg.Ack()
}

func (ds *discussionService) runTurn(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.Session, turnNumber int) error {
	strategy := sessionmode.GetModeStrategy(session.Mode)
	phaseCfg := strategy.GetPhaseConfig(turnNumber, session.MaxTurns)

	topic, err := uow.TopicRepository().FindOne(ctx, specification.ByID{ID: session.TopicId})
	if err != nil {
		return err
	}
	if topic == nil {
		return fmt.Errorf("topic %s not found", session.TopicId)
	}

	participants, err := uow.SessionRepository().FindParticipants(ctx,
		specification.BySessionID{SessionID: session.Id},
	)
	if err != nil {
		return err
	}
	if len(participants) == 0 {
		return fmt.Errorf("session %s has no participants", session.Id)
	}

	agents := make([]*entity.Agent, 0, len(participants))
	for _, p := range participants {
		agent, err := uow.AgentRepository().FindOne(ctx, specification.ByID{ID: p.AgentId})
		if err != nil {
			return err
		}
		if agent == nil {
			return fmt.Errorf("agent %s not found", p.AgentId)
		}
		agents = append(agents, agent)
	}

	history, err := ds.loadHistory(ctx, uow, session.Id, agents)
	if err != nil {
		return err
	}

	turn := &entity.Turn{
		Id:         uuid.New(),
		SessionId:  session.Id,
		TurnNumber: turnNumber,
		Phase:      phaseCfg.Phase,
		PhaseLabel: phaseCfg.Label,
		Status:     entity.TurnStatusRunning,
		CreatedAt:  time.Now(),
	}
	if err := uow.TurnRepository().Create(ctx, turn); err != nil {
		return err
	}

	ds.hub.Send(session.UserId, websocket.SessionEvent{
		Type:      "turn_started",
		SessionId: session.Id.String(),
		Data: map[string]interface{}{
			"turn_number": turnNumber,
			"phase":       phaseCfg.Phase,
			"phase_label": phaseCfg.Label,
		},
	})

	statements := make([]*entity.Statement, 0, len(agents))
	for _, agent := range agents {
		content, err := ds.generateStatement(ctx, strategy, topic, agent, history, turnNumber, session.MaxTurns)
		if err != nil {
			return fmt.Errorf("agent %s generation failed: %w", agent.Id, err)
		}

		confidence := parseConfidence(content)
		statement := &entity.Statement{
			Id:         uuid.New(),
			TurnId:     turn.Id,
			SessionId:  session.Id,
			AgentId:    agent.Id,
			Content:    content,
			Confidence: confidence,
			CharCount:  len([]rune(content)),
			CreatedAt:  time.Now(),
		}
		statements = append(statements, statement)

		// Later speakers in the same turn see the earlier statements.
		history = append(history, prompt.HistoryItem{
			AgentName:  agent.Name,
			PhaseLabel: phaseCfg.Label,
			Content:    content,
		})

		ds.hub.Send(session.UserId, websocket.SessionEvent{
			Type:      "statement",
			SessionId: session.Id.String(),
			Data: map[string]interface{}{
				"turn_number": turnNumber,
				"agent_id":    agent.Id,
				"agent_name":  agent.Name,
				"content":     content,
				"confidence":  confidence,
			},
		})
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.StatementRepository().CreateBulk(ctx, statements); err != nil {
		return err
	}

	turn.Status = entity.TurnStatusCompleted
	if err := uow.TurnRepository().Update(ctx, turn); err != nil {
		return err
	}

	session.CurrentTurn = turnNumber
	finished := turnNumber >= session.MaxTurns
	if finished {
		now := time.Now()
		session.Status = entity.SessionStatusCompleted
		session.CompletedAt = &now
	}
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	ds.liveSessions.Save(&store.LiveSession{
		ID:           session.Id.String(),
		UserID:       session.UserId.String(),
		Mode:         session.Mode,
		Status:       string(session.Status),
		CurrentTurn:  session.CurrentTurn,
		MaxTurns:     session.MaxTurns,
		Phase:        phaseCfg.Phase,
		PhaseLabel:   phaseCfg.Label,
		ActiveAgents: len(agents),
	})

	eventType := "turn_completed"
	if finished {
		eventType = "session_completed"
	}

	ds.hub.Send(session.UserId, websocket.SessionEvent{
		Type:      eventType,
		SessionId: session.Id.String(),
		Data: map[string]interface{}{
			"turn_number": turnNumber,
			"max_turns":   session.MaxTurns,
		},
	})

	if ds.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "TURN_COMPLETED",
			Data: map[string]interface{}{
				"session_id":  session.Id,
				"turn_number": turnNumber,
				"phase":       phaseCfg.Phase,
			},
			OccurredAt: time.Now(),
		}
		if finished {
			evt.Type = "SESSION_COMPLETED"
		}
		if err := ds.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", evt.Type, err)
		}
	}

	return nil
}

func (ds *discussionService) generateStatement(
	ctx context.Context,
	strategy sessionmode.Strategy,
	topic *entity.Topic,
	agent *entity.Agent,
	history []prompt.HistoryItem,
	turnNumber, maxTurns int,
) (string, error) {
	knowledge, err := ds.retrieveKnowledge(ctx, topic, agent, history)
	if err != nil {
		// Retrieval is best-effort; the agent still speaks without it.
		log.Printf("[WARN] Knowledge retrieval failed for agent %s: %v", agent.Id, err)
	}

	phaseCfg := strategy.GetPhaseConfig(turnNumber, maxTurns)

	fullPrompt := ds.composer.Compose(strategy, prompt.DiscussionContext{
		TopicTitle:       topic.Title,
		TopicDescription: topic.Description,
		AgentName:        agent.Name,
		Persona:          agent.Persona,
		Tone:             agent.Tone,
		Stance:           agent.Stance,
		Knowledge:        knowledge,
		History:          history,
		TurnNumber:       turnNumber,
		MaxTurns:         maxTurns,
	})

	maxTokens := phaseCfg.CharMax * 2 // rough char-to-token headroom for Japanese text
	return ds.llmProvider.Generate(ctx, fullPrompt,
		llm.WithTemperature(0.8),
		llm.WithMaxTokens(maxTokens),
	)
}

func (ds *discussionService) retrieveKnowledge(ctx context.Context, topic *entity.Topic, agent *entity.Agent, history []prompt.HistoryItem) ([]string, error) {
	query := topic.Title
	if len(history) > 0 {
		query = query + "\n" + history[len(history)-1].Content
	}

	res, err := ds.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, err
	}

	uow := ds.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.KnowledgeEmbeddingRepository().SearchSimilar(ctx, res.Embedding.Values, 3, agent.Id, 0.5)
	if err != nil {
		return nil, err
	}

	snippets := make([]string, 0, len(scored))
	for _, s := range scored {
		snippets = append(snippets, s.Embedding.Document)
	}
	return snippets, nil
}

func (ds *discussionService) loadHistory(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID, agents []*entity.Agent) ([]prompt.HistoryItem, error) {
	agentNames := make(map[uuid.UUID]string, len(agents))
	for _, a := range agents {
		agentNames[a.Id] = a.Name
	}

	turns, err := uow.TurnRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "turn_number"},
	)
	if err != nil {
		return nil, err
	}

	var history []prompt.HistoryItem
	for _, t := range turns {
		statements, err := uow.StatementRepository().FindAll(ctx,
			specification.ByTurnID{TurnID: t.Id},
			specification.OrderBy{Field: "created_at"},
		)
		if err != nil {
			return nil, err
		}
		for _, st := range statements {
			history = append(history, prompt.HistoryItem{
				AgentName:  agentNames[st.AgentId],
				PhaseLabel: t.PhaseLabel,
				Content:    st.Content,
			})
		}
	}
	return history, nil
}

func (ds *discussionService) failSession(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.Session) {
	session.Status = entity.SessionStatusFailed
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		log.Printf("[ERROR] Failed to mark session %s as failed: %v", session.Id, err)
	}

	ds.liveSessions.Save(&store.LiveSession{
		ID:          session.Id.String(),
		UserID:      session.UserId.String(),
		Mode:        session.Mode,
		Status:      store.LiveStatusFailed,
		CurrentTurn: session.CurrentTurn,
		MaxTurns:    session.MaxTurns,
	})

	ds.hub.Send(session.UserId, websocket.SessionEvent{
		Type:      "session_failed",
		SessionId: session.Id.String(),
	})
}

// parseConfidence extracts the 【確信度: X/10】 marker if present.
func parseConfidence(content string) *int {
	m := confidencePattern.FindStringSubmatch(content)
	if m == nil {
		return nil
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	if v < 0 {
		v = 0
	}
	if v > 10 {
		v = 10
	}
	return &v
}
