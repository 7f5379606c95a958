package service

import (
	"context"
	"strings"

	"jukugi-bokujo-be/internal/pkg/logger"
	"jukugi-bokujo-be/internal/websocket"
	"jukugi-bokujo-be/pkg/events"
	pktNats "jukugi-bokujo-be/pkg/nats"

	"github.com/google/uuid"
)

// EventRelayService bridges the NATS event stream to connected websocket
// clients. Session lifecycle events published by other instances reach the
// user's devices through the hub.
type EventRelayService struct {
	subscriber *pktNats.Subscriber
	hub        *websocket.Hub
	logger     logger.ILogger
}

func NewEventRelayService(sub *pktNats.Subscriber, hub *websocket.Hub, log logger.ILogger) *EventRelayService {
	return &EventRelayService{
		subscriber: sub,
		hub:        hub,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *EventRelayService) Start() {
	err := s.subscriber.Subscribe("events.>", "event-relay-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("EventRelayService", "Failed to start event relay subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("EventRelayService", "Event relay started, listening to events.>", nil)
}

func (s *EventRelayService) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	// Only events addressed to a user are relayed.
	uidStr, ok := payload["user_id"].(string)
	if !ok {
		return nil
	}
	userID, err := uuid.Parse(uidStr)
	if err != nil {
		return nil
	}

	typeCode := strings.TrimPrefix(event.EventType(), "events.")
	sessionID, _ := payload["session_id"].(string)

	s.hub.Send(userID, websocket.SessionEvent{
		Type:      "notification",
		SessionId: sessionID,
		Data: map[string]interface{}{
			"event":   typeCode,
			"payload": payload,
		},
	})
	return nil
}
