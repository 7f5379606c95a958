package store

// LiveSession tracks the in-flight state of a running discussion so the
// websocket feed and the turn worker can share progress without a DB read.
type LiveSession struct {
	ID           string `json:"id"` // SessionID
	UserID       string `json:"user_id"`
	Mode         string `json:"mode"`
	Status       string `json:"status"`
	CurrentTurn  int    `json:"current_turn"`
	MaxTurns     int    `json:"max_turns"`
	Phase        string `json:"phase"`
	PhaseLabel   string `json:"phase_label"`
	ActiveAgents int    `json:"active_agents"`
}

const (
	LiveStatusPending   = "pending"
	LiveStatusRunning   = "running"
	LiveStatusCompleted = "completed"
	LiveStatusFailed    = "failed"
)
