// Package sessionmode derives discussion phases and prompt text from a
// session's turn counters. Every strategy is a stateless singleton: the same
// (mode, turnNumber, maxTurns) input always yields the same PhaseConfig, so
// concurrent turn jobs can share strategies without locking.
package sessionmode

// PhaseConstraint is a rule shown to the LLM together with the reason it exists.
type PhaseConstraint struct {
	Rule   string
	Reason string
}

// PhaseConfig describes one phase of a discussion: how the agent should frame
// its role, what it should do, and the bounds on its statement length.
// Instances are built fresh on every lookup and never mutated.
type PhaseConfig struct {
	Phase       string
	Label       string
	RoleFraming string
	Instruction string
	Constraints []PhaseConstraint
	CharMin     int
	CharMax     int
}

// Strategy is the contract each discussion mode implements.
//
// GetPhaseConfig must accept any integer input without panicking: malformed
// counters (zero or negative maxTurns, out-of-range turn numbers) degrade to a
// defined phase instead of an error, because the turn worker has no recovery
// path for a failure here.
type Strategy interface {
	ModeID() string
	ModeName() string
	Description() string
	DefaultMaxTurns() int

	GetPhaseConfig(turnNumber, maxTurns int) PhaseConfig
	BuildPhasePromptSection(cfg PhaseConfig, turnNumber, maxTurns int) string
	GetUserPromptSuffix(turnNumber, maxTurns int) string
}

// Phase tags. Persisted into the turns table, so values are stable identifiers.
const (
	PhaseOpen         = "open"
	PhaseIntroduction = "introduction"
	PhaseDiscovery    = "discovery"
	PhaseDiscover     = "discover"
	PhaseDefine       = "define"
	PhaseDevelop      = "develop"
	PhaseDeliver      = "deliver"
	PhaseConclusion   = "conclusion"
)
