package sessionmode

// Mode identifiers as stored in the sessions.mode column.
const (
	ModeDoubleDiamond  = "double_diamond"
	ModeFreeDiscussion = "free_discussion"
	ModeTutorial       = "tutorial"
)

// Process-wide strategy singletons. Strategies hold no state, so sharing one
// instance across all sessions is safe.
var (
	doubleDiamond  Strategy = &doubleDiamondStrategy{}
	freeDiscussion Strategy = &freeDiscussionStrategy{}
	tutorial       Strategy = &tutorialStrategy{}
)

// GetModeStrategy resolves a mode identifier to its strategy. Unknown or empty
// identifiers fall back to double_diamond instead of failing: the mode column
// is free text and no caller is prepared to handle a lookup error.
func GetModeStrategy(mode string) Strategy {
	switch mode {
	case ModeDoubleDiamond:
		return doubleDiamond
	case ModeFreeDiscussion:
		return freeDiscussion
	case ModeTutorial:
		return tutorial
	default:
		return doubleDiamond
	}
}

// ModeInfo is the listing shape exposed by the mode API for the frontend's
// mode picker.
type ModeInfo struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DefaultMaxTurns int    `json:"default_max_turns"`
}

// GetAllModes returns every registered mode in registration order.
func GetAllModes() []ModeInfo {
	strategies := []Strategy{doubleDiamond, freeDiscussion, tutorial}
	modes := make([]ModeInfo, 0, len(strategies))
	for _, s := range strategies {
		modes = append(modes, ModeInfo{
			ID:              s.ModeID(),
			Name:            s.ModeName(),
			Description:     s.Description(),
			DefaultMaxTurns: s.DefaultMaxTurns(),
		})
	}
	return modes
}
