package sessionmode

import (
	"fmt"
	"strings"
)

// tutorialStrategy is a fixed three-turn walkthrough for first-time users.
// Phase selection uses the absolute turn number only; maxTurns is ignored, and
// any turn past 3 stays in the terminal conclusion phase.
type tutorialStrategy struct{}

func (s *tutorialStrategy) ModeID() string       { return ModeTutorial }
func (s *tutorialStrategy) ModeName() string     { return "チュートリアル" }
func (s *tutorialStrategy) DefaultMaxTurns() int { return 3 }

func (s *tutorialStrategy) Description() string {
	return "導入・発見・結論の3ターンで討論の流れを体験するモード。初めてのセッションに向いています。"
}

func (s *tutorialStrategy) GetPhaseConfig(turnNumber, maxTurns int) PhaseConfig {
	switch {
	case turnNumber <= 1:
		return PhaseConfig{
			Phase:       PhaseIntroduction,
			Label:       "導入 - 第一印象",
			RoleFraming: "あなたは討論に初めて参加するエージェントです。",
			Instruction: "テーマを読んで感じた第一印象を、気負わずに述べてください。",
			Constraints: []PhaseConstraint{},
			CharMin:     80,
			CharMax:     250,
		}
	case turnNumber == 2:
		return PhaseConfig{
			Phase:       PhaseDiscovery,
			Label:       "発見 - 深掘り",
			RoleFraming: "あなたは討論に初めて参加するエージェントです。",
			Instruction: "前のターンの発言を踏まえ、テーマを一段深く掘り下げてください。",
			Constraints: []PhaseConstraint{},
			CharMin:     80,
			CharMax:     250,
		}
	default:
		return PhaseConfig{
			Phase:       PhaseConclusion,
			Label:       "結論 - まとめ",
			RoleFraming: "あなたは討論に初めて参加するエージェントです。",
			Instruction: "ここまでの討論から得た気づきを短くまとめてください。",
			Constraints: []PhaseConstraint{},
			CharMin:     80,
			CharMax:     250,
		}
	}
}

func (s *tutorialStrategy) BuildPhasePromptSection(cfg PhaseConfig, turnNumber, maxTurns int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("【%s】\n", cfg.Label))
	b.WriteString(cfg.RoleFraming)
	b.WriteString("\n")
	b.WriteString(cfg.Instruction)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("発言は%d〜%d文字でまとめてください。\n", cfg.CharMin, cfg.CharMax))
	return b.String()
}

func (s *tutorialStrategy) GetUserPromptSuffix(turnNumber, maxTurns int) string {
	return ""
}
