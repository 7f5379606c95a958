package sessionmode

import (
	"fmt"
	"strings"
)

// freeDiscussionStrategy runs an unstructured discussion. There is no phase
// pipeline: every turn shares the "open" tag, and only the framing text shifts
// between the first turn, the middle turns and the final turn.
type freeDiscussionStrategy struct{}

func (s *freeDiscussionStrategy) ModeID() string       { return ModeFreeDiscussion }
func (s *freeDiscussionStrategy) ModeName() string     { return "自由討論" }
func (s *freeDiscussionStrategy) DefaultMaxTurns() int { return 6 }

func (s *freeDiscussionStrategy) Description() string {
	return "フェーズの制約なしで自由に意見を交わすモード。発言の順序や構成はエージェントに委ねられます。"
}

func (s *freeDiscussionStrategy) GetPhaseConfig(turnNumber, maxTurns int) PhaseConfig {
	// The first-turn check runs before the final-turn check, so turn 1 of a
	// 1-turn session renders as the opening frame.
	switch {
	case turnNumber <= 1:
		return PhaseConfig{
			Phase:       PhaseOpen,
			Label:       "開始",
			RoleFraming: "あなたはこのテーマについて自由に討論する参加者です。",
			Instruction: "テーマに対する最初の意見を、制約にとらわれず率直に述べてください。",
			Constraints: []PhaseConstraint{},
			CharMin:     100,
			CharMax:     300,
		}
	case turnNumber >= maxTurns:
		return PhaseConfig{
			Phase:       PhaseOpen,
			Label:       "最終ターン",
			RoleFraming: "あなたはこのテーマについて自由に討論する参加者です。",
			Instruction: "討論の締めくくりとして、最後の発言をしてください。全体を要約する必要はありません。",
			Constraints: []PhaseConstraint{},
			CharMin:     100,
			CharMax:     300,
		}
	default:
		return PhaseConfig{
			Phase:       PhaseOpen,
			Label:       fmt.Sprintf("自由討論（ターン %d/%d）", turnNumber, maxTurns),
			RoleFraming: "あなたはこのテーマについて自由に討論する参加者です。",
			Instruction: "他の参加者の発言に反応しても、新しい切り口を持ち込んでも構いません。",
			Constraints: []PhaseConstraint{},
			CharMin:     100,
			CharMax:     300,
		}
	}
}

func (s *freeDiscussionStrategy) BuildPhasePromptSection(cfg PhaseConfig, turnNumber, maxTurns int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("【%s】\n", cfg.Label))
	b.WriteString(cfg.RoleFraming)
	b.WriteString("\n")
	b.WriteString(cfg.Instruction)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("発言は%d〜%d文字でまとめてください。\n", cfg.CharMin, cfg.CharMax))
	return b.String()
}

func (s *freeDiscussionStrategy) GetUserPromptSuffix(turnNumber, maxTurns int) string {
	return ""
}
