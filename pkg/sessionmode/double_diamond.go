package sessionmode

import (
	"fmt"
	"strings"
)

// doubleDiamondStrategy maps the Double Diamond design process onto a session:
// introduction, two divergent/convergent diamonds (discover/define and
// develop/deliver), then a conclusion. The four middle phases share the turns
// between the first and last turn in equal quarters.
type doubleDiamondStrategy struct{}

func (s *doubleDiamondStrategy) ModeID() string       { return ModeDoubleDiamond }
func (s *doubleDiamondStrategy) ModeName() string     { return "ダブルダイヤモンド" }
func (s *doubleDiamondStrategy) DefaultMaxTurns() int { return 10 }

func (s *doubleDiamondStrategy) Description() string {
	return "発散と収束を2回繰り返すダブルダイヤモンド型の討論モード。論点を広げてから絞り込む流れを構造的に進めます。"
}

func (s *doubleDiamondStrategy) GetPhaseConfig(turnNumber, maxTurns int) PhaseConfig {
	return s.phaseConfig(s.phaseForTurn(turnNumber, maxTurns))
}

// phaseForTurn resolves a turn position to one of the six phase tags. The
// terminal check runs before the first-turn check, so turn 1 of a 1-turn
// session resolves to conclusion. Quarter boundaries over the middle turns are
// compared as real numbers; deliver absorbs any rounding remainder.
func (s *doubleDiamondStrategy) phaseForTurn(turnNumber, maxTurns int) string {
	if turnNumber <= 0 || maxTurns <= 0 {
		return PhaseIntroduction
	}
	if turnNumber >= maxTurns {
		return PhaseConclusion
	}
	if turnNumber == 1 {
		return PhaseIntroduction
	}

	middleTurns := maxTurns - 2
	position := float64(turnNumber - 2)
	quarter := float64(middleTurns) / 4

	switch {
	case position < quarter:
		return PhaseDiscover
	case position < quarter*2:
		return PhaseDefine
	case position < quarter*3:
		return PhaseDevelop
	default:
		return PhaseDeliver
	}
}

// phaseConfig returns a fresh record for the given tag so that callers can
// never alias the constraint slices of two lookups.
func (s *doubleDiamondStrategy) phaseConfig(phase string) PhaseConfig {
	switch phase {
	case PhaseIntroduction:
		return PhaseConfig{
			Phase:       PhaseIntroduction,
			Label:       "導入",
			RoleFraming: "あなたは討論の立ち上げに参加するエージェントです。",
			Instruction: "テーマに対する自分の立場と関心を簡潔に表明してください。",
			Constraints: []PhaseConstraint{
				{Rule: "結論を急がない", Reason: "最初に結論を固定すると後の発散が狭まるため"},
				{Rule: "自分の経験や視点を一つ添える", Reason: "参加者ごとの前提を共有するため"},
			},
			CharMin: 150,
			CharMax: 300,
		}
	case PhaseDiscover:
		return PhaseConfig{
			Phase:       PhaseDiscover,
			Label:       "発見（発散）",
			RoleFraming: "あなたは論点を広げる探索者です。",
			Instruction: "テーマに関わる問題や観点をできるだけ広く挙げてください。",
			Constraints: []PhaseConstraint{
				{Rule: "他の発言を否定しない", Reason: "発散フェーズでは量と多様性を優先するため"},
				{Rule: "少なくとも一つ新しい観点を出す", Reason: "既出の論点の繰り返しでは視野が広がらないため"},
				{Rule: "実現可能性は問わない", Reason: "この段階の評価は発想を萎縮させるため"},
			},
			CharMin: 200,
			CharMax: 300,
		}
	case PhaseDefine:
		return PhaseConfig{
			Phase:       PhaseDefine,
			Label:       "定義（収束）",
			RoleFraming: "あなたは論点を絞り込む編集者です。",
			Instruction: "これまでに挙がった観点から、最も重要な問いを選び言語化してください。",
			Constraints: []PhaseConstraint{
				{Rule: "新しい論点を持ち込まない", Reason: "収束フェーズで発散をやり直さないため"},
				{Rule: "選んだ理由を明示する", Reason: "絞り込みの根拠を他の参加者が検証できるようにするため"},
			},
			CharMin: 200,
			CharMax: 300,
		}
	case PhaseDevelop:
		return PhaseConfig{
			Phase:       PhaseDevelop,
			Label:       "展開（発散）",
			RoleFraming: "あなたは解決策を生み出す発案者です。",
			Instruction: "定義された問いに対する解決のアイデアを複数出してください。",
			Constraints: []PhaseConstraint{
				{Rule: "アイデアは複数出す", Reason: "一案に絞るのは次のフェーズの役割であるため"},
				{Rule: "他の参加者の案に乗ってよい", Reason: "組み合わせから新しい案が生まれるため"},
				{Rule: "完成度を気にしない", Reason: "粗い案でも方向性の比較材料になるため"},
			},
			CharMin: 200,
			CharMax: 300,
		}
	case PhaseDeliver:
		return PhaseConfig{
			Phase:       PhaseDeliver,
			Label:       "提供（収束）",
			RoleFraming: "あなたは提案をまとめる実務家です。",
			Instruction: "挙がった案の中から最も有望なものを選び、具体化してください。",
			Constraints: []PhaseConstraint{
				{Rule: "選ばなかった案にも触れる", Reason: "比較の過程を残すことで結論の説得力が増すため"},
				{Rule: "次の一歩を具体的に述べる", Reason: "抽象的な合意だけでは討論の成果にならないため"},
			},
			CharMin: 200,
			CharMax: 300,
		}
	default:
		return PhaseConfig{
			Phase:       PhaseConclusion,
			Label:       "結論",
			RoleFraming: "あなたは討論を締めくくる参加者です。",
			Instruction: "討論全体を振り返り、自分の最終的な立場を述べてください。",
			Constraints: []PhaseConstraint{
				{Rule: "立場の変化があれば明示する", Reason: "討論を経た変化こそが熟議の成果であるため"},
				{Rule: "残った論点があれば挙げる", Reason: "次のセッションの出発点になるため"},
			},
			CharMin: 200,
			CharMax: 300,
		}
	}
}

func (s *doubleDiamondStrategy) BuildPhasePromptSection(cfg PhaseConfig, turnNumber, maxTurns int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("【現在のフェーズ: %s（ターン %d/%d）】\n", cfg.Label, turnNumber, maxTurns))
	b.WriteString(cfg.RoleFraming)
	b.WriteString("\n")
	b.WriteString(cfg.Instruction)
	b.WriteString("\n")
	if len(cfg.Constraints) > 0 {
		b.WriteString("このフェーズの制約:\n")
		for _, c := range cfg.Constraints {
			b.WriteString(fmt.Sprintf("- %s — %s\n", c.Rule, c.Reason))
		}
	}
	b.WriteString(fmt.Sprintf("発言は%d〜%d文字でまとめてください。\n", cfg.CharMin, cfg.CharMax))
	return b.String()
}

func (s *doubleDiamondStrategy) GetUserPromptSuffix(turnNumber, maxTurns int) string {
	return "発言の最後に、現在の自分の立場への確信度を【確信度: X/10】の形式で必ず付記してください。"
}
