package prompt

import (
	"strings"
	"testing"

	"jukugi-bokujo-be/pkg/sessionmode"
)

func TestComposeIncludesAllSections(t *testing.T) {
	composer := NewComposer()
	strategy := sessionmode.GetModeStrategy(sessionmode.ModeDoubleDiamond)

	ctx := DiscussionContext{
		TopicTitle:       "リモートワークを恒久化すべきか",
		TopicDescription: "生産性と採用の観点から検討する。",
		AgentName:        "慎重派のシズク",
		Persona:          "リスクを先に洗い出す保守的なアナリスト。",
		Tone:             "冷静で簡潔",
		Stance:           "懐疑派",
		Knowledge:        []string{"前年度のリモート勤務調査では生産性が8%向上した。"},
		History: []HistoryItem{
			{AgentName: "楽観主義者のハル", PhaseLabel: "発散", Content: "まずは全面導入を試すべきです。"},
		},
		TurnNumber: 2,
		MaxTurns:   10,
	}

	got := composer.Compose(strategy, ctx)

	wantFragments := []string{
		"<persona>",
		"あなたは「慎重派のシズク」として討論に参加しています。",
		"口調: 冷静で簡潔",
		"基本姿勢: 懐疑派",
		"<topic>",
		"リモートワークを恒久化すべきか",
		"<knowledge>",
		"- 前年度のリモート勤務調査では生産性が8%向上した。",
		"<discussion_history>",
		"[発散] 楽観主義者のハル: まずは全面導入を試すべきです。",
		"<instruction>",
		"発言のみを出力し、名前やラベルは付けないでください。",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(got, frag) {
			t.Errorf("Compose() missing fragment %q", frag)
		}
	}

	// The phase framing for turn 2 of 10 must come from the strategy.
	phaseSection := strategy.BuildPhasePromptSection(strategy.GetPhaseConfig(2, 10), 2, 10)
	if phaseSection == "" {
		t.Fatal("BuildPhasePromptSection returned empty section")
	}
	if !strings.Contains(got, phaseSection) {
		t.Error("Compose() does not embed the strategy's phase section")
	}
}

func TestComposeOmitsEmptySections(t *testing.T) {
	composer := NewComposer()
	strategy := sessionmode.GetModeStrategy(sessionmode.ModeFreeDiscussion)

	ctx := DiscussionContext{
		TopicTitle: "新製品の価格戦略",
		AgentName:  "現場目線のゲン",
		Persona:    "実現可能性を検証する職人気質のエンジニア。",
		TurnNumber: 1,
		MaxTurns:   6,
	}

	got := composer.Compose(strategy, ctx)

	if strings.Contains(got, "<knowledge>") {
		t.Error("Compose() included knowledge section without knowledge")
	}
	if strings.Contains(got, "<discussion_history>") {
		t.Error("Compose() included history section on the first turn")
	}
	if strings.Contains(got, "口調:") {
		t.Error("Compose() included tone line without a tone")
	}
}
