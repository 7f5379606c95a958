package sessionmode

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestFreeDiscussionPhaseLabels(t *testing.T) {
	s := GetModeStrategy(ModeFreeDiscussion)

	for _, maxTurns := range []int{2, 3, 6, 12} {
		t.Run(fmt.Sprintf("maxTurns=%d", maxTurns), func(t *testing.T) {
			first := s.GetPhaseConfig(1, maxTurns)
			if first.Label != "開始" {
				t.Errorf("turn 1 label = %q, want 開始", first.Label)
			}

			last := s.GetPhaseConfig(maxTurns, maxTurns)
			if last.Label != "最終ターン" {
				t.Errorf("turn %d label = %q, want 最終ターン", maxTurns, last.Label)
			}

			for turn := 2; turn < maxTurns; turn++ {
				mid := s.GetPhaseConfig(turn, maxTurns)
				counter := fmt.Sprintf("%d/%d", turn, maxTurns)
				if !strings.Contains(mid.Label, counter) {
					t.Errorf("turn %d label = %q, want counter %q", turn, mid.Label, counter)
				}
			}
		})
	}
}

func TestFreeDiscussionAllTurnsShareOpenPhase(t *testing.T) {
	s := GetModeStrategy(ModeFreeDiscussion)

	for turn := 1; turn <= 6; turn++ {
		cfg := s.GetPhaseConfig(turn, 6)
		if cfg.Phase != PhaseOpen {
			t.Errorf("turn %d phase = %q, want %q", turn, cfg.Phase, PhaseOpen)
		}
		if len(cfg.Constraints) != 0 {
			t.Errorf("turn %d has %d constraints, want 0", turn, len(cfg.Constraints))
		}
		if cfg.CharMin != 100 || cfg.CharMax != 300 {
			t.Errorf("turn %d char range = %d-%d, want 100-300", turn, cfg.CharMin, cfg.CharMax)
		}
	}
}

// A 1-turn session matches both the first-turn and final-turn conditions; the
// first-turn check is evaluated first, so turn 1 renders as the opening frame.
func TestFreeDiscussionSingleTurnSessionOpensRatherThanCloses(t *testing.T) {
	s := GetModeStrategy(ModeFreeDiscussion)

	cfg := s.GetPhaseConfig(1, 1)
	if cfg.Label != "開始" {
		t.Errorf("turn 1 of 1 label = %q, want 開始", cfg.Label)
	}

	// Past the end of the same degenerate session the final frame applies.
	cfg = s.GetPhaseConfig(2, 1)
	if cfg.Label != "最終ターン" {
		t.Errorf("turn 2 of 1 label = %q, want 最終ターン", cfg.Label)
	}
}

func TestFreeDiscussionNoUserPromptSuffix(t *testing.T) {
	s := GetModeStrategy(ModeFreeDiscussion)
	if got := s.GetUserPromptSuffix(3, 6); got != "" {
		t.Errorf("suffix = %q, want empty", got)
	}
}

func TestFreeDiscussionDefaults(t *testing.T) {
	s := GetModeStrategy(ModeFreeDiscussion)
	if s.DefaultMaxTurns() != 6 {
		t.Errorf("DefaultMaxTurns = %d, want 6", s.DefaultMaxTurns())
	}
}

func TestFreeDiscussionIsPure(t *testing.T) {
	s := GetModeStrategy(ModeFreeDiscussion)
	for turn := 0; turn <= 7; turn++ {
		a := s.GetPhaseConfig(turn, 6)
		b := s.GetPhaseConfig(turn, 6)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("turn %d: repeated lookups differ: %+v vs %+v", turn, a, b)
		}
	}
}
