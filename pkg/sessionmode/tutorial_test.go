package sessionmode

import (
	"reflect"
	"testing"
)

func TestTutorialPhaseByAbsoluteTurn(t *testing.T) {
	s := GetModeStrategy(ModeTutorial)

	tests := []struct {
		name      string
		turn      int
		maxTurns  int
		wantPhase string
	}{
		{"turn 1", 1, 3, PhaseIntroduction},
		{"turn 0 clamps to introduction", 0, 3, PhaseIntroduction},
		{"turn 2", 2, 3, PhaseDiscovery},
		{"turn 3", 3, 3, PhaseConclusion},
		{"turn 4 stays terminal", 4, 3, PhaseConclusion},
		{"turn 100 stays terminal", 100, 3, PhaseConclusion},
		{"maxTurns is ignored", 2, 50, PhaseDiscovery},
		{"maxTurns zero is ignored too", 1, 0, PhaseIntroduction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.GetPhaseConfig(tt.turn, tt.maxTurns)
			if got.Phase != tt.wantPhase {
				t.Errorf("GetPhaseConfig(%d, %d).Phase = %q, want %q", tt.turn, tt.maxTurns, got.Phase, tt.wantPhase)
			}
		})
	}
}

func TestTutorialCharRangeAndConstraints(t *testing.T) {
	s := GetModeStrategy(ModeTutorial)

	for turn := 1; turn <= 3; turn++ {
		cfg := s.GetPhaseConfig(turn, 3)
		if cfg.CharMin != 80 || cfg.CharMax != 250 {
			t.Errorf("turn %d char range = %d-%d, want 80-250", turn, cfg.CharMin, cfg.CharMax)
		}
		if len(cfg.Constraints) != 0 {
			t.Errorf("turn %d has %d constraints, want 0", turn, len(cfg.Constraints))
		}
	}
}

func TestTutorialNoUserPromptSuffix(t *testing.T) {
	s := GetModeStrategy(ModeTutorial)
	if got := s.GetUserPromptSuffix(1, 3); got != "" {
		t.Errorf("suffix = %q, want empty", got)
	}
}

func TestTutorialDefaults(t *testing.T) {
	s := GetModeStrategy(ModeTutorial)
	if s.DefaultMaxTurns() != 3 {
		t.Errorf("DefaultMaxTurns = %d, want 3", s.DefaultMaxTurns())
	}
}

func TestTutorialIsPure(t *testing.T) {
	s := GetModeStrategy(ModeTutorial)
	for _, turn := range []int{-1, 0, 1, 2, 3, 4, 100} {
		a := s.GetPhaseConfig(turn, 3)
		b := s.GetPhaseConfig(turn, 3)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("turn %d: repeated lookups differ", turn)
		}
	}
}
