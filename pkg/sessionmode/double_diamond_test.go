package sessionmode

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestDoubleDiamondTenTurnPipeline(t *testing.T) {
	s := GetModeStrategy(ModeDoubleDiamond)

	// middleTurns=8, quarterSize=2: each middle phase gets exactly two turns.
	wantByTurn := map[int]string{
		1:  PhaseIntroduction,
		2:  PhaseDiscover,
		3:  PhaseDiscover,
		4:  PhaseDefine,
		5:  PhaseDefine,
		6:  PhaseDevelop,
		7:  PhaseDevelop,
		8:  PhaseDeliver,
		9:  PhaseDeliver,
		10: PhaseConclusion,
	}

	for turn := 1; turn <= 10; turn++ {
		got := s.GetPhaseConfig(turn, 10)
		if got.Phase != wantByTurn[turn] {
			t.Errorf("turn %d/10 phase = %q, want %q", turn, got.Phase, wantByTurn[turn])
		}
	}
}

func TestDoubleDiamondBoundaryAndDegenerateInput(t *testing.T) {
	s := GetModeStrategy(ModeDoubleDiamond)

	tests := []struct {
		name      string
		turn      int
		maxTurns  int
		wantPhase string
	}{
		// The terminal check dominates the first-turn check.
		{"single-turn session concludes immediately", 1, 1, PhaseConclusion},
		{"turn beyond maxTurns stays terminal", 15, 10, PhaseConclusion},
		{"two-turn session has no middle", 1, 2, PhaseIntroduction},
		{"two-turn session closes on turn 2", 2, 2, PhaseConclusion},
		// A single middle turn lands in discover; define/develop/deliver are skipped.
		{"three-turn session middle is discover", 2, 3, PhaseDiscover},
		// Defensive clamps for malformed counters.
		{"zero turn", 0, 10, PhaseIntroduction},
		{"negative turn", -3, 10, PhaseIntroduction},
		{"zero maxTurns", 1, 0, PhaseIntroduction},
		{"negative maxTurns", 5, -1, PhaseIntroduction},
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

// With middleTurns not divisible by 4 the quarter boundaries are fractional;
// bucket sizes may differ by one turn but every middle phase keeps its order.
func TestDoubleDiamondFractionalQuarters(t *testing.T) {
	s := GetModeStrategy(ModeDoubleDiamond)

	// maxTurns=7: middleTurns=5, quarterSize=1.25, so positions 0 and 1
	// both land in the first bucket and discover gets two turns.
	wantByTurn := map[int]string{
		1: PhaseIntroduction,
		2: PhaseDiscover,
		3: PhaseDiscover,
		4: PhaseDefine,
		5: PhaseDevelop,
		6: PhaseDeliver,
		7: PhaseConclusion,
	}

	for turn := 1; turn <= 7; turn++ {
		got := s.GetPhaseConfig(turn, 7)
		if got.Phase != wantByTurn[turn] {
			t.Errorf("turn %d/7 phase = %q, want %q", turn, got.Phase, wantByTurn[turn])
		}
	}
}

func TestDoubleDiamondPhaseRecords(t *testing.T) {
	s := GetModeStrategy(ModeDoubleDiamond)

	tests := []struct {
		phase           string
		turn, maxTurns  int
		wantConstraints int
		wantCharMin     int
	}{
		{PhaseIntroduction, 1, 10, 2, 150},
		{PhaseDiscover, 2, 10, 3, 200},
		{PhaseDefine, 4, 10, 2, 200},
		{PhaseDevelop, 6, 10, 3, 200},
		{PhaseDeliver, 8, 10, 2, 200},
		{PhaseConclusion, 10, 10, 2, 200},
	}

	for _, tt := range tests {
		t.Run(tt.phase, func(t *testing.T) {
			cfg := s.GetPhaseConfig(tt.turn, tt.maxTurns)
			if cfg.Phase != tt.phase {
				t.Fatalf("phase = %q, want %q", cfg.Phase, tt.phase)
			}
			if len(cfg.Constraints) != tt.wantConstraints {
				t.Errorf("constraints = %d, want %d", len(cfg.Constraints), tt.wantConstraints)
			}
			if cfg.CharMin != tt.wantCharMin || cfg.CharMax != 300 {
				t.Errorf("char range = %d-%d, want %d-300", cfg.CharMin, cfg.CharMax, tt.wantCharMin)
			}
			if cfg.Label == "" || cfg.RoleFraming == "" || cfg.Instruction == "" {
				t.Errorf("phase %q has empty text fields: %+v", tt.phase, cfg)
			}
			for _, c := range cfg.Constraints {
				if c.Rule == "" || c.Reason == "" {
					t.Errorf("phase %q has empty constraint: %+v", tt.phase, c)
				}
			}
		})
	}
}

func TestDoubleDiamondPromptSectionRendersConstraintsInOrder(t *testing.T) {
	s := GetModeStrategy(ModeDoubleDiamond)
	cfg := s.GetPhaseConfig(2, 10)

	section := s.BuildPhasePromptSection(cfg, 2, 10)

	if !strings.Contains(section, "ターン 2/10") {
		t.Errorf("section missing turn counter:\n%s", section)
	}

	lastIdx := -1
	for _, c := range cfg.Constraints {
		line := fmt.Sprintf("- %s — %s", c.Rule, c.Reason)
		idx := strings.Index(section, line)
		if idx < 0 {
			t.Errorf("section missing constraint line %q", line)
			continue
		}
		if idx < lastIdx {
			t.Errorf("constraint line %q out of order", line)
		}
		lastIdx = idx
	}
}

func TestDoubleDiamondConfidenceSuffix(t *testing.T) {
	s := GetModeStrategy(ModeDoubleDiamond)

	// The suffix ignores its parameters.
	a := s.GetUserPromptSuffix(1, 10)
	b := s.GetUserPromptSuffix(9, 3)
	if a != b {
		t.Errorf("suffix varies with turn: %q vs %q", a, b)
	}
	if !strings.Contains(a, "【確信度: X/10】") {
		t.Errorf("suffix missing confidence pattern: %q", a)
	}
}

func TestDoubleDiamondIsPure(t *testing.T) {
	s := GetModeStrategy(ModeDoubleDiamond)
	for turn := -1; turn <= 11; turn++ {
		a := s.GetPhaseConfig(turn, 10)
		b := s.GetPhaseConfig(turn, 10)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("turn %d: repeated lookups differ", turn)
		}
	}
}

func TestDoubleDiamondConstraintSlicesDoNotAlias(t *testing.T) {
	s := GetModeStrategy(ModeDoubleDiamond)

	a := s.GetPhaseConfig(2, 10)
	b := s.GetPhaseConfig(2, 10)
	if len(a.Constraints) == 0 {
		t.Fatal("expected constraints on discover phase")
	}
	a.Constraints[0].Rule = "mutated"
	if b.Constraints[0].Rule == "mutated" {
		t.Error("constraint slices of separate lookups share backing storage")
	}
}
