package sessionmode

import "testing"

func TestGetModeStrategyKnownModes(t *testing.T) {
	tests := []struct {
		mode   string
		wantID string
	}{
		{ModeDoubleDiamond, "double_diamond"},
		{ModeFreeDiscussion, "free_discussion"},
		{ModeTutorial, "tutorial"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			s := GetModeStrategy(tt.mode)
			if s.ModeID() != tt.wantID {
				t.Errorf("ModeID = %q, want %q", s.ModeID(), tt.wantID)
			}
		})
	}
}

func TestGetModeStrategyUnknownModeFallsBack(t *testing.T) {
	fallback := GetModeStrategy(ModeDoubleDiamond)

	for _, mode := range []string{"nonexistent", "", "DOUBLE_DIAMOND", "free-discussion"} {
		s := GetModeStrategy(mode)
		if s != fallback {
			t.Errorf("GetModeStrategy(%q) = %v, want the double_diamond singleton", mode, s)
		}
	}
}

func TestGetAllModes(t *testing.T) {
	modes := GetAllModes()
	if len(modes) != 3 {
		t.Fatalf("len(modes) = %d, want 3", len(modes))
	}

	want := []struct {
		id       string
		maxTurns int
	}{
		{"double_diamond", 10},
		{"free_discussion", 6},
		{"tutorial", 3},
	}

	for i, w := range want {
		if modes[i].ID != w.id {
			t.Errorf("modes[%d].ID = %q, want %q", i, modes[i].ID, w.id)
		}
		if modes[i].DefaultMaxTurns != w.maxTurns {
			t.Errorf("modes[%d].DefaultMaxTurns = %d, want %d", i, modes[i].DefaultMaxTurns, w.maxTurns)
		}
		if modes[i].Name == "" || modes[i].Description == "" {
			t.Errorf("modes[%d] has empty name or description", i)
		}
	}
}
