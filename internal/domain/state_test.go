package domain

import "testing"

func TestStateClassification(t *testing.T) {
	cases := []struct {
		state string
		pre   bool
		live  bool
		final bool
	}{
		{"PRE", true, false, false},
		{"FUT", true, false, false},
		{"fut", true, false, false},
		{"LIVE", false, true, false},
		{"CRIT", false, true, false},
		{"FINAL", false, false, true},
		{"OFF", false, false, true},
		{"off", false, false, true},
		{"", false, false, false},
		{"INT", false, false, false},
	}

	for _, tc := range cases {
		if got := IsPreGame(tc.state); got != tc.pre {
			t.Errorf("IsPreGame(%q) = %v, want %v", tc.state, got, tc.pre)
		}
		if got := IsLive(tc.state); got != tc.live {
			t.Errorf("IsLive(%q) = %v, want %v", tc.state, got, tc.live)
		}
		if got := IsFinal(tc.state); got != tc.final {
			t.Errorf("IsFinal(%q) = %v, want %v", tc.state, got, tc.final)
		}
	}
}
