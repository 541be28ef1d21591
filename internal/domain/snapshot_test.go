package domain

import "testing"

func TestTruncateAbbrev(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "MTL", want: "MTL"},
		{in: "TORONTO", want: "TOR"},
		{in: "", want: ""},
		{in: "NJ", want: "NJ"},
	}
	for _, tc := range tests {
		if got := TruncateAbbrev(tc.in); got != tc.want {
			t.Fatalf("TruncateAbbrev(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBoundRecapGoals(t *testing.T) {
	goals := make([]RecapGoal, MaxRecapGoals+5)
	for i := range goals {
		goals[i].EventID = int64(i + 1)
	}

	bounded := BoundRecapGoals(goals)
	if len(bounded) != MaxRecapGoals {
		t.Fatalf("expected %d goals, got %d", MaxRecapGoals, len(bounded))
	}
	if bounded[0].EventID != 1 || bounded[MaxRecapGoals-1].EventID != MaxRecapGoals {
		t.Fatalf("expected earliest goals kept, got first %d last %d", bounded[0].EventID, bounded[MaxRecapGoals-1].EventID)
	}

	bounded[0].Scorer = "changed"
	if goals[0].Scorer == "changed" {
		t.Fatalf("expected bounded slice to be a copy")
	}
}
