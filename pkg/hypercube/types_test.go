package hypercube

import "testing"

func TestOutcomeString(t *testing.T) {
	for _, tc := range []struct {
		outcome  Outcome
		expected string
		terminal bool
	}{
		{OutcomeInProgress(), "in progress", false},
		{OutcomeWon(PlayerA), "won by X", true},
		{OutcomeWon(PlayerB), "won by O", true},
		{OutcomeDraw(), "draw", true},
	} {
		if got := tc.outcome.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
		if tc.outcome.Terminal() != tc.terminal {
			t.Errorf("%v: Terminal() = %v", tc.outcome, !tc.terminal)
		}
	}
}

func TestOpponent(t *testing.T) {
	if PlayerA.Opponent() != PlayerB || PlayerB.Opponent() != PlayerA {
		t.Error("PlayerA and PlayerB should be opponents")
	}
	if PlayerNone.Opponent() != PlayerNone {
		t.Error("PlayerNone has no opponent")
	}
}
