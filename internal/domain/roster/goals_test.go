package roster

import (
	"testing"

	"github.com/riskibarqy/match-ratings/internal/domain/report"
)

func TestApplyGoals_CreditsPresentPlayersOnce(t *testing.T) {
	r := buildTestRoster()

	out := ApplyGoals(r, []report.GoalEvent{{Minute: 30, Status: report.StatusHome}})

	if out[0].GoalsFor != 1 || out[0].GoalsAgainst != 0 {
		t.Fatalf("home player must get exactly one goal for: %+v", out[0])
	}
	if out[2].GoalsFor != 0 || out[2].GoalsAgainst != 1 {
		t.Fatalf("away player must get exactly one goal against: %+v", out[2])
	}
}

func TestApplyGoals_IntervalIsInclusive(t *testing.T) {
	r := buildTestRoster()
	resolver := report.NewAliasResolver("Atlético / MG", "Cruzeiro / MG", nil)
	r, _ = ApplySubstitutions(r, []report.SubstitutionEvent{
		{Minute: 60, Team: "Atletico/MG", OutNumber: "7", InNumber: "11"},
	}, resolver)

	out := ApplyGoals(r, []report.GoalEvent{{Minute: 60, Status: report.StatusAway}})

	// Both the outgoing player (exited at 60) and the incoming player
	// (entered at 60) are present at the boundary minute.
	if out[0].GoalsAgainst != 1 {
		t.Fatalf("player exiting at the goal minute is still present: %+v", out[0])
	}
	if out[1].GoalsAgainst != 1 {
		t.Fatalf("player entering at the goal minute is present: %+v", out[1])
	}
}

func TestApplyGoals_OffPitchPlayerExcluded(t *testing.T) {
	r := buildTestRoster()
	resolver := report.NewAliasResolver("Atlético / MG", "Cruzeiro / MG", nil)
	r, _ = ApplySubstitutions(r, []report.SubstitutionEvent{
		{Minute: 60, Team: "Atletico/MG", OutNumber: "7", InNumber: "11"},
	}, resolver)

	out := ApplyGoals(r, []report.GoalEvent{{Minute: 75, Status: report.StatusHome}})

	if out[0].GoalsFor != 0 {
		t.Fatalf("player who left at 60 must not be credited a goal at 75: %+v", out[0])
	}
	if out[1].GoalsFor != 1 {
		t.Fatalf("replacement on the pitch must be credited: %+v", out[1])
	}
}

func TestEmptyLogsLeaveRosterPristine(t *testing.T) {
	r := buildTestRoster()
	resolver := report.NewAliasResolver("Atlético / MG", "Cruzeiro / MG", nil)

	out, applied := ApplySubstitutions(r, nil, resolver)
	out = ApplyGoals(out, nil)

	if applied.Applied != 0 {
		t.Fatalf("no events should apply: %+v", applied)
	}
	for _, p := range out {
		if p.Minutes != 90 || p.GoalsFor != 0 || p.GoalsAgainst != 0 {
			t.Fatalf("empty logs must leave defaults: %+v", p)
		}
	}
}
