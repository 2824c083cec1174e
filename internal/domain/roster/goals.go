package roster

import "github.com/riskibarqy/match-ratings/internal/domain/report"

// ApplyGoals credits each goal event to every player on the pitch at that
// minute: the scoring side's present players get a goal for, everyone else
// present gets a goal against. Presence is the closed interval
// [entered, exited], so a substituted player still on at the goal minute is
// counted exactly once.
func ApplyGoals(r Roster, events []report.GoalEvent) Roster {
	out := r.Clone()
	for _, event := range events {
		for i := range out {
			if event.Minute < out[i].Entered || event.Minute > out[i].Exited {
				continue
			}
			if Status(event.Status) == out[i].Status {
				out[i].GoalsFor++
			} else {
				out[i].GoalsAgainst++
			}
		}
	}
	return out
}
