package roster

import (
	"github.com/riskibarqy/match-ratings/internal/domain/report"
	"github.com/riskibarqy/match-ratings/internal/platform/textnorm"
)

// ApplyReport surfaces what the reconstruction could not anchor: team
// fragments the resolver gave up on and events whose shirt number matched
// nobody. Both degrade to no-ops by design.
type ApplyReport struct {
	Applied         int
	UnresolvedTeams []string
	UnmatchedEvents int
}

// ApplySubstitutions replays substitution events over the roster and
// returns a new snapshot with entered/exited minutes and minutes played.
//
// Events are applied in the order given; ascending match time is assumed
// but not enforced, so out-of-order input produces a last-write-wins
// outcome for a doubly-substituted shirt number. The player coming in is
// assumed to finish the match unless a later event takes them off.
func ApplySubstitutions(r Roster, events []report.SubstitutionEvent, resolver *report.AliasResolver) (Roster, ApplyReport) {
	out := r.Clone()
	var applied ApplyReport

	for _, event := range events {
		resolution := resolver.Resolve(event.Team)
		if !resolution.Resolved {
			applied.UnresolvedTeams = append(applied.UnresolvedTeams, event.Team)
		}

		matched := false
		for i := range out {
			if !textnorm.ContainsFold(out[i].Team, resolution.Canonical) {
				continue
			}
			if shirtMatches(out[i].Name, event.InNumber) {
				out[i].Entered = event.Minute
				out[i].Exited = fullMatchMinutes
				matched = true
			}
			if shirtMatches(out[i].Name, event.OutNumber) {
				out[i].Exited = event.Minute
				matched = true
			}
		}
		if matched {
			applied.Applied++
		} else {
			applied.UnmatchedEvents++
		}
	}

	for i := range out {
		out[i].Minutes = out[i].Exited - out[i].Entered
	}
	return out, applied
}

// shirtMatches reports whether the cleaned display name starts with the
// shirt number followed by a non-digit boundary, so "7" does not match
// player 71.
func shirtMatches(name, number string) bool {
	if number == "" || len(name) <= len(number) {
		return false
	}
	if name[:len(number)] != number {
		return false
	}
	next := name[len(number)]
	return next < '0' || next > '9'
}
