package roster

import (
	"regexp"
	"strings"
)

// Status identifies a player's side of the match.
type Status string

const (
	StatusHome Status = "Home"
	StatusAway Status = "Away"
)

// Player is one roster row for a single match. A player absent from the
// substitution log keeps the defaults: entered at 0, exited at 90, a full
// match played.
type Player struct {
	ID           string
	RawName      string
	Name         string
	Team         string
	Status       Status
	Entered      int
	Exited       int
	Minutes      int
	GoalsFor     int
	GoalsAgainst int
}

// Roster is the match-scoped player aggregate. Transforms return a new
// snapshot; callers never see in-place mutation.
type Roster []Player

func (r Roster) Clone() Roster {
	out := make(Roster, len(r))
	copy(out, r)
	return out
}

// Entry is one raw roster line as it appears in the match report.
type Entry struct {
	Raw  string
	Team string
}

const fullMatchMinutes = 90

var (
	playerIDPattern  = regexp.MustCompile(`(?i)T\(g\)?P(\d+)|RP(\d+)|TP(\d+)`)
	nameSuffixMarker = regexp.MustCompile(`\s+T.*|\s+TP.*|\s+RP.*`)
)

// ExtractID pulls the player identifier out of a raw roster string. Returns
// "" when the annotation is missing or unparseable.
func ExtractID(raw string) string {
	groups := playerIDPattern.FindStringSubmatch(raw)
	if groups == nil {
		return ""
	}
	for _, group := range groups[1:] {
		if group != "" {
			return group
		}
	}
	return ""
}

// CleanName strips the trailing registration annotation from a raw roster
// string, leaving "<shirt number><name>".
func CleanName(raw string) string {
	return strings.TrimSpace(nameSuffixMarker.ReplaceAllString(raw, ""))
}

// Build turns raw roster entries into the initial snapshot: ids extracted,
// names cleaned, Home/Away assigned against the canonical home team name,
// everyone defaulting to a full match.
func Build(entries []Entry, homeTeam string) Roster {
	out := make(Roster, 0, len(entries))
	for _, entry := range entries {
		status := StatusAway
		if entry.Team == homeTeam {
			status = StatusHome
		}
		out = append(out, Player{
			ID:      ExtractID(entry.Raw),
			RawName: entry.Raw,
			Name:    CleanName(entry.Raw),
			Team:    entry.Team,
			Status:  status,
			Entered: 0,
			Exited:  fullMatchMinutes,
			Minutes: fullMatchMinutes,
		})
	}
	return out
}
