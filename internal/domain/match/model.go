package match

import "fmt"

// RosterEntry is one raw roster line as submitted: the unparsed player
// string plus the team name it was listed under.
type RosterEntry struct {
	Raw  string
	Team string
}

// Report is one match report as submitted for processing: canonical team
// names plus the raw text logs the parsers consume.
type Report struct {
	ID            string
	HomeTeam      string
	AwayTeam      string
	Roster        []RosterEntry
	Substitutions []string
	Goals         []string
}

func (r Report) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if r.HomeTeam == "" {
		return fmt.Errorf("home team is required")
	}
	if r.AwayTeam == "" {
		return fmt.Errorf("away team is required")
	}
	if len(r.Roster) == 0 {
		return fmt.Errorf("roster cannot be empty")
	}
	return nil
}
