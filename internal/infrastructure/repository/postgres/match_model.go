package postgres

import "time"

type matchReportTableModel struct {
	ID        int64      `db:"id"`
	MatchID   string     `db:"match_id"`
	HomeTeam  string     `db:"home_team"`
	AwayTeam  string     `db:"away_team"`
	Payload   string     `db:"payload"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type matchReportInsertModel struct {
	MatchID  string `db:"match_id"`
	HomeTeam string `db:"home_team"`
	AwayTeam string `db:"away_team"`
	Payload  string `db:"payload"`
}

// matchReportPayload is the JSON blob persisted alongside the indexed
// columns so a report can be reprocessed verbatim later.
type matchReportPayload struct {
	Roster        []matchRosterEntryPayload `json:"roster"`
	Substitutions []string                  `json:"substitutions"`
	Goals         []string                  `json:"goals"`
}

type matchRosterEntryPayload struct {
	Raw  string `json:"raw"`
	Team string `json:"team"`
}
