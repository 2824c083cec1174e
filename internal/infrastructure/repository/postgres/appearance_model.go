package postgres

import "time"

type appearanceTableModel struct {
	ID           int64      `db:"id"`
	MatchID      string     `db:"match_id"`
	PlayerID     string     `db:"player_id"`
	Name         string     `db:"name"`
	Team         string     `db:"team"`
	Status       string     `db:"status"`
	Entered      int        `db:"entered"`
	Exited       int        `db:"exited"`
	Minutes      int        `db:"minutes"`
	GoalsFor     int        `db:"goals_for"`
	GoalsAgainst int        `db:"goals_against"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type appearanceInsertModel struct {
	MatchID      string `db:"match_id"`
	PlayerID     string `db:"player_id"`
	Name         string `db:"name"`
	Team         string `db:"team"`
	Status       string `db:"status"`
	Entered      int    `db:"entered"`
	Exited       int    `db:"exited"`
	Minutes      int    `db:"minutes"`
	GoalsFor     int    `db:"goals_for"`
	GoalsAgainst int    `db:"goals_against"`
}
