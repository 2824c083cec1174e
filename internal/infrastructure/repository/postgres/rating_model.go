package postgres

import "time"

type ratingProfileTableModel struct {
	ID          int64      `db:"id"`
	PlayerID    string     `db:"player_id"`
	Name        string     `db:"name"`
	Rating      float64    `db:"rating"`
	KValue      int        `db:"k_value"`
	GamesPlayed int        `db:"games_played"`
	Age         int        `db:"age"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type ratingProfileInsertModel struct {
	PlayerID    string  `db:"player_id"`
	Name        string  `db:"name"`
	Rating      float64 `db:"rating"`
	KValue      int     `db:"k_value"`
	GamesPlayed int     `db:"games_played"`
	Age         int     `db:"age"`
}
