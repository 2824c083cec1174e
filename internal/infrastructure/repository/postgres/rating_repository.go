package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/match-ratings/internal/domain/rating"
	qb "github.com/riskibarqy/match-ratings/internal/platform/querybuilder"
)

type RatingRepository struct {
	db *sqlx.DB
}

var ratingProfileSelectColumns = []string{
	"id",
	"player_id",
	"name",
	"rating",
	"k_value",
	"games_played",
	"age",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewRatingRepository(db *sqlx.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) GetByPlayerID(ctx context.Context, playerID string) (rating.Profile, bool, error) {
	query, args, err := qb.Select(ratingProfileSelectColumns...).From("rating_profiles").
		Where(
			qb.Eq("player_id", playerID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return rating.Profile{}, false, fmt.Errorf("build select rating profile query: %w", err)
	}

	var row ratingProfileTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return rating.Profile{}, false, nil
		}
		return rating.Profile{}, false, fmt.Errorf("select rating profile: %w", err)
	}

	return ratingProfileFromRow(row), true, nil
}

func (r *RatingRepository) GetByPlayerIDs(ctx context.Context, playerIDs []string) ([]rating.Profile, error) {
	if len(playerIDs) == 0 {
		return []rating.Profile{}, nil
	}

	query, args, err := qb.Select(ratingProfileSelectColumns...).From("rating_profiles").
		Where(
			qb.In("player_id", stringSliceToAny(playerIDs)),
			qb.IsNull("deleted_at"),
		).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select rating profiles by ids query: %w", err)
	}

	var rows []ratingProfileTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select rating profiles by ids: %w", err)
	}

	out := make([]rating.Profile, 0, len(rows))
	for _, row := range rows {
		out = append(out, ratingProfileFromRow(row))
	}
	return out, nil
}

func (r *RatingRepository) List(ctx context.Context) ([]rating.Profile, error) {
	query, args, err := qb.Select(ratingProfileSelectColumns...).From("rating_profiles").
		Where(qb.IsNull("deleted_at")).
		OrderBy("rating DESC", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select rating profiles query: %w", err)
	}

	var rows []ratingProfileTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select rating profiles: %w", err)
	}

	out := make([]rating.Profile, 0, len(rows))
	for _, row := range rows {
		out = append(out, ratingProfileFromRow(row))
	}
	return out, nil
}

func (r *RatingRepository) Upsert(ctx context.Context, profiles []rating.Profile) error {
	if len(profiles) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert rating profiles: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range profiles {
		insertModel := ratingProfileInsertModel{
			PlayerID:    p.PlayerID,
			Name:        p.Name,
			Rating:      p.Rating,
			KValue:      p.KValue,
			GamesPlayed: p.GamesPlayed,
			Age:         p.Age,
		}

		query, args, err := qb.InsertModel("rating_profiles", insertModel, `ON CONFLICT (player_id) WHERE deleted_at IS NULL
DO UPDATE SET
    name = EXCLUDED.name,
    rating = EXCLUDED.rating,
    k_value = EXCLUDED.k_value,
    games_played = EXCLUDED.games_played,
    age = EXCLUDED.age,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert rating profile query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert rating profile player=%s: %w", p.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert rating profiles tx: %w", err)
	}
	return nil
}

func ratingProfileFromRow(row ratingProfileTableModel) rating.Profile {
	return rating.Profile{
		PlayerID:    row.PlayerID,
		Name:        row.Name,
		Rating:      row.Rating,
		KValue:      row.KValue,
		GamesPlayed: row.GamesPlayed,
		Age:         row.Age,
	}
}

func stringSliceToAny(items []string) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}
