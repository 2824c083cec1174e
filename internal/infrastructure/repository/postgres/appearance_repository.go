package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/match-ratings/internal/domain/appearance"
	qb "github.com/riskibarqy/match-ratings/internal/platform/querybuilder"
)

type AppearanceRepository struct {
	db *sqlx.DB
}

var appearanceSelectColumns = []string{
	"id",
	"match_id",
	"player_id",
	"name",
	"team",
	"status",
	"entered",
	"exited",
	"minutes",
	"goals_for",
	"goals_against",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewAppearanceRepository(db *sqlx.DB) *AppearanceRepository {
	return &AppearanceRepository{db: db}
}

func (r *AppearanceRepository) UpsertBatch(ctx context.Context, rows []appearance.Appearance) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert appearances: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, row := range rows {
		insertModel := appearanceInsertModel{
			MatchID:      row.MatchID,
			PlayerID:     row.PlayerID,
			Name:         row.Name,
			Team:         row.Team,
			Status:       row.Status,
			Entered:      row.Entered,
			Exited:       row.Exited,
			Minutes:      row.Minutes,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
		}

		query, args, err := qb.InsertModel("appearances", insertModel, `ON CONFLICT (match_id, player_id) WHERE deleted_at IS NULL
DO UPDATE SET
    name = EXCLUDED.name,
    team = EXCLUDED.team,
    status = EXCLUDED.status,
    entered = EXCLUDED.entered,
    exited = EXCLUDED.exited,
    minutes = EXCLUDED.minutes,
    goals_for = EXCLUDED.goals_for,
    goals_against = EXCLUDED.goals_against,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert appearance query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert appearance match=%s player=%s: %w", row.MatchID, row.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert appearances tx: %w", err)
	}
	return nil
}

func (r *AppearanceRepository) ListByMatch(ctx context.Context, matchID string) ([]appearance.Appearance, error) {
	query, args, err := qb.Select(appearanceSelectColumns...).From("appearances").
		Where(
			qb.Eq("match_id", matchID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select appearances query: %w", err)
	}

	var rows []appearanceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select appearances by match: %w", err)
	}

	out := make([]appearance.Appearance, 0, len(rows))
	for _, row := range rows {
		out = append(out, appearance.Appearance{
			MatchID:      row.MatchID,
			PlayerID:     row.PlayerID,
			Name:         row.Name,
			Team:         row.Team,
			Status:       row.Status,
			Entered:      row.Entered,
			Exited:       row.Exited,
			Minutes:      row.Minutes,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
		})
	}
	return out, nil
}
