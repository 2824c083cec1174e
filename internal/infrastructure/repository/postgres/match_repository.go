package postgres

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/match-ratings/internal/domain/match"
	qb "github.com/riskibarqy/match-ratings/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

var matchReportSelectColumns = []string{
	"id",
	"match_id",
	"home_team",
	"away_team",
	"payload",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Save(ctx context.Context, report match.Report) error {
	payload, err := encodeMatchReportPayload(report)
	if err != nil {
		return fmt.Errorf("encode match report payload match=%s: %w", report.ID, err)
	}

	insertModel := matchReportInsertModel{
		MatchID:  report.ID,
		HomeTeam: report.HomeTeam,
		AwayTeam: report.AwayTeam,
		Payload:  payload,
	}

	query, args, err := qb.InsertModel("match_reports", insertModel, `ON CONFLICT (match_id) WHERE deleted_at IS NULL
DO UPDATE SET
    home_team = EXCLUDED.home_team,
    away_team = EXCLUDED.away_team,
    payload = EXCLUDED.payload,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert match report query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert match report match=%s: %w", report.ID, err)
	}
	return nil
}

func (r *MatchRepository) Get(ctx context.Context, id string) (match.Report, bool, error) {
	query, args, err := qb.Select(matchReportSelectColumns...).From("match_reports").
		Where(
			qb.Eq("match_id", id),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Report{}, false, fmt.Errorf("build select match report query: %w", err)
	}

	var row matchReportTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Report{}, false, nil
		}
		return match.Report{}, false, fmt.Errorf("select match report: %w", err)
	}

	report, err := decodeMatchReportPayload(row)
	if err != nil {
		return match.Report{}, false, fmt.Errorf("decode match report payload match=%s: %w", id, err)
	}
	return report, true, nil
}

func encodeMatchReportPayload(report match.Report) (string, error) {
	payload := matchReportPayload{
		Roster:        make([]matchRosterEntryPayload, 0, len(report.Roster)),
		Substitutions: report.Substitutions,
		Goals:         report.Goals,
	}
	for _, entry := range report.Roster {
		payload.Roster = append(payload.Roster, matchRosterEntryPayload{Raw: entry.Raw, Team: entry.Team})
	}
	return sonic.MarshalString(payload)
}

func decodeMatchReportPayload(row matchReportTableModel) (match.Report, error) {
	var payload matchReportPayload
	if err := sonic.UnmarshalString(row.Payload, &payload); err != nil {
		return match.Report{}, err
	}

	report := match.Report{
		ID:            row.MatchID,
		HomeTeam:      row.HomeTeam,
		AwayTeam:      row.AwayTeam,
		Roster:        make([]match.RosterEntry, 0, len(payload.Roster)),
		Substitutions: payload.Substitutions,
		Goals:         payload.Goals,
	}
	for _, entry := range payload.Roster {
		report.Roster = append(report.Roster, match.RosterEntry{Raw: entry.Raw, Team: entry.Team})
	}
	return report, nil
}
