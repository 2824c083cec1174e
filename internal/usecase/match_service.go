package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/match-ratings/internal/domain/appearance"
	"github.com/riskibarqy/match-ratings/internal/domain/match"
	"github.com/riskibarqy/match-ratings/internal/domain/rating"
	"github.com/riskibarqy/match-ratings/internal/domain/report"
	"github.com/riskibarqy/match-ratings/internal/domain/roster"
	"github.com/riskibarqy/match-ratings/internal/platform/logging"
)

const defaultInitialRating = 1500

// MatchService runs the per-match pipeline: parse the raw logs into typed
// events, reconstruct playing time, attribute goals, then feed both sides
// through the rating engine and persist the results. One call touches one
// match only, so concurrent calls over different matches need no
// coordination.
type MatchService struct {
	matchRepo       match.Repository
	appearanceRepo  appearance.Repository
	ratingRepo      rating.Repository
	aliasExceptions map[string]string
	initialRating   float64
	logger          *logging.Logger
}

func NewMatchService(
	matchRepo match.Repository,
	appearanceRepo appearance.Repository,
	ratingRepo rating.Repository,
	aliasExceptions map[string]string,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		matchRepo:       matchRepo,
		appearanceRepo:  appearanceRepo,
		ratingRepo:      ratingRepo,
		aliasExceptions: aliasExceptions,
		initialRating:   defaultInitialRating,
		logger:          logger,
	}
}

type ProcessInput struct {
	Report match.Report
	// ValidPlayerIDs is the externally supplied squad filter. Empty means
	// the filter source was unavailable: the roster is kept unfiltered
	// and the degraded mode is logged, not failed.
	ValidPlayerIDs []string
}

type ProcessResult struct {
	MatchID              string                  `json:"match_id"`
	Appearances          []appearance.Appearance `json:"appearances"`
	Ratings              []rating.Profile        `json:"ratings"`
	DroppedSubstitutions int                     `json:"dropped_substitutions"`
	DroppedGoals         int                     `json:"dropped_goals"`
	UnresolvedTeams      []string                `json:"unresolved_teams,omitempty"`
	Filtered             bool                    `json:"filtered"`
}

func (s *MatchService) Process(ctx context.Context, input ProcessInput) (ProcessResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Process")
	defer span.End()

	rep := input.Report
	if err := rep.Validate(); err != nil {
		return ProcessResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	entries := make([]roster.Entry, 0, len(rep.Roster))
	for _, row := range rep.Roster {
		entries = append(entries, roster.Entry{Raw: row.Raw, Team: row.Team})
	}
	squad := roster.Build(entries, rep.HomeTeam)

	grammar := report.DetectSubstitutionGrammar(rep.Substitutions, rep.HomeTeam, rep.AwayTeam)
	subs := report.ParseSubstitutions(rep.Substitutions, grammar)
	if subs.Dropped() > 0 {
		s.logger.WarnContext(ctx, "substitution lines dropped",
			"match_id", rep.ID, "dropped", subs.Dropped(), "lines", subs.DroppedLines)
	}

	goals := report.ParseGoals(rep.Goals, rep.HomeTeam, rep.AwayTeam, s.aliasExceptions)
	if goals.Dropped() > 0 {
		s.logger.WarnContext(ctx, "goal lines dropped",
			"match_id", rep.ID, "dropped", goals.Dropped(), "lines", goals.DroppedLines)
	}

	resolver := report.NewAliasResolver(rep.HomeTeam, rep.AwayTeam, s.aliasExceptions)
	squad, applied := roster.ApplySubstitutions(squad, subs.Events, resolver)
	if len(applied.UnresolvedTeams) > 0 {
		s.logger.WarnContext(ctx, "unresolved team aliases",
			"match_id", rep.ID, "teams", applied.UnresolvedTeams)
	}
	squad = roster.ApplyGoals(squad, goals.Events)

	squad, filtered := s.filterRoster(ctx, rep.ID, squad, input.ValidPlayerIDs)

	profiles, err := s.updateRatings(ctx, squad)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("update ratings for match %s: %w", rep.ID, err)
	}

	rows := appearanceRows(rep.ID, squad)
	if err := s.matchRepo.Save(ctx, rep); err != nil {
		return ProcessResult{}, fmt.Errorf("save match report: %w", err)
	}
	if err := s.appearanceRepo.UpsertBatch(ctx, rows); err != nil {
		return ProcessResult{}, fmt.Errorf("upsert appearances: %w", err)
	}
	if err := s.ratingRepo.Upsert(ctx, profiles); err != nil {
		return ProcessResult{}, fmt.Errorf("upsert rating profiles: %w", err)
	}

	return ProcessResult{
		MatchID:              rep.ID,
		Appearances:          rows,
		Ratings:              profiles,
		DroppedSubstitutions: subs.Dropped(),
		DroppedGoals:         goals.Dropped(),
		UnresolvedTeams:      applied.UnresolvedTeams,
		Filtered:             filtered,
	}, nil
}

// filterRoster applies the external squad filter. An empty set is the
// documented degraded mode: keep everything and continue.
func (s *MatchService) filterRoster(ctx context.Context, matchID string, squad roster.Roster, validIDs []string) (roster.Roster, bool) {
	if len(validIDs) == 0 {
		s.logger.WarnContext(ctx, "valid player id set is empty, roster left unfiltered", "match_id", matchID)
		return squad, false
	}

	valid := make(map[string]struct{}, len(validIDs))
	for _, id := range validIDs {
		valid[id] = struct{}{}
	}

	out := make(roster.Roster, 0, len(squad))
	for _, p := range squad {
		if _, ok := valid[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out, true
}

func (s *MatchService) updateRatings(ctx context.Context, squad roster.Roster) ([]rating.Profile, error) {
	ids := make([]string, 0, len(squad))
	for _, p := range squad {
		if p.ID != "" {
			ids = append(ids, p.ID)
		}
	}

	known, err := s.ratingRepo.GetByPlayerIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load rating profiles: %w", err)
	}
	byID := make(map[string]rating.Profile, len(known))
	for _, profile := range known {
		byID[profile.PlayerID] = profile
	}

	var home, away []rating.PlayerResult
	for _, p := range squad {
		if p.ID == "" {
			s.logger.WarnContext(ctx, "player without id skipped for rating", "name", p.Name, "team", p.Team)
			continue
		}
		profile, ok := byID[p.ID]
		if !ok {
			profile = rating.Profile{PlayerID: p.ID, Name: p.Name, Rating: s.initialRating}
		}
		result := rating.PlayerResult{
			Profile:      profile,
			Minutes:      p.Minutes,
			GoalsFor:     p.GoalsFor,
			GoalsAgainst: p.GoalsAgainst,
		}
		if p.Status == roster.StatusHome {
			home = append(home, result)
		} else {
			away = append(away, result)
		}
	}

	updatedHome, err := rating.UpdateTeam(home, away)
	if err != nil {
		return nil, wrapRatingErr(err)
	}
	updatedAway, err := rating.UpdateTeam(away, home)
	if err != nil {
		return nil, wrapRatingErr(err)
	}

	return append(updatedHome, updatedAway...), nil
}

func wrapRatingErr(err error) error {
	if errors.Is(err, rating.ErrZeroTeamMinutes) {
		return fmt.Errorf("%w: %v", ErrDataIntegrity, err)
	}
	return err
}

func appearanceRows(matchID string, squad roster.Roster) []appearance.Appearance {
	rows := make([]appearance.Appearance, 0, len(squad))
	for _, p := range squad {
		if p.ID == "" {
			continue
		}
		rows = append(rows, appearance.Appearance{
			MatchID:      matchID,
			PlayerID:     p.ID,
			Name:         p.Name,
			Team:         p.Team,
			Status:       string(p.Status),
			Entered:      p.Entered,
			Exited:       p.Exited,
			Minutes:      p.Minutes,
			GoalsFor:     p.GoalsFor,
			GoalsAgainst: p.GoalsAgainst,
		})
	}
	return rows
}
