package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/match-ratings/internal/domain/appearance"
	"github.com/riskibarqy/match-ratings/internal/domain/rating"
)

// RatingService serves read paths over the persisted rating profiles and
// per-match appearances.
type RatingService struct {
	ratingRepo     rating.Repository
	appearanceRepo appearance.Repository
}

func NewRatingService(ratingRepo rating.Repository, appearanceRepo appearance.Repository) *RatingService {
	return &RatingService{
		ratingRepo:     ratingRepo,
		appearanceRepo: appearanceRepo,
	}
}

func (s *RatingService) GetPlayerRating(ctx context.Context, playerID string) (rating.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.GetPlayerRating")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return rating.Profile{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	profile, found, err := s.ratingRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return rating.Profile{}, fmt.Errorf("get rating profile: %w", err)
	}
	if !found {
		return rating.Profile{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return profile, nil
}

func (s *RatingService) ListRatings(ctx context.Context) ([]rating.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.ListRatings")
	defer span.End()

	profiles, err := s.ratingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rating profiles: %w", err)
	}
	return profiles, nil
}

func (s *RatingService) ListAppearancesByMatch(ctx context.Context, matchID string) ([]appearance.Appearance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.ListAppearancesByMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	rows, err := s.appearanceRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list appearances: %w", err)
	}
	return rows, nil
}
