package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/match-ratings/internal/domain/appearance"
	"github.com/riskibarqy/match-ratings/internal/domain/rating"
)

type ratingRepositoryMock struct {
	mock.Mock
}

func (m *ratingRepositoryMock) GetByPlayerID(ctx context.Context, playerID string) (rating.Profile, bool, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(rating.Profile), args.Bool(1), args.Error(2)
}

func (m *ratingRepositoryMock) GetByPlayerIDs(ctx context.Context, playerIDs []string) ([]rating.Profile, error) {
	args := m.Called(ctx, playerIDs)
	profiles, _ := args.Get(0).([]rating.Profile)
	return profiles, args.Error(1)
}

func (m *ratingRepositoryMock) List(ctx context.Context) ([]rating.Profile, error) {
	args := m.Called(ctx)
	profiles, _ := args.Get(0).([]rating.Profile)
	return profiles, args.Error(1)
}

func (m *ratingRepositoryMock) Upsert(ctx context.Context, profiles []rating.Profile) error {
	args := m.Called(ctx, profiles)
	return args.Error(0)
}

type appearanceRepositoryMock struct {
	mock.Mock
}

func (m *appearanceRepositoryMock) UpsertBatch(ctx context.Context, rows []appearance.Appearance) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

func (m *appearanceRepositoryMock) ListByMatch(ctx context.Context, matchID string) ([]appearance.Appearance, error) {
	args := m.Called(ctx, matchID)
	rows, _ := args.Get(0).([]appearance.Appearance)
	return rows, args.Error(1)
}

func TestRatingService_GetPlayerRating(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ratingRepo := &ratingRepositoryMock{}
	appearanceRepo := &appearanceRepositoryMock{}
	service := NewRatingService(ratingRepo, appearanceRepo)

	expected := rating.Profile{PlayerID: "100001", Name: "7 Everaldo", Rating: 1632.4, GamesPlayed: 41, Age: 28}
	ratingRepo.
		On("GetByPlayerID", mock.Anything, "100001").
		Return(expected, true, nil).
		Once()

	profile, err := service.GetPlayerRating(ctx, "  100001  ")
	if err != nil {
		t.Fatalf("get player rating: %v", err)
	}
	if profile != expected {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	ratingRepo.AssertExpectations(t)
}

func TestRatingService_GetPlayerRating_NotFound(t *testing.T) {
	t.Parallel()

	ratingRepo := &ratingRepositoryMock{}
	service := NewRatingService(ratingRepo, &appearanceRepositoryMock{})

	ratingRepo.
		On("GetByPlayerID", mock.Anything, "999999").
		Return(rating.Profile{}, false, nil).
		Once()

	_, err := service.GetPlayerRating(context.Background(), "999999")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRatingService_GetPlayerRating_EmptyID(t *testing.T) {
	t.Parallel()

	service := NewRatingService(&ratingRepositoryMock{}, &appearanceRepositoryMock{})

	_, err := service.GetPlayerRating(context.Background(), "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRatingService_ListAppearancesByMatch(t *testing.T) {
	t.Parallel()

	appearanceRepo := &appearanceRepositoryMock{}
	service := NewRatingService(&ratingRepositoryMock{}, appearanceRepo)

	rows := []appearance.Appearance{
		{MatchID: "2026-03-08-atletico-cruzeiro", PlayerID: "100001", Minutes: 90},
	}
	appearanceRepo.
		On("ListByMatch", mock.Anything, "2026-03-08-atletico-cruzeiro").
		Return(rows, nil).
		Once()

	got, err := service.ListAppearancesByMatch(context.Background(), "2026-03-08-atletico-cruzeiro")
	if err != nil {
		t.Fatalf("list appearances: %v", err)
	}
	if len(got) != 1 || got[0].PlayerID != "100001" {
		t.Fatalf("unexpected rows: %+v", got)
	}
	appearanceRepo.AssertExpectations(t)
}
