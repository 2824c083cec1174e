package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/match-ratings/internal/domain/rating"
	"github.com/riskibarqy/match-ratings/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/match-ratings/internal/platform/cache"
)

type countingRepository struct {
	rating.Repository
	getCalls  int
	listCalls int
}

func (c *countingRepository) GetByPlayerID(ctx context.Context, playerID string) (rating.Profile, bool, error) {
	c.getCalls++
	return c.Repository.GetByPlayerID(ctx, playerID)
}

func (c *countingRepository) List(ctx context.Context) ([]rating.Profile, error) {
	c.listCalls++
	return c.Repository.List(ctx)
}

func newCountingRepository() *countingRepository {
	return &countingRepository{
		Repository: memory.NewRatingRepository([]rating.Profile{
			{PlayerID: "100001", Name: "7 Everaldo", Rating: 1632.4, GamesPlayed: 41, Age: 28},
		}),
	}
}

func TestRatingRepository_GetByPlayerIDCachesHits(t *testing.T) {
	backing := newCountingRepository()
	repo := NewRatingRepository(backing, basecache.NewStore(time.Minute))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		profile, found, err := repo.GetByPlayerID(ctx, "100001")
		if err != nil {
			t.Fatalf("get by player id: %v", err)
		}
		if !found {
			t.Fatalf("expected profile to be found")
		}
		if profile.PlayerID != "100001" {
			t.Fatalf("unexpected profile: %+v", profile)
		}
	}

	if backing.getCalls != 1 {
		t.Fatalf("backing repository hit %d times, want 1", backing.getCalls)
	}
}

func TestRatingRepository_UpsertInvalidates(t *testing.T) {
	backing := newCountingRepository()
	repo := NewRatingRepository(backing, basecache.NewStore(time.Minute))
	ctx := context.Background()

	if _, err := repo.List(ctx); err != nil {
		t.Fatalf("first list: %v", err)
	}
	if _, err := repo.List(ctx); err != nil {
		t.Fatalf("second list: %v", err)
	}
	if backing.listCalls != 1 {
		t.Fatalf("backing list hit %d times before upsert, want 1", backing.listCalls)
	}

	updated := rating.Profile{PlayerID: "100001", Name: "7 Everaldo", Rating: 1650.0, GamesPlayed: 42, Age: 28}
	if err := repo.Upsert(ctx, []rating.Profile{updated}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	profiles, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list after upsert: %v", err)
	}
	if backing.listCalls != 2 {
		t.Fatalf("backing list hit %d times after upsert, want 2", backing.listCalls)
	}
	if len(profiles) != 1 || profiles[0].Rating != 1650.0 {
		t.Fatalf("expected refreshed profile, got %+v", profiles)
	}

	profile, found, err := repo.GetByPlayerID(ctx, "100001")
	if err != nil || !found {
		t.Fatalf("get after upsert: found=%v err=%v", found, err)
	}
	if profile.GamesPlayed != 42 {
		t.Fatalf("expected refreshed games played, got %d", profile.GamesPlayed)
	}
}
