package cache

import (
	"context"

	"github.com/riskibarqy/match-ratings/internal/domain/rating"
	basecache "github.com/riskibarqy/match-ratings/internal/platform/cache"
)

// RatingRepository is a read-through cache in front of a rating.Repository.
// Writes invalidate every cached key so readers never see a stale profile
// after a match has been processed.
type RatingRepository struct {
	next  rating.Repository
	cache *basecache.Store
}

func NewRatingRepository(next rating.Repository, cache *basecache.Store) *RatingRepository {
	return &RatingRepository{next: next, cache: cache}
}

func (r *RatingRepository) GetByPlayerID(ctx context.Context, playerID string) (rating.Profile, bool, error) {
	key := "rating:id:" + playerID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByPlayerID(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedProfileByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return rating.Profile{}, false, err
	}

	cached, _ := v.(cachedProfileByID)
	return cached.value, cached.exists, nil
}

// GetByPlayerIDs feeds the rating update path, which immediately writes back,
// so it always reads through to the backing store.
func (r *RatingRepository) GetByPlayerIDs(ctx context.Context, playerIDs []string) ([]rating.Profile, error) {
	return r.next.GetByPlayerIDs(ctx, playerIDs)
}

func (r *RatingRepository) List(ctx context.Context) ([]rating.Profile, error) {
	v, err := r.cache.GetOrLoad(ctx, "rating:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]rating.Profile(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]rating.Profile)
	return append([]rating.Profile(nil), items...), nil
}

func (r *RatingRepository) Upsert(ctx context.Context, profiles []rating.Profile) error {
	if err := r.next.Upsert(ctx, profiles); err != nil {
		return err
	}

	r.cache.Delete(ctx, "rating:list")
	for _, profile := range profiles {
		r.cache.Delete(ctx, "rating:id:"+profile.PlayerID)
	}
	return nil
}

type cachedProfileByID struct {
	value  rating.Profile
	exists bool
}
