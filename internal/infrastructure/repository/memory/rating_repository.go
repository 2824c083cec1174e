package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/match-ratings/internal/domain/rating"
)

type RatingRepository struct {
	mu       sync.RWMutex
	profiles map[string]rating.Profile
}

func NewRatingRepository(seed []rating.Profile) *RatingRepository {
	profiles := make(map[string]rating.Profile, len(seed))
	for _, p := range seed {
		profiles[p.PlayerID] = p
	}
	return &RatingRepository{profiles: profiles}
}

func (r *RatingRepository) GetByPlayerID(_ context.Context, playerID string) (rating.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[playerID]
	return p, ok, nil
}

func (r *RatingRepository) GetByPlayerIDs(_ context.Context, playerIDs []string) ([]rating.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]rating.Profile, 0, len(playerIDs))
	for _, id := range playerIDs {
		p, ok := r.profiles[id]
		if !ok {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *RatingRepository) List(_ context.Context) ([]rating.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]rating.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PlayerID < out[j].PlayerID
	})
	return out, nil
}

func (r *RatingRepository) Upsert(_ context.Context, profiles []rating.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range profiles {
		r.profiles[p.PlayerID] = p
	}
	return nil
}
