package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/match-ratings/internal/domain/appearance"
)

type AppearanceRepository struct {
	mu      sync.RWMutex
	byMatch map[string]map[string]appearance.Appearance
}

func NewAppearanceRepository() *AppearanceRepository {
	return &AppearanceRepository{
		byMatch: make(map[string]map[string]appearance.Appearance),
	}
}

func (r *AppearanceRepository) UpsertBatch(_ context.Context, rows []appearance.Appearance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range rows {
		index, ok := r.byMatch[row.MatchID]
		if !ok {
			index = make(map[string]appearance.Appearance)
			r.byMatch[row.MatchID] = index
		}
		index[row.PlayerID] = row
	}
	return nil
}

func (r *AppearanceRepository) ListByMatch(_ context.Context, matchID string) ([]appearance.Appearance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	index := r.byMatch[matchID]
	out := make([]appearance.Appearance, 0, len(index))
	for _, row := range index {
		out = append(out, row)
	}
	return out, nil
}
