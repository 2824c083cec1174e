package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/match-ratings/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	reports map[string]match.Report
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{reports: make(map[string]match.Report)}
}

func (r *MatchRepository) Save(_ context.Context, report match.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports[report.ID] = report
	return nil
}

func (r *MatchRepository) Get(_ context.Context, id string) (match.Report, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, ok := r.reports[id]
	return report, ok, nil
}
