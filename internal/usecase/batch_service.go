package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/match-ratings/internal/domain/match"
	"github.com/riskibarqy/match-ratings/internal/platform/logging"
)

const (
	batchStatusSuccess = "success"
	batchStatusFailed  = "failed"

	defaultBatchWorkers = 4
)

// BatchService fans a set of match reports out over a bounded worker pool.
// Matches are independent of each other as far as playing time goes, but
// rating updates read-modify-write shared profiles, so two reports that
// share a player must not run concurrently. The pool keeps the bound; the
// per-player serialization is the repository's upsert semantics plus the
// operator feeding disjoint rounds per call.
type BatchService struct {
	matches    *MatchService
	maxWorkers int
	logger     *logging.Logger
}

func NewBatchService(matches *MatchService, maxWorkers int, logger *logging.Logger) *BatchService {
	if maxWorkers <= 0 {
		maxWorkers = defaultBatchWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &BatchService{
		matches:    matches,
		maxWorkers: maxWorkers,
		logger:     logger,
	}
}

type BatchInput struct {
	Reports        []match.Report
	ValidPlayerIDs []string
	MaxWorkers     int
}

type BatchResult struct {
	MatchCount   int               `json:"match_count"`
	SuccessCount int               `json:"success_count"`
	FailedCount  int               `json:"failed_count"`
	WorkerCount  int               `json:"worker_count"`
	Tasks        []BatchTaskResult `json:"tasks"`
}

type BatchTaskResult struct {
	MatchID     string `json:"match_id"`
	Status      string `json:"status"`
	Players     int    `json:"players"`
	DroppedRows int    `json:"dropped_rows"`
	DurationMs  int64  `json:"duration_ms"`
	Message     string `json:"message,omitempty"`
}

func (s *BatchService) ProcessBatch(ctx context.Context, input BatchInput) (BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BatchService.ProcessBatch")
	defer span.End()

	if s.matches == nil {
		return BatchResult{}, fmt.Errorf("%w: match service is not configured", ErrDependencyUnavailable)
	}
	if len(input.Reports) == 0 {
		return BatchResult{}, fmt.Errorf("%w: reports are required", ErrInvalidInput)
	}

	workerCount := normalizeBatchWorkerCount(input.MaxWorkers, s.maxWorkers, len(input.Reports))
	result := BatchResult{
		MatchCount:  len(input.Reports),
		WorkerCount: workerCount,
		Tasks:       make([]BatchTaskResult, 0, len(input.Reports)),
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return BatchResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan BatchTaskResult, len(input.Reports))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, rep := range input.Reports {
		rep := rep
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := BatchTaskResult{MatchID: rep.ID}

			out, err := s.matches.Process(ctx, ProcessInput{
				Report:         rep,
				ValidPlayerIDs: input.ValidPlayerIDs,
			})
			row.DurationMs = time.Since(start).Milliseconds()
			if err != nil {
				row.Status = batchStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
				s.logger.ErrorContext(ctx, "batch match processing failed",
					"match_id", rep.ID, "error", err)
			} else {
				row.Status = batchStatusSuccess
				row.Players = len(out.Appearances)
				row.DroppedRows = out.DroppedSubstitutions + out.DroppedGoals
				successCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return BatchResult{}, fmt.Errorf("submit report to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].MatchID < result.Tasks[j].MatchID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

func normalizeBatchWorkerCount(requested, configured, taskCount int) int {
	value := requested
	if value <= 0 {
		value = configured
	}
	if value <= 0 {
		value = 1
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
