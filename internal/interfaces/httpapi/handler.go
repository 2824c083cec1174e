package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/match-ratings/internal/domain/appearance"
	"github.com/riskibarqy/match-ratings/internal/domain/rating"
	"github.com/riskibarqy/match-ratings/internal/platform/logging"
	"github.com/riskibarqy/match-ratings/internal/usecase"
)

type Handler struct {
	matchService  *usecase.MatchService
	batchService  *usecase.BatchService
	ratingService *usecase.RatingService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	batchService *usecase.BatchService,
	ratingService *usecase.RatingService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:  matchService,
		batchService:  batchService,
		ratingService: ratingService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type rosterEntryRecord struct {
	Raw  string `json:"raw" validate:"required"`
	Team string `json:"team" validate:"required"`
}

type matchReportRecord struct {
	MatchID       string              `json:"match_id" validate:"required,max=120"`
	HomeTeam      string              `json:"home_team" validate:"required,max=120"`
	AwayTeam      string              `json:"away_team" validate:"required,max=120"`
	Roster        []rosterEntryRecord `json:"roster" validate:"required,min=1,dive"`
	Substitutions []string            `json:"substitutions"`
	Goals         []string            `json:"goals"`
}

type processMatchRequest struct {
	matchReportRecord
	ValidPlayerIDs []string `json:"valid_player_ids" validate:"omitempty,dive,required"`
}

type processBatchRequest struct {
	Matches        []matchReportRecord `json:"matches" validate:"required,min=1,dive"`
	ValidPlayerIDs []string            `json:"valid_player_ids" validate:"omitempty,dive,required"`
	MaxWorkers     int                 `json:"max_workers" validate:"gte=0,lte=64"`
}

type appearanceDTO struct {
	MatchID      string `json:"matchId"`
	PlayerID     string `json:"playerId"`
	Name         string `json:"name"`
	Team         string `json:"team"`
	Status       string `json:"status"`
	Entered      int    `json:"entered"`
	Exited       int    `json:"exited"`
	Minutes      int    `json:"minutes"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
}

type ratingProfileDTO struct {
	PlayerID    string  `json:"playerId"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	KValue      int     `json:"kValue"`
	GamesPlayed int     `json:"gamesPlayed"`
	Age         int     `json:"age"`
}

type processResultDTO struct {
	MatchID              string             `json:"matchId"`
	Appearances          []appearanceDTO    `json:"appearances"`
	Ratings              []ratingProfileDTO `json:"ratings"`
	DroppedSubstitutions int                `json:"droppedSubstitutions"`
	DroppedGoals         int                `json:"droppedGoals"`
	UnresolvedTeams      []string           `json:"unresolvedTeams,omitempty"`
	Filtered             bool               `json:"filtered"`
}

type batchTaskDTO struct {
	MatchID     string `json:"matchId"`
	Status      string `json:"status"`
	Players     int    `json:"players"`
	DroppedRows int    `json:"droppedRows"`
	DurationMs  int64  `json:"durationMs"`
	Message     string `json:"message,omitempty"`
}

type batchResultDTO struct {
	MatchCount   int            `json:"matchCount"`
	SuccessCount int            `json:"successCount"`
	FailedCount  int            `json:"failedCount"`
	WorkerCount  int            `json:"workerCount"`
	Tasks        []batchTaskDTO `json:"tasks"`
}

func appearanceToDTO(v appearance.Appearance) appearanceDTO {
	return appearanceDTO{
		MatchID:      v.MatchID,
		PlayerID:     v.PlayerID,
		Name:         v.Name,
		Team:         v.Team,
		Status:       v.Status,
		Entered:      v.Entered,
		Exited:       v.Exited,
		Minutes:      v.Minutes,
		GoalsFor:     v.GoalsFor,
		GoalsAgainst: v.GoalsAgainst,
	}
}

func ratingProfileToDTO(v rating.Profile) ratingProfileDTO {
	return ratingProfileDTO{
		PlayerID:    v.PlayerID,
		Name:        v.Name,
		Rating:      v.Rating,
		KValue:      v.KValue,
		GamesPlayed: v.GamesPlayed,
		Age:         v.Age,
	}
}

func processResultToDTO(v usecase.ProcessResult) processResultDTO {
	rows := make([]appearanceDTO, 0, len(v.Appearances))
	for _, row := range v.Appearances {
		rows = append(rows, appearanceToDTO(row))
	}
	profiles := make([]ratingProfileDTO, 0, len(v.Ratings))
	for _, p := range v.Ratings {
		profiles = append(profiles, ratingProfileToDTO(p))
	}

	return processResultDTO{
		MatchID:              v.MatchID,
		Appearances:          rows,
		Ratings:              profiles,
		DroppedSubstitutions: v.DroppedSubstitutions,
		DroppedGoals:         v.DroppedGoals,
		UnresolvedTeams:      v.UnresolvedTeams,
		Filtered:             v.Filtered,
	}
}

func batchResultToDTO(v usecase.BatchResult) batchResultDTO {
	tasks := make([]batchTaskDTO, 0, len(v.Tasks))
	for _, task := range v.Tasks {
		tasks = append(tasks, batchTaskDTO{
			MatchID:     task.MatchID,
			Status:      task.Status,
			Players:     task.Players,
			DroppedRows: task.DroppedRows,
			DurationMs:  task.DurationMs,
			Message:     task.Message,
		})
	}

	return batchResultDTO{
		MatchCount:   v.MatchCount,
		SuccessCount: v.SuccessCount,
		FailedCount:  v.FailedCount,
		WorkerCount:  v.WorkerCount,
		Tasks:        tasks,
	}
}
