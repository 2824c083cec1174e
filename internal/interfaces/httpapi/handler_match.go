package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/match-ratings/internal/domain/match"
	"github.com/riskibarqy/match-ratings/internal/usecase"
)

func (h *Handler) ProcessMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ProcessMatch")
	defer span.End()

	var req processMatchRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	out, err := h.matchService.Process(ctx, usecase.ProcessInput{
		Report:         reportFromRecord(req.matchReportRecord),
		ValidPlayerIDs: req.ValidPlayerIDs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "process match failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, processResultToDTO(out))
}

func (h *Handler) ProcessBatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ProcessBatch")
	defer span.End()

	var req processBatchRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	reports := make([]match.Report, 0, len(req.Matches))
	for _, record := range req.Matches {
		reports = append(reports, reportFromRecord(record))
	}

	out, err := h.batchService.ProcessBatch(ctx, usecase.BatchInput{
		Reports:        reports,
		ValidPlayerIDs: req.ValidPlayerIDs,
		MaxWorkers:     req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "process batch failed", "match_count", len(reports), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, batchResultToDTO(out))
}

func (h *Handler) ListMatchAppearances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchAppearances")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	rows, err := h.ratingService.ListAppearancesByMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list match appearances failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]appearanceDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, appearanceToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func reportFromRecord(record matchReportRecord) match.Report {
	roster := make([]match.RosterEntry, 0, len(record.Roster))
	for _, entry := range record.Roster {
		roster = append(roster, match.RosterEntry{Raw: entry.Raw, Team: entry.Team})
	}

	return match.Report{
		ID:            strings.TrimSpace(record.MatchID),
		HomeTeam:      strings.TrimSpace(record.HomeTeam),
		AwayTeam:      strings.TrimSpace(record.AwayTeam),
		Roster:        roster,
		Substitutions: record.Substitutions,
		Goals:         record.Goals,
	}
}
