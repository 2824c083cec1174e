package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetPlayerRating(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerRating")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	profile, err := h.ratingService.GetPlayerRating(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player rating failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ratingProfileToDTO(profile))
}

func (h *Handler) ListRatings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRatings")
	defer span.End()

	profiles, err := h.ratingService.ListRatings(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list ratings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]ratingProfileDTO, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, ratingProfileToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
