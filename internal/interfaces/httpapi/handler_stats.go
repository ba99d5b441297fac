package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/amateur-league/internal/usecase"
)

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	standings, err := h.standingsService.Compute(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "compute standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingDTO, 0, len(standings))
	for _, s := range standings {
		items = append(items, standingToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRankings")
	defer span.End()

	limit, err := parseLimit(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rankings, err := h.statsService.Overview(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "compute rankings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankingsDTO{
		Scorers:     scorersToDTO(rankings.Scorers),
		Assists:     assistsToDTO(rankings.Assists),
		Cards:       cardOffendersToDTO(rankings.Cards),
		Goalkeepers: goalkeepersToDTO(rankings.Goalkeepers),
	})
}

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
	defer span.End()

	limit, err := parseLimit(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.statsService.TopScorers(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list top scorers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scorersToDTO(entries))
}

func (h *Handler) ListTopAssists(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopAssists")
	defer span.End()

	limit, err := parseLimit(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.statsService.TopAssists(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list top assists failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, assistsToDTO(entries))
}

func (h *Handler) ListCardOffenders(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCardOffenders")
	defer span.End()

	limit, err := parseLimit(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.statsService.CardOffenders(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list card offenders failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cardOffendersToDTO(entries))
}

func (h *Handler) ListBestGoalkeepers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBestGoalkeepers")
	defer span.End()

	limit, err := parseLimit(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.statsService.BestGoalkeepers(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list best goalkeepers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, goalkeepersToDTO(entries))
}

// parseLimit reads the optional ?limit= query parameter; zero means use
// the service default.
func parseLimit(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid limit %q", usecase.ErrInvalidInput, raw)
	}
	if limit < 1 {
		return 0, fmt.Errorf("%w: limit must be >= 1", usecase.ErrInvalidInput)
	}

	return limit, nil
}
