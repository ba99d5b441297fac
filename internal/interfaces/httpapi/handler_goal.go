package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/amateur-league/internal/usecase"
)

type recordGoalRequest struct {
	ScorerID    string `json:"scorerId" validate:"required"`
	AssistantID string `json:"assistantId"`
	TeamID      string `json:"teamId" validate:"required"`
	Minute      int    `json:"minute" validate:"min=1,max=120"`
}

type updateGoalRequest struct {
	ScorerID    string `json:"scorerId" validate:"required"`
	AssistantID string `json:"assistantId"`
	TeamID      string `json:"teamId" validate:"required"`
	Minute      int    `json:"minute" validate:"min=1,max=120"`
}

func (h *Handler) RecordGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordGoal")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req recordGoalRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.resultService.RecordGoal(ctx, usecase.RecordGoalInput{
		MatchID:     matchID,
		ScorerID:    req.ScorerID,
		AssistantID: req.AssistantID,
		TeamID:      req.TeamID,
		Minute:      req.Minute,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record goal failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]any{
		"matchId":   updated.ID,
		"homeScore": updated.HomeScore,
		"awayScore": updated.AwayScore,
	})
}

func (h *Handler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGoal")
	defer span.End()

	goalID := strings.TrimSpace(r.PathValue("goalID"))
	var req updateGoalRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.resultService.UpdateGoal(ctx, goalID, usecase.UpdateGoalInput{
		ScorerID:    req.ScorerID,
		AssistantID: req.AssistantID,
		TeamID:      req.TeamID,
		Minute:      req.Minute,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update goal failed", "goal_id", goalID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"matchId":   updated.ID,
		"homeScore": updated.HomeScore,
		"awayScore": updated.AwayScore,
	})
}

func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGoal")
	defer span.End()

	goalID := strings.TrimSpace(r.PathValue("goalID"))
	updated, err := h.resultService.RemoveGoal(ctx, goalID)
	if err != nil {
		h.logger.WarnContext(ctx, "delete goal failed", "goal_id", goalID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"matchId":   updated.ID,
		"homeScore": updated.HomeScore,
		"awayScore": updated.AwayScore,
	})
}
