package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/amateur-league/internal/domain/card"
	"github.com/riskibarqy/amateur-league/internal/usecase"
)

type recordCardRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	TeamID   string `json:"teamId" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=YELLOW RED"`
	Minute   int    `json:"minute" validate:"min=0,max=120"`
}

type updateCardRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	TeamID   string `json:"teamId" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=YELLOW RED"`
	Minute   int    `json:"minute" validate:"min=0,max=120"`
}

func (h *Handler) RecordCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordCard")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req recordCardRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.resultService.RecordCard(ctx, usecase.RecordCardInput{
		MatchID:  matchID,
		PlayerID: req.PlayerID,
		TeamID:   req.TeamID,
		Type:     card.Type(req.Type),
		Minute:   req.Minute,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record card failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, cardToDTO(item))
}

func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCard")
	defer span.End()

	cardID := strings.TrimSpace(r.PathValue("cardID"))
	var req updateCardRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.resultService.UpdateCard(ctx, cardID, usecase.UpdateCardInput{
		PlayerID: req.PlayerID,
		TeamID:   req.TeamID,
		Type:     card.Type(req.Type),
		Minute:   req.Minute,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update card failed", "card_id", cardID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cardToDTO(item))
}

func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteCard")
	defer span.End()

	cardID := strings.TrimSpace(r.PathValue("cardID"))
	if err := h.resultService.RemoveCard(ctx, cardID); err != nil {
		h.logger.WarnContext(ctx, "delete card failed", "card_id", cardID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": cardID})
}
