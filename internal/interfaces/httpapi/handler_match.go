package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/amateur-league/internal/domain/card"
	"github.com/riskibarqy/amateur-league/internal/usecase"
)

type createMatchRequest struct {
	HomeTeamID string `json:"homeTeamId" validate:"required"`
	AwayTeamID string `json:"awayTeamId" validate:"required"`
	MatchDate  string `json:"matchDate" validate:"required"`
}

type replaceResultRequest struct {
	HomeScore int                  `json:"homeScore" validate:"min=0"`
	AwayScore int                  `json:"awayScore" validate:"min=0"`
	Finished  bool                 `json:"finished"`
	Goals     []replaceGoalRequest `json:"goals" validate:"dive"`
	Cards     []replaceCardRequest `json:"cards" validate:"dive"`
}

type replaceGoalRequest struct {
	ScorerID    string `json:"scorerId" validate:"required"`
	AssistantID string `json:"assistantId"`
	TeamID      string `json:"teamId" validate:"required"`
	Minute      int    `json:"minute" validate:"min=1,max=120"`
}

type replaceCardRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	TeamID   string `json:"teamId" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=YELLOW RED"`
	Minute   int    `json:"minute" validate:"min=0,max=120"`
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.matchService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailsList(matches))
}

func (h *Handler) ListUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingMatches")
	defer span.End()

	matches, err := h.matchService.ListUpcoming(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list upcoming matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailsList(matches))
}

func (h *Handler) ListFinishedMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFinishedMatches")
	defer span.End()

	matches, err := h.matchService.ListFinished(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list finished matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailsList(matches))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	item, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailsToDTO(item))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matchDate, err := time.Parse(time.RFC3339, req.MatchDate)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid matchDate, expected RFC3339: %v", usecase.ErrInvalidInput, err))
		return
	}

	item, err := h.matchService.Create(ctx, usecase.CreateMatchInput{
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		MatchDate:  matchDate,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "home_team_id", req.HomeTeamID, "away_team_id", req.AwayTeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchDetailsToDTO(item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	if err := h.matchService.Delete(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": matchID})
}

func (h *Handler) ReplaceMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReplaceMatchResult")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req replaceResultRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.ReplaceResultInput{
		HomeScore: req.HomeScore,
		AwayScore: req.AwayScore,
		Finished:  req.Finished,
	}
	for _, g := range req.Goals {
		input.Goals = append(input.Goals, usecase.ReplaceGoalInput{
			ScorerID:    g.ScorerID,
			AssistantID: g.AssistantID,
			TeamID:      g.TeamID,
			Minute:      g.Minute,
		})
	}
	for _, c := range req.Cards {
		input.Cards = append(input.Cards, usecase.ReplaceCardInput{
			PlayerID: c.PlayerID,
			TeamID:   c.TeamID,
			Type:     card.Type(c.Type),
			Minute:   c.Minute,
		})
	}

	updated, err := h.resultService.ReplaceResult(ctx, matchID, input)
	if err != nil {
		h.logger.WarnContext(ctx, "replace match result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Get(ctx, updated.ID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailsToDTO(item))
}

func (h *Handler) RepairMatchScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RepairMatchScore")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	updated, err := h.resultService.RepairScore(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "repair match score failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"id":        updated.ID,
		"homeScore": updated.HomeScore,
		"awayScore": updated.AwayScore,
	})
}

func (h *Handler) RepairAllScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RepairAllScores")
	defer span.End()

	repaired, err := h.resultService.RepairAllScores(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "repair all scores failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"repaired": repaired})
}

func matchDetailsList(matches []usecase.MatchDetails) []matchDetailsDTO {
	items := make([]matchDetailsDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchDetailsToDTO(m))
	}
	return items
}
