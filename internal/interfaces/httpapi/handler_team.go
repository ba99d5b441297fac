package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/amateur-league/internal/domain/player"
	"github.com/riskibarqy/amateur-league/internal/usecase"
)

type rosterPlayerRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Position string `json:"position" validate:"required,oneof=GK DEF MID FWD"`
	Number   int    `json:"number" validate:"min=0,max=99"`
}

type createTeamRequest struct {
	Name    string                `json:"name" validate:"required,max=120"`
	Logo    string                `json:"logo" validate:"max=2048"`
	Players []rosterPlayerRequest `json:"players" validate:"dive"`
}

type updateTeamRequest struct {
	Name    string                 `json:"name" validate:"required,max=120"`
	Logo    string                 `json:"logo" validate:"max=2048"`
	Players *[]rosterPlayerRequest `json:"players" validate:"omitempty,dive"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamWithPlayersDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamWithPlayersToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	item, err := h.teamService.Get(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamWithPlayersToDTO(item))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.Create(ctx, usecase.CreateTeamInput{
		Name:    req.Name,
		Logo:    req.Logo,
		Players: rosterInputs(req.Players),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamWithPlayersToDTO(item))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	var req updateTeamRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.teamService.Update(ctx, teamID, usecase.UpdateTeamInput{
		Name: req.Name,
		Logo: req.Logo,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	// A players array in the payload replaces the whole roster; absence
	// leaves the roster untouched.
	if req.Players != nil {
		if _, err := h.teamService.ReplaceRoster(ctx, teamID, rosterInputs(*req.Players)); err != nil {
			h.logger.WarnContext(ctx, "replace roster failed", "team_id", teamID, "error", err)
			writeError(ctx, w, err)
			return
		}
	}

	item, err := h.teamService.Get(ctx, updated.ID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamWithPlayersToDTO(item))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	if err := h.teamService.Delete(ctx, teamID); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": teamID})
}

func rosterInputs(items []rosterPlayerRequest) []usecase.RosterPlayerInput {
	out := make([]usecase.RosterPlayerInput, 0, len(items))
	for _, item := range items {
		out = append(out, usecase.RosterPlayerInput{
			Name:     item.Name,
			Position: player.Position(item.Position),
			Number:   item.Number,
		})
	}
	return out
}
