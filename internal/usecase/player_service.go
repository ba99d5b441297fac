package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/amateur-league/internal/domain/player"
	"github.com/riskibarqy/amateur-league/internal/domain/team"
	idgen "github.com/riskibarqy/amateur-league/internal/platform/id"
)

type CreatePlayerInput struct {
	TeamID   string
	Name     string
	Position player.Position
	Number   int
}

type UpdatePlayerInput struct {
	TeamID   string
	Name     string
	Position player.Position
	Number   int
}

type PlayerService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	ids        idgen.Generator
}

func NewPlayerService(teamRepo team.Repository, playerRepo player.Repository, ids idgen.Generator) *PlayerService {
	return &PlayerService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		ids:        ids,
	}
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	p, found, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !found {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return p, nil
}

func (s *PlayerService) Create(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	_, found, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get team: %w", err)
	}
	if !found {
		return player.Player{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
	}

	if err := s.ensureNumberFree(ctx, input.TeamID, input.Number, ""); err != nil {
		return player.Player{}, err
	}

	playerID, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	p := player.Player{
		ID:       playerID,
		TeamID:   input.TeamID,
		Name:     strings.TrimSpace(input.Name),
		Position: input.Position,
		Number:   input.Number,
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return p, nil
}

func (s *PlayerService) Update(ctx context.Context, playerID string, input UpdatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	existing, found, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !found {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	targetTeam := existing.TeamID
	if input.TeamID != "" && input.TeamID != existing.TeamID {
		_, teamFound, err := s.teamRepo.GetByID(ctx, input.TeamID)
		if err != nil {
			return player.Player{}, fmt.Errorf("get team: %w", err)
		}
		if !teamFound {
			return player.Player{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
		}
		targetTeam = input.TeamID
	}

	if err := s.ensureNumberFree(ctx, targetTeam, input.Number, playerID); err != nil {
		return player.Player{}, err
	}

	updated := player.Player{
		ID:       existing.ID,
		TeamID:   targetTeam,
		Name:     strings.TrimSpace(input.Name),
		Position: input.Position,
		Number:   input.Number,
	}
	if err := updated.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Update(ctx, updated); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return updated, nil
}

func (s *PlayerService) Delete(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	_, found, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	return nil
}

// ensureNumberFree enforces shirt number uniqueness inside one team.
// Zero means "no number" and is always free.
func (s *PlayerService) ensureNumberFree(ctx context.Context, teamID string, number int, excludePlayerID string) error {
	if number == 0 {
		return nil
	}

	teammates, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return fmt.Errorf("list players by team: %w", err)
	}

	for _, teammate := range teammates {
		if teammate.ID == excludePlayerID {
			continue
		}
		if teammate.Number == number {
			return fmt.Errorf("%w: shirt number %d already taken by %s", ErrInvalidInput, number, teammate.Name)
		}
	}

	return nil
}
