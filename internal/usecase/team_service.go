package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/amateur-league/internal/domain/player"
	"github.com/riskibarqy/amateur-league/internal/domain/team"
	idgen "github.com/riskibarqy/amateur-league/internal/platform/id"
)

type TeamWithPlayers struct {
	Team    team.Team
	Players []player.Player
}

type RosterPlayerInput struct {
	Name     string
	Position player.Position
	Number   int
}

type CreateTeamInput struct {
	Name    string
	Logo    string
	Players []RosterPlayerInput
}

type UpdateTeamInput struct {
	Name string
	Logo string
}

type TeamService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	ids        idgen.Generator
}

func NewTeamService(teamRepo team.Repository, playerRepo player.Repository, ids idgen.Generator) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		ids:        ids,
	}
}

func (s *TeamService) List(ctx context.Context) ([]TeamWithPlayers, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	playersByTeam := make(map[string][]player.Player, len(teams))
	for _, p := range players {
		playersByTeam[p.TeamID] = append(playersByTeam[p.TeamID], p)
	}

	out := make([]TeamWithPlayers, 0, len(teams))
	for _, t := range teams {
		roster := playersByTeam[t.ID]
		sortRoster(roster)
		out = append(out, TeamWithPlayers{Team: t, Players: roster})
	}

	return out, nil
}

func (s *TeamService) Get(ctx context.Context, teamID string) (TeamWithPlayers, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	t, found, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamWithPlayers{}, fmt.Errorf("get team: %w", err)
	}
	if !found {
		return TeamWithPlayers{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	roster, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return TeamWithPlayers{}, fmt.Errorf("list players by team: %w", err)
	}
	sortRoster(roster)

	return TeamWithPlayers{Team: t, Players: roster}, nil
}

func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (TeamWithPlayers, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return TeamWithPlayers{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	teamID, err := s.ids.NewID()
	if err != nil {
		return TeamWithPlayers{}, fmt.Errorf("generate team id: %w", err)
	}

	t := team.Team{ID: teamID, Name: input.Name, Logo: input.Logo}
	if err := t.Validate(); err != nil {
		return TeamWithPlayers{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	roster, err := s.buildRoster(teamID, input.Players)
	if err != nil {
		return TeamWithPlayers{}, err
	}

	if err := s.teamRepo.Create(ctx, t); err != nil {
		return TeamWithPlayers{}, fmt.Errorf("create team: %w", err)
	}
	if len(roster) > 0 {
		if err := s.playerRepo.ReplaceByTeam(ctx, teamID, roster); err != nil {
			return TeamWithPlayers{}, fmt.Errorf("create team roster: %w", err)
		}
	}

	sortRoster(roster)
	return TeamWithPlayers{Team: t, Players: roster}, nil
}

func (s *TeamService) Update(ctx context.Context, teamID string, input UpdateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	existing, found, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !found {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	existing.Name = input.Name
	existing.Logo = input.Logo

	if err := s.teamRepo.Update(ctx, existing); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}

	return existing, nil
}

// ReplaceRoster swaps the team's whole player list for the supplied one.
func (s *TeamService) ReplaceRoster(ctx context.Context, teamID string, players []RosterPlayerInput) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ReplaceRoster")
	defer span.End()

	_, found, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	roster, err := s.buildRoster(teamID, players)
	if err != nil {
		return nil, err
	}

	if err := s.playerRepo.ReplaceByTeam(ctx, teamID, roster); err != nil {
		return nil, fmt.Errorf("replace team roster: %w", err)
	}

	sortRoster(roster)
	return roster, nil
}

func (s *TeamService) Delete(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	_, found, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	return nil
}

func (s *TeamService) buildRoster(teamID string, inputs []RosterPlayerInput) ([]player.Player, error) {
	roster := make([]player.Player, 0, len(inputs))
	numbersSeen := make(map[int]struct{}, len(inputs))

	for _, in := range inputs {
		if in.Number > 0 {
			if _, taken := numbersSeen[in.Number]; taken {
				return nil, fmt.Errorf("%w: duplicate shirt number %d", ErrInvalidInput, in.Number)
			}
			numbersSeen[in.Number] = struct{}{}
		}

		playerID, err := s.ids.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate player id: %w", err)
		}

		p := player.Player{
			ID:       playerID,
			TeamID:   teamID,
			Name:     strings.TrimSpace(in.Name),
			Position: in.Position,
			Number:   in.Number,
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		roster = append(roster, p)
	}

	return roster, nil
}

// sortRoster orders shirt numbers ascending with unnumbered players
// last, names breaking ties.
func sortRoster(roster []player.Player) {
	sort.SliceStable(roster, func(i, j int) bool {
		a, b := roster[i], roster[j]
		if (a.Number == 0) != (b.Number == 0) {
			return a.Number != 0
		}
		if a.Number != b.Number {
			return a.Number < b.Number
		}
		return a.Name < b.Name
	})
}
