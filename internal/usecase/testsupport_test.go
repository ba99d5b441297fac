package usecase

import (
	"fmt"

	"github.com/riskibarqy/amateur-league/internal/domain/card"
	"github.com/riskibarqy/amateur-league/internal/domain/goal"
	"github.com/riskibarqy/amateur-league/internal/domain/match"
	"github.com/riskibarqy/amateur-league/internal/domain/player"
	"github.com/riskibarqy/amateur-league/internal/domain/team"
	"github.com/riskibarqy/amateur-league/internal/infrastructure/repository/memory"
)

type testRepos struct {
	teams   *memory.TeamRepository
	players *memory.PlayerRepository
	matches *memory.MatchRepository
	goals   *memory.GoalRepository
	cards   *memory.CardRepository
}

func newTestRepos(
	teams []team.Team,
	players []player.Player,
	matches []match.Match,
	goals []goal.Goal,
	cards []card.Card,
) testRepos {
	goalRepo := memory.NewGoalRepository(goals)
	cardRepo := memory.NewCardRepository(cards)
	matchRepo := memory.NewMatchRepository(matches, goalRepo, cardRepo)
	playerRepo := memory.NewPlayerRepository(players)
	teamRepo := memory.NewTeamRepository(teams, playerRepo, matchRepo)

	return testRepos{
		teams:   teamRepo,
		players: playerRepo,
		matches: matchRepo,
		goals:   goalRepo,
		cards:   cardRepo,
	}
}

// sequentialIDs hands out id-001, id-002, ... so assertions can name
// created records.
type sequentialIDs struct {
	n int
}

func (s *sequentialIDs) NewID() (string, error) {
	s.n++
	return fmt.Sprintf("id-%03d", s.n), nil
}
