package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/amateur-league/internal/domain/goal"
	"github.com/riskibarqy/amateur-league/internal/domain/match"
	"github.com/riskibarqy/amateur-league/internal/domain/player"
	"github.com/riskibarqy/amateur-league/internal/domain/team"
)

func TestTeamServiceCreate(t *testing.T) {
	repos := newTestRepos(nil, nil, nil, nil, nil)
	svc := NewTeamService(repos.teams, repos.players, &sequentialIDs{})

	t.Run("creates team with roster", func(t *testing.T) {
		created, err := svc.Create(context.Background(), CreateTeamInput{
			Name: "  Garuda FC  ",
			Logo: "https://cdn.example/garuda.png",
			Players: []RosterPlayerInput{
				{Name: "Keeper", Position: player.PositionGoalkeeper, Number: 1},
				{Name: "Striker", Position: player.PositionForward, Number: 9},
			},
		})
		if err != nil {
			t.Fatalf("create team: %v", err)
		}
		if created.Team.Name != "Garuda FC" {
			t.Fatalf("name not trimmed: %q", created.Team.Name)
		}
		if len(created.Players) != 2 {
			t.Fatalf("expected 2 players, got %d", len(created.Players))
		}
		if created.Players[0].Number != 1 || created.Players[1].Number != 9 {
			t.Fatalf("roster not sorted by shirt number: %+v", created.Players)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateTeamInput{Name: "   "})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("rejects duplicate shirt numbers", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateTeamInput{
			Name: "Rajawali",
			Players: []RosterPlayerInput{
				{Name: "One", Position: player.PositionDefender, Number: 4},
				{Name: "Two", Position: player.PositionMidfielder, Number: 4},
			},
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unnumbered players never collide", func(t *testing.T) {
		created, err := svc.Create(context.Background(), CreateTeamInput{
			Name: "Cendrawasih",
			Players: []RosterPlayerInput{
				{Name: "Trialist A", Position: player.PositionForward},
				{Name: "Trialist B", Position: player.PositionForward},
			},
		})
		if err != nil {
			t.Fatalf("create team: %v", err)
		}
		if len(created.Players) != 2 {
			t.Fatalf("expected 2 players, got %d", len(created.Players))
		}
	})
}

func TestTeamServiceReplaceRoster(t *testing.T) {
	repos := newTestRepos(
		[]team.Team{{ID: "tm-a", Name: "Alpha"}},
		[]player.Player{
			{ID: "pl-old", TeamID: "tm-a", Name: "Veteran", Position: player.PositionDefender, Number: 5},
		},
		nil, nil, nil,
	)
	svc := NewTeamService(repos.teams, repos.players, &sequentialIDs{})

	roster, err := svc.ReplaceRoster(context.Background(), "tm-a", []RosterPlayerInput{
		{Name: "Rookie", Position: player.PositionForward, Number: 14},
	})
	if err != nil {
		t.Fatalf("replace roster: %v", err)
	}
	if len(roster) != 1 || roster[0].Name != "Rookie" {
		t.Fatalf("unexpected roster: %+v", roster)
	}

	if _, found, _ := repos.players.GetByID(context.Background(), "pl-old"); found {
		t.Fatal("old roster member survived replacement")
	}
}

func TestTeamServiceUpdateNotFound(t *testing.T) {
	repos := newTestRepos(nil, nil, nil, nil, nil)
	svc := NewTeamService(repos.teams, repos.players, &sequentialIDs{})

	_, err := svc.Update(context.Background(), "tm-missing", UpdateTeamInput{Name: "Anything"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamServiceDeleteCascades(t *testing.T) {
	base := time.Date(2026, time.August, 9, 15, 0, 0, 0, time.UTC)

	repos := newTestRepos(
		[]team.Team{
			{ID: "tm-a", Name: "Alpha"},
			{ID: "tm-b", Name: "Bravo"},
		},
		[]player.Player{
			{ID: "pl-a1", TeamID: "tm-a", Name: "Striker A", Position: player.PositionForward, Number: 9},
			{ID: "pl-b1", TeamID: "tm-b", Name: "Striker B", Position: player.PositionForward, Number: 11},
		},
		[]match.Match{
			{ID: "mt-1", HomeTeamID: "tm-a", AwayTeamID: "tm-b", MatchDate: base, Finished: true, HomeScore: 1, AwayScore: 0},
		},
		[]goal.Goal{
			{ID: "gl-1", MatchID: "mt-1", ScorerID: "pl-a1", TeamID: "tm-a", Minute: 20},
		},
		nil,
	)
	svc := NewTeamService(repos.teams, repos.players, &sequentialIDs{})

	if err := svc.Delete(context.Background(), "tm-a"); err != nil {
		t.Fatalf("delete team: %v", err)
	}

	if _, found, _ := repos.teams.GetByID(context.Background(), "tm-a"); found {
		t.Fatal("team still present")
	}
	if _, found, _ := repos.players.GetByID(context.Background(), "pl-a1"); found {
		t.Fatal("roster player survived team deletion")
	}
	if _, found, _ := repos.matches.GetByID(context.Background(), "mt-1"); found {
		t.Fatal("match involving the team survived deletion")
	}
	if _, found, _ := repos.goals.GetByID(context.Background(), "gl-1"); found {
		t.Fatal("goal survived the match cascade")
	}

	// The opponent's roster is untouched.
	if _, found, _ := repos.players.GetByID(context.Background(), "pl-b1"); !found {
		t.Fatal("unrelated player was removed")
	}
}
