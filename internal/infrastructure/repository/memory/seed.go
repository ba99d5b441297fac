package memory

import (
	"time"

	"github.com/riskibarqy/amateur-league/internal/domain/card"
	"github.com/riskibarqy/amateur-league/internal/domain/goal"
	"github.com/riskibarqy/amateur-league/internal/domain/match"
	"github.com/riskibarqy/amateur-league/internal/domain/player"
	"github.com/riskibarqy/amateur-league/internal/domain/team"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "tm-garuda", Name: "Garuda FC"},
		{ID: "tm-rajawali", Name: "Rajawali United"},
		{ID: "tm-cendrawasih", Name: "Cendrawasih City"},
		{ID: "tm-elang", Name: "Elang Muda"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "pl-garuda-gk", TeamID: "tm-garuda", Name: "Bima Santoso", Position: player.PositionGoalkeeper, Number: 1},
		{ID: "pl-garuda-def", TeamID: "tm-garuda", Name: "Raka Wibowo", Position: player.PositionDefender, Number: 4},
		{ID: "pl-garuda-mid", TeamID: "tm-garuda", Name: "Dimas Pratama", Position: player.PositionMidfielder, Number: 8},
		{ID: "pl-garuda-fwd", TeamID: "tm-garuda", Name: "Arif Maulana", Position: player.PositionForward, Number: 9},
		{ID: "pl-rajawali-gk", TeamID: "tm-rajawali", Name: "Yoga Hartono", Position: player.PositionGoalkeeper, Number: 1},
		{ID: "pl-rajawali-def", TeamID: "tm-rajawali", Name: "Fajar Nugroho", Position: player.PositionDefender, Number: 5},
		{ID: "pl-rajawali-mid", TeamID: "tm-rajawali", Name: "Galih Saputra", Position: player.PositionMidfielder, Number: 10},
		{ID: "pl-rajawali-fwd", TeamID: "tm-rajawali", Name: "Rizky Ramadhan", Position: player.PositionForward, Number: 11},
		{ID: "pl-cendrawasih-gk", TeamID: "tm-cendrawasih", Name: "Surya Adi", Position: player.PositionGoalkeeper, Number: 23},
		{ID: "pl-cendrawasih-mid", TeamID: "tm-cendrawasih", Name: "Bagus Firmansyah", Position: player.PositionMidfielder, Number: 6},
		{ID: "pl-cendrawasih-fwd", TeamID: "tm-cendrawasih", Name: "Ilham Kurnia", Position: player.PositionForward, Number: 7},
		{ID: "pl-elang-gk", TeamID: "tm-elang", Name: "Eko Prasetyo", Position: player.PositionGoalkeeper, Number: 12},
		{ID: "pl-elang-def", TeamID: "tm-elang", Name: "Andika Putra", Position: player.PositionDefender, Number: 3},
		{ID: "pl-elang-fwd", TeamID: "tm-elang", Name: "Taufik Hidayat", Position: player.PositionForward, Number: 19},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:         "mt-001",
			HomeTeamID: "tm-garuda",
			AwayTeamID: "tm-rajawali",
			MatchDate:  time.Date(2026, 8, 15, 16, 0, 0, 0, time.UTC),
			Finished:   true,
			HomeScore:  2,
			AwayScore:  1,
		},
		{
			ID:         "mt-002",
			HomeTeamID: "tm-cendrawasih",
			AwayTeamID: "tm-elang",
			MatchDate:  time.Date(2026, 8, 16, 16, 0, 0, 0, time.UTC),
			Finished:   true,
			HomeScore:  1,
			AwayScore:  1,
		},
		{
			ID:         "mt-003",
			HomeTeamID: "tm-rajawali",
			AwayTeamID: "tm-cendrawasih",
			MatchDate:  time.Date(2026, 8, 22, 16, 0, 0, 0, time.UTC),
			Finished:   true,
			HomeScore:  0,
			AwayScore:  3,
		},
		{
			ID:         "mt-004",
			HomeTeamID: "tm-elang",
			AwayTeamID: "tm-garuda",
			MatchDate:  time.Date(2026, 9, 12, 16, 0, 0, 0, time.UTC),
		},
		{
			ID:         "mt-005",
			HomeTeamID: "tm-garuda",
			AwayTeamID: "tm-cendrawasih",
			MatchDate:  time.Date(2026, 9, 19, 16, 0, 0, 0, time.UTC),
		},
	}
}

func SeedGoals() []goal.Goal {
	return []goal.Goal{
		{ID: "gl-001", MatchID: "mt-001", ScorerID: "pl-garuda-fwd", AssistantID: "pl-garuda-mid", TeamID: "tm-garuda", Minute: 12},
		{ID: "gl-002", MatchID: "mt-001", ScorerID: "pl-garuda-mid", TeamID: "tm-garuda", Minute: 58},
		{ID: "gl-003", MatchID: "mt-001", ScorerID: "pl-rajawali-fwd", AssistantID: "pl-rajawali-mid", TeamID: "tm-rajawali", Minute: 74},
		{ID: "gl-004", MatchID: "mt-002", ScorerID: "pl-cendrawasih-fwd", TeamID: "tm-cendrawasih", Minute: 33},
		{ID: "gl-005", MatchID: "mt-002", ScorerID: "pl-elang-fwd", AssistantID: "pl-elang-def", TeamID: "tm-elang", Minute: 81},
		{ID: "gl-006", MatchID: "mt-003", ScorerID: "pl-cendrawasih-fwd", AssistantID: "pl-cendrawasih-mid", TeamID: "tm-cendrawasih", Minute: 9},
		{ID: "gl-007", MatchID: "mt-003", ScorerID: "pl-cendrawasih-fwd", TeamID: "tm-cendrawasih", Minute: 41},
		{ID: "gl-008", MatchID: "mt-003", ScorerID: "pl-cendrawasih-mid", TeamID: "tm-cendrawasih", Minute: 67},
	}
}

func SeedCards() []card.Card {
	return []card.Card{
		{ID: "cd-001", MatchID: "mt-001", PlayerID: "pl-rajawali-def", TeamID: "tm-rajawali", Type: card.TypeYellow, Minute: 29},
		{ID: "cd-002", MatchID: "mt-002", PlayerID: "pl-elang-def", TeamID: "tm-elang", Type: card.TypeYellow, Minute: 55},
		{ID: "cd-003", MatchID: "mt-003", PlayerID: "pl-rajawali-mid", TeamID: "tm-rajawali", Type: card.TypeYellow, Minute: 38},
		{ID: "cd-004", MatchID: "mt-003", PlayerID: "pl-rajawali-def", TeamID: "tm-rajawali", Type: card.TypeRed, Minute: 62},
	}
}
