package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/amateur-league/internal/domain/card"
	"github.com/riskibarqy/amateur-league/internal/domain/goal"
	"github.com/riskibarqy/amateur-league/internal/domain/match"
	"github.com/riskibarqy/amateur-league/internal/domain/player"
	"github.com/riskibarqy/amateur-league/internal/domain/team"
)

func statsFixture() testRepos {
	base := time.Date(2026, time.August, 2, 15, 0, 0, 0, time.UTC)

	teams := []team.Team{
		{ID: "tm-a", Name: "Alpha"},
		{ID: "tm-b", Name: "Bravo"},
	}
	players := []player.Player{
		{ID: "pl-a-gk", TeamID: "tm-a", Name: "Keeper A", Position: player.PositionGoalkeeper, Number: 1},
		{ID: "pl-a-fw", TeamID: "tm-a", Name: "Striker A", Position: player.PositionForward, Number: 9},
		{ID: "pl-a-mid", TeamID: "tm-a", Name: "Playmaker A", Position: player.PositionMidfielder, Number: 10},
		{ID: "pl-b-gk", TeamID: "tm-b", Name: "Keeper B", Position: player.PositionGoalkeeper, Number: 1},
		{ID: "pl-b-gk2", TeamID: "tm-b", Name: "Backup Keeper B", Position: player.PositionGoalkeeper, Number: 12},
		{ID: "pl-b-fw", TeamID: "tm-b", Name: "Striker B", Position: player.PositionForward, Number: 11},
	}
	matches := []match.Match{
		{ID: "mt-1", HomeTeamID: "tm-a", AwayTeamID: "tm-b", MatchDate: base, Finished: true, HomeScore: 2, AwayScore: 0},
		{ID: "mt-2", HomeTeamID: "tm-b", AwayTeamID: "tm-a", MatchDate: base.AddDate(0, 0, 7), Finished: true, HomeScore: 1, AwayScore: 1},
	}
	goals := []goal.Goal{
		{ID: "gl-1", MatchID: "mt-1", ScorerID: "pl-a-fw", AssistantID: "pl-a-mid", TeamID: "tm-a", Minute: 12},
		{ID: "gl-2", MatchID: "mt-1", ScorerID: "pl-a-fw", TeamID: "tm-a", Minute: 55},
		{ID: "gl-3", MatchID: "mt-2", ScorerID: "pl-b-fw", AssistantID: "pl-b-gk", TeamID: "tm-b", Minute: 30},
		{ID: "gl-4", MatchID: "mt-2", ScorerID: "pl-a-mid", TeamID: "tm-a", Minute: 80},
		// Leftover row for a match that no longer exists.
		{ID: "gl-stale", MatchID: "mt-gone", ScorerID: "pl-b-fw", TeamID: "tm-b", Minute: 5},
	}
	cards := []card.Card{
		{ID: "cd-1", MatchID: "mt-1", PlayerID: "pl-b-fw", TeamID: "tm-b", Type: card.TypeYellow, Minute: 40},
		{ID: "cd-2", MatchID: "mt-2", PlayerID: "pl-b-fw", TeamID: "tm-b", Type: card.TypeYellow, Minute: 60},
		{ID: "cd-3", MatchID: "mt-2", PlayerID: "pl-a-mid", TeamID: "tm-a", Type: card.TypeRed, Minute: 85},
	}

	return newTestRepos(teams, players, matches, goals, cards)
}

func newStatsService(repos testRepos, defaultLimit int) *PlayerStatsService {
	return NewPlayerStatsService(repos.teams, repos.players, repos.matches, repos.goals, repos.cards, defaultLimit)
}

func TestTopScorers(t *testing.T) {
	svc := newStatsService(statsFixture(), 10)

	entries, err := svc.TopScorers(context.Background(), 0)
	if err != nil {
		t.Fatalf("top scorers: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 scorers, got %d", len(entries))
	}
	if entries[0].Player.ID != "pl-a-fw" || entries[0].Goals != 2 {
		t.Fatalf("unexpected top scorer: %+v", entries[0])
	}
	for _, e := range entries {
		if e.Player.ID == "pl-b-fw" && e.Goals != 1 {
			t.Fatalf("stale goal counted for %s: %+v", e.Player.ID, e)
		}
	}
	if entries[0].Team.ID != "tm-a" {
		t.Fatalf("scorer not joined with team: %+v", entries[0])
	}
}

func TestTopScorersRespectsLimit(t *testing.T) {
	svc := newStatsService(statsFixture(), 10)

	entries, err := svc.TopScorers(context.Background(), 1)
	if err != nil {
		t.Fatalf("top scorers: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Player.ID != "pl-a-fw" {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}

func TestTopScorersUsesDefaultLimit(t *testing.T) {
	svc := newStatsService(statsFixture(), 2)

	entries, err := svc.TopScorers(context.Background(), 0)
	if err != nil {
		t.Fatalf("top scorers: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected default limit of 2, got %d entries", len(entries))
	}
}

func TestTopAssists(t *testing.T) {
	svc := newStatsService(statsFixture(), 10)

	entries, err := svc.TopAssists(context.Background(), 0)
	if err != nil {
		t.Fatalf("top assists: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 assist entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Assists != 1 {
			t.Fatalf("unexpected assist count: %+v", e)
		}
	}
}

func TestCardOffenders(t *testing.T) {
	svc := newStatsService(statsFixture(), 10)

	entries, err := svc.CardOffenders(context.Background(), 0)
	if err != nil {
		t.Fatalf("card offenders: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 offenders, got %d", len(entries))
	}
	// A red card outranks two yellows.
	if entries[0].Player.ID != "pl-a-mid" || entries[0].RedCards != 1 {
		t.Fatalf("unexpected top offender: %+v", entries[0])
	}
	if entries[1].Player.ID != "pl-b-fw" || entries[1].YellowCards != 2 || entries[1].TotalCards != 2 {
		t.Fatalf("unexpected second offender: %+v", entries[1])
	}
}

func TestBestGoalkeepers(t *testing.T) {
	svc := newStatsService(statsFixture(), 10)

	entries, err := svc.BestGoalkeepers(context.Background(), 0)
	if err != nil {
		t.Fatalf("best goalkeepers: %v", err)
	}

	// One keeper per team, despite Bravo registering two.
	if len(entries) != 2 {
		t.Fatalf("expected 2 goalkeeper entries, got %d", len(entries))
	}

	// Alpha conceded 1 over 2 matches, Bravo conceded 3.
	if entries[0].Player.TeamID != "tm-a" {
		t.Fatalf("unexpected best keeper: %+v", entries[0])
	}
	if entries[0].GoalsAgainst != 1 || entries[0].MatchesPlayed != 2 || entries[0].CleanSheets != 1 {
		t.Fatalf("unexpected keeper tally: %+v", entries[0])
	}
	if entries[1].Player.TeamID != "tm-b" || entries[1].GoalsAgainst != 3 {
		t.Fatalf("unexpected second keeper: %+v", entries[1])
	}
}

func TestBestGoalkeepersRanksIdleKeeperLast(t *testing.T) {
	repos := statsFixture()

	// A third team whose keeper never played a finished match.
	if err := repos.teams.Create(context.Background(), team.Team{ID: "tm-c", Name: "Charlie"}); err != nil {
		t.Fatalf("create team: %v", err)
	}
	idle := player.Player{ID: "pl-c-gk", TeamID: "tm-c", Name: "Keeper C", Position: player.PositionGoalkeeper, Number: 1}
	if err := repos.players.Create(context.Background(), idle); err != nil {
		t.Fatalf("create player: %v", err)
	}

	svc := newStatsService(repos, 10)

	entries, err := svc.BestGoalkeepers(context.Background(), 0)
	if err != nil {
		t.Fatalf("best goalkeepers: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	last := entries[len(entries)-1]
	if last.Player.ID != "pl-c-gk" || last.MatchesPlayed != 0 {
		t.Fatalf("idle keeper not ranked last: %+v", last)
	}
}

func TestOverviewBundlesAllBoards(t *testing.T) {
	svc := newStatsService(statsFixture(), 10)

	rankings, err := svc.Overview(context.Background(), 0)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if len(rankings.Scorers) == 0 || len(rankings.Assists) == 0 ||
		len(rankings.Cards) == 0 || len(rankings.Goalkeepers) == 0 {
		t.Fatalf("expected every board populated: %+v", rankings)
	}
}
