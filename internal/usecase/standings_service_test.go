package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/amateur-league/internal/domain/match"
	"github.com/riskibarqy/amateur-league/internal/domain/team"
)

func TestStandingsCompute(t *testing.T) {
	base := time.Date(2026, time.August, 10, 15, 0, 0, 0, time.UTC)

	teams := []team.Team{
		{ID: "tm-a", Name: "Alpha"},
		{ID: "tm-b", Name: "Bravo"},
		{ID: "tm-c", Name: "Charlie"},
		{ID: "tm-d", Name: "Delta"},
	}
	matches := []match.Match{
		{ID: "mt-1", HomeTeamID: "tm-a", AwayTeamID: "tm-b", MatchDate: base, Finished: true, HomeScore: 2, AwayScore: 1},
		{ID: "mt-2", HomeTeamID: "tm-c", AwayTeamID: "tm-a", MatchDate: base.AddDate(0, 0, 7), Finished: true, HomeScore: 1, AwayScore: 1},
		// Unfinished fixtures never count.
		{ID: "mt-3", HomeTeamID: "tm-b", AwayTeamID: "tm-c", MatchDate: base.AddDate(0, 0, 30), Finished: false},
	}

	repos := newTestRepos(teams, nil, matches, nil, nil)
	svc := NewStandingsService(repos.teams, repos.matches)

	rows, err := svc.Compute(context.Background())
	if err != nil {
		t.Fatalf("compute standings: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	t.Run("orders by points then goal difference", func(t *testing.T) {
		gotOrder := []string{rows[0].Team.ID, rows[1].Team.ID, rows[2].Team.ID, rows[3].Team.ID}
		wantOrder := []string{"tm-a", "tm-c", "tm-d", "tm-b"}
		for i := range wantOrder {
			if gotOrder[i] != wantOrder[i] {
				t.Fatalf("unexpected order: got=%v want=%v", gotOrder, wantOrder)
			}
		}
	})

	t.Run("positions are one-based and contiguous", func(t *testing.T) {
		for i, row := range rows {
			if row.Position != i+1 {
				t.Fatalf("row %d has position %d", i, row.Position)
			}
		}
	})

	t.Run("leader tallies a win and a draw", func(t *testing.T) {
		leader := rows[0]
		if leader.Team.ID != "tm-a" {
			t.Fatalf("unexpected leader: %s", leader.Team.ID)
		}
		if leader.Games != 2 || leader.Wins != 1 || leader.Draws != 1 || leader.Defeats != 0 {
			t.Fatalf("unexpected record: %+v", leader)
		}
		if leader.Points != 4 {
			t.Fatalf("expected 4 points, got %d", leader.Points)
		}
		if leader.GoalsFor != 3 || leader.GoalsAgainst != 2 || leader.GoalDifference != 1 {
			t.Fatalf("unexpected goals: %+v", leader)
		}
	})

	t.Run("form is most recent first", func(t *testing.T) {
		leader := rows[0]
		if len(leader.LastFiveGames) != 2 {
			t.Fatalf("expected 2 form entries, got %d", len(leader.LastFiveGames))
		}
		if leader.LastFiveGames[0] != "D" || leader.LastFiveGames[1] != "W" {
			t.Fatalf("unexpected form: %v", leader.LastFiveGames)
		}
	})

	t.Run("team without matches has an empty, non-nil form", func(t *testing.T) {
		var idle TeamStanding
		for _, row := range rows {
			if row.Team.ID == "tm-d" {
				idle = row
			}
		}
		if idle.Games != 0 || idle.Points != 0 {
			t.Fatalf("unexpected idle row: %+v", idle)
		}
		if idle.LastFiveGames == nil || len(idle.LastFiveGames) != 0 {
			t.Fatalf("expected empty form slice, got %v", idle.LastFiveGames)
		}
	})
}

func TestStandingsComputeFormCapsAtFive(t *testing.T) {
	base := time.Date(2026, time.June, 1, 15, 0, 0, 0, time.UTC)

	teams := []team.Team{
		{ID: "tm-a", Name: "Alpha"},
		{ID: "tm-b", Name: "Bravo"},
	}

	// Six finished matches between the same pair; only the latest five
	// shape the form.
	matches := make([]match.Match, 0, 6)
	for i := 0; i < 6; i++ {
		home, away := 1, 0
		if i == 5 {
			home, away = 0, 2
		}
		matches = append(matches, match.Match{
			ID:         string(rune('a' + i)),
			HomeTeamID: "tm-a",
			AwayTeamID: "tm-b",
			MatchDate:  base.AddDate(0, 0, i*7),
			Finished:   true,
			HomeScore:  home,
			AwayScore:  away,
		})
	}

	repos := newTestRepos(teams, nil, matches, nil, nil)
	svc := NewStandingsService(repos.teams, repos.matches)

	rows, err := svc.Compute(context.Background())
	if err != nil {
		t.Fatalf("compute standings: %v", err)
	}

	leader := rows[0]
	if leader.Team.ID != "tm-a" {
		t.Fatalf("unexpected leader: %s", leader.Team.ID)
	}
	if leader.Games != 6 {
		t.Fatalf("expected 6 games counted, got %d", leader.Games)
	}
	want := []string{"L", "W", "W", "W", "W"}
	if len(leader.LastFiveGames) != len(want) {
		t.Fatalf("expected 5 form entries, got %d", len(leader.LastFiveGames))
	}
	for i := range want {
		if leader.LastFiveGames[i] != want[i] {
			t.Fatalf("unexpected form: got=%v want=%v", leader.LastFiveGames, want)
		}
	}
}

func TestStandingsComputeTiesKeepTeamOrder(t *testing.T) {
	teams := []team.Team{
		{ID: "tm-x", Name: "Xavier"},
		{ID: "tm-m", Name: "Mike"},
		{ID: "tm-q", Name: "Quebec"},
	}

	repos := newTestRepos(teams, nil, nil, nil, nil)
	svc := NewStandingsService(repos.teams, repos.matches)

	rows, err := svc.Compute(context.Background())
	if err != nil {
		t.Fatalf("compute standings: %v", err)
	}

	// All records identical, so the repository's name order survives.
	wantOrder := []string{"tm-m", "tm-q", "tm-x"}
	for i := range wantOrder {
		if rows[i].Team.ID != wantOrder[i] {
			t.Fatalf("row %d: got=%s want=%s", i, rows[i].Team.ID, wantOrder[i])
		}
	}
}
