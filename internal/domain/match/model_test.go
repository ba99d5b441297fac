package match

import (
	"testing"
	"time"
)

func TestStatusAt(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	t.Run("finished wins over any date", func(t *testing.T) {
		m := Match{Finished: true, MatchDate: now.Add(48 * time.Hour)}
		if got := m.StatusAt(now); got != StatusCompleted {
			t.Fatalf("unexpected status: %s", got)
		}
	})

	t.Run("past kickoff without result is live", func(t *testing.T) {
		m := Match{MatchDate: now.Add(-30 * time.Minute)}
		if got := m.StatusAt(now); got != StatusLive {
			t.Fatalf("unexpected status: %s", got)
		}
	})

	t.Run("kickoff at the exact instant is live", func(t *testing.T) {
		m := Match{MatchDate: now}
		if got := m.StatusAt(now); got != StatusLive {
			t.Fatalf("unexpected status: %s", got)
		}
	})

	t.Run("future kickoff is scheduled", func(t *testing.T) {
		m := Match{MatchDate: now.Add(time.Hour)}
		if got := m.StatusAt(now); got != StatusScheduled {
			t.Fatalf("unexpected status: %s", got)
		}
	})
}

func TestValidate(t *testing.T) {
	date := time.Date(2026, time.September, 12, 16, 0, 0, 0, time.UTC)

	valid := Match{ID: "mt-1", HomeTeamID: "tm-a", AwayTeamID: "tm-b", MatchDate: date}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid match rejected: %v", err)
	}

	sameTeams := valid
	sameTeams.AwayTeamID = sameTeams.HomeTeamID
	if err := sameTeams.Validate(); err == nil {
		t.Fatal("expected error for identical teams")
	}

	negative := valid
	negative.HomeScore = -1
	if err := negative.Validate(); err == nil {
		t.Fatal("expected error for negative score")
	}
}
