package match

import (
	"fmt"
	"time"
)

// Status is a display state derived from Finished and the match date.
// It is never persisted.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusLive      Status = "LIVE"
	StatusCompleted Status = "COMPLETED"
)

// Match is a fixture between two distinct teams. HomeScore and AwayScore
// are denormalized goal counts, kept consistent by the result mutator.
type Match struct {
	ID         string
	HomeTeamID string
	AwayTeamID string
	MatchDate  time.Time
	Finished   bool
	HomeScore  int
	AwayScore  int
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.HomeTeamID == "" {
		return fmt.Errorf("match home team id is required")
	}
	if m.AwayTeamID == "" {
		return fmt.Errorf("match away team id is required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match home and away teams must differ")
	}
	if m.MatchDate.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return fmt.Errorf("match score cannot be negative")
	}

	return nil
}

// StatusAt reports the display state for the given instant.
func (m Match) StatusAt(now time.Time) Status {
	if m.Finished {
		return StatusCompleted
	}
	if !m.MatchDate.After(now) {
		return StatusLive
	}
	return StatusScheduled
}

// Involves reports whether the team plays in this match on either side.
func (m Match) Involves(teamID string) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}
