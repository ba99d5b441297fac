package goal

import "fmt"

const (
	MinuteMin = 1
	MinuteMax = 120
)

// Goal is a scored goal inside a match. AssistantID is empty when the
// goal had no assist. TeamID attributes the goal to one side of the
// match, which is what the score recount keys on.
type Goal struct {
	ID          string
	MatchID     string
	ScorerID    string
	AssistantID string
	TeamID      string
	Minute      int
}

func (g Goal) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("goal id is required")
	}
	if g.MatchID == "" {
		return fmt.Errorf("goal match id is required")
	}
	if g.ScorerID == "" {
		return fmt.Errorf("goal scorer id is required")
	}
	if g.AssistantID != "" && g.AssistantID == g.ScorerID {
		return fmt.Errorf("goal assistant cannot be the scorer")
	}
	if g.TeamID == "" {
		return fmt.Errorf("goal team id is required")
	}
	if g.Minute < MinuteMin || g.Minute > MinuteMax {
		return fmt.Errorf("goal minute must be between %d and %d", MinuteMin, MinuteMax)
	}

	return nil
}
