package card

import "fmt"

// Type is the disciplinary card color.
type Type string

const (
	TypeYellow Type = "YELLOW"
	TypeRed    Type = "RED"
)

// Card is a booking inside a match. Minute zero means the minute was
// not recorded.
type Card struct {
	ID       string
	MatchID  string
	PlayerID string
	TeamID   string
	Type     Type
	Minute   int
}

func (c Card) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("card id is required")
	}
	if c.MatchID == "" {
		return fmt.Errorf("card match id is required")
	}
	if c.PlayerID == "" {
		return fmt.Errorf("card player id is required")
	}
	if c.TeamID == "" {
		return fmt.Errorf("card team id is required")
	}
	if c.Type != TypeYellow && c.Type != TypeRed {
		return fmt.Errorf("invalid card type: %s", c.Type)
	}
	if c.Minute < 0 || c.Minute > 120 {
		return fmt.Errorf("card minute must be between 0 and 120")
	}

	return nil
}
