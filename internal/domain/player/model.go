package player

import "fmt"

// Position represents where a player lines up on the pitch.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// Player is an athlete registered for exactly one team.
// Number is the shirt number; zero means the player has none assigned.
type Player struct {
	ID       string
	TeamID   string
	Name     string
	Position Position
	Number   int
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.Number < 0 || p.Number > 99 {
		return fmt.Errorf("player number must be between 0 and 99")
	}

	return nil
}
