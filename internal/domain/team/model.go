package team

import "fmt"

// Team is a club registered in the championship.
type Team struct {
	ID   string
	Name string
	Logo string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
