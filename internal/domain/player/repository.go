package player

import "context"

type Repository interface {
	List(ctx context.Context) ([]Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	Create(ctx context.Context, item Player) error
	Update(ctx context.Context, item Player) error
	Delete(ctx context.Context, playerID string) error
	// ReplaceByTeam swaps the whole roster of a team in one step.
	ReplaceByTeam(ctx context.Context, teamID string, items []Player) error
}
