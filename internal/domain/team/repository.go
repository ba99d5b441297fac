package team

import "context"

type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	Create(ctx context.Context, item Team) error
	Update(ctx context.Context, item Team) error
	// Delete removes the team together with its players and every match
	// the team is involved in (goals and cards follow their match).
	Delete(ctx context.Context, teamID string) error
}
