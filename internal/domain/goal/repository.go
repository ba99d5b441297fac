package goal

import "context"

type Repository interface {
	List(ctx context.Context) ([]Goal, error)
	ListByMatch(ctx context.Context, matchID string) ([]Goal, error)
	GetByID(ctx context.Context, goalID string) (Goal, bool, error)
	Create(ctx context.Context, item Goal) error
	Update(ctx context.Context, item Goal) error
	Delete(ctx context.Context, goalID string) error
}
