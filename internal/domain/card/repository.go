package card

import "context"

type Repository interface {
	List(ctx context.Context) ([]Card, error)
	ListByMatch(ctx context.Context, matchID string) ([]Card, error)
	GetByID(ctx context.Context, cardID string) (Card, bool, error)
	Create(ctx context.Context, item Card) error
	Update(ctx context.Context, item Card) error
	Delete(ctx context.Context, cardID string) error
}
