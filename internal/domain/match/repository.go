package match

import (
	"context"
	"time"

	"github.com/riskibarqy/amateur-league/internal/domain/card"
	"github.com/riskibarqy/amateur-league/internal/domain/goal"
)

// ResultReplacement is a full result edit: the match row plus the exact
// goal and card sets that must remain after the edit.
type ResultReplacement struct {
	Match Match
	Goals []goal.Goal
	Cards []card.Card
}

type Repository interface {
	List(ctx context.Context) ([]Match, error)
	ListFinished(ctx context.Context) ([]Match, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Create(ctx context.Context, item Match) error
	UpdateScore(ctx context.Context, matchID string, homeScore, awayScore int) error
	// ReplaceResult applies the replacement as one transaction: prior
	// goals and cards of the match are dropped, the supplied sets are
	// inserted and the match row is updated.
	ReplaceResult(ctx context.Context, replacement ResultReplacement) error
	// Delete removes the match and cascades to its goals and cards.
	Delete(ctx context.Context, matchID string) error
}
