package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/amateur-league/internal/domain/card"
)

type CardRepository struct {
	mu    sync.RWMutex
	cards map[string]card.Card
}

func NewCardRepository(items []card.Card) *CardRepository {
	cards := make(map[string]card.Card, len(items))
	for _, item := range items {
		cards[item.ID] = item
	}

	return &CardRepository{cards: cards}
}

func (r *CardRepository) List(_ context.Context) ([]card.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]card.Card, 0, len(r.cards))
	for _, item := range r.cards {
		out = append(out, item)
	}
	sortCards(out)

	return out, nil
}

func (r *CardRepository) ListByMatch(_ context.Context, matchID string) ([]card.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]card.Card, 0)
	for _, item := range r.cards {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	sortCards(out)

	return out, nil
}

func (r *CardRepository) GetByID(_ context.Context, cardID string) (card.Card, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.cards[cardID]
	return item, ok, nil
}

func (r *CardRepository) Create(_ context.Context, item card.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cards[item.ID] = item
	return nil
}

func (r *CardRepository) Update(_ context.Context, item card.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cards[item.ID] = item
	return nil
}

func (r *CardRepository) Delete(_ context.Context, cardID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.cards, cardID)
	return nil
}

func (r *CardRepository) deleteByMatch(matchID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.cards {
		if item.MatchID == matchID {
			delete(r.cards, id)
		}
	}
}

func (r *CardRepository) insertMany(items []card.Card) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		r.cards[item.ID] = item
	}
}

func sortCards(items []card.Card) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.MatchID != b.MatchID {
			return a.MatchID < b.MatchID
		}
		if a.Minute != b.Minute {
			return a.Minute < b.Minute
		}
		return a.ID < b.ID
	})
}
