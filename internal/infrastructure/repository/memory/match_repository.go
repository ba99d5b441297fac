package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/amateur-league/internal/domain/match"
)

// MatchRepository keeps matches in memory and cascades deletions into
// the goal and card repositories the way the SQL schema would.
type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]match.Match

	goals *GoalRepository
	cards *CardRepository
}

func NewMatchRepository(items []match.Match, goals *GoalRepository, cards *CardRepository) *MatchRepository {
	matches := make(map[string]match.Match, len(items))
	for _, item := range items {
		matches[item.ID] = item
	}

	return &MatchRepository{
		matches: matches,
		goals:   goals,
		cards:   cards,
	}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(match.Match) bool { return true }), nil
}

func (r *MatchRepository) ListFinished(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(m match.Match) bool { return m.Finished }), nil
}

func (r *MatchRepository) ListUpcoming(_ context.Context, now time.Time) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(m match.Match) bool {
		return !m.Finished && m.MatchDate.After(now)
	}), nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.matches[matchID]
	return item, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches[item.ID] = item
	return nil
}

func (r *MatchRepository) UpdateScore(_ context.Context, matchID string, homeScore, awayScore int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.matches[matchID]
	if !ok {
		return nil
	}
	item.HomeScore = homeScore
	item.AwayScore = awayScore
	r.matches[matchID] = item

	return nil
}

func (r *MatchRepository) ReplaceResult(_ context.Context, replacement match.ResultReplacement) error {
	r.mu.Lock()
	r.matches[replacement.Match.ID] = replacement.Match
	r.mu.Unlock()

	r.goals.deleteByMatch(replacement.Match.ID)
	r.cards.deleteByMatch(replacement.Match.ID)
	r.goals.insertMany(replacement.Goals)
	r.cards.insertMany(replacement.Cards)

	return nil
}

func (r *MatchRepository) Delete(_ context.Context, matchID string) error {
	r.mu.Lock()
	delete(r.matches, matchID)
	r.mu.Unlock()

	r.goals.deleteByMatch(matchID)
	r.cards.deleteByMatch(matchID)

	return nil
}

func (r *MatchRepository) deleteByTeam(teamID string) {
	r.mu.Lock()
	removed := make([]string, 0)
	for id, item := range r.matches {
		if item.Involves(teamID) {
			delete(r.matches, id)
			removed = append(removed, id)
		}
	}
	r.mu.Unlock()

	for _, id := range removed {
		r.goals.deleteByMatch(id)
		r.cards.deleteByMatch(id)
	}
}

// collect assumes the read lock is held.
func (r *MatchRepository) collect(keep func(match.Match) bool) []match.Match {
	out := make([]match.Match, 0, len(r.matches))
	for _, item := range r.matches {
		if keep(item) {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].MatchDate.Equal(out[j].MatchDate) {
			return out[i].MatchDate.Before(out[j].MatchDate)
		}
		return out[i].ID < out[j].ID
	})

	return out
}
