package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/amateur-league/internal/domain/goal"
)

type GoalRepository struct {
	mu    sync.RWMutex
	goals map[string]goal.Goal
}

func NewGoalRepository(items []goal.Goal) *GoalRepository {
	goals := make(map[string]goal.Goal, len(items))
	for _, item := range items {
		goals[item.ID] = item
	}

	return &GoalRepository{goals: goals}
}

func (r *GoalRepository) List(_ context.Context) ([]goal.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]goal.Goal, 0, len(r.goals))
	for _, item := range r.goals {
		out = append(out, item)
	}
	sortGoals(out)

	return out, nil
}

func (r *GoalRepository) ListByMatch(_ context.Context, matchID string) ([]goal.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]goal.Goal, 0)
	for _, item := range r.goals {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	sortGoals(out)

	return out, nil
}

func (r *GoalRepository) GetByID(_ context.Context, goalID string) (goal.Goal, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.goals[goalID]
	return item, ok, nil
}

func (r *GoalRepository) Create(_ context.Context, item goal.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.goals[item.ID] = item
	return nil
}

func (r *GoalRepository) Update(_ context.Context, item goal.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.goals[item.ID] = item
	return nil
}

func (r *GoalRepository) Delete(_ context.Context, goalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.goals, goalID)
	return nil
}

func (r *GoalRepository) deleteByMatch(matchID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.goals {
		if item.MatchID == matchID {
			delete(r.goals, id)
		}
	}
}

func (r *GoalRepository) insertMany(items []goal.Goal) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		r.goals[item.ID] = item
	}
}

func sortGoals(items []goal.Goal) {
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
