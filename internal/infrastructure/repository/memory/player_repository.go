package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/amateur-league/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players map[string]player.Player
}

func NewPlayerRepository(items []player.Player) *PlayerRepository {
	players := make(map[string]player.Player, len(items))
	for _, item := range items {
		players[item.ID] = item
	}

	return &PlayerRepository{players: players}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	for _, item := range r.players {
		out = append(out, item)
	}
	sortPlayers(out)

	return out, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, item := range r.players {
		if item.TeamID == teamID {
			out = append(out, item)
		}
	}
	sortPlayers(out)

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.players[playerID]
	return item, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.players[item.ID] = item
	return nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.players[item.ID] = item
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.players, playerID)
	return nil
}

func (r *PlayerRepository) ReplaceByTeam(_ context.Context, teamID string, items []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.players {
		if item.TeamID == teamID {
			delete(r.players, id)
		}
	}
	for _, item := range items {
		r.players[item.ID] = item
	}

	return nil
}

func (r *PlayerRepository) deleteByTeam(teamID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.players {
		if item.TeamID == teamID {
			delete(r.players, id)
		}
	}
}

func sortPlayers(items []player.Player) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.TeamID != b.TeamID {
			return a.TeamID < b.TeamID
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
}
