package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/amateur-league/internal/domain/team"
)

// TeamRepository keeps references to the player and match repositories so
// deleting a team also removes its roster and fixtures, matching the
// cascading foreign keys of the SQL schema.
type TeamRepository struct {
	mu      sync.RWMutex
	teams   map[string]team.Team
	players *PlayerRepository
	matches *MatchRepository
}

func NewTeamRepository(items []team.Team, players *PlayerRepository, matches *MatchRepository) *TeamRepository {
	teams := make(map[string]team.Team, len(items))
	for _, item := range items {
		teams[item.ID] = item
	}

	return &TeamRepository{teams: teams, players: players, matches: matches}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	for _, item := range r.teams {
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[teamID]
	return item, ok, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams[item.ID] = item
	return nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams[item.ID] = item
	return nil
}

func (r *TeamRepository) Delete(_ context.Context, teamID string) error {
	r.mu.Lock()
	delete(r.teams, teamID)
	r.mu.Unlock()

	if r.players != nil {
		r.players.deleteByTeam(teamID)
	}
	if r.matches != nil {
		r.matches.deleteByTeam(teamID)
	}

	return nil
}
