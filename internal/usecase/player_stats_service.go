package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/amateur-league/internal/domain/card"
	"github.com/riskibarqy/amateur-league/internal/domain/goal"
	"github.com/riskibarqy/amateur-league/internal/domain/match"
	"github.com/riskibarqy/amateur-league/internal/domain/player"
	"github.com/riskibarqy/amateur-league/internal/domain/team"
)

const DefaultRankingLimit = 10

type ScorerEntry struct {
	Player player.Player
	Team   team.Team
	Goals  int
}

type AssistEntry struct {
	Player  player.Player
	Team    team.Team
	Assists int
}

type CardEntry struct {
	Player      player.Player
	Team        team.Team
	YellowCards int
	RedCards    int
	TotalCards  int
}

type GoalkeeperEntry struct {
	Player        player.Player
	Team          team.Team
	GoalsAgainst  int
	MatchesPlayed int
	CleanSheets   int
}

// Rankings bundles the four leaderboards for the rankings page.
type Rankings struct {
	Scorers     []ScorerEntry
	Assists     []AssistEntry
	Cards       []CardEntry
	Goalkeepers []GoalkeeperEntry
}

type PlayerStatsService struct {
	teamRepo     team.Repository
	playerRepo   player.Repository
	matchRepo    match.Repository
	goalRepo     goal.Repository
	cardRepo     card.Repository
	defaultLimit int
}

func NewPlayerStatsService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	goalRepo goal.Repository,
	cardRepo card.Repository,
	defaultLimit int,
) *PlayerStatsService {
	if defaultLimit <= 0 {
		defaultLimit = DefaultRankingLimit
	}

	return &PlayerStatsService{
		teamRepo:     teamRepo,
		playerRepo:   playerRepo,
		matchRepo:    matchRepo,
		goalRepo:     goalRepo,
		cardRepo:     cardRepo,
		defaultLimit: defaultLimit,
	}
}

// Overview computes all four leaderboards, one goroutine per board.
func (s *PlayerStatsService) Overview(ctx context.Context, limit int) (Rankings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.Overview")
	defer span.End()

	var rankings Rankings

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		entries, err := s.TopScorers(ctx, limit)
		rankings.Scorers = entries
		return err
	})
	p.Go(func(ctx context.Context) error {
		entries, err := s.TopAssists(ctx, limit)
		rankings.Assists = entries
		return err
	})
	p.Go(func(ctx context.Context) error {
		entries, err := s.CardOffenders(ctx, limit)
		rankings.Cards = entries
		return err
	})
	p.Go(func(ctx context.Context) error {
		entries, err := s.BestGoalkeepers(ctx, limit)
		rankings.Goalkeepers = entries
		return err
	})

	if err := p.Wait(); err != nil {
		return Rankings{}, err
	}

	return rankings, nil
}

// TopScorers ranks players by goals scored, most first. Players without
// a goal never appear.
func (s *PlayerStatsService) TopScorers(ctx context.Context, limit int) ([]ScorerEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.TopScorers")
	defer span.End()

	limit = s.resolveLimit(limit)

	env, err := s.loadEnvironment(ctx)
	if err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	counts := make(map[string]int)
	for _, g := range goals {
		if _, ok := env.matches[g.MatchID]; !ok {
			// Stale row whose match is gone; never counted.
			continue
		}
		counts[g.ScorerID]++
	}

	entries := make([]ScorerEntry, 0, len(counts))
	for _, p := range env.players {
		count := counts[p.ID]
		if count == 0 {
			continue
		}
		t, ok := env.teams[p.TeamID]
		if !ok {
			continue
		}
		entries = append(entries, ScorerEntry{Player: p, Team: t, Goals: count})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Goals > entries[j].Goals
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// TopAssists ranks players by assists given, most first.
func (s *PlayerStatsService) TopAssists(ctx context.Context, limit int) ([]AssistEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.TopAssists")
	defer span.End()

	limit = s.resolveLimit(limit)

	env, err := s.loadEnvironment(ctx)
	if err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	counts := make(map[string]int)
	for _, g := range goals {
		if g.AssistantID == "" {
			continue
		}
		if _, ok := env.matches[g.MatchID]; !ok {
			continue
		}
		counts[g.AssistantID]++
	}

	entries := make([]AssistEntry, 0, len(counts))
	for _, p := range env.players {
		count := counts[p.ID]
		if count == 0 {
			continue
		}
		t, ok := env.teams[p.TeamID]
		if !ok {
			continue
		}
		entries = append(entries, AssistEntry{Player: p, Team: t, Assists: count})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Assists > entries[j].Assists
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// CardOffenders ranks players by bookings: red cards first, yellow cards
// next, then the combined total.
func (s *PlayerStatsService) CardOffenders(ctx context.Context, limit int) ([]CardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.CardOffenders")
	defer span.End()

	limit = s.resolveLimit(limit)

	env, err := s.loadEnvironment(ctx)
	if err != nil {
		return nil, err
	}

	cards, err := s.cardRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	type tally struct {
		yellow int
		red    int
	}
	counts := make(map[string]tally)
	for _, c := range cards {
		if _, ok := env.matches[c.MatchID]; !ok {
			continue
		}
		t := counts[c.PlayerID]
		switch c.Type {
		case card.TypeRed:
			t.red++
		default:
			t.yellow++
		}
		counts[c.PlayerID] = t
	}

	entries := make([]CardEntry, 0, len(counts))
	for _, p := range env.players {
		t := counts[p.ID]
		total := t.yellow + t.red
		if total == 0 {
			continue
		}
		teamRow, ok := env.teams[p.TeamID]
		if !ok {
			continue
		}
		entries = append(entries, CardEntry{
			Player:      p,
			Team:        teamRow,
			YellowCards: t.yellow,
			RedCards:    t.red,
			TotalCards:  total,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].RedCards != entries[j].RedCards {
			return entries[i].RedCards > entries[j].RedCards
		}
		if entries[i].YellowCards != entries[j].YellowCards {
			return entries[i].YellowCards > entries[j].YellowCards
		}
		return entries[i].TotalCards > entries[j].TotalCards
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// BestGoalkeepers returns at most one goalkeeper per team: the one who
// conceded least over the team's finished matches. Keepers without any
// finished match still represent their team when they are its only
// goalkeeper, but sort after every keeper who played.
func (s *PlayerStatsService) BestGoalkeepers(ctx context.Context, limit int) ([]GoalkeeperEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.BestGoalkeepers")
	defer span.End()

	limit = s.resolveLimit(limit)

	env, err := s.loadEnvironment(ctx)
	if err != nil {
		return nil, err
	}

	finished, err := s.matchRepo.ListFinished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list finished matches: %w", err)
	}

	bestByTeam := make(map[string]GoalkeeperEntry)
	teamOrder := make([]string, 0)
	for _, p := range env.players {
		if p.Position != player.PositionGoalkeeper {
			continue
		}
		t, ok := env.teams[p.TeamID]
		if !ok {
			continue
		}

		entry := GoalkeeperEntry{Player: p, Team: t}
		for _, m := range finished {
			if !m.Involves(p.TeamID) {
				continue
			}
			conceded := m.AwayScore
			if m.AwayTeamID == p.TeamID {
				conceded = m.HomeScore
			}
			entry.MatchesPlayed++
			entry.GoalsAgainst += conceded
			if conceded == 0 {
				entry.CleanSheets++
			}
		}

		current, exists := bestByTeam[p.TeamID]
		if !exists {
			bestByTeam[p.TeamID] = entry
			teamOrder = append(teamOrder, p.TeamID)
			continue
		}
		if keeperOutranks(entry, current) {
			bestByTeam[p.TeamID] = entry
		}
	}

	entries := make([]GoalkeeperEntry, 0, len(bestByTeam))
	for _, teamID := range teamOrder {
		entries = append(entries, bestByTeam[teamID])
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		// Keepers without finished matches always rank behind keepers
		// with games played.
		if (a.MatchesPlayed == 0) != (b.MatchesPlayed == 0) {
			return a.MatchesPlayed != 0
		}
		if a.MatchesPlayed == 0 && b.MatchesPlayed == 0 {
			return false
		}
		return keeperOutranks(a, b)
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// keeperOutranks reports whether a beats b on the goalkeeper criteria:
// fewest goals against, then lowest per-game average (no games counts
// as infinitely bad), then most clean sheets.
func keeperOutranks(a, b GoalkeeperEntry) bool {
	if a.GoalsAgainst != b.GoalsAgainst {
		return a.GoalsAgainst < b.GoalsAgainst
	}

	avgA, avgB := concededAverage(a), concededAverage(b)
	if avgA != avgB {
		return avgA < avgB
	}

	return a.CleanSheets > b.CleanSheets
}

func concededAverage(e GoalkeeperEntry) float64 {
	if e.MatchesPlayed == 0 {
		return math.Inf(1)
	}
	return float64(e.GoalsAgainst) / float64(e.MatchesPlayed)
}

type statsEnvironment struct {
	teams   map[string]team.Team
	players []player.Player
	matches map[string]match.Match
}

// loadEnvironment snapshots teams, players and matches once per query.
// Ranking queries tolerate dangling references by checking membership
// in these maps instead of trusting cascaded deletes.
func (s *PlayerStatsService) loadEnvironment(ctx context.Context) (statsEnvironment, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return statsEnvironment{}, fmt.Errorf("list teams: %w", err)
	}
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return statsEnvironment{}, fmt.Errorf("list players: %w", err)
	}
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return statsEnvironment{}, fmt.Errorf("list matches: %w", err)
	}

	env := statsEnvironment{
		teams:   make(map[string]team.Team, len(teams)),
		players: players,
		matches: make(map[string]match.Match, len(matches)),
	}
	for _, t := range teams {
		env.teams[t.ID] = t
	}
	for _, m := range matches {
		env.matches[m.ID] = m
	}

	return env, nil
}

func (s *PlayerStatsService) resolveLimit(limit int) int {
	if limit <= 0 {
		return s.defaultLimit
	}
	return limit
}
