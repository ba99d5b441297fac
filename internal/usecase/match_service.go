package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/amateur-league/internal/domain/card"
	"github.com/riskibarqy/amateur-league/internal/domain/goal"
	"github.com/riskibarqy/amateur-league/internal/domain/match"
	"github.com/riskibarqy/amateur-league/internal/domain/team"
	idgen "github.com/riskibarqy/amateur-league/internal/platform/id"
)

// MatchDetails is a match joined with both teams and its events.
// Status is derived at read time and never stored.
type MatchDetails struct {
	Match    match.Match
	Status   match.Status
	HomeTeam team.Team
	AwayTeam team.Team
	Goals    []goal.Goal
	Cards    []card.Card
}

type CreateMatchInput struct {
	HomeTeamID string
	AwayTeamID string
	MatchDate  time.Time
}

type MatchService struct {
	teamRepo  team.Repository
	matchRepo match.Repository
	goalRepo  goal.Repository
	cardRepo  card.Repository
	ids       idgen.Generator
	now       func() time.Time
}

func NewMatchService(
	teamRepo team.Repository,
	matchRepo match.Repository,
	goalRepo goal.Repository,
	cardRepo card.Repository,
	ids idgen.Generator,
) *MatchService {
	return &MatchService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		goalRepo:  goalRepo,
		cardRepo:  cardRepo,
		ids:       ids,
		now:       time.Now,
	}
}

func (s *MatchService) List(ctx context.Context) ([]MatchDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	// Newest fixtures first, the way the fixtures page shows them.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchDate.After(matches[j].MatchDate)
	})

	return s.attachDetails(ctx, matches)
}

func (s *MatchService) ListUpcoming(ctx context.Context) ([]MatchDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListUpcoming")
	defer span.End()

	matches, err := s.matchRepo.ListUpcoming(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list upcoming matches: %w", err)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchDate.Before(matches[j].MatchDate)
	})

	return s.attachDetails(ctx, matches)
}

func (s *MatchService) ListFinished(ctx context.Context) ([]MatchDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListFinished")
	defer span.End()

	matches, err := s.matchRepo.ListFinished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list finished matches: %w", err)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchDate.After(matches[j].MatchDate)
	})

	return s.attachDetails(ctx, matches)
}

func (s *MatchService) Get(ctx context.Context, matchID string) (MatchDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	m, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchDetails{}, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return MatchDetails{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	details, err := s.attachDetails(ctx, []match.Match{m})
	if err != nil {
		return MatchDetails{}, err
	}

	return details[0], nil
}

func (s *MatchService) Create(ctx context.Context, input CreateMatchInput) (MatchDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	if input.HomeTeamID == input.AwayTeamID {
		return MatchDetails{}, fmt.Errorf("%w: home and away teams must differ", ErrInvalidInput)
	}

	home, found, err := s.teamRepo.GetByID(ctx, input.HomeTeamID)
	if err != nil {
		return MatchDetails{}, fmt.Errorf("get home team: %w", err)
	}
	if !found {
		return MatchDetails{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.HomeTeamID)
	}

	away, found, err := s.teamRepo.GetByID(ctx, input.AwayTeamID)
	if err != nil {
		return MatchDetails{}, fmt.Errorf("get away team: %w", err)
	}
	if !found {
		return MatchDetails{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.AwayTeamID)
	}

	matchID, err := s.ids.NewID()
	if err != nil {
		return MatchDetails{}, fmt.Errorf("generate match id: %w", err)
	}

	// Matches start unfinished with a zero score; goals drive the score
	// from here on.
	m := match.Match{
		ID:         matchID,
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		MatchDate:  input.MatchDate,
	}
	if err := m.Validate(); err != nil {
		return MatchDetails{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.Create(ctx, m); err != nil {
		return MatchDetails{}, fmt.Errorf("create match: %w", err)
	}

	return MatchDetails{
		Match:    m,
		Status:   m.StatusAt(s.now().UTC()),
		HomeTeam: home,
		AwayTeam: away,
	}, nil
}

func (s *MatchService) Delete(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	_, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	return nil
}

func (s *MatchService) attachDetails(ctx context.Context, matches []match.Match) ([]MatchDetails, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	teamsByID := make(map[string]team.Team, len(teams))
	for _, t := range teams {
		teamsByID[t.ID] = t
	}

	now := s.now().UTC()
	out := make([]MatchDetails, 0, len(matches))
	for _, m := range matches {
		goals, err := s.goalRepo.ListByMatch(ctx, m.ID)
		if err != nil {
			return nil, fmt.Errorf("list goals by match: %w", err)
		}
		cards, err := s.cardRepo.ListByMatch(ctx, m.ID)
		if err != nil {
			return nil, fmt.Errorf("list cards by match: %w", err)
		}

		sort.SliceStable(goals, func(i, j int) bool { return goals[i].Minute < goals[j].Minute })
		sort.SliceStable(cards, func(i, j int) bool { return cards[i].Minute < cards[j].Minute })

		out = append(out, MatchDetails{
			Match:    m,
			Status:   m.StatusAt(now),
			HomeTeam: teamsByID[m.HomeTeamID],
			AwayTeam: teamsByID[m.AwayTeamID],
			Goals:    goals,
			Cards:    cards,
		})
	}

	return out, nil
}
