package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/amateur-league/internal/domain/match"
	"github.com/riskibarqy/amateur-league/internal/domain/team"
	"github.com/riskibarqy/amateur-league/internal/platform/resilience"
)

const formLength = 5

// TeamStanding is one row of the league table.
// LastFiveGames holds W/D/L outcomes most-recent-first.
type TeamStanding struct {
	Team           team.Team
	Position       int
	Games          int
	Wins           int
	Draws          int
	Defeats        int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	LastFiveGames  []string
}

type StandingsService struct {
	teamRepo  team.Repository
	matchRepo match.Repository
	flight    resilience.SingleFlight
}

func NewStandingsService(teamRepo team.Repository, matchRepo match.Repository) *StandingsService {
	return &StandingsService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
	}
}

// Compute builds the league table from the current store state. There is
// no cached result: every call recomputes from finished matches, with
// concurrent identical calls collapsed into one computation.
func (s *StandingsService) Compute(ctx context.Context) ([]TeamStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Compute")
	defer span.End()

	val, err, _ := s.flight.Do("standings", func() (any, error) {
		return s.compute(ctx)
	})
	if err != nil {
		return nil, err
	}

	rows, ok := val.([]TeamStanding)
	if !ok {
		return nil, fmt.Errorf("unexpected standings result type %T", val)
	}
	return rows, nil
}

func (s *StandingsService) compute(ctx context.Context) ([]TeamStanding, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	finished, err := s.matchRepo.ListFinished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list finished matches: %w", err)
	}

	matchesByTeam := make(map[string][]match.Match, len(teams))
	for _, m := range finished {
		matchesByTeam[m.HomeTeamID] = append(matchesByTeam[m.HomeTeamID], m)
		matchesByTeam[m.AwayTeamID] = append(matchesByTeam[m.AwayTeamID], m)
	}

	rows := make([]TeamStanding, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, buildStandingRow(t, matchesByTeam[t.ID]))
	}

	// Ranking: points, then goal difference, then goals scored, all
	// descending. Remaining ties keep the repository team order, which
	// is deterministic, so repeated computations agree.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDifference != rows[j].GoalDifference {
			return rows[i].GoalDifference > rows[j].GoalDifference
		}
		return rows[i].GoalsFor > rows[j].GoalsFor
	})

	for idx := range rows {
		rows[idx].Position = idx + 1
	}

	return rows, nil
}

func buildStandingRow(t team.Team, teamMatches []match.Match) TeamStanding {
	// Most recent first; match id breaks equal kickoff times so the
	// form order is reproducible.
	sorted := append([]match.Match(nil), teamMatches...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].MatchDate.Equal(sorted[j].MatchDate) {
			return sorted[i].MatchDate.After(sorted[j].MatchDate)
		}
		return sorted[i].ID > sorted[j].ID
	})

	row := TeamStanding{
		Team:          t,
		Games:         len(sorted),
		LastFiveGames: make([]string, 0, formLength),
	}

	for idx, m := range sorted {
		ownScore, opponentScore := m.HomeScore, m.AwayScore
		if m.AwayTeamID == t.ID {
			ownScore, opponentScore = m.AwayScore, m.HomeScore
		}

		row.GoalsFor += ownScore
		row.GoalsAgainst += opponentScore

		var result string
		switch {
		case ownScore > opponentScore:
			row.Wins++
			row.Points += 3
			result = "W"
		case ownScore == opponentScore:
			row.Draws++
			row.Points++
			result = "D"
		default:
			row.Defeats++
			result = "L"
		}

		if idx < formLength {
			row.LastFiveGames = append(row.LastFiveGames, result)
		}
	}

	row.GoalDifference = row.GoalsFor - row.GoalsAgainst

	return row
}
