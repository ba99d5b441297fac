package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/amateur-league/internal/config"
	"github.com/riskibarqy/amateur-league/internal/domain/card"
	"github.com/riskibarqy/amateur-league/internal/domain/goal"
	"github.com/riskibarqy/amateur-league/internal/domain/match"
	"github.com/riskibarqy/amateur-league/internal/domain/player"
	"github.com/riskibarqy/amateur-league/internal/domain/team"
	"github.com/riskibarqy/amateur-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/amateur-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/amateur-league/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/amateur-league/internal/platform/id"
	"github.com/riskibarqy/amateur-league/internal/platform/logging"
	"github.com/riskibarqy/amateur-league/internal/usecase"
)

type repositories struct {
	teams   team.Repository
	players player.Repository
	matches match.Repository
	goals   goal.Repository
	cards   card.Repository
}

// NewHTTPServer wires repositories, services and the HTTP router.
// The returned cleanup closes the database pool when one was opened.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	ids := idgen.NewRandomGenerator()

	teamSvc := usecase.NewTeamService(repos.teams, repos.players, ids)
	playerSvc := usecase.NewPlayerService(repos.teams, repos.players, ids)
	matchSvc := usecase.NewMatchService(repos.teams, repos.matches, repos.goals, repos.cards, ids)
	resultSvc := usecase.NewMatchResultService(repos.matches, repos.goals, repos.cards, repos.players, ids, logger)
	resultSvc.SetRepairWorkers(cfg.RepairWorkers)
	standingsSvc := usecase.NewStandingsService(repos.teams, repos.matches)
	statsSvc := usecase.NewPlayerStatsService(repos.teams, repos.players, repos.matches, repos.goals, repos.cards, cfg.StatsDefaultLimit)

	handler := httpapi.NewHandler(teamSvc, playerSvc, matchSvc, resultSvc, standingsSvc, statsSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	if cfg.DBURL == "" {
		logger.Info("storage mode", "backend", "memory", "reason", "DB_URL empty")

		goals := memory.NewGoalRepository(memory.SeedGoals())
		cards := memory.NewCardRepository(memory.SeedCards())
		matches := memory.NewMatchRepository(memory.SeedMatches(), goals, cards)
		players := memory.NewPlayerRepository(memory.SeedPlayers())
		teams := memory.NewTeamRepository(memory.SeedTeams(), players, matches)

		return repositories{
			teams:   teams,
			players: players,
			matches: matches,
			goals:   goals,
			cards:   cards,
		}, func() error { return nil }, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("open database: %w", err)
	}

	logger.Info("storage mode", "backend", "postgres", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
		teams:   postgres.NewTeamRepository(db),
		players: postgres.NewPlayerRepository(db),
		matches: postgres.NewMatchRepository(db),
		goals:   postgres.NewGoalRepository(db),
		cards:   postgres.NewCardRepository(db),
	}, db.Close, nil
}
