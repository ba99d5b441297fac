package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/upcoming", handler.ListUpcomingMatches)
	mux.HandleFunc("GET /v1/matches/finished", handler.ListFinishedMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/rankings", handler.GetRankings)
	mux.HandleFunc("GET /v1/rankings/scorers", handler.ListTopScorers)
	mux.HandleFunc("GET /v1/rankings/assists", handler.ListTopAssists)
	mux.HandleFunc("GET /v1/rankings/cards", handler.ListCardOffenders)
	mux.HandleFunc("GET /v1/rankings/goalkeepers", handler.ListBestGoalkeepers)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdminToken(adminToken, h)
	}

	mux.Handle("POST /v1/teams", admin(handler.CreateTeam))
	mux.Handle("PUT /v1/teams/{teamID}", admin(handler.UpdateTeam))
	mux.Handle("DELETE /v1/teams/{teamID}", admin(handler.DeleteTeam))

	mux.Handle("POST /v1/players", admin(handler.CreatePlayer))
	mux.Handle("PUT /v1/players/{playerID}", admin(handler.UpdatePlayer))
	mux.Handle("DELETE /v1/players/{playerID}", admin(handler.DeletePlayer))

	mux.Handle("POST /v1/matches", admin(handler.CreateMatch))
	mux.Handle("DELETE /v1/matches/{matchID}", admin(handler.DeleteMatch))
	mux.Handle("PUT /v1/matches/{matchID}/result", admin(handler.ReplaceMatchResult))
	mux.Handle("POST /v1/matches/{matchID}/repair-score", admin(handler.RepairMatchScore))
	mux.Handle("POST /v1/matches/repair-scores", admin(handler.RepairAllScores))

	mux.Handle("POST /v1/matches/{matchID}/goals", admin(handler.RecordGoal))
	mux.Handle("PUT /v1/goals/{goalID}", admin(handler.UpdateGoal))
	mux.Handle("DELETE /v1/goals/{goalID}", admin(handler.DeleteGoal))

	mux.Handle("POST /v1/matches/{matchID}/cards", admin(handler.RecordCard))
	mux.Handle("PUT /v1/cards/{cardID}", admin(handler.UpdateCard))
	mux.Handle("DELETE /v1/cards/{cardID}", admin(handler.DeleteCard))
}
