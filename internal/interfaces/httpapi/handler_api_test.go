package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/amateur-league/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/amateur-league/internal/platform/id"
	"github.com/riskibarqy/amateur-league/internal/platform/logging"
	"github.com/riskibarqy/amateur-league/internal/usecase"
)

const testAdminToken = "test-admin-token"

func newSeededRouter(t *testing.T) http.Handler {
	t.Helper()

	goals := memory.NewGoalRepository(memory.SeedGoals())
	cards := memory.NewCardRepository(memory.SeedCards())
	matches := memory.NewMatchRepository(memory.SeedMatches(), goals, cards)
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	teams := memory.NewTeamRepository(memory.SeedTeams(), players, matches)

	ids := idgen.NewRandomGenerator()
	logger := logging.NewNop()

	teamSvc := usecase.NewTeamService(teams, players, ids)
	playerSvc := usecase.NewPlayerService(teams, players, ids)
	matchSvc := usecase.NewMatchService(teams, matches, goals, cards, ids)
	resultSvc := usecase.NewMatchResultService(matches, goals, cards, players, ids, logger)
	standingsSvc := usecase.NewStandingsService(teams, matches)
	statsSvc := usecase.NewPlayerStatsService(teams, players, matches, goals, cards, 10)

	handler := NewHandler(teamSvc, playerSvc, matchSvc, resultSvc, standingsSvc, statsSvc, logger)

	return NewRouter(handler, logger, []string{"*"}, testAdminToken)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, admin bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("X-Admin-Token", testAdminToken)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		APIVersion string `json:"apiVersion"`
		Data       any    `json:"data"`
	}
	envelope.Data = out
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "2.0", envelope.APIVersion)
}

func TestAPIHealthz(t *testing.T) {
	router := newSeededRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/healthz", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIStandings(t *testing.T) {
	router := newSeededRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/standings", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []standingDTO
	decodeData(t, rec, &rows)

	require.Len(t, rows, 4)
	require.Equal(t, "tm-cendrawasih", rows[0].Team.ID)
	require.Equal(t, 4, rows[0].Points)
	require.Equal(t, 1, rows[0].Position)
	require.Equal(t, "tm-rajawali", rows[3].Team.ID)
	require.NotNil(t, rows[3].LastFiveGames)
}

func TestAPIRankings(t *testing.T) {
	router := newSeededRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/rankings", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var rankings rankingsDTO
	decodeData(t, rec, &rankings)

	require.NotEmpty(t, rankings.Scorers)
	require.Equal(t, "pl-cendrawasih-fwd", rankings.Scorers[0].Player.ID)
	require.Equal(t, 3, rankings.Scorers[0].Goals)
	require.NotEmpty(t, rankings.Assists)
	require.NotEmpty(t, rankings.Cards)
	require.NotEmpty(t, rankings.Goalkeepers)
}

func TestAPIRankingsRejectsBadLimit(t *testing.T) {
	router := newSeededRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/rankings/scorers?limit=zero", "", false)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPIGetMatchDetails(t *testing.T) {
	router := newSeededRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/matches/mt-001", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var details matchDetailsDTO
	decodeData(t, rec, &details)

	require.Equal(t, "mt-001", details.ID)
	require.Equal(t, "COMPLETED", details.Status)
	require.Equal(t, 2, details.HomeScore)
	require.Equal(t, 1, details.AwayScore)
	require.Len(t, details.Goals, 3)
	require.Len(t, details.Cards, 1)
}

func TestAPIAdminGuard(t *testing.T) {
	router := newSeededRouter(t)

	body := `{"name":"Benteng Timur"}`

	t.Run("rejects missing token", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/v1/teams", body, false)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("accepts valid token", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/v1/teams", body, true)
		require.Equal(t, http.StatusCreated, rec.Code)

		var created teamWithPlayersDTO
		decodeData(t, rec, &created)
		require.Equal(t, "Benteng Timur", created.Name)
		require.NotEmpty(t, created.ID)
	})
}

func TestAPIRecordGoalUpdatesScore(t *testing.T) {
	router := newSeededRouter(t)

	body := `{"scorerId":"pl-garuda-fwd","teamId":"tm-garuda","minute":21}`
	rec := doRequest(t, router, http.MethodPost, "/v1/matches/mt-004/goals", body, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	var payload map[string]any
	decodeData(t, rec, &payload)
	require.Equal(t, "mt-004", payload["matchId"])
	require.EqualValues(t, 0, payload["homeScore"])
	require.EqualValues(t, 1, payload["awayScore"])
}

func TestAPIReplaceResult(t *testing.T) {
	router := newSeededRouter(t)

	body := `{
		"homeScore": 0,
		"awayScore": 0,
		"finished": true,
		"goals": [
			{"scorerId":"pl-elang-fwd","teamId":"tm-elang","minute":14},
			{"scorerId":"pl-garuda-fwd","assistantId":"pl-garuda-mid","teamId":"tm-garuda","minute":60},
			{"scorerId":"pl-garuda-mid","teamId":"tm-garuda","minute":88}
		],
		"cards": []
	}`
	rec := doRequest(t, router, http.MethodPut, "/v1/matches/mt-004/result", body, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var details matchDetailsDTO
	decodeData(t, rec, &details)
	require.Equal(t, 1, details.HomeScore)
	require.Equal(t, 2, details.AwayScore)
	require.True(t, details.Finished)
	require.Equal(t, "COMPLETED", details.Status)
	require.Len(t, details.Goals, 3)
}

func TestAPIUnknownFieldRejected(t *testing.T) {
	router := newSeededRouter(t)

	body := `{"name":"Nakal FC","surprise":true}`
	rec := doRequest(t, router, http.MethodPost, "/v1/teams", body, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPINotFound(t *testing.T) {
	router := newSeededRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/teams/tm-nope", "", false)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
