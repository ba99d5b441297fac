package httpapi

import (
	"time"

	"github.com/riskibarqy/amateur-league/internal/domain/card"
	"github.com/riskibarqy/amateur-league/internal/domain/goal"
	"github.com/riskibarqy/amateur-league/internal/domain/player"
	"github.com/riskibarqy/amateur-league/internal/domain/team"
	"github.com/riskibarqy/amateur-league/internal/usecase"
)

type teamDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

type teamWithPlayersDTO struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Logo    string      `json:"logo,omitempty"`
	Players []playerDTO `json:"players"`
}

type playerDTO struct {
	ID       string `json:"id"`
	TeamID   string `json:"teamId"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Number   int    `json:"number,omitempty"`
}

type matchDTO struct {
	ID         string `json:"id"`
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
	MatchDate  string `json:"matchDate"`
	Status     string `json:"status"`
	Finished   bool   `json:"finished"`
	HomeScore  int    `json:"homeScore"`
	AwayScore  int    `json:"awayScore"`
}

type matchDetailsDTO struct {
	ID        string    `json:"id"`
	HomeTeam  teamDTO   `json:"homeTeam"`
	AwayTeam  teamDTO   `json:"awayTeam"`
	MatchDate string    `json:"matchDate"`
	Status    string    `json:"status"`
	Finished  bool      `json:"finished"`
	HomeScore int       `json:"homeScore"`
	AwayScore int       `json:"awayScore"`
	Goals     []goalDTO `json:"goals"`
	Cards     []cardDTO `json:"cards"`
}

type goalDTO struct {
	ID          string `json:"id"`
	MatchID     string `json:"matchId"`
	ScorerID    string `json:"scorerId"`
	AssistantID string `json:"assistantId,omitempty"`
	TeamID      string `json:"teamId"`
	Minute      int    `json:"minute"`
}

type cardDTO struct {
	ID       string `json:"id"`
	MatchID  string `json:"matchId"`
	PlayerID string `json:"playerId"`
	TeamID   string `json:"teamId"`
	Type     string `json:"type"`
	Minute   int    `json:"minute,omitempty"`
}

type standingDTO struct {
	Position       int      `json:"position"`
	Team           teamDTO  `json:"team"`
	Games          int      `json:"games"`
	Wins           int      `json:"wins"`
	Draws          int      `json:"draws"`
	Defeats        int      `json:"defeats"`
	GoalsFor       int      `json:"goalsFor"`
	GoalsAgainst   int      `json:"goalsAgainst"`
	GoalDifference int      `json:"goalDifference"`
	Points         int      `json:"points"`
	LastFiveGames  []string `json:"lastFiveGames"`
}

type scorerDTO struct {
	Player playerDTO `json:"player"`
	Team   teamDTO   `json:"team"`
	Goals  int       `json:"goals"`
}

type assistDTO struct {
	Player  playerDTO `json:"player"`
	Team    teamDTO   `json:"team"`
	Assists int       `json:"assists"`
}

type cardOffenderDTO struct {
	Player      playerDTO `json:"player"`
	Team        teamDTO   `json:"team"`
	YellowCards int       `json:"yellowCards"`
	RedCards    int       `json:"redCards"`
	TotalCards  int       `json:"totalCards"`
}

type goalkeeperDTO struct {
	Player        playerDTO `json:"player"`
	Team          teamDTO   `json:"team"`
	GoalsAgainst  int       `json:"goalsAgainst"`
	MatchesPlayed int       `json:"matchesPlayed"`
	CleanSheets   int       `json:"cleanSheets"`
}

type rankingsDTO struct {
	Scorers     []scorerDTO       `json:"scorers"`
	Assists     []assistDTO       `json:"assists"`
	Cards       []cardOffenderDTO `json:"cards"`
	Goalkeepers []goalkeeperDTO   `json:"goalkeepers"`
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:   v.ID,
		Name: v.Name,
		Logo: v.Logo,
	}
}

func teamWithPlayersToDTO(v usecase.TeamWithPlayers) teamWithPlayersDTO {
	players := make([]playerDTO, 0, len(v.Players))
	for _, p := range v.Players {
		players = append(players, playerToDTO(p))
	}

	return teamWithPlayersDTO{
		ID:      v.Team.ID,
		Name:    v.Team.Name,
		Logo:    v.Team.Logo,
		Players: players,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:       v.ID,
		TeamID:   v.TeamID,
		Name:     v.Name,
		Position: string(v.Position),
		Number:   v.Number,
	}
}

func goalToDTO(v goal.Goal) goalDTO {
	return goalDTO{
		ID:          v.ID,
		MatchID:     v.MatchID,
		ScorerID:    v.ScorerID,
		AssistantID: v.AssistantID,
		TeamID:      v.TeamID,
		Minute:      v.Minute,
	}
}

func cardToDTO(v card.Card) cardDTO {
	return cardDTO{
		ID:       v.ID,
		MatchID:  v.MatchID,
		PlayerID: v.PlayerID,
		TeamID:   v.TeamID,
		Type:     string(v.Type),
		Minute:   v.Minute,
	}
}

func matchDetailsToDTO(v usecase.MatchDetails) matchDetailsDTO {
	goals := make([]goalDTO, 0, len(v.Goals))
	for _, g := range v.Goals {
		goals = append(goals, goalToDTO(g))
	}
	cards := make([]cardDTO, 0, len(v.Cards))
	for _, c := range v.Cards {
		cards = append(cards, cardToDTO(c))
	}

	return matchDetailsDTO{
		ID:        v.Match.ID,
		HomeTeam:  teamToDTO(v.HomeTeam),
		AwayTeam:  teamToDTO(v.AwayTeam),
		MatchDate: v.Match.MatchDate.UTC().Format(time.RFC3339),
		Status:    string(v.Status),
		Finished:  v.Match.Finished,
		HomeScore: v.Match.HomeScore,
		AwayScore: v.Match.AwayScore,
		Goals:     goals,
		Cards:     cards,
	}
}

func standingToDTO(v usecase.TeamStanding) standingDTO {
	form := v.LastFiveGames
	if form == nil {
		form = []string{}
	}

	return standingDTO{
		Position:       v.Position,
		Team:           teamToDTO(v.Team),
		Games:          v.Games,
		Wins:           v.Wins,
		Draws:          v.Draws,
		Defeats:        v.Defeats,
		GoalsFor:       v.GoalsFor,
		GoalsAgainst:   v.GoalsAgainst,
		GoalDifference: v.GoalDifference,
		Points:         v.Points,
		LastFiveGames:  form,
	}
}

func scorersToDTO(entries []usecase.ScorerEntry) []scorerDTO {
	out := make([]scorerDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, scorerDTO{
			Player: playerToDTO(e.Player),
			Team:   teamToDTO(e.Team),
			Goals:  e.Goals,
		})
	}
	return out
}

func assistsToDTO(entries []usecase.AssistEntry) []assistDTO {
	out := make([]assistDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, assistDTO{
			Player:  playerToDTO(e.Player),
			Team:    teamToDTO(e.Team),
			Assists: e.Assists,
		})
	}
	return out
}

func cardOffendersToDTO(entries []usecase.CardEntry) []cardOffenderDTO {
	out := make([]cardOffenderDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, cardOffenderDTO{
			Player:      playerToDTO(e.Player),
			Team:        teamToDTO(e.Team),
			YellowCards: e.YellowCards,
			RedCards:    e.RedCards,
			TotalCards:  e.TotalCards,
		})
	}
	return out
}

func goalkeepersToDTO(entries []usecase.GoalkeeperEntry) []goalkeeperDTO {
	out := make([]goalkeeperDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, goalkeeperDTO{
			Player:        playerToDTO(e.Player),
			Team:          teamToDTO(e.Team),
			GoalsAgainst:  e.GoalsAgainst,
			MatchesPlayed: e.MatchesPlayed,
			CleanSheets:   e.CleanSheets,
		})
	}
	return out
}
