package postgres

import (
	"time"

	"github.com/riskibarqy/amateur-league/internal/domain/match"
)

type matchTableModel struct {
	ID         int64     `db:"id"`
	PublicID   string    `db:"public_id"`
	HomeTeamID string    `db:"home_team_public_id"`
	AwayTeamID string    `db:"away_team_public_id"`
	MatchDate  time.Time `db:"match_date"`
	Finished   bool      `db:"finished"`
	HomeScore  int       `db:"home_score"`
	AwayScore  int       `db:"away_score"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type matchInsertModel struct {
	PublicID   string    `db:"public_id"`
	HomeTeamID string    `db:"home_team_public_id"`
	AwayTeamID string    `db:"away_team_public_id"`
	MatchDate  time.Time `db:"match_date"`
	Finished   bool      `db:"finished"`
	HomeScore  int       `db:"home_score"`
	AwayScore  int       `db:"away_score"`
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:         row.PublicID,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		MatchDate:  row.MatchDate,
		Finished:   row.Finished,
		HomeScore:  row.HomeScore,
		AwayScore:  row.AwayScore,
	}
}
