package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/amateur-league/internal/domain/goal"
)

type goalTableModel struct {
	ID          int64          `db:"id"`
	PublicID    string         `db:"public_id"`
	MatchID     string         `db:"match_public_id"`
	ScorerID    string         `db:"scorer_public_id"`
	AssistantID sql.NullString `db:"assistant_public_id"`
	TeamID      string         `db:"team_public_id"`
	Minute      int            `db:"minute"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type goalInsertModel struct {
	PublicID    string         `db:"public_id"`
	MatchID     string         `db:"match_public_id"`
	ScorerID    string         `db:"scorer_public_id"`
	AssistantID sql.NullString `db:"assistant_public_id"`
	TeamID      string         `db:"team_public_id"`
	Minute      int            `db:"minute"`
}

func goalFromRow(row goalTableModel) goal.Goal {
	return goal.Goal{
		ID:          row.PublicID,
		MatchID:     row.MatchID,
		ScorerID:    row.ScorerID,
		AssistantID: row.AssistantID.String,
		TeamID:      row.TeamID,
		Minute:      row.Minute,
	}
}

func goalAssistant(assistantID string) sql.NullString {
	if assistantID == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: assistantID, Valid: true}
}
