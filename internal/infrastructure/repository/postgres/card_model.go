package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/amateur-league/internal/domain/card"
)

type cardTableModel struct {
	ID        int64         `db:"id"`
	PublicID  string        `db:"public_id"`
	MatchID   string        `db:"match_public_id"`
	PlayerID  string        `db:"player_public_id"`
	TeamID    string        `db:"team_public_id"`
	CardType  string        `db:"card_type"`
	Minute    sql.NullInt64 `db:"minute"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

type cardInsertModel struct {
	PublicID string        `db:"public_id"`
	MatchID  string        `db:"match_public_id"`
	PlayerID string        `db:"player_public_id"`
	TeamID   string        `db:"team_public_id"`
	CardType string        `db:"card_type"`
	Minute   sql.NullInt64 `db:"minute"`
}

func cardFromRow(row cardTableModel) card.Card {
	minute := 0
	if row.Minute.Valid {
		minute = int(row.Minute.Int64)
	}

	return card.Card{
		ID:       row.PublicID,
		MatchID:  row.MatchID,
		PlayerID: row.PlayerID,
		TeamID:   row.TeamID,
		Type:     card.Type(row.CardType),
		Minute:   minute,
	}
}

func cardMinute(minute int) sql.NullInt64 {
	if minute <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(minute), Valid: true}
}
