package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/amateur-league/internal/domain/player"
)

type playerTableModel struct {
	ID          int64         `db:"id"`
	PublicID    string        `db:"public_id"`
	TeamID      string        `db:"team_public_id"`
	Name        string        `db:"name"`
	Position    string        `db:"position"`
	ShirtNumber sql.NullInt64 `db:"shirt_number"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
	DeletedAt   *time.Time    `db:"deleted_at"`
}

type playerInsertModel struct {
	PublicID    string        `db:"public_id"`
	TeamID      string        `db:"team_public_id"`
	Name        string        `db:"name"`
	Position    string        `db:"position"`
	ShirtNumber sql.NullInt64 `db:"shirt_number"`
}

func playerFromRow(row playerTableModel) player.Player {
	number := 0
	if row.ShirtNumber.Valid {
		number = int(row.ShirtNumber.Int64)
	}

	return player.Player{
		ID:       row.PublicID,
		TeamID:   row.TeamID,
		Name:     row.Name,
		Position: player.Position(row.Position),
		Number:   number,
	}
}

func playerShirtNumber(number int) sql.NullInt64 {
	if number <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(number), Valid: true}
}
