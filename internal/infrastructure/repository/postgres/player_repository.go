package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/amateur-league/internal/domain/player"
	qb "github.com/riskibarqy/amateur-league/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := playerBaseSelectBuilder().
		Where(qb.IsNull("deleted_at")).
		OrderBy("team_public_id", "name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	return r.selectPlayers(ctx, query, args)
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	query, args, err := playerBaseSelectBuilder().
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players by team query: %w", err)
	}

	return r.selectPlayers(ctx, query, args)
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := playerBaseSelectBuilder().
		Where(
			qb.Eq("public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	query, args, err := qb.InsertModel("players", playerInsertRow(item), "")
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	query, args, err := qb.Update("players").
		Set("team_public_id", item.TeamID).
		Set("name", item.Name).
		Set("position", string(item.Position)).
		Set("shirt_number", playerShirtNumber(item.Number)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	query, args, err := qb.Update("players").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) ReplaceByTeam(ctx context.Context, teamID string, items []player.Player) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace roster tx: %w", err)
	}
	defer tx.Rollback()

	dropQuery, dropArgs, err := qb.Update("players").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build drop roster query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, dropQuery, dropArgs...); err != nil {
		return fmt.Errorf("drop roster: %w", err)
	}

	if len(items) > 0 {
		builder := qb.InsertInto("players").
			Columns("public_id", "team_public_id", "name", "position", "shirt_number")
		for _, item := range items {
			builder = builder.Values(item.ID, item.TeamID, item.Name, string(item.Position), playerShirtNumber(item.Number))
		}
		insertQuery, insertArgs, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert roster query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("insert roster: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace roster tx: %w", err)
	}

	return nil
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, query string, args []any) ([]player.Player, error) {
	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}

	return out, nil
}

func playerInsertRow(item player.Player) playerInsertModel {
	return playerInsertModel{
		PublicID:    item.ID,
		TeamID:      item.TeamID,
		Name:        item.Name,
		Position:    string(item.Position),
		ShirtNumber: playerShirtNumber(item.Number),
	}
}

func playerBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("players")
}
