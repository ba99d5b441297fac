package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/amateur-league/internal/domain/card"
	"github.com/riskibarqy/amateur-league/internal/domain/goal"
	"github.com/riskibarqy/amateur-league/internal/domain/match"
	qb "github.com/riskibarqy/amateur-league/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := matchBaseSelectBuilder().
		OrderBy("match_date DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) ListFinished(ctx context.Context) ([]match.Match, error) {
	query, args, err := matchBaseSelectBuilder().
		Where(qb.Eq("finished", true)).
		OrderBy("match_date DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list finished matches query: %w", err)
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) ListUpcoming(ctx context.Context, now time.Time) ([]match.Match, error) {
	query, args, err := matchBaseSelectBuilder().
		Where(
			qb.Eq("finished", false),
			qb.Expr("match_date >= ?", now),
		).
		OrderBy("match_date ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list upcoming matches query: %w", err)
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := matchBaseSelectBuilder().
		Where(qb.Eq("public_id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	query, args, err := qb.InsertModel("matches", matchInsertModel{
		PublicID:   item.ID,
		HomeTeamID: item.HomeTeamID,
		AwayTeamID: item.AwayTeamID,
		MatchDate:  item.MatchDate,
		Finished:   item.Finished,
		HomeScore:  item.HomeScore,
		AwayScore:  item.AwayScore,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}

	return nil
}

func (r *MatchRepository) UpdateScore(ctx context.Context, matchID string, homeScore, awayScore int) error {
	query, args, err := qb.Update("matches").
		Set("home_score", homeScore).
		Set("away_score", awayScore).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match score query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update match score: %w", err)
	}

	return nil
}

// ReplaceResult drops the prior goal and card rows of the match, updates
// the match row and inserts the supplied sets, all in one transaction.
func (r *MatchRepository) ReplaceResult(ctx context.Context, replacement match.ResultReplacement) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace result tx: %w", err)
	}
	defer tx.Rollback()

	matchID := replacement.Match.ID
	if err := deleteByMatchTx(ctx, tx, "goals", matchID); err != nil {
		return err
	}
	if err := deleteByMatchTx(ctx, tx, "cards", matchID); err != nil {
		return err
	}

	updateQuery, updateArgs, err := qb.Update("matches").
		Set("match_date", replacement.Match.MatchDate).
		Set("finished", replacement.Match.Finished).
		Set("home_score", replacement.Match.HomeScore).
		Set("away_score", replacement.Match.AwayScore).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build replace result match update query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
		return fmt.Errorf("replace result match update: %w", err)
	}

	if err := insertGoalsTx(ctx, tx, replacement.Goals); err != nil {
		return err
	}
	if err := insertCardsTx(ctx, tx, replacement.Cards); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace result tx: %w", err)
	}

	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	query, args, err := qb.DeleteFrom("matches").
		Where(qb.Eq("public_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	return nil
}

func (r *MatchRepository) selectMatches(ctx context.Context, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}

	return out, nil
}

func deleteByMatchTx(ctx context.Context, tx *sqlx.Tx, table, matchID string) error {
	query, args, err := qb.DeleteFrom(table).
		Where(qb.Eq("match_public_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete %s by match query: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %s by match: %w", table, err)
	}

	return nil
}

func insertGoalsTx(ctx context.Context, tx *sqlx.Tx, items []goal.Goal) error {
	if len(items) == 0 {
		return nil
	}

	builder := qb.InsertInto("goals").
		Columns("public_id", "match_public_id", "scorer_public_id", "assistant_public_id", "team_public_id", "minute")
	for _, item := range items {
		builder = builder.Values(item.ID, item.MatchID, item.ScorerID, goalAssistant(item.AssistantID), item.TeamID, item.Minute)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert goals query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert goals: %w", err)
	}

	return nil
}

func insertCardsTx(ctx context.Context, tx *sqlx.Tx, items []card.Card) error {
	if len(items) == 0 {
		return nil
	}

	builder := qb.InsertInto("cards").
		Columns("public_id", "match_public_id", "player_public_id", "team_public_id", "card_type", "minute")
	for _, item := range items {
		builder = builder.Values(item.ID, item.MatchID, item.PlayerID, item.TeamID, string(item.Type), cardMinute(item.Minute))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert cards query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert cards: %w", err)
	}

	return nil
}

func matchBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("matches")
}
