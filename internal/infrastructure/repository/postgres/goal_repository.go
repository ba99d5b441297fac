package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/amateur-league/internal/domain/goal"
	qb "github.com/riskibarqy/amateur-league/internal/platform/querybuilder"
)

type GoalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) List(ctx context.Context) ([]goal.Goal, error) {
	query, args, err := goalBaseSelectBuilder().
		OrderBy("match_public_id", "minute", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list goals query: %w", err)
	}

	return r.selectGoals(ctx, query, args)
}

func (r *GoalRepository) ListByMatch(ctx context.Context, matchID string) ([]goal.Goal, error) {
	query, args, err := goalBaseSelectBuilder().
		Where(qb.Eq("match_public_id", matchID)).
		OrderBy("minute", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list goals by match query: %w", err)
	}

	return r.selectGoals(ctx, query, args)
}

func (r *GoalRepository) GetByID(ctx context.Context, goalID string) (goal.Goal, bool, error) {
	query, args, err := goalBaseSelectBuilder().
		Where(qb.Eq("public_id", goalID)).
		ToSQL()
	if err != nil {
		return goal.Goal{}, false, fmt.Errorf("build get goal query: %w", err)
	}

	var row goalTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return goal.Goal{}, false, nil
		}
		return goal.Goal{}, false, fmt.Errorf("get goal: %w", err)
	}

	return goalFromRow(row), true, nil
}

func (r *GoalRepository) Create(ctx context.Context, item goal.Goal) error {
	query, args, err := qb.InsertModel("goals", goalInsertModel{
		PublicID:    item.ID,
		MatchID:     item.MatchID,
		ScorerID:    item.ScorerID,
		AssistantID: goalAssistant(item.AssistantID),
		TeamID:      item.TeamID,
		Minute:      item.Minute,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert goal query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}

	return nil
}

func (r *GoalRepository) Update(ctx context.Context, item goal.Goal) error {
	query, args, err := qb.Update("goals").
		Set("scorer_public_id", item.ScorerID).
		Set("assistant_public_id", goalAssistant(item.AssistantID)).
		Set("team_public_id", item.TeamID).
		Set("minute", item.Minute).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update goal query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update goal: %w", err)
	}

	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, goalID string) error {
	query, args, err := qb.DeleteFrom("goals").
		Where(qb.Eq("public_id", goalID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete goal query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	return nil
}

func (r *GoalRepository) selectGoals(ctx context.Context, query string, args []any) ([]goal.Goal, error) {
	var rows []goalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select goals: %w", err)
	}

	out := make([]goal.Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, goalFromRow(row))
	}

	return out, nil
}

func goalBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("goals")
}
