package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/amateur-league/internal/domain/card"
	qb "github.com/riskibarqy/amateur-league/internal/platform/querybuilder"
)

type CardRepository struct {
	db *sqlx.DB
}

func NewCardRepository(db *sqlx.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) List(ctx context.Context) ([]card.Card, error) {
	query, args, err := cardBaseSelectBuilder().
		OrderBy("match_public_id", "minute", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list cards query: %w", err)
	}

	return r.selectCards(ctx, query, args)
}

func (r *CardRepository) ListByMatch(ctx context.Context, matchID string) ([]card.Card, error) {
	query, args, err := cardBaseSelectBuilder().
		Where(qb.Eq("match_public_id", matchID)).
		OrderBy("minute", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list cards by match query: %w", err)
	}

	return r.selectCards(ctx, query, args)
}

func (r *CardRepository) GetByID(ctx context.Context, cardID string) (card.Card, bool, error) {
	query, args, err := cardBaseSelectBuilder().
		Where(qb.Eq("public_id", cardID)).
		ToSQL()
	if err != nil {
		return card.Card{}, false, fmt.Errorf("build get card query: %w", err)
	}

	var row cardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return card.Card{}, false, nil
		}
		return card.Card{}, false, fmt.Errorf("get card: %w", err)
	}

	return cardFromRow(row), true, nil
}

func (r *CardRepository) Create(ctx context.Context, item card.Card) error {
	query, args, err := qb.InsertModel("cards", cardInsertModel{
		PublicID: item.ID,
		MatchID:  item.MatchID,
		PlayerID: item.PlayerID,
		TeamID:   item.TeamID,
		CardType: string(item.Type),
		Minute:   cardMinute(item.Minute),
	}, "")
	if err != nil {
		return fmt.Errorf("build insert card query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert card: %w", err)
	}

	return nil
}

func (r *CardRepository) Update(ctx context.Context, item card.Card) error {
	query, args, err := qb.Update("cards").
		Set("player_public_id", item.PlayerID).
		Set("team_public_id", item.TeamID).
		Set("card_type", string(item.Type)).
		Set("minute", cardMinute(item.Minute)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update card query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update card: %w", err)
	}

	return nil
}

func (r *CardRepository) Delete(ctx context.Context, cardID string) error {
	query, args, err := qb.DeleteFrom("cards").
		Where(qb.Eq("public_id", cardID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete card query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	return nil
}

func (r *CardRepository) selectCards(ctx context.Context, query string, args []any) ([]card.Card, error) {
	var rows []cardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select cards: %w", err)
	}

	out := make([]card.Card, 0, len(rows))
	for _, row := range rows {
		out = append(out, cardFromRow(row))
	}

	return out, nil
}

func cardBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("cards")
}
