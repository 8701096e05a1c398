package repository

import (
	"database/sql"
	"fmt"
	"perkly/internal/db/models/postgres/public/model"
	"perkly/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// CardFilters narrows catalog listings. Empty fields are ignored;
// non-empty fields are exact-match.
type CardFilters struct {
	Category    string
	SubCategory string
	Program     string
}

type CardRepository interface {
	Get(cardID int32) (*model.Card, error)
	List(filters CardFilters) ([]model.Card, error)
	DistinctValues(column postgres.ColumnString, filters CardFilters) ([]string, error)
	Count() (int64, error)
	Add(tx *sql.Tx, card model.Card) (*model.Card, error)
	Update(tx *sql.Tx, card model.Card) error
	Delete(tx *sql.Tx, cardID int32) error
}

type cardRepositoryHandler struct {
	Db qrm.Queryable
}

func NewCardRepository(db *sql.DB) CardRepository {
	return cardRepositoryHandler{Db: db}
}

func (f CardFilters) toExpression() postgres.BoolExpression {
	expression := postgres.Bool(true)
	if f.Category != "" {
		expression = expression.AND(table.Card.CardCategory.EQ(postgres.String(f.Category)))
	}
	if f.SubCategory != "" {
		expression = expression.AND(table.Card.SubCategory.EQ(postgres.String(f.SubCategory)))
	}
	if f.Program != "" {
		expression = expression.AND(table.Card.Program.EQ(postgres.String(f.Program)))
	}
	return expression
}

func (h cardRepositoryHandler) Get(cardID int32) (*model.Card, error) {
	query := table.Card.
		SELECT(table.Card.AllColumns).
		WHERE(table.Card.CardID.EQ(postgres.Int32(cardID)))

	out := model.Card{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get card %d: %w", cardID, err)
	}

	return &out, nil
}

// List returns the catalog subset matching the filters, ordered by
// product name so ranking ties stay deterministic.
func (h cardRepositoryHandler) List(filters CardFilters) ([]model.Card, error) {
	query := table.Card.
		SELECT(table.Card.AllColumns).
		WHERE(filters.toExpression()).
		ORDER_BY(table.Card.Product.ASC())

	out := []model.Card{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	return out, nil
}

// DistinctValues lists the non-empty values of one catalog column,
// for populating selection choices.
func (h cardRepositoryHandler) DistinctValues(column postgres.ColumnString, filters CardFilters) ([]string, error) {
	query := postgres.
		SELECT(column.AS("value")).
		DISTINCT().
		FROM(table.Card).
		WHERE(column.NOT_EQ(postgres.String("")).AND(filters.toExpression())).
		ORDER_BY(column.ASC())

	rows := []struct {
		Value string
	}{}
	err := query.Query(h.Db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct card values: %w", err)
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Value)
	}

	return out, nil
}

func (h cardRepositoryHandler) Count() (int64, error) {
	query := postgres.
		SELECT(postgres.COUNT(table.Card.CardID).AS("count")).
		FROM(table.Card)

	out := struct {
		Count int64
	}{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}

	return out.Count, nil
}

func (h cardRepositoryHandler) Add(tx *sql.Tx, card model.Card) (*model.Card, error) {
	query := table.Card.
		INSERT(table.Card.MutableColumns).
		MODEL(card).
		RETURNING(table.Card.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Card{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert card: %w", err)
	}

	return &out, nil
}

func (h cardRepositoryHandler) Update(tx *sql.Tx, card model.Card) error {
	query := table.Card.
		UPDATE(table.Card.MutableColumns).
		MODEL(card).
		WHERE(table.Card.CardID.EQ(postgres.Int32(card.CardID)))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to update card %d: %w", card.CardID, err)
	}

	return nil
}

func (h cardRepositoryHandler) Delete(tx *sql.Tx, cardID int32) error {
	query := table.Card.
		DELETE().
		WHERE(table.Card.CardID.EQ(postgres.Int32(cardID)))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete card %d: %w", cardID, err)
	}

	return nil
}
