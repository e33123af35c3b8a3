package postgres

import (
	"context"
	"fmt"
	"foodgram/pkg/domain"
	"strings"

	"github.com/doug-martin/goqu/v9"
)

const (
	ingredientsTable = "ingredients"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`) //nolint: gochecknoglobals

func (p *PgSQL) Ingredients(ctx context.Context, prefix string) ([]domain.Ingredient, error) {
	ds := p.Builder.From(ingredientsTable).
		Order(goqu.I("name").Asc(), goqu.I("measurement_unit").Asc())
	if prefix != "" {
		pattern := likeEscaper.Replace(strings.ToLower(prefix)) + "%"
		ds = ds.Where(goqu.Func("lower", goqu.I("name")).Like(pattern))
	}

	var rows []PgIngredient
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch ingredients from pg: %w", err)
	}

	return pgIngredientsToDomain(rows), nil
}

func (p *PgSQL) IngredientByID(ctx context.Context, ID domain.IngredientID) (*domain.Ingredient, error) {
	var row PgIngredient
	found, err := p.Builder.From(ingredientsTable).
		Where(goqu.I("id").Eq(int64(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch ingredient by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	ingredient := row.ToDomain()

	return &ingredient, nil
}

func (p *PgSQL) IngredientsByIDs(ctx context.Context, IDs []domain.IngredientID) ([]domain.Ingredient, error) {
	if len(IDs) == 0 {
		return []domain.Ingredient{}, nil
	}

	ids := make([]int64, 0, len(IDs))
	for _, id := range IDs {
		ids = append(ids, int64(id))
	}

	var rows []PgIngredient
	if err := p.Builder.From(ingredientsTable).
		Where(goqu.I("id").In(ids)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch ingredients by ids: %w", err)
	}

	return pgIngredientsToDomain(rows), nil
}

func (p *PgSQL) StoreIngredients(ctx context.Context, ingredients ...domain.Ingredient) (int64, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}

	rows := make([]PgIngredient, 0, len(ingredients))
	for _, i := range ingredients {
		rows = append(rows, PgIngredient{Name: i.Name, MeasurementUnit: i.MeasurementUnit})
	}

	res, err := p.Builder.Insert(ingredientsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not store ingredients into pg: %w", err)
	}

	return rowsAffected(res)
}

func pgIngredientsToDomain(rows []PgIngredient) []domain.Ingredient {
	ingredients := make([]domain.Ingredient, 0, len(rows))
	for i := range rows {
		ingredients = append(ingredients, rows[i].ToDomain())
	}

	return ingredients
}
