package postgres

import (
	"context"
	"fmt"
	"foodgram/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

// ShoppingCartIngredients lists the ingredient rows of every recipe in the
// cart, ordered by amount DESC, then name.
func (p *PgSQL) ShoppingCartIngredients(ctx context.Context, userID domain.UserID) ([]domain.CartIngredient, error) {
	var rows []pgCartIngredient
	if err := p.Builder.From(goqu.T(shoppingCartsTable).As("sc")).
		InnerJoin(goqu.T(recipeIngredientsTable).As("ri"),
			goqu.On(goqu.I("ri.recipe_id").Eq(goqu.I("sc.recipe_id")))).
		InnerJoin(goqu.T(ingredientsTable).As("i"),
			goqu.On(goqu.I("i.id").Eq(goqu.I("ri.ingredient_id")))).
		Select(
			goqu.I("i.name"),
			goqu.Cast(goqu.I("ri.amount"), "DOUBLE PRECISION").As("amount"),
			goqu.I("i.measurement_unit").As("unit"),
		).
		Where(goqu.I("sc.user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("ri.amount").Desc(), goqu.I("i.name").Asc(), goqu.I("ri.id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch shopping cart ingredients: %w", err)
	}

	items := make([]domain.CartIngredient, 0, len(rows))
	for _, r := range rows {
		items = append(items, domain.CartIngredient{Name: r.Name, Amount: r.Amount, Unit: r.Unit})
	}

	return items, nil
}
