package postgres

import (
	"context"
	"fmt"
	"foodgram/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	favoritesTable     = "favorites"
	shoppingCartsTable = "shopping_carts"
)

var relationTables = map[domain.RelationKind]string{ //nolint: gochecknoglobals
	domain.RelationFavorite:     favoritesTable,
	domain.RelationShoppingCart: shoppingCartsTable,
}

func relationTable(kind domain.RelationKind) (string, error) {
	table, ok := relationTables[kind]
	if !ok {
		return "", fmt.Errorf("unknown relation kind %q", kind)
	}

	return table, nil
}

func (p *PgSQL) AddRelation(ctx context.Context,
	kind domain.RelationKind,
	userID domain.UserID,
	recipeID domain.RecipeID) (bool, error) {
	table, err := relationTable(kind)
	if err != nil {
		return false, err
	}

	res, err := p.Builder.Insert(table).
		Rows(goqu.Record{"user_id": uuid.UUID(userID), "recipe_id": int64(recipeID)}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not add %s relation: %w", kind, err)
	}

	n, err := rowsAffected(res)
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (p *PgSQL) RemoveRelation(ctx context.Context,
	kind domain.RelationKind,
	userID domain.UserID,
	recipeID domain.RecipeID) (bool, error) {
	table, err := relationTable(kind)
	if err != nil {
		return false, err
	}

	res, err := p.Builder.Delete(table).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("recipe_id").Eq(int64(recipeID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not remove %s relation: %w", kind, err)
	}

	n, err := rowsAffected(res)
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
