package postgres

import (
	"context"
	"fmt"
	"foodgram/pkg/domain"
	"foodgram/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	recipesTable           = "recipes"
	recipeTagsTable        = "recipe_tags"
	recipeIngredientsTable = "recipe_ingredients"
)

// StoreRecipe writes the recipe row and its links. It issues several
// statements, so callers run it through WithTx.
func (p *PgSQL) StoreRecipe(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error) {
	var row PgRecipe
	row.FromDomain(recipe)

	var id int64
	found, err := p.Builder.Insert(recipesTable).
		Rows(row).
		Returning(goqu.I("id")).
		Executor().ScanValContext(ctx, &id)
	if err != nil {
		return nil, fmt.Errorf("could not store recipe into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store recipe into pg: no id returned")
	}

	if err := p.storeRecipeLinks(ctx, id, recipe); err != nil {
		return nil, err
	}

	return p.RecipeByID(ctx, recipe.Author.ID, domain.RecipeID(id))
}

// UpdateRecipe overwrites the editable columns and replaces the tag and
// ingredient links.
func (p *PgSQL) UpdateRecipe(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error) {
	var id int64
	found, err := p.Builder.Update(recipesTable).
		Set(goqu.Record{
			"name":         recipe.Name,
			"image":        recipe.Image,
			"text":         recipe.Text,
			"cooking_time": recipe.CookingTime,
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(int64(recipe.ID))).
		Returning(goqu.I("id")).
		Executor().ScanValContext(ctx, &id)
	if err != nil {
		return nil, fmt.Errorf("could not update recipe in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	for _, table := range []string{recipeTagsTable, recipeIngredientsTable} {
		if _, err := p.Builder.Delete(table).
			Where(goqu.I("recipe_id").Eq(id)).
			Executor().ExecContext(ctx); err != nil {
			return nil, fmt.Errorf("could not clear %s of recipe: %w", table, err)
		}
	}

	if err := p.storeRecipeLinks(ctx, id, recipe); err != nil {
		return nil, err
	}

	return p.RecipeByID(ctx, recipe.Author.ID, domain.RecipeID(id))
}

func (p *PgSQL) storeRecipeLinks(ctx context.Context, id int64, recipe domain.Recipe) error {
	if len(recipe.Tags) > 0 {
		rows := make([]goqu.Record, 0, len(recipe.Tags))
		for _, t := range recipe.Tags {
			rows = append(rows, goqu.Record{"recipe_id": id, "tag_id": int64(t.ID)})
		}
		if _, err := p.Builder.Insert(recipeTagsTable).
			Rows(rows).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not store recipe tags into pg: %w", err)
		}
	}

	if len(recipe.Ingredients) > 0 {
		rows := make([]goqu.Record, 0, len(recipe.Ingredients))
		for _, i := range recipe.Ingredients {
			rows = append(rows, goqu.Record{
				"recipe_id":     id,
				"ingredient_id": int64(i.ID),
				"amount":        i.Amount,
			})
		}
		if _, err := p.Builder.Insert(recipeIngredientsTable).
			Rows(rows).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not store recipe ingredients into pg: %w", err)
		}
	}

	return nil
}

func (p *PgSQL) DeleteRecipe(ctx context.Context, ID domain.RecipeID) (bool, error) {
	res, err := p.Builder.Delete(recipesTable).
		Where(goqu.I("id").Eq(int64(ID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete recipe in pg: %w", err)
	}

	n, err := rowsAffected(res)
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (p *PgSQL) RecipeByID(ctx context.Context, viewer domain.UserID, ID domain.RecipeID) (*domain.Recipe, error) {
	var row pgRecipeView
	found, err := p.recipeViews(viewer).
		Where(goqu.I("r.id").Eq(int64(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch recipe by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	recipes, err := p.withRecipeLinks(ctx, []pgRecipeView{row})
	if err != nil {
		return nil, err
	}

	return &recipes[0], nil
}

// Recipes returns recipes ordered by created_at DESC, id DESC.
func (p *PgSQL) Recipes(ctx context.Context, filter storage.RecipeFilter) (domain.RecipePage, error) {
	w := recipeFilters(filter)

	count, err := p.Builder.From(goqu.T(recipesTable).As("r")).
		Where(w...).
		CountContext(ctx)
	if err != nil {
		return domain.RecipePage{}, fmt.Errorf("could not count recipes: %w", err)
	}

	ds := p.recipeViews(filter.Viewer).
		Where(w...).
		Order(goqu.I("r.created_at").Desc(), goqu.I("r.id").Desc())
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		ds = ds.Offset(filter.Offset)
	}

	var rows []pgRecipeView
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return domain.RecipePage{}, fmt.Errorf("could not fetch recipes from pg: %w", err)
	}

	recipes, err := p.withRecipeLinks(ctx, rows)
	if err != nil {
		return domain.RecipePage{}, err
	}

	return domain.RecipePage{Recipes: recipes, Count: count}, nil
}

// recipeViews selects recipe rows joined with their author. The recipe table
// is aliased "r".
func (p *PgSQL) recipeViews(viewer domain.UserID) *goqu.SelectDataset {
	return p.Builder.From(goqu.T(recipesTable).As("r")).
		InnerJoin(goqu.T(usersTable).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("r.author_id")))).
		Select(
			goqu.I("r.id"),
			goqu.I("r.author_id"),
			goqu.I("u.email").As("author_email"),
			goqu.I("u.username").As("author_username"),
			goqu.I("u.first_name").As("author_first_name"),
			goqu.I("u.last_name").As("author_last_name"),
			goqu.I("u.created_at").As("author_created_at"),
			goqu.I("r.name"),
			goqu.I("r.image"),
			goqu.I("r.text"),
			goqu.I("r.cooking_time"),
			goqu.I("r.created_at"),
			goqu.I("r.updated_at"),
			relationExists(domain.RelationFavorite, viewer).As("is_favorited"),
			relationExists(domain.RelationShoppingCart, viewer).As("is_in_shopping_cart"),
		)
}

func recipeFilters(filter storage.RecipeFilter) []exp.Expression {
	var w []exp.Expression
	if filter.Author != nil {
		w = append(w, goqu.I("r.author_id").Eq(uuid.UUID(*filter.Author)))
	}
	if len(filter.TagSlugs) > 0 {
		sub := dialect.From(goqu.T(recipeTagsTable).As("rt")).
			InnerJoin(goqu.T(tagsTable).As("t"), goqu.On(goqu.I("t.id").Eq(goqu.I("rt.tag_id")))).
			Select(goqu.L("1")).
			Where(
				goqu.I("rt.recipe_id").Eq(goqu.I("r.id")),
				goqu.I("t.slug").In(filter.TagSlugs),
			)
		w = append(w, goqu.L("EXISTS ?", sub))
	}

	// relation filters only make sense for a known viewer
	if filter.Viewer == (domain.UserID{}) {
		return w
	}
	if filter.IsFavorited != nil {
		w = append(w, relationFilter(domain.RelationFavorite, filter.Viewer, *filter.IsFavorited))
	}
	if filter.IsInShoppingCart != nil {
		w = append(w, relationFilter(domain.RelationShoppingCart, filter.Viewer, *filter.IsInShoppingCart))
	}

	return w
}

func relationSubquery(kind domain.RelationKind, viewer domain.UserID) *goqu.SelectDataset {
	return dialect.From(goqu.T(relationTables[kind]).As("rel")).
		Select(goqu.L("1")).
		Where(
			goqu.I("rel.recipe_id").Eq(goqu.I("r.id")),
			goqu.I("rel.user_id").Eq(uuid.UUID(viewer)),
		)
}

func relationExists(kind domain.RelationKind, viewer domain.UserID) exp.LiteralExpression {
	if viewer == (domain.UserID{}) {
		return goqu.L("FALSE")
	}

	return goqu.L("EXISTS ?", relationSubquery(kind, viewer))
}

func relationFilter(kind domain.RelationKind, viewer domain.UserID, in bool) exp.Expression {
	if in {
		return goqu.L("EXISTS ?", relationSubquery(kind, viewer))
	}

	return goqu.L("NOT EXISTS ?", relationSubquery(kind, viewer))
}

// withRecipeLinks converts rows and loads their tags and ingredients with one
// query each.
func (p *PgSQL) withRecipeLinks(ctx context.Context, rows []pgRecipeView) ([]domain.Recipe, error) {
	recipes := make([]domain.Recipe, 0, len(rows))
	if len(rows) == 0 {
		return recipes, nil
	}

	ids := make([]int64, 0, len(rows))
	index := make(map[int64]int, len(rows))
	for i := range rows {
		recipes = append(recipes, rows[i].ToDomain())
		ids = append(ids, rows[i].ID)
		index[rows[i].ID] = i
	}

	var tags []pgRecipeTag
	if err := p.Builder.From(goqu.T(recipeTagsTable).As("rt")).
		InnerJoin(goqu.T(tagsTable).As("t"), goqu.On(goqu.I("t.id").Eq(goqu.I("rt.tag_id")))).
		Select(goqu.I("rt.recipe_id"), goqu.I("t.id"), goqu.I("t.name"), goqu.I("t.color"), goqu.I("t.slug")).
		Where(goqu.I("rt.recipe_id").In(ids)).
		Order(goqu.I("t.id").Asc()).
		Executor().ScanStructsContext(ctx, &tags); err != nil {
		return nil, fmt.Errorf("could not fetch recipe tags: %w", err)
	}
	for i := range tags {
		r := &recipes[index[tags[i].RecipeID]]
		r.Tags = append(r.Tags, tags[i].ToDomain())
	}

	var ingredients []pgRecipeIngredient
	if err := p.Builder.From(goqu.T(recipeIngredientsTable).As("ri")).
		InnerJoin(goqu.T(ingredientsTable).As("i"), goqu.On(goqu.I("i.id").Eq(goqu.I("ri.ingredient_id")))).
		Select(
			goqu.I("ri.recipe_id"),
			goqu.I("ri.ingredient_id"),
			goqu.I("i.name"),
			goqu.I("i.measurement_unit"),
			goqu.I("ri.amount"),
		).
		Where(goqu.I("ri.recipe_id").In(ids)).
		Order(goqu.I("ri.id").Asc()).
		Executor().ScanStructsContext(ctx, &ingredients); err != nil {
		return nil, fmt.Errorf("could not fetch recipe ingredients: %w", err)
	}
	for _, ing := range ingredients {
		r := &recipes[index[ing.RecipeID]]
		r.Ingredients = append(r.Ingredients, domain.RecipeIngredient{
			ID:              domain.IngredientID(ing.IngredientID),
			Name:            ing.Name,
			MeasurementUnit: ing.MeasurementUnit,
			Amount:          ing.Amount,
		})
	}

	return recipes, nil
}
