package storage

import (
	"context"
	"foodgram/pkg/domain"
)

// RecipeFilter selects and pages recipes. Zero values disable a filter.
type RecipeFilter struct {
	// Viewer is the user the viewer-relative flags are computed for. The zero
	// UserID means an anonymous viewer.
	Viewer domain.UserID
	// Author restricts results to recipes of one author.
	Author *domain.UserID
	// TagSlugs keeps recipes carrying any of the given tags.
	TagSlugs []string
	// IsFavorited and IsInShoppingCart keep only recipes in (true) or out of
	// (false) the viewer's lists. They are ignored for anonymous viewers.
	IsFavorited      *bool
	IsInShoppingCart *bool

	// Limit is the page size and Offset the number of rows to skip.
	Limit  uint
	Offset uint
}

// RecipeStorage defines CRUD and query operations related to recipes.
type RecipeStorage interface {
	// StoreRecipe inserts a recipe with its tags and ingredients and returns it
	// as read back for its author.
	StoreRecipe(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error)
	// UpdateRecipe replaces the recipe fields, tags and ingredients. It returns
	// nil when the recipe does not exist.
	UpdateRecipe(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error)
	// DeleteRecipe removes a recipe and reports whether it existed.
	DeleteRecipe(ctx context.Context, ID domain.RecipeID) (bool, error)
	// RecipeByID returns the recipe as seen by viewer, or nil when not found.
	RecipeByID(ctx context.Context, viewer domain.UserID, ID domain.RecipeID) (*domain.Recipe, error)
	// Recipes returns a page of recipes matching filter, newest first, together
	// with the total number of matches.
	Recipes(ctx context.Context, filter RecipeFilter) (domain.RecipePage, error)
}

// RelationStorage manages the per-user favorite and shopping cart lists.
type RelationStorage interface {
	// AddRelation links the recipe to the user's list and reports whether a new
	// link was created (false when it already existed).
	AddRelation(ctx context.Context,
		kind domain.RelationKind,
		userID domain.UserID,
		recipeID domain.RecipeID) (bool, error)
	// RemoveRelation unlinks the recipe and reports whether a link existed.
	RemoveRelation(ctx context.Context,
		kind domain.RelationKind,
		userID domain.UserID,
		recipeID domain.RecipeID) (bool, error)
}

// ShoppingCartStorage reads the raw ingredient rows behind a shopping cart.
type ShoppingCartStorage interface {
	// ShoppingCartIngredients returns one row per ingredient of every recipe in
	// the user's shopping cart, largest amounts first. Rows are not merged.
	ShoppingCartIngredients(ctx context.Context, userID domain.UserID) ([]domain.CartIngredient, error)
}
