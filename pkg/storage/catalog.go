package storage

import (
	"context"
	"foodgram/pkg/domain"
)

// UserStorage persists user accounts.
type UserStorage interface {
	// StoreUser inserts a user and returns the stored row. A duplicate email or
	// username yields ErrDuplicate.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns the user or nil when it does not exist.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
}

// TagStorage reads and seeds tags.
type TagStorage interface {
	// Tags returns every tag ordered by name.
	Tags(ctx context.Context) ([]domain.Tag, error)
	// TagByID returns the tag or nil when it does not exist.
	TagByID(ctx context.Context, ID domain.TagID) (*domain.Tag, error)
	// TagsByIDs returns the tags that exist among IDs, in no particular order.
	TagsByIDs(ctx context.Context, IDs []domain.TagID) ([]domain.Tag, error)
	// StoreTags inserts tags, skipping slugs that already exist, and returns
	// the number of inserted rows.
	StoreTags(ctx context.Context, tags ...domain.Tag) (int64, error)
}

// IngredientStorage reads and seeds the ingredient catalog.
type IngredientStorage interface {
	// Ingredients returns catalog entries whose name starts with prefix
	// (case-insensitive), ordered by name. An empty prefix returns everything.
	Ingredients(ctx context.Context, prefix string) ([]domain.Ingredient, error)
	// IngredientByID returns the ingredient or nil when it does not exist.
	IngredientByID(ctx context.Context, ID domain.IngredientID) (*domain.Ingredient, error)
	// IngredientsByIDs returns the ingredients that exist among IDs.
	IngredientsByIDs(ctx context.Context, IDs []domain.IngredientID) ([]domain.Ingredient, error)
	// StoreIngredients inserts catalog entries, skipping (name, unit) pairs that
	// already exist, and returns the number of inserted rows.
	StoreIngredients(ctx context.Context, ingredients ...domain.Ingredient) (int64, error)
}
