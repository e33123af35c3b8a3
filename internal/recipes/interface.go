package recipes

import (
	"context"
	"foodgram/pkg/document"
	"foodgram/pkg/domain"
)

//go:generate mockgen -package mockrecipes -source=interface.go -destination=mock/mockrecipes.go *
type Service interface {
	Tags(ctx context.Context) ([]domain.Tag, error)
	Tag(ctx context.Context, ID domain.TagID) (*domain.Tag, error)
	Ingredients(ctx context.Context, prefix string) ([]domain.Ingredient, error)
	Ingredient(ctx context.Context, ID domain.IngredientID) (*domain.Ingredient, error)

	Register(ctx context.Context, user domain.User) (*domain.User, error)
	User(ctx context.Context, ID domain.UserID) (*domain.User, error)
	Me(ctx context.Context, ID domain.UserID) (*domain.User, error)

	Create(ctx context.Context, author domain.UserID, input RecipeInput) (*domain.Recipe, error)
	Update(ctx context.Context, author domain.UserID, ID domain.RecipeID, input RecipeInput) (*domain.Recipe, error)
	Delete(ctx context.Context, author domain.UserID, ID domain.RecipeID) error
	Recipe(ctx context.Context, viewer domain.UserID, ID domain.RecipeID) (*domain.Recipe, error)
	Recipes(ctx context.Context, query Query) (domain.RecipePage, error)

	Favorite(ctx context.Context, userID domain.UserID, ID domain.RecipeID) (*domain.Recipe, error)
	Unfavorite(ctx context.Context, userID domain.UserID, ID domain.RecipeID) error
	AddToShoppingCart(ctx context.Context, userID domain.UserID, ID domain.RecipeID) (*domain.Recipe, error)
	RemoveFromShoppingCart(ctx context.Context, userID domain.UserID, ID domain.RecipeID) error

	ShoppingList(ctx context.Context, userID domain.UserID) (*document.Document, error)
}
