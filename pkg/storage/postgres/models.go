package postgres

import (
	"database/sql"
	"foodgram/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgUser struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	Email     string    `db:"email"`
	Username  string    `db:"username"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:        domain.UserID(p.ID),
		Email:     p.Email,
		Username:  p.Username,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:        uuid.UUID(user.ID),
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}
}

type PgTag struct {
	ID    int64  `db:"id"    goqu:"skipinsert"`
	Name  string `db:"name"`
	Color string `db:"color"`
	Slug  string `db:"slug"`
}

func (p *PgTag) ToDomain() domain.Tag {
	return domain.Tag{ID: domain.TagID(p.ID), Name: p.Name, Color: p.Color, Slug: p.Slug}
}

type PgIngredient struct {
	ID              int64  `db:"id"               goqu:"skipinsert"`
	Name            string `db:"name"`
	MeasurementUnit string `db:"measurement_unit"`
}

func (p *PgIngredient) ToDomain() domain.Ingredient {
	return domain.Ingredient{ID: domain.IngredientID(p.ID), Name: p.Name, MeasurementUnit: p.MeasurementUnit}
}

// PgRecipe is the recipes table row used for inserts and updates.
type PgRecipe struct {
	ID          int64        `db:"id"           goqu:"skipinsert"`
	AuthorID    uuid.UUID    `db:"author_id"`
	Name        string       `db:"name"`
	Image       string       `db:"image"`
	Text        string       `db:"text"`
	CookingTime int          `db:"cooking_time"`
	CreatedAt   time.Time    `db:"created_at"   goqu:"skipinsert"`
	UpdatedAt   sql.NullTime `db:"updated_at"   goqu:"skipinsert"`
}

func (p *PgRecipe) FromDomain(recipe domain.Recipe) {
	*p = PgRecipe{
		ID:          int64(recipe.ID),
		AuthorID:    uuid.UUID(recipe.Author.ID),
		Name:        recipe.Name,
		Image:       recipe.Image,
		Text:        recipe.Text,
		CookingTime: recipe.CookingTime,
	}
}

// pgRecipeView is a recipe row joined with its author and the viewer flags.
type pgRecipeView struct {
	ID               int64        `db:"id"`
	AuthorID         uuid.UUID    `db:"author_id"`
	AuthorEmail      string       `db:"author_email"`
	AuthorUsername   string       `db:"author_username"`
	AuthorFirstName  string       `db:"author_first_name"`
	AuthorLastName   string       `db:"author_last_name"`
	AuthorCreatedAt  time.Time    `db:"author_created_at"`
	Name             string       `db:"name"`
	Image            string       `db:"image"`
	Text             string       `db:"text"`
	CookingTime      int          `db:"cooking_time"`
	CreatedAt        time.Time    `db:"created_at"`
	UpdatedAt        sql.NullTime `db:"updated_at"`
	IsFavorited      bool         `db:"is_favorited"`
	IsInShoppingCart bool         `db:"is_in_shopping_cart"`
}

func (p *pgRecipeView) ToDomain() domain.Recipe {
	return domain.Recipe{
		ID: domain.RecipeID(p.ID),
		Author: domain.User{
			ID:        domain.UserID(p.AuthorID),
			Email:     p.AuthorEmail,
			Username:  p.AuthorUsername,
			FirstName: p.AuthorFirstName,
			LastName:  p.AuthorLastName,
			CreatedAt: p.AuthorCreatedAt,
		},
		Name:             p.Name,
		Image:            p.Image,
		Text:             p.Text,
		CookingTime:      p.CookingTime,
		Tags:             []domain.Tag{},
		Ingredients:      []domain.RecipeIngredient{},
		IsFavorited:      p.IsFavorited,
		IsInShoppingCart: p.IsInShoppingCart,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt.Time,
	}
}

type pgRecipeTag struct {
	RecipeID int64 `db:"recipe_id"`
	PgTag
}

type pgRecipeIngredient struct {
	RecipeID        int64  `db:"recipe_id"`
	IngredientID    int64  `db:"ingredient_id"`
	Name            string `db:"name"`
	MeasurementUnit string `db:"measurement_unit"`
	Amount          int    `db:"amount"`
}

type pgCartIngredient struct {
	Name   string  `db:"name"`
	Amount float64 `db:"amount"`
	Unit   string  `db:"unit"`
}
