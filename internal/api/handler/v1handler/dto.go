package v1handler

import (
	"foodgram/internal/recipes"
	"foodgram/pkg/domain"

	"github.com/google/uuid"
)

type userRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r userRequest) toDomain() domain.User {
	return domain.User{
		Email:     r.Email,
		Username:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

func newUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        uuid.UUID(u.ID),
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

type tagResponse struct {
	ID    domain.TagID `json:"id"`
	Name  string       `json:"name"`
	Color string       `json:"color"`
	Slug  string       `json:"slug"`
}

func newTagResponse(t domain.Tag) tagResponse {
	return tagResponse{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug}
}

func newTagResponses(tags []domain.Tag) []tagResponse {
	out := make([]tagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, newTagResponse(t))
	}

	return out
}

type ingredientResponse struct {
	ID              domain.IngredientID `json:"id"`
	Name            string              `json:"name"`
	MeasurementUnit string              `json:"measurement_unit"`
}

func newIngredientResponse(i domain.Ingredient) ingredientResponse {
	return ingredientResponse{ID: i.ID, Name: i.Name, MeasurementUnit: i.MeasurementUnit}
}

type ingredientAmountRequest struct {
	ID     domain.IngredientID `json:"id"`
	Amount int                 `json:"amount"`
}

type recipeRequest struct {
	Name        string                    `json:"name"`
	Image       string                    `json:"image"`
	Text        string                    `json:"text"`
	CookingTime int                       `json:"cooking_time"`
	Tags        []domain.TagID            `json:"tags"`
	Ingredients []ingredientAmountRequest `json:"ingredients"`
}

func (r recipeRequest) toInput() recipes.RecipeInput {
	in := recipes.RecipeInput{
		Name:        r.Name,
		Image:       r.Image,
		Text:        r.Text,
		CookingTime: r.CookingTime,
		Tags:        r.Tags,
		Ingredients: make([]recipes.IngredientAmount, 0, len(r.Ingredients)),
	}
	for _, i := range r.Ingredients {
		in.Ingredients = append(in.Ingredients, recipes.IngredientAmount{ID: i.ID, Amount: i.Amount})
	}

	return in
}

type recipeIngredientResponse struct {
	ID              domain.IngredientID `json:"id"`
	Name            string              `json:"name"`
	MeasurementUnit string              `json:"measurement_unit"`
	Amount          int                 `json:"amount"`
}

type recipeResponse struct {
	ID               domain.RecipeID            `json:"id"`
	Tags             []tagResponse              `json:"tags"`
	Author           userResponse               `json:"author"`
	Ingredients      []recipeIngredientResponse `json:"ingredients"`
	IsFavorited      bool                       `json:"is_favorited"`
	IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	Name             string                     `json:"name"`
	Image            string                     `json:"image"`
	Text             string                     `json:"text"`
	CookingTime      int                        `json:"cooking_time"`
}

func newRecipeResponse(r domain.Recipe) recipeResponse {
	res := recipeResponse{
		ID:               r.ID,
		Tags:             newTagResponses(r.Tags),
		Author:           newUserResponse(r.Author),
		Ingredients:      make([]recipeIngredientResponse, 0, len(r.Ingredients)),
		IsFavorited:      r.IsFavorited,
		IsInShoppingCart: r.IsInShoppingCart,
		Name:             r.Name,
		Image:            r.Image,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
	}
	for _, i := range r.Ingredients {
		res.Ingredients = append(res.Ingredients, recipeIngredientResponse{
			ID:              i.ID,
			Name:            i.Name,
			MeasurementUnit: i.MeasurementUnit,
			Amount:          i.Amount,
		})
	}

	return res
}

// shortRecipeResponse is returned when a recipe is added to a user list.
type shortRecipeResponse struct {
	ID          domain.RecipeID `json:"id"`
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	CookingTime int             `json:"cooking_time"`
}

func newShortRecipeResponse(r domain.Recipe) shortRecipeResponse {
	return shortRecipeResponse{ID: r.ID, Name: r.Name, Image: r.Image, CookingTime: r.CookingTime}
}

type recipePageResponse struct {
	Count    int64            `json:"count"`
	Next     *string          `json:"next"`
	Previous *string          `json:"previous"`
	Results  []recipeResponse `json:"results"`
}
