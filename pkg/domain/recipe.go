package domain

import "time"

// RecipeID identifies a recipe.
type RecipeID int64

const (
	// MinCookingTime and MaxCookingTime bound Recipe.CookingTime in minutes.
	MinCookingTime = 1
	MaxCookingTime = 300

	// MinIngredientAmount and MaxIngredientAmount bound RecipeIngredient.Amount.
	MinIngredientAmount = 1
	MaxIngredientAmount = 32

	// MaxRecipeNameLength is the maximum length of Recipe.Name in characters.
	MaxRecipeNameLength = 200
)

// RecipeIngredient is an ingredient used by a recipe together with its amount.
// Name and MeasurementUnit are denormalized from the catalog when reading.
type RecipeIngredient struct {
	ID              IngredientID `json:"id"`
	Name            string       `json:"name"`
	MeasurementUnit string       `json:"measurementUnit"`
	Amount          int          `json:"amount"`
}

// Recipe represents a published recipe and, when read on behalf of a user,
// whether that user favorited it or put it into the shopping cart.
type Recipe struct {
	ID     RecipeID `json:"id"`
	Author User     `json:"author"`

	Name string `json:"name"`
	// Image is a base64 data URL ("data:image/png;base64,...").
	Image string `json:"image"`
	Text  string `json:"text"`
	// CookingTime is in minutes.
	CookingTime int `json:"cookingTime"`

	Tags        []Tag              `json:"tags"`
	Ingredients []RecipeIngredient `json:"ingredients"`

	// IsFavorited and IsInShoppingCart are viewer-relative and false for anonymous reads.
	IsFavorited      bool `json:"isFavorited"`
	IsInShoppingCart bool `json:"isInShoppingCart"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecipePage is a single page of a recipe listing.
type RecipePage struct {
	// Recipes on this page.
	Recipes []Recipe
	// Count is the total number of recipes matching the filter across all pages.
	Count int64
	// Page and Limit echo the effective 1-based page number and page size.
	Page  uint
	Limit uint
}

// HasNext reports whether recipes exist past this page.
func (p RecipePage) HasNext() bool {
	return uint64(p.Page)*uint64(p.Limit) < uint64(p.Count) //nolint: gosec
}

// HasPrevious reports whether this is not the first page.
func (p RecipePage) HasPrevious() bool {
	return p.Page > 1
}

// RelationKind names a per-user recipe list.
type RelationKind string

const (
	// RelationFavorite marks a recipe as favorited by a user.
	RelationFavorite RelationKind = "favorite"
	// RelationShoppingCart marks a recipe as added to a user's shopping cart.
	RelationShoppingCart RelationKind = "shopping_cart"
)

// CartIngredient is a raw (name, amount, unit) row pulled from one recipe in a
// user's shopping cart. Duplicates across recipes are expected.
type CartIngredient struct {
	Name   string
	Amount float64
	Unit   string
}
