package domain

// TagID identifies a tag.
type TagID int64

// Tag is an admin-managed label (e.g. breakfast, dinner) attached to recipes.
type Tag struct {
	ID TagID `json:"id"`
	// Name is the human-readable tag name.
	Name string `json:"name"`
	// Color is a hex color code such as "#E26C2D".
	Color string `json:"color"`
	// Slug is the unique URL-safe identifier used for filtering.
	Slug string `json:"slug"`
}

// IngredientID identifies a catalog ingredient.
type IngredientID int64

// Ingredient is a catalog entry. The pair (Name, MeasurementUnit) is unique.
type Ingredient struct {
	ID              IngredientID `json:"id"`
	Name            string       `json:"name"`
	MeasurementUnit string       `json:"measurementUnit"`
}
