package recipes

import (
	"encoding/base64"
	"fmt"
	"foodgram/pkg/domain"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxUsernameLength = 150
	maxNameLength     = 150
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`) //nolint: gochecknoglobals

// IngredientAmount references a catalog ingredient from a recipe.
type IngredientAmount struct {
	ID     domain.IngredientID
	Amount int
}

// RecipeInput is the client supplied content of a recipe. Update replaces
// every field, so the same rules apply to both Create and Update.
type RecipeInput struct {
	Name        string
	Image       string
	Text        string
	CookingTime int
	Tags        []domain.TagID
	Ingredients []IngredientAmount
}

// fieldErrors collects the first problem found per field.
type fieldErrors map[string]string

func (f fieldErrors) add(field, format string, args ...any) {
	if _, ok := f[field]; !ok {
		f[field] = fmt.Sprintf(format, args...)
	}
}

// validate checks everything that does not need the catalog.
func (in RecipeInput) validate() fieldErrors {
	errs := fieldErrors{}

	switch name := strings.TrimSpace(in.Name); {
	case name == "":
		errs.add("name", "must not be empty")
	case utf8.RuneCountInString(name) > domain.MaxRecipeNameLength:
		errs.add("name", "must be at most %d characters", domain.MaxRecipeNameLength)
	}

	if strings.TrimSpace(in.Text) == "" {
		errs.add("text", "must not be empty")
	}

	if in.CookingTime < domain.MinCookingTime || in.CookingTime > domain.MaxCookingTime {
		errs.add("cooking_time", "must be between %d and %d minutes", domain.MinCookingTime, domain.MaxCookingTime)
	}

	if err := validateImage(in.Image); err != nil {
		errs.add("image", "%s", err.Error())
	}

	if len(in.Tags) == 0 {
		errs.add("tags", "at least one tag is required")
	}
	seenTags := make(map[domain.TagID]struct{}, len(in.Tags))
	for _, id := range in.Tags {
		if _, ok := seenTags[id]; ok {
			errs.add("tags", "tag %d is listed more than once", id)
		}
		seenTags[id] = struct{}{}
	}

	if len(in.Ingredients) == 0 {
		errs.add("ingredients", "at least one ingredient is required")
	}
	seenIngredients := make(map[domain.IngredientID]struct{}, len(in.Ingredients))
	for _, i := range in.Ingredients {
		if _, ok := seenIngredients[i.ID]; ok {
			errs.add("ingredients", "ingredient %d is listed more than once", i.ID)
		}
		seenIngredients[i.ID] = struct{}{}

		if i.Amount < domain.MinIngredientAmount || i.Amount > domain.MaxIngredientAmount {
			errs.add("ingredients", "amount of ingredient %d must be between %d and %d",
				i.ID, domain.MinIngredientAmount, domain.MaxIngredientAmount)
		}
	}

	return errs
}

// validateImage accepts base64 data URLs of any image media type.
func validateImage(image string) error {
	header, payload, ok := strings.Cut(image, ",")
	if !ok || !strings.HasPrefix(header, "data:image/") || !strings.HasSuffix(header, ";base64") {
		return fmt.Errorf("must be a base64 encoded data:image URL")
	}
	if payload == "" {
		return fmt.Errorf("image data is empty")
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return fmt.Errorf("image data is not valid base64")
	}

	return nil
}

func validateUser(user domain.User) fieldErrors {
	errs := fieldErrors{}

	if addr, err := mail.ParseAddress(user.Email); err != nil || addr.Address != user.Email {
		errs.add("email", "must be a valid email address")
	}

	switch {
	case user.Username == "":
		errs.add("username", "must not be empty")
	case len(user.Username) > maxUsernameLength:
		errs.add("username", "must be at most %d characters", maxUsernameLength)
	case !usernamePattern.MatchString(user.Username):
		errs.add("username", "may contain only letters, digits and @.+-_")
	case user.Username == "me":
		errs.add("username", "is reserved")
	}

	if utf8.RuneCountInString(user.FirstName) > maxNameLength {
		errs.add("first_name", "must be at most %d characters", maxNameLength)
	}
	if utf8.RuneCountInString(user.LastName) > maxNameLength {
		errs.add("last_name", "must be at most %d characters", maxNameLength)
	}

	return errs
}
