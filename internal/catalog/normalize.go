package catalog

import (
	"errors"
	"foodgram/pkg/domain"
	"regexp"
	"strings"
)

var (
	colorPattern = regexp.MustCompile(`^#[0-9A-F]{6}$`)  //nolint: gochecknoglobals
	slugPattern  = regexp.MustCompile(`^[-a-z0-9_]+$`) //nolint: gochecknoglobals
)

var errEmpty = errors.New("empty field")

// NormalizeIngredient trims both fields and lower-cases the name so that
// "Flour " and "flour" end up as the same catalog entry.
func NormalizeIngredient(i domain.Ingredient) (domain.Ingredient, error) {
	i.Name = strings.ToLower(strings.TrimSpace(i.Name))
	i.MeasurementUnit = strings.TrimSpace(i.MeasurementUnit)
	if i.Name == "" || i.MeasurementUnit == "" {
		return i, errEmpty
	}

	return i, nil
}

// NormalizeTag trims the tag, lower-cases the slug and upper-cases the color.
func NormalizeTag(t domain.Tag) (domain.Tag, error) {
	t.Name = strings.TrimSpace(t.Name)
	t.Slug = strings.ToLower(strings.TrimSpace(t.Slug))
	t.Color = strings.ToUpper(strings.TrimSpace(t.Color))
	if t.Name == "" || t.Slug == "" || t.Color == "" {
		return t, errEmpty
	}
	if !colorPattern.MatchString(t.Color) {
		return t, errors.New("color must be a #RRGGBB hex code")
	}
	if !slugPattern.MatchString(t.Slug) {
		return t, errors.New("slug may contain only letters, digits, - and _")
	}

	return t, nil
}
