package catalog_test

import (
	"foodgram/internal/catalog"
	"foodgram/pkg/domain"
	"testing"
)

func TestNormalizeIngredient(t *testing.T) {
	cases := []struct {
		name string
		in   domain.Ingredient
		out  domain.Ingredient
		ok   bool
	}{
		{
			name: "trim and lowercase name",
			in:   domain.Ingredient{Name: "  Wheat Flour ", MeasurementUnit: " g "},
			out:  domain.Ingredient{Name: "wheat flour", MeasurementUnit: "g"},
			ok:   true,
		},
		{
			name: "keep unit case",
			in:   domain.Ingredient{Name: "Basil", MeasurementUnit: "Bunch"},
			out:  domain.Ingredient{Name: "basil", MeasurementUnit: "Bunch"},
			ok:   true,
		},
		{
			name: "non ascii name",
			in:   domain.Ingredient{Name: "Сахар", MeasurementUnit: "г"},
			out:  domain.Ingredient{Name: "сахар", MeasurementUnit: "г"},
			ok:   true,
		},
		{
			name: "blank name",
			in:   domain.Ingredient{Name: "   ", MeasurementUnit: "g"},
			ok:   false,
		},
		{
			name: "missing unit",
			in:   domain.Ingredient{Name: "salt"},
			ok:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := catalog.NormalizeIngredient(tc.in)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}

				return
			}
			if got != tc.out {
				t.Fatalf("got %+v, want %+v", got, tc.out)
			}
		})
	}
}

func TestNormalizeTag(t *testing.T) {
	cases := []struct {
		name string
		in   domain.Tag
		out  domain.Tag
		ok   bool
	}{
		{
			name: "normalize slug and color",
			in:   domain.Tag{Name: " Breakfast ", Color: "#e26c2d", Slug: "Breakfast"},
			out:  domain.Tag{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
			ok:   true,
		},
		{
			name: "short color",
			in:   domain.Tag{Name: "Lunch", Color: "#fff", Slug: "lunch"},
			ok:   false,
		},
		{
			name: "slug with spaces",
			in:   domain.Tag{Name: "Late dinner", Color: "#8775D2", Slug: "late dinner"},
			ok:   false,
		},
		{
			name: "missing name",
			in:   domain.Tag{Color: "#8775D2", Slug: "dinner"},
			ok:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := catalog.NormalizeTag(tc.in)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}

				return
			}
			if got != tc.out {
				t.Fatalf("got %+v, want %+v", got, tc.out)
			}
		})
	}
}
