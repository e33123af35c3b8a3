package catalog

import (
	"fmt"
	"foodgram/pkg/domain"
	"io"

	"github.com/go-faster/jx"
)

// decodeBufferSize is the read buffer of the streaming decoder.
const decodeBufferSize = 32 * 1024

// handler receives decoded catalog rows one at a time.
type handler struct {
	ingredient func(domain.Ingredient) error
	tag        func(domain.Tag) error
}

// decode streams a catalog document. Two shapes are accepted: an object
// {"ingredients": [...], "tags": [...]} and a bare array of ingredients.
// Unknown keys are skipped.
func decode(r io.Reader, h handler) error {
	d := jx.Decode(r, decodeBufferSize)

	switch d.Next() {
	case jx.Array:
		return decodeIngredients(d, h)
	case jx.Object:
		return d.Obj(func(d *jx.Decoder, key string) error {
			switch key {
			case "ingredients":
				return decodeIngredients(d, h)
			case "tags":
				return decodeTags(d, h)
			default:
				return d.Skip()
			}
		})
	default:
		return fmt.Errorf("catalog must be a JSON object or array, got %s", d.Next())
	}
}

func decodeIngredients(d *jx.Decoder, h handler) error {
	return d.Arr(func(d *jx.Decoder) error {
		var ingredient domain.Ingredient
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			var err error
			switch key {
			case "name":
				ingredient.Name, err = d.Str()
			case "measurement_unit":
				ingredient.MeasurementUnit, err = d.Str()
			default:
				err = d.Skip()
			}

			return err
		}); err != nil {
			return fmt.Errorf("could not decode ingredient: %w", err)
		}

		return h.ingredient(ingredient)
	})
}

func decodeTags(d *jx.Decoder, h handler) error {
	return d.Arr(func(d *jx.Decoder) error {
		var tag domain.Tag
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			var err error
			switch key {
			case "name":
				tag.Name, err = d.Str()
			case "color":
				tag.Color, err = d.Str()
			case "slug":
				tag.Slug, err = d.Str()
			default:
				err = d.Skip()
			}

			return err
		}); err != nil {
			return fmt.Errorf("could not decode tag: %w", err)
		}

		return h.tag(tag)
	})
}
