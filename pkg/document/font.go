package document

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FontResourceError is returned when the font required for rendering cannot be
// read or parsed. No partial document is produced when it occurs.
type FontResourceError struct {
	Path string
	Err  error
}

func (e *FontResourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("font resource unavailable: %v", e.Err)
	}

	return fmt.Sprintf("font resource %q unavailable: %v", e.Path, e.Err)
}

func (e *FontResourceError) Unwrap() error { return e.Err }

// Font is a parsed TrueType font. It is immutable after LoadFont/ParseFont
// returns and can be shared by concurrent renderers.
type Font struct {
	family string
	data   []byte
	ttf    *truetype.Font
}

// LoadFont reads and parses the TrueType font at path. The family name used
// inside produced documents is derived from the font itself.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FontResourceError{Path: path, Err: err}
	}

	f, err := ParseFont(data)
	if err != nil {
		var fre *FontResourceError
		if errors.As(err, &fre) {
			fre.Path = path
		}

		return nil, err
	}

	return f, nil
}

// ParseFont parses TrueType font data. The slice is copied.
func ParseFont(data []byte) (*Font, error) {
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, &FontResourceError{Err: fmt.Errorf("could not parse truetype font: %w", err)}
	}

	family := ttf.Name(truetype.NameIDFontFamily)
	if family == "" {
		family = "body"
	}

	return &Font{
		family: family,
		data:   append([]byte(nil), data...),
		ttf:    ttf,
	}, nil
}

// Family returns the font family name.
func (f *Font) Family() string { return f.family }

// measurer returns a width function for text set at size points. The
// underlying face caches glyphs and must not be shared between goroutines.
func (f *Font) measurer(size float64) func(string) float64 {
	face := truetype.NewFace(f.ttf, &truetype.Options{
		Size:    size,
		DPI:     72, // 1 pixel == 1 point
		Hinting: font.HintingNone,
	})

	return func(s string) float64 {
		return fixedToFloat(font.MeasureString(face, s))
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
