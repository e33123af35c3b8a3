package document

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"foodgram/pkg/shoppinglist"

	"github.com/go-pdf/fpdf"
)

const (
	// ContentType is the media type of rendered documents.
	ContentType = "application/pdf"
	// DefaultFilename is the attachment name of rendered shopping lists.
	DefaultFilename = "shopping_cart.pdf"
	// DefaultTitle is printed at the top of the first page.
	DefaultTitle = "Shopping list"
)

// Geometry describes the fixed page coordinate system, in points.
type Geometry struct {
	PageWidth  float64
	PageHeight float64

	// TitleX and TitleY position the title baseline on the first page.
	TitleX float64
	TitleY float64

	// BodyX is the left margin of body lines.
	BodyX float64
	// BodyTop is the baseline of the first body line on the first page.
	BodyTop float64
	// ContinuationTop is the baseline of the first line on every following page.
	ContinuationTop float64
	// LineHeight is subtracted from the baseline after every line.
	LineHeight float64
	// BottomMargin is the lowest baseline a line may be drawn at.
	BottomMargin float64
	// RightMargin bounds the printable width together with BodyX.
	RightMargin float64
	// WrapIndent shifts wrapped continuation lines to the right.
	WrapIndent float64

	FontSize float64
}

// DefaultGeometry returns an A4 portrait layout.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:       595.28,
		PageHeight:      841.89,
		TitleX:          100,
		TitleY:          750,
		BodyX:           80,
		BodyTop:         700,
		ContinuationTop: 750,
		LineHeight:      25,
		BottomMargin:    40,
		RightMargin:     40,
		WrapIndent:      20,
		FontSize:        14,
	}
}

// Line is a piece of text drawn with its baseline starting at (X, Y).
type Line struct {
	X, Y float64
	Text string
}

// Page is a laid out page. The first page starts with the title line.
type Page struct {
	Number int
	Lines  []Line
}

// Document is a rendered shopping list ready to be sent to a client.
type Document struct {
	ContentType string
	Filename    string
	Pages       int
	Body        []byte
}

// ContentDisposition returns the attachment header value for the document.
func (d *Document) ContentDisposition() string {
	return fmt.Sprintf("attachment; filename='%s'", d.Filename)
}

// Options configure a Renderer. Zero values fall back to the defaults.
type Options struct {
	Geometry Geometry
	Title    string
	Filename string
	// Author and Creator are written to the document metadata when set.
	Author  string
	Creator string
}

// Renderer lays out and serializes shopping lists. It holds only read-only
// state and is safe for concurrent use.
type Renderer struct {
	font *Font
	opts Options
}

// NewRenderer creates a renderer drawing with font. A nil font is accepted;
// Render then fails with a FontResourceError.
func NewRenderer(font *Font, opts Options) *Renderer {
	if opts.Geometry == (Geometry{}) {
		opts.Geometry = DefaultGeometry()
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Filename == "" {
		opts.Filename = DefaultFilename
	}

	return &Renderer{font: font, opts: opts}
}

// FormatEntry formats the 1-indexed entry as "{index}. {name} – {amount} {unit}".
func FormatEntry(index int, e shoppinglist.Entry) string {
	return fmt.Sprintf("%d. %s – %s %s", index, e.Name, FormatAmount(e.Amount), e.Unit)
}

// FormatAmount prints the shortest decimal representation of v.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Layout places the title and one line per entry on as many pages as needed.
// A line that does not fit above the bottom margin starts a new page.
func (r *Renderer) Layout(entries []shoppinglist.Entry) ([]Page, error) {
	if r.font == nil {
		return nil, &FontResourceError{Err: fmt.Errorf("no font loaded")}
	}

	g := r.opts.Geometry
	measure := r.font.measurer(g.FontSize)
	width := g.PageWidth - g.RightMargin - g.BodyX

	pages := []Page{{
		Number: 1,
		Lines:  []Line{{X: g.TitleX, Y: g.TitleY, Text: r.opts.Title}},
	}}
	y := g.BodyTop

	place := func(x float64, text string) {
		if y < g.BottomMargin {
			pages = append(pages, Page{Number: len(pages) + 1})
			y = g.ContinuationTop
		}
		last := &pages[len(pages)-1]
		last.Lines = append(last.Lines, Line{X: x, Y: y, Text: text})
		y -= g.LineHeight
	}

	for i, e := range entries {
		parts := wrap(FormatEntry(i+1, e), width, width-g.WrapIndent, measure)
		place(g.BodyX, parts[0])
		for _, p := range parts[1:] {
			place(g.BodyX+g.WrapIndent, p)
		}
	}

	return pages, nil
}

// Render lays out entries and serializes them as a PDF document.
func (r *Renderer) Render(ctx context.Context, entries []shoppinglist.Entry) (*Document, error) {
	pages, err := r.Layout(entries)
	if err != nil {
		return nil, err
	}

	g := r.opts.Geometry
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(r.opts.Title, true)
	if r.opts.Author != "" {
		pdf.SetAuthor(r.opts.Author, true)
	}
	if r.opts.Creator != "" {
		pdf.SetCreator(r.opts.Creator, true)
	}
	pdf.SetCreationDate(time.Now().UTC())

	pdf.AddUTF8FontFromBytes(r.font.Family(), "", r.font.data)
	pdf.SetFont(r.font.Family(), "", g.FontSize)
	if pdf.Err() {
		return nil, &FontResourceError{Err: fmt.Errorf("could not embed font: %w", pdf.Error())}
	}

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("rendering aborted: %w", err)
		}

		pdf.AddPage()
		for _, l := range page.Lines {
			// fpdf measures y from the top edge
			pdf.Text(l.X, g.PageHeight-l.Y, l.Text)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("could not write pdf: %w", err)
	}

	return &Document{
		ContentType: ContentType,
		Filename:    r.opts.Filename,
		Pages:       len(pages),
		Body:        buf.Bytes(),
	}, nil
}

// wrap splits text into lines no wider than first (for the first line) and
// rest (for the following ones). Words longer than a line are broken by rune.
func wrap(text string, first, rest float64, measure func(string) float64) []string {
	if measure(text) <= first {
		return []string{text}
	}

	var (
		out   []string
		cur   string
		limit = first
	)
	flush := func() {
		out = append(out, cur)
		cur = ""
		limit = rest
	}

	for _, word := range strings.Fields(text) {
		candidate := word
		if cur != "" {
			candidate = cur + " " + word
		}
		if measure(candidate) <= limit {
			cur = candidate

			continue
		}
		if cur != "" {
			flush()
		}
		for measure(word) > limit && utf8.RuneCountInString(word) > 1 {
			n := fit(word, limit, measure)
			cur = word[:n]
			word = word[n:]
			flush()
		}
		cur = word
	}
	if cur != "" {
		out = append(out, cur)
	}

	return out
}

// fit returns the byte length of the longest rune prefix of word that fits
// into limit; at least one rune is always taken.
func fit(word string, limit float64, measure func(string) float64) int {
	n := 0
	for i, rn := range word {
		next := i + utf8.RuneLen(rn)
		if n > 0 && measure(word[:next]) > limit {
			break
		}
		n = next
	}

	return n
}
