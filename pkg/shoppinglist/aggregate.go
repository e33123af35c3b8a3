// Package shoppinglist merges the ingredient rows of every recipe in a user's
// shopping cart into a deduplicated list.
//
// Rows sharing a name are summed. Units are never converted: a name seen with a
// single unit produces one entry, a name seen with several units produces one
// entry per unit so that no quantity is attributed to the wrong unit. Entries
// keep the order in which their (name, unit) pair first appeared.
package shoppinglist

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidLine is wrapped by errors returned for malformed input lines.
var ErrInvalidLine = errors.New("invalid ingredient line")

// Line is a single (name, amount, unit) row taken from one recipe.
type Line struct {
	Name   string
	Amount float64
	Unit   string
}

// Entry is an aggregated shopping list item.
type Entry struct {
	Name   string
	Amount float64
	Unit   string
}

// LineError reports which input line was rejected and why.
type LineError struct {
	// Index is the zero-based position of the line in the input.
	Index  int
	Line   Line
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%q): %s", e.Index, e.Line.Name, e.Reason)
}

func (e *LineError) Unwrap() error { return ErrInvalidLine }

type key struct {
	name string
	unit string
}

// Aggregate merges lines in a single pass. The returned slice is freshly
// allocated and owned by the caller. Empty input yields an empty, non-nil slice.
func Aggregate(lines []Line) ([]Entry, error) {
	entries := make([]Entry, 0, len(lines))
	index := make(map[key]int, len(lines))

	for i, l := range lines {
		if err := validate(i, l); err != nil {
			return nil, err
		}

		k := key{name: l.Name, unit: l.Unit}
		if pos, ok := index[k]; ok {
			entries[pos].Amount += l.Amount

			continue
		}

		index[k] = len(entries)
		entries = append(entries, Entry(l))
	}

	return entries, nil
}

// Lines turns entries back into lines, one per entry.
func Lines(entries []Entry) []Line {
	out := make([]Line, len(entries))
	for i, e := range entries {
		out[i] = Line(e)
	}

	return out
}

func validate(i int, l Line) error {
	switch {
	case l.Name == "":
		return &LineError{Index: i, Line: l, Reason: "missing name"}
	case l.Unit == "":
		return &LineError{Index: i, Line: l, Reason: "missing unit"}
	case math.IsNaN(l.Amount) || math.IsInf(l.Amount, 0):
		return &LineError{Index: i, Line: l, Reason: "amount is not a finite number"}
	}

	return nil
}
