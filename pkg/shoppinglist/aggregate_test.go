package shoppinglist_test

import (
	"fmt"
	"foodgram/pkg/shoppinglist"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregate_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		in   []shoppinglist.Line
		want []shoppinglist.Entry
	}{
		{
			name: "duplicates are summed in first-seen order",
			in: []shoppinglist.Line{
				{Name: "flour", Amount: 200, Unit: "g"},
				{Name: "egg", Amount: 2, Unit: "pcs"},
				{Name: "flour", Amount: 100, Unit: "g"},
			},
			want: []shoppinglist.Entry{
				{Name: "flour", Amount: 300, Unit: "g"},
				{Name: "egg", Amount: 2, Unit: "pcs"},
			},
		},
		{
			name: "empty input",
			in:   nil,
			want: []shoppinglist.Entry{},
		},
		{
			name: "single line",
			in:   []shoppinglist.Line{{Name: "sugar", Amount: 1, Unit: "kg"}},
			want: []shoppinglist.Entry{{Name: "sugar", Amount: 1, Unit: "kg"}},
		},
		{
			name: "fractional and non-positive amounts are kept as-is",
			in: []shoppinglist.Line{
				{Name: "milk", Amount: 0.5, Unit: "l"},
				{Name: "milk", Amount: -0.25, Unit: "l"},
				{Name: "salt", Amount: 0, Unit: "g"},
			},
			want: []shoppinglist.Entry{
				{Name: "milk", Amount: 0.25, Unit: "l"},
				{Name: "salt", Amount: 0, Unit: "g"},
			},
		},
		{
			name: "different units for one name are kept apart",
			in: []shoppinglist.Line{
				{Name: "salt", Amount: 5, Unit: "g"},
				{Name: "pepper", Amount: 1, Unit: "g"},
				{Name: "salt", Amount: 1, Unit: "pinch"},
				{Name: "salt", Amount: 10, Unit: "g"},
			},
			want: []shoppinglist.Entry{
				{Name: "salt", Amount: 15, Unit: "g"},
				{Name: "pepper", Amount: 1, Unit: "g"},
				{Name: "salt", Amount: 1, Unit: "pinch"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shoppinglist.Aggregate(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAggregate_InvalidLines(t *testing.T) {
	tests := []struct {
		name  string
		in    []shoppinglist.Line
		index int
	}{
		{
			name:  "missing unit",
			in:    []shoppinglist.Line{{Name: "egg", Amount: 1, Unit: "pcs"}, {Name: "flour", Amount: 1}},
			index: 1,
		},
		{
			name:  "missing name",
			in:    []shoppinglist.Line{{Amount: 1, Unit: "g"}},
			index: 0,
		},
		{
			name:  "nan amount",
			in:    []shoppinglist.Line{{Name: "egg", Amount: math.NaN(), Unit: "pcs"}},
			index: 0,
		},
		{
			name:  "infinite amount",
			in:    []shoppinglist.Line{{Name: "egg", Amount: math.Inf(1), Unit: "pcs"}},
			index: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shoppinglist.Aggregate(tt.in)
			require.Nil(t, got)
			require.ErrorIs(t, err, shoppinglist.ErrInvalidLine)

			var lineErr *shoppinglist.LineError
			require.ErrorAs(t, err, &lineErr)
			require.Equal(t, tt.index, lineErr.Index)
		})
	}
}

// randomLines produces integer amounts so sums compare exactly.
func randomLines(r *rand.Rand, n int) []shoppinglist.Line {
	units := []string{"g", "kg", "pcs", "ml"}
	out := make([]shoppinglist.Line, n)
	for i := range out {
		name := fmt.Sprintf("ingredient-%d", r.IntN(n/2+1))
		out[i] = shoppinglist.Line{
			Name:   name,
			Amount: float64(r.IntN(32) + 1),
			// one unit per name, derived from the name
			Unit: units[len(name)%len(units)],
		}
	}

	return out
}

func TestAggregate_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for round := range 50 {
		lines := randomLines(r, r.IntN(200))

		got, err := shoppinglist.Aggregate(lines)
		require.NoError(t, err, "round %d", round)

		// conservation per name and no name lost or invented
		inSums := map[string]float64{}
		var firstSeen []string
		for _, l := range lines {
			if _, ok := inSums[l.Name]; !ok {
				firstSeen = append(firstSeen, l.Name)
			}
			inSums[l.Name] += l.Amount
		}
		outSums := map[string]float64{}
		order := make([]string, 0, len(got))
		for _, e := range got {
			outSums[e.Name] += e.Amount
			order = append(order, e.Name)
		}
		require.Equal(t, inSums, outSums, "round %d", round)

		// first-seen order
		if len(firstSeen) == 0 {
			require.Empty(t, order)
		} else {
			require.Equal(t, firstSeen, order, "round %d", round)
		}

		// idempotence
		again, err := shoppinglist.Aggregate(shoppinglist.Lines(got))
		require.NoError(t, err)
		require.Equal(t, got, again, "round %d", round)
	}
}

func TestAggregate_DoesNotShareState(t *testing.T) {
	in := []shoppinglist.Line{{Name: "flour", Amount: 100, Unit: "g"}}

	first, err := shoppinglist.Aggregate(in)
	require.NoError(t, err)
	second, err := shoppinglist.Aggregate(in)
	require.NoError(t, err)

	first[0].Amount = 1
	require.InDelta(t, 100, second[0].Amount, 0)
}
