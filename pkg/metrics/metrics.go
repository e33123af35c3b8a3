// Package metrics holds shared metric definitions. Instruments are created
// from an OpenTelemetry meter so they are exported through whatever reader the
// meter provider was configured with (prometheus in the API server).
package metrics

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// ShoppingList groups the instruments recorded when a shopping list document
// is produced.
type ShoppingList struct {
	// Downloads counts produced documents, labelled by outcome.
	Downloads metric.Int64Counter
	// Entries records how many aggregated entries a document lists.
	Entries metric.Int64Histogram
	// RenderDuration records the time spent aggregating and rendering, in seconds.
	RenderDuration metric.Float64Histogram
}

// NewShoppingList creates the shopping list instruments on the given meter. A
// nil meter yields no-op instruments.
func NewShoppingList(meter metric.Meter) (*ShoppingList, error) {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("")
	}

	downloads, err := meter.Int64Counter("shopping_list.downloads",
		metric.WithDescription("Number of shopping list documents requested"))
	if err != nil {
		return nil, fmt.Errorf("could not create downloads counter: %w", err)
	}

	entries, err := meter.Int64Histogram("shopping_list.entries",
		metric.WithDescription("Number of aggregated entries per shopping list"),
		metric.WithExplicitBucketBoundaries(0, 5, 10, 25, 50, 100, 250, 500, 1000))
	if err != nil {
		return nil, fmt.Errorf("could not create entries histogram: %w", err)
	}

	duration, err := meter.Float64Histogram("shopping_list.render.duration",
		metric.WithDescription("Time spent building a shopping list document"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create render duration histogram: %w", err)
	}

	return &ShoppingList{
		Downloads:      downloads,
		Entries:        entries,
		RenderDuration: duration,
	}, nil
}
