package recipes

import (
	"context"
	"errors"
	"fmt"
	"foodgram/pkg/document"
	"foodgram/pkg/domain"
	"foodgram/pkg/logger"
	"foodgram/pkg/serrors"
	"foodgram/pkg/shoppinglist"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Renderer turns aggregated shopping list entries into a document.
type Renderer interface {
	Render(ctx context.Context, entries []shoppinglist.Entry) (*document.Document, error)
}

// ShoppingList aggregates the ingredients of every recipe in the user's cart
// and renders them. An empty cart yields a document with the title only.
func (s *service) ShoppingList(ctx context.Context, userID domain.UserID) (*document.Document, error) {
	start := time.Now()

	doc, entries, err := s.shoppingList(ctx, userID)

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	s.metrics.Downloads.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	s.metrics.RenderDuration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("outcome", outcome)))
	if err != nil {
		return nil, err
	}
	s.metrics.Entries.Record(ctx, int64(entries))

	logger.Debug(ctx, "shopping list rendered",
		zap.Stringer("userID", userID),
		zap.Int("entries", entries),
		zap.Int("pages", doc.Pages),
		zap.Duration("took", time.Since(start)))

	return doc, nil
}

func (s *service) shoppingList(ctx context.Context, userID domain.UserID) (*document.Document, int, error) {
	items, err := s.storage.ShoppingCartIngredients(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("could not get shopping cart ingredients: %w", err)
	}

	lines := make([]shoppinglist.Line, 0, len(items))
	for _, i := range items {
		lines = append(lines, shoppinglist.Line{Name: i.Name, Amount: i.Amount, Unit: i.Unit})
	}

	// stored rows are validated on write, a bad one means corrupted data
	entries, err := shoppinglist.Aggregate(lines)
	if err != nil {
		return nil, 0, serrors.Wrap(serrors.ErrInternal, err, "could not aggregate shopping cart")
	}

	doc, err := s.renderer.Render(ctx, entries)
	var fontErr *document.FontResourceError
	switch {
	case errors.As(err, &fontErr):
		return nil, 0, serrors.Wrap(serrors.ErrUnavailable, err, "shopping list rendering is unavailable")
	case err != nil:
		return nil, 0, fmt.Errorf("could not render shopping list: %w", err)
	}

	return doc, len(entries), nil
}
