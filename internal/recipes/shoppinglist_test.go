package recipes_test

import (
	"bytes"
	"context"
	"errors"
	"foodgram/internal/recipes"
	"foodgram/pkg/document"
	"foodgram/pkg/domain"
	"foodgram/pkg/metrics"
	"foodgram/pkg/serrors"
	"foodgram/pkg/shoppinglist"
	"math"
	"testing"

	mockstorage "foodgram/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/mock/gomock"
	"golang.org/x/image/font/gofont/goregular"
)

// recordingRenderer keeps the entries it was asked to render.
type recordingRenderer struct {
	entries []shoppinglist.Entry
	err     error
}

func (r *recordingRenderer) Render(_ context.Context, entries []shoppinglist.Entry) (*document.Document, error) {
	r.entries = entries
	if r.err != nil {
		return nil, r.err
	}

	return &document.Document{
		ContentType: document.ContentType,
		Filename:    document.DefaultFilename,
		Pages:       1,
		Body:        []byte("%PDF-"),
	}, nil
}

func TestService_ShoppingList_Aggregates(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	r := &recordingRenderer{}
	s := recipes.New(st, r, nil, recipes.Options{})
	user := domain.UserID(uuid.New())

	st.EXPECT().ShoppingCartIngredients(gomock.Any(), user).Return([]domain.CartIngredient{
		{Name: "flour", Amount: 200, Unit: "g"},
		{Name: "egg", Amount: 2, Unit: "pcs"},
		{Name: "flour", Amount: 100, Unit: "g"},
	}, nil)

	doc, err := s.ShoppingList(context.Background(), user)
	require.NoError(t, err)
	require.Equal(t, "shopping_cart.pdf", doc.Filename)
	require.Equal(t, []shoppinglist.Entry{
		{Name: "flour", Amount: 300, Unit: "g"},
		{Name: "egg", Amount: 2, Unit: "pcs"},
	}, r.entries)
}

func TestService_ShoppingList_EmptyCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	f, err := document.ParseFont(goregular.TTF)
	require.NoError(t, err)
	s := recipes.New(st, document.NewRenderer(f, document.Options{}), nil, recipes.Options{})

	st.EXPECT().ShoppingCartIngredients(gomock.Any(), gomock.Any()).Return(nil, nil)

	doc, err := s.ShoppingList(context.Background(), domain.UserID(uuid.New()))
	require.NoError(t, err)
	require.Equal(t, 1, doc.Pages)
	require.True(t, bytes.HasPrefix(doc.Body, []byte("%PDF-")))
}

func TestService_ShoppingList_Errors(t *testing.T) {
	user := domain.UserID(uuid.New())

	t.Run("corrupted row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mockstorage.NewMockStorage(ctrl)
		s := recipes.New(st, &recordingRenderer{}, nil, recipes.Options{})

		st.EXPECT().ShoppingCartIngredients(gomock.Any(), user).Return([]domain.CartIngredient{
			{Name: "salt", Amount: math.NaN(), Unit: "g"},
		}, nil)

		_, err := s.ShoppingList(context.Background(), user)
		require.ErrorIs(t, err, serrors.ErrInternal)
		require.ErrorIs(t, err, shoppinglist.ErrInvalidLine)
	})

	t.Run("missing font", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mockstorage.NewMockStorage(ctrl)
		s := recipes.New(st, document.NewRenderer(nil, document.Options{}), nil, recipes.Options{})

		st.EXPECT().ShoppingCartIngredients(gomock.Any(), user).Return(nil, nil)

		_, err := s.ShoppingList(context.Background(), user)
		require.ErrorIs(t, err, serrors.ErrUnavailable)
		var fontErr *document.FontResourceError
		require.ErrorAs(t, err, &fontErr)
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mockstorage.NewMockStorage(ctrl)
		s := recipes.New(st, &recordingRenderer{}, nil, recipes.Options{})

		st.EXPECT().ShoppingCartIngredients(gomock.Any(), user).Return(nil, errors.New("boom"))

		_, err := s.ShoppingList(context.Background(), user)
		require.Error(t, err)
		require.Equal(t, serrors.ErrInternal, serrors.KindOf(err))
	})
}

func TestService_ShoppingList_Metrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := metrics.NewShoppingList(mp.Meter("test"))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := recipes.New(st, &recordingRenderer{}, m, recipes.Options{})

	st.EXPECT().ShoppingCartIngredients(gomock.Any(), gomock.Any()).Return([]domain.CartIngredient{
		{Name: "egg", Amount: 1, Unit: "pcs"},
	}, nil)

	_, err = s.ShoppingList(context.Background(), domain.UserID(uuid.New()))
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	for _, mt := range rm.ScopeMetrics[0].Metrics {
		if mt.Name != "shopping_list.downloads" {
			continue
		}
		sum, ok := mt.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		require.Len(t, sum.DataPoints, 1)
		require.EqualValues(t, 1, sum.DataPoints[0].Value)
		outcome, _ := sum.DataPoints[0].Attributes.Value("outcome")
		require.Equal(t, "success", outcome.AsString())

		return
	}
	t.Fatal("downloads counter not exported")
}
