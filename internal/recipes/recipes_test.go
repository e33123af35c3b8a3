package recipes_test

import (
	"context"
	"errors"
	"foodgram/internal/recipes"
	"foodgram/pkg/domain"
	"foodgram/pkg/serrors"
	"foodgram/pkg/storage"
	"strings"
	"testing"

	mockstorage "foodgram/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const image = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func newTestService(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, recipes.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := recipes.New(st, nil, nil, recipes.Options{PageSize: 6, MaxPageSize: 50})

	return ctrl, st, s
}

// expectWithTx wires Storage.WithTx to run the callback against a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func validInput() recipes.RecipeInput {
	return recipes.RecipeInput{
		Name:        "Pancakes",
		Image:       image,
		Text:        "Whisk and fry.",
		CookingTime: 20,
		Tags:        []domain.TagID{1},
		Ingredients: []recipes.IngredientAmount{{ID: 10, Amount: 2}, {ID: 11, Amount: 30}},
	}
}

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()

	require.ErrorIs(t, err, serrors.ErrBadRequest)
	var se *serrors.Error
	require.ErrorAs(t, err, &se)
	require.Contains(t, se.Fields(), field)
}

func TestService_Create_Validation(t *testing.T) {
	author := domain.UserID(uuid.New())

	cases := map[string]struct {
		mutate func(in *recipes.RecipeInput)
		field  string
	}{
		"empty name":            {func(in *recipes.RecipeInput) { in.Name = "  " }, "name"},
		"long name":             {func(in *recipes.RecipeInput) { in.Name = strings.Repeat("a", 201) }, "name"},
		"empty text":            {func(in *recipes.RecipeInput) { in.Text = "" }, "text"},
		"cooking time zero":     {func(in *recipes.RecipeInput) { in.CookingTime = 0 }, "cooking_time"},
		"cooking time too long": {func(in *recipes.RecipeInput) { in.CookingTime = 301 }, "cooking_time"},
		"no tags":               {func(in *recipes.RecipeInput) { in.Tags = nil }, "tags"},
		"duplicate tags":        {func(in *recipes.RecipeInput) { in.Tags = []domain.TagID{1, 1} }, "tags"},
		"no ingredients":        {func(in *recipes.RecipeInput) { in.Ingredients = nil }, "ingredients"},
		"duplicate ingredients": {func(in *recipes.RecipeInput) {
			in.Ingredients = []recipes.IngredientAmount{{ID: 10, Amount: 1}, {ID: 10, Amount: 2}}
		}, "ingredients"},
		"amount too large": {func(in *recipes.RecipeInput) {
			in.Ingredients = []recipes.IngredientAmount{{ID: 10, Amount: 33}}
		}, "ingredients"},
		"image not a data url": {func(in *recipes.RecipeInput) { in.Image = "https://example.com/a.png" }, "image"},
		"image not base64":     {func(in *recipes.RecipeInput) { in.Image = "data:image/png;base64,@@@" }, "image"},
		"image not an image":   {func(in *recipes.RecipeInput) { in.Image = "data:text/plain;base64,aGk=" }, "image"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, s := newTestService(t)

			in := validInput()
			tc.mutate(&in)

			_, err := s.Create(context.Background(), author, in)
			requireFieldError(t, err, tc.field)
		})
	}
}

func TestService_Create_UnknownReferences(t *testing.T) {
	ctrl, st, s := newTestService(t)
	author := domain.UserID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().TagsByIDs(gomock.Any(), []domain.TagID{1}).Return(nil, nil)
		tx.EXPECT().IngredientsByIDs(gomock.Any(), []domain.IngredientID{10, 11}).
			Return([]domain.Ingredient{{ID: 10, Name: "flour", MeasurementUnit: "g"}}, nil)
	})

	_, err := s.Create(context.Background(), author, validInput())
	requireFieldError(t, err, "tags")
	requireFieldError(t, err, "ingredients")
}

func TestService_Create_Stores(t *testing.T) {
	ctrl, st, s := newTestService(t)
	author := domain.UserID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().TagsByIDs(gomock.Any(), gomock.Any()).
			Return([]domain.Tag{{ID: 1, Name: "breakfast", Slug: "breakfast"}}, nil)
		tx.EXPECT().IngredientsByIDs(gomock.Any(), gomock.Any()).Return([]domain.Ingredient{
			{ID: 11, Name: "milk", MeasurementUnit: "ml"},
			{ID: 10, Name: "flour", MeasurementUnit: "g"},
		}, nil)
		tx.EXPECT().StoreRecipe(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r domain.Recipe) (*domain.Recipe, error) {
				require.Equal(t, author, r.Author.ID)
				require.Equal(t, "Pancakes", r.Name)
				require.Len(t, r.Tags, 1)
				require.Equal(t, []domain.RecipeIngredient{
					{ID: 10, Name: "flour", MeasurementUnit: "g", Amount: 2},
					{ID: 11, Name: "milk", MeasurementUnit: "ml", Amount: 30},
				}, r.Ingredients)
				r.ID = 7

				return &r, nil
			})
	})

	created, err := s.Create(context.Background(), author, validInput())
	require.NoError(t, err)
	require.Equal(t, domain.RecipeID(7), created.ID)
}

func TestService_Update_OnlyAuthor(t *testing.T) {
	ctrl, st, s := newTestService(t)
	author := domain.UserID(uuid.New())
	stranger := domain.UserID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RecipeByID(gomock.Any(), stranger, domain.RecipeID(3)).
			Return(&domain.Recipe{ID: 3, Author: domain.User{ID: author}}, nil)
	})

	_, err := s.Update(context.Background(), stranger, 3, validInput())
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestService_Delete(t *testing.T) {
	author := domain.UserID(uuid.New())

	t.Run("missing recipe", func(t *testing.T) {
		ctrl, st, s := newTestService(t)
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().RecipeByID(gomock.Any(), author, domain.RecipeID(3)).Return(nil, nil)
		})

		err := s.Delete(context.Background(), author, 3)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("author deletes", func(t *testing.T) {
		ctrl, st, s := newTestService(t)
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().RecipeByID(gomock.Any(), author, domain.RecipeID(3)).
				Return(&domain.Recipe{ID: 3, Author: domain.User{ID: author}}, nil)
			tx.EXPECT().DeleteRecipe(gomock.Any(), domain.RecipeID(3)).Return(true, nil)
		})

		require.NoError(t, s.Delete(context.Background(), author, 3))
	})
}

func TestService_Recipes_Paging(t *testing.T) {
	_, st, s := newTestService(t)
	viewer := domain.UserID(uuid.New())

	st.EXPECT().Recipes(gomock.Any(), storage.RecipeFilter{Viewer: viewer, Limit: 6, Offset: 12}).
		Return(domain.RecipePage{Count: 13}, nil)

	page, err := s.Recipes(context.Background(), recipes.Query{Viewer: viewer, Page: 3})
	require.NoError(t, err)
	require.EqualValues(t, 13, page.Count)
	require.EqualValues(t, 3, page.Page)
	require.EqualValues(t, 6, page.Limit)
	require.False(t, page.HasNext())
	require.True(t, page.HasPrevious())

	_, err = s.Recipes(context.Background(), recipes.Query{Limit: 51})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestService_Relations(t *testing.T) {
	user := domain.UserID(uuid.New())
	recipe := &domain.Recipe{ID: 5, Author: domain.User{ID: domain.UserID(uuid.New())}}

	t.Run("favorite missing recipe", func(t *testing.T) {
		_, st, s := newTestService(t)
		st.EXPECT().RecipeByID(gomock.Any(), user, domain.RecipeID(5)).Return(nil, nil)

		_, err := s.Favorite(context.Background(), user, 5)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("favorite twice", func(t *testing.T) {
		_, st, s := newTestService(t)
		st.EXPECT().RecipeByID(gomock.Any(), user, domain.RecipeID(5)).Return(recipe, nil)
		st.EXPECT().AddRelation(gomock.Any(), domain.RelationFavorite, user, domain.RecipeID(5)).Return(false, nil)

		_, err := s.Favorite(context.Background(), user, 5)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("add to cart", func(t *testing.T) {
		_, st, s := newTestService(t)
		r := *recipe
		st.EXPECT().RecipeByID(gomock.Any(), user, domain.RecipeID(5)).Return(&r, nil)
		st.EXPECT().AddRelation(gomock.Any(), domain.RelationShoppingCart, user, domain.RecipeID(5)).Return(true, nil)

		got, err := s.AddToShoppingCart(context.Background(), user, 5)
		require.NoError(t, err)
		require.True(t, got.IsInShoppingCart)
	})

	t.Run("remove missing relation", func(t *testing.T) {
		_, st, s := newTestService(t)
		st.EXPECT().RecipeByID(gomock.Any(), user, domain.RecipeID(5)).Return(recipe, nil)
		st.EXPECT().RemoveRelation(gomock.Any(), domain.RelationShoppingCart, user, domain.RecipeID(5)).
			Return(false, nil)

		err := s.RemoveFromShoppingCart(context.Background(), user, 5)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("unfavorite", func(t *testing.T) {
		_, st, s := newTestService(t)
		st.EXPECT().RecipeByID(gomock.Any(), user, domain.RecipeID(5)).Return(recipe, nil)
		st.EXPECT().RemoveRelation(gomock.Any(), domain.RelationFavorite, user, domain.RecipeID(5)).Return(true, nil)

		require.NoError(t, s.Unfavorite(context.Background(), user, 5))
	})
}

func TestService_Users(t *testing.T) {
	t.Run("register", func(t *testing.T) {
		_, st, s := newTestService(t)
		st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u domain.User) (*domain.User, error) {
				u.ID = domain.UserID(uuid.New())

				return &u, nil
			})

		u, err := s.Register(context.Background(), domain.User{Email: " cook@example.com", Username: "cook"})
		require.NoError(t, err)
		require.Equal(t, "cook@example.com", u.Email)
	})

	t.Run("invalid", func(t *testing.T) {
		_, _, s := newTestService(t)

		_, err := s.Register(context.Background(), domain.User{Email: "nope", Username: "bad name"})
		requireFieldError(t, err, "email")
		requireFieldError(t, err, "username")
	})

	t.Run("duplicate", func(t *testing.T) {
		_, st, s := newTestService(t)
		st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)

		_, err := s.Register(context.Background(), domain.User{Email: "cook@example.com", Username: "cook"})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("me with unknown subject", func(t *testing.T) {
		_, st, s := newTestService(t)
		st.EXPECT().UserByID(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := s.Me(context.Background(), domain.UserID(uuid.New()))
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("storage failure", func(t *testing.T) {
		_, st, s := newTestService(t)
		st.EXPECT().UserByID(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		_, err := s.User(context.Background(), domain.UserID(uuid.New()))
		require.Error(t, err)
		require.Equal(t, serrors.ErrInternal, serrors.KindOf(err))
	})
}

func TestService_Catalog(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().Ingredients(gomock.Any(), "fl").Return([]domain.Ingredient{{ID: 1, Name: "flour"}}, nil)
	st.EXPECT().TagByID(gomock.Any(), domain.TagID(9)).Return(nil, nil)

	found, err := s.Ingredients(context.Background(), " fl ")
	require.NoError(t, err)
	require.Len(t, found, 1)

	_, err = s.Tag(context.Background(), 9)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
