package recipes

import (
	"context"
	"errors"
	"fmt"
	"foodgram/internal/config"
	"foodgram/pkg/domain"
	"foodgram/pkg/metrics"
	"foodgram/pkg/serrors"
	"foodgram/pkg/storage"
	"strings"
)

// Options configure listing behavior.
type Options struct {
	// PageSize is used when a query does not set a limit.
	PageSize uint
	// MaxPageSize caps Query.Limit.
	MaxPageSize uint
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PageSize:    cfg.HTTP.PageSize,
		MaxPageSize: cfg.HTTP.MaxPageSize,
	}
}

// Query selects a page of recipes. Page is 1-based.
type Query struct {
	Viewer           domain.UserID
	Author           *domain.UserID
	TagSlugs         []string
	IsFavorited      *bool
	IsInShoppingCart *bool
	Page             uint
	Limit            uint
}

// service is the concrete implementation of the Service interface.
type service struct {
	options  Options
	storage  storage.Storage
	renderer Renderer
	metrics  *metrics.ShoppingList
}

// New creates a Service backed by the provided storage. Shopping lists are
// rendered with renderer and measured with m; a nil m disables metrics.
func New(storage storage.Storage, renderer Renderer, m *metrics.ShoppingList, options Options) Service {
	if options.PageSize == 0 {
		options.PageSize = 6
	}
	if options.MaxPageSize == 0 {
		options.MaxPageSize = 100
	}
	if m == nil {
		m, _ = metrics.NewShoppingList(nil)
	}

	return &service{
		options:  options,
		storage:  storage,
		renderer: renderer,
		metrics:  m,
	}
}

func (s *service) Tags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.storage.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get tags: %w", err)
	}

	return tags, nil
}

func (s *service) Tag(ctx context.Context, ID domain.TagID) (*domain.Tag, error) {
	tag, err := s.storage.TagByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get tag: %w", err)
	}
	if tag == nil {
		return nil, serrors.With(serrors.ErrNotFound, "tag not found")
	}

	return tag, nil
}

func (s *service) Ingredients(ctx context.Context, prefix string) ([]domain.Ingredient, error) {
	ingredients, err := s.storage.Ingredients(ctx, strings.TrimSpace(prefix))
	if err != nil {
		return nil, fmt.Errorf("could not get ingredients: %w", err)
	}

	return ingredients, nil
}

func (s *service) Ingredient(ctx context.Context, ID domain.IngredientID) (*domain.Ingredient, error) {
	ingredient, err := s.storage.IngredientByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get ingredient: %w", err)
	}
	if ingredient == nil {
		return nil, serrors.With(serrors.ErrNotFound, "ingredient not found")
	}

	return ingredient, nil
}

// Register validates and stores a new account.
func (s *service) Register(ctx context.Context, user domain.User) (*domain.User, error) {
	user.Email = strings.TrimSpace(user.Email)
	user.Username = strings.TrimSpace(user.Username)
	if errs := validateUser(user); len(errs) > 0 {
		return nil, serrors.Invalid(errs, "invalid user")
	}

	stored, err := s.storage.StoreUser(ctx, user)
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "user with this email or username already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("could not register user: %w", err)
	}

	return stored, nil
}

func (s *service) User(ctx context.Context, ID domain.UserID) (*domain.User, error) {
	user, err := s.storage.UserByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// Me returns the account behind an authenticated token. A token whose
// subject no longer exists is rejected as unauthorized.
func (s *service) Me(ctx context.Context, ID domain.UserID) (*domain.User, error) {
	user, err := s.storage.UserByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get current user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "unknown user")
	}

	return user, nil
}

func (s *service) Create(ctx context.Context, author domain.UserID, input RecipeInput) (*domain.Recipe, error) {
	if errs := input.validate(); len(errs) > 0 {
		return nil, serrors.Invalid(errs, "invalid recipe")
	}

	var created *domain.Recipe
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		recipe, err := resolve(ctx, tx, input)
		if err != nil {
			return err
		}
		recipe.Author = domain.User{ID: author}

		created, err = tx.StoreRecipe(ctx, recipe)
		if err != nil {
			return fmt.Errorf("could not store recipe: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create recipe: %w", err)
	}

	return created, nil
}

func (s *service) Update(ctx context.Context,
	author domain.UserID,
	ID domain.RecipeID,
	input RecipeInput) (*domain.Recipe, error) {
	if errs := input.validate(); len(errs) > 0 {
		return nil, serrors.Invalid(errs, "invalid recipe")
	}

	var updated *domain.Recipe
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := ownRecipe(ctx, tx, author, ID); err != nil {
			return err
		}

		recipe, err := resolve(ctx, tx, input)
		if err != nil {
			return err
		}
		recipe.ID = ID
		recipe.Author = domain.User{ID: author}

		updated, err = tx.UpdateRecipe(ctx, recipe)
		if err != nil {
			return fmt.Errorf("could not store recipe: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "recipe not found")
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not update recipe: %w", err)
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, author domain.UserID, ID domain.RecipeID) error {
	return s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := ownRecipe(ctx, tx, author, ID); err != nil {
			return err
		}

		deleted, err := tx.DeleteRecipe(ctx, ID)
		if err != nil {
			return fmt.Errorf("could not delete recipe: %w", err)
		}
		if !deleted {
			return serrors.With(serrors.ErrNotFound, "recipe not found")
		}

		return nil
	})
}

func (s *service) Recipe(ctx context.Context, viewer domain.UserID, ID domain.RecipeID) (*domain.Recipe, error) {
	return existingRecipe(ctx, s.storage, viewer, ID)
}

// Recipes returns the requested page. Pages past the end are empty.
func (s *service) Recipes(ctx context.Context, query Query) (domain.RecipePage, error) {
	page := query.Page
	if page == 0 {
		page = 1
	}
	limit := query.Limit
	if limit == 0 {
		limit = s.options.PageSize
	}
	if limit > s.options.MaxPageSize {
		return domain.RecipePage{}, serrors.Invalid(map[string]string{
			"limit": fmt.Sprintf("must be at most %d", s.options.MaxPageSize),
		}, "invalid page")
	}

	res, err := s.storage.Recipes(ctx, storage.RecipeFilter{
		Viewer:           query.Viewer,
		Author:           query.Author,
		TagSlugs:         query.TagSlugs,
		IsFavorited:      query.IsFavorited,
		IsInShoppingCart: query.IsInShoppingCart,
		Limit:            limit,
		Offset:           (page - 1) * limit,
	})
	if err != nil {
		return domain.RecipePage{}, fmt.Errorf("could not list recipes: %w", err)
	}
	res.Page, res.Limit = page, limit

	return res, nil
}

func (s *service) Favorite(ctx context.Context, userID domain.UserID, ID domain.RecipeID) (*domain.Recipe, error) {
	return s.addRelation(ctx, domain.RelationFavorite, userID, ID)
}

func (s *service) Unfavorite(ctx context.Context, userID domain.UserID, ID domain.RecipeID) error {
	return s.removeRelation(ctx, domain.RelationFavorite, userID, ID)
}

func (s *service) AddToShoppingCart(ctx context.Context,
	userID domain.UserID,
	ID domain.RecipeID) (*domain.Recipe, error) {
	return s.addRelation(ctx, domain.RelationShoppingCart, userID, ID)
}

func (s *service) RemoveFromShoppingCart(ctx context.Context, userID domain.UserID, ID domain.RecipeID) error {
	return s.removeRelation(ctx, domain.RelationShoppingCart, userID, ID)
}

func (s *service) addRelation(ctx context.Context,
	kind domain.RelationKind,
	userID domain.UserID,
	ID domain.RecipeID) (*domain.Recipe, error) {
	recipe, err := existingRecipe(ctx, s.storage, userID, ID)
	if err != nil {
		return nil, err
	}

	added, err := s.storage.AddRelation(ctx, kind, userID, ID)
	if err != nil {
		return nil, fmt.Errorf("could not add recipe to %s list: %w", kind, err)
	}
	if !added {
		return nil, serrors.With(serrors.ErrBadRequest, "recipe is already in the %s list", kind)
	}

	switch kind {
	case domain.RelationFavorite:
		recipe.IsFavorited = true
	case domain.RelationShoppingCart:
		recipe.IsInShoppingCart = true
	}

	return recipe, nil
}

func (s *service) removeRelation(ctx context.Context,
	kind domain.RelationKind,
	userID domain.UserID,
	ID domain.RecipeID) error {
	if _, err := existingRecipe(ctx, s.storage, userID, ID); err != nil {
		return err
	}

	removed, err := s.storage.RemoveRelation(ctx, kind, userID, ID)
	if err != nil {
		return fmt.Errorf("could not remove recipe from %s list: %w", kind, err)
	}
	if !removed {
		return serrors.With(serrors.ErrBadRequest, "recipe is not in the %s list", kind)
	}

	return nil
}

func existingRecipe(ctx context.Context,
	st storage.AllStorage,
	viewer domain.UserID,
	ID domain.RecipeID) (*domain.Recipe, error) {
	recipe, err := st.RecipeByID(ctx, viewer, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get recipe: %w", err)
	}
	if recipe == nil {
		return nil, serrors.With(serrors.ErrNotFound, "recipe not found")
	}

	return recipe, nil
}

// ownRecipe loads a recipe and makes sure author wrote it.
func ownRecipe(ctx context.Context,
	st storage.AllStorage,
	author domain.UserID,
	ID domain.RecipeID) (*domain.Recipe, error) {
	recipe, err := existingRecipe(ctx, st, author, ID)
	if err != nil {
		return nil, err
	}
	if recipe.Author.ID != author {
		return nil, serrors.With(serrors.ErrForbidden, "only the author can change a recipe")
	}

	return recipe, nil
}

// resolve checks that every referenced tag and ingredient exists and builds
// the recipe to store.
func resolve(ctx context.Context, st storage.AllStorage, input RecipeInput) (domain.Recipe, error) {
	tags, err := st.TagsByIDs(ctx, input.Tags)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("could not get tags: %w", err)
	}
	ingredientIDs := make([]domain.IngredientID, 0, len(input.Ingredients))
	for _, i := range input.Ingredients {
		ingredientIDs = append(ingredientIDs, i.ID)
	}
	ingredients, err := st.IngredientsByIDs(ctx, ingredientIDs)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("could not get ingredients: %w", err)
	}

	errs := fieldErrors{}
	knownTags := make(map[domain.TagID]domain.Tag, len(tags))
	for _, t := range tags {
		knownTags[t.ID] = t
	}
	recipeTags := make([]domain.Tag, 0, len(input.Tags))
	for _, id := range input.Tags {
		t, ok := knownTags[id]
		if !ok {
			errs.add("tags", "tag %d does not exist", id)

			continue
		}
		recipeTags = append(recipeTags, t)
	}

	knownIngredients := make(map[domain.IngredientID]domain.Ingredient, len(ingredients))
	for _, i := range ingredients {
		knownIngredients[i.ID] = i
	}
	recipeIngredients := make([]domain.RecipeIngredient, 0, len(input.Ingredients))
	for _, in := range input.Ingredients {
		i, ok := knownIngredients[in.ID]
		if !ok {
			errs.add("ingredients", "ingredient %d does not exist", in.ID)

			continue
		}
		recipeIngredients = append(recipeIngredients, domain.RecipeIngredient{
			ID:              i.ID,
			Name:            i.Name,
			MeasurementUnit: i.MeasurementUnit,
			Amount:          in.Amount,
		})
	}

	if len(errs) > 0 {
		return domain.Recipe{}, serrors.Invalid(errs, "invalid recipe")
	}

	return domain.Recipe{
		Name:        strings.TrimSpace(input.Name),
		Image:       input.Image,
		Text:        input.Text,
		CookingTime: input.CookingTime,
		Tags:        recipeTags,
		Ingredients: recipeIngredients,
	}, nil
}
