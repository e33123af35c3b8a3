package v1handler

import (
	"context"
	"foodgram/pkg/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

type (
	addFn    func(ctx context.Context, userID domain.UserID, ID domain.RecipeID) (*domain.Recipe, error)
	removeFn func(ctx context.Context, userID domain.UserID, ID domain.RecipeID) error
)

func (h *Handler) addToList(c *gin.Context, add addFn) {
	id, err := recipeIDParam(c)
	if err != nil {
		h.abort(c, err)

		return
	}

	userID, _ := UserIDFromContext(c.Request.Context())
	recipe, err := add(c.Request.Context(), userID, id)
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusCreated, newShortRecipeResponse(*recipe))
}

func (h *Handler) removeFromList(c *gin.Context, remove removeFn) {
	id, err := recipeIDParam(c)
	if err != nil {
		h.abort(c, err)

		return
	}

	userID, _ := UserIDFromContext(c.Request.Context())
	if err := remove(c.Request.Context(), userID, id); err != nil {
		h.abort(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Favorite(c *gin.Context) {
	h.addToList(c, h.deps.Recipes.Favorite)
}

func (h *Handler) Unfavorite(c *gin.Context) {
	h.removeFromList(c, h.deps.Recipes.Unfavorite)
}

func (h *Handler) AddToShoppingCart(c *gin.Context) {
	h.addToList(c, h.deps.Recipes.AddToShoppingCart)
}

func (h *Handler) RemoveFromShoppingCart(c *gin.Context) {
	h.removeFromList(c, h.deps.Recipes.RemoveFromShoppingCart)
}

// DownloadShoppingCart streams the aggregated shopping list of the caller as
// a PDF attachment.
func (h *Handler) DownloadShoppingCart(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := UserIDFromContext(ctx)

	doc, err := h.deps.Recipes.ShoppingList(ctx, userID)
	if err != nil {
		h.abort(c, err)

		return
	}

	c.Header("Content-Disposition", doc.ContentDisposition())
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}
