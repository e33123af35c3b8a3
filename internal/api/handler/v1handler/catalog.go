package v1handler

import (
	"foodgram/pkg/domain"
	"foodgram/pkg/serrors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// int64Param parses a positive numeric path parameter. Anything else cannot
// name an existing resource.
func int64Param(c *gin.Context, name, resource string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, serrors.With(serrors.ErrNotFound, "%s not found", resource)
	}

	return id, nil
}

func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.deps.Recipes.Tags(c.Request.Context())
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, newTagResponses(tags))
}

func (h *Handler) GetTag(c *gin.Context) {
	id, err := int64Param(c, "id", "tag")
	if err != nil {
		h.abort(c, err)

		return
	}

	tag, err := h.deps.Recipes.Tag(c.Request.Context(), domain.TagID(id))
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, newTagResponse(*tag))
}

func (h *Handler) ListIngredients(c *gin.Context) {
	ingredients, err := h.deps.Recipes.Ingredients(c.Request.Context(), c.Query("name"))
	if err != nil {
		h.abort(c, err)

		return
	}

	res := make([]ingredientResponse, 0, len(ingredients))
	for _, i := range ingredients {
		res = append(res, newIngredientResponse(i))
	}

	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetIngredient(c *gin.Context) {
	id, err := int64Param(c, "id", "ingredient")
	if err != nil {
		h.abort(c, err)

		return
	}

	ingredient, err := h.deps.Recipes.Ingredient(c.Request.Context(), domain.IngredientID(id))
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, newIngredientResponse(*ingredient))
}
