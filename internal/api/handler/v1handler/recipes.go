package v1handler

import (
	"foodgram/internal/recipes"
	"foodgram/pkg/domain"
	"foodgram/pkg/serrors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func recipeIDParam(c *gin.Context) (domain.RecipeID, error) {
	id, err := int64Param(c, "id", "recipe")

	return domain.RecipeID(id), err
}

func boolQuery(c *gin.Context, name string, fields map[string]string) *bool {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		fields[name] = "must be a boolean"

		return nil
	}

	return &v
}

func uintQuery(c *gin.Context, name string, fields map[string]string) uint {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		fields[name] = "must be a positive integer"

		return 0
	}

	return uint(v)
}

func recipeQuery(c *gin.Context) (recipes.Query, error) {
	fields := map[string]string{}
	viewer, _ := UserIDFromContext(c.Request.Context())

	q := recipes.Query{
		Viewer:           viewer,
		TagSlugs:         c.QueryArray("tags"),
		IsFavorited:      boolQuery(c, "is_favorited", fields),
		IsInShoppingCart: boolQuery(c, "is_in_shopping_cart", fields),
		Page:             uintQuery(c, "page", fields),
		Limit:            uintQuery(c, "limit", fields),
	}
	if raw := c.Query("author"); raw != "" {
		author, err := uuid.Parse(raw)
		if err != nil {
			fields["author"] = "must be a user id"
		} else {
			id := domain.UserID(author)
			q.Author = &id
		}
	}
	if len(fields) > 0 {
		return recipes.Query{}, serrors.Invalid(fields, "invalid query parameters")
	}

	return q, nil
}

// pageURL returns the current request URL pointing at another page.
func pageURL(r *http.Request, page uint) *string {
	u := url.URL{Scheme: "http", Host: r.Host, Path: r.URL.Path}
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		u.Scheme = "https"
	}

	q := r.URL.Query()
	q.Set("page", strconv.FormatUint(uint64(page), 10))
	u.RawQuery = q.Encode()

	s := u.String()

	return &s
}

func (h *Handler) ListRecipes(c *gin.Context) {
	query, err := recipeQuery(c)
	if err != nil {
		h.abort(c, err)

		return
	}

	page, err := h.deps.Recipes.Recipes(c.Request.Context(), query)
	if err != nil {
		h.abort(c, err)

		return
	}

	res := recipePageResponse{
		Count:   page.Count,
		Results: make([]recipeResponse, 0, len(page.Recipes)),
	}
	for _, r := range page.Recipes {
		res.Results = append(res.Results, newRecipeResponse(r))
	}
	if page.HasNext() {
		res.Next = pageURL(c.Request, page.Page+1)
	}
	if page.HasPrevious() {
		res.Previous = pageURL(c.Request, page.Page-1)
	}

	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetRecipe(c *gin.Context) {
	id, err := recipeIDParam(c)
	if err != nil {
		h.abort(c, err)

		return
	}

	viewer, _ := UserIDFromContext(c.Request.Context())
	recipe, err := h.deps.Recipes.Recipe(c.Request.Context(), viewer, id)
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, newRecipeResponse(*recipe))
}

func (h *Handler) CreateRecipe(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	author, _ := UserIDFromContext(c.Request.Context())
	recipe, err := h.deps.Recipes.Create(c.Request.Context(), author, req.toInput())
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusCreated, newRecipeResponse(*recipe))
}

func (h *Handler) UpdateRecipe(c *gin.Context) {
	id, err := recipeIDParam(c)
	if err != nil {
		h.abort(c, err)

		return
	}

	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	author, _ := UserIDFromContext(c.Request.Context())
	recipe, err := h.deps.Recipes.Update(c.Request.Context(), author, id, req.toInput())
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, newRecipeResponse(*recipe))
}

func (h *Handler) DeleteRecipe(c *gin.Context) {
	id, err := recipeIDParam(c)
	if err != nil {
		h.abort(c, err)

		return
	}

	author, _ := UserIDFromContext(c.Request.Context())
	if err := h.deps.Recipes.Delete(c.Request.Context(), author, id); err != nil {
		h.abort(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
