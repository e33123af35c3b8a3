package v1handler

import (
	"foodgram/pkg/domain"
	"foodgram/pkg/serrors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	user, err := h.deps.Recipes.Register(c.Request.Context(), req.toDomain())
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusCreated, newUserResponse(*user))
}

func (h *Handler) Me(c *gin.Context) {
	userID, _ := UserIDFromContext(c.Request.Context())

	user, err := h.deps.Recipes.Me(c.Request.Context(), userID)
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, newUserResponse(*user))
}

func (h *Handler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.abort(c, serrors.With(serrors.ErrNotFound, "user not found"))

		return
	}

	user, err := h.deps.Recipes.User(c.Request.Context(), domain.UserID(id))
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, newUserResponse(*user))
}
