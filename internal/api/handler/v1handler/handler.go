// Package v1handler implements the v1 HTTP API on top of gin.
package v1handler

import (
	"context"
	"errors"
	"foodgram/internal/recipes"
	"foodgram/pkg/logger"
	"foodgram/pkg/serrors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type Deps struct {
	Recipes recipes.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Error is the JSON body of every failed request.
type Error struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ErrorResponse pairs an Error body with its HTTP status.
type ErrorResponse struct {
	StatusCode int
	Response   Error
}

type kindStatus struct {
	status  int
	message string
}

var kindStatuses = map[serrors.Kind]kindStatus{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:    {http.StatusForbidden, "forbidden"},
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
}

// NewError maps err to a response. Internal errors are logged and their
// details are never exposed.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	ks, ok := kindStatuses[kind]
	if !ok {
		fields := []zap.Field{zap.Error(err)}
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			fields = append(fields, zap.String("traceID", sc.TraceID().String()))
		}
		logger.Error(ctx, "internal error", fields...)

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Response:   Error{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	res := &ErrorResponse{
		StatusCode: ks.status,
		Response:   Error{Code: kind.Error(), Message: ks.message},
	}

	var se *serrors.Error
	if errors.As(err, &se) {
		if se.Message() != "" {
			res.Response.Message = se.Message()
		}
		res.Response.Fields = se.Fields()
	}
	if ks.status >= http.StatusInternalServerError {
		logger.Warn(ctx, "request failed", zap.Error(err))
	}

	return res
}

func (h *Handler) abort(c *gin.Context, err error) {
	res := h.NewError(c.Request.Context(), err)
	c.AbortWithStatusJSON(res.StatusCode, res.Response)
}

// Register mounts every v1 route on r.
func Register(r gin.IRouter, h *Handler, sec *SecHandler) {
	public := r.Group("", sec.Optional(h))
	private := r.Group("", sec.Required(h))

	public.POST("/users", h.CreateUser)
	private.GET("/users/me", h.Me)
	public.GET("/users/:id", h.GetUser)

	public.GET("/tags", h.ListTags)
	public.GET("/tags/:id", h.GetTag)
	public.GET("/ingredients", h.ListIngredients)
	public.GET("/ingredients/:id", h.GetIngredient)

	public.GET("/recipes", h.ListRecipes)
	private.POST("/recipes", h.CreateRecipe)
	private.GET("/recipes/download_shopping_cart", h.DownloadShoppingCart)
	public.GET("/recipes/:id", h.GetRecipe)
	private.PATCH("/recipes/:id", h.UpdateRecipe)
	private.DELETE("/recipes/:id", h.DeleteRecipe)
	private.POST("/recipes/:id/favorite", h.Favorite)
	private.DELETE("/recipes/:id/favorite", h.Unfavorite)
	private.POST("/recipes/:id/shopping_cart", h.AddToShoppingCart)
	private.DELETE("/recipes/:id/shopping_cart", h.RemoveFromShoppingCart)
}
