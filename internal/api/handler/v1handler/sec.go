package v1handler

import (
	"context"
	"errors"
	"fmt"
	"foodgram/internal/config"
	"foodgram/pkg/domain"
	"foodgram/pkg/logger"
	"foodgram/pkg/serrors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey string

// UserIDKey is the context key under which the authenticated domain.UserID is stored.
const UserIDKey ctxKey = "userID"

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key tokens are verified with.
	PublicKey string
	// Leeway tolerates clock skew when validating exp and nbf.
	Leeway time.Duration
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
		Leeway:    5 * time.Second,
	}
}

// SecHandler authenticates requests carrying an RS256 bearer token whose
// subject is the user ID.
type SecHandler struct {
	parser *jwt.Parser
	keyFn  jwt.Keyfunc
}

// NewSecHandler parses the public key once and returns a ready handler.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(opts.Leeway),
		),
		keyFn: func(*jwt.Token) (any, error) { return key, nil },
	}, nil
}

// HandleBearerAuth verifies token and returns ctx carrying the user ID.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, s.keyFn); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	ctx = context.WithValue(ctx, UserIDKey, domain.UserID(userID))
	ctx = logger.WithFields(ctx, zap.String("userID", userID.String()))

	return ctx, nil
}

// UserIDFromContext returns the authenticated user, if any.
func UserIDFromContext(ctx context.Context) (domain.UserID, bool) {
	userID, ok := ctx.Value(UserIDKey).(domain.UserID)

	return userID, ok
}

var errMissingToken = errors.New("missing bearer token")

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errMissingToken
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", serrors.With(serrors.ErrUnauthorized, "malformed authorization header")
	}

	return strings.TrimSpace(token), nil
}

// Optional authenticates the request when it carries a token. Anonymous
// requests pass through, but an invalid token is still rejected.
func (s *SecHandler) Optional(h *Handler) gin.HandlerFunc {
	return s.middleware(h, false)
}

// Required rejects requests without a valid token.
func (s *SecHandler) Required(h *Handler) gin.HandlerFunc {
	return s.middleware(h, true)
}

func (s *SecHandler) middleware(h *Handler, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, err := bearerToken(c.Request)
		if errors.Is(err, errMissingToken) {
			if required {
				h.abort(c, serrors.With(serrors.ErrUnauthorized, "authentication credentials were not provided"))

				return
			}
			c.Next()

			return
		}
		if err != nil {
			h.abort(c, err)

			return
		}

		ctx, err = s.HandleBearerAuth(ctx, token)
		if err != nil {
			h.abort(c, err)

			return
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
