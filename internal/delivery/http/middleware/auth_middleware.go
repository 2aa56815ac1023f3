package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "inkwell/internal/delivery/context"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	headerAuthorization = "Authorization"
	bearerScheme        = "Bearer"
)

// AuthMiddleware is the session boundary for protected routes. It only
// checks the access token's signature and expiry.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate rejects requests without a well-formed bearer token with
// UNAUTHENTICATED, and requests whose token fails verification with
// INVALID_OR_EXPIRED_TOKEN. Only the latter is worth a refresh.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		token, ok := bearerToken(req.Header.Get(headerAuthorization))
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		switch v := m.tokenSvc.VerifyAccess(token).(type) {
		case service.ValidToken:
			req.Header.Del(headerAuthorization)
			deliverycontext.SetIdentityID(c, v.IdentityID)

			return next(c)
		case service.InvalidToken:
			deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Debug("Access token rejected",
				slog.String("reason", string(v.Reason)))

			return domainerrors.ErrInvalidOrExpiredToken.WithDetails(string(v.Reason))
		default:
			return domainerrors.ErrInvalidOrExpiredToken
		}
	}
}

// bearerToken accepts exactly "Bearer <token>" with a single space and a
// token free of whitespace.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != bearerScheme {
		return "", false
	}
	if token == "" || strings.ContainsAny(token, " \t\r\n") {
		return "", false
	}

	return token, true
}
