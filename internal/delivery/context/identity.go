package context

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyIdentityID holds the identity resolved by the session boundary.
const KeyIdentityID ContextKey = "identity_id"

// SetIdentityID records the authenticated identity on both the echo context
// and the request context.
func SetIdentityID(c echo.Context, identityID uuid.UUID) {
	c.Set(string(KeyIdentityID), identityID)

	req := c.Request()
	c.SetRequest(req.WithContext(WithIdentityID(req.Context(), identityID)))
}

// GetIdentityID reports false on routes not behind the session boundary.
func GetIdentityID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyIdentityID)).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func WithIdentityID(ctx context.Context, identityID uuid.UUID) context.Context {
	return context.WithValue(ctx, KeyIdentityID, identityID)
}

func IdentityIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(KeyIdentityID).(uuid.UUID)
	return id, ok && id != uuid.Nil
}
