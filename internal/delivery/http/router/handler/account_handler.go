package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/delivery/http/response"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler serves changes a signed-in identity makes to itself.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{uc: uc, logger: logger}
}

// ChangePassword handles PATCH /users.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	identityID, ok := deliverycontext.GetIdentityID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err := h.uc.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		IdentityID:      identityID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated")
}
