// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"inkwell/config"
	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/delivery/http/response"
	"inkwell/internal/delivery/http/validator"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves signup, verification and the token endpoints.
type AuthHandler struct {
	registration usecase.RegistrationUsecase
	session      usecase.SessionUsecase
	cookieName   string
	cookieTTL    time.Duration
	secureCookie bool
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(
	registration usecase.RegistrationUsecase,
	session usecase.SessionUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		registration: registration,
		session:      session,
		cookieName:   cfg.Auth.RefreshCookieName,
		cookieTTL:    cfg.Auth.RefreshTokenTTL,
		secureCookie: cfg.IsProduction(),
		logger:       logger,
	}
}

// Signup stages a registration and mails the code.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	dob, err := validator.ParseDate(req.DateOfBirth)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("dob must be a date")
	}

	output, err := h.registration.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:          req.Email,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		DateOfBirth:    dob,
		ProfilePicture: req.ProfilePicture,
		Preferences:    req.Preferences,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, signupResponse{Email: output.Email}, "Verification code sent")
}

// VerifyCode turns a pending registration into an identity.
func (h *AuthHandler) VerifyCode(c echo.Context) error {
	var req verifyCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.registration.VerifyCode(c.Request().Context(), &usecase.VerifyCodeInput{
		Email: req.Email,
		Code:  req.OTP,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, identityEnvelope{Identity: newIdentityResponse(output.Identity)}, "Identity registered")
}

// ResendCode issues a fresh code for a pending registration.
func (h *AuthHandler) ResendCode(c echo.Context) error {
	var req resendCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resend input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.registration.ResendCode(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification code sent")
}

// Signin returns the access token in the body and the refresh token in an httpOnly cookie.
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signin input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.session.Signin(c.Request().Context(), &usecase.SigninInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.refreshCookie(output.RefreshToken, int(h.cookieTTL.Seconds())))

	return response.Success(c, http.StatusOK, signinResponse{
		Identity: newIdentityResponse(output.Identity),
		Token:    output.AccessToken,
	}, "Signed in")
}

// Authenticate returns the identity behind the bearer token. Runs behind AuthMiddleware.
func (h *AuthHandler) Authenticate(c echo.Context) error {
	identityID, ok := deliverycontext.GetIdentityID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	identity, err := h.session.Authenticate(c.Request().Context(), identityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identityEnvelope{Identity: newIdentityResponse(identity)}, "")
}

// RefreshToken mints a new access token from the refresh cookie.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var refreshToken string
	if cookie, err := c.Cookie(h.cookieName); err == nil {
		refreshToken = cookie.Value
	}

	output, err := h.session.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenResponse{Token: output.AccessToken}, "Token refreshed")
}

// Signout expires the refresh cookie. Tokens are stateless, so there is nothing to revoke.
func (h *AuthHandler) Signout(c echo.Context) error {
	c.SetCookie(h.refreshCookie("", -1))

	return response.Success(c, http.StatusOK, nil, "Signed out")
}

func (h *AuthHandler) refreshCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
