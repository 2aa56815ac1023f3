// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"inkwell/internal/delivery/http/middleware"
	"inkwell/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds dependencies for the router
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Registration
	e.POST("/signup", r.authHandler.Signup)
	e.POST("/verify-otp", r.authHandler.VerifyCode)
	e.POST("/resend-otp", r.authHandler.ResendCode)

	// Session
	e.POST("/signin", r.authHandler.Signin)
	e.POST("/refresh-token", r.authHandler.RefreshToken)
	e.POST("/signout", r.authHandler.Signout)
	e.GET("/authenticate", r.authHandler.Authenticate, r.authMiddleware.Authenticate)

	// Account
	e.PATCH("/users", r.accountHandler.ChangePassword, r.authMiddleware.Authenticate)
}
