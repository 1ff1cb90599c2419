// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gazette/internal/delivery/http/middleware"
	"gazette/internal/delivery/http/router/handler"
	"gazette/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Registry            *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	registry            *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		registry:            params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/apple", r.authHandler.AppleSignIn)
		authGroup.POST("/google", r.authHandler.GoogleSignIn)
		authGroup.POST("/email/send-otp", r.authHandler.SendOtp, r.rateLimitMiddleware.LimitOtpSend)
		authGroup.POST("/email/verify-otp", r.authHandler.VerifyOtp)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)

		// Endpoints below require a valid access token.
		authGroup.POST("/logout-all", r.authHandler.LogoutAll, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
		authGroup.GET("/sessions", r.authHandler.ListSessions, r.authMiddleware.Authenticate)
		authGroup.DELETE("/sessions/:id", r.authHandler.RevokeSession, r.authMiddleware.Authenticate)
	}
}
