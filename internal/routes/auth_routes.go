package routes

import (
	"resortfront/internal/api/middleware"
	"resortfront/internal/handlers"

	"github.com/labstack/echo/v4"
)

func SetupAuthRoutes(e *echo.Echo, h *handlers.AuthHandler, guard *middleware.Guard, loginLimiter echo.MiddlewareFunc) {
	// Public routes (no session required)
	e.GET("/login", h.LoginPage)
	e.POST("/login", h.Login, loginLimiter)

	// Logout works with or without a live session
	e.POST("/logout", h.Logout)

	// Landing view, the soft-redirect target for role mismatches
	e.GET("/", h.Landing, guard.RequireSession())
}
