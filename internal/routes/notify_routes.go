package routes

import (
	"resortfront/internal/api/middleware"
	"resortfront/internal/handlers"

	"github.com/labstack/echo/v4"
)

func SetupNotifyRoutes(e *echo.Echo, h *handlers.NotifyHandler, guard *middleware.Guard) {
	e.POST("/notifications/:id/dismiss", h.Dismiss, guard.RequireSession())
}
