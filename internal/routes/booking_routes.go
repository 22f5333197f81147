package routes

import (
	"resortfront/internal/api/middleware"
	"resortfront/internal/handlers"
	"resortfront/internal/session"

	"github.com/labstack/echo/v4"
)

func SetupBookingRoutes(e *echo.Echo, h *handlers.BookingHandler, guard *middleware.Guard) {
	user := e.Group("", guard.RequireSession(), guard.RequireRole(session.RoleUser))
	user.GET("/book", h.BookForm)
	user.POST("/book", h.Create)
	user.GET("/my-bookings", h.My)

	admin := e.Group("/admin", guard.RequireSession(), guard.RequireRole(session.RoleAdmin))
	admin.GET("/bookings", h.AdminList)
	admin.GET("/bookings/export", h.Export)
	admin.POST("/bookings/:id/status", h.SetStatus)
}
