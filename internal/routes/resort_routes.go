package routes

import (
	"resortfront/internal/api/middleware"
	"resortfront/internal/handlers"
	"resortfront/internal/session"

	"github.com/labstack/echo/v4"
)

func SetupResortRoutes(e *echo.Echo, h *handlers.ResortHandler, guard *middleware.Guard) {
	user := e.Group("", guard.RequireSession(), guard.RequireRole(session.RoleUser))
	user.GET("/resorts", h.Catalog)

	admin := e.Group("/admin", guard.RequireSession(), guard.RequireRole(session.RoleAdmin))
	admin.GET("/resorts", h.AdminList)
	admin.GET("/resorts/new", h.NewForm)
	admin.POST("/resorts", h.Create)
	admin.GET("/resorts/:id/edit", h.EditForm)
	admin.POST("/resorts/:id", h.Update)
	admin.GET("/resorts/:id/delete", h.DeleteConfirm)
	admin.POST("/resorts/:id/delete", h.Delete)
}
