package routes

import (
	"resortfront/internal/api/middleware"
	"resortfront/internal/handlers"
	"resortfront/internal/session"
	"resortfront/internal/utils/logger"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/labstack/echo/v4"
)

func SetupUploadRoutes(e *echo.Echo, guard *middleware.Guard) {
	log := logger.New("upload_routes")

	// Initialize upload handler
	uploadHandler := handlers.NewUploadHandler(
		types.ObjectCannedACLPublicRead,
	)

	admin := e.Group("/admin", guard.RequireSession(), guard.RequireRole(session.RoleAdmin))
	admin.POST("/uploads", uploadHandler.UploadFile)

	log.Success("Upload routes initialized successfully")
}
