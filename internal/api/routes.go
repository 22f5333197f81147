package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Health check
	s.echo.GET("/health", s.healthCheck)

	// Prometheus metrics
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Unknown routes go to the login entry point
	s.echo.RouteNotFound("/*", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/login")
	})
}
