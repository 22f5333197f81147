package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	apimw "resortfront/internal/api/middleware"
	"resortfront/internal/api/validator"
	"resortfront/internal/config"
	"resortfront/internal/handlers"
	"resortfront/internal/metrics"
	"resortfront/internal/notify"
	"resortfront/internal/routes"
	"resortfront/internal/session"
	"resortfront/internal/upstream"

	console "resortfront/internal/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	echo   *echo.Echo
	config *config.Config
	rdb    *redis.Client
}

var log = console.New("API-Server")

func NewServer(cfg *config.Config, rdb *redis.Client) (*Server, error) {
	e := echo.New()
	e.HideBanner = true

	// Create custom validator
	e.Validator = validator.NewValidator()

	renderer, err := NewRenderer()
	if err != nil {
		return nil, log.Error("Failed to parse templates", err)
	}
	e.Renderer = renderer

	// Configure middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: 30 * time.Second,
	}))
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	e.Use(middleware.BodyLimit("10M"))

	// Custom error handler
	e.HTTPErrorHandler = customHTTPErrorHandler

	metrics.Register()

	// Wire the shared application state: one upstream client, one
	// session store, one notification center, injected top-down.
	up := upstream.NewClient(cfg.Upstream)
	store := session.NewStore(rdb, up, cfg.Session.TTL)
	center := notify.NewCenter(rdb, cfg.Notify.TTL)
	guard := apimw.NewGuard(store, cfg.JWT.Secret, cfg.Session.CookieName)

	loginLimiter := middleware.RateLimiter(
		middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit.LoginPerSecond)))

	s := &Server{
		echo:   e,
		config: cfg,
		rdb:    rdb,
	}

	routes.SetupAuthRoutes(e, handlers.NewAuthHandler(store, center, cfg), guard, loginLimiter)
	routes.SetupResortRoutes(e, handlers.NewResortHandler(up, center), guard)
	routes.SetupBookingRoutes(e, handlers.NewBookingHandler(up, center), guard)
	routes.SetupNotifyRoutes(e, handlers.NewNotifyHandler(center), guard)
	routes.SetupUploadRoutes(e, guard)

	// Register routes
	s.registerRoutes()
	return s, nil
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Health check endpoint
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"version": "1.0.0",
		"time":    time.Now().Format(time.RFC3339),
	})
}

// Custom HTTP error handler
func customHTTPErrorHandler(err error, c echo.Context) {
	var (
		code    = http.StatusInternalServerError
		message interface{}
	)

	switch e := err.(type) {
	case *echo.HTTPError:
		code = e.Code
		message = e.Message
	case validator.ValidationErrors:
		code = http.StatusBadRequest
		message = e.Format()
	default:
		message = http.StatusText(code)
	}

	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, map[string]interface{}{
				"error": message,
				"code":  code,
				"time":  time.Now().Format(time.RFC3339),
			})
		}
		if err != nil {
			c.Echo().Logger.Error(err)
		}
	}
}
