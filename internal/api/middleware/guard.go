package middleware

import (
	"net/http"

	"resortfront/internal/session"
	"resortfront/internal/utils"
	"resortfront/internal/utils/logger"

	"github.com/labstack/echo/v4"
)

var log = logger.New("route_guard")

const sessionContextKey = "session"

// Guard gates page access on a live session and, optionally, a role.
// Both checks are re-evaluated on every request; decisions are never
// cached. Failures are soft redirects, not error pages.
type Guard struct {
	store      *session.Store
	jwtSecret  string
	cookieName string
}

func NewGuard(store *session.Store, jwtSecret, cookieName string) *Guard {
	return &Guard{
		store:      store,
		jwtSecret:  jwtSecret,
		cookieName: cookieName,
	}
}

// RequireSession resolves the session cookie and loads the session into
// the request context. Missing or dead sessions redirect to /login.
func (g *Guard) RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := g.resolve(c)
			if err != nil {
				return c.Redirect(http.StatusFound, "/login")
			}
			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// RequireRole gates a view on the identity's role. A mismatch is not an
// error: the user is sent to the landing view.
func (g *Guard) RequireRole(role session.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := CurrentSession(c)
			if sess == nil {
				return c.Redirect(http.StatusFound, "/login")
			}
			if sess.Identity.Role != role {
				log.Info("role mismatch for %s on %s", sess.Identity.Email, c.Request().URL.Path)
				return c.Redirect(http.StatusFound, "/")
			}
			return next(c)
		}
	}
}

func (g *Guard) resolve(c echo.Context) (*session.Session, error) {
	cookie, err := c.Cookie(g.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, session.ErrNoSession
	}

	claims, err := utils.ParseSessionToken(cookie.Value, g.jwtSecret)
	if err != nil {
		return nil, session.ErrNoSession
	}

	return g.store.Get(c.Request().Context(), claims.SessionID)
}

// CurrentSession returns the session loaded by RequireSession, or nil.
func CurrentSession(c echo.Context) *session.Session {
	if sess, ok := c.Get(sessionContextKey).(*session.Session); ok {
		return sess
	}
	return nil
}

// CurrentIdentity returns the authenticated identity, or nil.
func CurrentIdentity(c echo.Context) *session.Identity {
	if sess := CurrentSession(c); sess != nil {
		return &sess.Identity
	}
	return nil
}
