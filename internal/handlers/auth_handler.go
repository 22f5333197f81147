package handlers

import (
	"errors"
	"net/http"
	"time"

	"resortfront/internal/api/middleware"
	"resortfront/internal/api/validator"
	"resortfront/internal/config"
	"resortfront/internal/notify"
	"resortfront/internal/session"
	"resortfront/internal/upstream"
	"resortfront/internal/utils"
	"resortfront/internal/utils/logger"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	base
	store *session.Store
	cfg   *config.Config
}

func NewAuthHandler(store *session.Store, center *notify.Center, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		base:  base{notify: center, log: logger.New("AuthHandler")},
		store: store,
		cfg:   cfg,
	}
}

type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// LoginPage renders the sign-in form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return h.render(c, http.StatusOK, "login.html", "Sign In", nil)
}

// Login authenticates against the booking API and establishes a session.
// On success the browser lands on the first server-supplied menu entry.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.render(c, http.StatusBadRequest, "login.html", "Sign In", map[string]any{
			"Error": "Invalid credentials",
		})
	}

	if err := c.Validate(req); err != nil {
		data := map[string]any{"Email": req.Email}
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			data["FieldErrors"] = ve.Format()
		} else {
			data["Error"] = "Invalid credentials"
		}
		return h.render(c, http.StatusBadRequest, "login.html", "Sign In", data)
	}

	sess, err := h.store.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, upstream.ErrInvalidCredentials) {
			return h.render(c, http.StatusUnauthorized, "login.html", "Sign In", map[string]any{
				"Email": req.Email,
				"Error": "Invalid credentials",
			})
		}
		h.log.Error("login failed", err)
		return h.render(c, http.StatusBadGateway, "login.html", "Sign In", map[string]any{
			"Email": req.Email,
			"Error": "Something went wrong. Please try again.",
		})
	}

	token, err := utils.GenerateSessionToken(sess.ID, h.cfg.JWT.Secret, h.cfg.Session.TTL)
	if err != nil {
		h.log.Error("failed to sign session cookie", err)
		return h.render(c, http.StatusInternalServerError, "login.html", "Sign In", map[string]any{
			"Email": req.Email,
			"Error": "Something went wrong. Please try again.",
		})
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.Session.TTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if len(sess.Menus) > 0 && sess.Menus[0].Path != "" && sess.Menus[0].Path != "/" {
		return c.Redirect(http.StatusFound, sess.Menus[0].Path)
	}
	return c.Redirect(http.StatusFound, "/")
}

// Logout ends the session unconditionally. Logging out while already
// logged out still lands on the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cfg.Session.CookieName); err == nil && cookie.Value != "" {
		if claims, err := utils.ParseSessionToken(cookie.Value, h.cfg.JWT.Secret); err == nil {
			if err := h.store.End(c.Request().Context(), claims.SessionID); err != nil {
				h.log.Error("failed to end session", err)
			}
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, "/login")
}

// Landing sends the user to their first menu entry, or renders a bare
// landing page when the server supplied no menu.
func (h *AuthHandler) Landing(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if sess != nil && len(sess.Menus) > 0 && sess.Menus[0].Path != "" && sess.Menus[0].Path != "/" {
		return c.Redirect(http.StatusFound, sess.Menus[0].Path)
	}
	return h.render(c, http.StatusOK, "landing.html", "Home", nil)
}
