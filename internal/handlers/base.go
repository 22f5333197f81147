package handlers

import (
	"resortfront/internal/api/middleware"
	"resortfront/internal/notify"
	"resortfront/internal/utils/logger"

	"github.com/labstack/echo/v4"
)

// base carries what every page handler shares: render plumbing and the
// notification center.
type base struct {
	notify *notify.Center
	log    *logger.Logger
}

// render executes a page template with the session identity, menus and
// live notifications layered onto the page data.
func (b *base) render(c echo.Context, code int, name, title string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	data["Title"] = title
	if sess := middleware.CurrentSession(c); sess != nil {
		data["Identity"] = sess.Identity
		data["Menus"] = sess.Menus
		if notes, err := b.notify.Active(c.Request().Context(), sess.ID); err == nil {
			data["Notifications"] = notes
		}
	}
	return c.Render(code, name, data)
}

// flash queues a notification for the current session. Without a session
// there is nobody to notify, so it is a no-op.
func (b *base) flash(c echo.Context, severity notify.Severity, message string) {
	if sess := middleware.CurrentSession(c); sess != nil {
		b.notify.Push(c.Request().Context(), sess.ID, message, severity)
	}
}
