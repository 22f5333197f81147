package handlers

import (
	"net/http"
	"strings"

	"resortfront/internal/api/middleware"
	"resortfront/internal/notify"
	"resortfront/internal/utils/logger"

	"github.com/labstack/echo/v4"
)

type NotifyHandler struct {
	center *notify.Center
	log    *logger.Logger
}

func NewNotifyHandler(center *notify.Center) *NotifyHandler {
	return &NotifyHandler{
		center: center,
		log:    logger.New("NotifyHandler"),
	}
}

// Dismiss removes a notification before its timer fires and sends the
// browser back where it came from.
func (h *NotifyHandler) Dismiss(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if err := h.center.Dismiss(c.Request().Context(), sess.ID, c.Param("id")); err != nil {
		h.log.Error("failed to dismiss notification", err)
	}

	back := c.Request().Referer()
	if back == "" || !strings.HasPrefix(back, "/") && !strings.Contains(back, "://") {
		back = "/"
	}
	return c.Redirect(http.StatusFound, back)
}
