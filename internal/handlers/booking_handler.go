package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"resortfront/internal/api/middleware"
	"resortfront/internal/api/validator"
	"resortfront/internal/booking"
	"resortfront/internal/export"
	"resortfront/internal/metrics"
	"resortfront/internal/notify"
	"resortfront/internal/paging"
	"resortfront/internal/upstream"
	"resortfront/internal/utils/logger"

	"github.com/labstack/echo/v4"
)

const (
	bookingsPageSize = 5
	exportPageSize   = 100
	exportMaxPages   = 100
)

type BookingHandler struct {
	base
	upstream *upstream.Client
}

func NewBookingHandler(up *upstream.Client, center *notify.Center) *BookingHandler {
	return &BookingHandler{
		base:     base{notify: center, log: logger.New("BookingHandler")},
		upstream: up,
	}
}

// BookForm renders the booking form for the resort picked on the
// catalog page. Without a selection it offers the way back to the list.
func (h *BookingHandler) BookForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "book.html", "Book", map[string]any{
		"ResortID":    c.QueryParam("resort"),
		"ResortName":  c.QueryParam("name"),
		"ResortPrice": c.QueryParam("price"),
		"ResortImage": c.QueryParam("image"),
	})
}

type BookingForm struct {
	ResortID   string `form:"resort" validate:"required"`
	ResortName string `form:"resort_name"`
	CheckIn    string `form:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut   string `form:"check_out" validate:"required,datetime=2006-01-02"`
	Guests     int    `form:"guests" validate:"required,min=1"`
}

// Create submits a booking. The form has no status field; the server
// creates every booking pending.
func (h *BookingHandler) Create(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var form BookingForm
	if err := c.Bind(&form); err != nil {
		h.flash(c, notify.SeverityError, "Error creating booking.")
		return c.Redirect(http.StatusFound, "/resorts")
	}

	fieldErrors := map[string]string{}
	if err := c.Validate(form); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fieldErrors = ve.Format()
		} else {
			fieldErrors["form"] = "Please check the form and try again"
		}
	}
	if form.CheckIn != "" && form.CheckOut != "" && form.CheckOut <= form.CheckIn {
		fieldErrors["check_out"] = "check-out must be after check-in"
	}
	if len(fieldErrors) > 0 {
		return h.render(c, http.StatusBadRequest, "book.html", "Book", map[string]any{
			"ResortID":    form.ResortID,
			"ResortName":  form.ResortName,
			"CheckIn":     form.CheckIn,
			"CheckOut":    form.CheckOut,
			"Guests":      form.Guests,
			"FieldErrors": fieldErrors,
		})
	}

	err := h.upstream.CreateBooking(c.Request().Context(), sess.Token, upstream.BookingInput{
		Resort:         form.ResortID,
		CheckInDate:    form.CheckIn,
		CheckOutDate:   form.CheckOut,
		NumberOfGuests: form.Guests,
	})
	if err != nil {
		h.log.Error("Error creating booking", err)
		h.flash(c, notify.SeverityError, "Error creating booking.")
		return h.render(c, http.StatusOK, "book.html", "Book", map[string]any{
			"ResortID":   form.ResortID,
			"ResortName": form.ResortName,
			"CheckIn":    form.CheckIn,
			"CheckOut":   form.CheckOut,
			"Guests":     form.Guests,
		})
	}

	metrics.IncBookingCreated()
	h.flash(c, notify.SeveritySuccess, "Booking successful!")
	return c.Redirect(http.StatusFound, "/my-bookings")
}

// My lists the caller's own bookings with pagination and an optional
// status filter. A filter change resets the cursor to page one.
func (h *BookingHandler) My(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	filter, prev := statusFilters(c)
	cur := paging.New(queryInt(c, "page", 1), bookingsPageSize).WithFilter(prev, filter)

	bookings, cur, err := h.upstream.MyBookings(c.Request().Context(), sess.Token, cur, filter)
	if err != nil {
		h.log.Error("Error fetching bookings", err)
		h.flash(c, notify.SeverityError, "Failed to fetch bookings")
	}

	return h.render(c, http.StatusOK, "my_bookings.html", "My Bookings", map[string]any{
		"Bookings": bookings,
		"Cursor":   cur,
		"Filter":   filter,
	})
}

// AdminList shows all bookings with the decision controls on pending
// rows.
func (h *BookingHandler) AdminList(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	filter, prev := statusFilters(c)
	cur := paging.New(queryInt(c, "page", 1), bookingsPageSize).WithFilter(prev, filter)

	bookings, cur, err := h.upstream.ListBookings(c.Request().Context(), sess.Token, cur, filter)
	if err != nil {
		h.log.Error("Error fetching bookings", err)
		h.flash(c, notify.SeverityError, "Failed to fetch bookings")
	}

	return h.render(c, http.StatusOK, "admin_bookings.html", "Bookings", map[string]any{
		"Bookings": bookings,
		"Cursor":   cur,
		"Filter":   filter,
	})
}

type DecisionForm struct {
	Status  string `form:"status" validate:"required,booking_decision"`
	Current string `form:"current" validate:"required,booking_status"`
	Page    int    `form:"page"`
	Filter  string `form:"filter"`
}

// SetStatus applies an administrator decision over a pending booking and
// redirects back to the list, which re-fetches the authoritative server
// state. Nothing is mutated locally.
func (h *BookingHandler) SetStatus(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	var form DecisionForm
	if err := c.Bind(&form); err != nil {
		h.flash(c, notify.SeverityError, "Failed to update booking")
		return c.Redirect(http.StatusFound, "/admin/bookings")
	}
	back := adminBookingsURL(form.Page, form.Filter)

	if err := c.Validate(form); err != nil {
		h.flash(c, notify.SeverityError, "Failed to update booking")
		return c.Redirect(http.StatusFound, back)
	}

	current, err := booking.ParseStatus(form.Current)
	if err != nil {
		h.flash(c, notify.SeverityError, "Failed to update booking")
		return c.Redirect(http.StatusFound, back)
	}
	requested, err := booking.ParseStatus(form.Status)
	if err != nil {
		h.flash(c, notify.SeverityError, "Failed to update booking")
		return c.Redirect(http.StatusFound, back)
	}

	next, err := current.Transition(requested)
	if err != nil {
		h.log.Warn("rejected transition %s -> %s for booking %s", current, requested, c.Param("id"))
		h.flash(c, notify.SeverityError, "This booking can no longer be changed")
		return c.Redirect(http.StatusFound, back)
	}

	if err := h.upstream.SetBookingStatus(c.Request().Context(), sess.Token, c.Param("id"), next); err != nil {
		h.log.Error("Error updating booking status", err)
		h.flash(c, notify.SeverityError, "Failed to update booking status")
		return c.Redirect(http.StatusFound, back)
	}

	metrics.IncBookingDecision(string(next))
	h.flash(c, notify.SeveritySuccess, "Booking "+string(next))
	return c.Redirect(http.StatusFound, back)
}

// Export streams every booking (optionally narrowed by status) as a
// spreadsheet.
func (h *BookingHandler) Export(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	filter, _ := statusFilters(c)

	var all []upstream.Booking
	cur := paging.New(1, exportPageSize)
	for page := 1; page <= exportMaxPages; page++ {
		cur.Page = page
		bookings, next, err := h.upstream.ListBookings(c.Request().Context(), sess.Token, cur, filter)
		if err != nil {
			h.log.Error("Error exporting bookings", err)
			h.flash(c, notify.SeverityError, "Failed to export bookings")
			return c.Redirect(http.StatusFound, adminBookingsURL(1, filter))
		}
		all = append(all, bookings...)
		if page >= next.Pages {
			break
		}
	}

	f, err := export.BookingsWorkbook(all)
	if err != nil {
		h.log.Error("Error building workbook", err)
		h.flash(c, notify.SeverityError, "Failed to export bookings")
		return c.Redirect(http.StatusFound, adminBookingsURL(1, filter))
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="bookings.xlsx"`)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}

// statusFilters reads the requested and previous status filter values,
// dropping anything that is not a known status.
func statusFilters(c echo.Context) (filter, prev string) {
	if s := c.QueryParam("status"); s != "" {
		if _, err := booking.ParseStatus(s); err == nil {
			filter = s
		}
	}
	if s := c.QueryParam("prev_status"); s != "" {
		if _, err := booking.ParseStatus(s); err == nil {
			prev = s
		}
	}
	return filter, prev
}

func adminBookingsURL(page int, filter string) string {
	if page < 1 {
		page = 1
	}
	u := fmt.Sprintf("/admin/bookings?page=%d", page)
	if filter != "" {
		u += "&status=" + url.QueryEscape(filter) + "&prev_status=" + url.QueryEscape(filter)
	}
	return u
}
