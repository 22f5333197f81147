package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"resortfront/internal/api/middleware"
	"resortfront/internal/api/validator"
	"resortfront/internal/notify"
	"resortfront/internal/paging"
	"resortfront/internal/resort"
	"resortfront/internal/upstream"
	"resortfront/internal/utils/logger"

	"github.com/labstack/echo/v4"
)

const (
	catalogPageSize     = 9
	adminResortPageSize = 6

	// blank rows appended to the facilities editor for new entries
	facilitySpareRows = 3
)

type ResortHandler struct {
	base
	upstream *upstream.Client
}

func NewResortHandler(up *upstream.Client, center *notify.Center) *ResortHandler {
	return &ResortHandler{
		base:     base{notify: center, log: logger.New("ResortHandler")},
		upstream: up,
	}
}

// Catalog renders the read-only resort list for users.
func (h *ResortHandler) Catalog(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	cur := paging.New(queryInt(c, "page", 1), catalogPageSize)

	resorts, cur, err := h.upstream.ListResorts(c.Request().Context(), sess.Token, cur)
	if err != nil {
		h.log.Error("Error fetching resorts", err)
		h.flash(c, notify.SeverityError, "Failed to fetch resorts")
	}

	return h.render(c, http.StatusOK, "resorts.html", "Our Resorts", map[string]any{
		"Resorts": resorts,
		"Cursor":  cur,
	})
}

// AdminList renders the administrator's resort management page.
func (h *ResortHandler) AdminList(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	cur := paging.New(queryInt(c, "page", 1), adminResortPageSize)

	resorts, cur, err := h.upstream.ListResorts(c.Request().Context(), sess.Token, cur)
	if err != nil {
		h.log.Error("Error fetching resorts", err)
		h.flash(c, notify.SeverityError, "Failed to fetch resorts")
	}

	return h.render(c, http.StatusOK, "admin_resorts.html", "Manage Resorts", map[string]any{
		"Resorts": resorts,
		"Cursor":  cur,
	})
}

// ResortForm is the admin editor's form shape. The open-ended facility
// mapping arrives as two parallel slices, one row each.
type ResortForm struct {
	Name         string   `form:"name" validate:"required"`
	Description  string   `form:"description"`
	Price        float64  `form:"price" validate:"required,gt=0"`
	Image        string   `form:"image" validate:"omitempty,url"`
	Gallery      string   `form:"gallery"`
	Pool         bool     `form:"pool"`
	Turf         bool     `form:"turf"`
	FacilityKeys []string `form:"facility_key"`
	FacilityVals []string `form:"facility_val"`
}

func (f ResortForm) pairs() []resort.FacilityPair {
	pairs := make([]resort.FacilityPair, 0, len(f.FacilityKeys))
	for i, key := range f.FacilityKeys {
		val := i < len(f.FacilityVals) && f.FacilityVals[i] == "true"
		pairs = append(pairs, resort.FacilityPair{Key: strings.TrimSpace(key), Value: val})
	}
	return pairs
}

func (f ResortForm) toInput() upstream.ResortInput {
	var gallery []string
	for _, line := range strings.Split(f.Gallery, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			gallery = append(gallery, line)
		}
	}
	return upstream.ResortInput{
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Image:       f.Image,
		Gallery:     gallery,
		Pool:        f.Pool,
		Turf:        f.Turf,
		Facilities:  resort.CollapseFacilities(f.pairs()),
	}
}

func withSpareRows(pairs []resort.FacilityPair) []resort.FacilityPair {
	for i := 0; i < facilitySpareRows; i++ {
		pairs = append(pairs, resort.FacilityPair{})
	}
	return pairs
}

// NewForm renders an empty editor.
func (h *ResortHandler) NewForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "resort_form.html", "Add Resort", map[string]any{
		"Action":     "/admin/resorts",
		"Form":       ResortForm{},
		"Facilities": withSpareRows(nil),
		"Page":       1,
	})
}

// EditForm pre-fills the editor from the selected resort. The record is
// located by re-fetching the list page it was shown on; the API exposes
// no single-resort read.
func (h *ResortHandler) EditForm(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	id := c.Param("id")
	page := queryInt(c, "page", 1)

	resorts, _, err := h.upstream.ListResorts(c.Request().Context(), sess.Token, paging.New(page, adminResortPageSize))
	if err != nil {
		h.log.Error("Error fetching resorts", err)
		h.flash(c, notify.SeverityError, "Failed to fetch resorts")
		return c.Redirect(http.StatusFound, "/admin/resorts")
	}

	var found *resort.Resort
	for i := range resorts {
		if resorts[i].ID == id {
			found = &resorts[i]
			break
		}
	}
	if found == nil {
		h.flash(c, notify.SeverityError, "Resort not found")
		return c.Redirect(http.StatusFound, "/admin/resorts")
	}

	form := ResortForm{
		Name:        found.Name,
		Description: found.Description,
		Price:       found.Price,
		Image:       found.Image,
		Gallery:     strings.Join(found.Gallery, "\n"),
		Pool:        found.Pool,
		Turf:        found.Turf,
	}

	return h.render(c, http.StatusOK, "resort_form.html", "Edit Resort", map[string]any{
		"Action":     "/admin/resorts/" + found.ID,
		"EditingID":  found.ID,
		"Form":       form,
		"Facilities": withSpareRows(resort.FlattenFacilities(found.Facilities)),
		"Page":       page,
	})
}

// Create handles the editor submit for a new resort.
func (h *ResortHandler) Create(c echo.Context) error {
	return h.save(c, "", "Resort added successfully")
}

// Update handles the editor submit for an existing resort.
func (h *ResortHandler) Update(c echo.Context) error {
	return h.save(c, c.Param("id"), "Resort updated successfully")
}

func (h *ResortHandler) save(c echo.Context, id, successMsg string) error {
	sess := middleware.CurrentSession(c)
	page := queryInt(c, "page", 1)

	var form ResortForm
	if err := c.Bind(&form); err != nil {
		h.flash(c, notify.SeverityError, "Failed to save resort")
		return c.Redirect(http.StatusFound, "/admin/resorts")
	}

	action := "/admin/resorts"
	title := "Add Resort"
	if id != "" {
		action = "/admin/resorts/" + id
		title = "Edit Resort"
	}

	if err := c.Validate(form); err != nil {
		data := map[string]any{
			"Action":     action,
			"EditingID":  id,
			"Form":       form,
			"Facilities": withSpareRows(form.pairs()),
			"Page":       page,
		}
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			data["FieldErrors"] = ve.Format()
		}
		return h.render(c, http.StatusBadRequest, "resort_form.html", title, data)
	}

	var err error
	if id == "" {
		err = h.upstream.CreateResort(c.Request().Context(), sess.Token, form.toInput())
	} else {
		err = h.upstream.UpdateResort(c.Request().Context(), sess.Token, id, form.toInput())
	}
	if err != nil {
		h.log.Error("Error saving resort", err)
		h.flash(c, notify.SeverityError, "Failed to save resort")
		return h.render(c, http.StatusOK, "resort_form.html", title, map[string]any{
			"Action":     action,
			"EditingID":  id,
			"Form":       form,
			"Facilities": withSpareRows(form.pairs()),
			"Page":       page,
		})
	}

	h.flash(c, notify.SeveritySuccess, successMsg)
	return c.Redirect(http.StatusFound, fmt.Sprintf("/admin/resorts?page=%d", page))
}

// DeleteConfirm renders the explicit confirmation step before the
// destructive call.
func (h *ResortHandler) DeleteConfirm(c echo.Context) error {
	return h.render(c, http.StatusOK, "resort_delete.html", "Delete Resort", map[string]any{
		"ID":   c.Param("id"),
		"Name": c.QueryParam("name"),
		"Page": queryInt(c, "page", 1),
	})
}

// Delete issues the destructive call after confirmation.
func (h *ResortHandler) Delete(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	page, _ := strconv.Atoi(c.FormValue("page"))
	if page < 1 {
		page = 1
	}

	if err := h.upstream.DeleteResort(c.Request().Context(), sess.Token, c.Param("id")); err != nil {
		h.log.Error("Error deleting resort", err)
		h.flash(c, notify.SeverityError, "Failed to delete resort")
	} else {
		h.flash(c, notify.SeveritySuccess, "Resort deleted successfully")
	}
	return c.Redirect(http.StatusFound, fmt.Sprintf("/admin/resorts?page=%d", page))
}

func queryInt(c echo.Context, name string, def int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || v < 1 {
		return def
	}
	return v
}
