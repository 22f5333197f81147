package api

import (
	"html/template"
	"io"

	"resortfront/web"

	"github.com/labstack/echo/v4"
)

// Renderer serves the embedded page templates through echo's Renderer
// interface. Templates are parsed once at startup; a broken template is
// a boot failure, not a request failure.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
