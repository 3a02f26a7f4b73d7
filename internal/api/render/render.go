// Package render wires html/template into Echo. Every page template is
// parsed together with the shared layout at startup; a missing or broken
// template fails construction, not the first request.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Renderer implements echo.Renderer over the embedded template set.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded templates. Each page file becomes a template
// set of its own combined with the layout, so pages can define blocks
// with the same name without colliding.
func New() (*Renderer, error) {
	entries, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, path := range entries {
		if path == layoutFile {
			continue
		}
		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".html")
		tmpl, err := template.ParseFS(templateFS, layoutFile, path)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", path, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("render: unknown template %q", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
