// Package views holds the server-rendered pages. Templates are embedded so
// the binary is self-contained.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var files embed.FS

var tmpl = template.Must(template.ParseFS(files, "templates/*.html"))

// Render executes the named template into a buffer first so a template
// failure becomes a clean 500 instead of a half-written page.
func Render(w http.ResponseWriter, name string, data any, statusCode int) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing %s to response: %w", name, err)
	}

	return nil
}
