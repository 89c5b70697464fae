// Package web carries the HTML templates for the server-rendered flows.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded template set.
// Handlers render pages by file name, e.g. "task_list.html".
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
