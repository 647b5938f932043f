// Package view bundles the HTML templates rendered by gin.
package view

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded templates. Names are the file base names,
// e.g. "users.html".
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(files, "templates/*.html"))
}
