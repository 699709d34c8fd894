package static

import (
	_ "embed"
	"html/template"
)

// PageTemplate contains the embedded dashboard page template.
//
//go:embed page.html.tmpl
var PageTemplate string

// StyleCSS contains the embedded stylesheet, inlined into every page.
//
//go:embed style.css
var StyleCSS string

// Template parses the page template.
func Template() (*template.Template, error) {
	return template.New("page").Parse(PageTemplate)
}
