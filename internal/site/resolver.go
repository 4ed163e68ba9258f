package site

import (
	"embed"
	"html/template"
)

//go:embed templates
var templateFS embed.FS

// templateNames maps a tenant's template_id to one of the fixed layouts.
// Anything outside this map is treated as unknown and the visitor is sent
// back to the platform root.
var templateNames = map[int]string{
	1: "classic",
	2: "showcase",
	3: "story",
}

var layouts map[int]*template.Template

func init() {
	layouts = make(map[int]*template.Template, len(templateNames))
	for id, name := range templateNames {
		layouts[id] = template.Must(template.ParseFS(
			templateFS,
			"templates/"+name+"_layout.html",
			"templates/pages/*.html",
		))
	}
}

// Resolve returns the parsed template set and layout name for a tenant's
// template_id. ok is false when the id does not match a known layout.
func Resolve(templateID int) (tmpl *template.Template, name string, ok bool) {
	tmpl, ok = layouts[templateID]
	if !ok {
		return nil, "", false
	}
	return tmpl, templateNames[templateID], true
}
