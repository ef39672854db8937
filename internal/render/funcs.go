package render

import (
	"html/template"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jralvarenga/r1go.dev/internal/projects"
)

// Funcs returns the helpers available to every layout.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"favicon": favicon,
		"title":   Title,
		"join":    strings.Join,
		"year":    func(t time.Time) int { return t.UTC().Year() },
		"rfc3339": func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
	}
}

// Title turns a slug segment such as "archive" or "hello-world" into a
// heading ("Archive", "Hello World").
func Title(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return cases.Title(language.English).String(s)
}

// favicon yields an empty string for links without a host.
func favicon(href string) string {
	u, err := projects.FaviconURL(href)
	if err != nil {
		return ""
	}
	return u
}
