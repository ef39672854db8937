// Package render turns site data into HTML pages, an RSS feed and a
// machine-readable post index.
package render

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"sort"
	"strings"
)

const (
	// BaseLayout is the entry point every page executes.
	BaseLayout = "base.html"

	partialsDir = "partials"
)

// Templates holds one template set per page layout. Each set is base.html
// plus the partials plus the layout itself, so layouts may redefine the same
// blocks without overwriting one another.
type Templates struct {
	base  *template.Template
	pages map[string]*template.Template
	log   *slog.Logger
}

// ParseLayouts loads every .html file of fsys. base.html must sit at the root;
// files under partials/ are shared by every page.
func ParseLayouts(fsys fs.FS, log *slog.Logger) (*Templates, error) {
	if log == nil {
		log = slog.Default()
	}

	var basePath string
	var partials, layouts []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".html") {
			return nil
		}
		switch {
		case p == BaseLayout:
			basePath = p
		case strings.HasPrefix(p, partialsDir+"/"):
			partials = append(partials, p)
		default:
			layouts = append(layouts, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find layout files: %w", err)
	}
	if basePath == "" {
		return nil, fmt.Errorf("%s not found at the root of the layouts directory", BaseLayout)
	}

	base, err := template.New(BaseLayout).Funcs(Funcs()).ParseFS(fsys, append([]string{basePath}, partials...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s and partials: %w", BaseLayout, err)
	}

	t := &Templates{base: base, pages: make(map[string]*template.Template, len(layouts)), log: log}
	for _, p := range layouts {
		set, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone base layout for %s: %w", p, err)
		}
		if _, err := set.ParseFS(fsys, p); err != nil {
			return nil, fmt.Errorf("failed to parse layout %s: %w", p, err)
		}
		t.pages[p] = set
	}
	log.Debug("parsed layouts", "base", basePath, "partials", len(partials), "layouts", len(layouts))
	return t, nil
}

// Has reports whether a page layout exists. Layouts are named by their path
// inside the layouts directory, e.g. "home.html".
func (t *Templates) Has(name string) bool {
	_, ok := t.pages[name]
	return ok
}

// Names returns the page layouts in lexical order.
func (t *Templates) Names() []string {
	names := make([]string, 0, len(t.pages))
	for n := range t.pages {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Execute renders data with the named layout. A missing layout falls back to
// base.html alone.
func (t *Templates) Execute(w io.Writer, layout string, data any) error {
	set, ok := t.pages[layout]
	if !ok {
		t.log.Warn("layout not found, using base layout", "layout", layout, "fallback", BaseLayout)
		set = t.base
	}
	if err := set.ExecuteTemplate(w, BaseLayout, data); err != nil {
		return fmt.Errorf("failed to execute layout '%s': %w", layout, err)
	}
	return nil
}
