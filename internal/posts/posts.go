// Package posts loads blog posts from a content source and normalizes their
// metadata into entries and summaries that page templates can consume.
package posts

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

const (
	// DefaultRoot is the directory, relative to the content root, holding posts.
	DefaultRoot = "posts"
	// DefaultExt is the file extension of post documents.
	DefaultExt = ".md"
	// HrefPrefix is prepended to a slug to build the post's canonical path.
	HrefPrefix = "/blog/"

	archiveSlug = "archive"
)

// Link is an auxiliary link attached to a post.
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Frontmatter is the raw metadata block of a document. Links is left untyped
// so malformed shapes can be dropped instead of failing the decode.
type Frontmatter struct {
	Title       string `yaml:"title" toml:"title" json:"title"`
	Description string `yaml:"description" toml:"description" json:"description"`
	Date        string `yaml:"date" toml:"date" json:"date"`
	Links       any    `yaml:"links" toml:"links" json:"links"`
}

// Body is a renderable document body. The loader never inspects it.
type Body interface {
	HTML() (template.HTML, error)
}

// Document is a raw content unit as discovered by a Source.
type Document struct {
	Path        string
	Frontmatter Frontmatter
	Body        Body
}

// Source lists the documents of a content root.
type Source interface {
	ListDocuments() ([]Document, error)
}

// Summary is the body-free view of a post, safe to serialize.
type Summary struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Date        string `json:"date" yaml:"date"`
	DateISO     string `json:"dateISO" yaml:"dateISO"`
	Href        string `json:"href" yaml:"href"`
	Slug        string `json:"slug" yaml:"slug"`
	IsArchived  bool   `json:"isArchived" yaml:"isArchived"`
	Links       []Link `json:"links,omitempty" yaml:"links,omitempty"`
}

// Entry is a validated post together with its renderable body.
type Entry struct {
	Summary
	Content Body
}

// Collection holds the loaded posts, newest first.
type Collection struct {
	Entries   []Entry
	Summaries []Summary

	bySlug map[string]int
}

// Entry returns the entry with the given slug.
func (c *Collection) Entry(slug string) (Entry, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Entry{}, false
	}
	return c.Entries[i], true
}

// Current returns the summaries of posts outside the archive.
func (c *Collection) Current() []Summary {
	return c.filter(false)
}

// Archived returns the summaries of archived posts.
func (c *Collection) Archived() []Summary {
	return c.filter(true)
}

func (c *Collection) filter(archived bool) []Summary {
	out := make([]Summary, 0, len(c.Summaries))
	for _, s := range c.Summaries {
		if s.IsArchived == archived {
			out = append(out, s)
		}
	}
	return out
}

// Slug derives a post identifier from a document path by stripping the
// content root and the file extension. Sub-directories are kept.
func Slug(docPath, root, ext string) string {
	slug := strings.TrimPrefix(docPath, strings.TrimSuffix(root, "/")+"/")
	if strings.HasSuffix(strings.ToLower(slug), strings.ToLower(ext)) {
		slug = slug[:len(slug)-len(ext)]
	}
	return slug
}

// IsArchived reports whether a slug lives under the archive section.
func IsArchived(slug string) bool {
	return slug == archiveSlug || strings.HasPrefix(slug, archiveSlug+"/")
}

// NormalizeLinks keeps the link items that carry both a label and a url.
// Anything that is not a list yields nil.
func NormalizeLinks(v any) []Link {
	var items []any
	switch list := v.(type) {
	case []any:
		items = list
	case []map[string]any:
		for _, m := range list {
			items = append(items, m)
		}
	case []Link:
		for _, l := range list {
			items = append(items, l)
		}
	default:
		return nil
	}

	links := make([]Link, 0, len(items))
	for _, item := range items {
		label, url := linkField(item, "label"), linkField(item, "url")
		if label == "" || url == "" {
			continue
		}
		links = append(links, Link{Label: label, URL: url})
	}
	return links
}

func linkField(item any, key string) string {
	var v any
	switch m := item.(type) {
	case map[any]any:
		v = m[key]
	case map[string]any:
		v = m[key]
	case map[string]string:
		v = m[key]
	case Link:
		if key == "label" {
			v = m.Label
		} else {
			v = m.URL
		}
	}
	return linkText(v)
}

// linkText renders a scalar link field. Empty strings, false, zero and NaN
// count as absent, as do nested maps and lists.
func linkText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		if s := fmt.Sprint(x); s != "0" {
			return s
		}
	case float32:
		if x != 0 && !math.IsNaN(float64(x)) {
			return fmt.Sprint(x)
		}
	case float64:
		if x != 0 && !math.IsNaN(x) {
			return fmt.Sprint(x)
		}
	}
	return ""
}
