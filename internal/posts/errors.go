package posts

import (
	"fmt"
	"strings"
)

// MissingFrontmatterError reports a document without title, description or date.
type MissingFrontmatterError struct {
	Path   string
	Fields []string
}

func (e *MissingFrontmatterError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("missing frontmatter in %s", e.Path)
	}
	return fmt.Sprintf("missing frontmatter in %s: %s", e.Path, strings.Join(e.Fields, ", "))
}

// InvalidDateError reports a date value that does not parse.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid post date: %s", e.Value)
}

// DuplicateSlugError reports two documents that resolve to the same slug.
type DuplicateSlugError struct {
	Slug  string
	Paths []string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("duplicate post slug %q: %s", e.Slug, strings.Join(e.Paths, ", "))
}
