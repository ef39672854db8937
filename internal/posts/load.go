package posts

import (
	"fmt"
	"sort"
	"time"
)

// Loader turns the documents of a Source into a sorted Collection.
type Loader struct {
	Source Source
	// Root is stripped from document paths when deriving slugs.
	Root string
	// Ext is stripped from document paths; defaults to DefaultExt.
	Ext string
}

// Load runs a Loader over src with posts rooted at root.
func Load(src Source, root string) (*Collection, error) {
	l := &Loader{Source: src, Root: root}
	return l.Load()
}

type datedEntry struct {
	entry Entry
	at    time.Time
}

// Load lists, validates and normalizes every document. Any invalid document
// fails the whole load and no collection is returned.
func (l *Loader) Load() (*Collection, error) {
	ext := l.Ext
	if ext == "" {
		ext = DefaultExt
	}

	docs, err := l.Source.ListDocuments()
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	dated := make([]datedEntry, 0, len(docs))
	paths := make(map[string]string, len(docs))
	for _, doc := range docs {
		e, at, err := newEntry(doc, l.Root, ext)
		if err != nil {
			return nil, err
		}
		if prev, ok := paths[e.Slug]; ok {
			return nil, &DuplicateSlugError{Slug: e.Slug, Paths: []string{prev, doc.Path}}
		}
		paths[e.Slug] = doc.Path
		dated = append(dated, datedEntry{entry: e, at: at})
	}

	// Newest first; equal dates fall back to slug order.
	sort.Slice(dated, func(i, j int) bool {
		if !dated[i].at.Equal(dated[j].at) {
			return dated[i].at.After(dated[j].at)
		}
		return dated[i].entry.Slug < dated[j].entry.Slug
	})

	c := &Collection{
		Entries:   make([]Entry, len(dated)),
		Summaries: make([]Summary, len(dated)),
		bySlug:    make(map[string]int, len(dated)),
	}
	for i, d := range dated {
		c.Entries[i] = d.entry
		c.Summaries[i] = d.entry.Summary
		c.bySlug[d.entry.Slug] = i
	}
	return c, nil
}

func newEntry(doc Document, root, ext string) (Entry, time.Time, error) {
	fm := doc.Frontmatter
	if missing := missingFields(fm); len(missing) > 0 {
		return Entry{}, time.Time{}, &MissingFrontmatterError{Path: doc.Path, Fields: missing}
	}

	at, err := ParseDate(fm.Date)
	if err != nil {
		return Entry{}, time.Time{}, err
	}

	slug := Slug(doc.Path, root, ext)
	return Entry{
		Summary: Summary{
			Title:       fm.Title,
			Description: fm.Description,
			Date:        at.Format(DisplayLayout),
			DateISO:     fm.Date,
			Href:        HrefPrefix + slug,
			Slug:        slug,
			IsArchived:  IsArchived(slug),
			Links:       NormalizeLinks(fm.Links),
		},
		Content: doc.Body,
	}, at, nil
}

func missingFields(fm Frontmatter) []string {
	var missing []string
	if fm.Title == "" {
		missing = append(missing, "title")
	}
	if fm.Description == "" {
		missing = append(missing, "description")
	}
	if fm.Date == "" {
		missing = append(missing, "date")
	}
	return missing
}
