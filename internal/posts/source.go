package posts

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/jralvarenga/r1go.dev/internal/markdown"
)

// FSSource discovers markdown documents under a directory of an fs.FS.
type FSSource struct {
	FS       fs.FS
	Root     string
	Ext      string
	Markdown *markdown.Converter
}

// NewFSSource returns a source reading posts from root in fsys.
func NewFSSource(fsys fs.FS, root string, conv *markdown.Converter) *FSSource {
	return &FSSource{FS: fsys, Root: root, Ext: DefaultExt, Markdown: conv}
}

// ListDocuments walks Root recursively and parses the frontmatter of every
// file carrying Ext. A missing Root holds no documents.
func (s *FSSource) ListDocuments() ([]Document, error) {
	if _, err := fs.Stat(s.FS, s.Root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	ext := strings.ToLower(s.Ext)
	if ext == "" {
		ext = DefaultExt
	}
	conv := s.Markdown
	if conv == nil {
		conv = markdown.New()
	}

	var docs []Document
	err := fs.WalkDir(s.FS, s.Root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error accessing path '%s': %w", path, walkErr)
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ext) {
			return nil
		}

		data, err := fs.ReadFile(s.FS, path)
		if err != nil {
			return fmt.Errorf("failed to read file '%s': %w", path, err)
		}

		var fm Frontmatter
		body, err := frontmatter.Parse(bytes.NewReader(data), &fm)
		if err != nil {
			return fmt.Errorf("failed to parse frontmatter of '%s': %w", path, err)
		}

		docs = append(docs, Document{
			Path:        path,
			Frontmatter: fm,
			Body:        conv.Body(body),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}
