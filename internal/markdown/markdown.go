// Package markdown converts post bodies to HTML with goldmark.
package markdown

import (
	"bytes"
	"html/template"
	"io"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Converter renders GitHub flavoured markdown.
type Converter struct {
	md goldmark.Markdown
}

// New returns a Converter with GFM, auto heading IDs and hard wraps enabled.
func New() *Converter {
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithHardWraps(),
			),
		),
	}
}

// Convert writes the HTML rendering of src to w.
func (c *Converter) Convert(src []byte, w io.Writer) error {
	return c.md.Convert(src, w)
}

// Body returns a body that renders src on first use.
func (c *Converter) Body(src []byte) *Body {
	return &Body{conv: c, src: src}
}

// Body is a markdown document rendered lazily and at most once.
type Body struct {
	conv *Converter
	src  []byte

	once sync.Once
	html template.HTML
	err  error
}

// Source returns the raw markdown.
func (b *Body) Source() []byte {
	return b.src
}

// HTML renders the body. The result, or the error, is cached.
func (b *Body) HTML() (template.HTML, error) {
	b.once.Do(func() {
		var buf bytes.Buffer
		if err := b.conv.Convert(b.src, &buf); err != nil {
			b.err = err
			return
		}
		b.html = template.HTML(buf.String())
	})
	return b.html, b.err
}
