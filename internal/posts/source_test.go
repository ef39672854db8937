package posts

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jralvarenga/r1go.dev/internal/markdown"
)

const helloPost = `---
title: Hello
description: First post
date: 2024-01-05
links:
  - label: Source
    url: https://github.com/r1go/r1go.dev
  - label: ""
    url: https://example.com/empty
  - url: https://example.com/nolabel
---
# Hello

Some *markdown*.
`

const oldPost = `---
title: "Old post"
description: "From the archive"
date: "2019-03-02T08:00:00Z"
---
Old content.
`

func TestFSSourceListDocuments(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/hello.md":            {Data: []byte(helloPost)},
		"posts/archive/old-post.md": {Data: []byte(oldPost)},
		"posts/notes.txt":           {Data: []byte("ignored")},
		"pages/about.md":            {Data: []byte(oldPost)},
	}

	src := NewFSSource(fsys, "posts", markdown.New())
	docs, err := src.ListDocuments()
	require.NoError(t, err)
	require.Len(t, docs, 2)

	byPath := map[string]Document{}
	for _, d := range docs {
		byPath[d.Path] = d
	}

	hello, ok := byPath["posts/hello.md"]
	require.True(t, ok)
	assert.Equal(t, "Hello", hello.Frontmatter.Title)
	assert.Equal(t, "First post", hello.Frontmatter.Description)
	assert.Equal(t, "2024-01-05", hello.Frontmatter.Date)

	html, err := hello.Body.HTML()
	require.NoError(t, err)
	assert.Contains(t, string(html), `<h1 id="hello">Hello</h1>`)
	assert.Contains(t, string(html), "<em>markdown</em>")

	old, ok := byPath["posts/archive/old-post.md"]
	require.True(t, ok)
	assert.Equal(t, "2019-03-02T08:00:00Z", old.Frontmatter.Date)
}

func TestFSSourceThroughLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/hello.md":            {Data: []byte(helloPost)},
		"posts/archive/old-post.md": {Data: []byte(oldPost)},
	}

	c, err := Load(NewFSSource(fsys, "posts", nil), "posts")
	require.NoError(t, err)
	require.Len(t, c.Entries, 2)

	assert.Equal(t, "hello", c.Entries[0].Slug)
	assert.Equal(t, "Jan 5, 2024", c.Entries[0].Date)
	assert.Equal(t, []Link{{Label: "Source", URL: "https://github.com/r1go/r1go.dev"}}, c.Entries[0].Links)

	assert.Equal(t, "archive/old-post", c.Entries[1].Slug)
	assert.True(t, c.Entries[1].IsArchived)
	assert.Equal(t, "Mar 2, 2019", c.Entries[1].Date)
	assert.Nil(t, c.Entries[1].Links)
}

func TestFSSourceMissingFrontmatter(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/bare.md": {Data: []byte("# No frontmatter here\n")},
	}

	_, err := Load(NewFSSource(fsys, "posts", nil), "posts")
	var mfe *MissingFrontmatterError
	require.True(t, errors.As(err, &mfe))
	assert.Equal(t, "posts/bare.md", mfe.Path)
	assert.Equal(t, []string{"title", "description", "date"}, mfe.Fields)
}

func TestFSSourceMissingRoot(t *testing.T) {
	fsys := fstest.MapFS{"pages/about.md": {Data: []byte(oldPost)}}

	docs, err := NewFSSource(fsys, "posts", nil).ListDocuments()
	require.NoError(t, err)
	assert.Empty(t, docs)

	c, err := Load(NewFSSource(fsys, "posts", nil), "posts")
	require.NoError(t, err)
	assert.Empty(t, c.Entries)
	assert.Empty(t, c.Summaries)
}

func TestFSSourceRootIsFile(t *testing.T) {
	fsys := fstest.MapFS{"posts": {Data: []byte("not a directory")}}

	docs, err := NewFSSource(fsys, "posts", nil).ListDocuments()
	require.NoError(t, err)
	assert.Empty(t, docs)
}
