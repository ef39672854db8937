package render

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/jralvarenga/r1go.dev/internal/config"
	"github.com/jralvarenga/r1go.dev/internal/posts"
)

var layouts = fstest.MapFS{
	"base.html":            {Data: []byte(`<html>{{template "header.html" .}}{{block "content" .}}base{{end}}</html>`)},
	"partials/header.html": {Data: []byte(`<h1>{{.Title}}</h1>`)},
	"home.html":            {Data: []byte(`{{define "content"}}home:{{range .Items}}{{.}};{{end}}{{end}}`)},
	"list-posts.html":      {Data: []byte(`{{define "content"}}list:{{title .Section}}{{end}}`)},
	"notes.txt":            {Data: []byte(`ignored`)},
}

type page struct {
	Title   string
	Section string
	Items   []string
}

func TestParseLayoutsAndExecute(t *testing.T) {
	tpl, err := ParseLayouts(layouts, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"home.html", "list-posts.html"}, tpl.Names())
	assert.True(t, tpl.Has("home.html"))
	assert.False(t, tpl.Has("base.html"))

	var buf bytes.Buffer
	require.NoError(t, tpl.Execute(&buf, "home.html", page{Title: "Home", Items: []string{"a", "b"}}))
	assert.Equal(t, `<html><h1>Home</h1>home:a;b;</html>`, buf.String())

	// Layouts redefine the same block independently.
	buf.Reset()
	require.NoError(t, tpl.Execute(&buf, "list-posts.html", page{Title: "Blog", Section: "archive"}))
	assert.Equal(t, `<html><h1>Blog</h1>list:Archive</html>`, buf.String())
}

func TestExecuteFallsBackToBase(t *testing.T) {
	tpl, err := ParseLayouts(layouts, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tpl.Execute(&buf, "single-post.html", page{Title: "Post"}))
	assert.Equal(t, `<html><h1>Post</h1>base</html>`, buf.String())
}

func TestParseLayoutsRequiresBase(t *testing.T) {
	_, err := ParseLayouts(fstest.MapFS{"home.html": {Data: []byte(`x`)}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), BaseLayout)
}

func TestParseLayoutsReportsSyntaxErrors(t *testing.T) {
	_, err := ParseLayouts(fstest.MapFS{
		"base.html": {Data: []byte(`ok`)},
		"home.html": {Data: []byte(`{{define "content"}}`)},
	}, nil)
	assert.Error(t, err)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Archive", Title("archive"))
	assert.Equal(t, "Hello World", Title("hello-world"))
	assert.Equal(t, "Old Notes", Title("old_notes"))
}

func summaries() []posts.Summary {
	return []posts.Summary{
		{Title: "Hello", Description: "First", Date: "Jan 5, 2024", DateISO: "2024-01-05", Href: "/blog/hello", Slug: "hello",
			Links: []posts.Link{{Label: "Repo", URL: "https://github.com/r1go"}}},
		{Title: "Old", Description: "Archived", Date: "Mar 2, 2019", DateISO: "2019-03-02T08:00:00Z", Href: "/blog/archive/old", Slug: "archive/old", IsArchived: true},
	}
}

func TestWriteFeed(t *testing.T) {
	cfg := config.Default()
	cfg.SiteTitle = "r1go.dev"
	cfg.BaseURL = "https://r1go.dev/"
	cfg.Description = "Notes"

	var buf bytes.Buffer
	built := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, WriteFeed(&buf, cfg, summaries(), built))
	assert.True(t, strings.HasPrefix(buf.String(), xml.Header))

	var got rss
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "2.0", got.Version)
	assert.Equal(t, "r1go.dev", got.Channel.Title)
	assert.Equal(t, "https://r1go.dev/", got.Channel.Link)
	assert.Equal(t, built.Format(time.RFC1123Z), got.Channel.LastBuildDate)

	require.Len(t, got.Channel.Items, 1)
	item := got.Channel.Items[0]
	assert.Equal(t, "Hello", item.Title)
	assert.Equal(t, "https://r1go.dev/blog/hello", item.Link)
	assert.Equal(t, "Fri, 05 Jan 2024 00:00:00 +0000", item.PubDate)
	assert.False(t, item.GUID.IsPermaLink)
	assert.Equal(t, PostGUID("https://r1go.dev/blog/hello"), item.GUID.Value)
}

func TestPostGUIDIsStable(t *testing.T) {
	a := PostGUID("https://r1go.dev/blog/hello")
	assert.Equal(t, a, PostGUID("https://r1go.dev/blog/hello"))
	assert.NotEqual(t, a, PostGUID("https://r1go.dev/blog/other"))
}

func TestAbsoluteURL(t *testing.T) {
	assert.Equal(t, "https://r1go.dev/blog/x", AbsoluteURL("https://r1go.dev/", "/blog/x"))
	assert.Equal(t, "https://r1go.dev/blog/x", AbsoluteURL("https://r1go.dev", "blog/x"))
	assert.Equal(t, "/blog/x", AbsoluteURL("", "/blog/x"))
}

func TestWriteIndexJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIndex(&buf, summaries(), FormatJSON))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "hello", got[0]["slug"])
	assert.Equal(t, "2024-01-05", got[0]["dateISO"])
	assert.Contains(t, got[0], "links")
	assert.NotContains(t, got[1], "links")
	assert.Equal(t, true, got[1]["isArchived"])
}

func TestWriteIndexYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIndex(&buf, summaries(), FormatYAML))

	var got []posts.Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, summaries(), got)
}

func TestWriteIndexEmptyAndUnknown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIndex(&buf, nil, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())

	assert.Error(t, WriteIndex(&buf, nil, "toml"))
}

func TestFaviconFunc(t *testing.T) {
	assert.Equal(t, "https://www.google.com/s2/favicons?domain=r1go.dev&sz=64", favicon("https://r1go.dev/blog"))
	assert.Equal(t, "", favicon("/relative"))
}
