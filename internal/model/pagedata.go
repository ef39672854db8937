package model

import "github.com/jralvarenga/r1go.dev/internal/posts"

// PageData is the context every layout is executed with.
type PageData struct {
	Site        *SiteData
	Title       string
	Description string
	// Path is the page's URL path, e.g. "/blog/hello".
	Path      string
	Entry     *posts.Entry
	Summaries []posts.Summary
}
