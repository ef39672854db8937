package model

import (
	"time"

	"github.com/jralvarenga/r1go.dev/internal/config"
	"github.com/jralvarenga/r1go.dev/internal/posts"
	"github.com/jralvarenga/r1go.dev/internal/projects"
)

// SiteData holds all site-wide data, including configuration and content.
type SiteData struct {
	Config    config.Config
	Posts     []posts.Entry
	Summaries []posts.Summary
	Current   []posts.Summary
	Archived  []posts.Summary
	Projects  []projects.Project
	BuiltAt   time.Time

	collection *posts.Collection
}

// NewSiteData assembles site data from a loaded post collection.
func NewSiteData(cfg config.Config, c *posts.Collection, builtAt time.Time) *SiteData {
	return &SiteData{
		Config:     cfg,
		Posts:      c.Entries,
		Summaries:  c.Summaries,
		Current:    c.Current(),
		Archived:   c.Archived(),
		Projects:   projects.All(),
		BuiltAt:    builtAt,
		collection: c,
	}
}

// Post looks a post up by slug.
func (s *SiteData) Post(slug string) (posts.Entry, bool) {
	if s.collection == nil {
		return posts.Entry{}, false
	}
	return s.collection.Entry(slug)
}
