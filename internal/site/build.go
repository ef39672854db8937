// Package site builds the static website from posts, layouts and static assets.
package site

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jralvarenga/r1go.dev/internal/config"
	"github.com/jralvarenga/r1go.dev/internal/markdown"
	"github.com/jralvarenga/r1go.dev/internal/model"
	"github.com/jralvarenga/r1go.dev/internal/posts"
	"github.com/jralvarenga/r1go.dev/internal/render"
)

// Layout names looked up in the layouts directory.
const (
	HomeLayout   = "home.html"
	ListLayout   = "list-posts.html"
	SingleLayout = "single-post.html"
)

// Output files written next to the pages.
const (
	FeedFile  = "rss.xml"
	IndexFile = "posts.json"
)

// RecentPosts is the number of posts listed on the home page.
const RecentPosts = 5

// Builder runs the build pipeline for one configuration.
type Builder struct {
	Config   config.Config
	Log      *slog.Logger
	Markdown *markdown.Converter
	// Now stamps the build; defaults to time.Now.
	Now func() time.Time
}

// New returns a Builder for cfg.
func New(cfg config.Config, log *slog.Logger) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{Config: cfg, Log: log, Markdown: markdown.New(), Now: time.Now}
}

// LoadPosts loads the post collection from the content directory.
func (b *Builder) LoadPosts() (*posts.Collection, error) {
	postsDir := b.Config.PostsDir
	if postsDir == "" {
		postsDir = posts.DefaultRoot
	}
	src := posts.NewFSSource(os.DirFS(b.Config.ContentDir), postsDir, b.Markdown)
	c, err := posts.Load(src, postsDir)
	if err != nil {
		return nil, fmt.Errorf("loading posts from %s: %w", filepath.Join(b.Config.ContentDir, postsDir), err)
	}
	b.Log.Info("loaded posts", "count", len(c.Entries), "archived", len(c.Archived()))
	return c, nil
}

// Build writes the whole site to the output directory and returns the data
// it was rendered from. Posts and layouts are loaded before the output
// directory is cleaned.
func (b *Builder) Build() (*model.SiteData, error) {
	cfg := b.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	b.Log.Info("starting build", "output", cfg.OutputDir, "baseURL", cfg.BaseURL, "title", cfg.SiteTitle)

	collection, err := b.LoadPosts()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(cfg.LayoutsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("layouts directory '%s' not found", cfg.LayoutsDir)
	}
	tpl, err := render.ParseLayouts(os.DirFS(cfg.LayoutsDir), b.Log)
	if err != nil {
		return nil, err
	}

	if err := os.RemoveAll(cfg.OutputDir); err != nil {
		return nil, fmt.Errorf("failed to remove output directory '%s': %w", cfg.OutputDir, err)
	}
	if err := os.MkdirAll(cfg.OutputDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory '%s': %w", cfg.OutputDir, err)
	}

	if cfg.StaticDir != "" {
		if _, err := os.Stat(cfg.StaticDir); err == nil {
			if err := copyDirContents(cfg.StaticDir, cfg.OutputDir); err != nil {
				return nil, fmt.Errorf("failed to copy static assets: %w", err)
			}
			b.Log.Debug("copied static assets", "from", cfg.StaticDir)
		} else {
			b.Log.Debug("static directory not found, skipping copy", "dir", cfg.StaticDir)
		}
	}

	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	site := model.NewSiteData(cfg, collection, now())

	if err := b.writePages(tpl, site); err != nil {
		return nil, err
	}
	if err := b.writeFile(FeedFile, func(w io.Writer) error {
		return render.WriteFeed(w, cfg, site.Summaries, site.BuiltAt)
	}); err != nil {
		return nil, err
	}
	if err := b.writeFile(IndexFile, func(w io.Writer) error {
		return render.WriteIndex(w, site.Summaries, render.FormatJSON)
	}); err != nil {
		return nil, err
	}

	b.Log.Info("build completed", "posts", len(site.Posts), "output", cfg.OutputDir)
	return site, nil
}

type page struct {
	layout string
	data   model.PageData
}

func (b *Builder) writePages(tpl *render.Templates, site *model.SiteData) error {
	recent := site.Current
	if len(recent) > RecentPosts {
		recent = recent[:RecentPosts]
	}
	pages := []page{
		{HomeLayout, model.PageData{Site: site, Title: site.Config.SiteTitle, Description: site.Config.Description, Path: "/", Summaries: recent}},
		{ListLayout, model.PageData{Site: site, Title: "Blog", Path: "/blog", Summaries: site.Current}},
	}

	// A post whose slug is "archive" owns /blog/archive.
	if _, ok := site.Post("archive"); ok {
		b.Log.Warn("post 'archive' replaces the archive listing page")
	} else {
		pages = append(pages, page{ListLayout, model.PageData{Site: site, Title: "Archive", Path: posts.HrefPrefix + "archive", Summaries: site.Archived}})
	}

	for i := range site.Posts {
		entry := &site.Posts[i]
		pages = append(pages, page{SingleLayout, model.PageData{Site: site, Title: entry.Title, Description: entry.Description, Path: entry.Href, Entry: entry}})
	}

	for _, p := range pages {
		rel := filepath.Join(filepath.FromSlash(p.data.Path), "index.html")
		if err := b.writeFile(rel, func(w io.Writer) error {
			return tpl.Execute(w, p.layout, p.data)
		}); err != nil {
			return err
		}
		b.Log.Debug("generated page", "path", p.data.Path, "layout", p.layout)
	}
	return nil
}

// writeFile renders into memory before creating the output file.
func (b *Builder) writeFile(rel string, fill func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := fill(&buf); err != nil {
		return fmt.Errorf("rendering %s: %w", rel, err)
	}
	out := filepath.Join(b.Config.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(out), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for '%s': %w", out, err)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write '%s': %w", out, err)
	}
	return nil
}
