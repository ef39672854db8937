package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Defaults for every setting that has one.
const (
	DefaultSiteTitle  = "r1go.dev"
	DefaultOutputDir  = "public"
	DefaultContentDir = "content"
	DefaultPostsDir   = "posts"
	DefaultLayoutsDir = "layouts"
	DefaultStaticDir  = "static"
)

type Config struct {
	SiteTitle   string `mapstructure:"siteTitle"`
	Description string `mapstructure:"description"`
	Author      string `mapstructure:"author"`
	BaseURL     string `mapstructure:"baseURL"`
	OutputDir   string `mapstructure:"outputDir"`
	ContentDir  string `mapstructure:"contentDir"`
	// PostsDir is relative to ContentDir.
	PostsDir   string `mapstructure:"postsDir"`
	LayoutsDir string `mapstructure:"layoutsDir"`
	StaticDir  string `mapstructure:"staticDir"`
}

// Default returns a Config populated with the default values.
func Default() Config {
	return Config{
		SiteTitle:  DefaultSiteTitle,
		OutputDir:  DefaultOutputDir,
		ContentDir: DefaultContentDir,
		PostsDir:   DefaultPostsDir,
		LayoutsDir: DefaultLayoutsDir,
		StaticDir:  DefaultStaticDir,
	}
}

// Defaults returns the default values keyed by their config names.
func Defaults() map[string]any {
	d := Default()
	return map[string]any{
		"siteTitle":   d.SiteTitle,
		"description": d.Description,
		"author":      d.Author,
		"baseURL":     d.BaseURL,
		"outputDir":   d.OutputDir,
		"contentDir":  d.ContentDir,
		"postsDir":    d.PostsDir,
		"layoutsDir":  d.LayoutsDir,
		"staticDir":   d.StaticDir,
	}
}

// Validate rejects settings that would make a build destructive or impossible.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("outputDir must not be empty")
	}
	if c.ContentDir == "" {
		return errors.New("contentDir must not be empty")
	}
	if c.LayoutsDir == "" {
		return errors.New("layoutsDir must not be empty")
	}
	// The output directory is wiped on every build.
	out := filepath.Clean(c.OutputDir)
	for name, dir := range map[string]string{"contentDir": c.ContentDir, "layoutsDir": c.LayoutsDir, "staticDir": c.StaticDir} {
		if dir != "" && filepath.Clean(dir) == out {
			return fmt.Errorf("outputDir %q must differ from %s", c.OutputDir, name)
		}
	}
	if out == "." || out == string(filepath.Separator) {
		return fmt.Errorf("outputDir %q is not a safe build target", c.OutputDir)
	}
	return nil
}
