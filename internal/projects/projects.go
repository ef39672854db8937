// Package projects holds the hard-coded list of projects shown on the home page.
package projects

import (
	"fmt"
	"net/url"
)

// Project is a showcased project.
type Project struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tech        []string `json:"tech" yaml:"tech"`
	Href        string   `json:"href" yaml:"href"`
	GitHub      string   `json:"github,omitempty" yaml:"github,omitempty"`
}

var projects = []Project{
	{
		Title:       "Budio",
		Description: "Budget planner and expense tracker for web and mobile.",
		Tech:        []string{"Next.js", "Convex", "TypeScript", "Polar"},
		Href:        "https://budio.r1go.dev",
	},
	{
		Title:       "r1go.dev",
		Description: "Personal site to showcase projects and write about learnings.",
		Tech:        []string{"Go", "Markdown"},
		Href:        "https://r1go.dev",
		GitHub:      "https://github.com/r1go/r1go.dev",
	},
}

// All returns a copy of the project list.
func All() []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		p.Tech = append([]string(nil), p.Tech...)
		out[i] = p
	}
	return out
}

// FaviconURL returns the favicon service URL for the host of href.
func FaviconURL(href string) (string, error) {
	u, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("parsing %q: %w", href, err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("no host in %q", href)
	}
	return "https://www.google.com/s2/favicons?domain=" + url.QueryEscape(u.Hostname()) + "&sz=64", nil
}
