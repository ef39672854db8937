package render

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jralvarenga/r1go.dev/internal/config"
	"github.com/jralvarenga/r1go.dev/internal/posts"
)

type rss struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	Description string  `xml:"description"`
	PubDate     string  `xml:"pubDate"`
	GUID        rssGUID `xml:"guid"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// AbsoluteURL joins the site base URL and a site-relative path.
func AbsoluteURL(baseURL, p string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(p, "/")
}

// PostGUID is the stable feed identifier of a post URL.
func PostGUID(postURL string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(postURL)).String()
}

// WriteFeed writes an RSS 2.0 feed of the non-archived summaries.
func WriteFeed(w io.Writer, cfg config.Config, summaries []posts.Summary, builtAt time.Time) error {
	feed := rss{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.SiteTitle,
			Link:        AbsoluteURL(cfg.BaseURL, "/"),
			Description: cfg.Description,
		},
	}
	if !builtAt.IsZero() {
		feed.Channel.LastBuildDate = builtAt.UTC().Format(time.RFC1123Z)
	}

	for _, s := range summaries {
		if s.IsArchived {
			continue
		}
		published, err := posts.ParseDate(s.DateISO)
		if err != nil {
			return fmt.Errorf("feed item %s: %w", s.Slug, err)
		}
		link := AbsoluteURL(cfg.BaseURL, s.Href)
		feed.Channel.Items = append(feed.Channel.Items, rssItem{
			Title:       s.Title,
			Link:        link,
			Description: s.Description,
			PubDate:     published.Format(time.RFC1123Z),
			GUID:        rssGUID{IsPermaLink: false, Value: PostGUID(link)},
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return fmt.Errorf("encoding feed: %w", err)
	}
	return enc.Flush()
}
