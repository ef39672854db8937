package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jralvarenga/r1go.dev/internal/posts"
	"github.com/jralvarenga/r1go.dev/internal/render"
	"github.com/jralvarenga/r1go.dev/internal/site"
)

var (
	postsFormat   string
	postsArchived bool
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	dateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(14)
	slugStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	archivedStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Lists post summaries, newest first",
	Long: `The posts command loads and validates every post without writing any
output, then prints their summaries. It fails on the first post with missing
frontmatter or an unparseable date, like the build does.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := site.New(appConfig, logger).LoadPosts()
		if err != nil {
			return err
		}
		summaries := c.Summaries
		if !postsArchived {
			summaries = c.Current()
		}
		return printSummaries(cmd.OutOrStdout(), summaries, postsFormat)
	},
}

func printSummaries(w io.Writer, summaries []posts.Summary, format string) error {
	switch format {
	case "table":
		return printTable(w, summaries)
	case render.FormatJSON, render.FormatYAML:
		return render.WriteIndex(w, summaries, format)
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}

func printTable(w io.Writer, summaries []posts.Summary) error {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%d posts", len(summaries))))
	b.WriteString("\n")
	for _, s := range summaries {
		line := dateStyle.Render(s.Date) + " " + slugStyle.Render(s.Slug) + "  " + s.Title
		if s.IsArchived {
			line = archivedStyle.Render(line + " (archived)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func init() {
	postsCmd.Flags().StringVarP(&postsFormat, "format", "f", "table", "output format: table, json or yaml")
	postsCmd.Flags().BoolVar(&postsArchived, "archived", false, "include archived posts")
	rootCmd.AddCommand(postsCmd)
}
