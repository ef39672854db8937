package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jralvarenga/r1go.dev/internal/site"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site from content, layouts, and static assets",
	Long: `The build command loads the Markdown posts under the content directory,
validates their frontmatter, renders them with the layouts directory (base.html
plus partials), copies static assets and writes the site, an RSS feed and a
JSON post index to the configured output directory (default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := site.New(appConfig, logger).Build()
		return err
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
