package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/jralvarenga/r1go.dev/internal/posts"
)

// Index formats understood by WriteIndex.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// WriteIndex serializes summaries. Post bodies are never part of the output.
func WriteIndex(w io.Writer, summaries []posts.Summary, format string) error {
	if summaries == nil {
		summaries = []posts.Summary{}
	}
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	case FormatYAML, "yml":
		out, err := yaml.Marshal(summaries)
		if err != nil {
			return fmt.Errorf("encoding yaml index: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown index format %q", format)
	}
}
