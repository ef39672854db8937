package posts

import (
	"strings"
	"time"
)

// DisplayLayout renders dates as "Jan 5, 2024".
const DisplayLayout = "Jan 2, 2006"

// Date-time layouts accepted once the value carries a time component.
// Values without a zone are read as UTC.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDate parses a frontmatter date. A value without a time component is
// taken as midnight UTC.
func ParseDate(raw string) (time.Time, error) {
	normalized := raw
	if !strings.Contains(raw, "T") {
		normalized = raw + "T00:00:00Z"
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &InvalidDateError{Value: raw}
}

// FormatDate returns the display form of a frontmatter date in UTC.
func FormatDate(raw string) (string, error) {
	t, err := ParseDate(raw)
	if err != nil {
		return "", err
	}
	return t.Format(DisplayLayout), nil
}
