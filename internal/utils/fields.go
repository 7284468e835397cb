package utils

import (
	"strings"
	"time"
)

// SplitName derives first/last name from a combined "name" field. Everything
// after the first space belongs to the last name.
func SplitName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	parts := strings.SplitN(name, " ", 2)
	first = parts[0]
	if len(parts) == 2 {
		last = strings.TrimSpace(parts[1])
	}
	return first, last
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParseDate tolerates date-only and full-timestamp forms. Unparseable input
// yields nil so callers can treat the value as absent rather than failing.
func ParseDate(raw string, loc *time.Location) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return &t
		}
	}
	return nil
}
