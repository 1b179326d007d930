package parse

import (
	"strings"
	"time"
)

// DisplayLayout is the canonical display form for every timestamp.
const DisplayLayout = "2006-01-02 15:04:05"

// UnknownTime is shown when a timestamp is absent or unparsable.
const UnknownTime = "Unknown"

// FormatMillis renders an epoch-millisecond timestamp in local time.
func FormatMillis(ms int64) string {
	if ms <= 0 {
		return UnknownTime
	}
	return time.UnixMilli(ms).Local().Format(DisplayLayout)
}

// FormatISO renders an ISO-8601 timestamp using the wall clock it was
// written with; the zone offset is dropped, not converted.
func FormatISO(s string) string {
	t := parseTimestamp(s)
	if t.IsZero() {
		return UnknownTime
	}
	return t.Format(DisplayLayout)
}

var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
