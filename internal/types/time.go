package types

import "time"

// timestampLayouts are tried in order when reading ISO-8601 strings from clients
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp or date. Date-only and zone-less
// values are read as UTC.
func ParseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseTimestampPtr returns nil for empty or unparseable values
func ParseTimestampPtr(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, ok := ParseTimestamp(value)
	if !ok {
		return nil
	}
	return &t
}

// FormatTimestamp renders an instant in UTC without losing precision
func FormatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
