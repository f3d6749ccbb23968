package hipchat

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts are tried in order. Fractional seconds are accepted by
// time.Parse after any seconds element, so none of the layouts spell them
// out. Naive forms are taken as UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp converts a HipChat history timestamp to integer Unix
// seconds. A trailing "UTC" token is ignored, and the fractional part is
// truncated, not rounded.
func ParseTimestamp(s string) (int64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty timestamp")
	}
	if fields[len(fields)-1] == "UTC" {
		fields = fields[:len(fields)-1]
	}
	candidate := strings.Join(fields, " ")

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, candidate); err == nil {
			return t.Unix(), nil
		}
	}
	return 0, fmt.Errorf("unrecognized timestamp %q", s)
}
