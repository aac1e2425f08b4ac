package models

import (
	"fmt"
	"time"
)

// TimestampLayout is the on-disk form of created_at/updated_at: UTC with
// millisecond precision and a fixed width, so text order equals time order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// sqliteTimestampLayout is what SQLite's CURRENT_TIMESTAMP default produces.
const sqliteTimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp reads a stored timestamp. Besides TimestampLayout it
// accepts SQLite's CURRENT_TIMESTAMP form and RFC 3339.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{TimestampLayout, sqliteTimestampLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
