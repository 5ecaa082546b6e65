package sqlite

import (
	"time"
)

// FormatTimestampForDB formats a timestamp as an RFC3339 UTC string for
// consistent database storage.
func FormatTimestampForDB(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseTimestampFromDB parses an RFC3339 formatted timestamp string from the database
func ParseTimestampFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
