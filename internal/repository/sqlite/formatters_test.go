package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestampForDB(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	local := time.Date(2024, time.January, 15, 14, 30, 45, 0, loc)

	formatted := FormatTimestampForDB(local)
	assert.Equal(t, "2024-01-15T12:30:45Z", formatted)
}

func TestParseTimestampFromDB(t *testing.T) {
	parsed, err := ParseTimestampFromDB("2024-01-15T12:30:45Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 15, 12, 30, 45, 0, time.UTC), parsed.UTC())

	_, err = ParseTimestampFromDB("2024-01-15 12:30:45")
	assert.Error(t, err)
}

func TestTimestampRoundTrip(t *testing.T) {
	original := time.Now().UTC().Truncate(time.Second)

	parsed, err := ParseTimestampFromDB(FormatTimestampForDB(original))
	require.NoError(t, err)
	assert.True(t, original.Equal(parsed))
}
