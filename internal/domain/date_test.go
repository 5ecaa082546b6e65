package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid date", "2024-01-15", false},
		{"valid leap day", "2024-02-29", false},
		{"wrong order", "15-01-2024", true},
		{"missing padding", "2024-1-5", true},
		{"not a date", "yesterday", true},
		{"empty", "", true},
		{"invalid day", "2024-01-32", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, date.String())
		})
	}
}

func TestDateComparisons(t *testing.T) {
	early := NewDate(2024, time.January, 1)
	late := NewDate(2024, time.January, 31)

	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.False(t, early.Equal(late))
	assert.True(t, early.Equal(NewDate(2024, time.January, 1)))
}

func TestDateDaysUntil(t *testing.T) {
	tests := []struct {
		name  string
		start Date
		end   Date
		want  int
	}{
		{"same day", NewDate(2024, time.January, 15), NewDate(2024, time.January, 15), 0},
		{"one day apart", NewDate(2024, time.January, 1), NewDate(2024, time.January, 2), 1},
		{"full month", NewDate(2024, time.January, 1), NewDate(2024, time.January, 31), 30},
		{"across leap day", NewDate(2024, time.February, 28), NewDate(2024, time.March, 1), 2},
		{"inverted", NewDate(2024, time.January, 31), NewDate(2024, time.January, 1), -30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.DaysUntil(tt.end))
		})
	}
}

func TestDateAddDays(t *testing.T) {
	date := NewDate(2024, time.January, 31)

	assert.Equal(t, "2024-02-01", date.AddDays(1).String())
	assert.Equal(t, "2024-01-01", date.AddDays(-30).String())
	assert.Equal(t, "2024-01-31", date.AddDays(0).String())
}

func TestDateOf(t *testing.T) {
	// A local time late in the evening maps to its UTC calendar date
	loc := time.FixedZone("UTC-5", -5*60*60)
	localEvening := time.Date(2024, time.January, 15, 23, 30, 0, 0, loc)

	assert.Equal(t, "2024-01-16", DateOf(localEvening).String())
}

func TestDateJSON(t *testing.T) {
	date := NewDate(2024, time.March, 7)

	data, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-07"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, date.Equal(decoded))

	var invalid Date
	assert.Error(t, json.Unmarshal([]byte(`"07/03/2024"`), &invalid))
	assert.Error(t, json.Unmarshal([]byte(`42`), &invalid))
}

func TestDateIsZero(t *testing.T) {
	var zero Date
	assert.True(t, zero.IsZero())
	assert.False(t, Today().IsZero())
}
