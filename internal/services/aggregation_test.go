package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-tracker/internal/domain"
)

func entry(user, project, hours string) domain.Entry {
	return domain.Entry{
		UserName:        user,
		ProjectName:     project,
		TaskDescription: "work",
		HoursWorked:     decimal.RequireFromString(hours),
		EntryDate:       domain.NewDate(2024, time.January, 15),
	}
}

func TestTotalHours(t *testing.T) {
	agg := NewAggregator()

	assert.True(t, agg.TotalHours(nil).IsZero())

	entries := []domain.Entry{
		entry("alice", "website", "7.333"),
		entry("bob", "api", "0.01"),
	}
	total := agg.TotalHours(entries)
	assert.True(t, total.Equal(decimal.RequireFromString("7.343")))
}

func TestRoundHours(t *testing.T) {
	agg := NewAggregator()

	tests := []struct {
		input string
		want  string
	}{
		{"7.333", "7.33"},
		{"7.335", "7.34"},
		{"8", "8"},
		{"0.005", "0.01"},
	}

	for _, tt := range tests {
		got := agg.RoundHours(decimal.RequireFromString(tt.input))
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "round %s: got %s", tt.input, got)
	}
}

func TestBreakdownByProject(t *testing.T) {
	agg := NewAggregator()

	entries := []domain.Entry{
		entry("alice", "website", "2.00"),
		entry("bob", "api", "5.00"),
		entry("alice", "website", "1.50"),
		entry("carol", "infra", "3.50"),
	}

	breakdown := agg.BreakdownByProject(entries)
	require.Len(t, breakdown, 3)

	assert.Equal(t, "api", breakdown[0].ProjectName)
	assert.True(t, breakdown[0].TotalHours.Equal(decimal.RequireFromString("5.00")))
	assert.Equal(t, 1, breakdown[0].EntryCount)

	// website and infra both total 3.50; website was encountered first
	assert.Equal(t, "website", breakdown[1].ProjectName)
	assert.Equal(t, 2, breakdown[1].EntryCount)
	assert.Equal(t, "infra", breakdown[2].ProjectName)
}

func TestBreakdownByProjectExactKeys(t *testing.T) {
	agg := NewAggregator()

	// Names differing only by case or whitespace are distinct groups
	entries := []domain.Entry{
		entry("alice", "Website", "2.00"),
		entry("alice", "website", "1.00"),
		entry("alice", "website ", "0.50"),
	}

	breakdown := agg.BreakdownByProject(entries)
	assert.Len(t, breakdown, 3)
}

func TestBreakdownByUser(t *testing.T) {
	agg := NewAggregator()

	entries := []domain.Entry{
		entry("alice", "website", "1.00"),
		entry("bob", "website", "4.00"),
		entry("alice", "api", "2.00"),
	}

	breakdown := agg.BreakdownByUser(entries)
	require.Len(t, breakdown, 2)

	assert.Equal(t, "bob", breakdown[0].UserName)
	assert.Equal(t, "alice", breakdown[1].UserName)
	assert.True(t, breakdown[1].TotalHours.Equal(decimal.RequireFromString("3.00")))
	assert.Equal(t, 2, breakdown[1].EntryCount)
}

func TestBreakdownEmptyInput(t *testing.T) {
	agg := NewAggregator()

	projects := agg.BreakdownByProject(nil)
	users := agg.BreakdownByUser(nil)

	assert.NotNil(t, projects)
	assert.Empty(t, projects)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestBreakdownSumsMatchTotal(t *testing.T) {
	agg := NewAggregator()

	entries := []domain.Entry{
		entry("alice", "website", "1.11"),
		entry("bob", "api", "2.22"),
		entry("alice", "api", "3.33"),
		entry("carol", "website", "4.44"),
	}

	total := agg.TotalHours(entries)

	projectSum := decimal.Zero
	for _, b := range agg.BreakdownByProject(entries) {
		projectSum = projectSum.Add(b.TotalHours)
	}
	assert.True(t, total.Equal(projectSum))

	userSum := decimal.Zero
	for _, b := range agg.BreakdownByUser(entries) {
		userSum = userSum.Add(b.TotalHours)
	}
	assert.True(t, total.Equal(userSum))
}

func TestAverageHoursPerDay(t *testing.T) {
	agg := NewAggregator()

	tests := []struct {
		name  string
		total string
		start domain.Date
		end   domain.Date
		want  string
	}{
		{
			name:  "single day",
			total: "8",
			start: domain.NewDate(2024, time.January, 15),
			end:   domain.NewDate(2024, time.January, 15),
			want:  "8",
		},
		{
			name:  "full month from unrounded total",
			total: "7.333",
			start: domain.NewDate(2024, time.January, 1),
			end:   domain.NewDate(2024, time.January, 31),
			want:  "0.24",
		},
		{
			name:  "two days",
			total: "9",
			start: domain.NewDate(2024, time.January, 1),
			end:   domain.NewDate(2024, time.January, 2),
			want:  "4.5",
		},
		{
			name:  "zero total",
			total: "0",
			start: domain.NewDate(2024, time.January, 1),
			end:   domain.NewDate(2024, time.January, 31),
			want:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period := Period{StartDate: tt.start, EndDate: tt.end}
			got := agg.AverageHoursPerDay(decimal.RequireFromString(tt.total), period)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestAverageHoursPerDayInvertedPeriod(t *testing.T) {
	agg := NewAggregator()

	period := Period{
		StartDate: domain.NewDate(2024, time.January, 31),
		EndDate:   domain.NewDate(2024, time.January, 1),
	}
	got := agg.AverageHoursPerDay(decimal.RequireFromString("10"), period)
	assert.True(t, got.IsZero())
}

func TestPeriodDays(t *testing.T) {
	sameDay := Period{
		StartDate: domain.NewDate(2024, time.January, 15),
		EndDate:   domain.NewDate(2024, time.January, 15),
	}
	assert.Equal(t, 1, sameDay.Days())

	january := Period{
		StartDate: domain.NewDate(2024, time.January, 1),
		EndDate:   domain.NewDate(2024, time.January, 31),
	}
	assert.Equal(t, 31, january.Days())
}
