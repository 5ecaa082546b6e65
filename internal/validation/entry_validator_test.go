package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-tracker/internal/domain"
)

func validCreationArgs() (string, string, string, decimal.Decimal, domain.Date) {
	return "alice", "website", "Fix login bug",
		decimal.RequireFromString("7.5"), domain.NewDate(2024, time.January, 15)
}

func TestValidateEntryForCreationValid(t *testing.T) {
	ev := NewEntryValidator()

	user, project, task, hours, date := validCreationArgs()
	assert.NoError(t, ev.ValidateEntryForCreation(user, project, task, hours, date))
}

func TestValidateEntryForCreationInvalid(t *testing.T) {
	ev := NewEntryValidator()
	date := domain.NewDate(2024, time.January, 15)
	hours := decimal.RequireFromString("7.5")

	tests := []struct {
		name     string
		validate func() error
		field    string
	}{
		{
			name: "empty user name",
			validate: func() error {
				return ev.ValidateEntryForCreation("", "website", "Work", hours, date)
			},
			field: "user_name",
		},
		{
			name: "whitespace project name",
			validate: func() error {
				return ev.ValidateEntryForCreation("alice", "   ", "Work", hours, date)
			},
			field: "project_name",
		},
		{
			name: "empty task description",
			validate: func() error {
				return ev.ValidateEntryForCreation("alice", "website", "", hours, date)
			},
			field: "task_description",
		},
		{
			name: "zero hours",
			validate: func() error {
				return ev.ValidateEntryForCreation("alice", "website", "Work", decimal.Zero, date)
			},
			field: "hours_worked",
		},
		{
			name: "negative hours",
			validate: func() error {
				return ev.ValidateEntryForCreation("alice", "website", "Work", decimal.RequireFromString("-0.5"), date)
			},
			field: "hours_worked",
		},
		{
			name: "three decimal places",
			validate: func() error {
				return ev.ValidateEntryForCreation("alice", "website", "Work", decimal.RequireFromString("7.333"), date)
			},
			field: "hours_worked",
		},
		{
			name: "exceeds daily maximum",
			validate: func() error {
				return ev.ValidateEntryForCreation("alice", "website", "Work", decimal.RequireFromString("25"), date)
			},
			field: "hours_worked",
		},
		{
			name: "name too long",
			validate: func() error {
				return ev.ValidateEntryForCreation(strings.Repeat("a", 256), "website", "Work", hours, date)
			},
			field: "user_name",
		},
		{
			name: "zero date",
			validate: func() error {
				return ev.ValidateEntryForCreation("alice", "website", "Work", hours, domain.Date{})
			},
			field: "entry_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validate()
			require.Error(t, err)

			validationErr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.NotEmpty(t, validationErr.GetFieldErrors(tt.field),
				"expected a field error for %s", tt.field)
		})
	}
}

func TestValidateEntryForCreationBoundaryHours(t *testing.T) {
	ev := NewEntryValidator()
	date := domain.NewDate(2024, time.January, 15)

	assert.NoError(t, ev.ValidateEntryForCreation("alice", "website", "Work", decimal.RequireFromString("0.01"), date))
	assert.NoError(t, ev.ValidateEntryForCreation("alice", "website", "Work", decimal.RequireFromString("24"), date))
}

func TestValidateEntryForCreationAccumulatesErrors(t *testing.T) {
	ev := NewEntryValidator()

	err := ev.ValidateEntryForCreation("", "", "", decimal.Zero, domain.Date{})
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.GreaterOrEqual(t, len(validationErr.Errors), 5)
}

func TestValidateEntryPatch(t *testing.T) {
	ev := NewEntryValidator()

	hours := decimal.RequireFromString("8")
	assert.NoError(t, ev.ValidateEntryPatch(1, domain.EntryPatch{HoursWorked: &hours}))

	// An empty patch passes here; requiring at least one field is the caller's rule
	assert.NoError(t, ev.ValidateEntryPatch(1, domain.EntryPatch{}))

	badHours := decimal.RequireFromString("-1")
	assert.Error(t, ev.ValidateEntryPatch(1, domain.EntryPatch{HoursWorked: &badHours}))

	empty := ""
	assert.Error(t, ev.ValidateEntryPatch(1, domain.EntryPatch{UserName: &empty}))

	assert.Error(t, ev.ValidateEntryPatch(0, domain.EntryPatch{HoursWorked: &hours}))
}

func TestValidateFilter(t *testing.T) {
	ev := NewEntryValidator()

	assert.NoError(t, ev.ValidateFilter(domain.EntryFilter{}))

	user := "alice"
	start := domain.NewDate(2024, time.January, 1)
	end := domain.NewDate(2024, time.January, 31)
	assert.NoError(t, ev.ValidateFilter(domain.EntryFilter{UserName: &user, StartDate: &start, EndDate: &end}))

	// Open-ended ranges are fine
	assert.NoError(t, ev.ValidateFilter(domain.EntryFilter{StartDate: &start}))
	assert.NoError(t, ev.ValidateFilter(domain.EntryFilter{EndDate: &end}))

	assert.Error(t, ev.ValidateFilter(domain.EntryFilter{StartDate: &end, EndDate: &start}))

	blank := "  "
	assert.Error(t, ev.ValidateFilter(domain.EntryFilter{UserName: &blank}))
}

func TestValidateReportPeriod(t *testing.T) {
	ev := NewEntryValidator()

	start := domain.NewDate(2024, time.January, 1)
	end := domain.NewDate(2024, time.January, 31)

	assert.NoError(t, ev.ValidateReportPeriod(start, end))
	assert.NoError(t, ev.ValidateReportPeriod(start, start))

	err := ev.ValidateReportPeriod(end, start)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start date must not be after end date")

	assert.Error(t, ev.ValidateReportPeriod(domain.Date{}, end))
	assert.Error(t, ev.ValidateReportPeriod(start, domain.Date{}))
}

func TestValidateEntryID(t *testing.T) {
	ev := NewEntryValidator()

	assert.NoError(t, ev.ValidateEntryID(1))
	assert.Error(t, ev.ValidateEntryID(0))
	assert.Error(t, ev.ValidateEntryID(-5))
}
