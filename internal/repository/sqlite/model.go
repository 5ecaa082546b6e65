package sqlite

import "time"

// Entry represents a timesheet entry row.
// HoursWorked is fixed-point decimal text and EntryDate is a YYYY-MM-DD
// string; both are converted to richer types at the domain boundary.
type Entry struct {
	ID              int64
	UserName        string
	ProjectName     string
	TaskDescription string
	HoursWorked     string
	EntryDate       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EntryFilter contains all possible filter parameters for entry scans.
// Date bounds are inclusive YYYY-MM-DD strings.
type EntryFilter struct {
	UserName    *string
	ProjectName *string
	StartDate   *string
	EndDate     *string
}
