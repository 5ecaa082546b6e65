package domain

import "github.com/shopspring/decimal"

// EntryFilter represents filter criteria for timesheet entries.
// Every supplied criterion must match; absent criteria impose no constraint.
// Name matching is exact and case-sensitive, date bounds are inclusive.
type EntryFilter struct {
	UserName    *string
	ProjectName *string
	StartDate   *Date
	EndDate     *Date
}

// IsEmpty reports whether no criteria are set.
func (f EntryFilter) IsEmpty() bool {
	return f.UserName == nil && f.ProjectName == nil && f.StartDate == nil && f.EndDate == nil
}

// EntryPatch represents a partial update to an existing entry.
// Only non-nil fields are applied; updated_at is refreshed regardless.
type EntryPatch struct {
	UserName        *string
	ProjectName     *string
	TaskDescription *string
	HoursWorked     *decimal.Decimal
	EntryDate       *Date
}

// IsEmpty reports whether the patch changes no data fields.
func (p EntryPatch) IsEmpty() bool {
	return p.UserName == nil && p.ProjectName == nil && p.TaskDescription == nil &&
		p.HoursWorked == nil && p.EntryDate == nil
}
