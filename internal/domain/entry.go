package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry represents a timesheet entry in the domain model.
// This is a pure domain model without database-specific concerns.
type Entry struct {
	ID              int64           `json:"id"`
	UserName        string          `json:"user_name"`
	ProjectName     string          `json:"project_name"`
	TaskDescription string          `json:"task_description"`
	HoursWorked     decimal.Decimal `json:"hours_worked"`
	EntryDate       Date            `json:"entry_date"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewEntry creates a new Entry with the given data fields.
// Identifier and timestamps are assigned by the store on creation.
func NewEntry(userName, projectName, taskDescription string, hoursWorked decimal.Decimal, entryDate Date) Entry {
	return Entry{
		UserName:        userName,
		ProjectName:     projectName,
		TaskDescription: taskDescription,
		HoursWorked:     hoursWorked,
		EntryDate:       entryDate,
	}
}

// IsValid checks if the entry has valid data.
func (e Entry) IsValid() bool {
	if e.UserName == "" || e.ProjectName == "" || e.TaskDescription == "" {
		return false
	}
	if !e.HoursWorked.IsPositive() {
		return false
	}
	return !e.EntryDate.IsZero()
}
