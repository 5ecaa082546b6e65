package validation

import (
	"github.com/shopspring/decimal"

	"timesheet-tracker/internal/domain"
)

// EntryValidator provides validation for timesheet entry operations
type EntryValidator struct {
	validator *Validator
}

// NewEntryValidator creates a new entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{validator: NewValidator()}
}

// NewEntryValidatorWithConfig creates a new entry validator with configuration
func NewEntryValidatorWithConfig(validator *Validator) *EntryValidator {
	return &EntryValidator{validator: validator}
}

// ValidateEntryForCreation validates the fields of a new timesheet entry
func (ev *EntryValidator) ValidateEntryForCreation(userName, projectName, taskDescription string, hoursWorked decimal.Decimal, entryDate domain.Date) error {
	validationError := NewValidationError()

	ev.validateName(validationError, "user_name", userName)
	ev.validateName(validationError, "project_name", projectName)

	if !ev.validator.IsNonEmptyString(taskDescription) {
		validationError.AddRequiredError("task_description")
	}

	ev.validateHours(validationError, hoursWorked)

	if entryDate.IsZero() {
		validationError.AddRequiredError("entry_date")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateEntryPatch validates a partial update to an existing entry
func (ev *EntryValidator) ValidateEntryPatch(id int64, patch domain.EntryPatch) error {
	validationError := NewValidationError()

	if !ev.validator.IsValidEntryID(id) {
		validationError.AddInvalidValueError("id", id, "must be a positive integer")
	}

	if patch.UserName != nil {
		ev.validateName(validationError, "user_name", *patch.UserName)
	}
	if patch.ProjectName != nil {
		ev.validateName(validationError, "project_name", *patch.ProjectName)
	}
	if patch.TaskDescription != nil && !ev.validator.IsNonEmptyString(*patch.TaskDescription) {
		validationError.AddRequiredError("task_description")
	}
	if patch.HoursWorked != nil {
		ev.validateHours(validationError, *patch.HoursWorked)
	}
	if patch.EntryDate != nil && patch.EntryDate.IsZero() {
		validationError.AddRequiredError("entry_date")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateFilter validates filter criteria for entry listings
func (ev *EntryValidator) ValidateFilter(filter domain.EntryFilter) error {
	validationError := NewValidationError()

	if filter.UserName != nil && !ev.validator.IsNonEmptyString(*filter.UserName) {
		validationError.AddInvalidValueError("user_name", *filter.UserName, "must not be empty")
	}
	if filter.ProjectName != nil && !ev.validator.IsNonEmptyString(*filter.ProjectName) {
		validationError.AddInvalidValueError("project_name", *filter.ProjectName, "must not be empty")
	}

	if !ev.validator.IsValidDateRange(filter.StartDate, filter.EndDate) {
		validationError.AddInvalidRangeError("date_range", map[string]interface{}{
			"start": filter.StartDate,
			"end":   filter.EndDate,
		}, "end date must be on or after start date")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateReportPeriod validates the mandatory date range of a report request.
// An inverted period is rejected rather than producing a negative day span.
func (ev *EntryValidator) ValidateReportPeriod(startDate, endDate domain.Date) error {
	validationError := NewValidationError()

	if startDate.IsZero() {
		validationError.AddRequiredError("start_date")
	}
	if endDate.IsZero() {
		validationError.AddRequiredError("end_date")
	}

	if !startDate.IsZero() && !endDate.IsZero() && startDate.After(endDate) {
		validationError.AddInvalidRangeError("period", map[string]string{
			"start": startDate.String(),
			"end":   endDate.String(),
		}, "start date must not be after end date")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateEntryID validates a timesheet entry ID
func (ev *EntryValidator) ValidateEntryID(id int64) error {
	if !ev.validator.IsValidEntryID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

func (ev *EntryValidator) validateName(validationError *ValidationError, field, value string) {
	if !ev.validator.IsNonEmptyString(value) {
		validationError.AddRequiredError(field)
		return
	}
	if !ev.validator.IsValidNameLength(value) {
		validationError.AddInvalidLengthError(field, value, 1, 255)
	}
}

func (ev *EntryValidator) validateHours(validationError *ValidationError, hours decimal.Decimal) {
	if !ev.validator.IsPositiveHours(hours) {
		validationError.AddInvalidValueError("hours_worked", hours.String(), "must be positive")
		return
	}
	if !ev.validator.HasValidHoursScale(hours) {
		validationError.AddInvalidValueError("hours_worked", hours.String(), "must have at most two decimal places")
	}
	if !ev.validator.IsWithinMaxHours(hours) {
		validationError.AddInvalidValueError("hours_worked", hours.String(), "exceeds maximum hours per entry")
	}
}
