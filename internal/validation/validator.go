package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"timesheet-tracker/internal/config"
	"timesheet-tracker/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{config: nil} // Use defaults
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidNameLength checks if a name length is within configured limits
func (v *Validator) IsValidNameLength(name string) bool {
	return len(strings.TrimSpace(name)) <= v.getNameMaxLength()
}

// IsPositiveHours checks if an hours value is strictly positive
func (v *Validator) IsPositiveHours(hours decimal.Decimal) bool {
	return hours.IsPositive()
}

// HasValidHoursScale checks if an hours value has at most two decimal places
func (v *Validator) HasValidHoursScale(hours decimal.Decimal) bool {
	return hours.Exponent() >= -2 || hours.Equal(hours.Round(2))
}

// IsWithinMaxHours checks if an hours value does not exceed the configured
// per-entry maximum
func (v *Validator) IsWithinMaxHours(hours decimal.Decimal) bool {
	return hours.LessThanOrEqual(v.getMaxHoursPerEntry())
}

// IsValidEntryID checks if an entry ID is valid (positive)
func (v *Validator) IsValidEntryID(id int64) bool {
	return id > 0
}

// IsValidDateRange checks if a date range is logical (start <= end).
// Open-ended ranges with one or both bounds absent are valid.
func (v *Validator) IsValidDateRange(start, end *domain.Date) bool {
	if start == nil || end == nil {
		return true
	}
	return !start.After(*end)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// getNameMaxLength returns configured maximum name length or default
func (v *Validator) getNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.NameMaxLength
	}
	return 255 // Default maximum
}

// getMaxHoursPerEntry returns the configured per-entry hours cap or default
func (v *Validator) getMaxHoursPerEntry() decimal.Decimal {
	if v.config != nil {
		if max, err := decimal.NewFromString(v.config.Validation.MaxHoursPerEntry); err == nil {
			return max
		}
	}
	return decimal.NewFromInt(24) // Default maximum
}
