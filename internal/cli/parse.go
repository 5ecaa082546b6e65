package cli

import (
	"strconv"

	"github.com/shopspring/decimal"

	"timesheet-tracker/internal/domain"
	"timesheet-tracker/internal/errors"
)

// parseEntryID parses a positional entry ID argument
func parseEntryID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("id", arg, "must be an integer")
	}
	return id, nil
}

// parseHours parses an hours value from its command line form
func parseHours(arg string) (decimal.Decimal, error) {
	hours, err := decimal.NewFromString(arg)
	if err != nil {
		return decimal.Decimal{}, errors.NewInvalidInputError("hours", arg, "must be a decimal number")
	}
	return hours, nil
}

// parseDateArg parses a YYYY-MM-DD date from its command line form
func parseDateArg(field, arg string) (domain.Date, error) {
	date, err := domain.ParseDate(arg)
	if err != nil {
		return domain.Date{}, errors.NewInvalidInputError(field, arg, "must be a date in YYYY-MM-DD format")
	}
	return date, nil
}
