package cli

import (
	"context"
	"fmt"

	"timesheet-tracker/internal/domain"
)

// AddOptions holds the parsed flag values for the add command
type AddOptions struct {
	UserName        string
	ProjectName     string
	TaskDescription string
	Hours           string
	Date            string
}

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, opts AddOptions) error {
	hours, err := parseHours(opts.Hours)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	// Default to today when no date is given
	date := domain.Today()
	if opts.Date != "" {
		date, err = parseDateArg("date", opts.Date)
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
	}

	entry, err := c.app.api.CreateEntry(ctx, opts.UserName, opts.ProjectName, opts.TaskDescription, hours, date)
	if err != nil {
		return c.errorHandler.Handle("add entry", err)
	}

	fmt.Fprintf(c.app.out, "Added entry %d: %s worked %s hours on %s (%s)\n",
		entry.ID, entry.UserName, entry.HoursWorked.StringFixed(2), entry.ProjectName, entry.EntryDate)
	return nil
}
