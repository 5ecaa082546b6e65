package cli

import (
	"context"
	"fmt"

	"timesheet-tracker/internal/domain"
	"timesheet-tracker/internal/errors"
)

// UpdateOptions holds the parsed flag values for the update command.
// Nil fields were not given on the command line and stay unchanged.
type UpdateOptions struct {
	UserName        *string
	ProjectName     *string
	TaskDescription *string
	Hours           *string
	Date            *string
}

// UpdateCommand handles the update command
type UpdateCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewUpdateCommand creates a new update command handler
func NewUpdateCommand(app *App) *UpdateCommand {
	return &UpdateCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the update command
func (c *UpdateCommand) Execute(ctx context.Context, idArg string, opts UpdateOptions) error {
	id, err := parseEntryID(idArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	patch, err := c.buildPatch(opts)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if patch.IsEmpty() {
		return c.errorHandler.HandleSimple(
			errors.NewInvalidInputError("update", idArg, "at least one field flag is required"))
	}

	entry, err := c.app.api.UpdateEntry(ctx, id, patch)
	if err != nil {
		return c.errorHandler.Handle("update entry", err)
	}

	fmt.Fprintf(c.app.out, "Updated entry %d: %s worked %s hours on %s (%s)\n",
		entry.ID, entry.UserName, entry.HoursWorked.StringFixed(2), entry.ProjectName, entry.EntryDate)
	return nil
}

func (c *UpdateCommand) buildPatch(opts UpdateOptions) (domain.EntryPatch, error) {
	patch := domain.EntryPatch{
		UserName:        opts.UserName,
		ProjectName:     opts.ProjectName,
		TaskDescription: opts.TaskDescription,
	}

	if opts.Hours != nil {
		hours, err := parseHours(*opts.Hours)
		if err != nil {
			return domain.EntryPatch{}, err
		}
		patch.HoursWorked = &hours
	}
	if opts.Date != nil {
		date, err := parseDateArg("date", *opts.Date)
		if err != nil {
			return domain.EntryPatch{}, err
		}
		patch.EntryDate = &date
	}

	return patch, nil
}
