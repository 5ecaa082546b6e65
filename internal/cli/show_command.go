package cli

import (
	"context"
	"fmt"
)

// ShowCommand handles the show command
type ShowCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context, idArg string) error {
	id, err := parseEntryID(idArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	entry, err := c.app.api.GetEntry(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("show entry", err)
	}

	out := c.app.out
	timestampFormat := c.app.config.Display.TimestampFormat

	fmt.Fprintf(out, "Entry #%d\n", entry.ID)
	fmt.Fprintf(out, "  User:    %s\n", entry.UserName)
	fmt.Fprintf(out, "  Project: %s\n", entry.ProjectName)
	fmt.Fprintf(out, "  Task:    %s\n", entry.TaskDescription)
	fmt.Fprintf(out, "  Hours:   %s\n", entry.HoursWorked.StringFixed(2))
	fmt.Fprintf(out, "  Date:    %s\n", entry.EntryDate)
	fmt.Fprintf(out, "  Created: %s\n", entry.CreatedAt.Format(timestampFormat))
	fmt.Fprintf(out, "  Updated: %s\n", entry.UpdatedAt.Format(timestampFormat))
	return nil
}
