package cli

import (
	"context"
	"fmt"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the delete command. Deleting an entry that does not exist
// reports the miss without failing the command.
func (c *DeleteCommand) Execute(ctx context.Context, idArg string) error {
	id, err := parseEntryID(idArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	deleted, err := c.app.api.DeleteEntry(ctx, id)
	if err != nil {
		return c.errorHandler.Handle("delete entry", err)
	}

	if deleted {
		fmt.Fprintf(c.app.out, "Deleted entry %d\n", id)
	} else {
		fmt.Fprintf(c.app.out, "Entry %d not found, nothing deleted\n", id)
	}
	return nil
}
