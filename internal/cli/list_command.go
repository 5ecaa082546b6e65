package cli

import (
	"context"
	"fmt"

	"timesheet-tracker/internal/domain"
)

// ListOptions holds the parsed flag values for the list command
type ListOptions struct {
	UserName    string
	ProjectName string
	From        string
	To          string
}

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, opts ListOptions) error {
	filter, err := c.buildFilter(opts)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	entries, err := c.app.api.ListEntries(ctx, filter)
	if err != nil {
		return c.errorHandler.Handle("list entries", err)
	}

	c.printEntries(entries)
	return nil
}

func (c *ListCommand) buildFilter(opts ListOptions) (domain.EntryFilter, error) {
	filter := domain.EntryFilter{}

	if opts.UserName != "" {
		user := opts.UserName
		filter.UserName = &user
	}
	if opts.ProjectName != "" {
		project := opts.ProjectName
		filter.ProjectName = &project
	}
	if opts.From != "" {
		from, err := parseDateArg("from", opts.From)
		if err != nil {
			return domain.EntryFilter{}, err
		}
		filter.StartDate = &from
	}
	if opts.To != "" {
		to, err := parseDateArg("to", opts.To)
		if err != nil {
			return domain.EntryFilter{}, err
		}
		filter.EndDate = &to
	}

	return filter, nil
}

// printEntries prints one line per entry, most recent entry date first
func (c *ListCommand) printEntries(entries []domain.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(c.app.out, "No entries found")
		return
	}

	for _, entry := range entries {
		fmt.Fprintf(c.app.out, "#%d  %s  %s / %s  %sh: %s\n",
			entry.ID, entry.EntryDate, entry.UserName, entry.ProjectName,
			entry.HoursWorked.StringFixed(2), entry.TaskDescription)
	}
	fmt.Fprintf(c.app.out, "%d entries\n", len(entries))
}
