package cli

import (
	"context"
	"encoding/csv"
	"fmt"

	"timesheet-tracker/internal/domain"
	"timesheet-tracker/internal/errors"
)

// ExportOptions holds the parsed flag values for the export command
type ExportOptions struct {
	Format      string
	UserName    string
	ProjectName string
	From        string
	To          string
}

// ExportCommand handles the export command
type ExportCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context, opts ExportOptions) error {
	format := opts.Format
	if format == "" {
		format = c.app.config.Commands.ExportDefaultFormat
	}

	switch format {
	case "csv":
		return c.exportCSV(ctx, opts)
	default:
		return c.errorHandler.HandleSimple(
			errors.NewInvalidInputError("format", format, "unsupported format"))
	}
}

// exportCSV writes matching entries as CSV, most recent entry date first
func (c *ExportCommand) exportCSV(ctx context.Context, opts ExportOptions) error {
	filter, err := c.buildFilter(opts)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	entries, err := c.app.api.ListEntries(ctx, filter)
	if err != nil {
		return c.errorHandler.Handle("export entries", err)
	}

	writer := csv.NewWriter(c.app.out)
	defer writer.Flush()

	header := []string{"User", "Project", "Task", "Hours", "Date"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, entry := range entries {
		row := []string{
			entry.UserName,
			entry.ProjectName,
			entry.TaskDescription,
			entry.HoursWorked.StringFixed(2),
			entry.EntryDate.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

func (c *ExportCommand) buildFilter(opts ExportOptions) (domain.EntryFilter, error) {
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
