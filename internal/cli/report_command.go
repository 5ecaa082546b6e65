package cli

import (
	"context"
	"fmt"

	"timesheet-tracker/internal/services"
)

// ReportOptions holds the parsed flag values for the report command
type ReportOptions struct {
	From        string
	To          string
	UserName    string
	ProjectName string
}

// ReportCommand handles the report command
type ReportCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the report command
func (c *ReportCommand) Execute(ctx context.Context, opts ReportOptions) error {
	req, err := c.buildRequest(opts)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	report, err := c.app.reports.GenerateReport(ctx, req)
	if err != nil {
		return c.errorHandler.Handle("generate report", err)
	}

	c.printReport(report)
	return nil
}

func (c *ReportCommand) buildRequest(opts ReportOptions) (services.ReportRequest, error) {
	from, err := parseDateArg("from", opts.From)
	if err != nil {
		return services.ReportRequest{}, err
	}
	to, err := parseDateArg("to", opts.To)
	if err != nil {
		return services.ReportRequest{}, err
	}

	req := services.ReportRequest{StartDate: from, EndDate: to}
	if opts.UserName != "" {
		user := opts.UserName
		req.UserName = &user
	}
	if opts.ProjectName != "" {
		project := opts.ProjectName
		req.ProjectName = &project
	}
	return req, nil
}

func (c *ReportCommand) printReport(report *services.Report) {
	out := c.app.out

	fmt.Fprintf(out, "Report %s to %s\n", report.Period.StartDate, report.Period.EndDate)
	fmt.Fprintf(out, "Total hours:       %s\n", report.Summary.TotalHours.StringFixed(2))
	fmt.Fprintf(out, "Total entries:     %d\n", report.Summary.TotalEntries)
	fmt.Fprintf(out, "Average hours/day: %s\n", report.Summary.AverageHoursPerDay.StringFixed(2))

	if len(report.BreakdownByProject) > 0 {
		fmt.Fprintln(out, "\nBy project:")
		for _, b := range report.BreakdownByProject {
			fmt.Fprintf(out, "  %s: %s (%d entries)\n", b.ProjectName, b.TotalHours.StringFixed(2), b.EntryCount)
		}
	}

	if len(report.BreakdownByUser) > 0 {
		fmt.Fprintln(out, "\nBy user:")
		for _, b := range report.BreakdownByUser {
			fmt.Fprintf(out, "  %s: %s (%d entries)\n", b.UserName, b.TotalHours.StringFixed(2), b.EntryCount)
		}
	}

	if len(report.Entries) > 0 {
		fmt.Fprintln(out, "\nEntries:")
		for _, entry := range report.Entries {
			fmt.Fprintf(out, "  #%d  %s  %s / %s  %sh: %s\n",
				entry.ID, entry.EntryDate, entry.UserName, entry.ProjectName,
				entry.HoursWorked.StringFixed(2), entry.TaskDescription)
		}
	}
}
