package cli

import (
	"context"
	"fmt"
)

// DashboardCommand handles the dashboard command
type DashboardCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDashboardCommand creates a new dashboard command handler
func NewDashboardCommand(app *App) *DashboardCommand {
	return &DashboardCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the dashboard command
func (c *DashboardCommand) Execute(ctx context.Context) error {
	summary, err := c.app.dashboard.GetDashboardSummary(ctx)
	if err != nil {
		return c.errorHandler.Handle("load dashboard", err)
	}

	out := c.app.out

	fmt.Fprintf(out, "Total hours:   %s\n", summary.TotalHours.StringFixed(2))
	fmt.Fprintf(out, "Total entries: %d\n", summary.TotalEntries)

	if len(summary.HoursByProject) > 0 {
		fmt.Fprintln(out, "\nHours by project:")
		for _, p := range summary.HoursByProject {
			fmt.Fprintf(out, "  %s: %s\n", p.ProjectName, p.TotalHours.StringFixed(2))
		}
	}

	if len(summary.HoursByUser) > 0 {
		fmt.Fprintln(out, "\nHours by user:")
		for _, u := range summary.HoursByUser {
			fmt.Fprintf(out, "  %s: %s\n", u.UserName, u.TotalHours.StringFixed(2))
		}
	}

	if len(summary.RecentEntries) > 0 {
		fmt.Fprintln(out, "\nRecent entries:")
		for _, entry := range summary.RecentEntries {
			fmt.Fprintf(out, "  #%d  %s  %s / %s  %sh: %s\n",
				entry.ID, entry.EntryDate, entry.UserName, entry.ProjectName,
				entry.HoursWorked.StringFixed(2), entry.TaskDescription)
		}
	}

	return nil
}
