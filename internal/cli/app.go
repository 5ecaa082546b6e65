package cli

import (
	"io"
	"os"

	"timesheet-tracker/internal/api"
	"timesheet-tracker/internal/config"
	"timesheet-tracker/internal/services"
)

// App represents the main CLI application
type App struct {
	api       api.API
	reports   services.ReportService
	dashboard services.DashboardService
	config    *config.Config
	out       io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, reports services.ReportService, dashboard services.DashboardService, cfg *config.Config) *App {
	return &App{
		api:       apiInstance,
		reports:   reports,
		dashboard: dashboard,
		config:    cfg,
		out:       os.Stdout,
	}
}

// SetOutput redirects command output, used by tests to capture it
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}
