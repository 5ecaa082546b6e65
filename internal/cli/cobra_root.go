package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{app: app}

	root.cmd = &cobra.Command{
		Use:   "timesheet",
		Short: "A command-line timesheet tracking application",
		Long: `Timesheet Tracker is a command-line application for recording and
summarizing hours worked per user, project and day.

EXAMPLES:
  timesheet add --user alice --project website --task "Fix login bug" --hours 7.5
  timesheet add --user bob --project api --task "Code review" --hours 1.25 --date 2024-01-15
  timesheet list --user alice --from 2024-01-01 --to 2024-01-31
  timesheet show 12
  timesheet update 12 --hours 8 --task "Fix login bug and add tests"
  timesheet delete 12
  timesheet dashboard
  timesheet report --from 2024-01-01 --to 2024-01-31 --project website
  timesheet export --format csv > timesheet.csv

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    TS_DB_DIR                              Database directory (default: ~/.timesheet)
    TS_DB_FILENAME                         Database filename (default: timesheet.db)
    TS_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    TS_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Display Configuration:
    TS_DISPLAY_TIMESTAMP_FORMAT            Timestamp format (default: 2006-01-02 15:04:05)

  Validation Configuration:
    TS_VALIDATION_NAME_MAX                 Max user/project name length (default: 255)
    TS_VALIDATION_MAX_HOURS                Max hours per entry (default: 24)

  Application Configuration:
    TS_APP_TIMEOUT                         Application timeout (default: 60s)
    TS_APP_VERBOSE                         Enable verbose output (default: false)

  Command Configuration:
    TS_DASHBOARD_RECENT_LIMIT              Recent entries on the dashboard (default: 10)
    TS_EXPORT_DEFAULT_FORMAT               Default export format (default: csv)

GETTING HELP:
  timesheet [command] --help               # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides TS_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TS_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TS_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TS_DB_WRITE_TIMEOUT)")

	flags.String("timestamp-format", "", "Timestamp display format (overrides TS_DISPLAY_TIMESTAMP_FORMAT)")

	flags.Int("name-max-length", 0, "Maximum user/project name length (overrides TS_VALIDATION_NAME_MAX)")
	flags.String("max-hours", "", "Maximum hours per entry (overrides TS_VALIDATION_MAX_HOURS)")

	flags.Duration("app-timeout", 0, "Application timeout (overrides TS_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TS_APP_VERBOSE)")

	flags.Int("recent-limit", 0, "Recent entries shown on the dashboard (overrides TS_DASHBOARD_RECENT_LIMIT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Add command
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a timesheet entry",
		Long: `Record hours worked by a user on a project for a given day.

The date defaults to today when --date is not given.

Examples:
  timesheet add --user alice --project website --task "Fix login bug" --hours 7.5
  timesheet add --user bob --project api --task "Code review" --hours 1.25 --date 2024-01-15`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			opts := AddOptions{}
			opts.UserName, _ = cmd.Flags().GetString("user")
			opts.ProjectName, _ = cmd.Flags().GetString("project")
			opts.TaskDescription, _ = cmd.Flags().GetString("task")
			opts.Hours, _ = cmd.Flags().GetString("hours")
			opts.Date, _ = cmd.Flags().GetString("date")

			return NewAddCommand(r.app).Execute(ctx, opts)
		},
	}
	addCmd.Flags().String("user", "", "User the hours belong to (required)")
	addCmd.Flags().String("project", "", "Project the hours were spent on (required)")
	addCmd.Flags().String("task", "", "Description of the work done (required)")
	addCmd.Flags().String("hours", "", "Hours worked, up to two decimal places (required)")
	addCmd.Flags().String("date", "", "Entry date in YYYY-MM-DD format (default: today)")
	addCmd.MarkFlagRequired("user")
	addCmd.MarkFlagRequired("project")
	addCmd.MarkFlagRequired("task")
	addCmd.MarkFlagRequired("hours")

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List timesheet entries",
		Long: `List timesheet entries with optional filtering, most recent entry date first.

Examples:
  timesheet list                                      # List all entries
  timesheet list --user alice                         # Entries for one user
  timesheet list --project website --from 2024-01-01  # Project entries since a date
  timesheet list --from 2024-01-01 --to 2024-01-31    # Entries within a date range`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			opts := ListOptions{}
			opts.UserName, _ = cmd.Flags().GetString("user")
			opts.ProjectName, _ = cmd.Flags().GetString("project")
			opts.From, _ = cmd.Flags().GetString("from")
			opts.To, _ = cmd.Flags().GetString("to")

			return NewListCommand(r.app).Execute(ctx, opts)
		},
	}
	listCmd.Flags().String("user", "", "Filter by exact user name")
	listCmd.Flags().String("project", "", "Filter by exact project name")
	listCmd.Flags().String("from", "", "Earliest entry date to include (YYYY-MM-DD)")
	listCmd.Flags().String("to", "", "Latest entry date to include (YYYY-MM-DD)")

	// Show command
	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a single timesheet entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewShowCommand(r.app).Execute(ctx, args[0])
		},
	}

	// Update command
	updateCmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a timesheet entry",
		Long: `Update fields of an existing timesheet entry. Only the fields given
as flags change; at least one field flag is required.

Examples:
  timesheet update 12 --hours 8
  timesheet update 12 --project api --task "Code review"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			opts := UpdateOptions{}
			if cmd.Flags().Changed("user") {
				user, _ := cmd.Flags().GetString("user")
				opts.UserName = &user
			}
			if cmd.Flags().Changed("project") {
				project, _ := cmd.Flags().GetString("project")
				opts.ProjectName = &project
			}
			if cmd.Flags().Changed("task") {
				task, _ := cmd.Flags().GetString("task")
				opts.TaskDescription = &task
			}
			if cmd.Flags().Changed("hours") {
				hours, _ := cmd.Flags().GetString("hours")
				opts.Hours = &hours
			}
			if cmd.Flags().Changed("date") {
				date, _ := cmd.Flags().GetString("date")
				opts.Date = &date
			}

			return NewUpdateCommand(r.app).Execute(ctx, args[0], opts)
		},
	}
	updateCmd.Flags().String("user", "", "New user name")
	updateCmd.Flags().String("project", "", "New project name")
	updateCmd.Flags().String("task", "", "New task description")
	updateCmd.Flags().String("hours", "", "New hours worked")
	updateCmd.Flags().String("date", "", "New entry date (YYYY-MM-DD)")

	// Delete command
	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a timesheet entry",
		Long: `Delete a timesheet entry by ID.

Deleting an entry that does not exist is reported but is not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewDeleteCommand(r.app).Execute(ctx, args[0])
		},
	}

	// Dashboard command
	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the timesheet dashboard",
		Long: `Show overall totals, per-project and per-user hour breakdowns and the
most recently recorded entries.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewDashboardCommand(r.app).Execute(ctx)
		},
	}

	// Report command
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a report for a date range",
		Long: `Generate a summary report over an inclusive date range with optional
user and project filters.

Examples:
  timesheet report --from 2024-01-01 --to 2024-01-31
  timesheet report --from 2024-01-01 --to 2024-01-31 --user alice --project website`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			opts := ReportOptions{}
			opts.From, _ = cmd.Flags().GetString("from")
			opts.To, _ = cmd.Flags().GetString("to")
			opts.UserName, _ = cmd.Flags().GetString("user")
			opts.ProjectName, _ = cmd.Flags().GetString("project")

			return NewReportCommand(r.app).Execute(ctx, opts)
		},
	}
	reportCmd.Flags().String("from", "", "Report start date (YYYY-MM-DD, required)")
	reportCmd.Flags().String("to", "", "Report end date (YYYY-MM-DD, required)")
	reportCmd.Flags().String("user", "", "Filter by exact user name")
	reportCmd.Flags().String("project", "", "Filter by exact project name")
	reportCmd.MarkFlagRequired("from")
	reportCmd.MarkFlagRequired("to")

	// Export command
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export entries in the specified format",
		Long: `Export timesheet entries with optional filtering.

Supported formats:
  csv - Comma-separated values with a User,Project,Task,Hours,Date header

Example:
  timesheet export --format csv --from 2024-01-01 --to 2024-01-31 > timesheet.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			opts := ExportOptions{}
			opts.Format, _ = cmd.Flags().GetString("format")
			opts.UserName, _ = cmd.Flags().GetString("user")
			opts.ProjectName, _ = cmd.Flags().GetString("project")
			opts.From, _ = cmd.Flags().GetString("from")
			opts.To, _ = cmd.Flags().GetString("to")

			return NewExportCommand(r.app).Execute(ctx, opts)
		},
	}
	exportCmd.Flags().String("format", "", "Export format (overrides TS_EXPORT_DEFAULT_FORMAT)")
	exportCmd.Flags().String("user", "", "Filter by exact user name")
	exportCmd.Flags().String("project", "", "Filter by exact project name")
	exportCmd.Flags().String("from", "", "Earliest entry date to include (YYYY-MM-DD)")
	exportCmd.Flags().String("to", "", "Latest entry date to include (YYYY-MM-DD)")

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		showCmd,
		updateCmd,
		deleteCmd,
		dashboardCmd,
		reportCmd,
		exportCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.app.config != nil {
		return r.app.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.app.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()
	cfg := r.app.config

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		cfg.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		cfg.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		cfg.Database.QueryTimeout = queryTimeout
	}
	if writeTimeout, _ := flags.GetDuration("db-write-timeout"); writeTimeout > 0 {
		cfg.Database.WriteTimeout = writeTimeout
	}

	if timestampFormat, _ := flags.GetString("timestamp-format"); timestampFormat != "" {
		cfg.Display.TimestampFormat = timestampFormat
	}

	if nameMaxLength, _ := flags.GetInt("name-max-length"); nameMaxLength > 0 {
		cfg.Validation.NameMaxLength = nameMaxLength
	}
	if maxHours, _ := flags.GetString("max-hours"); maxHours != "" {
		cfg.Validation.MaxHoursPerEntry = maxHours
	}

	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		cfg.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		cfg.Application.Verbose = verbose
	}

	if recentLimit, _ := flags.GetInt("recent-limit"); recentLimit > 0 {
		cfg.Commands.RecentEntriesLimit = recentLimit
	}

	return cfg.Validate()
}
