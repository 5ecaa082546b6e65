package main

import (
	"fmt"
	"os"

	"timesheet-tracker/internal/api"
	"timesheet-tracker/internal/cli"
	"timesheet-tracker/internal/config"
	"timesheet-tracker/internal/services"
	"timesheet-tracker/internal/validation"
)

func main() {
	// Load configuration: defaults, then environment, flags applied later by cobra
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	validator := validation.NewEntryValidatorWithConfig(validation.NewValidatorWithConfig(cfg))

	apiInstance := api.New(repo, validator)
	reports := services.NewReportService(repo, validator)
	dashboard := services.NewDashboardService(repo, cfg)

	app := cli.NewApp(apiInstance, reports, dashboard, cfg)

	if err := cli.NewRootCommand(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
