package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"backoffice/internal/cli"
	"backoffice/internal/config"
	"backoffice/internal/export"
	"backoffice/internal/services"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	factory := NewRepositoryFactory(getEnvironment(), cfg)
	repo, err := factory.CreateRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	timesheets := services.NewTimesheetService(repo)
	svcs := &cli.Services{
		TimeEntries:    services.NewTimeEntryService(repo),
		Timesheets:     timesheets,
		Finance:        services.NewFinanceService(repo),
		Reconciliation: services.NewReconciliationService(repo),
		Export:         export.NewService(timesheets, slog.Default()),
	}

	root := cli.NewRootCommand(svcs, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer cancel()

	if err := root.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
