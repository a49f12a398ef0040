package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"backoffice/internal/config"
	"backoffice/internal/errors"
	"backoffice/internal/export"
	"backoffice/internal/services"
)

// Services bundles every service the CLI commands depend on
type Services struct {
	TimeEntries    services.TimeEntryService
	Timesheets     services.TimesheetService
	Finance        services.FinanceService
	Reconciliation services.ReconciliationService
	Export         *export.Service
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd      *cobra.Command
	services *Services
	config   *config.Config
}

// NewRootCommand creates the root cobra command with all subcommands wired
func NewRootCommand(svcs *Services, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		services: svcs,
		config:   cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "bo",
		Short: "Back office time tracking and bank reconciliation",
		Long: `Back Office (bo) manages employee time tracking, weekly timesheets
and bank statement reconciliation from the command line.

EXAMPLES:
  bo start --employee e1 --project p1 "Picking shift"   # Start a timer
  bo stop --employee e1                                 # Stop running timers
  bo entry add --employee e1 --project p1 ...           # Record a closed entry
  bo timesheet generate --employee e1 --week 2026-08-24 # Weekly rollup
  bo timesheet submit <id>                              # Workflow transitions
  bo reconcile suggest --statement stmt-2026-08         # Candidate matches
  bo reconcile match <bank-tx> <system-tx> --statement stmt-2026-08

CONFIGURATION:
  Configuration follows this priority order: environment variables >
  config file (` + config.ConfigFilePath() + `) > defaults

    BO_DB_DIR                          Database directory (default: ~/.backoffice)
    BO_DB_FILENAME                     Database filename (default: backoffice.db)
    BO_DB_QUERY_TIMEOUT                Query timeout (default: 10s)
    BO_VALIDATION_DESCRIPTION_MAX      Max description length (default: 500)
    BO_VALIDATION_MAX_ENTRY_DURATION   Max entry duration (default: 24h)
    BO_APP_TIMEOUT                     Application timeout (default: 60s)
    BO_DEBUG                           Enable debug output`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()

	return root
}

// Execute runs the root command with the given context
func (r *RootCommand) Execute(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// addSubcommands registers all command groups
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		newStartCommand(r.services),
		newStopCommand(r.services),
		newEntryCommand(r.services),
		newTimesheetCommand(r.services),
		newInvoiceCommand(r.services),
		newExpenseCommand(r.services),
		newBankCommand(r.services),
		newReconcileCommand(r.services),
	)
}

// parseTimestamp parses an RFC3339 or local "2006-01-02 15:04" timestamp,
// rejecting malformed input explicitly instead of letting it propagate.
func parseTimestamp(field, value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
	if err != nil {
		return time.Time{}, errors.NewInvalidTimestampError(field, value, err)
	}
	return t, nil
}

// parseDate parses a YYYY-MM-DD calendar day
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, errors.NewInvalidTimestampError(field, value, err)
	}
	return t, nil
}
