package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"backoffice/internal/timecalc"
)

// newStartCommand creates the start command: open a running timer for an
// employee, stopping any timer they already have running.
func newStartCommand(svcs *Services) *cobra.Command {
	var employeeID, projectID string
	var billable bool
	errorHandler := NewErrorHandler()

	cmd := &cobra.Command{
		Use:   "start \"description\"",
		Short: "Start a timer for an employee",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.Join(args, " ")

			entry, err := svcs.TimeEntries.StartTimer(cmd.Context(), employeeID, projectID, description, billable)
			if err != nil {
				return errorHandler.Handle("start timer", err)
			}

			fmt.Printf("Started timer %s for %s on %s\n", entry.ID, entry.EmployeeID, entry.ProjectID)
			return nil
		},
	}

	cmd.Flags().StringVar(&employeeID, "employee", "", "employee id (required)")
	cmd.Flags().StringVar(&projectID, "project", "", "project id (required)")
	cmd.Flags().BoolVar(&billable, "billable", false, "mark the entry billable")
	cmd.MarkFlagRequired("employee")
	cmd.MarkFlagRequired("project")

	return cmd
}

// newStopCommand creates the stop command: close every running timer of an
// employee.
func newStopCommand(svcs *Services) *cobra.Command {
	var employeeID string
	errorHandler := NewErrorHandler()

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop an employee's running timers",
		RunE: func(cmd *cobra.Command, args []string) error {
			stopped, err := svcs.TimeEntries.StopTimers(cmd.Context(), employeeID)
			if err != nil {
				return errorHandler.Handle("stop timers", err)
			}

			if len(stopped) == 0 {
				fmt.Println("No running timers")
				return nil
			}
			for _, entry := range stopped {
				minutes := 0
				if entry.DurationMinutes != nil {
					minutes = *entry.DurationMinutes
				}
				fmt.Printf("Stopped %s (%s): %s\n", entry.ID, entry.Description, timecalc.FormatMinutes(minutes))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&employeeID, "employee", "", "employee id (required)")
	cmd.MarkFlagRequired("employee")

	return cmd
}
