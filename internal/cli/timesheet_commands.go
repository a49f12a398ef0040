package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"backoffice/internal/domain"
)

// newTimesheetCommand creates the timesheet command group.
func newTimesheetCommand(svcs *Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timesheet",
		Short: "Manage weekly timesheets",
	}
	cmd.AddCommand(
		newTimesheetGenerateCommand(svcs),
		newTimesheetShowCommand(svcs),
		newTimesheetListCommand(svcs),
		newTimesheetStatusCommand(svcs, "submit", domain.StatusSubmitted),
		newTimesheetStatusCommand(svcs, "approve", domain.StatusApproved),
		newTimesheetStatusCommand(svcs, "reject", domain.StatusRejected),
		newTimesheetExportCommand(svcs),
	)
	return cmd
}

func newTimesheetGenerateCommand(svcs *Services) *cobra.Command {
	var employeeID, weekStr string
	errorHandler := NewErrorHandler()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create the timesheet for the week containing a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			weekOf, err := parseDate("week", weekStr)
			if err != nil {
				return errorHandler.Handle("generate timesheet", err)
			}

			timesheet, err := svcs.Timesheets.Create(cmd.Context(), employeeID, weekOf)
			if err != nil {
				return errorHandler.Handle("generate timesheet", err)
			}

			printTimesheet(timesheet)
			return nil
		},
	}

	cmd.Flags().StringVar(&employeeID, "employee", "", "employee id (required)")
	cmd.Flags().StringVar(&weekStr, "week", "", "any date in the target week, YYYY-MM-DD (required)")
	cmd.MarkFlagRequired("employee")
	cmd.MarkFlagRequired("week")

	return cmd
}

func newTimesheetShowCommand(svcs *Services) *cobra.Command {
	errorHandler := NewErrorHandler()

	return &cobra.Command{
		Use:   "show <timesheet-id>",
		Short: "Show a timesheet with freshly computed totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			timesheet, err := svcs.Timesheets.Get(cmd.Context(), args[0])
			if err != nil {
				return errorHandler.Handle("show timesheet", err)
			}

			printTimesheet(timesheet)
			for _, entry := range timesheet.Entries {
				fmt.Printf("  %s  %-12s %s\n", entry.Date, entry.ProjectID, entry.Description)
			}
			return nil
		},
	}
}

func newTimesheetListCommand(svcs *Services) *cobra.Command {
	var employeeID string
	errorHandler := NewErrorHandler()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an employee's timesheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			timesheets, err := svcs.Timesheets.List(cmd.Context(), employeeID)
			if err != nil {
				return errorHandler.Handle("list timesheets", err)
			}

			if len(timesheets) == 0 {
				fmt.Println("No timesheets")
				return nil
			}
			for _, timesheet := range timesheets {
				weekStart, weekEnd := timesheet.Week()
				fmt.Printf("%s  %s..%s  %-9s  %.2fh (%.2fh billable)\n",
					timesheet.ID, weekStart, weekEnd, timesheet.Status, timesheet.TotalHours, timesheet.BillableHours)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&employeeID, "employee", "", "employee id (required)")
	cmd.MarkFlagRequired("employee")

	return cmd
}

// newTimesheetStatusCommand builds one workflow transition command
// (submit, approve, reject) sharing a single implementation.
func newTimesheetStatusCommand(svcs *Services, use string, status domain.TimesheetStatus) *cobra.Command {
	var actor, comments string
	errorHandler := NewErrorHandler()

	cmd := &cobra.Command{
		Use:   use + " <timesheet-id>",
		Short: fmt.Sprintf("Move a timesheet to %s", status),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			timesheet, err := svcs.Timesheets.UpdateStatus(cmd.Context(), args[0], status, actor, comments)
			if err != nil {
				return errorHandler.Handle(use+" timesheet", err)
			}

			fmt.Printf("Timesheet %s is now %s\n", timesheet.ID, timesheet.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&actor, "by", "", "acting user id")
	cmd.Flags().StringVar(&comments, "comments", "", "workflow comments")

	return cmd
}

func newTimesheetExportCommand(svcs *Services) *cobra.Command {
	var outPath string
	errorHandler := NewErrorHandler()

	cmd := &cobra.Command{
		Use:   "export <timesheet-id>",
		Short: "Export a timesheet as an XLSX workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := svcs.Export.TimesheetXLSX(cmd.Context(), args[0])
			if err != nil {
				return errorHandler.Handle("export timesheet", err)
			}

			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			fmt.Printf("Wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "timesheet.xlsx", "output file path")

	return cmd
}

func printTimesheet(timesheet *domain.Timesheet) {
	weekStart, weekEnd := timesheet.Week()
	fmt.Printf("Timesheet %s: %s, week %s..%s, %s\n", timesheet.ID, timesheet.EmployeeID, weekStart, weekEnd, timesheet.Status)
	fmt.Printf("  %.2f hours total, %.2f billable, %d entries\n", timesheet.TotalHours, timesheet.BillableHours, len(timesheet.Entries))
}
