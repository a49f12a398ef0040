package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"backoffice/internal/domain"
)

// newEntryCommand creates the entry command group for manual time entries.
func newEntryCommand(svcs *Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Manage manual time entries",
	}
	cmd.AddCommand(newEntryAddCommand(svcs))
	return cmd
}

// newEntryAddCommand records a closed time entry. Overlapping entries for
// the same employee are reported as warnings; the entry is still recorded
// unless --strict is set.
func newEntryAddCommand(svcs *Services) *cobra.Command {
	var employeeID, projectID, taskID, startStr, endStr string
	var tags []string
	var billable, strict bool
	errorHandler := NewErrorHandler()

	cmd := &cobra.Command{
		Use:   "add \"description\"",
		Short: "Record a closed time entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.Join(args, " ")

			start, err := parseTimestamp("start", startStr)
			if err != nil {
				return errorHandler.Handle("add entry", err)
			}
			end, err := parseTimestamp("end", endStr)
			if err != nil {
				return errorHandler.Handle("add entry", err)
			}

			entry := domain.NewTimeEntry("", employeeID, projectID, description, start)
			entry.EndTime = &end
			entry.TaskID = taskID
			entry.Billable = billable
			entry.Tags = tags

			overlap, err := svcs.TimeEntries.CheckOverlap(cmd.Context(), entry)
			if err != nil {
				return errorHandler.Handle("check overlap", err)
			}
			if overlap.HasOverlap {
				for _, conflict := range overlap.ConflictingEntries {
					fmt.Printf("Warning: overlaps entry %s (%s)\n", conflict.ID, conflict.Description)
				}
				if strict {
					return fmt.Errorf("entry overlaps %d existing entries", len(overlap.ConflictingEntries))
				}
			}

			created, err := svcs.TimeEntries.CreateManualEntry(cmd.Context(), entry)
			if err != nil {
				return errorHandler.Handle("add entry", err)
			}

			fmt.Printf("Recorded entry %s on %s\n", created.ID, created.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&employeeID, "employee", "", "employee id (required)")
	cmd.Flags().StringVar(&projectID, "project", "", "project id (required)")
	cmd.Flags().StringVar(&taskID, "task", "", "task id")
	cmd.Flags().StringVar(&startStr, "start", "", "start timestamp, RFC3339 or \"2006-01-02 15:04\" (required)")
	cmd.Flags().StringVar(&endStr, "end", "", "end timestamp (required)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "tags")
	cmd.Flags().BoolVar(&billable, "billable", false, "mark the entry billable")
	cmd.Flags().BoolVar(&strict, "strict", false, "refuse entries that overlap existing ones")
	cmd.MarkFlagRequired("employee")
	cmd.MarkFlagRequired("project")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}
