package export

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"backoffice/internal/domain"
	"backoffice/internal/repository/sqlite"
	"backoffice/internal/services"
)

func setupExportService(t *testing.T) (*Service, services.TimesheetService, services.TimeEntryService) {
	repo, err := sqlite.New(filepath.Join(t.TempDir(), "bo.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
	})

	timesheets := services.NewTimesheetService(repo)
	entries := services.NewTimeEntryService(repo)
	return NewService(timesheets, nil), timesheets, entries
}

func TestService_TimesheetXLSX(t *testing.T) {
	t.Run("should produce a workbook with entry rows and totals", func(t *testing.T) {
		service, timesheets, entries := setupExportService(t)
		ctx := context.Background()

		start := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
		end := start.Add(90 * time.Minute)
		_, err := entries.CreateManualEntry(ctx, domain.TimeEntry{
			EmployeeID:  "e1",
			ProjectID:   "p1",
			Description: "Picking shift",
			StartTime:   start,
			EndTime:     &end,
			Billable:    true,
		})
		require.NoError(t, err)

		timesheet, err := timesheets.Create(ctx, "e1", start)
		require.NoError(t, err)

		data, err := service.TimesheetXLSX(ctx, timesheet.ID)
		require.NoError(t, err)
		require.NotEmpty(t, data)

		f, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Timesheet")
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(rows), 4)
		assert.Equal(t, "Date", rows[0][0])
		assert.Equal(t, "2026-08-24", rows[1][0])
		assert.Equal(t, "Picking shift", rows[1][2])
		assert.Equal(t, "01:30", rows[1][5])
		assert.Equal(t, "yes", rows[1][6])
	})

	t.Run("should export an empty timesheet", func(t *testing.T) {
		service, timesheets, _ := setupExportService(t)
		ctx := context.Background()

		timesheet, err := timesheets.Create(ctx, "e1", time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		data, err := service.TimesheetXLSX(ctx, timesheet.ID)

		require.NoError(t, err)
		assert.NotEmpty(t, data)
	})

	t.Run("should propagate a missing timesheet", func(t *testing.T) {
		service, _, _ := setupExportService(t)

		_, err := service.TimesheetXLSX(context.Background(), "missing")

		assert.Error(t, err)
	})
}
