// Package export produces XLSX workbooks for back office records.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"backoffice/internal/services"
	"backoffice/internal/timecalc"
)

// Service is a tiny façade over the timesheet service that produces XLSX
// bytes for exports.
type Service struct {
	timesheets services.TimesheetService
	logger     *slog.Logger
}

// NewService creates a new export service.
func NewService(timesheets services.TimesheetService, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{timesheets: timesheets, logger: logger}
}

// TimesheetXLSX returns an XLSX workbook (as bytes) for the given
// timesheet: one row per entry plus the rolled-up totals.
func (s *Service) TimesheetXLSX(ctx context.Context, timesheetID string) ([]byte, error) {
	start := time.Now()

	timesheet, err := s.timesheets.Get(ctx, timesheetID)
	if err != nil {
		return nil, fmt.Errorf("load timesheet: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Timesheet"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{"Date", "Project", "Description", "Start", "End", "Duration", "Billable"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, entry := range timesheet.Entries {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, entry.Date)
		write(2, entry.ProjectID)
		write(3, entry.Description)
		write(4, entry.StartTime.Format("15:04"))
		if entry.EndTime != nil {
			write(5, entry.EndTime.Format("15:04"))
		} else {
			write(5, "")
		}
		if entry.DurationMinutes != nil {
			write(6, timecalc.FormatMinutes(*entry.DurationMinutes))
		} else if entry.EndTime != nil {
			write(6, timecalc.FormatMinutes(timecalc.Minutes(entry.StartTime, *entry.EndTime)))
		} else {
			write(6, "")
		}
		if entry.Billable {
			write(7, "yes")
		} else {
			write(7, "no")
		}
		row++
	}

	row++
	totalCell, _ := excelize.CoordinatesToCellName(1, row)
	_ = f.SetCellValue(sheet, totalCell, "Total hours")
	totalValue, _ := excelize.CoordinatesToCellName(2, row)
	_ = f.SetCellValue(sheet, totalValue, timesheet.TotalHours)
	row++
	billableCell, _ := excelize.CoordinatesToCellName(1, row)
	_ = f.SetCellValue(sheet, billableCell, "Billable hours")
	billableValue, _ := excelize.CoordinatesToCellName(2, row)
	_ = f.SetCellValue(sheet, billableValue, timesheet.BillableHours)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	weekStart, weekEnd := timesheet.Week()
	s.logger.Info("exported timesheet",
		"timesheet_id", timesheetID,
		"week_start", weekStart,
		"week_end", weekEnd,
		"entries", len(timesheet.Entries),
		"duration", time.Since(start),
	)

	return buf.Bytes(), nil
}
