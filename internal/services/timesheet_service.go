package services

import (
	"context"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/errors"
	"backoffice/internal/repository/sqlite"
	"backoffice/internal/timecalc"
	"backoffice/internal/validation"
)

// timesheetServiceImpl implements the TimesheetService interface
type timesheetServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.TimesheetValidator
}

// NewTimesheetService creates a new TimesheetService instance
func NewTimesheetService(repo sqlite.Repository) TimesheetService {
	return &timesheetServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewTimesheetValidator(),
	}
}

// Create builds the timesheet for the week containing weekOf. The week is
// Monday-anchored; totals come from the employee's closed entries in that
// week. A second timesheet for the same employee and week is a conflict,
// never a silent overwrite.
func (s *timesheetServiceImpl) Create(ctx context.Context, employeeID string, weekOf time.Time) (*domain.Timesheet, error) {
	if err := s.validator.ValidateForCreation(employeeID, weekOf.Format("2006-01-02")); err != nil {
		return nil, err
	}

	weekStart := timecalc.WeekStart(weekOf)
	weekEnd := timecalc.WeekEnd(weekOf)

	existing, err := s.repo.GetTimesheetByWeek(ctx, employeeID, weekStart.Format("2006-01-02"), weekEnd.Format("2006-01-02"))
	if err != nil && !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("timesheet", "a timesheet already exists for this employee and week").
			WithContext("employee_id", employeeID).
			WithContext("week_start", weekStart.Format("2006-01-02"))
	}

	timesheet := domain.Timesheet{
		ID:         timecalc.NewTimesheetID(),
		EmployeeID: employeeID,
		WeekStart:  weekStart,
		WeekEnd:    weekEnd,
		Status:     domain.StatusDraft,
	}
	if err := s.refresh(ctx, &timesheet); err != nil {
		return nil, err
	}

	dbTimesheet := s.mapper.Timesheet.ToDatabase(timesheet)
	if err := s.repo.CreateTimesheet(ctx, &dbTimesheet); err != nil {
		return nil, err
	}

	return &timesheet, nil
}

// Get returns a timesheet with entries and totals recomputed from the live
// time entry collection. The stored totals are never authoritative, so an
// approved timesheet's displayed totals still track later entry edits.
func (s *timesheetServiceImpl) Get(ctx context.Context, id string) (*domain.Timesheet, error) {
	dbTimesheet, err := s.repo.GetTimesheet(ctx, id)
	if err != nil {
		return nil, err
	}

	timesheet := s.mapper.Timesheet.FromDatabase(*dbTimesheet)
	if err := s.refresh(ctx, &timesheet); err != nil {
		return nil, err
	}
	return &timesheet, nil
}

// List returns an employee's timesheets, each refreshed on read
func (s *timesheetServiceImpl) List(ctx context.Context, employeeID string) ([]domain.Timesheet, error) {
	dbTimesheets, err := s.repo.ListTimesheets(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	timesheets := make([]domain.Timesheet, 0, len(dbTimesheets))
	for _, dbTimesheet := range dbTimesheets {
		timesheet := s.mapper.Timesheet.FromDatabase(*dbTimesheet)
		if err := s.refresh(ctx, &timesheet); err != nil {
			return nil, err
		}
		timesheets = append(timesheets, timesheet)
	}
	return timesheets, nil
}

// UpdateStatus applies a workflow transition and persists the refreshed
// totals alongside it. Approved timesheets cannot change status again.
func (s *timesheetServiceImpl) UpdateStatus(ctx context.Context, id string, status domain.TimesheetStatus, actor, comments string) (*domain.Timesheet, error) {
	if err := s.validator.ValidateStatus(status); err != nil {
		return nil, err
	}

	dbTimesheet, err := s.repo.GetTimesheet(ctx, id)
	if err != nil {
		return nil, err
	}
	timesheet := s.mapper.Timesheet.FromDatabase(*dbTimesheet)

	if !timesheet.Status.CanTransitionTo(status) {
		return nil, errors.NewConflictError("timesheet status",
			"cannot move from "+string(timesheet.Status)+" to "+string(status)).
			WithContext("timesheet_id", id)
	}

	now := time.Now()
	timesheet.Status = status
	switch status {
	case domain.StatusSubmitted:
		timesheet.SubmittedAt = &now
	case domain.StatusApproved:
		timesheet.ApprovedAt = &now
		timesheet.ApprovedBy = actor
	}
	if comments != "" {
		timesheet.Comments = comments
	}

	if err := s.refresh(ctx, &timesheet); err != nil {
		return nil, err
	}

	updated := s.mapper.Timesheet.ToDatabase(timesheet)
	if err := s.repo.UpdateTimesheet(ctx, &updated); err != nil {
		return nil, err
	}

	return &timesheet, nil
}

// refresh recomputes the derived view: the week's closed entries and the
// two-decimal hour totals.
func (s *timesheetServiceImpl) refresh(ctx context.Context, timesheet *domain.Timesheet) error {
	weekStart, weekEnd := timesheet.Week()
	dbEntries, err := s.repo.SearchTimeEntries(ctx, sqlite.TimeEntrySearchOptions{
		EmployeeID: &timesheet.EmployeeID,
		DateFrom:   &weekStart,
		DateTo:     &weekEnd,
		ClosedOnly: true,
	})
	if err != nil {
		return err
	}

	entries := s.mapper.TimeEntry.FromDatabaseSlice(dbEntries)
	timesheet.Entries = entries
	timesheet.TotalHours = timecalc.RoundHours(timecalc.TotalHours(entries))
	timesheet.BillableHours = timecalc.RoundHours(timecalc.BillableHours(entries))
	return nil
}
