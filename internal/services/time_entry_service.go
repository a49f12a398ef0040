package services

import (
	"context"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/repository/sqlite"
	"backoffice/internal/timecalc"
	"backoffice/internal/validation"
)

// timeEntryServiceImpl implements the TimeEntryService interface
type timeEntryServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.TimeEntryValidator
}

// NewTimeEntryService creates a new TimeEntryService instance
func NewTimeEntryService(repo sqlite.Repository) TimeEntryService {
	return &timeEntryServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewTimeEntryValidator(),
	}
}

// StartTimer opens a running entry for the employee. Any timer already
// running for the same employee is stopped first so that at most one entry
// is active per employee.
func (s *timeEntryServiceImpl) StartTimer(ctx context.Context, employeeID, projectID, description string, billable bool) (*domain.TimeEntry, error) {
	if _, err := s.StopTimers(ctx, employeeID); err != nil {
		return nil, err
	}

	entry := domain.NewTimeEntry(timecalc.NewTimeEntryID(), employeeID, projectID, description, time.Now())
	entry.Billable = billable

	if err := s.validator.ValidateTimeEntry(entry); err != nil {
		return nil, err
	}

	dbEntry := s.mapper.TimeEntry.ToDatabase(entry)
	if err := s.repo.CreateTimeEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}

	return &entry, nil
}

// StopTimers closes every running entry for the employee, recording the end
// time and the rounded duration in minutes.
func (s *timeEntryServiceImpl) StopTimers(ctx context.Context, employeeID string) ([]domain.TimeEntry, error) {
	dbEntries, err := s.repo.SearchTimeEntries(ctx, sqlite.TimeEntrySearchOptions{EmployeeID: &employeeID})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stopped := make([]domain.TimeEntry, 0)

	for _, dbEntry := range dbEntries {
		if dbEntry.EndTime != nil {
			continue
		}
		entry := s.mapper.TimeEntry.FromDatabase(*dbEntry)
		entry = entry.Stop(now, timecalc.Minutes(entry.StartTime, now))

		updated := s.mapper.TimeEntry.ToDatabase(entry)
		if err := s.repo.UpdateTimeEntry(ctx, &updated); err != nil {
			return nil, err
		}
		stopped = append(stopped, entry)
	}

	return stopped, nil
}

// CreateManualEntry validates and persists a closed entry. Callers are
// expected to run CheckOverlap first and decide whether conflicts block the
// submission; overlap is not enforced here.
func (s *timeEntryServiceImpl) CreateManualEntry(ctx context.Context, entry domain.TimeEntry) (*domain.TimeEntry, error) {
	if entry.ID == "" {
		entry.ID = timecalc.NewTimeEntryID()
	}
	if entry.Date == "" && !entry.StartTime.IsZero() {
		entry.Date = entry.StartTime.Format("2006-01-02")
	}
	if entry.DurationMinutes == nil && entry.EndTime != nil && !entry.StartTime.IsZero() {
		minutes := timecalc.Minutes(entry.StartTime, *entry.EndTime)
		entry.DurationMinutes = &minutes
	}

	if err := s.validator.ValidateTimeEntry(entry); err != nil {
		return nil, err
	}

	dbEntry := s.mapper.TimeEntry.ToDatabase(entry)
	if err := s.repo.CreateTimeEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}

	return &entry, nil
}

// CheckOverlap loads the employee's entries for the candidate's day range
// and reports every conflict.
func (s *timeEntryServiceImpl) CheckOverlap(ctx context.Context, candidate domain.TimeEntry) (timecalc.OverlapResult, error) {
	dbEntries, err := s.repo.SearchTimeEntries(ctx, sqlite.TimeEntrySearchOptions{EmployeeID: &candidate.EmployeeID})
	if err != nil {
		return timecalc.OverlapResult{}, err
	}

	existing := s.mapper.TimeEntry.FromDatabaseSlice(dbEntries)
	return timecalc.Overlap(candidate, existing), nil
}

// GetEntry returns a single time entry by id
func (s *timeEntryServiceImpl) GetEntry(ctx context.Context, id string) (*domain.TimeEntry, error) {
	if err := s.validator.ValidateTimeEntryID(id); err != nil {
		return nil, err
	}

	dbEntry, err := s.repo.GetTimeEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry := s.mapper.TimeEntry.FromDatabase(*dbEntry)
	return &entry, nil
}

// DeleteEntry removes a time entry by id
func (s *timeEntryServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	if err := s.validator.ValidateTimeEntryID(id); err != nil {
		return err
	}
	return s.repo.DeleteTimeEntry(ctx, id)
}
