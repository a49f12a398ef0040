package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEntry represents one logged work interval for an employee in the
// domain model. This is a pure domain model without database-specific
// concerns.
type TimeEntry struct {
	ID              string
	EmployeeID      string
	ProjectID       string
	TaskID          string
	Description     string
	StartTime       time.Time
	EndTime         *time.Time
	DurationMinutes *int
	Date            string // calendar day, YYYY-MM-DD
	Billable        bool
	HourlyRate      *decimal.Decimal
	Tags            []string
}

// NewTimeEntry creates a new running time entry for the given employee and
// project, dated on the start time's calendar day.
func NewTimeEntry(id, employeeID, projectID, description string, startTime time.Time) TimeEntry {
	return TimeEntry{
		ID:          id,
		EmployeeID:  employeeID,
		ProjectID:   projectID,
		Description: description,
		StartTime:   startTime,
		Date:        startTime.Format("2006-01-02"),
	}
}

// IsActive returns true while no end time has been recorded. An entry is
// active exactly when EndTime is absent; the two states are mutually
// exclusive.
func (te TimeEntry) IsActive() bool {
	return te.EndTime == nil
}

// Stop closes the entry at the given end time and records its duration in
// minutes.
func (te TimeEntry) Stop(endTime time.Time, minutes int) TimeEntry {
	te.EndTime = &endTime
	te.DurationMinutes = &minutes
	return te
}

// IsValid checks if the time entry has valid data.
func (te TimeEntry) IsValid() bool {
	if te.EmployeeID == "" || te.ProjectID == "" {
		return false
	}
	if te.StartTime.IsZero() {
		return false
	}
	if te.EndTime != nil && !te.EndTime.After(te.StartTime) {
		return false
	}
	return true
}
