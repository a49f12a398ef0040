package domain

import (
	"time"
)

// TimesheetStatus represents the approval state of a timesheet.
type TimesheetStatus string

const (
	StatusDraft     TimesheetStatus = "draft"
	StatusSubmitted TimesheetStatus = "submitted"
	StatusApproved  TimesheetStatus = "approved"
	StatusRejected  TimesheetStatus = "rejected"
)

// IsValid reports whether the status is one of the known states.
func (s TimesheetStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// AllowedTransitions returns the set of states reachable from this status.
// Approved is terminal. A rejected timesheet may be re-submitted.
func (s TimesheetStatus) AllowedTransitions() []TimesheetStatus {
	switch s {
	case StatusDraft:
		return []TimesheetStatus{StatusSubmitted}
	case StatusSubmitted:
		return []TimesheetStatus{StatusApproved, StatusRejected}
	case StatusRejected:
		return []TimesheetStatus{StatusSubmitted}
	default:
		return nil
	}
}

// CanTransitionTo reports whether moving to the target status is legal.
func (s TimesheetStatus) CanTransitionTo(target TimesheetStatus) bool {
	for _, allowed := range s.AllowedTransitions() {
		if allowed == target {
			return true
		}
	}
	return false
}

// Timesheet is a weekly rollup of an employee's closed time entries.
// Entries and the hour totals are a derived view: they are recomputed from
// the live time entry collection on every read, so the stored values are
// never authoritative.
type Timesheet struct {
	ID            string
	EmployeeID    string
	WeekStart     time.Time
	WeekEnd       time.Time
	TotalHours    float64
	BillableHours float64
	Status        TimesheetStatus
	Entries       []TimeEntry
	SubmittedAt   *time.Time
	ApprovedAt    *time.Time
	ApprovedBy    string
	Comments      string
}

// Week returns the timesheet's week bounds as YYYY-MM-DD strings.
func (ts Timesheet) Week() (string, string) {
	return ts.WeekStart.Format("2006-01-02"), ts.WeekEnd.Format("2006-01-02")
}
