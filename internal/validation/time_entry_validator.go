package validation

import (
	"time"

	"backoffice/internal/domain"
)

// TimeEntryValidator provides validation for TimeEntry-related operations
type TimeEntryValidator struct {
	validator *Validator
}

// NewTimeEntryValidator creates a new time entry validator
func NewTimeEntryValidator() *TimeEntryValidator {
	return &TimeEntryValidator{
		validator: NewValidator(),
	}
}

// ValidateTimeEntry checks the required fields of a time entry and its
// temporal consistency. Every violated rule is reported; nothing
// short-circuits. Returns nil when the entry is valid.
func (tev *TimeEntryValidator) ValidateTimeEntry(entry domain.TimeEntry) error {
	validationError := NewValidationError()

	if !tev.validator.IsNonEmptyString(entry.EmployeeID) {
		validationError.AddRequiredError("employee_id")
	}

	if !tev.validator.IsNonEmptyString(entry.ProjectID) {
		validationError.AddRequiredError("project_id")
	}

	if !tev.validator.IsNonEmptyString(entry.Description) {
		validationError.AddRequiredError("description")
	} else if !tev.validator.IsValidDescriptionLength(entry.Description) {
		validationError.AddInvalidValueError("description", entry.Description, "exceeds maximum length")
	}

	if entry.StartTime.IsZero() {
		validationError.AddRequiredError("start_time")
	} else if !tev.validator.IsReasonableDate(entry.StartTime) {
		validationError.AddInvalidValueError("start_time", entry.StartTime, "must be within reasonable date range")
	}

	if !tev.validator.IsNonEmptyString(entry.Date) {
		validationError.AddRequiredError("date")
	} else if !tev.validator.IsValidDateString(entry.Date) {
		validationError.AddInvalidFormatError("date", entry.Date, "YYYY-MM-DD")
	}

	if entry.EndTime != nil && !entry.StartTime.IsZero() {
		if !tev.validator.IsValidTimeRange(entry.StartTime, entry.EndTime) {
			validationError.AddInvalidRangeError("time_range", map[string]time.Time{
				"start": entry.StartTime,
				"end":   *entry.EndTime,
			}, "end time must be after start time")
		}
	}

	if entry.DurationMinutes != nil && *entry.DurationMinutes < 0 {
		validationError.AddInvalidValueError("duration", *entry.DurationMinutes, "must not be negative")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTimeEntryID validates a time entry identifier
func (tev *TimeEntryValidator) ValidateTimeEntryID(id string) error {
	if !tev.validator.IsNonEmptyString(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError("time_entry_id")
		return validationError
	}
	return nil
}
