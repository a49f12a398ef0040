package validation

import (
	"backoffice/internal/domain"
)

// TimesheetValidator provides validation for timesheet operations
type TimesheetValidator struct {
	validator *Validator
}

// NewTimesheetValidator creates a new timesheet validator
func NewTimesheetValidator() *TimesheetValidator {
	return &TimesheetValidator{
		validator: NewValidator(),
	}
}

// ValidateForCreation validates the inputs for creating a timesheet
func (tv *TimesheetValidator) ValidateForCreation(employeeID string, weekOf string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(employeeID) {
		validationError.AddRequiredError("employee_id")
	}

	if !tv.validator.IsNonEmptyString(weekOf) {
		validationError.AddRequiredError("week_of")
	} else if !tv.validator.IsValidDateString(weekOf) {
		validationError.AddInvalidFormatError("week_of", weekOf, "YYYY-MM-DD")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateStatus validates that a status value is one of the known states
func (tv *TimesheetValidator) ValidateStatus(status domain.TimesheetStatus) error {
	if !status.IsValid() {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("status", string(status), "must be one of draft, submitted, approved, rejected")
		return validationError
	}
	return nil
}
