package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain"
)

func TestTimesheetValidator_ValidateForCreation(t *testing.T) {
	tests := []struct {
		name          string
		employeeID    string
		weekOf        string
		expectedField string
	}{
		{
			name:       "should accept valid inputs",
			employeeID: "e1",
			weekOf:     "2026-08-24",
		},
		{
			name:          "should require the employee",
			employeeID:    "",
			weekOf:        "2026-08-24",
			expectedField: "employee_id",
		},
		{
			name:          "should require the week",
			employeeID:    "e1",
			weekOf:        "",
			expectedField: "week_of",
		},
		{
			name:          "should reject a malformed week date",
			employeeID:    "e1",
			weekOf:        "August 24th",
			expectedField: "week_of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := NewTimesheetValidator()

			err := validator.ValidateForCreation(tt.employeeID, tt.weekOf)

			if tt.expectedField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.GetFieldErrors(tt.expectedField))
		})
	}
}

func TestTimesheetValidator_ValidateStatus(t *testing.T) {
	validator := NewTimesheetValidator()

	t.Run("should accept every known status", func(t *testing.T) {
		for _, status := range []domain.TimesheetStatus{
			domain.StatusDraft, domain.StatusSubmitted, domain.StatusApproved, domain.StatusRejected,
		} {
			assert.NoError(t, validator.ValidateStatus(status))
		}
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		err := validator.ValidateStatus(domain.TimesheetStatus("archived"))
		assert.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
