package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain"
)

func validClosedEntry() domain.TimeEntry {
	start := time.Now().Add(-2 * time.Hour)
	end := start.Add(time.Hour)
	minutes := 60
	return domain.TimeEntry{
		ID:              "te_1",
		EmployeeID:      "e1",
		ProjectID:       "p1",
		Description:     "Picking shift",
		StartTime:       start,
		EndTime:         &end,
		DurationMinutes: &minutes,
		Date:            start.Format("2006-01-02"),
	}
}

func TestTimeEntryValidator_ValidateTimeEntry(t *testing.T) {
	tests := []struct {
		name          string
		modify        func(entry *domain.TimeEntry)
		expectedRules int
		expectedField string
	}{
		{
			name:   "should accept a valid closed entry",
			modify: func(entry *domain.TimeEntry) {},
		},
		{
			name: "should accept a valid running entry",
			modify: func(entry *domain.TimeEntry) {
				entry.EndTime = nil
				entry.DurationMinutes = nil
			},
		},
		{
			name: "should require the employee",
			modify: func(entry *domain.TimeEntry) {
				entry.EmployeeID = ""
			},
			expectedRules: 1,
			expectedField: "employee_id",
		},
		{
			name: "should require the project",
			modify: func(entry *domain.TimeEntry) {
				entry.ProjectID = ""
			},
			expectedRules: 1,
			expectedField: "project_id",
		},
		{
			name: "should require the description",
			modify: func(entry *domain.TimeEntry) {
				entry.Description = "   "
			},
			expectedRules: 1,
			expectedField: "description",
		},
		{
			name: "should reject an overlong description",
			modify: func(entry *domain.TimeEntry) {
				entry.Description = string(make([]byte, 600))
			},
			expectedRules: 1,
			expectedField: "description",
		},
		{
			name: "should require the start time",
			modify: func(entry *domain.TimeEntry) {
				entry.StartTime = time.Time{}
			},
			expectedRules: 1,
			expectedField: "start_time",
		},
		{
			name: "should reject a malformed date",
			modify: func(entry *domain.TimeEntry) {
				entry.Date = "24/08/2026"
			},
			expectedRules: 1,
			expectedField: "date",
		},
		{
			name: "should reject an end at or before the start",
			modify: func(entry *domain.TimeEntry) {
				end := entry.StartTime.Add(-time.Hour)
				entry.EndTime = &end
			},
			expectedRules: 1,
			expectedField: "time_range",
		},
		{
			name: "should reject a negative duration",
			modify: func(entry *domain.TimeEntry) {
				minutes := -30
				entry.DurationMinutes = &minutes
			},
			expectedRules: 1,
			expectedField: "duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := NewTimeEntryValidator()
			entry := validClosedEntry()
			tt.modify(&entry)

			err := validator.ValidateTimeEntry(entry)

			if tt.expectedRules == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Len(t, validationErr.Errors, tt.expectedRules)
			assert.NotEmpty(t, validationErr.GetFieldErrors(tt.expectedField))
		})
	}

	t.Run("should report every violated rule, not just the first", func(t *testing.T) {
		validator := NewTimeEntryValidator()
		entry := validClosedEntry()
		entry.Description = ""
		end := entry.StartTime.Add(-time.Hour)
		entry.EndTime = &end

		err := validator.ValidateTimeEntry(entry)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.GreaterOrEqual(t, len(validationErr.Errors), 2)
		assert.Len(t, validationErr.Messages(), len(validationErr.Errors))
	})
}

func TestTimeEntryValidator_ValidateTimeEntryID(t *testing.T) {
	validator := NewTimeEntryValidator()

	t.Run("should accept a non-empty id", func(t *testing.T) {
		assert.NoError(t, validator.ValidateTimeEntryID("te_1"))
	})

	t.Run("should reject an empty id", func(t *testing.T) {
		err := validator.ValidateTimeEntryID("")
		assert.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}
