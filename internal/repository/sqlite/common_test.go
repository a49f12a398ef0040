package sqlite

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"backoffice/internal/errors"
)

// MockResult implements sql.Result for testing
type MockResult struct {
	lastInsertID int64
	rowsAffected int64
	insertErr    error
	rowsErr      error
}

func (mr *MockResult) LastInsertId() (int64, error) {
	return mr.lastInsertID, mr.insertErr
}

func (mr *MockResult) RowsAffected() (int64, error) {
	return mr.rowsAffected, mr.rowsErr
}

func TestHandleDatabaseError(t *testing.T) {
	originalErr := stderrors.New("database connection failed")
	result := HandleDatabaseError("create time entry", originalErr)

	assert.NotNil(t, result)
	assert.True(t, errors.IsErrorType(result, errors.ErrorTypeDatabase))
	assert.Contains(t, result.Error(), "create time entry")
	assert.Contains(t, result.Error(), "database connection failed")
}

func TestValidateRowsAffected(t *testing.T) {
	tests := []struct {
		name           string
		result         *MockResult
		expectError    bool
		expectNotFound bool
	}{
		{
			name:        "should pass when a row was affected",
			result:      &MockResult{rowsAffected: 1},
			expectError: false,
		},
		{
			name:           "should return not found when no rows were affected",
			result:         &MockResult{rowsAffected: 0},
			expectError:    true,
			expectNotFound: true,
		},
		{
			name:        "should surface errors from RowsAffected",
			result:      &MockResult{rowsErr: stderrors.New("rows affected error")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRowsAffected(tt.result, "time entry", "te_123")

			if tt.expectError {
				assert.Error(t, err)
				if tt.expectNotFound {
					assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
					assert.Contains(t, err.Error(), "te_123")
				} else {
					assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
