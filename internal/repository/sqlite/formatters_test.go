package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeForDB(t *testing.T) {
	t.Run("should format as RFC3339", func(t *testing.T) {
		input := time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC)

		assert.Equal(t, "2026-08-24T09:30:00Z", FormatTimeForDB(input))
	})

	t.Run("should round-trip through parse", func(t *testing.T) {
		input := time.Date(2026, 8, 24, 9, 30, 15, 0, time.UTC)

		parsed, err := ParseTimeFromDB(FormatTimeForDB(input))

		require.NoError(t, err)
		assert.True(t, input.Equal(parsed))
	})
}

func TestFormatTimePtrForDB(t *testing.T) {
	t.Run("should return nil for a nil pointer", func(t *testing.T) {
		assert.Nil(t, FormatTimePtrForDB(nil))
	})

	t.Run("should format a non-nil pointer", func(t *testing.T) {
		input := time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC)

		assert.Equal(t, "2026-08-24T09:30:00Z", FormatTimePtrForDB(&input))
	})
}

func TestParseTimeFromDB(t *testing.T) {
	t.Run("should reject malformed values", func(t *testing.T) {
		_, err := ParseTimeFromDB("24/08/2026 09:30")
		assert.Error(t, err)
	})
}
