package timecalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"backoffice/internal/domain"
)

func closedEntryAt(id, employeeID string, start time.Time, duration time.Duration) domain.TimeEntry {
	end := start.Add(duration)
	return domain.TimeEntry{
		ID:         id,
		EmployeeID: employeeID,
		StartTime:  start,
		EndTime:    &end,
	}
}

func TestOverlap(t *testing.T) {
	nine := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		candidate     domain.TimeEntry
		existing      []domain.TimeEntry
		expectOverlap bool
		expectCount   int
	}{
		{
			name:      "should detect a partial overlap",
			candidate: closedEntryAt("new", "e1", nine.Add(30*time.Minute), time.Hour),
			existing: []domain.TimeEntry{
				closedEntryAt("old", "e1", nine, time.Hour),
			},
			expectOverlap: true,
			expectCount:   1,
		},
		{
			name:      "should not conflict when one entry ends exactly as the other starts",
			candidate: closedEntryAt("new", "e1", nine.Add(time.Hour), time.Hour),
			existing: []domain.TimeEntry{
				closedEntryAt("old", "e1", nine, time.Hour),
			},
			expectOverlap: false,
		},
		{
			name:      "should ignore other employees",
			candidate: closedEntryAt("new", "e1", nine.Add(30*time.Minute), time.Hour),
			existing: []domain.TimeEntry{
				closedEntryAt("old", "e2", nine, time.Hour),
			},
			expectOverlap: false,
		},
		{
			name:      "should skip the candidate's own id",
			candidate: closedEntryAt("same", "e1", nine, time.Hour),
			existing: []domain.TimeEntry{
				closedEntryAt("same", "e1", nine, time.Hour),
			},
			expectOverlap: false,
		},
		{
			name:      "should detect containment",
			candidate: closedEntryAt("new", "e1", nine.Add(15*time.Minute), 15*time.Minute),
			existing: []domain.TimeEntry{
				closedEntryAt("old", "e1", nine, 2*time.Hour),
			},
			expectOverlap: true,
			expectCount:   1,
		},
		{
			name:      "should collect every conflicting entry",
			candidate: closedEntryAt("new", "e1", nine, 3*time.Hour),
			existing: []domain.TimeEntry{
				closedEntryAt("a", "e1", nine, time.Hour),
				closedEntryAt("b", "e1", nine.Add(time.Hour), time.Hour),
				closedEntryAt("c", "e1", nine.Add(4*time.Hour), time.Hour),
			},
			expectOverlap: true,
			expectCount:   2,
		},
		{
			name:      "should ignore open entries",
			candidate: closedEntryAt("new", "e1", nine, time.Hour),
			existing: []domain.TimeEntry{
				{ID: "open", EmployeeID: "e1", StartTime: nine},
			},
			expectOverlap: false,
		},
		{
			name:      "should report nothing for an open candidate",
			candidate: domain.TimeEntry{ID: "new", EmployeeID: "e1", StartTime: nine},
			existing: []domain.TimeEntry{
				closedEntryAt("old", "e1", nine, time.Hour),
			},
			expectOverlap: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Overlap(tt.candidate, tt.existing)

			assert.Equal(t, tt.expectOverlap, result.HasOverlap)
			assert.Len(t, result.ConflictingEntries, tt.expectCount)
		})
	}
}
