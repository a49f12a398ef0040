package timecalc

import (
	"backoffice/internal/domain"
)

// OverlapResult reports every existing entry that conflicts with a
// candidate, not just the first.
type OverlapResult struct {
	HasOverlap         bool
	ConflictingEntries []domain.TimeEntry
}

// Overlap checks the candidate against existing entries for the same
// employee. An entry sharing the candidate's id is skipped so that
// edit-in-place checks do not conflict with themselves, and only entries
// with both a start and an end time participate. Intervals are half-open:
// one entry ending exactly when another starts does not overlap.
func Overlap(candidate domain.TimeEntry, existing []domain.TimeEntry) OverlapResult {
	result := OverlapResult{ConflictingEntries: []domain.TimeEntry{}}

	if candidate.StartTime.IsZero() || candidate.EndTime == nil {
		return result
	}

	for _, entry := range existing {
		if entry.EmployeeID != candidate.EmployeeID {
			continue
		}
		if entry.ID == candidate.ID {
			continue
		}
		if entry.StartTime.IsZero() || entry.EndTime == nil {
			continue
		}
		if candidate.StartTime.Before(*entry.EndTime) && entry.StartTime.Before(*candidate.EndTime) {
			result.ConflictingEntries = append(result.ConflictingEntries, entry)
		}
	}

	result.HasOverlap = len(result.ConflictingEntries) > 0
	return result
}
