package timecalc

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newID builds a prefixed identifier from the current time and a random
// suffix. Unique within the process lifetime with overwhelmingly high
// probability; no global uniqueness guarantee.
func newID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

// NewTimeEntryID generates a collision-resistant time entry identifier.
func NewTimeEntryID() string {
	return newID("te")
}

// NewTimesheetID generates a collision-resistant timesheet identifier.
func NewTimesheetID() string {
	return newID("ts")
}
