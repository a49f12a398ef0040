package sqlite

import "time"

// TimeEntry represents a time entry row. Money and tag fields are stored in
// their text forms; conversion to domain types happens in the mapper.
type TimeEntry struct {
	ID              string
	EmployeeID      string
	ProjectID       string
	TaskID          *string
	Description     string
	StartTime       time.Time
	EndTime         *time.Time // Using pointer to allow NULL values
	DurationMinutes *int
	EntryDate       string
	Billable        bool
	HourlyRate      *string // decimal string
	Tags            string  // JSON array
}

// Timesheet represents a timesheet row. Entry snapshots are not stored;
// they are recomputed from time entries on every read.
type Timesheet struct {
	ID            string
	EmployeeID    string
	WeekStart     string
	WeekEnd       string
	TotalHours    float64
	BillableHours float64
	Status        string
	SubmittedAt   *time.Time
	ApprovedAt    *time.Time
	ApprovedBy    *string
	Comments      *string
}

// Invoice represents an invoice row
type Invoice struct {
	ID         string
	Date       time.Time
	Client     string
	Status     string
	PaidAmount string // decimal string
}

// Expense represents an expense row
type Expense struct {
	ID          string
	Date        time.Time
	Description string
	Amount      string // decimal string
}

// BankTransaction represents an imported bank statement row
type BankTransaction struct {
	ID          string
	StatementID string
	Date        time.Time
	Description string
	Amount      string // signed decimal string
	Type        string
}

// ReconciliationMatch represents one confirmed bank-to-system pairing
type ReconciliationMatch struct {
	StatementID         string
	BankTransactionID   string
	SystemTransactionID string
}
