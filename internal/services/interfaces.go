package services

import (
	"context"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/reconcile"
	"backoffice/internal/timecalc"
)

// TimeEntryService handles timer and manual time entry operations
type TimeEntryService interface {
	// StartTimer opens a running entry for the employee, stopping any
	// timers already running for them
	StartTimer(ctx context.Context, employeeID, projectID, description string, billable bool) (*domain.TimeEntry, error)

	// StopTimers closes every running entry for the employee, recording
	// end time and duration
	StopTimers(ctx context.Context, employeeID string) ([]domain.TimeEntry, error)

	// CreateManualEntry validates and persists a closed entry
	CreateManualEntry(ctx context.Context, entry domain.TimeEntry) (*domain.TimeEntry, error)

	// CheckOverlap reports every existing entry of the same employee that
	// conflicts with the candidate. Overlaps are data for the caller to
	// act on, not errors.
	CheckOverlap(ctx context.Context, candidate domain.TimeEntry) (timecalc.OverlapResult, error)

	// GetEntry returns a single time entry by id
	GetEntry(ctx context.Context, id string) (*domain.TimeEntry, error)

	// DeleteEntry removes a time entry by id
	DeleteEntry(ctx context.Context, id string) error
}

// TimesheetService handles weekly timesheet creation and the approval workflow
type TimesheetService interface {
	// Create builds the timesheet for the week containing weekOf,
	// computing totals from the employee's closed entries. At most one
	// timesheet may exist per employee per week; duplicates conflict.
	Create(ctx context.Context, employeeID string, weekOf time.Time) (*domain.Timesheet, error)

	// Get returns a timesheet with its entries and totals recomputed from
	// the live time entry collection
	Get(ctx context.Context, id string) (*domain.Timesheet, error)

	// List returns an employee's timesheets, each refreshed on read
	List(ctx context.Context, employeeID string) ([]domain.Timesheet, error)

	// UpdateStatus applies a workflow transition. Approved is terminal;
	// illegal transitions conflict.
	UpdateStatus(ctx context.Context, id string, status domain.TimesheetStatus, actor, comments string) (*domain.Timesheet, error)
}

// FinanceService handles the invoice, expense and bank statement records
// that feed reconciliation
type FinanceService interface {
	// CreateInvoice persists an invoice
	CreateInvoice(ctx context.Context, invoice domain.Invoice) error

	// CreateExpense persists an expense
	CreateExpense(ctx context.Context, expense domain.Expense) error

	// ImportBankStatement stores an already-parsed batch of bank
	// transactions under the given statement id
	ImportBankStatement(ctx context.Context, statementID string, transactions []domain.BankTransaction) (int, error)
}

// ReconciliationService wires the stateless matcher to storage: it builds
// the system transaction projection, seeds sessions from persisted matches
// and persists every confirm and unmatch
type ReconciliationService interface {
	// SystemTransactions projects paid invoices and recorded expenses
	// into the uniform transaction shape
	SystemTransactions(ctx context.Context) ([]domain.SystemTransaction, error)

	// BankTransactions lists the imported transactions of a statement
	BankTransactions(ctx context.Context, statementID string) ([]domain.BankTransaction, error)

	// LoadSession returns a session seeded with the statement's
	// previously confirmed matches
	LoadSession(ctx context.Context, statementID string) (*reconcile.Session, error)

	// SaveSession persists the session's confirmed matches for the statement
	SaveSession(ctx context.Context, statementID string, session *reconcile.Session) error

	// Suggestions lists candidate pairings by amount among unmatched
	// transactions
	Suggestions(ctx context.Context, statementID string) ([]reconcile.Suggestion, error)

	// ConfirmMatch records a confirmed pairing and persists it
	ConfirmMatch(ctx context.Context, statementID, bankTxID, systemTxID string) error

	// Unmatch removes a confirmed pairing and persists the removal
	Unmatch(ctx context.Context, statementID, bankTxID string) error
}
