package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"backoffice/internal/errors"
	"backoffice/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// TimeEntrySearchOptions contains all possible time entry search parameters
type TimeEntrySearchOptions struct {
	EmployeeID *string
	DateFrom   *string // entry_date lower bound, YYYY-MM-DD inclusive
	DateTo     *string // entry_date upper bound, YYYY-MM-DD inclusive
	ClosedOnly bool    // exclude active entries (no end time)
}

// Repository defines the interface for database operations
type Repository interface {
	// Time entry operations
	CreateTimeEntry(ctx context.Context, entry *TimeEntry) error
	GetTimeEntry(ctx context.Context, id string) (*TimeEntry, error)
	SearchTimeEntries(ctx context.Context, opts TimeEntrySearchOptions) ([]*TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, entry *TimeEntry) error
	DeleteTimeEntry(ctx context.Context, id string) error

	// Timesheet operations
	CreateTimesheet(ctx context.Context, timesheet *Timesheet) error
	GetTimesheet(ctx context.Context, id string) (*Timesheet, error)
	GetTimesheetByWeek(ctx context.Context, employeeID, weekStart, weekEnd string) (*Timesheet, error)
	ListTimesheets(ctx context.Context, employeeID string) ([]*Timesheet, error)
	UpdateTimesheet(ctx context.Context, timesheet *Timesheet) error

	// Invoice and expense operations
	CreateInvoice(ctx context.Context, invoice *Invoice) error
	ListInvoices(ctx context.Context) ([]*Invoice, error)
	CreateExpense(ctx context.Context, expense *Expense) error
	ListExpenses(ctx context.Context) ([]*Expense, error)

	// Bank statement operations
	CreateBankTransaction(ctx context.Context, tx *BankTransaction) error
	ListBankTransactions(ctx context.Context, statementID string) ([]*BankTransaction, error)

	// Reconciliation operations
	ListReconciliationMatches(ctx context.Context, statementID string) ([]*ReconciliationMatch, error)
	ReplaceReconciliationMatches(ctx context.Context, statementID string, matches []*ReconciliationMatch) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// A single connection keeps writes serialized and makes :memory:
	// databases behave like one database rather than one per connection.
	db.SetMaxOpenConns(1)

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTimeEntry creates a new time entry
func (r *SQLiteRepository) CreateTimeEntry(ctx context.Context, entry *TimeEntry) error {
	query := `
	INSERT INTO time_entries (id, employee_id, project_id, task_id, description, start_time, end_time, duration_minutes, entry_date, billable, hourly_rate, tags)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return Execute(ctx, r.db, query,
		entry.ID,
		entry.EmployeeID,
		entry.ProjectID,
		entry.TaskID,
		entry.Description,
		FormatTimeForDB(entry.StartTime),
		FormatTimePtrForDB(entry.EndTime),
		entry.DurationMinutes,
		entry.EntryDate,
		boolToInt(entry.Billable),
		entry.HourlyRate,
		entry.Tags,
	)
}

// GetTimeEntry retrieves a time entry by ID
func (r *SQLiteRepository) GetTimeEntry(ctx context.Context, id string) (*TimeEntry, error) {
	query := `
	SELECT id, employee_id, project_id, task_id, description, start_time, end_time, duration_minutes, entry_date, billable, hourly_rate, tags
	FROM time_entries
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTimeEntry, "time entry", id, id)
}

// SearchTimeEntries searches for time entries based on the provided options
func (r *SQLiteRepository) SearchTimeEntries(ctx context.Context, opts TimeEntrySearchOptions) ([]*TimeEntry, error) {
	var conditions []string
	var args []interface{}

	if opts.EmployeeID != nil {
		conditions = append(conditions, "employee_id = ?")
		args = append(args, *opts.EmployeeID)
	}
	if opts.DateFrom != nil {
		conditions = append(conditions, "entry_date >= ?")
		args = append(args, *opts.DateFrom)
	}
	if opts.DateTo != nil {
		conditions = append(conditions, "entry_date <= ?")
		args = append(args, *opts.DateTo)
	}
	if opts.ClosedOnly {
		conditions = append(conditions, "end_time IS NOT NULL")
	}

	query := `
	SELECT id, employee_id, project_id, task_id, description, start_time, end_time, duration_minutes, entry_date, billable, hourly_rate, tags
	FROM time_entries`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY start_time ASC"

	return QueryMultiple(ctx, r.db, query, ScanTimeEntries, "time entries", args...)
}

// UpdateTimeEntry updates an existing time entry
func (r *SQLiteRepository) UpdateTimeEntry(ctx context.Context, entry *TimeEntry) error {
	query := `
	UPDATE time_entries
	SET employee_id = ?, project_id = ?, task_id = ?, description = ?, start_time = ?, end_time = ?, duration_minutes = ?, entry_date = ?, billable = ?, hourly_rate = ?, tags = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "time entry", entry.ID,
		entry.EmployeeID,
		entry.ProjectID,
		entry.TaskID,
		entry.Description,
		FormatTimeForDB(entry.StartTime),
		FormatTimePtrForDB(entry.EndTime),
		entry.DurationMinutes,
		entry.EntryDate,
		boolToInt(entry.Billable),
		entry.HourlyRate,
		entry.Tags,
		entry.ID,
	)
}

// DeleteTimeEntry deletes a time entry by ID
func (r *SQLiteRepository) DeleteTimeEntry(ctx context.Context, id string) error {
	query := `DELETE FROM time_entries WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "time entry", id, id)
}

// CreateTimesheet creates a new timesheet. The per-employee-per-week unique
// constraint is enforced by the schema; violations surface as conflicts.
func (r *SQLiteRepository) CreateTimesheet(ctx context.Context, timesheet *Timesheet) error {
	query := `
	INSERT INTO timesheets (id, employee_id, week_start, week_end, total_hours, billable_hours, status, submitted_at, approved_at, approved_by, comments)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	err := Execute(ctx, r.db, query,
		timesheet.ID,
		timesheet.EmployeeID,
		timesheet.WeekStart,
		timesheet.WeekEnd,
		timesheet.TotalHours,
		timesheet.BillableHours,
		timesheet.Status,
		FormatTimePtrForDB(timesheet.SubmittedAt),
		FormatTimePtrForDB(timesheet.ApprovedAt),
		timesheet.ApprovedBy,
		timesheet.Comments,
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return errors.NewConflictError("timesheet", "a timesheet already exists for this employee and week")
	}
	return err
}

// GetTimesheet retrieves a timesheet by ID
func (r *SQLiteRepository) GetTimesheet(ctx context.Context, id string) (*Timesheet, error) {
	query := `
	SELECT id, employee_id, week_start, week_end, total_hours, billable_hours, status, submitted_at, approved_at, approved_by, comments
	FROM timesheets
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTimesheet, "timesheet", id, id)
}

// GetTimesheetByWeek retrieves the unique timesheet for an employee's week
func (r *SQLiteRepository) GetTimesheetByWeek(ctx context.Context, employeeID, weekStart, weekEnd string) (*Timesheet, error) {
	query := `
	SELECT id, employee_id, week_start, week_end, total_hours, billable_hours, status, submitted_at, approved_at, approved_by, comments
	FROM timesheets
	WHERE employee_id = ? AND week_start = ? AND week_end = ?`

	return QuerySingle(ctx, r.db, query, ScanTimesheet, "timesheet", employeeID+"/"+weekStart, employeeID, weekStart, weekEnd)
}

// ListTimesheets retrieves all timesheets for an employee
func (r *SQLiteRepository) ListTimesheets(ctx context.Context, employeeID string) ([]*Timesheet, error) {
	query := `
	SELECT id, employee_id, week_start, week_end, total_hours, billable_hours, status, submitted_at, approved_at, approved_by, comments
	FROM timesheets
	WHERE employee_id = ?
	ORDER BY week_start ASC`

	return QueryMultiple(ctx, r.db, query, ScanTimesheets, "timesheets", employeeID)
}

// UpdateTimesheet updates an existing timesheet
func (r *SQLiteRepository) UpdateTimesheet(ctx context.Context, timesheet *Timesheet) error {
	query := `
	UPDATE timesheets
	SET total_hours = ?, billable_hours = ?, status = ?, submitted_at = ?, approved_at = ?, approved_by = ?, comments = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "timesheet", timesheet.ID,
		timesheet.TotalHours,
		timesheet.BillableHours,
		timesheet.Status,
		FormatTimePtrForDB(timesheet.SubmittedAt),
		FormatTimePtrForDB(timesheet.ApprovedAt),
		timesheet.ApprovedBy,
		timesheet.Comments,
		timesheet.ID,
	)
}

// CreateInvoice creates a new invoice
func (r *SQLiteRepository) CreateInvoice(ctx context.Context, invoice *Invoice) error {
	query := `INSERT INTO invoices (id, invoice_date, client, status, paid_amount) VALUES (?, ?, ?, ?, ?)`
	return Execute(ctx, r.db, query,
		invoice.ID, FormatTimeForDB(invoice.Date), invoice.Client, invoice.Status, invoice.PaidAmount)
}

// ListInvoices retrieves all invoices
func (r *SQLiteRepository) ListInvoices(ctx context.Context) ([]*Invoice, error) {
	query := `SELECT id, invoice_date, client, status, paid_amount FROM invoices ORDER BY invoice_date ASC`
	return QueryMultiple(ctx, r.db, query, ScanInvoices, "invoices")
}

// CreateExpense creates a new expense
func (r *SQLiteRepository) CreateExpense(ctx context.Context, expense *Expense) error {
	query := `INSERT INTO expenses (id, expense_date, description, amount) VALUES (?, ?, ?, ?)`
	return Execute(ctx, r.db, query,
		expense.ID, FormatTimeForDB(expense.Date), expense.Description, expense.Amount)
}

// ListExpenses retrieves all expenses
func (r *SQLiteRepository) ListExpenses(ctx context.Context) ([]*Expense, error) {
	query := `SELECT id, expense_date, description, amount FROM expenses ORDER BY expense_date ASC`
	return QueryMultiple(ctx, r.db, query, ScanExpenses, "expenses")
}

// CreateBankTransaction stores one imported bank statement transaction
func (r *SQLiteRepository) CreateBankTransaction(ctx context.Context, tx *BankTransaction) error {
	query := `INSERT INTO bank_transactions (id, statement_id, txn_date, description, amount, txn_type) VALUES (?, ?, ?, ?, ?, ?)`
	return Execute(ctx, r.db, query,
		tx.ID, tx.StatementID, FormatTimeForDB(tx.Date), tx.Description, tx.Amount, tx.Type)
}

// ListBankTransactions retrieves all bank transactions for a statement
func (r *SQLiteRepository) ListBankTransactions(ctx context.Context, statementID string) ([]*BankTransaction, error) {
	query := `
	SELECT id, statement_id, txn_date, description, amount, txn_type
	FROM bank_transactions
	WHERE statement_id = ?
	ORDER BY txn_date ASC`

	return QueryMultiple(ctx, r.db, query, ScanBankTransactions, "bank transactions", statementID)
}

// ListReconciliationMatches retrieves the confirmed matches for a statement
func (r *SQLiteRepository) ListReconciliationMatches(ctx context.Context, statementID string) ([]*ReconciliationMatch, error) {
	query := `
	SELECT statement_id, bank_transaction_id, system_transaction_id
	FROM reconciliation_matches
	WHERE statement_id = ?`

	return QueryMultiple(ctx, r.db, query, ScanReconciliationMatches, "reconciliation matches", statementID)
}

// ReplaceReconciliationMatches atomically replaces a statement's confirmed
// matches with the given set, keeping the persisted map identical to the
// session state.
func (r *SQLiteRepository) ReplaceReconciliationMatches(ctx context.Context, statementID string, matches []*ReconciliationMatch) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin transaction", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM reconciliation_matches WHERE statement_id = ?`, statementID); err != nil {
		tx.Rollback()
		return HandleDatabaseError("clear reconciliation matches", err)
	}

	insert := `INSERT INTO reconciliation_matches (statement_id, bank_transaction_id, system_transaction_id) VALUES (?, ?, ?)`
	for _, match := range matches {
		if _, err := tx.ExecContext(ctx, insert, statementID, match.BankTransactionID, match.SystemTransactionID); err != nil {
			tx.Rollback()
			return HandleDatabaseError("insert reconciliation match", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit reconciliation matches", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
