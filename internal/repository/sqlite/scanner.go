package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// scanCollection scans all rows using the single-row scan function
func scanCollection[T any](rows Rows, scanFunc func(Scanner) (*T, error)) ([]*T, error) {
	var items []*T
	for rows.Next() {
		item, err := scanFunc(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// ScanTimeEntry scans a single time entry from a database row
func ScanTimeEntry(scanner Scanner) (*TimeEntry, error) {
	entry := &TimeEntry{}
	var startTime string
	var endTime, taskID, hourlyRate sql.NullString
	var durationMinutes sql.NullInt64
	var billable int

	err := scanner.Scan(
		&entry.ID,
		&entry.EmployeeID,
		&entry.ProjectID,
		&taskID,
		&entry.Description,
		&startTime,
		&endTime,
		&durationMinutes,
		&entry.EntryDate,
		&billable,
		&hourlyRate,
		&entry.Tags,
	)
	if err != nil {
		return nil, err
	}

	entry.StartTime, err = ParseTimeFromDB(startTime)
	if err != nil {
		return nil, err
	}
	if endTime.Valid {
		end, err := ParseTimeFromDB(endTime.String)
		if err != nil {
			return nil, err
		}
		entry.EndTime = &end
	}
	if taskID.Valid {
		entry.TaskID = &taskID.String
	}
	if durationMinutes.Valid {
		minutes := int(durationMinutes.Int64)
		entry.DurationMinutes = &minutes
	}
	if hourlyRate.Valid {
		entry.HourlyRate = &hourlyRate.String
	}
	entry.Billable = billable != 0

	return entry, nil
}

// ScanTimeEntries scans multiple time entries from database rows
func ScanTimeEntries(rows Rows) ([]*TimeEntry, error) {
	return scanCollection(rows, ScanTimeEntry)
}

// ScanTimesheet scans a single timesheet from a database row
func ScanTimesheet(scanner Scanner) (*Timesheet, error) {
	timesheet := &Timesheet{}
	var submittedAt, approvedAt, approvedBy, comments sql.NullString

	err := scanner.Scan(
		&timesheet.ID,
		&timesheet.EmployeeID,
		&timesheet.WeekStart,
		&timesheet.WeekEnd,
		&timesheet.TotalHours,
		&timesheet.BillableHours,
		&timesheet.Status,
		&submittedAt,
		&approvedAt,
		&approvedBy,
		&comments,
	)
	if err != nil {
		return nil, err
	}

	if submittedAt.Valid {
		t, err := ParseTimeFromDB(submittedAt.String)
		if err != nil {
			return nil, err
		}
		timesheet.SubmittedAt = &t
	}
	if approvedAt.Valid {
		t, err := ParseTimeFromDB(approvedAt.String)
		if err != nil {
			return nil, err
		}
		timesheet.ApprovedAt = &t
	}
	if approvedBy.Valid {
		timesheet.ApprovedBy = &approvedBy.String
	}
	if comments.Valid {
		timesheet.Comments = &comments.String
	}

	return timesheet, nil
}

// ScanTimesheets scans multiple timesheets from database rows
func ScanTimesheets(rows Rows) ([]*Timesheet, error) {
	return scanCollection(rows, ScanTimesheet)
}

// ScanInvoice scans a single invoice from a database row
func ScanInvoice(scanner Scanner) (*Invoice, error) {
	invoice := &Invoice{}
	var date string

	err := scanner.Scan(&invoice.ID, &date, &invoice.Client, &invoice.Status, &invoice.PaidAmount)
	if err != nil {
		return nil, err
	}

	invoice.Date, err = ParseTimeFromDB(date)
	if err != nil {
		return nil, err
	}

	return invoice, nil
}

// ScanInvoices scans multiple invoices from database rows
func ScanInvoices(rows Rows) ([]*Invoice, error) {
	return scanCollection(rows, ScanInvoice)
}

// ScanExpense scans a single expense from a database row
func ScanExpense(scanner Scanner) (*Expense, error) {
	expense := &Expense{}
	var date string

	err := scanner.Scan(&expense.ID, &date, &expense.Description, &expense.Amount)
	if err != nil {
		return nil, err
	}

	expense.Date, err = ParseTimeFromDB(date)
	if err != nil {
		return nil, err
	}

	return expense, nil
}

// ScanExpenses scans multiple expenses from database rows
func ScanExpenses(rows Rows) ([]*Expense, error) {
	return scanCollection(rows, ScanExpense)
}

// ScanBankTransaction scans a single bank transaction from a database row
func ScanBankTransaction(scanner Scanner) (*BankTransaction, error) {
	tx := &BankTransaction{}
	var date string

	err := scanner.Scan(&tx.ID, &tx.StatementID, &date, &tx.Description, &tx.Amount, &tx.Type)
	if err != nil {
		return nil, err
	}

	tx.Date, err = ParseTimeFromDB(date)
	if err != nil {
		return nil, err
	}

	return tx, nil
}

// ScanBankTransactions scans multiple bank transactions from database rows
func ScanBankTransactions(rows Rows) ([]*BankTransaction, error) {
	return scanCollection(rows, ScanBankTransaction)
}

// ScanReconciliationMatch scans a single reconciliation match from a database row
func ScanReconciliationMatch(scanner Scanner) (*ReconciliationMatch, error) {
	match := &ReconciliationMatch{}
	err := scanner.Scan(&match.StatementID, &match.BankTransactionID, &match.SystemTransactionID)
	if err != nil {
		return nil, err
	}
	return match, nil
}

// ScanReconciliationMatches scans multiple reconciliation matches from database rows
func ScanReconciliationMatches(rows Rows) ([]*ReconciliationMatch, error) {
	return scanCollection(rows, ScanReconciliationMatch)
}
