package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/repository/sqlite"
)

// TimeEntryMapper handles conversion between domain and database TimeEntry models.
type TimeEntryMapper struct{}

// ToDatabase converts a domain TimeEntry to a database TimeEntry.
func (m *TimeEntryMapper) ToDatabase(entry TimeEntry) sqlite.TimeEntry {
	dbEntry := sqlite.TimeEntry{
		ID:              entry.ID,
		EmployeeID:      entry.EmployeeID,
		ProjectID:       entry.ProjectID,
		Description:     entry.Description,
		StartTime:       entry.StartTime,
		EndTime:         entry.EndTime,
		DurationMinutes: entry.DurationMinutes,
		EntryDate:       entry.Date,
		Billable:        entry.Billable,
		Tags:            "[]",
	}
	if entry.TaskID != "" {
		taskID := entry.TaskID
		dbEntry.TaskID = &taskID
	}
	if entry.HourlyRate != nil {
		rate := entry.HourlyRate.String()
		dbEntry.HourlyRate = &rate
	}
	if len(entry.Tags) > 0 {
		if data, err := json.Marshal(entry.Tags); err == nil {
			dbEntry.Tags = string(data)
		}
	}
	return dbEntry
}

// FromDatabase converts a database TimeEntry to a domain TimeEntry.
func (m *TimeEntryMapper) FromDatabase(dbEntry sqlite.TimeEntry) TimeEntry {
	entry := TimeEntry{
		ID:              dbEntry.ID,
		EmployeeID:      dbEntry.EmployeeID,
		ProjectID:       dbEntry.ProjectID,
		Description:     dbEntry.Description,
		StartTime:       dbEntry.StartTime,
		EndTime:         dbEntry.EndTime,
		DurationMinutes: dbEntry.DurationMinutes,
		Date:            dbEntry.EntryDate,
		Billable:        dbEntry.Billable,
	}
	if dbEntry.TaskID != nil {
		entry.TaskID = *dbEntry.TaskID
	}
	if dbEntry.HourlyRate != nil {
		if rate, err := decimal.NewFromString(*dbEntry.HourlyRate); err == nil {
			entry.HourlyRate = &rate
		}
	}
	if dbEntry.Tags != "" {
		var tags []string
		if err := json.Unmarshal([]byte(dbEntry.Tags), &tags); err == nil {
			entry.Tags = tags
		}
	}
	return entry
}

// FromDatabaseSlice converts a slice of database TimeEntries to domain TimeEntries.
func (m *TimeEntryMapper) FromDatabaseSlice(dbEntries []*sqlite.TimeEntry) []TimeEntry {
	entries := make([]TimeEntry, len(dbEntries))
	for i, dbEntry := range dbEntries {
		entries[i] = m.FromDatabase(*dbEntry)
	}
	return entries
}

// TimesheetMapper handles conversion between domain and database Timesheet models.
type TimesheetMapper struct{}

// ToDatabase converts a domain Timesheet to a database Timesheet. Entry
// snapshots are intentionally dropped: they are a derived view.
func (m *TimesheetMapper) ToDatabase(timesheet Timesheet) sqlite.Timesheet {
	dbTimesheet := sqlite.Timesheet{
		ID:            timesheet.ID,
		EmployeeID:    timesheet.EmployeeID,
		WeekStart:     timesheet.WeekStart.Format("2006-01-02"),
		WeekEnd:       timesheet.WeekEnd.Format("2006-01-02"),
		TotalHours:    timesheet.TotalHours,
		BillableHours: timesheet.BillableHours,
		Status:        string(timesheet.Status),
		SubmittedAt:   timesheet.SubmittedAt,
		ApprovedAt:    timesheet.ApprovedAt,
	}
	if timesheet.ApprovedBy != "" {
		approvedBy := timesheet.ApprovedBy
		dbTimesheet.ApprovedBy = &approvedBy
	}
	if timesheet.Comments != "" {
		comments := timesheet.Comments
		dbTimesheet.Comments = &comments
	}
	return dbTimesheet
}

// FromDatabase converts a database Timesheet to a domain Timesheet.
func (m *TimesheetMapper) FromDatabase(dbTimesheet sqlite.Timesheet) Timesheet {
	timesheet := Timesheet{
		ID:            dbTimesheet.ID,
		EmployeeID:    dbTimesheet.EmployeeID,
		TotalHours:    dbTimesheet.TotalHours,
		BillableHours: dbTimesheet.BillableHours,
		Status:        TimesheetStatus(dbTimesheet.Status),
		SubmittedAt:   dbTimesheet.SubmittedAt,
		ApprovedAt:    dbTimesheet.ApprovedAt,
	}
	if start, err := parseDate(dbTimesheet.WeekStart); err == nil {
		timesheet.WeekStart = start
	}
	if end, err := parseDate(dbTimesheet.WeekEnd); err == nil {
		timesheet.WeekEnd = end
	}
	if dbTimesheet.ApprovedBy != nil {
		timesheet.ApprovedBy = *dbTimesheet.ApprovedBy
	}
	if dbTimesheet.Comments != nil {
		timesheet.Comments = *dbTimesheet.Comments
	}
	return timesheet
}

// FinanceMapper handles conversion between domain and database financial models.
type FinanceMapper struct{}

// InvoiceToDatabase converts a domain Invoice to a database Invoice.
func (m *FinanceMapper) InvoiceToDatabase(invoice Invoice) sqlite.Invoice {
	return sqlite.Invoice{
		ID:         invoice.ID,
		Date:       invoice.Date,
		Client:     invoice.Client,
		Status:     invoice.Status,
		PaidAmount: invoice.PaidAmount.String(),
	}
}

// InvoiceFromDatabase converts a database Invoice to a domain Invoice.
func (m *FinanceMapper) InvoiceFromDatabase(dbInvoice sqlite.Invoice) Invoice {
	amount, _ := decimal.NewFromString(dbInvoice.PaidAmount)
	return Invoice{
		ID:         dbInvoice.ID,
		Date:       dbInvoice.Date,
		Client:     dbInvoice.Client,
		Status:     dbInvoice.Status,
		PaidAmount: amount,
	}
}

// ExpenseToDatabase converts a domain Expense to a database Expense.
func (m *FinanceMapper) ExpenseToDatabase(expense Expense) sqlite.Expense {
	return sqlite.Expense{
		ID:          expense.ID,
		Date:        expense.Date,
		Description: expense.Description,
		Amount:      expense.Amount.String(),
	}
}

// ExpenseFromDatabase converts a database Expense to a domain Expense.
func (m *FinanceMapper) ExpenseFromDatabase(dbExpense sqlite.Expense) Expense {
	amount, _ := decimal.NewFromString(dbExpense.Amount)
	return Expense{
		ID:          dbExpense.ID,
		Date:        dbExpense.Date,
		Description: dbExpense.Description,
		Amount:      amount,
	}
}

// BankTransactionToDatabase converts a domain BankTransaction to a database one.
func (m *FinanceMapper) BankTransactionToDatabase(tx BankTransaction) sqlite.BankTransaction {
	return sqlite.BankTransaction{
		ID:          tx.ID,
		StatementID: tx.StatementID,
		Date:        tx.Date,
		Description: tx.Description,
		Amount:      tx.Amount.String(),
		Type:        string(tx.Type),
	}
}

// BankTransactionFromDatabase converts a database BankTransaction to a domain one.
func (m *FinanceMapper) BankTransactionFromDatabase(dbTx sqlite.BankTransaction) BankTransaction {
	amount, _ := decimal.NewFromString(dbTx.Amount)
	return BankTransaction{
		ID:          dbTx.ID,
		StatementID: dbTx.StatementID,
		Date:        dbTx.Date,
		Description: dbTx.Description,
		Amount:      amount,
		Type:        TransactionType(dbTx.Type),
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	TimeEntry *TimeEntryMapper
	Timesheet *TimesheetMapper
	Finance   *FinanceMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		TimeEntry: &TimeEntryMapper{},
		Timesheet: &TimesheetMapper{},
		Finance:   &FinanceMapper{},
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
