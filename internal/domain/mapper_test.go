package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"backoffice/internal/repository/sqlite"
)

func TestTimeEntryMapper(t *testing.T) {
	mapper := NewMapper().TimeEntry
	start := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	minutes := 60
	rate := decimal.RequireFromString("42.50")

	t.Run("should round-trip a full entry", func(t *testing.T) {
		entry := TimeEntry{
			ID:              "te_1",
			EmployeeID:      "e1",
			ProjectID:       "p1",
			TaskID:          "t1",
			Description:     "Picking shift",
			StartTime:       start,
			EndTime:         &end,
			DurationMinutes: &minutes,
			Date:            "2026-08-24",
			Billable:        true,
			HourlyRate:      &rate,
			Tags:            []string{"warehouse", "overtime"},
		}

		dbEntry := mapper.ToDatabase(entry)
		back := mapper.FromDatabase(dbEntry)

		assert.Equal(t, entry.ID, back.ID)
		assert.Equal(t, entry.TaskID, back.TaskID)
		assert.Equal(t, entry.Date, back.Date)
		assert.Equal(t, entry.Tags, back.Tags)
		assert.True(t, back.HourlyRate.Equal(rate))
		assert.Equal(t, 60, *back.DurationMinutes)
	})

	t.Run("should store empty tags as an empty JSON array", func(t *testing.T) {
		entry := TimeEntry{ID: "te_1", EmployeeID: "e1", ProjectID: "p1", StartTime: start, Date: "2026-08-24"}

		dbEntry := mapper.ToDatabase(entry)

		assert.Equal(t, "[]", dbEntry.Tags)
		assert.Nil(t, dbEntry.TaskID)
		assert.Nil(t, dbEntry.HourlyRate)
	})
}

func TestTimesheetMapper(t *testing.T) {
	mapper := NewMapper().Timesheet

	t.Run("should round-trip a timesheet without its entries", func(t *testing.T) {
		submittedAt := time.Date(2026, 8, 28, 17, 0, 0, 0, time.UTC)
		timesheet := Timesheet{
			ID:            "ts_1",
			EmployeeID:    "e1",
			WeekStart:     time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
			WeekEnd:       time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
			TotalHours:    3.0,
			BillableHours: 2.5,
			Status:        StatusSubmitted,
			Entries:       []TimeEntry{{ID: "te_1"}},
			SubmittedAt:   &submittedAt,
			ApprovedBy:    "manager",
			Comments:      "Week 35",
		}

		dbTimesheet := mapper.ToDatabase(timesheet)
		assert.Equal(t, "2026-08-24", dbTimesheet.WeekStart)
		assert.Equal(t, "2026-08-30", dbTimesheet.WeekEnd)

		back := mapper.FromDatabase(dbTimesheet)
		assert.Equal(t, timesheet.ID, back.ID)
		assert.True(t, timesheet.WeekStart.Equal(back.WeekStart))
		assert.Equal(t, StatusSubmitted, back.Status)
		assert.Equal(t, "manager", back.ApprovedBy)
		assert.Equal(t, "Week 35", back.Comments)
		// entry snapshots are derived, never stored
		assert.Empty(t, back.Entries)
	})

	t.Run("should map empty approver and comments to NULL", func(t *testing.T) {
		dbTimesheet := mapper.ToDatabase(Timesheet{ID: "ts_1", Status: StatusDraft})

		assert.Nil(t, dbTimesheet.ApprovedBy)
		assert.Nil(t, dbTimesheet.Comments)
	})
}

func TestFinanceMapper(t *testing.T) {
	mapper := NewMapper().Finance

	t.Run("should keep decimal amounts exact through text", func(t *testing.T) {
		tx := BankTransaction{
			ID:          "b1",
			StatementID: "stmt-1",
			Date:        time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
			Description: "Fuel",
			Amount:      decimal.RequireFromString("-75.50"),
			Type:        Debit,
		}

		dbTx := mapper.BankTransactionToDatabase(tx)
		assert.Equal(t, "-75.5", dbTx.Amount)

		back := mapper.BankTransactionFromDatabase(dbTx)
		assert.True(t, back.Amount.Equal(tx.Amount))
		assert.Equal(t, Debit, back.Type)
	})

	t.Run("should round-trip an invoice", func(t *testing.T) {
		invoice := Invoice{
			ID:         "inv-1",
			Date:       time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
			Client:     "Acme Logistics",
			Status:     "paid",
			PaidAmount: decimal.RequireFromString("2650.00"),
		}

		back := mapper.InvoiceFromDatabase(mapper.InvoiceToDatabase(invoice))

		assert.Equal(t, invoice.ID, back.ID)
		assert.True(t, back.PaidAmount.Equal(invoice.PaidAmount))
		assert.True(t, back.IsPaid())
	})
}

func TestTimeEntryMapper_FromDatabaseSlice(t *testing.T) {
	t.Run("should convert every row", func(t *testing.T) {
		mapper := NewMapper().TimeEntry
		rows := []*sqlite.TimeEntry{
			{ID: "te_1", EmployeeID: "e1", Tags: "[]"},
			{ID: "te_2", EmployeeID: "e1", Tags: "[]"},
		}

		entries := mapper.FromDatabaseSlice(rows)

		assert.Len(t, entries, 2)
		assert.Equal(t, "te_1", entries[0].ID)
		assert.Equal(t, "te_2", entries[1].ID)
	})
}
