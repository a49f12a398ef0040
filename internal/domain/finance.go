package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType defines the nature of a transaction.
type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

// Invoice represents a client invoice. Only paid invoices project into
// system transactions for reconciliation.
type Invoice struct {
	ID         string
	Date       time.Time
	Client     string
	Status     string
	PaidAmount decimal.Decimal
}

// IsPaid reports whether the invoice has been settled.
func (i Invoice) IsPaid() bool {
	return i.Status == "paid"
}

// Expense represents a recorded business expense. Amounts are stored as
// positive magnitudes.
type Expense struct {
	ID          string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// BankTransaction is one row of an imported bank statement. Amount is
// signed: positive for credits, negative for debits.
type BankTransaction struct {
	ID          string
	StatementID string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
}

// SystemTransaction is the uniform projection of paid invoices and recorded
// expenses used for matching against bank data. Amounts are positive
// magnitudes; Type carries the direction.
type SystemTransaction struct {
	ID          string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
}

// SystemTransactionFromInvoice projects a paid invoice into a credit
// system transaction carrying the paid amount.
func SystemTransactionFromInvoice(inv Invoice) SystemTransaction {
	return SystemTransaction{
		ID:          inv.ID,
		Date:        inv.Date,
		Description: "Invoice - " + inv.Client,
		Amount:      inv.PaidAmount,
		Type:        Credit,
	}
}

// SystemTransactionFromExpense projects an expense into a debit system
// transaction with its positive magnitude.
func SystemTransactionFromExpense(exp Expense) SystemTransaction {
	return SystemTransaction{
		ID:          exp.ID,
		Date:        exp.Date,
		Description: exp.Description,
		Amount:      exp.Amount,
		Type:        Debit,
	}
}
