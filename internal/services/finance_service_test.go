package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain"
	"backoffice/internal/errors"
)

func TestFinanceService_CreateInvoice(t *testing.T) {
	t.Run("should persist an invoice", func(t *testing.T) {
		finance := NewFinanceService(setupRepository(t))

		err := finance.CreateInvoice(context.Background(), domain.Invoice{
			ID:         "inv-1",
			Date:       time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
			Client:     "Acme Logistics",
			Status:     "sent",
			PaidAmount: decimal.Zero,
		})

		assert.NoError(t, err)
	})

	t.Run("should reject a missing id", func(t *testing.T) {
		finance := NewFinanceService(setupRepository(t))

		err := finance.CreateInvoice(context.Background(), domain.Invoice{Client: "Acme"})

		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	})

	t.Run("should reject a missing client", func(t *testing.T) {
		finance := NewFinanceService(setupRepository(t))

		err := finance.CreateInvoice(context.Background(), domain.Invoice{ID: "inv-1"})

		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	})
}

func TestFinanceService_CreateExpense(t *testing.T) {
	t.Run("should persist an expense", func(t *testing.T) {
		finance := NewFinanceService(setupRepository(t))

		err := finance.CreateExpense(context.Background(), domain.Expense{
			ID:          "exp-1",
			Date:        time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC),
			Description: "Fuel",
			Amount:      decimal.RequireFromString("75.50"),
		})

		assert.NoError(t, err)
	})

	t.Run("should reject a negative amount", func(t *testing.T) {
		finance := NewFinanceService(setupRepository(t))

		err := finance.CreateExpense(context.Background(), domain.Expense{
			ID:     "exp-1",
			Amount: decimal.RequireFromString("-10.00"),
		})

		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	})
}

func TestFinanceService_ImportBankStatement(t *testing.T) {
	t.Run("should store the batch under the statement id", func(t *testing.T) {
		repo := setupRepository(t)
		finance := NewFinanceService(repo)
		reconciliation := NewReconciliationService(repo)
		ctx := context.Background()

		imported, err := finance.ImportBankStatement(ctx, "stmt-1", []domain.BankTransaction{
			{ID: "b1", Date: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), Description: "Deposit", Amount: decimal.RequireFromString("100.00"), Type: domain.Credit},
			{ID: "b2", Date: time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC), Description: "Fuel", Amount: decimal.RequireFromString("-20.00"), Type: domain.Debit},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, imported)

		transactions, err := reconciliation.BankTransactions(ctx, "stmt-1")
		require.NoError(t, err)
		assert.Len(t, transactions, 2)
	})

	t.Run("should infer the transaction type from the sign", func(t *testing.T) {
		repo := setupRepository(t)
		finance := NewFinanceService(repo)
		reconciliation := NewReconciliationService(repo)
		ctx := context.Background()

		_, err := finance.ImportBankStatement(ctx, "stmt-1", []domain.BankTransaction{
			{ID: "b1", Date: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), Description: "Deposit", Amount: decimal.RequireFromString("100.00")},
			{ID: "b2", Date: time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC), Description: "Fuel", Amount: decimal.RequireFromString("-20.00")},
		})
		require.NoError(t, err)

		transactions, err := reconciliation.BankTransactions(ctx, "stmt-1")
		require.NoError(t, err)
		require.Len(t, transactions, 2)
		assert.Equal(t, domain.Credit, transactions[0].Type)
		assert.Equal(t, domain.Debit, transactions[1].Type)
	})

	t.Run("should reject a missing statement id", func(t *testing.T) {
		finance := NewFinanceService(setupRepository(t))

		_, err := finance.ImportBankStatement(context.Background(), "", nil)

		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	})
}
