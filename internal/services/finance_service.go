package services

import (
	"context"

	"backoffice/internal/domain"
	"backoffice/internal/errors"
	"backoffice/internal/repository/sqlite"
)

// financeServiceImpl implements the FinanceService interface
type financeServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewFinanceService creates a new FinanceService instance
func NewFinanceService(repo sqlite.Repository) FinanceService {
	return &financeServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// CreateInvoice persists an invoice
func (s *financeServiceImpl) CreateInvoice(ctx context.Context, invoice domain.Invoice) error {
	if invoice.ID == "" {
		return errors.NewInvalidInputError("invoice_id", invoice.ID, "must not be empty")
	}
	if invoice.Client == "" {
		return errors.NewInvalidInputError("client", invoice.Client, "must not be empty")
	}
	dbInvoice := s.mapper.Finance.InvoiceToDatabase(invoice)
	return s.repo.CreateInvoice(ctx, &dbInvoice)
}

// CreateExpense persists an expense
func (s *financeServiceImpl) CreateExpense(ctx context.Context, expense domain.Expense) error {
	if expense.ID == "" {
		return errors.NewInvalidInputError("expense_id", expense.ID, "must not be empty")
	}
	if expense.Amount.IsNegative() {
		return errors.NewInvalidInputError("amount", expense.Amount.String(), "must be a positive magnitude")
	}
	dbExpense := s.mapper.Finance.ExpenseToDatabase(expense)
	return s.repo.CreateExpense(ctx, &dbExpense)
}

// ImportBankStatement stores an already-parsed batch of bank transactions
// under the given statement id. Parsing the statement file itself happens
// upstream; this accepts the uniform shape only.
func (s *financeServiceImpl) ImportBankStatement(ctx context.Context, statementID string, transactions []domain.BankTransaction) (int, error) {
	if statementID == "" {
		return 0, errors.NewInvalidInputError("statement_id", statementID, "must not be empty")
	}

	imported := 0
	for _, tx := range transactions {
		tx.StatementID = statementID
		if tx.Type == "" {
			if tx.Amount.IsNegative() {
				tx.Type = domain.Debit
			} else {
				tx.Type = domain.Credit
			}
		}
		dbTx := s.mapper.Finance.BankTransactionToDatabase(tx)
		if err := s.repo.CreateBankTransaction(ctx, &dbTx); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
