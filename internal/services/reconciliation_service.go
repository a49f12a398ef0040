package services

import (
	"context"

	"backoffice/internal/domain"
	"backoffice/internal/errors"
	"backoffice/internal/reconcile"
	"backoffice/internal/repository/sqlite"
)

// reconciliationServiceImpl implements the ReconciliationService interface
type reconciliationServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewReconciliationService creates a new ReconciliationService instance
func NewReconciliationService(repo sqlite.Repository) ReconciliationService {
	return &reconciliationServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// SystemTransactions projects paid invoices and recorded expenses into the
// uniform transaction shape used for matching. Unpaid invoices do not
// appear.
func (s *reconciliationServiceImpl) SystemTransactions(ctx context.Context) ([]domain.SystemTransaction, error) {
	dbInvoices, err := s.repo.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}
	dbExpenses, err := s.repo.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}

	transactions := make([]domain.SystemTransaction, 0, len(dbInvoices)+len(dbExpenses))
	for _, dbInvoice := range dbInvoices {
		invoice := s.mapper.Finance.InvoiceFromDatabase(*dbInvoice)
		if !invoice.IsPaid() {
			continue
		}
		transactions = append(transactions, domain.SystemTransactionFromInvoice(invoice))
	}
	for _, dbExpense := range dbExpenses {
		expense := s.mapper.Finance.ExpenseFromDatabase(*dbExpense)
		transactions = append(transactions, domain.SystemTransactionFromExpense(expense))
	}
	return transactions, nil
}

// BankTransactions lists the imported transactions of a statement
func (s *reconciliationServiceImpl) BankTransactions(ctx context.Context, statementID string) ([]domain.BankTransaction, error) {
	dbTxs, err := s.repo.ListBankTransactions(ctx, statementID)
	if err != nil {
		return nil, err
	}

	transactions := make([]domain.BankTransaction, 0, len(dbTxs))
	for _, dbTx := range dbTxs {
		transactions = append(transactions, s.mapper.Finance.BankTransactionFromDatabase(*dbTx))
	}
	return transactions, nil
}

// LoadSession returns a session seeded with the statement's previously
// confirmed matches.
func (s *reconciliationServiceImpl) LoadSession(ctx context.Context, statementID string) (*reconcile.Session, error) {
	dbMatches, err := s.repo.ListReconciliationMatches(ctx, statementID)
	if err != nil {
		return nil, err
	}

	matches := make(map[string]string, len(dbMatches))
	for _, dbMatch := range dbMatches {
		matches[dbMatch.BankTransactionID] = dbMatch.SystemTransactionID
	}
	return reconcile.NewSessionWithMatches(matches), nil
}

// SaveSession persists the session's confirmed matches for the statement
func (s *reconciliationServiceImpl) SaveSession(ctx context.Context, statementID string, session *reconcile.Session) error {
	matches := session.Matches()
	dbMatches := make([]*sqlite.ReconciliationMatch, 0, len(matches))
	for bankID, systemID := range matches {
		dbMatches = append(dbMatches, &sqlite.ReconciliationMatch{
			StatementID:         statementID,
			BankTransactionID:   bankID,
			SystemTransactionID: systemID,
		})
	}
	return s.repo.ReplaceReconciliationMatches(ctx, statementID, dbMatches)
}

// Suggestions lists candidate pairings by amount among the statement's
// unmatched transactions.
func (s *reconciliationServiceImpl) Suggestions(ctx context.Context, statementID string) ([]reconcile.Suggestion, error) {
	session, err := s.LoadSession(ctx, statementID)
	if err != nil {
		return nil, err
	}
	banks, err := s.BankTransactions(ctx, statementID)
	if err != nil {
		return nil, err
	}
	systems, err := s.SystemTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return reconcile.Suggest(session, banks, systems), nil
}

// ConfirmMatch records the pairing for the statement and persists it. The
// operator may confirm any pairing; amount equality is never enforced.
func (s *reconciliationServiceImpl) ConfirmMatch(ctx context.Context, statementID, bankTxID, systemTxID string) error {
	session, err := s.LoadSession(ctx, statementID)
	if err != nil {
		return err
	}
	bank, err := s.findBankTransaction(ctx, statementID, bankTxID)
	if err != nil {
		return err
	}

	// Re-pairing replaces any previous match on either side.
	session.Unmatch(bankTxID)
	session.SelectBankTransaction(*bank)
	session.ConfirmMatch(systemTxID)

	return s.SaveSession(ctx, statementID, session)
}

// Unmatch removes a confirmed pairing and persists the removal
func (s *reconciliationServiceImpl) Unmatch(ctx context.Context, statementID, bankTxID string) error {
	session, err := s.LoadSession(ctx, statementID)
	if err != nil {
		return err
	}
	session.Unmatch(bankTxID)
	return s.SaveSession(ctx, statementID, session)
}

func (s *reconciliationServiceImpl) findBankTransaction(ctx context.Context, statementID, bankTxID string) (*domain.BankTransaction, error) {
	banks, err := s.BankTransactions(ctx, statementID)
	if err != nil {
		return nil, err
	}
	for _, bank := range banks {
		if bank.ID == bankTxID {
			return &bank, nil
		}
	}
	return nil, errors.NewNotFoundError("bank transaction", bankTxID)
}
