// Package reconcile implements best-effort matching between imported bank
// statement transactions and system-recorded transactions. The matcher
// suggests candidate pairings by amount; the operator decides which to
// confirm.
package reconcile

import (
	"backoffice/internal/domain"
)

// IsMatch reports whether a bank transaction's amount corresponds to a
// system transaction. System transactions carry positive magnitudes with a
// direction; bank amounts are signed, so a bank debit matches the negated
// system amount. Equality is exact by policy.
func IsMatch(bank domain.BankTransaction, system domain.SystemTransaction) bool {
	switch bank.Type {
	case domain.Credit:
		return bank.Amount.Equal(system.Amount)
	case domain.Debit:
		return bank.Amount.Equal(system.Amount.Neg())
	}
	return false
}

// Session holds the reconciliation state for one bank statement: the
// confirmed 1:1 map from bank transaction id to system transaction id, plus
// the transient active selection. No operation errors; invalid actions are
// silent no-ops and every transition is reversible.
type Session struct {
	reconciled map[string]string
	selected   *domain.BankTransaction
}

// NewSession creates an empty reconciliation session.
func NewSession() *Session {
	return &Session{
		reconciled: make(map[string]string),
	}
}

// NewSessionWithMatches creates a session seeded with previously confirmed
// matches.
func NewSessionWithMatches(matches map[string]string) *Session {
	s := NewSession()
	for bankID, systemID := range matches {
		s.reconciled[bankID] = systemID
	}
	return s
}

// SelectBankTransaction toggles the active bank transaction. Selecting an
// already-reconciled transaction unmatches it instead. Selecting the active
// transaction again deselects it. Otherwise the transaction becomes the
// active selection, replacing any prior one.
func (s *Session) SelectBankTransaction(tx domain.BankTransaction) {
	if _, reconciled := s.reconciled[tx.ID]; reconciled {
		s.Unmatch(tx.ID)
		return
	}
	if s.selected != nil && s.selected.ID == tx.ID {
		s.selected = nil
		return
	}
	s.selected = &tx
}

// ConfirmMatch records the active selection as matched to the given system
// transaction. Without an active selection this is a no-op. The map stays
// 1:1 in both directions: a system transaction already matched elsewhere is
// displaced. Amount equality is deliberately not enforced here; the
// operator may confirm any pairing.
func (s *Session) ConfirmMatch(systemTxID string) {
	if s.selected == nil {
		return
	}
	for bankID, sysID := range s.reconciled {
		if sysID == systemTxID {
			delete(s.reconciled, bankID)
		}
	}
	s.reconciled[s.selected.ID] = systemTxID
	s.selected = nil
}

// HandleSystemTransactionClick unmatches an already-reconciled system
// transaction, confirms a match when a bank transaction is selected, and is
// a no-op otherwise.
func (s *Session) HandleSystemTransactionClick(tx domain.SystemTransaction) {
	for bankID, sysID := range s.reconciled {
		if sysID == tx.ID {
			s.Unmatch(bankID)
			return
		}
	}
	if s.selected != nil {
		s.ConfirmMatch(tx.ID)
	}
}

// Unmatch removes the mapping for the given bank transaction. The key is
// absent afterwards, never present with an empty value. The active
// selection is cleared if it pointed at that transaction.
func (s *Session) Unmatch(bankTxID string) {
	delete(s.reconciled, bankTxID)
	if s.selected != nil && s.selected.ID == bankTxID {
		s.selected = nil
	}
}

// Selected returns the active bank transaction selection, or nil.
func (s *Session) Selected() *domain.BankTransaction {
	return s.selected
}

// IsReconciled reports whether the bank transaction has a confirmed match.
func (s *Session) IsReconciled(bankTxID string) bool {
	_, ok := s.reconciled[bankTxID]
	return ok
}

// SystemTransactionReconciled reports whether the system transaction
// appears as a confirmed match.
func (s *Session) SystemTransactionReconciled(systemTxID string) bool {
	for _, sysID := range s.reconciled {
		if sysID == systemTxID {
			return true
		}
	}
	return false
}

// MatchFor returns the system transaction id matched to the bank
// transaction, if any.
func (s *Session) MatchFor(bankTxID string) (string, bool) {
	sysID, ok := s.reconciled[bankTxID]
	return sysID, ok
}

// Matches returns a copy of the confirmed match map.
func (s *Session) Matches() map[string]string {
	matches := make(map[string]string, len(s.reconciled))
	for bankID, sysID := range s.reconciled {
		matches[bankID] = sysID
	}
	return matches
}
