package reconcile

import (
	"backoffice/internal/domain"
)

// Suggestion pairs a bank transaction with a system transaction whose
// amount corresponds. Suggestions are hints for the operator, not
// confirmed matches.
type Suggestion struct {
	Bank   domain.BankTransaction
	System domain.SystemTransaction
}

// Suggest lists every amount-corresponding pairing among the transactions
// not yet reconciled in the session. A bank or system transaction may
// appear in several suggestions; narrowing to one is the operator's call.
func Suggest(session *Session, banks []domain.BankTransaction, systems []domain.SystemTransaction) []Suggestion {
	var suggestions []Suggestion
	for _, bank := range banks {
		if session.IsReconciled(bank.ID) {
			continue
		}
		for _, system := range systems {
			if session.SystemTransactionReconciled(system.ID) {
				continue
			}
			if IsMatch(bank, system) {
				suggestions = append(suggestions, Suggestion{Bank: bank, System: system})
			}
		}
	}
	return suggestions
}
