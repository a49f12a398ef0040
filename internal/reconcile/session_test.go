package reconcile

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"backoffice/internal/domain"
)

func bankTx(id string, amount string, txType domain.TransactionType) domain.BankTransaction {
	return domain.BankTransaction{
		ID:          id,
		StatementID: "stmt-1",
		Date:        time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Description: "bank " + id,
		Amount:      decimal.RequireFromString(amount),
		Type:        txType,
	}
}

func systemTx(id string, amount string, txType domain.TransactionType) domain.SystemTransaction {
	return domain.SystemTransaction{
		ID:          id,
		Date:        time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Description: "system " + id,
		Amount:      decimal.RequireFromString(amount),
		Type:        txType,
	}
}

func TestIsMatch(t *testing.T) {
	tests := []struct {
		name     string
		bank     domain.BankTransaction
		system   domain.SystemTransaction
		expected bool
	}{
		{
			name:     "should match a credit with equal amounts",
			bank:     bankTx("b1", "2650.00", domain.Credit),
			system:   systemTx("s1", "2650.00", domain.Credit),
			expected: true,
		},
		{
			name:     "should match a debit against the positive system magnitude",
			bank:     bankTx("b1", "-75.50", domain.Debit),
			system:   systemTx("s1", "75.50", domain.Debit),
			expected: true,
		},
		{
			name:     "should not match differing credit amounts",
			bank:     bankTx("b1", "2650.00", domain.Credit),
			system:   systemTx("s1", "2650.01", domain.Credit),
			expected: false,
		},
		{
			name:     "should not match a debit with an unnegated amount",
			bank:     bankTx("b1", "75.50", domain.Debit),
			system:   systemTx("s1", "75.50", domain.Debit),
			expected: false,
		},
		{
			name:     "should match regardless of trailing zeros",
			bank:     bankTx("b1", "100", domain.Credit),
			system:   systemTx("s1", "100.00", domain.Credit),
			expected: true,
		},
		{
			name:     "should not match an unknown bank transaction type",
			bank:     bankTx("b1", "100.00", ""),
			system:   systemTx("s1", "100.00", domain.Credit),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMatch(tt.bank, tt.system))
		})
	}
}

func TestSession_SelectBankTransaction(t *testing.T) {
	t.Run("should make the transaction the active selection", func(t *testing.T) {
		session := NewSession()
		tx := bankTx("b1", "100.00", domain.Credit)

		session.SelectBankTransaction(tx)

		assert.NotNil(t, session.Selected())
		assert.Equal(t, "b1", session.Selected().ID)
	})

	t.Run("should deselect when the active transaction is selected again", func(t *testing.T) {
		session := NewSession()
		tx := bankTx("b1", "100.00", domain.Credit)

		session.SelectBankTransaction(tx)
		session.SelectBankTransaction(tx)

		assert.Nil(t, session.Selected())
	})

	t.Run("should replace a prior selection", func(t *testing.T) {
		session := NewSession()

		session.SelectBankTransaction(bankTx("b1", "100.00", domain.Credit))
		session.SelectBankTransaction(bankTx("b2", "200.00", domain.Credit))

		assert.Equal(t, "b2", session.Selected().ID)
	})

	t.Run("should unmatch a reconciled transaction instead of selecting it", func(t *testing.T) {
		session := NewSessionWithMatches(map[string]string{"b1": "s1"})

		session.SelectBankTransaction(bankTx("b1", "100.00", domain.Credit))

		assert.False(t, session.IsReconciled("b1"))
		assert.Nil(t, session.Selected())
	})
}

func TestSession_ConfirmMatch(t *testing.T) {
	t.Run("should record the pairing and clear the selection", func(t *testing.T) {
		session := NewSession()
		session.SelectBankTransaction(bankTx("b1", "100.00", domain.Credit))

		session.ConfirmMatch("s1")

		sysID, ok := session.MatchFor("b1")
		assert.True(t, ok)
		assert.Equal(t, "s1", sysID)
		assert.Nil(t, session.Selected())
	})

	t.Run("should be a no-op without an active selection", func(t *testing.T) {
		session := NewSession()

		session.ConfirmMatch("s1")

		assert.Empty(t, session.Matches())
	})

	t.Run("should displace an existing match on the same system transaction", func(t *testing.T) {
		session := NewSessionWithMatches(map[string]string{"b1": "s1"})
		session.SelectBankTransaction(bankTx("b2", "100.00", domain.Credit))

		session.ConfirmMatch("s1")

		assert.False(t, session.IsReconciled("b1"))
		sysID, ok := session.MatchFor("b2")
		assert.True(t, ok)
		assert.Equal(t, "s1", sysID)
		assert.Len(t, session.Matches(), 1)
	})

	t.Run("should allow confirming a pairing with unequal amounts", func(t *testing.T) {
		session := NewSession()
		session.SelectBankTransaction(bankTx("b1", "99.99", domain.Credit))

		session.ConfirmMatch("s1")

		assert.True(t, session.IsReconciled("b1"))
	})
}

func TestSession_HandleSystemTransactionClick(t *testing.T) {
	t.Run("should unmatch a reconciled system transaction", func(t *testing.T) {
		session := NewSessionWithMatches(map[string]string{"b1": "s1"})

		session.HandleSystemTransactionClick(systemTx("s1", "100.00", domain.Credit))

		assert.False(t, session.IsReconciled("b1"))
		assert.False(t, session.SystemTransactionReconciled("s1"))
	})

	t.Run("should confirm when a bank transaction is selected", func(t *testing.T) {
		session := NewSession()
		session.SelectBankTransaction(bankTx("b1", "100.00", domain.Credit))

		session.HandleSystemTransactionClick(systemTx("s1", "100.00", domain.Credit))

		assert.True(t, session.IsReconciled("b1"))
	})

	t.Run("should be a no-op with nothing selected and nothing matched", func(t *testing.T) {
		session := NewSession()

		session.HandleSystemTransactionClick(systemTx("s1", "100.00", domain.Credit))

		assert.Empty(t, session.Matches())
	})
}

func TestSession_Unmatch(t *testing.T) {
	t.Run("should remove the key entirely", func(t *testing.T) {
		session := NewSessionWithMatches(map[string]string{"b1": "s1"})

		session.Unmatch("b1")

		_, ok := session.MatchFor("b1")
		assert.False(t, ok)
		assert.NotContains(t, session.Matches(), "b1")
	})

	t.Run("should tolerate unmatching an unknown id", func(t *testing.T) {
		session := NewSession()

		session.Unmatch("missing")

		assert.Empty(t, session.Matches())
	})
}

func TestSession_Matches(t *testing.T) {
	t.Run("should return a copy that does not alias session state", func(t *testing.T) {
		session := NewSessionWithMatches(map[string]string{"b1": "s1"})

		matches := session.Matches()
		matches["b2"] = "s2"

		assert.False(t, session.IsReconciled("b2"))
	})
}
