package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"backoffice/internal/domain"
)

func TestSuggest(t *testing.T) {
	t.Run("should pair transactions with corresponding amounts", func(t *testing.T) {
		session := NewSession()
		banks := []domain.BankTransaction{
			bankTx("b1", "2650.00", domain.Credit),
			bankTx("b2", "-75.50", domain.Debit),
		}
		systems := []domain.SystemTransaction{
			systemTx("s1", "2650.00", domain.Credit),
			systemTx("s2", "75.50", domain.Debit),
		}

		suggestions := Suggest(session, banks, systems)

		assert.Len(t, suggestions, 2)
		assert.Equal(t, "b1", suggestions[0].Bank.ID)
		assert.Equal(t, "s1", suggestions[0].System.ID)
		assert.Equal(t, "b2", suggestions[1].Bank.ID)
		assert.Equal(t, "s2", suggestions[1].System.ID)
	})

	t.Run("should skip already-reconciled transactions on both sides", func(t *testing.T) {
		session := NewSessionWithMatches(map[string]string{"b1": "s1"})
		banks := []domain.BankTransaction{
			bankTx("b1", "100.00", domain.Credit),
			bankTx("b2", "100.00", domain.Credit),
		}
		systems := []domain.SystemTransaction{
			systemTx("s1", "100.00", domain.Credit),
			systemTx("s2", "100.00", domain.Credit),
		}

		suggestions := Suggest(session, banks, systems)

		assert.Len(t, suggestions, 1)
		assert.Equal(t, "b2", suggestions[0].Bank.ID)
		assert.Equal(t, "s2", suggestions[0].System.ID)
	})

	t.Run("should list every candidate for an ambiguous amount", func(t *testing.T) {
		session := NewSession()
		banks := []domain.BankTransaction{
			bankTx("b1", "50.00", domain.Credit),
		}
		systems := []domain.SystemTransaction{
			systemTx("s1", "50.00", domain.Credit),
			systemTx("s2", "50.00", domain.Credit),
		}

		suggestions := Suggest(session, banks, systems)

		assert.Len(t, suggestions, 2)
	})

	t.Run("should return nothing when no amounts correspond", func(t *testing.T) {
		session := NewSession()
		banks := []domain.BankTransaction{bankTx("b1", "10.00", domain.Credit)}
		systems := []domain.SystemTransaction{systemTx("s1", "20.00", domain.Credit)}

		assert.Empty(t, Suggest(session, banks, systems))
	})
}
