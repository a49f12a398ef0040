package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newReconcileCommand creates the reconcile command group.
func newReconcileCommand(svcs *Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile bank statements against invoices and expenses",
	}
	cmd.AddCommand(newReconcileStatusCommand(svcs))
	cmd.AddCommand(newReconcileSuggestCommand(svcs))
	cmd.AddCommand(newReconcileMatchCommand(svcs))
	cmd.AddCommand(newReconcileUnmatchCommand(svcs))
	return cmd
}

func newReconcileStatusCommand(svcs *Services) *cobra.Command {
	var statementID string
	errorHandler := NewErrorHandler()

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show matched and unmatched transactions for a statement",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			session, err := svcs.Reconciliation.LoadSession(ctx, statementID)
			if err != nil {
				return errorHandler.Handle("load session", err)
			}
			transactions, err := svcs.Reconciliation.BankTransactions(ctx, statementID)
			if err != nil {
				return errorHandler.Handle("list bank transactions", err)
			}

			matched := 0
			fmt.Printf("Statement %s\n", statementID)
			for _, tx := range transactions {
				if systemTxID, ok := session.MatchFor(tx.ID); ok {
					matched++
					fmt.Printf("  [matched]   %s  %s  %10s  -> %s\n",
						tx.ID, tx.Date.Format("2006-01-02"), tx.Amount.StringFixed(2), systemTxID)
				} else {
					fmt.Printf("  [unmatched] %s  %s  %10s  %s\n",
						tx.ID, tx.Date.Format("2006-01-02"), tx.Amount.StringFixed(2), tx.Description)
				}
			}
			fmt.Printf("%d of %d transactions matched\n", matched, len(transactions))
			return nil
		},
	}

	cmd.Flags().StringVar(&statementID, "statement", "", "statement id (required)")
	cmd.MarkFlagRequired("statement")

	return cmd
}

func newReconcileSuggestCommand(svcs *Services) *cobra.Command {
	var statementID string
	errorHandler := NewErrorHandler()

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "List candidate matches by amount among unmatched transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			suggestions, err := svcs.Reconciliation.Suggestions(cmd.Context(), statementID)
			if err != nil {
				return errorHandler.Handle("suggest matches", err)
			}

			if len(suggestions) == 0 {
				fmt.Println("No candidate matches")
				return nil
			}
			for _, s := range suggestions {
				fmt.Printf("%s  %10s  %-30s  ~  %s  %s\n",
					s.Bank.ID, s.Bank.Amount.StringFixed(2), s.Bank.Description,
					s.System.ID, s.System.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&statementID, "statement", "", "statement id (required)")
	cmd.MarkFlagRequired("statement")

	return cmd
}

func newReconcileMatchCommand(svcs *Services) *cobra.Command {
	var statementID string
	errorHandler := NewErrorHandler()

	cmd := &cobra.Command{
		Use:   "match <bank-tx-id> <system-tx-id>",
		Short: "Confirm a pairing between a bank and a system transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bankTxID, systemTxID := args[0], args[1]
			if err := svcs.Reconciliation.ConfirmMatch(cmd.Context(), statementID, bankTxID, systemTxID); err != nil {
				return errorHandler.Handle("confirm match", err)
			}
			fmt.Printf("Matched %s with %s\n", bankTxID, systemTxID)
			return nil
		},
	}

	cmd.Flags().StringVar(&statementID, "statement", "", "statement id (required)")
	cmd.MarkFlagRequired("statement")

	return cmd
}

func newReconcileUnmatchCommand(svcs *Services) *cobra.Command {
	var statementID string
	errorHandler := NewErrorHandler()

	cmd := &cobra.Command{
		Use:   "unmatch <bank-tx-id>",
		Short: "Remove a confirmed pairing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bankTxID := args[0]
			if err := svcs.Reconciliation.Unmatch(cmd.Context(), statementID, bankTxID); err != nil {
				return errorHandler.Handle("unmatch", err)
			}
			fmt.Printf("Unmatched %s\n", bankTxID)
			return nil
		},
	}

	cmd.Flags().StringVar(&statementID, "statement", "", "statement id (required)")
	cmd.MarkFlagRequired("statement")

	return cmd
}
