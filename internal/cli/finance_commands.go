package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"backoffice/internal/domain"
	"backoffice/internal/errors"
)

// newInvoiceCommand creates the invoice command group.
func newInvoiceCommand(svcs *Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Manage invoices",
	}
	cmd.AddCommand(newInvoiceAddCommand(svcs))
	return cmd
}

func newInvoiceAddCommand(svcs *Services) *cobra.Command {
	var id, dateStr, client, status, paidStr string
	errorHandler := NewErrorHandler()

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an invoice",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate("date", dateStr)
			if err != nil {
				return errorHandler.Handle("add invoice", err)
			}
			paid, err := decimal.NewFromString(paidStr)
			if err != nil {
				return errorHandler.Handle("add invoice", errors.NewInvalidInputError("paid", paidStr, "must be a decimal amount"))
			}

			invoice := domain.Invoice{ID: id, Date: date, Client: client, Status: status, PaidAmount: paid}
			if err := svcs.Finance.CreateInvoice(cmd.Context(), invoice); err != nil {
				return errorHandler.Handle("add invoice", err)
			}

			fmt.Printf("Recorded invoice %s for %s\n", invoice.ID, invoice.Client)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "invoice id (required)")
	cmd.Flags().StringVar(&dateStr, "date", "", "invoice date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&client, "client", "", "client name (required)")
	cmd.Flags().StringVar(&status, "status", "draft", "invoice status")
	cmd.Flags().StringVar(&paidStr, "paid", "0", "paid amount")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("client")

	return cmd
}

// newExpenseCommand creates the expense command group.
func newExpenseCommand(svcs *Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Manage expenses",
	}
	cmd.AddCommand(newExpenseAddCommand(svcs))
	return cmd
}

func newExpenseAddCommand(svcs *Services) *cobra.Command {
	var id, dateStr, amountStr string
	errorHandler := NewErrorHandler()

	cmd := &cobra.Command{
		Use:   "add \"description\"",
		Short: "Record an expense",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate("date", dateStr)
			if err != nil {
				return errorHandler.Handle("add expense", err)
			}
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return errorHandler.Handle("add expense", errors.NewInvalidInputError("amount", amountStr, "must be a decimal amount"))
			}

			expense := domain.Expense{ID: id, Date: date, Description: strings.Join(args, " "), Amount: amount}
			if err := svcs.Finance.CreateExpense(cmd.Context(), expense); err != nil {
				return errorHandler.Handle("add expense", err)
			}

			fmt.Printf("Recorded expense %s: %s\n", expense.ID, expense.Amount.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "expense id (required)")
	cmd.Flags().StringVar(&dateStr, "date", "", "expense date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "positive amount (required)")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("amount")

	return cmd
}

// newBankCommand creates the bank command group.
func newBankCommand(svcs *Services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Manage bank statement imports",
	}
	cmd.AddCommand(newBankImportCommand(svcs))
	return cmd
}

// bankStatementFile is the already-parsed statement shape accepted for
// import. Statement parsing itself is upstream of this tool.
type bankStatementFile struct {
	Transactions []struct {
		ID          string `json:"id"`
		Date        string `json:"date"`
		Description string `json:"description"`
		Amount      string `json:"amount"`
		Type        string `json:"type"`
	} `json:"transactions"`
}

func newBankImportCommand(svcs *Services) *cobra.Command {
	var statementID, filePath string
	errorHandler := NewErrorHandler()

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import an already-parsed bank statement (JSON)",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", filePath, err)
			}

			var file bankStatementFile
			if err := json.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("failed to parse %s: %w", filePath, err)
			}

			transactions := make([]domain.BankTransaction, 0, len(file.Transactions))
			for _, raw := range file.Transactions {
				date, err := parseDate("date", raw.Date)
				if err != nil {
					return errorHandler.Handle("import statement", err)
				}
				amount, err := decimal.NewFromString(raw.Amount)
				if err != nil {
					return errorHandler.Handle("import statement",
						errors.NewInvalidInputError("amount", raw.Amount, "must be a signed decimal amount"))
				}
				transactions = append(transactions, domain.BankTransaction{
					ID:          raw.ID,
					Date:        date,
					Description: raw.Description,
					Amount:      amount,
					Type:        domain.TransactionType(raw.Type),
				})
			}

			imported, err := svcs.Finance.ImportBankStatement(cmd.Context(), statementID, transactions)
			if err != nil {
				return errorHandler.Handle("import statement", err)
			}

			fmt.Printf("Imported %d transactions into statement %s\n", imported, statementID)
			return nil
		},
	}

	cmd.Flags().StringVar(&statementID, "statement", "", "statement id (required)")
	cmd.Flags().StringVar(&filePath, "file", "", "parsed statement JSON file (required)")
	cmd.MarkFlagRequired("statement")
	cmd.MarkFlagRequired("file")

	return cmd
}
