package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/utils/format"
	"github.com/spf13/cobra"
)

func newImportStatementCommand(opts *globalOptions) *cobra.Command {
	var sessionID, dateLayout string

	cmd := &cobra.Command{
		Use:   "import-statement <csv>",
		Short: "Load bank statement rows into an open reconciliation session",
		Long:  "Columns: date,description,amount,direction,movement_type. The first line is a header.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireWorkplace(); err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()
			movements, parseFailures, err := ReadStatementCSV(f, dateLayout)
			if err != nil {
				return err
			}

			ctx, a, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.services.Reconciliation.ImportStatement(ctx, opts.workplaceID, sessionID, movements)
			if err != nil {
				return fmt.Errorf("importing statement: %w", err)
			}

			return printImport(cmd.OutOrStdout(), len(result.Created), parseFailures, result.Failures)
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "reconciliation session id")
	_ = cmd.MarkFlagRequired("session")
	cmd.Flags().StringVar(&dateLayout, "date-format", "2006-01-02", "Go layout of the date column")
	return cmd
}

func newSummaryCommand(opts *globalOptions) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the reconciliation summary of a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.requireWorkplace(); err != nil {
				return err
			}
			ctx, a, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			summary, err := a.services.Reconciliation.ComputeSummary(ctx, opts.workplaceID, sessionID)
			if err != nil {
				return fmt.Errorf("computing summary: %w", err)
			}
			return printSummary(cmd.OutOrStdout(), a.formatter, summary)
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "reconciliation session id")
	_ = cmd.MarkFlagRequired("session")
	return cmd
}

func printSummary(w io.Writer, f format.Formatter, s *domain.ReconciliationSummary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	rows := []struct {
		label string
		value string
	}{
		{"Book balance", f.Amount(s.BookBalance)},
		{"Statement opening", f.Amount(s.StatementOpeningBalance)},
		{"Statement closing", f.Amount(s.StatementClosingBalance)},
		{"Reconciled", f.Amount(s.TotalReconciled)},
		{"Outstanding deposits", f.Amount(s.TotalOutstandingDeposits)},
		{"Outstanding withdrawals", f.Amount(s.TotalOutstandingWithdrawals)},
		{"Unrecorded bank credits", f.Amount(s.UnrecordedBankCredits)},
		{"Unrecorded bank debits", f.Amount(s.UnrecordedBankDebits)},
		{"Projected closing", f.Amount(s.ReconciledProjectedClosing)},
		{"Difference", f.Amount(s.Difference)},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t\n", r.label, r.value)
	}
	fmt.Fprintf(tw, "Balanced\t%t\t\n", s.IsBalanced)
	fmt.Fprintf(tw, "Fully reconciled\t%t\t\n", s.IsFullyReconciled)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(s.OutstandingItems) == 0 {
		return nil
	}
	fmt.Fprintln(w, "\nOutstanding items")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, it := range s.OutstandingItems {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Date(it.TransactionDate), it.SourceType, it.Description, f.Amount(it.Amount))
	}
	return tw.Flush()
}
