package commands

import (
	"fmt"
	"os"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/spf13/cobra"
)

func newSeedChartCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-chart",
		Short: "Import the default chart of accounts into a workplace",
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

			result, err := a.services.Chart.SeedDefaultChart(ctx, opts.workplaceID, opts.userID)
			if err != nil {
				return fmt.Errorf("seeding chart: %w", err)
			}
			return printImport(cmd.OutOrStdout(), len(result.Created), result.Failures)
		},
	}
}

func newImportChartCommand(opts *globalOptions) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "import-chart <csv>",
		Short: "Import accounts from a CSV file",
		Long:  "Columns: code,name,account_type,parent_code,allow_posting,description. The first line is a header.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireWorkplace(); err != nil {
				return err
			}
			importMode := domain.ChartImportMode(mode)
			if !importMode.IsValid() {
				return fmt.Errorf("unknown mode %q", mode)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()
			rows, parseFailures, err := ReadChartCSV(f)
			if err != nil {
				return err
			}

			ctx, a, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.services.Chart.ImportChart(ctx, opts.workplaceID, rows, importMode, opts.userID)
			if err != nil {
				return fmt.Errorf("importing chart: %w", err)
			}
			return printImport(cmd.OutOrStdout(), len(result.Created), parseFailures, result.Failures)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(domain.ImportExplicit), "parent resolution: EXPLICIT or INFER_FROM_CODE")
	return cmd
}
