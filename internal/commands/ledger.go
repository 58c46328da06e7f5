package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRebuildBalancesCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild-balances",
		Short: "Recompute stored account balances from posted journal lines",
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

			updated, err := a.services.Ledger.RebuildBalances(ctx, opts.workplaceID)
			if err != nil {
				return fmt.Errorf("rebuilding balances: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d account balance(s) corrected\n", updated)
			return nil
		},
	}
}
