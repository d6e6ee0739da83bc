package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/N3moAhead/household/internal/money"
)

func convertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <amount> <from> [to]",
		Short: "Convert an amount between currencies (via USD)",
		Long:  "Convert an amount between USD, GBP, EUR and CAN. The target defaults to HOUSEHOLD_DEFAULT_CURRENCY.",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setupLogger(false); err != nil {
				return err
			}

			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			from, err := money.ParseCurrency(args[1])
			if err != nil {
				return err
			}
			to := a.cfg.DefaultCurrency
			if len(args) == 3 {
				if to, err = money.ParseCurrency(args[2]); err != nil {
					return err
				}
			}

			in := money.New(amount, from)
			out, err := in.ConvertChecked(to)
			if err != nil {
				a.log.Error("conversion failed", "amount", in.String(), "to", to, "error", err)
				return err
			}
			a.log.Debug("converted", "from", in.String(), "to", out.String())

			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", in, out)
			return nil
		},
	}
	return cmd
}
