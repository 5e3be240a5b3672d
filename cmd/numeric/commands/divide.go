package commands

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/fredspizza/numeric-utils"
)

func divideCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "divide <num> <den>",
		Short:   "Divide two integers and round the quotient",
		Example: `  numeric divide --mode ceil 10 3`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			num, ok := new(big.Int).SetString(args[0], 10)
			if !ok {
				return fmt.Errorf("invalid numerator %q: %w", args[0], numeric.ErrFormat)
			}
			den, ok := new(big.Int).SetString(args[1], 10)
			if !ok {
				return fmt.Errorf("invalid denominator %q: %w", args[1], numeric.ErrFormat)
			}
			q, err := numeric.RoundedDivide(num, den, a.mode)
			if err != nil {
				return err
			}
			a.log.Debug("divided", "num", num, "den", den, "mode", a.mode.String(), "quotient", q)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), q)
			return err
		},
	}
}
