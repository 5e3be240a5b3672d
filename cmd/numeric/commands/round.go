package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func roundCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "round <value>",
		Short: "Round a value to an integer",
		Example: `  numeric round 7.5
  numeric round --mode half-even -- -7.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.parseArg("value", args[0])
			if err != nil {
				return err
			}
			return a.printFraction(cmd.OutOrStdout(), f.Round(a.mode))
		},
	}
}

func nearestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "nearest <value> <increment>",
		Short: "Round a value to a multiple of an increment",
		Long: `Round a value to the nearest multiple of a nonzero increment.
The half-even mode is not available, since "even" has no meaning for
multiples of an arbitrary fraction.`,
		Example: `  numeric nearest 7.375 1/4
  numeric nearest --mixed --mode half-down 7.375 1/4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.parseArg("value", args[0])
			if err != nil {
				return err
			}
			inc, err := a.parseArg("increment", args[1])
			if err != nil {
				return err
			}
			g, err := f.ToNearest(inc, a.mode)
			if err != nil {
				return err
			}
			return a.printFraction(cmd.OutOrStdout(), g)
		},
	}
}

func placesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "places <value> <n>",
		Short: "Round a value to n decimal places",
		Long: `Round a value to n digits after the decimal point.
The result is printed in decimal notation unless --mixed is set.`,
		Example: `  numeric places 1.2345 2
  numeric places --mode ceil 1.2345 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.parseArg("value", args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid number of places %q: %w", args[1], err)
			}
			g, err := f.ToDecimalPlaces(n, a.mode)
			if err != nil {
				return err
			}
			if a.mixed {
				return a.printFraction(cmd.OutOrStdout(), g)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.*f\n", n, g)
			return err
		},
	}
}

func centsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cents <value>",
		Short: "Round a value to whole cents",
		Example: `  numeric cents 10.005
  numeric cents --mode half-even 10.005`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.parseArg("value", args[0])
			if err != nil {
				return err
			}
			g := f.ToCents(a.mode)
			if a.mixed {
				return a.printFraction(cmd.OutOrStdout(), g)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", g)
			return err
		},
	}
}
