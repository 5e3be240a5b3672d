package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func parseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>...",
		Short: "Print the canonical, mixed and decimal forms of a value",
		Long: `Parse a fraction, mixed number or decimal literal and print it in
canonical, mixed and decimal form.
Multiple arguments are joined with spaces, so a mixed number does not need
to be quoted.`,
		Example: `  numeric parse 1 3/4
  numeric parse -- "- 1 3 / 4"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.parseArg("text", strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "canonical: %v\nmixed: %m\ndecimal: %f\n", f, f, f)
			return err
		},
	}
}
