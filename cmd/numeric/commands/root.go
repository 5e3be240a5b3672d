package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/fredspizza/numeric-utils"
)

// app holds the settings shared by all subcommands.
// It is populated by the root command before any subcommand runs.
type app struct {
	v      *viper.Viper
	logOut io.Writer
	log    *slog.Logger
	mode   numeric.Mode
	mixed  bool
}

// Execute runs the numeric command tree.
func Execute() error {
	return newRootCmd(os.Stderr).Execute()
}

// newRootCmd builds the command tree. Log records are written to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		logOut: logOut,
		log:    slog.New(slog.DiscardHandler),
	}

	root := &cobra.Command{
		Use:          "numeric",
		Short:        "Exact rational rounding and parsing",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd.Flags())
		},
	}
	addPersistentFlags(root.PersistentFlags())

	root.AddCommand(
		roundCmd(a),
		nearestCmd(a),
		placesCmd(a),
		centsCmd(a),
		divideCmd(a),
		parseCmd(a),
	)
	return root
}

func addPersistentFlags(fs *pflag.FlagSet) {
	fs.StringP("mode", "m", numeric.DefaultMode.String(), "rounding mode: half-up, half-down, half-even, floor, ceil, trunc or up")
	fs.Bool("mixed", false, "print results as mixed numbers")
	fs.String("config", "", "config file (yaml, toml or json)")
	fs.BoolP("verbose", "v", false, "log at debug level")
	fs.String("log-level", "warn", "log level: debug, info, warn or error")
	fs.String("log-fmt", "text", "log format: text, json or logfmt")
	fs.Bool("no-color", false, "disable colored log output")
}

// configure layers flags, environment and config file, then sets up logging
// and the rounding mode.
func (a *app) configure(fs *pflag.FlagSet) error {
	if err := a.v.BindPFlags(fs); err != nil {
		return err
	}
	a.v.SetEnvPrefix("NUMERIC")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %q: %w", path, err)
		}
	}

	level, err := slogLevel(a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	if a.v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	handler, err := slogHandler(a.v.GetString("log-fmt"), a.logOut, level, a.v.GetBool("no-color"))
	if err != nil {
		return err
	}
	a.log = slog.New(handler)

	a.mode, err = numeric.ParseMode(a.v.GetString("mode"))
	if err != nil {
		return err
	}
	a.mixed = a.v.GetBool("mixed")

	a.log.Debug("configured",
		"mode", a.mode.String(),
		"mixed", a.mixed,
		"config", a.v.ConfigFileUsed(),
	)
	return nil
}

// parseArg parses a command-line value.
func (a *app) parseArg(name, s string) (numeric.Fraction, error) {
	f, err := numeric.Parse(s)
	if err != nil {
		return numeric.Fraction{}, fmt.Errorf("invalid %s: %w", name, err)
	}
	a.log.Debug("parsed", "arg", name, "text", s, "value", f.String())
	return f, nil
}

// printFraction writes f in canonical or mixed form, depending on --mixed.
func (a *app) printFraction(w io.Writer, f numeric.Fraction) error {
	text := f.String()
	if a.mixed {
		text = f.MixedString()
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
