// Package commands defines the numeric CLI.
//
// Commands
//
//   - round    Round a value to an integer
//   - nearest  Round a value to a multiple of an increment
//   - places   Round a value to a number of decimal places
//   - cents    Round a value to whole cents
//   - divide   Divide two integers and round the quotient
//   - parse    Print the canonical, mixed and decimal forms of a value
//
// Values are read with [numeric.Parse], so fractions ("7/4"), mixed numbers
// ("1 3/4") and decimal literals ("1.75") are all accepted.
// Negative values must follow a "--" argument, otherwise they are taken
// for flags.
//
// # Configuration
//
// Every persistent flag can also be set through an environment variable with
// the NUMERIC_ prefix (for example NUMERIC_MODE=half-even) or through a
// YAML, TOML or JSON file passed with --config.
// Flags take precedence over the environment, and the environment over the
// file.
package commands
