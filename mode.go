package numeric

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Mode type represents a rule for resolving a non-integer value to an integer
// (or, more generally, to a point of a [Grid]).
// The zero value is [HalfUp], which is the default rounding mode of this package.
//
// Mode is a closed set of seven variants.
// Every method that dispatches on a mode handles all of them and panics on any
// other value, so a Mode can only be obtained from the constants below,
// from [ParseMode], or from one of the decoding methods.
type Mode uint8

const (
	// HalfUp rounds to the nearest integer, ties away from zero.
	HalfUp Mode = iota
	// HalfDown rounds to the nearest integer, ties toward zero.
	HalfDown
	// HalfEven rounds to the nearest integer, ties to the even neighbour
	// (banker's rounding).
	HalfEven
	// Floor rounds toward negative infinity.
	Floor
	// Ceil rounds toward positive infinity.
	Ceil
	// Trunc rounds toward zero.
	Trunc
	// Up rounds away from zero.
	Up
)

// DefaultMode is the mode used by convenience methods when the caller has
// no preference. It is equal to the zero value of [Mode].
const DefaultMode = HalfUp

var errInvalidMode = fmt.Errorf("%w: invalid rounding mode", ErrFormat)

var modeNames = [...]string{
	HalfUp:   "half-up",
	HalfDown: "half-down",
	HalfEven: "half-even",
	Floor:    "floor",
	Ceil:     "ceil",
	Trunc:    "trunc",
	Up:       "up",
}

// modeLookup is keyed by names folded with foldName.
var modeLookup = map[string]Mode{
	"halfup":   HalfUp,
	"halfdown": HalfDown,
	"halfeven": HalfEven,
	"bankers":  HalfEven,
	"floor":    Floor,
	"ceil":     Ceil,
	"ceiling":  Ceil,
	"trunc":    Trunc,
	"truncate": Trunc,
	"down":     Trunc,
	"up":       Up,
}

// Modes returns all rounding modes in declaration order.
func Modes() []Mode {
	return []Mode{HalfUp, HalfDown, HalfEven, Floor, Ceil, Trunc, Up}
}

func foldName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return strings.ReplaceAll(s, " ", "")
}

// ParseMode converts a string to a rounding mode.
// The input is case-insensitive and hyphens, underscores and spaces are ignored,
// so all of the following denote [HalfEven]:
//
//	half-even
//	HALF_EVEN
//	halfEven
//	bankers
//
// Besides the canonical names, "ceiling", "truncate" and "down" are accepted
// as aliases of [Ceil], [Trunc] and [Trunc] respectively.
//
// ParseMode returns an error if the string does not name a rounding mode.
func ParseMode(mode string) (Mode, error) {
	m, ok := modeLookup[foldName(mode)]
	if !ok {
		return DefaultMode, fmt.Errorf("%w %q", errInvalidMode, mode)
	}
	return m, nil
}

// MustParseMode is like [ParseMode] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding modes.
func MustParseMode(mode string) Mode {
	m, err := ParseMode(mode)
	if err != nil {
		panic(fmt.Sprintf("ParseMode(%q) failed: %v", mode, err))
	}
	return m
}

// IsValid returns true if m is one of the seven rounding modes.
func (m Mode) IsValid() bool {
	return int(m) < len(modeNames)
}

// String method implements the [fmt.Stringer] interface and returns
// the kebab-case name of the mode, for example "half-even".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Mode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseMode].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (m *Mode) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*m, err = ParseMode(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", DefaultMode, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m Mode) MarshalJSON() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("marshaling %v: %w", m, errInvalidMode)
	}
	text := make([]byte, 0, len(modeNames[m])+2)
	text = append(text, '"')
	text = append(text, modeNames[m]...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseMode].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *Mode) UnmarshalText(text []byte) error {
	var err error
	*m, err = ParseMode(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", DefaultMode, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("marshaling %v: %w", m, errInvalidMode)
	}
	return []byte(modeNames[m]), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (m *Mode) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*m, err = ParseMode(value)
	case []byte:
		*m, err = ParseMode(string(value))
	case nil:
		err = fmt.Errorf("%w: %T does not support null values", ErrInvalidArgument, DefaultMode)
	default:
		err = fmt.Errorf("%w: type %T is not supported", ErrInvalidArgument, value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, DefaultMode, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (m Mode) Value() (driver.Value, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("converting %v: %w", m, errInvalidMode)
	}
	return modeNames[m], nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description  |
//	| ------ | ----------- | ------------ |
//	| %s, %v | half-even   | Mode         |
//	| %q     | "half-even" | Quoted mode  |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Mode) Format(state fmt.State, verb rune) {
	name := m.String()

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + len(name) + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		default:
			lspaces = w - width
		}
	}

	buf := make([]byte, 0, width+lspaces+tspaces)
	for range lspaces {
		buf = append(buf, ' ')
	}
	for range lquote {
		buf = append(buf, '"')
	}
	buf = append(buf, name...)
	for range tquote {
		buf = append(buf, '"')
	}
	for range tspaces {
		buf = append(buf, ' ')
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(numeric.Mode="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
