package numeric

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/govalues/decimal"
)

// Error kinds returned by this package.
// Every error returned by a function of this package wraps exactly one of them,
// so callers can distinguish the kinds with [errors.Is].
var (
	// ErrInvalidArgument indicates a malformed configuration of an operation,
	// such as a zero rounding increment or a negative number of decimal places.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrFormat indicates malformed input text.
	ErrFormat = errors.New("invalid format")
)

var (
	errDivisionByZero = fmt.Errorf("%w: division by zero", ErrInvalidArgument)
	errZeroIncrement  = fmt.Errorf("%w: zero increment", ErrInvalidArgument)
	errHalfEvenGrid   = fmt.Errorf("%w: half-even rounding is not defined on a fractional grid", ErrInvalidArgument)
	errNegativePlaces = fmt.Errorf("%w: negative number of decimal places", ErrInvalidArgument)
	errSpecialValue   = fmt.Errorf("%w: special value", ErrInvalidArgument)
	errInvalidRange   = fmt.Errorf("%w: invalid range", ErrInvalidArgument)
	errIntOverflow    = fmt.Errorf("%w: integer overflow", ErrInvalidArgument)
)

var (
	ratZero = new(big.Rat)
	intOne  = big.NewInt(1)
	intTen  = big.NewInt(10)
)

// Fraction type represents an exact rational number num / den, where num and den
// are arbitrary-precision integers, den is positive, and num / den is always
// in lowest terms.
// Its zero value corresponds to 0.
//
// Fraction is immutable: the underlying [big.Rat] is never modified after
// construction, and every operation returns a new Fraction.
// It is safe for concurrent use by multiple goroutines.
//
// Since a Fraction holds a pointer, two fractions must be compared with
// [Fraction.Equal] or [Fraction.Cmp] rather than with the == operator.
type Fraction struct {
	r *big.Rat // nil means 0
}

// newFraction takes ownership of r.
// Use it only if no other reference to r is retained.
func newFraction(r *big.Rat) Fraction {
	return Fraction{r: r}
}

// rat returns the underlying value, which must not be modified.
func (f Fraction) rat() *big.Rat {
	if f.r == nil {
		return ratZero
	}
	return f.r
}

// New returns a fraction equal to num / den, reduced to lowest terms.
// The sign of the result is carried by the numerator, so New(1, -2) equals -1/2.
//
// New returns an error if den is 0.
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, fmt.Errorf("constructing %v/%v: %w", num, den, errDivisionByZero)
	}
	return newFraction(new(big.Rat).SetFrac64(num, den)), nil
}

// MustNew is like [New] but panics if the fraction cannot be constructed.
// It simplifies safe initialization of global variables holding fractions.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", num, den, err))
	}
	return f
}

// NewFromInt64 returns a fraction equal to n.
func NewFromInt64(n int64) Fraction {
	return newFraction(new(big.Rat).SetInt64(n))
}

// NewFromBigInt returns a fraction equal to num / den, reduced to lowest terms.
// The arguments are not retained.
//
// NewFromBigInt returns an error if den is 0.
func NewFromBigInt(num, den *big.Int) (Fraction, error) {
	if den.Sign() == 0 {
		return Fraction{}, fmt.Errorf("constructing %v/%v: %w", num, den, errDivisionByZero)
	}
	return newFraction(new(big.Rat).SetFrac(num, den)), nil
}

// NewFromBigRat returns a fraction equal to r.
// The argument is copied, so later modifications of r do not affect the result.
// A nil r is treated as 0.
func NewFromBigRat(r *big.Rat) Fraction {
	if r == nil {
		return Fraction{}
	}
	return newFraction(new(big.Rat).Set(r))
}

// NewFromDecimal returns a fraction exactly equal to the decimal d.
// See also method [Fraction.Decimal].
func NewFromDecimal(d decimal.Decimal) Fraction {
	num := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		num.Neg(num)
	}
	return newFraction(new(big.Rat).SetFrac(num, pow10(d.Scale())))
}

// NewFromFloat64 converts a float to a fraction.
// The float is first converted to its shortest decimal representation,
// so NewFromFloat64(0.1) returns 1/10 rather than the exact binary value.
//
// NewFromFloat64 returns an error if the float is a special value (NaN or Inf).
func NewFromFloat64(f float64) (Fraction, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Fraction{}, fmt.Errorf("converting float %v: %w", f, errSpecialValue)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Fraction{}, fmt.Errorf("converting float %v: %w", f, ErrFormat)
	}
	return newFraction(r), nil
}

// pow10 returns 10^n for n >= 0.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(intTen, big.NewInt(int64(n)), nil)
}

// Num returns a copy of the numerator. Its sign is the sign of the fraction.
func (f Fraction) Num() *big.Int {
	return new(big.Int).Set(f.rat().Num())
}

// Denom returns a copy of the denominator, which is always positive.
func (f Fraction) Denom() *big.Int {
	return new(big.Int).Set(f.rat().Denom())
}

// Rat returns a copy of the fraction as a [big.Rat].
func (f Fraction) Rat() *big.Rat {
	return new(big.Rat).Set(f.rat())
}

// Decimal returns the fraction rounded to the given number of decimal places
// using the given mode, as a [decimal.Decimal] with exactly that scale.
// See also constructor [NewFromDecimal].
//
// Decimal returns an error if:
//   - places is negative or greater than [decimal.MaxScale];
//   - the rounded value has more than [decimal.MaxPrec] digits.
func (f Fraction) Decimal(places int, mode Mode) (decimal.Decimal, error) {
	if places > decimal.MaxScale {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %T: %w: scale %v is out of range", f, decimal.Decimal{}, ErrInvalidArgument, places)
	}
	g, err := f.ToDecimalPlaces(places, mode)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.Parse(g.rat().FloatString(places))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %T: %w: %w", f, decimal.Decimal{}, ErrInvalidArgument, err)
	}
	return d, nil
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f = 0
//	+1 if f > 0
func (f Fraction) Sign() int {
	return f.rat().Sign()
}

// IsZero returns:
//
//	true  if f = 0
//	false otherwise
func (f Fraction) IsZero() bool {
	return f.Sign() == 0
}

// IsNeg returns:
//
//	true  if f < 0
//	false otherwise
func (f Fraction) IsNeg() bool {
	return f.Sign() < 0
}

// IsPos returns:
//
//	true  if f > 0
//	false otherwise
func (f Fraction) IsPos() bool {
	return f.Sign() > 0
}

// IsOne returns:
//
//	true  if f = -1 or f = 1
//	false otherwise
func (f Fraction) IsOne() bool {
	r := f.rat()
	return r.IsInt() && r.Num().CmpAbs(intOne) == 0
}

// IsInt returns true if the denominator is 1.
func (f Fraction) IsInt() bool {
	return f.rat().IsInt()
}

// WithinOne returns:
//
//	true  if -1 < f < 1
//	false otherwise
func (f Fraction) WithinOne() bool {
	r := f.rat()
	return r.Num().CmpAbs(r.Denom()) < 0
}

// Neg returns a fraction with the opposite sign.
func (f Fraction) Neg() Fraction {
	return newFraction(new(big.Rat).Neg(f.rat()))
}

// Abs returns the absolute value of the fraction.
func (f Fraction) Abs() Fraction {
	return newFraction(new(big.Rat).Abs(f.rat()))
}

// Inv returns the reciprocal 1 / f.
//
// Inv returns an error if f is 0.
func (f Fraction) Inv() (Fraction, error) {
	if f.IsZero() {
		return Fraction{}, fmt.Errorf("computing [1 / %v]: %w", f, errDivisionByZero)
	}
	return newFraction(new(big.Rat).Inv(f.rat())), nil
}

// Add returns the exact sum f + g.
func (f Fraction) Add(g Fraction) Fraction {
	return newFraction(new(big.Rat).Add(f.rat(), g.rat()))
}

// Sub returns the exact difference f - g.
func (f Fraction) Sub(g Fraction) Fraction {
	return newFraction(new(big.Rat).Sub(f.rat(), g.rat()))
}

// Mul returns the exact product f * g.
func (f Fraction) Mul(g Fraction) Fraction {
	return newFraction(new(big.Rat).Mul(f.rat(), g.rat()))
}

// Quo returns the exact quotient f / g.
//
// Quo returns an error if g is 0.
func (f Fraction) Quo(g Fraction) (Fraction, error) {
	if g.IsZero() {
		return Fraction{}, fmt.Errorf("computing [%v / %v]: %w", f, g, errDivisionByZero)
	}
	return newFraction(new(big.Rat).Quo(f.rat(), g.rat())), nil
}

// Trunc returns the integer part of the fraction, discarding the fractional
// part regardless of sign (truncation toward zero).
// See also methods [Fraction.Frac] and [Fraction.Round].
func (f Fraction) Trunc() Fraction {
	r := f.rat()
	if r.IsInt() {
		return f
	}
	q := new(big.Int).Quo(r.Num(), r.Denom())
	return newFraction(new(big.Rat).SetInt(q))
}

// Frac returns the fractional part f - f.Trunc().
// The result has the same sign as f and its absolute value is less than 1.
func (f Fraction) Frac() Fraction {
	r := f.rat()
	if r.IsInt() {
		return Fraction{}
	}
	rem := new(big.Int).Rem(r.Num(), r.Denom())
	return newFraction(new(big.Rat).SetFrac(rem, r.Denom()))
}

// Cmp compares fractions and returns:
//
//	-1 if f < g
//	 0 if f = g
//	+1 if f > g
func (f Fraction) Cmp(g Fraction) int {
	return f.rat().Cmp(g.rat())
}

// CmpAbs compares absolute values of fractions and returns:
//
//	-1 if |f| < |g|
//	 0 if |f| = |g|
//	+1 if |f| > |g|
func (f Fraction) CmpAbs(g Fraction) int {
	return f.Abs().Cmp(g.Abs())
}

// Equal returns true if f and g represent the same number.
func (f Fraction) Equal(g Fraction) bool {
	return f.Cmp(g) == 0
}

// Min returns the smaller fraction.
func (f Fraction) Min(g Fraction) Fraction {
	if f.Cmp(g) <= 0 {
		return f
	}
	return g
}

// Max returns the larger fraction.
func (f Fraction) Max(g Fraction) Fraction {
	if f.Cmp(g) >= 0 {
		return f
	}
	return g
}

// Clamp compares fractions and returns:
//
//	min if f < min
//	max if f > max
//	  f otherwise
//
// Clamp returns an error if min is greater than max.
func (f Fraction) Clamp(min, max Fraction) (Fraction, error) {
	if min.Cmp(max) > 0 {
		return Fraction{}, fmt.Errorf("clamping %v to [%v, %v]: %w", f, min, max, errInvalidRange)
	}
	switch {
	case f.Cmp(min) < 0:
		return min, nil
	case f.Cmp(max) > 0:
		return max, nil
	}
	return f, nil
}

// String implements the [fmt.Stringer] interface and returns the canonical
// representation "num/den" of the fraction, for example "-7/4" or "5/1".
// The denominator is always present.
// [Parse] accepts this representation and returns an equal fraction.
// See also methods [Fraction.MixedString] and [Fraction.FloatString].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fraction) String() string {
	return f.rat().String()
}

// MixedString returns the fraction as a mixed number "whole num/den",
// for example "-1 3/4".
// Integers are written without a fractional part ("5"),
// and fractions with absolute value less than 1 without a whole part ("-3/4").
// [Parse] accepts this representation and returns an equal fraction.
func (f Fraction) MixedString() string {
	r := f.rat()
	if r.IsInt() {
		return r.Num().String()
	}
	whole, rem := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	rem.Abs(rem)
	if whole.Sign() == 0 {
		if r.Sign() < 0 {
			return "-" + rem.String() + "/" + r.Denom().String()
		}
		return rem.String() + "/" + r.Denom().String()
	}
	return whole.String() + " " + rem.String() + "/" + r.Denom().String()
}

// FloatString returns the fraction in decimal notation with the given number
// of digits after the decimal point, rounded using [HalfUp].
// A negative number of places is treated as 0.
func (f Fraction) FloatString(places int) string {
	places = max(places, 0)
	return f.roundPlaces(places, HalfUp).rat().FloatString(places)
}

// terminatingScale returns the number of digits needed to write the fraction
// exactly in decimal notation, or false if the expansion does not terminate.
func (f Fraction) terminatingScale() (int, bool) {
	den := new(big.Int).Set(f.rat().Denom())
	twos := int(den.TrailingZeroBits())
	den.Rsh(den, uint(twos))
	fives := 0
	five := big.NewInt(5)
	rem := new(big.Int)
	for den.Cmp(intOne) > 0 {
		q, r := new(big.Int).QuoRem(den, five, rem)
		if r.Sign() != 0 {
			return 0, false
		}
		den = q
		fives++
	}
	return max(twos, fives), true
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example  | Description               |
//	| ------ | -------- | ------------------------- |
//	| %s, %v | -7/4     | Canonical fraction        |
//	| %q     | "-7/4"   | Quoted canonical fraction |
//	| %m     | -1 3/4   | Mixed number              |
//	| %f     | -1.75    | Decimal notation          |
//
// The '-' format flag can be used with all verbs.
// The '+' and ' ' format flags can be used with the %f verb.
//
// Precision is only supported for the %f verb; the result is rounded using
// [HalfEven].
// The default precision is the number of digits needed to represent the
// fraction exactly, or [decimal.MaxScale] if its decimal expansion does not
// terminate.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (f Fraction) Format(state fmt.State, verb rune) {
	var body string
	switch verb {
	case 's', 'S', 'v', 'V':
		body = f.String()
	case 'q', 'Q':
		body = `"` + f.String() + `"`
	case 'm', 'M':
		body = f.MixedString()
	case 'f', 'F':
		scale, ok := state.Precision()
		if !ok {
			if scale, ok = f.terminatingScale(); !ok {
				scale = decimal.MaxScale
			}
		}
		body = f.roundPlaces(scale, HalfEven).rat().FloatString(scale)
		if f.Sign() >= 0 && body[0] != '-' {
			switch {
			case state.Flag('+'):
				body = "+" + body
			case state.Flag(' '):
				body = " " + body
			}
		}
	default:
		body = "%!" + string(verb) + "(numeric.Fraction=" + f.String() + ")"
	}

	// Padding
	if w, ok := state.Width(); ok && w > len(body) {
		pad := make([]byte, w-len(body))
		for i := range pad {
			pad[i] = ' '
		}
		if state.Flag('-') {
			body += string(pad)
		} else {
			body = string(pad) + body
		}
	}

	//nolint:errcheck
	state.Write([]byte(body))
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (f *Fraction) UnmarshalText(text []byte) error {
	var err error
	*f, err = Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Fraction{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the canonical representation.
// See also method [Fraction.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both JSON strings ("7/4", "1 3/4", "1.75") and JSON numbers (1.75) are accepted.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (f *Fraction) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	var err error
	*f, err = Parse(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Fraction{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns the canonical representation as a JSON string.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (f Fraction) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, f.String()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (f *Fraction) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*f, err = Parse(value)
	case []byte:
		*f, err = Parse(string(value))
	case int64:
		*f = NewFromInt64(value)
	case float64:
		*f, err = NewFromFloat64(value)
	case nil:
		err = fmt.Errorf("%w: %T does not support null values, use %T or *%T", ErrInvalidArgument, Fraction{}, NullFraction{}, Fraction{})
	default:
		err = fmt.Errorf("%w: type %T is not supported", ErrInvalidArgument, value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Fraction{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The fraction is stored in its canonical representation.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (f Fraction) Value() (driver.Value, error) {
	return f.String(), nil
}

// NullFraction represents a fraction that can be null.
// Its zero value is null.
// NullFraction is not thread-safe.
type NullFraction struct {
	Fraction Fraction
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Fraction.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullFraction) Scan(value any) error {
	if value == nil {
		n.Fraction = Fraction{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Fraction.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Fraction.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullFraction) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Fraction.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Fraction.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullFraction) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.Fraction = Fraction{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Fraction.UnmarshalJSON(data)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Fraction.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullFraction) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Fraction.MarshalJSON()
}
