package numeric

import (
	"fmt"
	"math/big"
)

// roundRat returns x rounded to an integer using the given mode.
//
// x is split into its integer part q (truncated toward zero) and a remainder
// rem / den with the sign of x and absolute value less than 1.
// Ties are detected by comparing 2*|rem| with den, so no precision is lost
// for any size of numerator or denominator.
func roundRat(x *big.Rat, mode Mode) *big.Int {
	den := x.Denom()
	q, rem := new(big.Int).QuoRem(x.Num(), den, new(big.Int))
	if rem.Sign() == 0 {
		return q
	}
	if awayFromZero(q, rem, den, mode) {
		if rem.Sign() > 0 {
			q.Add(q, intOne)
		} else {
			q.Sub(q, intOne)
		}
	}
	return q
}

// awayFromZero reports whether q + rem/den, with rem != 0, must be rounded
// to the neighbour of q that is farther from zero.
func awayFromZero(q, rem, den *big.Int, mode Mode) bool {
	switch mode {
	case Floor:
		return rem.Sign() < 0
	case Ceil:
		return rem.Sign() > 0
	case Trunc:
		return false
	case Up:
		return true
	case HalfUp, HalfDown, HalfEven:
		twice := new(big.Int).Abs(rem)
		twice.Lsh(twice, 1)
		switch c := twice.Cmp(den); {
		case c < 0:
			return false
		case c > 0:
			return true
		}
		// Exactly one half
		switch mode {
		case HalfUp:
			return true
		case HalfDown:
			return false
		default:
			// The neighbours q and q±1 differ in parity; q±1 is even iff q is odd.
			return q.Bit(0) == 1
		}
	default:
		panic(fmt.Sprintf("numeric: rounding with %v", mode))
	}
}

// Round returns the fraction rounded to an integer using the given mode.
// The result always has denominator 1 and is never farther than 1 from f.
//
//	| f    | HalfUp | HalfDown | HalfEven | Floor | Ceil | Trunc | Up |
//	| ---- | ------ | -------- | -------- | ----- | ---- | ----- | -- |
//	|  7/2 |  4     |  3       |  4       |  3    |  4   |  3    |  4 |
//	|  5/2 |  3     |  2       |  2       |  2    |  3   |  2    |  3 |
//	|  7/3 |  2     |  2       |  2       |  2    |  3   |  2    |  3 |
//	| -5/2 | -3     | -2       | -2       | -3    | -2   | -2    | -3 |
//
// Integers are returned unchanged by every mode.
// Round never fails; it panics only if mode is not one of the seven [Mode]
// constants.
func (f Fraction) Round(mode Mode) Fraction {
	r := f.rat()
	if r.IsInt() {
		return f
	}
	return newFraction(new(big.Rat).SetInt(roundRat(r, mode)))
}

// Ceil returns the least integer greater than or equal to f.
// It is a shorthand for f.Round(Ceil).
func (f Fraction) Ceil() Fraction {
	return f.Round(Ceil)
}

// Floor returns the greatest integer less than or equal to f.
// It is a shorthand for f.Round(Floor).
func (f Fraction) Floor() Fraction {
	return f.Round(Floor)
}

// ToNearest returns the multiple of inc nearest to f, where ties and
// directions are resolved by the given mode.
// The result is computed exactly as (f / inc).Round(mode) * inc, so it is
// always an integer multiple of inc.
// Negative increments are permitted; since the sign of inc cancels out in
// the division and the multiplication, Floor and Ceil then round toward the
// respective infinity of f / inc rather than of f.
// See also type [Grid].
//
// ToNearest returns an error if:
//   - inc is 0;
//   - mode is [HalfEven], since "even" has no meaning for multiples of
//     an arbitrary fraction.
func (f Fraction) ToNearest(inc Fraction, mode Mode) (Fraction, error) {
	g, err := f.toNearest(inc, mode)
	if err != nil {
		return Fraction{}, fmt.Errorf("rounding %v to a multiple of %v: %w", f, inc, err)
	}
	return g, nil
}

func (f Fraction) toNearest(inc Fraction, mode Mode) (Fraction, error) {
	if inc.IsZero() {
		return Fraction{}, errZeroIncrement
	}
	if mode == HalfEven {
		return Fraction{}, errHalfEvenGrid
	}
	scaled := new(big.Rat).Quo(f.rat(), inc.rat())
	n := new(big.Rat).SetInt(roundRat(scaled, mode))
	return newFraction(n.Mul(n, inc.rat())), nil
}

// ToDecimalPlaces returns the fraction rounded to the given number of digits
// after the decimal point using the given mode.
// It is equivalent to f.ToNearest(1/10^places, mode), except that [HalfEven]
// is permitted, since the multiples of 1/10^places are indexed by integers.
//
// ToDecimalPlaces returns an error if places is negative.
func (f Fraction) ToDecimalPlaces(places int, mode Mode) (Fraction, error) {
	if places < 0 {
		return Fraction{}, fmt.Errorf("rounding %v to %v decimal places: %w", f, places, errNegativePlaces)
	}
	return f.roundPlaces(places, mode), nil
}

// roundPlaces rounds f to places >= 0 decimal digits.
func (f Fraction) roundPlaces(places int, mode Mode) Fraction {
	r := f.rat()
	if r.IsInt() {
		return f
	}
	scale := new(big.Rat).SetInt(pow10(places))
	scaled := new(big.Rat).Mul(r, scale)
	if scaled.IsInt() {
		return f
	}
	n := new(big.Rat).SetInt(roundRat(scaled, mode))
	return newFraction(n.Quo(n, scale))
}

// ToCents returns the fraction rounded to 2 decimal places using the given mode.
// Pass [DefaultMode] for conventional half-up rounding.
func (f Fraction) ToCents(mode Mode) Fraction {
	return f.roundPlaces(2, mode)
}

// ToNearestHalf returns the multiple of 1/2 nearest to f.
// See method [Fraction.ToNearest] for the meaning of mode and the errors.
func (f Fraction) ToNearestHalf(mode Mode) (Fraction, error) {
	return Halves.Round(f, mode)
}

// ToNearestThird returns the multiple of 1/3 nearest to f.
// See method [Fraction.ToNearest] for the meaning of mode and the errors.
func (f Fraction) ToNearestThird(mode Mode) (Fraction, error) {
	return Thirds.Round(f, mode)
}

// ToNearestQuarter returns the multiple of 1/4 nearest to f.
// See method [Fraction.ToNearest] for the meaning of mode and the errors.
func (f Fraction) ToNearestQuarter(mode Mode) (Fraction, error) {
	return Quarters.Round(f, mode)
}

// RoundedDivide returns num / den rounded to an integer using the given mode.
// Unlike [big.Int.Quo] and [big.Int.Div], which fix the direction of rounding,
// RoundedDivide supports every [Mode].
// The arguments are not modified.
//
// RoundedDivide returns an error if den is 0.
func RoundedDivide(num, den *big.Int, mode Mode) (*big.Int, error) {
	if den.Sign() == 0 {
		return nil, fmt.Errorf("computing [%v / %v]: %w", num, den, errDivisionByZero)
	}
	return roundRat(new(big.Rat).SetFrac(num, den), mode), nil
}

// RoundedDivideInt64 is like [RoundedDivide] but operates on int64 values.
//
// RoundedDivideInt64 returns an error if den is 0 or if the result does not fit
// in an int64, which only happens for math.MinInt64 / -1.
func RoundedDivideInt64(num, den int64, mode Mode) (int64, error) {
	q, err := RoundedDivide(big.NewInt(num), big.NewInt(den), mode)
	if err != nil {
		return 0, err
	}
	if !q.IsInt64() {
		return 0, fmt.Errorf("computing [%v / %v]: %w", num, den, errIntOverflow)
	}
	return q.Int64(), nil
}
