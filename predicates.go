package numeric

import "fmt"

// IsInRange reports whether f lies between low and high.
// With inclusive set, the bounds themselves are in range; otherwise they are not.
// An empty range (low > high) contains nothing.
func (f Fraction) IsInRange(low, high Fraction, inclusive bool) bool {
	lo, hi := f.Cmp(low), f.Cmp(high)
	if inclusive {
		return lo >= 0 && hi <= 0
	}
	return lo > 0 && hi < 0
}

// IsWithinTolerance reports whether |f - other| <= |tol|.
func (f Fraction) IsWithinTolerance(other, tol Fraction) bool {
	return f.Sub(other).CmpAbs(tol) <= 0
}

// IsMultipleOf reports whether f is an integer multiple of inc.
// Zero is a multiple of every increment.
//
// IsMultipleOf returns an error if inc is 0, like [Fraction.ToNearest].
func (f Fraction) IsMultipleOf(inc Fraction) (bool, error) {
	if inc.IsZero() {
		return false, fmt.Errorf("checking whether %v is a multiple of %v: %w", f, inc, errZeroIncrement)
	}
	return Grid{inc: inc}.Contains(f), nil
}
