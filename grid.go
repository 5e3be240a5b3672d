package numeric

import (
	"fmt"
	"math/big"
)

// Grid represents the set of integer multiples of a nonzero increment,
// for example all multiples of 1/4 or of 5/100.
// It is the target of generalized rounding, see method [Grid.Round].
// The zero value is not a valid grid; obtain grids from [NewGrid], [ParseGrid],
// or the predefined [Halves], [Thirds], [Quarters], and [Cents].
// This type is designed to be safe for concurrent use by multiple goroutines.
type Grid struct {
	inc Fraction // never zero for grids obtained through the constructors
}

// Predefined grids.
var (
	Halves   = mustNewGrid(MustNew(1, 2))
	Thirds   = mustNewGrid(MustNew(1, 3))
	Quarters = mustNewGrid(MustNew(1, 4))
	Cents    = mustNewGrid(MustNew(1, 100))
)

// NewGrid returns the grid of integer multiples of inc.
// Negative increments are permitted and define the same set of points as
// their absolute value, although [Grid.Round] with [Floor] or [Ceil] then
// rounds in the opposite direction.
//
// NewGrid returns an error if inc is 0.
func NewGrid(inc Fraction) (Grid, error) {
	if inc.IsZero() {
		return Grid{}, fmt.Errorf("constructing grid: %w", errZeroIncrement)
	}
	return Grid{inc: inc}, nil
}

func mustNewGrid(inc Fraction) Grid {
	g, err := NewGrid(inc)
	if err != nil {
		panic(fmt.Sprintf("NewGrid(%v) failed: %v", inc, err))
	}
	return g
}

// ParseGrid converts a string to a grid.
// The increment may be written in any form accepted by [Parse],
// for example "1/4", "0.05", or "2 1/2".
//
// ParseGrid returns an error if the string cannot be parsed or denotes 0.
func ParseGrid(inc string) (Grid, error) {
	f, err := Parse(inc)
	if err != nil {
		return Grid{}, fmt.Errorf("parsing increment: %w", err)
	}
	g, err := NewGrid(f)
	if err != nil {
		return Grid{}, err
	}
	return g, nil
}

// MustParseGrid is like [ParseGrid] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding grids.
func MustParseGrid(inc string) Grid {
	g, err := ParseGrid(inc)
	if err != nil {
		panic(fmt.Sprintf("ParseGrid(%q) failed: %v", inc, err))
	}
	return g
}

// Increment returns the spacing of the grid.
func (g Grid) Increment() Fraction {
	return g.inc
}

// Round returns the point of the grid nearest to f, using the given mode.
// It is equivalent to f.ToNearest(g.Increment(), mode).
//
// Round returns an error if:
//   - mode is [HalfEven];
//   - g is the zero value of Grid.
func (g Grid) Round(f Fraction, mode Mode) (Fraction, error) {
	return f.ToNearest(g.inc, mode)
}

// Contains returns true if f is an integer multiple of the increment.
// The zero value of Grid contains nothing.
func (g Grid) Contains(f Fraction) bool {
	if g.inc.IsZero() {
		return false
	}
	return new(big.Rat).Quo(f.rat(), g.inc.rat()).IsInt()
}

// String implements the [fmt.Stringer] interface and returns the canonical
// representation of the increment.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (g Grid) String() string {
	return g.inc.String()
}
