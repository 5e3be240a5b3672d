// Package convert moves fractions to and from the arbitrary-precision decimal
// types of [github.com/cockroachdb/apd/v2] and [gopkg.in/inf.v0].
//
// Conversions toward a decimal always round in the exact rational domain
// first, using [numeric.Fraction.ToDecimalPlaces], and only then build the
// decimal, so the result never depends on the precision or rounding settings
// of the target library.
// Conversions from a decimal are exact.
package convert

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v2"
	"gopkg.in/inf.v0"

	"github.com/fredspizza/numeric-utils"
)

// MaxInfPlaces is the largest number of decimal places accepted by [ToInf].
// It matches the exponent limit of apd.
const MaxInfPlaces = apd.MaxExponent

var intTen = big.NewInt(10)

// scaledNum returns f * 10^places rounded using mode, as an integer.
func scaledNum(f numeric.Fraction, places int, mode numeric.Mode) (*big.Int, error) {
	g, err := f.ToDecimalPlaces(places, mode)
	if err != nil {
		return nil, err
	}
	num := g.Num()
	num.Mul(num, pow10(places))
	num.Quo(num, g.Denom())
	return num, nil
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(intTen, big.NewInt(int64(n)), nil)
}

// fromScaled returns unscaled * 10^-scale.
func fromScaled(unscaled *big.Int, scale int64) numeric.Fraction {
	if scale >= 0 {
		f, _ := numeric.NewFromBigInt(unscaled, pow10(int(scale)))
		return f
	}
	num := new(big.Int).Mul(unscaled, pow10(int(-scale)))
	f, _ := numeric.NewFromBigInt(num, big.NewInt(1))
	return f
}

// ToAPD returns f rounded to the given number of decimal places using mode,
// as a finite [apd.Decimal] with exponent -places.
//
// ToAPD returns an error if places is negative or does not fit the exponent
// range of apd.
func ToAPD(f numeric.Fraction, places int, mode numeric.Mode) (*apd.Decimal, error) {
	if places > apd.MaxExponent {
		return nil, fmt.Errorf("converting %v to %T: %w: %v decimal places", f, apd.Decimal{}, numeric.ErrInvalidArgument, places)
	}
	num, err := scaledNum(f, places, mode)
	if err != nil {
		return nil, fmt.Errorf("converting %v to %T: %w", f, apd.Decimal{}, err)
	}
	return apd.NewWithBigInt(num, -int32(places)), nil
}

// FromAPD returns the fraction exactly equal to d.
//
// FromAPD returns an error if d is infinite or NaN.
func FromAPD(d *apd.Decimal) (numeric.Fraction, error) {
	if d.Form != apd.Finite {
		return numeric.Fraction{}, fmt.Errorf("converting %v to %T: %w: not a finite value", d, numeric.Fraction{}, numeric.ErrInvalidArgument)
	}
	unscaled := new(big.Int).Set(&d.Coeff)
	if d.Negative {
		unscaled.Neg(unscaled)
	}
	return fromScaled(unscaled, -int64(d.Exponent)), nil
}

// APDRounding returns the name of the apd rounding algorithm that matches mode.
// It panics if mode is not valid.
func APDRounding(mode numeric.Mode) string {
	switch mode {
	case numeric.HalfUp:
		return apd.RoundHalfUp
	case numeric.HalfDown:
		return apd.RoundHalfDown
	case numeric.HalfEven:
		return apd.RoundHalfEven
	case numeric.Floor:
		return apd.RoundFloor
	case numeric.Ceil:
		return apd.RoundCeiling
	case numeric.Trunc:
		return apd.RoundDown
	case numeric.Up:
		return apd.RoundUp
	}
	panic(fmt.Sprintf("convert: no apd rounding for %v", mode))
}

// ToInf returns f rounded to the given number of decimal places using mode,
// as an [inf.Dec] with scale places.
//
// ToInf returns an error if places is negative or greater than [MaxInfPlaces].
func ToInf(f numeric.Fraction, places int, mode numeric.Mode) (*inf.Dec, error) {
	if places > MaxInfPlaces {
		return nil, fmt.Errorf("converting %v to %T: %w: %v decimal places", f, inf.Dec{}, numeric.ErrInvalidArgument, places)
	}
	num, err := scaledNum(f, places, mode)
	if err != nil {
		return nil, fmt.Errorf("converting %v to %T: %w", f, inf.Dec{}, err)
	}
	return inf.NewDecBig(num, inf.Scale(places)), nil
}

// FromInf returns the fraction exactly equal to d.
func FromInf(d *inf.Dec) numeric.Fraction {
	return fromScaled(d.UnscaledBig(), int64(d.Scale()))
}

// InfRounder returns the inf rounder that matches mode.
// It panics if mode is not valid.
func InfRounder(mode numeric.Mode) inf.Rounder {
	switch mode {
	case numeric.HalfUp:
		return inf.RoundHalfUp
	case numeric.HalfDown:
		return inf.RoundHalfDown
	case numeric.HalfEven:
		return inf.RoundHalfEven
	case numeric.Floor:
		return inf.RoundFloor
	case numeric.Ceil:
		return inf.RoundCeil
	case numeric.Trunc:
		return inf.RoundDown
	case numeric.Up:
		return inf.RoundUp
	}
	panic(fmt.Sprintf("convert: no inf rounder for %v", mode))
}
