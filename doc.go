/*
Package numeric implements exact rounding and parsing of arbitrary-precision
rational numbers.
It is intended for financial, measurement, and other computations where
floating-point error is unacceptable.

# Features

  - Immutable fractions, ensuring safe usage across multiple goroutines
  - Seven rounding modes with exact tie detection
  - Rounding to integers, to decimal places, and to multiples of any fraction
  - Rounded integer division
  - Parsing of fractions, mixed numbers, and decimal literals with
    round-trip guarantees
  - Conversion to and from [decimal.Decimal]

# Representation

A [Fraction] is a thin immutable wrapper around [big.Rat].
Its numerator and denominator are arbitrary-precision integers, the
denominator is always positive, and the fraction is always in lowest terms.
There is no upper bound on the size of either; the cost of every operation
grows with their bit length, so callers that accept untrusted input should
bound its magnitude.

A [Mode] is one of [HalfUp], [HalfDown], [HalfEven], [Floor], [Ceil],
[Trunc], and [Up].
The zero value of Mode is HalfUp, which is also [DefaultMode].

A [Grid] is the set of integer multiples of a nonzero fraction,
such as [Halves], [Thirds], [Quarters], or [Cents].

# Rounding

[Fraction.Round] rounds to an integer.
Ties are detected by comparing twice the absolute remainder with the
denominator, so the result is exact for any size of operands.

[Fraction.ToNearest] and [Grid.Round] round to a multiple of an arbitrary
nonzero increment by dividing by the increment, rounding, and multiplying back.
HalfEven is rejected there, because "even" is only meaningful for integers.

[Fraction.ToDecimalPlaces] and [Fraction.ToCents] round to a number of
decimal digits, and [RoundedDivide] applies any mode to integer division.

# Parsing

[Parse] accepts fractions ("7/4"), mixed numbers ("1 3/4", "- 1 3 / 4"),
and decimal literals ("1.75", "175e-2").
The canonical representation returned by [Fraction.String] and the mixed
representation returned by [Fraction.MixedString] always parse back to an
equal fraction.
[TryParse] and [TryParseString] report failure with a boolean instead of
an error.

# Errors

Every error returned by this package wraps one of two kinds:

  - [ErrInvalidArgument]: a zero increment, HalfEven on a grid,
    a negative number of decimal places, a zero divisor, or a database
    value of an unsupported type.
  - [ErrFormat]: text that is neither a fraction nor a decimal literal,
    a fraction literal with a zero denominator, or an unknown rounding mode.

Use [errors.Is] to tell them apart.
Operations that cannot fail, such as [Fraction.Round], do not return errors.
*/
package numeric
