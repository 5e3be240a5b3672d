package numeric

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	errZeroDenominator = fmt.Errorf("%w: zero denominator", ErrFormat)
	errInvalidLiteral  = fmt.Errorf("%w: not a fraction, mixed number, or numeric literal", ErrFormat)
)

// Parse converts a string to a fraction.
// The following forms are accepted, with optional leading and trailing
// white space:
//
//	7/4          fraction
//	-7/4         negative fraction
//	1 3/4        mixed number, equal to 7/4
//	- 1 3 / 4    white space is allowed around the sign and the slash
//	1.75         decimal literal
//	175e-2       decimal literal with exponent
//	-2           integer literal
//
// A fraction or mixed number consists of an optional minus sign,
// an optional whole part followed by at least one white space character,
// a numerator, a slash, and a denominator, all written with decimal digits.
// The minus sign applies to the whole value, so "-1 3/4" equals -7/4.
// Any other input must be a decimal literal: an optional sign, decimal digits
// with an optional fractional part, and an optional exponent introduced by
// 'e' or 'E'. Base prefixes, hexadecimal exponents and slashes are rejected.
//
// The canonical representation returned by [Fraction.String] and the mixed
// number representation returned by [Fraction.MixedString] are always accepted
// and yield a fraction equal to the original.
//
// Parse returns an error wrapping [ErrFormat] if the string matches neither
// form, or if the denominator of a fraction is 0.
func Parse(s string) (Fraction, error) {
	f, err := parse(s)
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return f, nil
}

func parse(s string) (Fraction, error) {
	if lit, ok := scanFraction(s); ok {
		return lit.fraction()
	}
	s = strings.TrimSpace(s)
	if !scanLiteral(s) {
		return Fraction{}, errInvalidLiteral
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Fraction{}, errInvalidLiteral
	}
	return newFraction(r), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding fractions.
func MustParse(s string) Fraction {
	f, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return f
}

// TryParse is like [Parse] but never fails.
// It returns false if s is nil or cannot be parsed.
func TryParse(s *string) (Fraction, bool) {
	if s == nil {
		return Fraction{}, false
	}
	return TryParseString(*s)
}

// TryParseString is like [Parse] but returns false instead of an error.
func TryParseString(s string) (Fraction, bool) {
	f, err := parse(s)
	if err != nil {
		return Fraction{}, false
	}
	return f, true
}

// fractionLiteral holds the digit strings of a scanned fraction or mixed number.
type fractionLiteral struct {
	neg   bool
	whole string // empty if there is no whole part
	num   string
	den   string
}

func (lit fractionLiteral) fraction() (Fraction, error) {
	num, _ := new(big.Int).SetString(lit.num, 10)
	den, _ := new(big.Int).SetString(lit.den, 10)
	if den.Sign() == 0 {
		return Fraction{}, errZeroDenominator
	}
	if lit.whole != "" {
		whole, _ := new(big.Int).SetString(lit.whole, 10)
		num.Add(num, whole.Mul(whole, den))
	}
	if lit.neg {
		num.Neg(num)
	}
	return newFraction(new(big.Rat).SetFrac(num, den)), nil
}

// scanFraction recognizes
//
//	space* ['-' space*] [digits space+] digits space* '/' space* digits space*
//
// and reports false for any other input.
func scanFraction(s string) (fractionLiteral, bool) {
	sc := scanner{s: s}
	lit := fractionLiteral{}

	// Sign
	sc.skipSpace()
	if sc.accept('-') {
		lit.neg = true
		sc.skipSpace()
	}

	// Whole part and numerator
	first := sc.digits()
	if first == "" {
		return fractionLiteral{}, false
	}
	gap := sc.skipSpace()
	if !sc.accept('/') {
		if gap == 0 {
			return fractionLiteral{}, false
		}
		lit.whole = first
		if first = sc.digits(); first == "" {
			return fractionLiteral{}, false
		}
		sc.skipSpace()
		if !sc.accept('/') {
			return fractionLiteral{}, false
		}
	}
	lit.num = first

	// Denominator
	sc.skipSpace()
	if lit.den = sc.digits(); lit.den == "" {
		return fractionLiteral{}, false
	}
	sc.skipSpace()
	if !sc.eof() {
		return fractionLiteral{}, false
	}
	return lit, true
}

// scanLiteral reports whether s matches
//
//	['+' | '-'] (digits ['.' digits*] | '.' digits) [('e' | 'E') ['+' | '-'] digits]
func scanLiteral(s string) bool {
	sc := scanner{s: s}
	if !sc.accept('+') {
		sc.accept('-')
	}
	intPart := sc.digits()
	fracPart := ""
	if sc.accept('.') {
		fracPart = sc.digits()
	}
	if intPart == "" && fracPart == "" {
		return false
	}
	if sc.accept('e') || sc.accept('E') {
		if !sc.accept('+') {
			sc.accept('-')
		}
		if sc.digits() == "" {
			return false
		}
	}
	return sc.eof()
}

type scanner struct {
	s   string
	pos int
}

func (sc *scanner) eof() bool {
	return sc.pos >= len(sc.s)
}

// skipSpace advances past white space and returns the number of runes skipped.
func (sc *scanner) skipSpace() int {
	n := 0
	for !sc.eof() {
		r, size := utf8.DecodeRuneInString(sc.s[sc.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		sc.pos += size
		n++
	}
	return n
}

func (sc *scanner) accept(b byte) bool {
	if !sc.eof() && sc.s[sc.pos] == b {
		sc.pos++
		return true
	}
	return false
}

// digits advances past a run of ASCII digits and returns it.
func (sc *scanner) digits() string {
	start := sc.pos
	for !sc.eof() && '0' <= sc.s[sc.pos] && sc.s[sc.pos] <= '9' {
		sc.pos++
	}
	return sc.s[start:sc.pos]
}
