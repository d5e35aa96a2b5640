package bigint

import (
	"fmt"

	"github.com/daniil-ushkov/bigint/internal/limbmath"
)

// FromString parses a decimal string matching [+|-]?[0-9]+ into a new
// BigInt. The empty string, a bare sign with no digits, or any non-digit
// character fails with ErrParse. The sign is applied only after every
// digit has been consumed, so "-0" normalizes to 0 rather than producing
// a negative zero.
func FromString(s string) (*BigInt, error) {
	if s == "" {
		return nil, ErrParse
	}
	neg := false
	i := 0
	switch s[0] {
	case '+':
		i = 1
	case '-':
		neg, i = true, 1
	}
	if i >= len(s) {
		return nil, ErrParse
	}
	z := Zero()
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, ErrParse
		}
		z.mulShort(10)
		z.addShortAbs(limbmath.Word(c - '0'))
	}
	z.neg = neg
	normalize(z)
	return z, nil
}

// String returns the base-10 representation of x: "0" for zero, otherwise
// an optional leading '-' followed by digits with no leading zero.
func (x *BigInt) String() string {
	if x.isZero() {
		return "0"
	}
	work := x.Clone()
	work.neg = false

	var digits []byte
	for !work.isZero() {
		rem, _ := work.divShort(10)
		digits = append(digits, byte('0'+rem))
	}
	if x.neg {
		digits = append(digits, '-')
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// Format implements fmt.Formatter so a BigInt prints correctly with %v,
// %s, and %d (all equivalent — the library supports decimal only).
func (x *BigInt) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's', 'd':
		fmt.Fprint(s, x.String())
	default:
		fmt.Fprintf(s, "%%!%c(BigInt=%s)", verb, x.String())
	}
}

// Scan implements fmt.Scanner, so *BigInt works with fmt.Sscan and
// friends. It reads one whitespace-delimited token and parses it as a
// decimal integer.
func (z *BigInt) Scan(s fmt.ScanState, verb rune) error {
	tok, err := s.Token(true, func(r rune) bool {
		return r == '+' || r == '-' || (r >= '0' && r <= '9')
	})
	if err != nil {
		return err
	}
	parsed, err := FromString(string(tok))
	if err != nil {
		return err
	}
	z.Set(parsed)
	return nil
}
