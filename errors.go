package bigint

import "errors"

// ErrParse is returned when a decimal string does not match
// [+|-]?[0-9]+, including the empty string.
var ErrParse = errors.New("invalid decimal integer")

// ErrDivisionByZero is returned by Div, Mod, QuoRem and the internal
// short-division path when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")
