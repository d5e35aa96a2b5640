// Package bigint implements arbitrary-precision signed integers: the full
// set of arithmetic, bitwise, shift, comparison, and decimal-conversion
// operations one expects from a built-in integer type, but with unbounded
// magnitude.
//
// A BigInt is a sign-magnitude pair: a boolean sign and a LimbBuf holding
// the absolute value as little-endian base-2^32 limbs. LimbBuf itself is a
// small-buffer/copy-on-write container (see limbbuf.go) so magnitudes of
// one or two limbs — the overwhelming majority of values a typical program
// ever constructs — never touch the heap.
package bigint

import "github.com/daniil-ushkov/bigint/internal/limbmath"

// BigInt is a signed multi-precision integer. The zero value is not a
// valid BigInt; use Zero, FromInt32, FromUint64, or FromString.
type BigInt struct {
	neg bool    // true if negative; zero always has neg == false
	mag LimbBuf // absolute value, little-endian limbs, normal form
}

// normalize drops trailing zero limbs (keeping at least one) and forces
// the sign to non-negative if the result is zero. Every operation whose
// result could otherwise carry leading zero limbs or a negative zero ends
// by calling normalize on it.
func normalize(z *BigInt) *BigInt {
	for z.mag.Len() > 1 && z.mag.Back() == 0 {
		z.mag.PopBack()
	}
	if z.mag.Len() == 1 && z.mag.Get(0) == 0 {
		z.neg = false
	}
	return z
}

// Zero returns a new BigInt equal to 0.
func Zero() *BigInt {
	return &BigInt{mag: NewLimbBuf(1, 0)}
}

// FromInt32 returns a new BigInt equal to a. math.MinInt32 is handled by
// widening to int64 before negating, so it does not overflow.
func FromInt32(a int32) *BigInt {
	neg := a < 0
	m := int64(a)
	if neg {
		m = -m
	}
	z := &BigInt{neg: neg, mag: NewLimbBuf(1, limbmath.Word(m))}
	return normalize(z)
}

// FromUint64 returns a new non-negative BigInt equal to a.
func FromUint64(a uint64) *BigInt {
	z := &BigInt{mag: NewLimbBuf(2, 0)}
	z.mag.Set(0, limbmath.Word(a))
	z.mag.Set(1, limbmath.Word(a>>32))
	return normalize(z)
}

// Set sets z to x and returns z. Setting z to itself is a no-op.
func (z *BigInt) Set(x *BigInt) *BigInt {
	if z != x {
		z.mag.Assign(&x.mag)
		z.neg = x.neg
	}
	return z
}

// Clone returns a copy of x. The copy shares no mutable state with x: each
// carries its own LimbBuf value, which may itself still share COW heap
// storage with x's until one of them is written through.
func (x *BigInt) Clone() *BigInt {
	return &BigInt{neg: x.neg, mag: x.mag.Clone()}
}

// Swap exchanges the values of z and x.
func (z *BigInt) Swap(x *BigInt) {
	z.neg, x.neg = x.neg, z.neg
	z.mag, x.mag = x.mag, z.mag
}

// Sign returns -1 if x < 0, 0 if x == 0, +1 if x > 0.
func (x *BigInt) Sign() int {
	if x.isZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// isZero reports whether x's normalized magnitude is exactly [0].
func (x *BigInt) isZero() bool {
	return x.mag.Len() == 1 && x.mag.Get(0) == 0
}

// Neg sets z to -x and returns z. Zero has no sign, so Neg(0) == 0.
func (z *BigInt) Neg(x *BigInt) *BigInt {
	z.Set(x)
	z.neg = !z.isZero() && !z.neg
	return z
}

// Pos sets z to +x (unary plus: a copy) and returns z.
func (z *BigInt) Pos(x *BigInt) *BigInt {
	return z.Set(x)
}
