package bigint

import "github.com/daniil-ushkov/bigint/internal/limbmath"

// twosComplementExtend returns x reinterpreted as a W-limb two's-complement
// word vector: zero-extended if x is non-negative, or complemented and
// incremented (the usual two's-complement negation) if x is negative,
// treating any limb beyond x's own length as 0 before complementing.
func twosComplementExtend(x *BigInt, width int) []limbmath.Word {
	words := make([]limbmath.Word, width)
	for i := 0; i < width; i++ {
		if i < x.mag.Len() {
			words[i] = x.mag.Get(i)
		}
	}
	if !x.neg {
		return words
	}
	for i := range words {
		words[i] = ^words[i]
	}
	carry := limbmath.Word(1)
	for i := 0; carry != 0 && i < width; i++ {
		c, lo := limbmath.AddWW(words[i], carry, 0)
		words[i] = lo
		carry = c
	}
	return words
}

// fromTwosComplementMag reverses twosComplementExtend: if neg, the words are
// complemented and incremented back into a magnitude; the result is
// packed into a LimbBuf, not yet normalized.
func fromTwosComplementMag(words []limbmath.Word, neg bool) LimbBuf {
	if neg {
		for i := range words {
			words[i] = ^words[i]
		}
		carry := limbmath.Word(1)
		for i := 0; carry != 0 && i < len(words); i++ {
			c, lo := limbmath.AddWW(words[i], carry, 0)
			words[i] = lo
			carry = c
		}
	}
	mag := NewLimbBuf(len(words), 0)
	for i, w := range words {
		mag.Set(i, w)
	}
	return mag
}

// bitwiseOp applies op limb-wise to the two's-complement extension of x
// and y (common width W = max length), and combines their signs via
// signOp, which must match op's two's-complement semantics (AND/AND, OR/OR,
// XOR/XOR on the sign booleans).
func bitwiseOp(z *BigInt, x, y *BigInt, op func(a, b limbmath.Word) limbmath.Word, signOp func(a, b bool) bool) *BigInt {
	width := x.mag.Len()
	if y.mag.Len() > width {
		width = y.mag.Len()
	}
	xw := twosComplementExtend(x, width)
	yw := twosComplementExtend(y, width)
	result := make([]limbmath.Word, width)
	for i := range result {
		result[i] = op(xw[i], yw[i])
	}
	neg := signOp(x.neg, y.neg)

	var tmp BigInt
	tmp.mag = fromTwosComplementMag(result, neg)
	tmp.neg = neg
	normalize(&tmp)
	z.Swap(&tmp)
	return z
}

// And sets z to x & y and returns z. Negative iff both x and y are.
func (z *BigInt) And(x, y *BigInt) *BigInt {
	return bitwiseOp(z, x, y,
		func(a, b limbmath.Word) limbmath.Word { return a & b },
		func(a, b bool) bool { return a && b },
	)
}

// Or sets z to x | y and returns z. Negative iff either x or y is.
func (z *BigInt) Or(x, y *BigInt) *BigInt {
	return bitwiseOp(z, x, y,
		func(a, b limbmath.Word) limbmath.Word { return a | b },
		func(a, b bool) bool { return a || b },
	)
}

// Xor sets z to x ^ y and returns z. Negative iff exactly one of x, y is.
func (z *BigInt) Xor(x, y *BigInt) *BigInt {
	return bitwiseOp(z, x, y,
		func(a, b limbmath.Word) limbmath.Word { return a ^ b },
		func(a, b bool) bool { return a != b },
	)
}

// Not sets z to ^x, defined as -x - 1, and returns z.
func (z *BigInt) Not(x *BigInt) *BigInt {
	var one BigInt
	one.mag = NewLimbBuf(1, 1)
	var negX BigInt
	negX.Neg(x)
	return z.Sub(&negX, &one)
}
