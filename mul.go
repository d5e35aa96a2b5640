package bigint

import "github.com/daniil-ushkov/bigint/internal/limbmath"

// mulAbs returns |a| * |b| as a freshly allocated magnitude, schoolbook
// O(n*m): the result is preallocated at n+m zero limbs, and each outer/
// inner step accumulates a[i]*b[j] + result[i+j] + carry in 64 bits.
func mulAbs(a, b *BigInt) LimbBuf {
	n, m := a.mag.Len(), b.mag.Len()
	var result LimbBuf
	result.Grow(n + m)
	result.Resize(n+m, 0)
	for i := 0; i < n; i++ {
		ai := a.mag.Get(i)
		if ai == 0 {
			continue
		}
		var carry limbmath.Word
		for j := 0; j < m; j++ {
			// ai*b[j] + result[i+j] + carry fits in 64 bits: each term is
			// at most B-1, and (B-1)^2 + 2*(B-1) == B^2-1.
			acc := uint64(ai)*uint64(b.mag.Get(j)) + uint64(result.Get(i+j)) + uint64(carry)
			result.Set(i+j, limbmath.Word(acc))
			carry = limbmath.Word(acc >> limbmath.W)
		}
		result.Set(i+m, carry)
	}
	return result
}

// Mul sets z to x * y and returns z.
func (z *BigInt) Mul(x, y *BigInt) *BigInt {
	if x.isZero() || y.isZero() {
		z.mag = NewLimbBuf(1, 0)
		z.neg = false
		return z
	}
	var tmp BigInt
	tmp.mag = mulAbs(x, y)
	tmp.neg = x.neg != y.neg
	normalize(&tmp)
	z.Swap(&tmp)
	return z
}
