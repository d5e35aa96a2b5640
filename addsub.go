package bigint

import "github.com/daniil-ushkov/bigint/internal/limbmath"

// addAbs sets z to |a| + |b|, ignoring both operands' signs.
func addAbs(z *BigInt, a, b *BigInt) {
	if a.mag.Len() < b.mag.Len() {
		a, b = b, a
	}
	n, m := a.mag.Len(), b.mag.Len()
	mag := NewLimbBuf(n, 0)
	var carry limbmath.Word
	for i := 0; i < m; i++ {
		c, lo := limbmath.AddWW(a.mag.Get(i), b.mag.Get(i), carry)
		mag.Set(i, lo)
		carry = c
	}
	for i := m; i < n; i++ {
		c, lo := limbmath.AddWW(a.mag.Get(i), 0, carry)
		mag.Set(i, lo)
		carry = c
	}
	if carry != 0 {
		mag.PushBack(carry)
	}
	z.mag = mag
}

// subAbs sets z to |a| - |b|, requiring |a| >= |b|. Ignores both operands'
// signs.
func subAbs(z *BigInt, a, b *BigInt) {
	n, m := a.mag.Len(), b.mag.Len()
	mag := NewLimbBuf(n, 0)
	var borrow limbmath.Word
	for i := 0; i < m; i++ {
		c, lo := limbmath.SubWW(a.mag.Get(i), b.mag.Get(i), borrow)
		mag.Set(i, lo)
		borrow = c
	}
	for i := m; i < n; i++ {
		c, lo := limbmath.SubWW(a.mag.Get(i), 0, borrow)
		mag.Set(i, lo)
		borrow = c
	}
	z.mag = mag
	normalize(z)
}

// Add sets z to x + y and returns z.
func (z *BigInt) Add(x, y *BigInt) *BigInt {
	if y.isZero() {
		return z.Set(x)
	}
	if x.isZero() {
		return z.Set(y)
	}
	var tmp BigInt
	neg := x.neg
	if x.neg == y.neg {
		// x + y == x + y; (-x) + (-y) == -(x + y)
		addAbs(&tmp, x, y)
	} else {
		// x + (-y) == x - y == -(y - x); (-x) + y == y - x == -(x - y)
		if cmpAbs(x, y) >= 0 {
			subAbs(&tmp, x, y)
		} else {
			neg = !neg
			subAbs(&tmp, y, x)
		}
	}
	tmp.neg = !tmp.isZero() && neg
	z.Swap(&tmp)
	return z
}

// Sub sets z to x - y and returns z.
func (z *BigInt) Sub(x, y *BigInt) *BigInt {
	if y.isZero() {
		return z.Set(x)
	}
	var tmp BigInt
	neg := x.neg
	if x.neg != y.neg {
		// x - (-y) == x + y; (-x) - y == -(x + y)
		addAbs(&tmp, x, y)
	} else {
		// x - y == x - y == -(y - x); (-x) - (-y) == y - x == -(x - y)
		if cmpAbs(x, y) >= 0 {
			subAbs(&tmp, x, y)
		} else {
			neg = !neg
			subAbs(&tmp, y, x)
		}
	}
	tmp.neg = !tmp.isZero() && neg
	z.Swap(&tmp)
	return z
}
