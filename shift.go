package bigint

import "github.com/daniil-ushkov/bigint/internal/limbmath"

// Lsh sets z to x << s (s/32 limbs of zero prepended, then multiplied by
// 2^r for the remaining r = s%32 bits) and returns z. Sign is preserved.
func (z *BigInt) Lsh(x *BigInt, s uint) *BigInt {
	d, r := int(s/limbmath.W), s%limbmath.W

	var tmp BigInt
	tmp.neg = x.neg
	tmp.mag = NewLimbBuf(x.mag.Len()+d, 0)
	for i := 0; i < x.mag.Len(); i++ {
		tmp.mag.Set(i+d, x.mag.Get(i))
	}
	if r != 0 {
		tmp.mulShort(1 << r)
	}
	normalize(&tmp)
	z.Swap(&tmp)
	return z
}

// addOnesBelow adds (2^(32*d+r) - 1) to z's magnitude: an all-ones pattern
// across the low d limbs plus r set bits in limb d, growing z's storage on
// carry-out. Used only by Rsh's negative-operand rounding adjustment,
// where z.mag is already known to have more than d limbs.
func (z *BigInt) addOnesBelow(d int, r uint) {
	var carry limbmath.Word
	for i := 0; i < d; i++ {
		c, lo := limbmath.AddWW(z.mag.Get(i), limbmath.M, carry)
		z.mag.Set(i, lo)
		carry = c
	}
	var rOnes limbmath.Word
	if r > 0 {
		rOnes = limbmath.Word(1)<<r - 1
	}
	c, lo := limbmath.AddWW(z.mag.Get(d), rOnes, carry)
	z.mag.Set(d, lo)
	carry = c
	for i := d + 1; carry != 0; i++ {
		if i < z.mag.Len() {
			c, lo := limbmath.AddWW(z.mag.Get(i), carry, 0)
			z.mag.Set(i, lo)
			carry = c
		} else {
			z.mag.PushBack(carry)
			carry = 0
		}
	}
}

// Rsh sets z to x >> s, an arithmetic shift that rounds toward negative
// infinity (not toward zero) for negative x, and returns z. Sign is
// preserved, except that shifting a negative x past its own width yields
// -1 (floor division never reaches 0 for a negative numerator) while a
// non-negative x shifted past its width yields 0.
func (z *BigInt) Rsh(x *BigInt, s uint) *BigInt {
	d, r := int(s/limbmath.W), s%limbmath.W

	var tmp BigInt
	if d >= x.mag.Len() {
		if x.neg {
			tmp.neg = true
			tmp.mag = NewLimbBuf(1, 1)
		} else {
			tmp.mag = NewLimbBuf(1, 0)
		}
		z.Swap(&tmp)
		return z
	}

	tmp.neg = x.neg
	tmp.mag = x.mag.Clone()
	if x.neg {
		// |x|/2^s truncates toward zero; what the arithmetic shift wants
		// is ceil(|x|/2^s) == (|x| + 2^s - 1) / 2^s, so add the full
		// s-bit all-ones pattern — across whole limbs, not just the
		// trailing r bits — before dropping any limbs at all. Adding
		// only within the low limb being shifted out (or omitting
		// dropped limbs from the adjustment entirely) silently drops
		// carries from those limbs into the kept ones.
		tmp.addOnesBelow(d, r)
	}

	n := tmp.mag.Len() - d
	shifted := NewLimbBuf(n, 0)
	for i := 0; i < n; i++ {
		shifted.Set(i, tmp.mag.Get(i+d))
	}
	tmp.mag = shifted

	if r != 0 {
		tmp.divShort(1 << r)
	}
	normalize(&tmp)
	z.Swap(&tmp)
	return z
}
