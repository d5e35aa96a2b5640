package bigint

import "github.com/daniil-ushkov/bigint/internal/limbmath"

// addShortAbs adds v into z's magnitude (ripple-carry from limb 0),
// appending a carry limb if needed. z's sign is left untouched; callers
// combine sign separately.
func (z *BigInt) addShortAbs(v limbmath.Word) {
	carry := v
	for i := 0; carry != 0 && i < z.mag.Len(); i++ {
		c, lo := limbmath.AddWW(z.mag.Get(i), carry, 0)
		z.mag.Set(i, lo)
		carry = c
	}
	if carry != 0 {
		z.mag.PushBack(carry)
	}
	normalize(z)
}

// mulShort multiplies z's magnitude by v in place. If v == 0, z becomes
// zero. Sign is left untouched.
func (z *BigInt) mulShort(v limbmath.Word) {
	if v == 0 {
		z.mag = NewLimbBuf(1, 0)
		normalize(z)
		return
	}
	var carry limbmath.Word
	n := z.mag.Len()
	for i := 0; i < n; i++ {
		hi, lo := limbmath.MulAddWWW(z.mag.Get(i), v, carry)
		z.mag.Set(i, lo)
		carry = hi
	}
	if carry != 0 {
		z.mag.PushBack(carry)
	}
	normalize(z)
}

// divShort divides z's magnitude by v in place (z's sign is untouched)
// and returns the remainder. It fails with ErrDivisionByZero if v == 0.
func (z *BigInt) divShort(v limbmath.Word) (limbmath.Word, error) {
	if v == 0 {
		return 0, ErrDivisionByZero
	}
	if z.isZero() {
		return 0, nil
	}
	var rem limbmath.Word
	n := z.mag.Len()
	for i := n - 1; i >= 0; i-- {
		cur := uint64(rem)<<limbmath.W | uint64(z.mag.Get(i))
		z.mag.Set(i, limbmath.Word(cur/uint64(v)))
		rem = limbmath.Word(cur % uint64(v))
	}
	normalize(z)
	return rem, nil
}
