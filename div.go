package bigint

import "github.com/daniil-ushkov/bigint/internal/limbmath"

// mulMagByWord returns d*v as a fresh (m+1)-limb magnitude, where d has m
// limbs. Used for the per-step "multiply" in Algorithm D, not for the
// general-purpose mulShort (which mutates its receiver in place).
func mulMagByWord(d *LimbBuf, v limbmath.Word) LimbBuf {
	m := d.Len()
	result := NewLimbBuf(m+1, 0)
	var carry limbmath.Word
	for i := 0; i < m; i++ {
		acc := uint64(d.Get(i))*uint64(v) + uint64(carry)
		result.Set(i, limbmath.Word(acc))
		carry = limbmath.Word(acc >> limbmath.W)
	}
	result.Set(m, carry)
	return result
}

// windowLess reports whether the m+1 limbs r[k..k+m] are lexicographically
// less than dq (also m+1 limbs), comparing from the most significant limb
// down, per the "less-than" rule in Algorithm D's correction step.
func windowLess(r *LimbBuf, k, m int, dq *LimbBuf) bool {
	for i := m; i >= 0; i-- {
		rv, dv := r.Get(k+i), dq.Get(i)
		if rv != dv {
			return rv < dv
		}
	}
	return false
}

// subtractWindow replaces r[k..k+m] with r[k..k+m] - dq, propagating
// borrow across the m+1 limbs. The algorithm guarantees this never
// borrows past the top limb once the trial digit has been corrected.
func subtractWindow(r *LimbBuf, k, m int, dq *LimbBuf) {
	var borrow limbmath.Word
	for i := 0; i <= m; i++ {
		c, lo := limbmath.SubWW(r.Get(k+i), dq.Get(i), borrow)
		r.Set(k+i, lo)
		borrow = c
	}
}

// quoMagAbs returns the truncated quotient magnitude |a| / |b|. b must be
// non-zero. Implements Knuth TAOCP v.2 Algorithm D with the three-limb
// trial-quotient refinement (see limbmath.EstimateQuotientDigit).
func quoMagAbs(a, b *BigInt) LimbBuf {
	n, m := a.mag.Len(), b.mag.Len()
	if n < m {
		return NewLimbBuf(1, 0)
	}
	if m == 1 {
		tmp := BigInt{mag: a.mag.Clone()}
		tmp.divShort(b.mag.Get(0))
		return tmp.mag
	}

	// Step 1: normalize so the divisor's top limb has its high bit set.
	f := limbmath.Word(uint64(limbmath.B) / (uint64(b.mag.Get(m-1)) + 1))
	r := BigInt{mag: a.mag.Clone()}
	r.mulShort(f)
	d := BigInt{mag: b.mag.Clone()}
	d.mulShort(f)

	// Step 2: work in unsigned magnitudes with one high scratch limb.
	r.mag.Resize(n+1, 0)
	dMag := d.mag

	// Step 3/4.
	q := NewLimbBuf(n-m+1, 0)
	d1, d0 := dMag.Get(m-1), dMag.Get(m-2)

	for k := n - m; k >= 0; k-- {
		r2, r1, r0 := r.mag.Get(k+m), r.mag.Get(k+m-1), r.mag.Get(k+m-2)
		qt := limbmath.EstimateQuotientDigit(r2, r1, r0, d1, d0)

		dq := mulMagByWord(&dMag, qt)
		if windowLess(&r.mag, k, m, &dq) {
			qt--
			dq = mulMagByWord(&dMag, qt)
		}
		subtractWindow(&r.mag, k, m, &dq)
		q.Set(k, qt)
	}

	for q.Len() > 1 && q.Back() == 0 {
		q.PopBack()
	}
	return q
}

// QuoRem sets z to the truncated quotient x/y and rem to the remainder
// x - (x/y)*y (which carries the sign of x), then returns (z, rem, nil).
// Fails with ErrDivisionByZero if y == 0, leaving z and rem unchanged.
func (z *BigInt) QuoRem(x, y, rem *BigInt) (*BigInt, *BigInt, error) {
	if y.isZero() {
		return z, rem, ErrDivisionByZero
	}
	var q BigInt
	q.mag = quoMagAbs(x, y)
	q.neg = !q.isZero() && (x.neg != y.neg)
	normalize(&q)

	var r BigInt
	var prod BigInt
	prod.Mul(&q, y)
	r.Sub(x, &prod)

	z.Swap(&q)
	rem.Swap(&r)
	return z, rem, nil
}

// Div sets z to the truncated quotient x/y (truncation toward zero) and
// returns z. Fails with ErrDivisionByZero if y == 0, leaving z unchanged.
func (z *BigInt) Div(x, y *BigInt) (*BigInt, error) {
	var rem BigInt
	if _, _, err := z.QuoRem(x, y, &rem); err != nil {
		return z, err
	}
	return z, nil
}

// Mod sets z to the remainder of x/y, which carries the sign of x (so
// Mod implements truncating, not Euclidean, modulus). Returns
// ErrDivisionByZero if y == 0, leaving z unchanged.
func (z *BigInt) Mod(x, y *BigInt) (*BigInt, error) {
	var quo BigInt
	if _, _, err := quo.QuoRem(x, y, z); err != nil {
		return z, err
	}
	return z, nil
}
