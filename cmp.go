package bigint

// cmpAbs compares |a| and |b|, returning -1, 0, or +1. Lengths differ ⇒
// the shorter magnitude is smaller (normal form guarantees no leading zero
// limbs); otherwise the limbs are compared from the most significant down.
func cmpAbs(a, b *BigInt) int {
	na, nb := a.mag.Len(), b.mag.Len()
	if na != nb {
		if na < nb {
			return -1
		}
		return 1
	}
	for i := na - 1; i >= 0; i-- {
		av, bv := a.mag.Get(i), b.mag.Get(i)
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares x and y, returning -1, 0, or +1 for x < y, x == y, x > y.
// Trichotomy, antisymmetry, and transitivity all hold: Cmp is a total
// order over BigInt values.
func (x *BigInt) Cmp(y *BigInt) int {
	// Normal form gives zero a unique (false, [0]) representation, so
	// neg == true always means strictly negative here.
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	case x.neg: // both negative: reverse magnitude order
		return -cmpAbs(x, y)
	default: // both non-negative
		return cmpAbs(x, y)
	}
}

// Equal reports whether x == y.
func (x *BigInt) Equal(y *BigInt) bool { return x.Cmp(y) == 0 }

// Less reports whether x < y.
func (x *BigInt) Less(y *BigInt) bool { return x.Cmp(y) < 0 }

// LessEqual reports whether x <= y.
func (x *BigInt) LessEqual(y *BigInt) bool { return x.Cmp(y) <= 0 }

// Greater reports whether x > y.
func (x *BigInt) Greater(y *BigInt) bool { return x.Cmp(y) > 0 }

// GreaterEqual reports whether x >= y.
func (x *BigInt) GreaterEqual(y *BigInt) bool { return x.Cmp(y) >= 0 }
