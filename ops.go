package bigint

// Inc adds 1 to z in place (pre-increment) and returns z.
func (z *BigInt) Inc() *BigInt {
	return z.Add(z, FromInt32(1))
}

// Dec subtracts 1 from z in place (pre-decrement) and returns z.
func (z *BigInt) Dec() *BigInt {
	return z.Sub(z, FromInt32(1))
}

// PostInc adds 1 to z in place and returns the value z held before the
// increment (post-increment).
func (z *BigInt) PostInc() *BigInt {
	old := z.Clone()
	z.Inc()
	return old
}

// PostDec subtracts 1 from z in place and returns the value z held before
// the decrement (post-decrement).
func (z *BigInt) PostDec() *BigInt {
	old := z.Clone()
	z.Dec()
	return old
}
