package bigint

import "github.com/daniil-ushkov/bigint/internal/limbmath"

// smallCap is the number of limbs a LimbBuf stores inline before spilling
// to a shared heap block.
const smallCap = 2

// heapBlock is a limb array shared by zero or more LimbBuf values. refs is
// raised by Clone and lowered by release and unshare; a LimbBuf that is
// simply overwritten does not lower it. It is not atomic and exists only
// to decide whether a write must clone first, not to drive deallocation —
// the Go garbage collector reclaims the block once nothing references it.
type heapBlock struct {
	data []limbmath.Word
	refs int32
}

// LimbBuf is a sequence of 32-bit limbs with small-buffer optimization:
// magnitudes of at most two limbs live inline with no heap allocation, and
// larger magnitudes live in a reference-counted heap block that is cloned
// lazily on the first write after sharing (copy-on-write). Grow is the one
// exception to the inline rule: it can move a buffer of at most two limbs
// onto the heap ahead of its length.
//
// The zero value of LimbBuf is a valid, inline, length-0 buffer.
type LimbBuf struct {
	small [smallCap]limbmath.Word
	n     int
	blk   *heapBlock
}

// NewLimbBuf returns a buffer of length n with every limb set to fill.
func NewLimbBuf(n int, fill limbmath.Word) LimbBuf {
	var b LimbBuf
	if n <= smallCap {
		for i := 0; i < n; i++ {
			b.small[i] = fill
		}
		b.n = n
		return b
	}
	data := make([]limbmath.Word, n)
	for i := range data {
		data[i] = fill
	}
	b.blk = &heapBlock{data: data, refs: 1}
	b.n = n
	return b
}

// Len returns the number of limbs in b.
func (b *LimbBuf) Len() int { return b.n }

// Get returns the limb at index i. It never mutates or unshares the buffer.
func (b *LimbBuf) Get(i int) limbmath.Word {
	if b.blk == nil {
		return b.small[i]
	}
	return b.blk.data[i]
}

// Back returns the highest limb. Precondition: Len() >= 1.
func (b *LimbBuf) Back() limbmath.Word {
	return b.Get(b.n - 1)
}

// Set writes v to index i, unsharing the underlying storage first if it is
// currently shared with another LimbBuf.
func (b *LimbBuf) Set(i int, v limbmath.Word) {
	if b.blk == nil {
		b.small[i] = v
		return
	}
	b.unshare()
	b.blk.data[i] = v
}

// unshare ensures b's storage is exclusively owned, cloning the heap block
// if its refcount is above 1. Inline storage is always exclusive because
// Go's value semantics copy the [smallCap]Word array on assignment.
func (b *LimbBuf) unshare() {
	if b.blk == nil || b.blk.refs == 1 {
		return
	}
	data := make([]limbmath.Word, len(b.blk.data))
	copy(data, b.blk.data)
	b.blk.refs--
	b.blk = &heapBlock{data: data, refs: 1}
}

// release drops b's reference to its current heap block, if any.
func (b *LimbBuf) release() {
	if b.blk != nil {
		b.blk.refs--
		b.blk = nil
	}
}

// Clone returns a value-equal buffer. Inline buffers are copied by value;
// heap buffers share storage with b until one of them is written through.
func (b *LimbBuf) Clone() LimbBuf {
	if b.blk == nil {
		return LimbBuf{small: b.small, n: b.n}
	}
	b.blk.refs++
	return LimbBuf{n: b.n, blk: b.blk}
}

// Assign releases b's own storage and then behaves like Clone(other).
// Self-assignment (b.Assign(b)) is a no-op.
func (b *LimbBuf) Assign(other *LimbBuf) {
	if b == other {
		return
	}
	b.release()
	*b = other.Clone()
}

// PushBack appends one limb, crossing the inline-to-heap boundary when the
// new length exceeds smallCap.
func (b *LimbBuf) PushBack(v limbmath.Word) {
	if b.blk == nil {
		if b.n < smallCap {
			b.small[b.n] = v
			b.n++
			return
		}
		data := make([]limbmath.Word, b.n+1)
		copy(data, b.small[:b.n])
		data[b.n] = v
		b.blk = &heapBlock{data: data, refs: 1}
		b.n++
		return
	}
	b.unshare()
	b.blk.data = append(b.blk.data, v)
	b.n++
}

// PopBack removes the last limb. Precondition: Len() >= 1. When a heap
// buffer's length falls to smallCap or below, the limbs migrate back
// inline and the heap block is released.
func (b *LimbBuf) PopBack() {
	if b.blk == nil {
		b.n--
		return
	}
	if b.n-1 <= smallCap {
		var small [smallCap]limbmath.Word
		for i := 0; i < b.n-1; i++ {
			small[i] = b.blk.data[i]
		}
		b.release()
		b.small = small
		b.n--
		return
	}
	b.unshare()
	b.blk.data = b.blk.data[:b.n-1]
	b.n--
}

// Resize grows or shrinks b to newLen, filling any newly exposed high
// limbs with fill. It handles all four SBO/heap transition quadrants.
func (b *LimbBuf) Resize(newLen int, fill limbmath.Word) {
	for b.n < newLen {
		b.PushBack(fill)
	}
	for b.n > newLen {
		b.PopBack()
	}
}

// Grow reserves capacity for at least capacity limbs without changing b's
// length, so a caller that knows its final size up front (mul.go's n+m
// result, for instance) can avoid the repeated reallocations PushBack's
// append would otherwise make as the buffer grows. A capacity at or below smallCap is a
// no-op: inline storage is already fixed-size and never reallocates.
func (b *LimbBuf) Grow(capacity int) {
	if capacity <= smallCap {
		return
	}
	if b.blk == nil {
		data := make([]limbmath.Word, b.n, capacity)
		copy(data, b.small[:b.n])
		b.blk = &heapBlock{data: data, refs: 1}
		return
	}
	b.unshare()
	if cap(b.blk.data) >= capacity {
		return
	}
	data := make([]limbmath.Word, b.n, capacity)
	copy(data, b.blk.data)
	b.blk.data = data
}

// Equal reports whether b and other hold the same limb sequence, irrespective
// of representation.
func (b *LimbBuf) Equal(other *LimbBuf) bool {
	if b.n != other.n {
		return false
	}
	for i := 0; i < b.n; i++ {
		if b.Get(i) != other.Get(i) {
			return false
		}
	}
	return true
}
