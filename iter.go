package bitset

import (
	"iter"

	"github.com/hupe1980/bitset/internal/u128"
)

// BitRef is a read-only handle to a single bit of a set. It captures
// the set by value, so it stays valid independently of the source.
type BitRef[S Set[S]] struct {
	set S
	idx Index[S]
}

// Index returns the position this handle addresses.
func (r BitRef[S]) Index() Index[S] { return r.idx }

// Get returns the bit value.
func (r BitRef[S]) Get() bool { return r.set.bits().Bit(uint(r.idx.pos)) }

// BitMut is a writable handle to a single bit of a set. It writes
// through a pointer, so the caller must hold exclusive access to the
// underlying set while the handle is live.
type BitMut[S Set[S]] struct {
	set *S
	idx Index[S]
}

// Index returns the position this handle addresses.
func (m BitMut[S]) Index() Index[S] { return m.idx }

// Get returns the current bit value.
func (m BitMut[S]) Get() bool { return (*m.set).bits().Bit(uint(m.idx.pos)) }

// Set overwrites the bit.
func (m BitMut[S]) Set(v bool) {
	u := (*m.set).bits()
	if v {
		u = u.SetBit(uint(m.idx.pos))
	} else {
		u = u.ClearBit(uint(m.idx.pos))
	}
	*m.set = wrap[S](u)
}

// Flip inverts the bit.
func (m BitMut[S]) Flip() { m.Set(!m.Get()) }

func bitsSeq[S Set[S]](s S) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		u := s.bits()
		for i := range width[S]() {
			if !yield(u.Bit(uint(i))) {
				return
			}
		}
	}
}

func onesSeq[S Set[S]](s S) iter.Seq[Index[S]] {
	return func(yield func(Index[S]) bool) {
		u := s.bits()
		for i := range width[S]() {
			if u.Bit(uint(i)) && !yield(Index[S]{pos: uint8(i)}) {
				return
			}
		}
	}
}

func zerosSeq[S Set[S]](s S) iter.Seq[Index[S]] {
	return func(yield func(Index[S]) bool) {
		u := s.bits()
		for i := range width[S]() {
			if !u.Bit(uint(i)) && !yield(Index[S]{pos: uint8(i)}) {
				return
			}
		}
	}
}

func bitsMutSeq[S Set[S]](s *S) iter.Seq[BitMut[S]] {
	return func(yield func(BitMut[S]) bool) {
		for i := range width[S]() {
			if !yield(BitMut[S]{set: s, idx: Index[S]{pos: uint8(i)}}) {
				return
			}
		}
	}
}

// FromBits builds a set from a boolean sequence: the i-th produced
// value sets bit i. It consumes at most Width items; excess items are
// dropped. This is a defined truncation, not an error, because the
// sequence may be longer than the target width or infinite.
func FromBits[S Set[S]](seq iter.Seq[bool]) S {
	var u u128.Uint128
	w := width[S]()
	i := 0
	for b := range seq {
		if i >= w {
			break
		}
		if b {
			u = u.SetBit(uint(i))
		}
		i++
	}
	return wrap[S](u)
}

// FromBools is FromBits over a slice: bs[i] sets bit i. Excess entries
// beyond the width are dropped.
func FromBools[S Set[S]](bs ...bool) S {
	var u u128.Uint128
	w := width[S]()
	for i, b := range bs {
		if i >= w {
			break
		}
		if b {
			u = u.SetBit(uint(i))
		}
	}
	return wrap[S](u)
}
