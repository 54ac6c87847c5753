package bitset

import (
	"cmp"
	"strconv"
)

// Index is a validated bit position for a set of type S; the value it
// holds is always in [0, Width). It is immutable and ordered by value.
//
// The zero Index addresses bit 0 of any width.
type Index[S Set[S]] struct {
	pos uint8
}

// TryIndex validates raw as a bit position for sets of type S. It
// fails with a ConvError when raw is negative or not below the width.
func TryIndex[S Set[S]](raw int) (Index[S], error) {
	w := width[S]()
	if raw < 0 || raw >= w {
		return Index[S]{}, NewConvError(RawTarget(raw), IndexTarget(w))
	}
	return Index[S]{pos: uint8(raw)}, nil
}

// MustIndex is like TryIndex but panics on an out-of-range position.
// Use it for positions that are constant in the calling code.
func MustIndex[S Set[S]](raw int) Index[S] {
	i, err := TryIndex[S](raw)
	if err != nil {
		panic(err)
	}
	return i
}

// MinIndex returns the smallest valid position (bit 0).
func MinIndex[S Set[S]]() Index[S] {
	return Index[S]{}
}

// MaxIndex returns the largest valid position (bit Width-1).
func MaxIndex[S Set[S]]() Index[S] {
	return Index[S]{pos: uint8(width[S]() - 1)}
}

// Value returns the validated position.
func (i Index[S]) Value() int {
	return int(i.pos)
}

// Cmp returns -1, 0 or +1 comparing positions numerically.
func (i Index[S]) Cmp(o Index[S]) int {
	return cmp.Compare(i.pos, o.pos)
}

func (i Index[S]) String() string {
	return strconv.Itoa(int(i.pos))
}
