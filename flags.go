package bitset

import (
	"github.com/hupe1980/bitset/internal/u128"
)

// Flag is implemented by enumeration types whose variants occupy
// dedicated bit positions in a set of type S. The mapping must be
// total and injective: every variant returns a fixed, distinct
// position.
type Flag[S Set[S]] interface {
	// BitIndex returns the bit position assigned to this variant.
	BitIndex() Index[S]
}

// FromFlags builds the set containing the positions of the given
// variants. Repeated variants are collapsed: the fold is over the set
// of distinct positions, so passing a variant twice cannot toggle its
// bit back off.
func FromFlags[S Set[S], F Flag[S]](flags ...F) S {
	var u u128.Uint128
	for _, f := range flags {
		u = u.SetBit(uint(f.BitIndex().pos))
	}
	return wrap[S](u)
}

// HasFlag reports whether the variant's bit is set.
func HasFlag[S Set[S], F Flag[S]](s S, f F) bool {
	return s.bits().Bit(uint(f.BitIndex().pos))
}

// WithFlag returns s with the variant's bit forced to v.
func WithFlag[S Set[S], F Flag[S]](s S, f F, v bool) S {
	u := s.bits()
	if v {
		u = u.SetBit(uint(f.BitIndex().pos))
	} else {
		u = u.ClearBit(uint(f.BitIndex().pos))
	}
	return wrap[S](u)
}
