package bitset

import (
	"github.com/hupe1980/bitset/internal/u128"
)

// Set is the contract shared by the fixed-width set types Set8, Set16,
// Set32, Set64 and Set128.
//
// It is a sealed constraint: the unexported methods restrict
// implementations to this package, so generic code can rely on every S
// being a plain value wrapping exactly Width bits with no padding and
// no bits outside [0, Width).
type Set[S any] interface {
	comparable

	// Width returns the number of bits in the set.
	Width() int

	// CountOnes returns the number of set bits.
	CountOnes() int

	// CountZeros returns the number of unset bits.
	CountZeros() int

	// Complement returns the bitwise NOT of the set.
	Complement() S

	// Union returns the set of bits present in either operand.
	Union(S) S

	// Intersection returns the set of bits present in both operands.
	Intersection(S) S

	// Difference returns the set of bits present in the receiver but
	// not in the argument.
	Difference(S) S

	// SymmetricDifference returns the set of bits present in exactly
	// one of the operands.
	SymmetricDifference(S) S

	// bits returns the value zero-extended to 128 bits.
	bits() u128.Uint128

	// wrap builds a set from the low Width bits of u, discarding the
	// rest. The receiver is ignored; it exists so generic code can
	// construct values from a type parameter.
	wrap(u u128.Uint128) S
}

func width[S Set[S]]() int {
	var z S
	return z.Width()
}

func wrap[S Set[S]](u u128.Uint128) S {
	var z S
	return z.wrap(u)
}

// None returns the empty set (all bits zero) of the given width.
func None[S Set[S]]() S {
	return wrap[S](u128.Uint128{})
}

// All returns the full set (all bits one) of the given width.
func All[S Set[S]]() S {
	return wrap[S](u128.Max())
}

// One returns the singleton set containing only bit 0. It is the shift
// base: One << i is the singleton set of position i.
func One[S Set[S]]() S {
	return wrap[S](u128.One())
}

// FromIndex returns the singleton set containing only the given
// position.
func FromIndex[S Set[S]](i Index[S]) S {
	return wrap[S](u128.One().Shl(uint(i.pos)))
}
