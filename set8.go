package bitset

import (
	"cmp"
	"iter"
	"math"
	"math/bits"

	"github.com/hupe1980/bitset/internal/u128"
)

// Set8 is a fixed-width set of 8 bits backed by a uint8.
//
// Construct it by plain conversion from its inner integer:
//
//	s := bitset.Set8(0b10101010)
//
// Every operation is a pure value transformation; the only mutating
// entry points (SetBit, BitMut, BitsMut) go through a pointer receiver
// and require exclusive access to the instance, the same discipline as
// any other Go value.
type Set8 uint8

// Canonical values of Set8.
const (
	None8 Set8 = 0
	All8  Set8 = math.MaxUint8
	One8  Set8 = 1
)

// Width returns 8.
func (s Set8) Width() int { return 8 }

func (s Set8) bits() u128.Uint128 { return u128.From64(uint64(s)) }

func (s Set8) wrap(u u128.Uint128) Set8 { return Set8(u.Lo) }

// Uint8 returns the inner representation.
func (s Set8) Uint8() uint8 { return uint8(s) }

// Bit reports whether the bit at i is set.
func (s Set8) Bit(i Index[Set8]) bool { return s>>i.pos&1 == 1 }

// WithBit returns s with the bit at i forced to v.
func (s Set8) WithBit(i Index[Set8], v bool) Set8 {
	if v {
		return s.CheckBit(i)
	}
	return s.UncheckBit(i)
}

// CheckBit returns s with the bit at i forced to 1.
func (s Set8) CheckBit(i Index[Set8]) Set8 { return s | 1<<i.pos }

// UncheckBit returns s with the bit at i forced to 0.
func (s Set8) UncheckBit(i Index[Set8]) Set8 { return s &^ (1 << i.pos) }

// SetBit overwrites the bit at i in place.
func (s *Set8) SetBit(i Index[Set8], v bool) { *s = s.WithBit(i, v) }

// BitRef returns a read-only handle to the bit at i.
func (s Set8) BitRef(i Index[Set8]) BitRef[Set8] { return BitRef[Set8]{set: s, idx: i} }

// BitMut returns a writable handle to the bit at i. The handle writes
// through s, so the caller must hold exclusive access to it.
func (s *Set8) BitMut(i Index[Set8]) BitMut[Set8] { return BitMut[Set8]{set: s, idx: i} }

// CountOnes returns the number of set bits.
func (s Set8) CountOnes() int { return bits.OnesCount8(uint8(s)) }

// CountZeros returns the number of unset bits.
func (s Set8) CountZeros() int { return 8 - s.CountOnes() }

// Complement returns the bitwise NOT of s.
func (s Set8) Complement() Set8 { return ^s }

// Union returns the set of bits present in s or o.
func (s Set8) Union(o Set8) Set8 { return s | o }

// Intersection returns the set of bits present in both s and o.
func (s Set8) Intersection(o Set8) Set8 { return s & o }

// Difference returns the set of bits present in s but not in o.
func (s Set8) Difference(o Set8) Set8 { return s &^ o }

// SymmetricDifference returns the set of bits present in exactly one
// of s and o.
func (s Set8) SymmetricDifference(o Set8) Set8 { return s ^ o }

// Shl returns s shifted left by i positions with zero fill.
func (s Set8) Shl(i Index[Set8]) Set8 { return s << i.pos }

// Shr returns s shifted right by i positions with zero fill.
func (s Set8) Shr(i Index[Set8]) Set8 { return s >> i.pos }

// Cmp orders sets by their inner integer value.
func (s Set8) Cmp(o Set8) int { return cmp.Compare(s, o) }

// Bits returns the 8 bit values in ascending position order, bit 0
// first. The sequence is finite and can be restarted by calling Bits
// again.
func (s Set8) Bits() iter.Seq[bool] { return bitsSeq[Set8](s) }

// Ones returns the positions of set bits in ascending order.
func (s Set8) Ones() iter.Seq[Index[Set8]] { return onesSeq[Set8](s) }

// Zeros returns the positions of unset bits in ascending order.
func (s Set8) Zeros() iter.Seq[Index[Set8]] { return zerosSeq[Set8](s) }

// BitsMut returns writable handles to all 8 bits in ascending position
// order, permitting in-place flips during traversal.
func (s *Set8) BitsMut() iter.Seq[BitMut[Set8]] { return bitsMutSeq(s) }
