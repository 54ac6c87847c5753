package bitset

import (
	"cmp"
	"iter"
	"math"
	"math/bits"

	"github.com/hupe1980/bitset/internal/u128"
)

// Set16 is a fixed-width set of 16 bits backed by a uint16.
// See Set8 for the shared semantics.
type Set16 uint16

// Canonical values of Set16.
const (
	None16 Set16 = 0
	All16  Set16 = math.MaxUint16
	One16  Set16 = 1
)

// Width returns 16.
func (s Set16) Width() int { return 16 }

func (s Set16) bits() u128.Uint128 { return u128.From64(uint64(s)) }

func (s Set16) wrap(u u128.Uint128) Set16 { return Set16(u.Lo) }

// Uint16 returns the inner representation.
func (s Set16) Uint16() uint16 { return uint16(s) }

// Bit reports whether the bit at i is set.
func (s Set16) Bit(i Index[Set16]) bool { return s>>i.pos&1 == 1 }

// WithBit returns s with the bit at i forced to v.
func (s Set16) WithBit(i Index[Set16], v bool) Set16 {
	if v {
		return s.CheckBit(i)
	}
	return s.UncheckBit(i)
}

// CheckBit returns s with the bit at i forced to 1.
func (s Set16) CheckBit(i Index[Set16]) Set16 { return s | 1<<i.pos }

// UncheckBit returns s with the bit at i forced to 0.
func (s Set16) UncheckBit(i Index[Set16]) Set16 { return s &^ (1 << i.pos) }

// SetBit overwrites the bit at i in place.
func (s *Set16) SetBit(i Index[Set16], v bool) { *s = s.WithBit(i, v) }

// BitRef returns a read-only handle to the bit at i.
func (s Set16) BitRef(i Index[Set16]) BitRef[Set16] { return BitRef[Set16]{set: s, idx: i} }

// BitMut returns a writable handle to the bit at i.
func (s *Set16) BitMut(i Index[Set16]) BitMut[Set16] { return BitMut[Set16]{set: s, idx: i} }

// CountOnes returns the number of set bits.
func (s Set16) CountOnes() int { return bits.OnesCount16(uint16(s)) }

// CountZeros returns the number of unset bits.
func (s Set16) CountZeros() int { return 16 - s.CountOnes() }

// Complement returns the bitwise NOT of s.
func (s Set16) Complement() Set16 { return ^s }

// Union returns the set of bits present in s or o.
func (s Set16) Union(o Set16) Set16 { return s | o }

// Intersection returns the set of bits present in both s and o.
func (s Set16) Intersection(o Set16) Set16 { return s & o }

// Difference returns the set of bits present in s but not in o.
func (s Set16) Difference(o Set16) Set16 { return s &^ o }

// SymmetricDifference returns the set of bits present in exactly one
// of s and o.
func (s Set16) SymmetricDifference(o Set16) Set16 { return s ^ o }

// Shl returns s shifted left by i positions with zero fill.
func (s Set16) Shl(i Index[Set16]) Set16 { return s << i.pos }

// Shr returns s shifted right by i positions with zero fill.
func (s Set16) Shr(i Index[Set16]) Set16 { return s >> i.pos }

// Cmp orders sets by their inner integer value.
func (s Set16) Cmp(o Set16) int { return cmp.Compare(s, o) }

// Bits returns the 16 bit values in ascending position order.
func (s Set16) Bits() iter.Seq[bool] { return bitsSeq[Set16](s) }

// Ones returns the positions of set bits in ascending order.
func (s Set16) Ones() iter.Seq[Index[Set16]] { return onesSeq[Set16](s) }

// Zeros returns the positions of unset bits in ascending order.
func (s Set16) Zeros() iter.Seq[Index[Set16]] { return zerosSeq[Set16](s) }

// BitsMut returns writable handles to all 16 bits in ascending
// position order.
func (s *Set16) BitsMut() iter.Seq[BitMut[Set16]] { return bitsMutSeq(s) }
