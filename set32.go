package bitset

import (
	"cmp"
	"iter"
	"math"
	"math/bits"

	"github.com/hupe1980/bitset/internal/u128"
)

// Set32 is a fixed-width set of 32 bits backed by a uint32.
// See Set8 for the shared semantics.
type Set32 uint32

// Canonical values of Set32.
const (
	None32 Set32 = 0
	All32  Set32 = math.MaxUint32
	One32  Set32 = 1
)

// Width returns 32.
func (s Set32) Width() int { return 32 }

func (s Set32) bits() u128.Uint128 { return u128.From64(uint64(s)) }

func (s Set32) wrap(u u128.Uint128) Set32 { return Set32(u.Lo) }

// Uint32 returns the inner representation.
func (s Set32) Uint32() uint32 { return uint32(s) }

// Bit reports whether the bit at i is set.
func (s Set32) Bit(i Index[Set32]) bool { return s>>i.pos&1 == 1 }

// WithBit returns s with the bit at i forced to v.
func (s Set32) WithBit(i Index[Set32], v bool) Set32 {
	if v {
		return s.CheckBit(i)
	}
	return s.UncheckBit(i)
}

// CheckBit returns s with the bit at i forced to 1.
func (s Set32) CheckBit(i Index[Set32]) Set32 { return s | 1<<i.pos }

// UncheckBit returns s with the bit at i forced to 0.
func (s Set32) UncheckBit(i Index[Set32]) Set32 { return s &^ (1 << i.pos) }

// SetBit overwrites the bit at i in place.
func (s *Set32) SetBit(i Index[Set32], v bool) { *s = s.WithBit(i, v) }

// BitRef returns a read-only handle to the bit at i.
func (s Set32) BitRef(i Index[Set32]) BitRef[Set32] { return BitRef[Set32]{set: s, idx: i} }

// BitMut returns a writable handle to the bit at i.
func (s *Set32) BitMut(i Index[Set32]) BitMut[Set32] { return BitMut[Set32]{set: s, idx: i} }

// CountOnes returns the number of set bits.
func (s Set32) CountOnes() int { return bits.OnesCount32(uint32(s)) }

// CountZeros returns the number of unset bits.
func (s Set32) CountZeros() int { return 32 - s.CountOnes() }

// Complement returns the bitwise NOT of s.
func (s Set32) Complement() Set32 { return ^s }

// Union returns the set of bits present in s or o.
func (s Set32) Union(o Set32) Set32 { return s | o }

// Intersection returns the set of bits present in both s and o.
func (s Set32) Intersection(o Set32) Set32 { return s & o }

// Difference returns the set of bits present in s but not in o.
func (s Set32) Difference(o Set32) Set32 { return s &^ o }

// SymmetricDifference returns the set of bits present in exactly one
// of s and o.
func (s Set32) SymmetricDifference(o Set32) Set32 { return s ^ o }

// Shl returns s shifted left by i positions with zero fill.
func (s Set32) Shl(i Index[Set32]) Set32 { return s << i.pos }

// Shr returns s shifted right by i positions with zero fill.
func (s Set32) Shr(i Index[Set32]) Set32 { return s >> i.pos }

// Cmp orders sets by their inner integer value.
func (s Set32) Cmp(o Set32) int { return cmp.Compare(s, o) }

// Bits returns the 32 bit values in ascending position order.
func (s Set32) Bits() iter.Seq[bool] { return bitsSeq[Set32](s) }

// Ones returns the positions of set bits in ascending order.
func (s Set32) Ones() iter.Seq[Index[Set32]] { return onesSeq[Set32](s) }

// Zeros returns the positions of unset bits in ascending order.
func (s Set32) Zeros() iter.Seq[Index[Set32]] { return zerosSeq[Set32](s) }

// BitsMut returns writable handles to all 32 bits in ascending
// position order.
func (s *Set32) BitsMut() iter.Seq[BitMut[Set32]] { return bitsMutSeq(s) }
