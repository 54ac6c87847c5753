package bitset

import (
	"cmp"
	"iter"
	"math"
	"math/bits"

	"github.com/hupe1980/bitset/internal/u128"
)

// Set64 is a fixed-width set of 64 bits backed by a uint64.
// See Set8 for the shared semantics.
type Set64 uint64

// Canonical values of Set64.
const (
	None64 Set64 = 0
	All64  Set64 = math.MaxUint64
	One64  Set64 = 1
)

// Width returns 64.
func (s Set64) Width() int { return 64 }

func (s Set64) bits() u128.Uint128 { return u128.From64(uint64(s)) }

func (s Set64) wrap(u u128.Uint128) Set64 { return Set64(u.Lo) }

// Uint64 returns the inner representation.
func (s Set64) Uint64() uint64 { return uint64(s) }

// Bit reports whether the bit at i is set.
func (s Set64) Bit(i Index[Set64]) bool { return s>>i.pos&1 == 1 }

// WithBit returns s with the bit at i forced to v.
func (s Set64) WithBit(i Index[Set64], v bool) Set64 {
	if v {
		return s.CheckBit(i)
	}
	return s.UncheckBit(i)
}

// CheckBit returns s with the bit at i forced to 1.
func (s Set64) CheckBit(i Index[Set64]) Set64 { return s | 1<<i.pos }

// UncheckBit returns s with the bit at i forced to 0.
func (s Set64) UncheckBit(i Index[Set64]) Set64 { return s &^ (1 << i.pos) }

// SetBit overwrites the bit at i in place.
func (s *Set64) SetBit(i Index[Set64], v bool) { *s = s.WithBit(i, v) }

// BitRef returns a read-only handle to the bit at i.
func (s Set64) BitRef(i Index[Set64]) BitRef[Set64] { return BitRef[Set64]{set: s, idx: i} }

// BitMut returns a writable handle to the bit at i.
func (s *Set64) BitMut(i Index[Set64]) BitMut[Set64] { return BitMut[Set64]{set: s, idx: i} }

// CountOnes returns the number of set bits.
func (s Set64) CountOnes() int { return bits.OnesCount64(uint64(s)) }

// CountZeros returns the number of unset bits.
func (s Set64) CountZeros() int { return 64 - s.CountOnes() }

// Complement returns the bitwise NOT of s.
func (s Set64) Complement() Set64 { return ^s }

// Union returns the set of bits present in s or o.
func (s Set64) Union(o Set64) Set64 { return s | o }

// Intersection returns the set of bits present in both s and o.
func (s Set64) Intersection(o Set64) Set64 { return s & o }

// Difference returns the set of bits present in s but not in o.
func (s Set64) Difference(o Set64) Set64 { return s &^ o }

// SymmetricDifference returns the set of bits present in exactly one
// of s and o.
func (s Set64) SymmetricDifference(o Set64) Set64 { return s ^ o }

// Shl returns s shifted left by i positions with zero fill.
func (s Set64) Shl(i Index[Set64]) Set64 { return s << i.pos }

// Shr returns s shifted right by i positions with zero fill.
func (s Set64) Shr(i Index[Set64]) Set64 { return s >> i.pos }

// Cmp orders sets by their inner integer value.
func (s Set64) Cmp(o Set64) int { return cmp.Compare(s, o) }

// Bits returns the 64 bit values in ascending position order.
func (s Set64) Bits() iter.Seq[bool] { return bitsSeq[Set64](s) }

// Ones returns the positions of set bits in ascending order.
func (s Set64) Ones() iter.Seq[Index[Set64]] { return onesSeq[Set64](s) }

// Zeros returns the positions of unset bits in ascending order.
func (s Set64) Zeros() iter.Seq[Index[Set64]] { return zerosSeq[Set64](s) }

// BitsMut returns writable handles to all 64 bits in ascending
// position order.
func (s *Set64) BitsMut() iter.Seq[BitMut[Set64]] { return bitsMutSeq(s) }
