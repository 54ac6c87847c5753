package bitset

import (
	"iter"

	"github.com/hupe1980/bitset/internal/u128"
)

// Set128 is a fixed-width set of 128 bits backed by a pair of 64-bit
// words. Go has no native 128-bit integer, so the inner representation
// is exposed as (hi, lo) where lo holds bits [0, 64) and hi holds bits
// [64, 128). See Set8 for the shared semantics.
type Set128 struct {
	hi, lo uint64
}

// Canonical values of Set128.
var (
	None128 = Set128{}
	All128  = Set128{hi: ^uint64(0), lo: ^uint64(0)}
	One128  = Set128{lo: 1}
)

// New128 returns the set whose inner value is hi*2^64 + lo.
func New128(hi, lo uint64) Set128 {
	return Set128{hi: hi, lo: lo}
}

// Width returns 128.
func (s Set128) Width() int { return 128 }

func (s Set128) bits() u128.Uint128 { return u128.New(s.hi, s.lo) }

func (s Set128) wrap(u u128.Uint128) Set128 { return Set128{hi: u.Hi, lo: u.Lo} }

// Uint64s returns the inner representation as (hi, lo) words.
func (s Set128) Uint64s() (hi, lo uint64) { return s.hi, s.lo }

// Bit reports whether the bit at i is set.
func (s Set128) Bit(i Index[Set128]) bool { return s.bits().Bit(uint(i.pos)) }

// WithBit returns s with the bit at i forced to v.
func (s Set128) WithBit(i Index[Set128], v bool) Set128 {
	if v {
		return s.CheckBit(i)
	}
	return s.UncheckBit(i)
}

// CheckBit returns s with the bit at i forced to 1.
func (s Set128) CheckBit(i Index[Set128]) Set128 {
	return s.wrap(s.bits().SetBit(uint(i.pos)))
}

// UncheckBit returns s with the bit at i forced to 0.
func (s Set128) UncheckBit(i Index[Set128]) Set128 {
	return s.wrap(s.bits().ClearBit(uint(i.pos)))
}

// SetBit overwrites the bit at i in place.
func (s *Set128) SetBit(i Index[Set128], v bool) { *s = s.WithBit(i, v) }

// BitRef returns a read-only handle to the bit at i.
func (s Set128) BitRef(i Index[Set128]) BitRef[Set128] { return BitRef[Set128]{set: s, idx: i} }

// BitMut returns a writable handle to the bit at i.
func (s *Set128) BitMut(i Index[Set128]) BitMut[Set128] { return BitMut[Set128]{set: s, idx: i} }

// CountOnes returns the number of set bits.
func (s Set128) CountOnes() int { return s.bits().OnesCount() }

// CountZeros returns the number of unset bits.
func (s Set128) CountZeros() int { return 128 - s.CountOnes() }

// Complement returns the bitwise NOT of s.
func (s Set128) Complement() Set128 { return Set128{hi: ^s.hi, lo: ^s.lo} }

// Union returns the set of bits present in s or o.
func (s Set128) Union(o Set128) Set128 { return Set128{hi: s.hi | o.hi, lo: s.lo | o.lo} }

// Intersection returns the set of bits present in both s and o.
func (s Set128) Intersection(o Set128) Set128 { return Set128{hi: s.hi & o.hi, lo: s.lo & o.lo} }

// Difference returns the set of bits present in s but not in o.
func (s Set128) Difference(o Set128) Set128 { return Set128{hi: s.hi &^ o.hi, lo: s.lo &^ o.lo} }

// SymmetricDifference returns the set of bits present in exactly one
// of s and o.
func (s Set128) SymmetricDifference(o Set128) Set128 {
	return Set128{hi: s.hi ^ o.hi, lo: s.lo ^ o.lo}
}

// Shl returns s shifted left by i positions with zero fill. Shifts
// cross the 64-bit word boundary transparently.
func (s Set128) Shl(i Index[Set128]) Set128 { return s.wrap(s.bits().Shl(uint(i.pos))) }

// Shr returns s shifted right by i positions with zero fill.
func (s Set128) Shr(i Index[Set128]) Set128 { return s.wrap(s.bits().Shr(uint(i.pos))) }

// Cmp orders sets by their inner integer value.
func (s Set128) Cmp(o Set128) int { return s.bits().Cmp(o.bits()) }

// Bits returns the 128 bit values in ascending position order.
func (s Set128) Bits() iter.Seq[bool] { return bitsSeq[Set128](s) }

// Ones returns the positions of set bits in ascending order.
func (s Set128) Ones() iter.Seq[Index[Set128]] { return onesSeq[Set128](s) }

// Zeros returns the positions of unset bits in ascending order.
func (s Set128) Zeros() iter.Seq[Index[Set128]] { return zerosSeq[Set128](s) }

// BitsMut returns writable handles to all 128 bits in ascending
// position order.
func (s *Set128) BitsMut() iter.Seq[BitMut[Set128]] { return bitsMutSeq(s) }
