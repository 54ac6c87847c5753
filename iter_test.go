package bitset

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBoolsTruncatesExcess(t *testing.T) {
	// Ten inputs into an 8-bit set: the trailing two are dropped, not
	// an error.
	full := FromBools[Set8](true, false, true, false, true, false, true, false, true, true)
	first8 := FromBools[Set8](true, false, true, false, true, false, true, false)

	assert.Equal(t, first8, full)
	assert.Equal(t, Set8(0b01010101), full)
}

func TestFromBitsInfiniteSequence(t *testing.T) {
	ones := iter.Seq[bool](func(yield func(bool) bool) {
		for {
			if !yield(true) {
				return
			}
		}
	})

	assert.Equal(t, All16, FromBits[Set16](ones))
}

func TestFromBitsShortSequence(t *testing.T) {
	s := FromBools[Set16](true, true)
	assert.Equal(t, Set16(0b11), s)
}

func TestBitIteratorAgreement(t *testing.T) {
	// x.Bit(i) must agree with the i-th element of x.Bits() for every
	// position.
	for _, s := range []Set16{0, 1, 0xA5A5, 0x8000, 0xFFFF} {
		i := 0
		for b := range s.Bits() {
			idx := MustIndex[Set16](i)
			assert.Equal(t, s.Bit(idx), b, "set %#b position %d", s, i)
			i++
		}
		assert.Equal(t, 16, i)
	}
}

func TestOnesZerosPartition(t *testing.T) {
	s := Set32(0xDEADBEEF)

	seen := make(map[int]bool)
	for i := range s.Ones() {
		seen[i.Value()] = true
	}
	for i := range s.Zeros() {
		assert.False(t, seen[i.Value()], "position %d in both sequences", i.Value())
		seen[i.Value()] = true
	}
	assert.Len(t, seen, 32)
}

func TestBitsMutReadThenWrite(t *testing.T) {
	s := Set16(0x00FF)

	for m := range s.BitsMut() {
		if m.Get() {
			m.Set(false)
		} else {
			m.Set(true)
		}
	}
	assert.Equal(t, Set16(0xFF00), s)
}

func TestBitRefIndependentOfSource(t *testing.T) {
	s := Set8(0b1)
	r := s.BitRef(MinIndex[Set8]())

	s = None8
	assert.True(t, r.Get(), "BitRef captures the set by value")
	assert.Equal(t, None8, s)
}
