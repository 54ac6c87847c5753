package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	s := Set8(0b00011011)

	s16, err := Expand[Set16](s)
	require.NoError(t, err)
	assert.Equal(t, Set16(0b00011011), s16)

	s32, err := Expand[Set32](s)
	require.NoError(t, err)
	assert.Equal(t, Set32(0b00011011), s32)

	s64, err := Expand[Set64](s)
	require.NoError(t, err)
	assert.Equal(t, Set64(0b00011011), s64)

	s128, err := Expand[Set128](s)
	require.NoError(t, err)
	assert.Equal(t, New128(0, 0b00011011), s128)
}

func TestExpandSameWidth(t *testing.T) {
	got, err := Expand[Set16](Set16(0xBEEF))
	require.NoError(t, err)
	assert.Equal(t, Set16(0xBEEF), got)
}

func TestExpandToNarrowerFails(t *testing.T) {
	_, err := Expand[Set8](Set16(0x0001))

	var convErr *ConvError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, SetTarget(16), convErr.From)
	assert.Equal(t, SetTarget(8), convErr.To)
}

func TestExpandHighBitsAreZero(t *testing.T) {
	s128, err := Expand[Set128](All64)
	require.NoError(t, err)

	hi, lo := s128.Uint64s()
	assert.Equal(t, uint64(0), hi)
	assert.Equal(t, ^uint64(0), lo)
}

func TestConvertNarrowing(t *testing.T) {
	t.Run("nonzero high bits fail", func(t *testing.T) {
		_, err := Convert[Set8](Set16(0x0100))

		var convErr *ConvError
		require.ErrorAs(t, err, &convErr)
		assert.Equal(t, SetTarget(16), convErr.From)
		assert.Equal(t, SetTarget(8), convErr.To)
	})

	t.Run("fitting value succeeds", func(t *testing.T) {
		got, err := Convert[Set8](Set16(0x00FF))
		require.NoError(t, err)
		assert.Equal(t, Set8(0xFF), got)
	})

	t.Run("128 to 8", func(t *testing.T) {
		got, err := Convert[Set8](New128(0, 0x2A))
		require.NoError(t, err)
		assert.Equal(t, Set8(0x2A), got)

		_, err = Convert[Set8](New128(1, 0x2A))
		assert.Error(t, err)
	})

	t.Run("widening always succeeds", func(t *testing.T) {
		got, err := Convert[Set128](Set8(0x2A))
		require.NoError(t, err)
		assert.Equal(t, New128(0, 0x2A), got)
	})
}

func TestCombine(t *testing.T) {
	low := Set8(0b00011011)
	high := Set8(0b11101000)

	got, err := Combine[Set16](low, high)
	require.NoError(t, err)
	assert.Equal(t, Set16(0b1110100000011011), got)
}

func TestCombineInvalidWidthPair(t *testing.T) {
	_, err := Combine[Set32](Set8(1), Set8(2))
	assert.Error(t, err)

	_, err = Combine[Set128](New128(0, 1), New128(0, 2))
	assert.Error(t, err)
}

func TestSplit(t *testing.T) {
	low, high, err := Split[Set8](Set16(0b1110100000011011))
	require.NoError(t, err)

	assert.Equal(t, Set8(0b00011011), low)
	assert.Equal(t, Set8(0b11101000), high)
}

func TestSplitInvalidWidthPair(t *testing.T) {
	_, _, err := Split[Set8](Set32(1))
	assert.Error(t, err)
}

func TestCombineSplitRoundTrip(t *testing.T) {
	t.Run("8/16", func(t *testing.T) {
		for _, pair := range sample8Pairs() {
			w, err := Combine[Set16](pair[0], pair[1])
			require.NoError(t, err)

			low, high, err := Split[Set8](w)
			require.NoError(t, err)
			assert.Equal(t, pair[0], low)
			assert.Equal(t, pair[1], high)
		}
	})

	t.Run("64/128", func(t *testing.T) {
		vals := []Set64{0, 1, 0xFF, 0xDEADBEEF, ^Set64(0)}
		for _, a := range vals {
			for _, b := range vals {
				w, err := Combine[Set128](a, b)
				require.NoError(t, err)

				low, high, err := Split[Set64](w)
				require.NoError(t, err)
				assert.Equal(t, a, low)
				assert.Equal(t, b, high)
			}
		}
	})

	t.Run("split then combine is identity", func(t *testing.T) {
		for _, v := range []Set16{0, 1, 0x00FF, 0xFF00, 0xA5A5, 0xFFFF} {
			low, high, err := Split[Set8](v)
			require.NoError(t, err)

			back, err := Combine[Set16](low, high)
			require.NoError(t, err)
			assert.Equal(t, v, back)
		}
	})
}

// The optimized byte-level conversions must be observably equivalent
// to the bit-by-bit reference algorithms for all inputs.

func TestExpandOptimizedEquivalence(t *testing.T) {
	for _, v := range sample8() {
		ref16, err := Expand[Set16](v)
		require.NoError(t, err)
		opt16, err := ExpandOptimized[Set16](v)
		require.NoError(t, err)
		assert.Equal(t, ref16, opt16, "8->16 of %#b", v)

		ref128, err := Expand[Set128](v)
		require.NoError(t, err)
		opt128, err := ExpandOptimized[Set128](v)
		require.NoError(t, err)
		assert.Equal(t, ref128, opt128, "8->128 of %#b", v)
	}

	for _, v := range []Set32{0, 1, 0x80000000, 0xA5A5A5A5, ^Set32(0)} {
		ref, err := Expand[Set64](v)
		require.NoError(t, err)
		opt, err := ExpandOptimized[Set64](v)
		require.NoError(t, err)
		assert.Equal(t, ref, opt)
	}

	_, err := ExpandOptimized[Set8](Set16(1))
	assert.Error(t, err, "optimized path keeps the width check")
}

func TestCombineOptimizedEquivalence(t *testing.T) {
	for _, pair := range sample8Pairs() {
		ref, err := Combine[Set16](pair[0], pair[1])
		require.NoError(t, err)
		opt, err := CombineOptimized[Set16](pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, ref, opt, "combine(%#b, %#b)", pair[0], pair[1])
	}

	vals := []Set64{0, 1, 0xDEADBEEF, ^Set64(0)}
	for _, a := range vals {
		for _, b := range vals {
			ref, err := Combine[Set128](a, b)
			require.NoError(t, err)
			opt, err := CombineOptimized[Set128](a, b)
			require.NoError(t, err)
			assert.Equal(t, ref, opt)
		}
	}
}

func TestSplitOptimizedEquivalence(t *testing.T) {
	for _, v := range []Set16{0, 1, 0x00FF, 0xFF00, 0xA5A5, 0x1E1B, 0xFFFF} {
		refLow, refHigh, err := Split[Set8](v)
		require.NoError(t, err)
		optLow, optHigh, err := SplitOptimized[Set8](v)
		require.NoError(t, err)

		assert.Equal(t, refLow, optLow, "low of %#b", v)
		assert.Equal(t, refHigh, optHigh, "high of %#b", v)
	}

	for _, v := range []Set128{None128, One128, All128, New128(0xDEAD, 0xBEEF)} {
		refLow, refHigh, err := Split[Set64](v)
		require.NoError(t, err)
		optLow, optHigh, err := SplitOptimized[Set64](v)
		require.NoError(t, err)

		assert.Equal(t, refLow, optLow)
		assert.Equal(t, refHigh, optHigh)
	}
}

func sample8() []Set8 {
	return []Set8{0, 1, 0b00011011, 0b10000000, 0b01010101, 0b11101000, 0xFF}
}

func sample8Pairs() [][2]Set8 {
	vals := sample8()
	pairs := make([][2]Set8, 0, len(vals)*len(vals))
	for _, a := range vals {
		for _, b := range vals {
			pairs = append(pairs, [2]Set8{a, b})
		}
	}
	return pairs
}
