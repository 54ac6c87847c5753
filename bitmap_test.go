package bitset

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBitmap(t *testing.T) {
	s := Set16(0b1000000000000101)
	rb := ToBitmap(s)

	assert.Equal(t, uint64(3), rb.GetCardinality())
	assert.True(t, rb.Contains(0))
	assert.True(t, rb.Contains(2))
	assert.True(t, rb.Contains(15))
	assert.False(t, rb.Contains(1))
}

func TestToBitmapEmpty(t *testing.T) {
	assert.True(t, ToBitmap(None64).IsEmpty())
}

func TestFromBitmap(t *testing.T) {
	rb := roaring.BitmapOf(0, 2, 15)

	s, err := FromBitmap[Set16](rb)
	require.NoError(t, err)
	assert.Equal(t, Set16(0b1000000000000101), s)
}

func TestFromBitmapOutOfRange(t *testing.T) {
	rb := roaring.BitmapOf(3, 16)

	_, err := FromBitmap[Set16](rb)
	var convErr *ConvError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, RawTarget(16), convErr.From)
	assert.Equal(t, SetTarget(16), convErr.To)
}

func TestBitmapRoundTrip(t *testing.T) {
	for _, s := range []Set128{None128, One128, All128, New128(0xDEAD, 0xBEEF)} {
		got, err := FromBitmap[Set128](ToBitmap(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}
