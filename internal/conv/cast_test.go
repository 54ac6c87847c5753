package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToUint64(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint64(0)
		assert.NoError(t, err)
		assert.Equal(t, uint64(0), got)
	})

	t.Run("valid max int", func(t *testing.T) {
		got, err := IntToUint64(math.MaxInt)
		assert.NoError(t, err)
		assert.Equal(t, uint64(math.MaxInt), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint64(-1)
		assert.Error(t, err)
	})
}

func TestUint64ToInt(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := Uint64ToInt(123)
		assert.NoError(t, err)
		assert.Equal(t, 123, got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Uint64ToInt(math.MaxUint64)
		assert.Error(t, err)
	})
}

func TestUint64Narrowing(t *testing.T) {
	t.Run("uint32 boundary", func(t *testing.T) {
		got, err := Uint64ToUint32(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)

		_, err = Uint64ToUint32(math.MaxUint32 + 1)
		assert.Error(t, err)
	})

	t.Run("uint16 boundary", func(t *testing.T) {
		got, err := Uint64ToUint16(math.MaxUint16)
		assert.NoError(t, err)
		assert.Equal(t, uint16(math.MaxUint16), got)

		_, err = Uint64ToUint16(math.MaxUint16 + 1)
		assert.Error(t, err)
	})

	t.Run("uint8 boundary", func(t *testing.T) {
		got, err := Uint64ToUint8(math.MaxUint8)
		assert.NoError(t, err)
		assert.Equal(t, uint8(math.MaxUint8), got)

		_, err = Uint64ToUint8(math.MaxUint8 + 1)
		assert.Error(t, err)
	})
}
