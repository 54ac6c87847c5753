package bitset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvTargetString(t *testing.T) {
	tests := []struct {
		target ConvTarget
		want   string
	}{
		{SetTarget(8), "Bitset (size 8)"},
		{SetTarget(128), "Bitset (size 128)"},
		{IndexTarget(8), "Index (max = 7)"},
		{EnumTarget(8), "Enum (8 variants)"},
		{RawTarget(19), "Raw (19)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.target.String())
	}
}

func TestConvErrorMessage(t *testing.T) {
	err := NewConvError(SetTarget(8), EnumTarget(8))
	assert.Equal(t, "failed to convert from Bitset (size 8) to Enum (8 variants)", err.Error())

	err = NewConvError(RawTarget(8), IndexTarget(8))
	assert.Equal(t, "failed to convert from Raw (8) to Index (max = 7)", err.Error())
}

func TestConvErrorAs(t *testing.T) {
	_, err := Convert[Set8](Set16(0x0100))

	var convErr *ConvError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, SetTarget(16), convErr.From)
	assert.Equal(t, SetTarget(8), convErr.To)
}
