package bitset

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/hupe1980/bitset/internal/conv"
	"github.com/hupe1980/bitset/internal/u128"
)

// Serialization is transparent: every set marshals as its plain
// underlying integer. JSON uses the decimal number form (including the
// 128-bit width, whose digits exceed uint64); binary uses the
// fixed-width little-endian encoding shared with the conversion fast
// paths.

// MarshalJSON encodes the set as its inner integer.
func (s Set8) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(s), 10), nil
}

// UnmarshalJSON decodes an inner-integer encoding, rejecting values
// that do not fit in 8 bits.
func (s *Set8) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("decode 8-bit set: %w", err)
	}
	n, err := conv.Uint64ToUint8(v)
	if err != nil {
		return fmt.Errorf("decode 8-bit set: %w", err)
	}
	*s = Set8(n)
	return nil
}

// MarshalJSON encodes the set as its inner integer.
func (s Set16) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(s), 10), nil
}

// UnmarshalJSON decodes an inner-integer encoding, rejecting values
// that do not fit in 16 bits.
func (s *Set16) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("decode 16-bit set: %w", err)
	}
	n, err := conv.Uint64ToUint16(v)
	if err != nil {
		return fmt.Errorf("decode 16-bit set: %w", err)
	}
	*s = Set16(n)
	return nil
}

// MarshalJSON encodes the set as its inner integer.
func (s Set32) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(s), 10), nil
}

// UnmarshalJSON decodes an inner-integer encoding, rejecting values
// that do not fit in 32 bits.
func (s *Set32) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("decode 32-bit set: %w", err)
	}
	n, err := conv.Uint64ToUint32(v)
	if err != nil {
		return fmt.Errorf("decode 32-bit set: %w", err)
	}
	*s = Set32(n)
	return nil
}

// MarshalJSON encodes the set as its inner integer.
func (s Set64) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(s), 10), nil
}

// UnmarshalJSON decodes an inner-integer encoding.
func (s *Set64) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("decode 64-bit set: %w", err)
	}
	*s = Set64(v)
	return nil
}

// MarshalJSON encodes the set as its inner integer in decimal. The
// value can exceed the range of a uint64; decoders that read JSON
// numbers as float64 will lose precision, so decode into Set128 (or a
// big integer) instead.
func (s Set128) MarshalJSON() ([]byte, error) {
	return []byte(s.bits().String()), nil
}

// UnmarshalJSON decodes an inner-integer encoding, rejecting values
// that do not fit in 128 bits.
func (s *Set128) UnmarshalJSON(data []byte) error {
	u, err := u128.Parse(string(data))
	if err != nil {
		return fmt.Errorf("decode 128-bit set: %w", err)
	}
	*s = Set128{hi: u.Hi, lo: u.Lo}
	return nil
}

// MarshalBinary encodes the set as 1 little-endian byte.
func (s Set8) MarshalBinary() ([]byte, error) {
	return []byte{byte(s)}, nil
}

// UnmarshalBinary decodes the 1-byte encoding.
func (s *Set8) UnmarshalBinary(data []byte) error {
	if len(data) != 1 {
		return fmt.Errorf("invalid binary length %d for 8-bit set", len(data))
	}
	*s = Set8(data[0])
	return nil
}

// MarshalBinary encodes the set as 2 little-endian bytes.
func (s Set16) MarshalBinary() ([]byte, error) {
	return binary.LittleEndian.AppendUint16(nil, uint16(s)), nil
}

// UnmarshalBinary decodes the 2-byte encoding.
func (s *Set16) UnmarshalBinary(data []byte) error {
	if len(data) != 2 {
		return fmt.Errorf("invalid binary length %d for 16-bit set", len(data))
	}
	*s = Set16(binary.LittleEndian.Uint16(data))
	return nil
}

// MarshalBinary encodes the set as 4 little-endian bytes.
func (s Set32) MarshalBinary() ([]byte, error) {
	return binary.LittleEndian.AppendUint32(nil, uint32(s)), nil
}

// UnmarshalBinary decodes the 4-byte encoding.
func (s *Set32) UnmarshalBinary(data []byte) error {
	if len(data) != 4 {
		return fmt.Errorf("invalid binary length %d for 32-bit set", len(data))
	}
	*s = Set32(binary.LittleEndian.Uint32(data))
	return nil
}

// MarshalBinary encodes the set as 8 little-endian bytes.
func (s Set64) MarshalBinary() ([]byte, error) {
	return binary.LittleEndian.AppendUint64(nil, uint64(s)), nil
}

// UnmarshalBinary decodes the 8-byte encoding.
func (s *Set64) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return fmt.Errorf("invalid binary length %d for 64-bit set", len(data))
	}
	*s = Set64(binary.LittleEndian.Uint64(data))
	return nil
}

// MarshalBinary encodes the set as 16 little-endian bytes (low word
// first).
func (s Set128) MarshalBinary() ([]byte, error) {
	b := s.bits().Bytes()
	return b[:], nil
}

// UnmarshalBinary decodes the 16-byte encoding.
func (s *Set128) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return fmt.Errorf("invalid binary length %d for 128-bit set", len(data))
	}
	var b [16]byte
	copy(b[:], data)
	u := u128.FromBytes(b)
	*s = Set128{hi: u.Hi, lo: u.Lo}
	return nil
}
