// Package u128 implements a 128-bit unsigned integer as a pair of
// 64-bit words.
//
// This package is internal: it exists to give the 128-bit set type the
// same word-level primitives (bitwise operators, logical shifts,
// population count, byte and decimal encoding) that the narrower set
// types get from the native unsigned integers.
//
// Layout: Lo holds bits [0, 64), Hi holds bits [64, 128). The byte
// encoding is little-endian across the full 16 bytes, so byte 0 is the
// least significant byte of Lo and byte 15 the most significant byte
// of Hi.
package u128

import (
	"fmt"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer value.
//
// The zero value is the number zero. Uint128 is comparable and can be
// used as a map key; == is numeric equality.
type Uint128 struct {
	Hi, Lo uint64
}

// New returns the value hi*2^64 + lo.
func New(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// From64 zero-extends a 64-bit value.
func From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Max returns the largest representable value (all 128 bits set).
func Max() Uint128 {
	return Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
}

// One returns the value 1.
func One() Uint128 {
	return Uint128{Lo: 1}
}

// Mask returns the value with the n lowest bits set, for n in [0, 128].
func Mask(n uint) Uint128 {
	switch {
	case n == 0:
		return Uint128{}
	case n >= 128:
		return Max()
	case n >= 64:
		return Uint128{Hi: ^uint64(0) >> (128 - n), Lo: ^uint64(0)}
	default:
		return Uint128{Lo: ^uint64(0) >> (64 - n)}
	}
}

// IsZero reports whether u == 0.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Cmp returns -1, 0 or +1 depending on whether u is less than, equal
// to, or greater than v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi != v.Hi:
		if u.Hi < v.Hi {
			return -1
		}
		return 1
	case u.Lo != v.Lo:
		if u.Lo < v.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// And returns u & v.
func (u Uint128) And(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi & v.Hi, Lo: u.Lo & v.Lo}
}

// Or returns u | v.
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi | v.Hi, Lo: u.Lo | v.Lo}
}

// Xor returns u ^ v.
func (u Uint128) Xor(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi ^ v.Hi, Lo: u.Lo ^ v.Lo}
}

// Not returns ^u.
func (u Uint128) Not() Uint128 {
	return Uint128{Hi: ^u.Hi, Lo: ^u.Lo}
}

// Shl returns u << n with zero fill. Shifts of 128 or more yield zero.
func (u Uint128) Shl(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
	}
}

// Shr returns u >> n with zero fill. Shifts of 128 or more yield zero.
func (u Uint128) Shr(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
	}
}

// Bit reports whether bit n is set, for n in [0, 128).
func (u Uint128) Bit(n uint) bool {
	if n >= 64 {
		return u.Hi>>(n-64)&1 == 1
	}
	return u.Lo>>n&1 == 1
}

// SetBit returns u with bit n forced to 1.
func (u Uint128) SetBit(n uint) Uint128 {
	if n >= 64 {
		u.Hi |= 1 << (n - 64)
	} else {
		u.Lo |= 1 << n
	}
	return u
}

// ClearBit returns u with bit n forced to 0.
func (u Uint128) ClearBit(n uint) Uint128 {
	if n >= 64 {
		u.Hi &^= 1 << (n - 64)
	} else {
		u.Lo &^= 1 << n
	}
	return u
}

// OnesCount returns the number of set bits.
func (u Uint128) OnesCount() int {
	return bits.OnesCount64(u.Hi) + bits.OnesCount64(u.Lo)
}

// TrailingZeros returns the number of trailing zero bits; 128 if u is
// zero.
func (u Uint128) TrailingZeros() int {
	if u.Lo != 0 {
		return bits.TrailingZeros64(u.Lo)
	}
	return 64 + bits.TrailingZeros64(u.Hi)
}

// Bytes returns the little-endian 16-byte encoding of u.
func (u Uint128) Bytes() [16]byte {
	var b [16]byte
	for i := range 8 {
		b[i] = byte(u.Lo >> (8 * i))
		b[8+i] = byte(u.Hi >> (8 * i))
	}
	return b
}

// FromBytes decodes the little-endian 16-byte encoding produced by
// Bytes.
func FromBytes(b [16]byte) Uint128 {
	var u Uint128
	for i := range 8 {
		u.Lo |= uint64(b[i]) << (8 * i)
		u.Hi |= uint64(b[8+i]) << (8 * i)
	}
	return u
}

// QuoRem64 returns the quotient and remainder of u divided by d.
// It panics if d == 0, matching native integer division.
func (u Uint128) QuoRem64(d uint64) (Uint128, uint64) {
	qHi := u.Hi / d
	rem := u.Hi % d
	qLo, r := bits.Div64(rem, u.Lo, d)
	return Uint128{Hi: qHi, Lo: qLo}, r
}

// String renders u in decimal.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return fmt.Sprintf("%d", u.Lo)
	}
	// Peel off 19-digit chunks; 10^19 is the largest power of ten
	// that fits in a uint64.
	const chunk = 1e19
	q, r := u.QuoRem64(chunk)
	if q.Hi == 0 {
		return fmt.Sprintf("%d%019d", q.Lo, r)
	}
	q2, r2 := q.QuoRem64(chunk)
	return fmt.Sprintf("%d%019d%019d", q2.Lo, r2, r)
}

// Parse decodes a non-empty decimal string. It rejects anything other
// than ASCII digits and values that do not fit in 128 bits.
func Parse(s string) (Uint128, error) {
	if s == "" {
		return Uint128{}, fmt.Errorf("u128: empty decimal string")
	}
	var u Uint128
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Uint128{}, fmt.Errorf("u128: invalid decimal digit %q in %q", c, s)
		}
		var ok bool
		u, ok = u.mulAdd(10, uint64(c-'0'))
		if !ok {
			return Uint128{}, fmt.Errorf("u128: value %q overflows 128 bits", s)
		}
	}
	return u, nil
}

// mulAdd returns u*m + a and whether the result fit in 128 bits.
func (u Uint128) mulAdd(m, a uint64) (Uint128, bool) {
	hiProd, loProd := bits.Mul64(u.Lo, m)
	hiHi, hiLo := bits.Mul64(u.Hi, m)
	if hiHi != 0 {
		return Uint128{}, false
	}
	lo, carry := bits.Add64(loProd, a, 0)
	hi, carry2 := bits.Add64(hiLo, hiProd, carry)
	if carry2 != 0 {
		return Uint128{}, false
	}
	return Uint128{Hi: hi, Lo: lo}, true
}
