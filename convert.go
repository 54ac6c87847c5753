package bitset

import (
	"github.com/hupe1980/bitset/internal/u128"
)

// The byte-level fast paths in this file reinterpret sets as their
// little-endian byte encoding: byte k holds bits [8k, 8k+8), matching
// internal/u128. The layout is fixed by this package, not inherited
// from the platform, and the bit-by-bit reference algorithms must
// produce identical results (see the equivalence tests).

func leBytes[S Set[S]](s S) []byte {
	b := s.bits().Bytes()
	return b[:width[S]()/8]
}

func fromLE[S Set[S]](p []byte) S {
	var b [16]byte
	copy(b[:], p)
	return wrap[S](u128.FromBytes(b))
}

// Convert reshapes a set to another width. Widening always succeeds
// and zero-extends; narrowing succeeds only when every bit at
// positions >= the target width is zero, and preserves the low bits
// exactly. A lossy narrowing fails with a ConvError.
func Convert[T Set[T], S Set[S]](s S) (T, error) {
	var zt T
	sw, tw := width[S](), width[T]()
	u := s.bits()
	if tw < sw && !u.Shr(uint(tw)).IsZero() {
		return zt, NewConvError(SetTarget(sw), SetTarget(tw))
	}
	return wrap[T](u), nil
}

// Expand widens a set, preserving its numeric value by zero-extension.
// It fails with a ConvError when T is narrower than S. Expand is the
// bit-by-bit reference algorithm; ExpandOptimized must agree with it
// for all inputs.
func Expand[T Set[T], S Set[S]](s S) (T, error) {
	var zt T
	sw, tw := width[S](), width[T]()
	if tw < sw {
		return zt, NewConvError(SetTarget(sw), SetTarget(tw))
	}
	su := s.bits()
	var u u128.Uint128
	for i := range sw {
		if su.Bit(uint(i)) {
			u = u.SetBit(uint(i))
		}
	}
	return wrap[T](u), nil
}

// ExpandOptimized widens a set by repeatedly doubling its byte
// encoding, splicing a zeroed upper half onto it until the target
// width is reached.
func ExpandOptimized[T Set[T], S Set[S]](s S) (T, error) {
	var zt T
	sw, tw := width[S](), width[T]()
	if tw < sw {
		return zt, NewConvError(SetTarget(sw), SetTarget(tw))
	}
	buf := leBytes(s)
	for len(buf)*8 < tw {
		buf = append(buf, make([]byte, len(buf))...)
	}
	return fromLE[T](buf), nil
}

// Combine concatenates two sets of equal width into one of double
// width: low occupies bits [0, W), high occupies bits [W, 2W). It
// fails with a ConvError unless the width of W is exactly twice the
// width of H.
func Combine[W Set[W], H Set[H]](low, high H) (W, error) {
	var zw W
	hw, ww := width[H](), width[W]()
	if ww != 2*hw {
		return zw, NewConvError(SetTarget(hw), SetTarget(ww))
	}
	u := high.bits().Shl(uint(hw)).Or(low.bits())
	return wrap[W](u), nil
}

// CombineOptimized is the byte-splice fast path of Combine: the byte
// encodings of low and high are concatenated directly.
func CombineOptimized[W Set[W], H Set[H]](low, high H) (W, error) {
	var zw W
	hw, ww := width[H](), width[W]()
	if ww != 2*hw {
		return zw, NewConvError(SetTarget(hw), SetTarget(ww))
	}
	buf := append(leBytes(low), leBytes(high)...)
	return fromLE[W](buf), nil
}

// Split is the total inverse of Combine: it returns the low and high
// halves of a double-width set. For every representable w,
// Combine(Split(w)) == w and Split(Combine(a, b)) == (a, b).
func Split[H Set[H], W Set[W]](w W) (H, H, error) {
	var zh H
	hw, ww := width[H](), width[W]()
	if ww != 2*hw {
		return zh, zh, NewConvError(SetTarget(ww), SetTarget(hw))
	}
	u := w.bits()
	return wrap[H](u), wrap[H](u.Shr(uint(hw))), nil
}

// SplitOptimized is the byte-slice fast path of Split: the byte
// encoding of w is cut in half.
func SplitOptimized[H Set[H], W Set[W]](w W) (H, H, error) {
	var zh H
	hw, ww := width[H](), width[W]()
	if ww != 2*hw {
		return zh, zh, NewConvError(SetTarget(ww), SetTarget(hw))
	}
	buf := leBytes(w)
	return fromLE[H](buf[:hw/8]), fromLE[H](buf[hw/8:]), nil
}
