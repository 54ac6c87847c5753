package bitset

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bitset/internal/u128"
)

// ToBitmap copies the set positions into a 32-bit roaring bitmap, for
// interop with code that works on arbitrary-size compressed bitmaps.
func ToBitmap[S Set[S]](s S) *roaring.Bitmap {
	rb := roaring.New()
	u := s.bits()
	for i := range width[S]() {
		if u.Bit(uint(i)) {
			rb.Add(uint32(i))
		}
	}
	return rb
}

// FromBitmap builds a fixed-width set from a roaring bitmap. It fails
// with a ConvError when the bitmap holds a position at or beyond the
// target width; the source bitmap is not modified.
func FromBitmap[S Set[S]](rb *roaring.Bitmap) (S, error) {
	var zs S
	w := width[S]()
	if !rb.IsEmpty() && int(rb.Maximum()) >= w {
		return zs, NewConvError(RawTarget(int(rb.Maximum())), SetTarget(w))
	}
	var u u128.Uint128
	it := rb.Iterator()
	for it.HasNext() {
		u = u.SetBit(uint(it.Next()))
	}
	return wrap[S](u), nil
}
