// Package bitset provides fixed-width, typed, bounds-checked bit-sets
// for Go.
//
// Five widths are supported: Set8, Set16, Set32, Set64 and Set128.
// Each is a plain value wrapping exactly one unsigned integer of its
// width, a typed alternative to a raw integer bit-mask. Bit positions
// are addressed through Index, whose construction validates the range
// once so no positional operation can go out of bounds afterwards.
//
// # Quick Start
//
//	s := bitset.Set8(0b10101010)
//
//	i := bitset.MustIndex[bitset.Set8](1)
//	s.Bit(i)                 // true
//	s = s.WithBit(i, false)  // 0b10101000
//
//	a, b := bitset.Set8(0b11110000), bitset.Set8(0b11001100)
//	a.Union(b)               // 0b11111100
//	a.Intersection(b)        // 0b11000000
//	a.Difference(b)          // 0b00110000
//	a.SymmetricDifference(b) // 0b00111100
//	a.Complement()           // 0b00001111
//
// # Iteration
//
// Bits, Ones and Zeros return restartable range-over-func sequences:
//
//	for i := range s.Ones() {
//		fmt.Println(i.Value())
//	}
//
//	s = bitset.FromBools[bitset.Set8](true, false, true) // 0b00000101
//
// # Conversion
//
// Widening is lossless, narrowing is fallible, and two sets of equal
// width pack into one of double width (and back):
//
//	wide, _ := bitset.Expand[bitset.Set32](s)
//	narrow, err := bitset.Convert[bitset.Set8](wide) // err on nonzero high bits
//	both, _ := bitset.Combine[bitset.Set16](low, high)
//	low, high, _ := bitset.Split[bitset.Set8](both)
//
// Every fallible operation returns a *ConvError describing the source
// and destination shapes; there are no panics and no silent
// truncation, except the documented boolean-sequence truncation in
// FromBits.
//
// All types are immutable-by-default values with no heap allocation.
// Copies are independent: values may be used from multiple goroutines
// without synchronization, and in-place mutation (SetBit, BitMut,
// BitsMut) requires the same exclusive access as writing any other Go
// value.
package bitset
