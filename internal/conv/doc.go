// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent silent truncation
// when converting between Go's int (platform-dependent) and the
// fixed-width unsigned types backing the set widths.
//
// Use cases:
//   - Validating untrusted values (decoded JSON/binary payloads, raw
//     bit positions) before they become typed indices or sets
//   - Narrowing between adjacent unsigned sizes (64 -> 32 -> 16 -> 8)
//     with an explicit failure instead of a wrapped value
//
// For conversions that are provably safe by domain constraints (e.g.,
// loop indices over a known width), use direct type casts instead.
package conv
