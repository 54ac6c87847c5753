package bitset

import "fmt"

// TargetKind enumerates the shapes that can appear on either side of a
// failed conversion.
type TargetKind uint8

const (
	// KindSet is a fixed-width bit-set of a given width.
	KindSet TargetKind = iota
	// KindIndex is a bit position bounded by a given width.
	KindIndex
	// KindEnum is an enumerated-variant space of a given size.
	KindEnum
	// KindRaw is a raw integer value.
	KindRaw
)

// ConvTarget describes the shape on one side of a failed conversion.
type ConvTarget struct {
	Kind TargetKind
	Size int
}

// SetTarget describes a bit-set of the given width.
func SetTarget(width int) ConvTarget {
	return ConvTarget{Kind: KindSet, Size: width}
}

// IndexTarget describes a bit position bounded by the given width.
func IndexTarget(width int) ConvTarget {
	return ConvTarget{Kind: KindIndex, Size: width}
}

// EnumTarget describes an enumerated-variant space of the given size.
func EnumTarget(variants int) ConvTarget {
	return ConvTarget{Kind: KindEnum, Size: variants}
}

// RawTarget describes a raw integer value.
func RawTarget(n int) ConvTarget {
	return ConvTarget{Kind: KindRaw, Size: n}
}

func (t ConvTarget) String() string {
	switch t.Kind {
	case KindSet:
		return fmt.Sprintf("Bitset (size %d)", t.Size)
	case KindIndex:
		return fmt.Sprintf("Index (max = %d)", t.Size-1)
	case KindEnum:
		return fmt.Sprintf("Enum (%d variants)", t.Size)
	default:
		return fmt.Sprintf("Raw (%d)", t.Size)
	}
}

// ConvError indicates a conversion that would lose information or
// address a bit position outside the target width.
//
// It is the single error type returned by every fallible operation in
// this package. It carries no recovery state: the caller can retry a
// different width, mask bits first, or give up.
type ConvError struct {
	From ConvTarget
	To   ConvTarget
}

// NewConvError constructs a ConvError from the two shapes involved.
func NewConvError(from, to ConvTarget) *ConvError {
	return &ConvError{From: from, To: to}
}

func (e *ConvError) Error() string {
	return fmt.Sprintf("failed to convert from %s to %s", e.From, e.To)
}
