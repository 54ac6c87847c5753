package bitset

import (
	"fmt"
)

// Textual rendering is always zero-padded to the width's natural digit
// count: Width digits in binary, ceil(Width/3) in octal, Width/4 in
// hex. With the '#' flag the 0b/0o/0x prefix is added on top, so a
// width-8 set renders as exactly 10 characters under %#b.

func digitsFor(w int, shift uint) int {
	bitsPerDigit := int(shift)
	return (w + bitsPerDigit - 1) / bitsPerDigit
}

func formatBase[S Set[S]](s S, shift uint, digits string) string {
	w := width[S]()
	n := digitsFor(w, shift)
	out := make([]byte, n)
	u := s.bits()
	mask := uint64(1)<<shift - 1
	for i := n - 1; i >= 0; i-- {
		out[i] = digits[u.Lo&mask]
		u = u.Shr(shift)
	}
	return string(out)
}

func formatSet[S Set[S]](f fmt.State, verb rune, s S) {
	var body, prefix string
	switch verb {
	case 'b':
		body, prefix = formatBase(s, 1, "01"), "0b"
	case 'o':
		body, prefix = formatBase(s, 3, "01234567"), "0o"
	case 'x':
		body, prefix = formatBase(s, 4, "0123456789abcdef"), "0x"
	case 'X':
		body, prefix = formatBase(s, 4, "0123456789ABCDEF"), "0X"
	case 's', 'v':
		if verb == 'v' && f.Flag('#') {
			fmt.Fprintf(f, "%T(0b%s)", s, formatBase(s, 1, "01"))
			return
		}
		fmt.Fprint(f, formatBase(s, 1, "01"))
		return
	default:
		fmt.Fprintf(f, "%%!%c(%T=%s)", verb, s, formatBase(s, 1, "01"))
		return
	}
	if f.Flag('#') {
		fmt.Fprint(f, prefix)
	}
	fmt.Fprint(f, body)
}

// String renders the set as its full-width binary digits without a
// prefix (bit Width-1 first, bit 0 last).
func (s Set8) String() string { return formatBase(s, 1, "01") }

// Format implements fmt.Formatter for %b, %o, %x, %X, %s and %v. The
// '#' flag adds the base prefix; digits are always zero-padded to the
// width's natural count.
func (s Set8) Format(f fmt.State, verb rune) { formatSet(f, verb, s) }

// String renders the set as its full-width binary digits.
func (s Set16) String() string { return formatBase(s, 1, "01") }

// Format implements fmt.Formatter; see Set8.Format.
func (s Set16) Format(f fmt.State, verb rune) { formatSet(f, verb, s) }

// String renders the set as its full-width binary digits.
func (s Set32) String() string { return formatBase(s, 1, "01") }

// Format implements fmt.Formatter; see Set8.Format.
func (s Set32) Format(f fmt.State, verb rune) { formatSet(f, verb, s) }

// String renders the set as its full-width binary digits.
func (s Set64) String() string { return formatBase(s, 1, "01") }

// Format implements fmt.Formatter; see Set8.Format.
func (s Set64) Format(f fmt.State, verb rune) { formatSet(f, verb, s) }

// String renders the set as its full-width binary digits.
func (s Set128) String() string { return formatBase(s, 1, "01") }

// Format implements fmt.Formatter; see Set8.Format.
func (s Set128) Format(f fmt.State, verb rune) { formatSet(f, verb, s) }
