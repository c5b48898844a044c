package bitarray

import (
	"fmt"
	"io"
	"strings"
)

// groupSize is the number of bits between separators in DebugString.
const groupSize = 8

// String renders the bits from index 0 upwards as '0' and '1' characters.
//
//	b := bitarray.New(16)
//	b.Set(3)
//	b.String() // "0001000000000000"
func (b *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(b.bitCount)
	b.render(&sb, false)

	return sb.String()
}

// DebugString renders the bits like String, with a space after every
// eighth bit.
//
//	"00010001 01000001"
func (b *BitArray) DebugString() string {
	var sb strings.Builder
	sb.Grow(b.bitCount + (b.bitCount-1)/groupSize)
	b.render(&sb, true)

	return sb.String()
}

// Format implements fmt.Formatter. The %v and %s verbs print String;
// %+v prints DebugString.
func (b *BitArray) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			_, _ = io.WriteString(f, b.DebugString())
			return
		}
		_, _ = io.WriteString(f, b.String())
	case 's':
		_, _ = io.WriteString(f, b.String())
	default:
		fmt.Fprintf(f, "%%!%c(*bitarray.BitArray=%s)", verb, b.String())
	}
}

func (b *BitArray) render(sb *strings.Builder, grouped bool) {
	for i := range b.bitCount {
		if grouped && i > 0 && i%groupSize == 0 {
			sb.WriteByte(' ')
		}

		if b.atoms[i/AtomBits]&(Atom(1)<<(i%AtomBits)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
}
