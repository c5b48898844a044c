package bitarray

import (
	"fmt"
	"math"
	"math/bits"
)

// Atom is the unit of backing storage.
type Atom = uint32

// AtomBits is the number of bits packed into one Atom.
const AtomBits = 32

const allOnes = math.MaxUint32

// BitArray is a fixed-capacity set of bits addressed by index.
//
// The number of set bits is tracked on every mutation, so CountSetBits and
// AllSet are O(1). Bits beyond BitCount in the last atom are always zero.
//
// A BitArray is not safe for concurrent use.
type BitArray struct {
	atoms    []Atom
	bitCount int
	setCount int
}

// New creates a BitArray holding bitCount bits, all unset.
// It panics if bitCount is not positive.
func New(bitCount int) *BitArray {
	if bitCount <= 0 {
		panic(fmt.Errorf("%w: got %d", ErrZeroBitCount, bitCount))
	}

	return &BitArray{
		atoms:    make([]Atom, (bitCount+AtomBits-1)/AtomBits),
		bitCount: bitCount,
	}
}

// Clone returns a deep copy of b.
func (b *BitArray) Clone() *BitArray {
	atoms := make([]Atom, len(b.atoms))
	copy(atoms, b.atoms)

	return &BitArray{
		atoms:    atoms,
		bitCount: b.bitCount,
		setCount: b.setCount,
	}
}

// Reset clears all bits.
func (b *BitArray) Reset() {
	clear(b.atoms)
	b.setCount = 0
}

// AllSet reports whether every bit is set.
func (b *BitArray) AllSet() bool {
	return b.setCount == b.bitCount
}

// FirstUnsetBit returns the index of the lowest unset bit.
// ok is false if all bits are set.
func (b *BitArray) FirstUnsetBit() (index int, ok bool) {
	if b.AllSet() {
		return 0, false
	}

	for i, atom := range b.atoms {
		if atom != allOnes {
			index = i*AtomBits + bits.TrailingZeros32(^atom)
			// Padding bits read as unset; never report them.
			return index, index < b.bitCount
		}
	}

	return 0, false
}

// FirstSetBit returns the index of the lowest set bit.
// ok is false if no bit is set.
func (b *BitArray) FirstSetBit() (index int, ok bool) {
	if b.setCount == 0 {
		return 0, false
	}

	for i, atom := range b.atoms {
		if atom != 0 {
			return i*AtomBits + bits.TrailingZeros32(atom), true
		}
	}

	return 0, false
}

// CountSetBits returns the number of bits currently set.
func (b *BitArray) CountSetBits() int {
	return b.setCount
}

// BitCount returns the capacity in bits.
func (b *BitArray) BitCount() int {
	return b.bitCount
}

// Atoms returns the number of backing atoms.
func (b *BitArray) Atoms() int {
	return len(b.atoms)
}

// Set sets the bit at index. It panics if index is out of range.
func (b *BitArray) Set(index int) {
	b.checkIndex(index)

	atom, mask := locate(index)
	if b.atoms[atom]&mask == 0 {
		b.atoms[atom] |= mask
		b.setCount++
	}
}

// Unset clears the bit at index. It panics if index is out of range.
func (b *BitArray) Unset(index int) {
	b.checkIndex(index)

	atom, mask := locate(index)
	if b.atoms[atom]&mask != 0 {
		b.atoms[atom] &^= mask
		b.setCount--
	}
}

// SetBit sets the bit at index when value is true and clears it otherwise.
// It panics if index is out of range.
func (b *BitArray) SetBit(index int, value bool) {
	if value {
		b.Set(index)
	} else {
		b.Unset(index)
	}
}

// Get reports whether the bit at index is set.
// It panics if index is out of range.
func (b *BitArray) Get(index int) bool {
	b.checkIndex(index)

	atom, mask := locate(index)

	return b.atoms[atom]&mask != 0
}

// AtomFromIndex returns the AtomBits bits starting at from, packed so that
// bit i of the result holds Get(from+i). Positions outside [0, BitCount)
// read as zero, so any from is accepted.
func (b *BitArray) AtomFromIndex(from int) Atom {
	if from >= 0 && from%AtomBits == 0 {
		// Aligned window: the stored atom already has this layout.
		if i := from / AtomBits; i < len(b.atoms) {
			return b.atoms[i]
		}
		return 0
	}

	var result Atom

	for i := AtomBits - 1; i >= 0; i-- {
		result <<= 1

		index := from + i
		if index >= 0 && index < b.bitCount && b.Get(index) {
			result |= 1
		}
	}

	return result
}

func (b *BitArray) checkIndex(index int) {
	if index < 0 || index >= b.bitCount {
		panic(&IndexOutOfRangeError{Index: index, BitCount: b.bitCount})
	}
}

// locate returns the atom holding index and the mask selecting it.
func locate(index int) (int, Atom) {
	return index / AtomBits, Atom(1) << (index % AtomBits)
}
