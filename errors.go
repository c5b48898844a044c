package bitarray

import (
	"errors"
	"fmt"
)

// BitArray reports contract violations by panicking with one of these values.
// Recovered panics can be matched with errors.Is.
var (
	// ErrZeroBitCount is raised by New when the requested capacity is not positive.
	ErrZeroBitCount = errors.New("bitarray: bit count must be greater than zero")

	// ErrIndexOutOfRange is raised when an index lies outside [0, BitCount).
	ErrIndexOutOfRange = errors.New("bitarray: index out of range")
)

// IndexOutOfRangeError describes an access outside [0, BitCount).
//
// It unwraps to ErrIndexOutOfRange.
type IndexOutOfRangeError struct {
	Index    int
	BitCount int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("bitarray: index %d out of range [0, %d)", e.Index, e.BitCount)
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrIndexOutOfRange }
