// Package slot provides a fixed-size slot allocator backed by a BitArray.
//
// Slots are integers in [0, Capacity). Acquire always hands out the lowest
// free slot, so a long-lived allocator keeps its in-use slots packed toward
// zero.
//
//	alloc, _ := slot.New(256)
//	s, err := alloc.Acquire()
//	if errors.Is(err, slot.ErrExhausted) {
//	    // back off
//	}
//	defer alloc.Release(s)
//
// An Allocator is safe for concurrent use.
package slot
