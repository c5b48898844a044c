// Package bitarray provides a fixed-capacity, word-packed bit array.
//
// A BitArray stores BitCount bits in uint32 atoms and tracks how many of
// them are set, so occupancy queries never scan. Scans for the first set or
// unset bit walk whole atoms and skip uniform ones.
//
// # Quick Start
//
//	b := bitarray.New(100)
//	b.Set(4)
//	b.SetBit(9, true)
//
//	if free, ok := b.FirstUnsetBit(); ok {
//	    b.Set(free)
//	}
//
//	fmt.Println(b.CountSetBits(), b.AllSet())
//	fmt.Printf("%+v\n", b) // grouped by 8: "10001000 01000000 ..."
//
// # Contract
//
// Capacity is fixed at construction. Indexes are the caller's
// responsibility: New panics when the capacity is not positive, and
// Get, Set, Unset and SetBit panic for an index outside [0, BitCount). The
// panic value is an error matching ErrZeroBitCount or ErrIndexOutOfRange.
// AtomFromIndex never panics; positions outside the array read as zero.
//
// A BitArray is not safe for concurrent use. See package slot for a
// synchronized allocator built on top of it.
//
// # Components
//
//   - slot: lowest-first slot allocator with roaring bitmap snapshots
//   - ack: chunk receive tracking and acknowledgment masks
//
// Both accept the shared Option values (WithLogger, WithMetricsCollector).
package bitarray
