package slot

import (
	"fmt"
	"math/bits"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/bitarray"
	"github.com/hupe1980/bitarray/internal/conv"
)

// Allocator hands out integer slots from a fixed pool.
type Allocator struct {
	mu      sync.Mutex
	slots   *bitarray.BitArray
	logger  *bitarray.Logger
	metrics bitarray.MetricsCollector
}

// New creates an Allocator with capacity free slots.
func New(capacity int, opts ...bitarray.Option) (*Allocator, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	if _, err := conv.IntToUint32(capacity); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCapacity, err)
	}

	o := bitarray.ApplyOptions(opts...)

	return &Allocator{
		slots:   bitarray.New(capacity),
		logger:  o.Logger.WithComponent("slot").WithCapacity(capacity),
		metrics: o.MetricsCollector,
	}, nil
}

// Acquire claims the lowest free slot.
// It returns ErrExhausted if every slot is in use.
func (a *Allocator) Acquire() (int, error) {
	start := time.Now()

	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.slots.FirstUnsetBit()
	if !ok {
		a.logger.LogExhausted(a.slots.CountSetBits())
		a.metrics.RecordAcquire(time.Since(start), ErrExhausted)
		return 0, ErrExhausted
	}

	a.slots.Set(s)

	a.logger.LogAcquire(s, nil)
	a.metrics.RecordAcquire(time.Since(start), nil)

	return s, nil
}

// AcquireSlot claims a specific slot.
func (a *Allocator) AcquireSlot(s int) error {
	start := time.Now()

	a.mu.Lock()
	defer a.mu.Unlock()

	err := a.acquireLocked(s)

	a.logger.LogAcquire(s, err)
	a.metrics.RecordAcquire(time.Since(start), err)

	return err
}

func (a *Allocator) acquireLocked(s int) error {
	if s < 0 || s >= a.slots.BitCount() {
		return fmt.Errorf("%w: %d", ErrOutOfRange, s)
	}
	if a.slots.Get(s) {
		return fmt.Errorf("%w: %d", ErrInUse, s)
	}

	a.slots.Set(s)

	return nil
}

// Release returns a slot to the pool.
func (a *Allocator) Release(s int) error {
	start := time.Now()

	a.mu.Lock()
	defer a.mu.Unlock()

	err := a.releaseLocked(s)

	a.logger.LogRelease(s, err)
	a.metrics.RecordRelease(time.Since(start), err)

	return err
}

func (a *Allocator) releaseLocked(s int) error {
	if s < 0 || s >= a.slots.BitCount() {
		return fmt.Errorf("%w: %d", ErrOutOfRange, s)
	}
	if !a.slots.Get(s) {
		return fmt.Errorf("%w: %d", ErrNotAcquired, s)
	}

	a.slots.Unset(s)

	return nil
}

// InUse reports whether slot s is currently acquired.
// Slots outside [0, Capacity) are never in use.
func (a *Allocator) InUse(s int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if s < 0 || s >= a.slots.BitCount() {
		return false
	}

	return a.slots.Get(s)
}

// Capacity returns the total number of slots.
func (a *Allocator) Capacity() int {
	// Immutable after New.
	return a.slots.BitCount()
}

// InUseCount returns the number of acquired slots.
func (a *Allocator) InUseCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.slots.CountSetBits()
}

// Available returns the number of free slots.
func (a *Allocator) Available() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.slots.BitCount() - a.slots.CountSetBits()
}

// Full reports whether every slot is in use.
func (a *Allocator) Full() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.slots.AllSet()
}

// Reset releases every slot.
func (a *Allocator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.slots.Reset()
	a.logger.Debug("allocator reset")
}

// Snapshot returns the acquired slots as a roaring bitmap.
func (a *Allocator) Snapshot() *roaring.Bitmap {
	a.mu.Lock()
	defer a.mu.Unlock()

	rb := roaring.New()

	for i := range a.slots.Atoms() {
		base := i * bitarray.AtomBits
		for w := a.slots.AtomFromIndex(base); w != 0; w &= w - 1 {
			// Capacity was checked against MaxUint32 in New.
			rb.Add(uint32(base + bits.TrailingZeros32(w)))
		}
	}

	return rb
}

// Claim acquires every slot contained in rb, typically a bitmap previously
// returned by Snapshot. It fails without side effects if any slot is out
// of range or already in use.
func (a *Allocator) Claim(rb *roaring.Bitmap) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	claimed := make([]int, 0, rb.GetCardinality())

	it := rb.Iterator()
	for it.HasNext() {
		s, err := conv.Uint32ToInt(it.Next())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrOutOfRange, err)
		}
		if s >= a.slots.BitCount() {
			return fmt.Errorf("%w: %d", ErrOutOfRange, s)
		}
		if a.slots.Get(s) {
			return fmt.Errorf("%w: %d", ErrInUse, s)
		}
		claimed = append(claimed, s)
	}

	for _, s := range claimed {
		a.slots.Set(s)
	}

	a.logger.Debug("slots claimed", "count", len(claimed))

	return nil
}

// String renders the slot map, one character per slot, grouped by eight.
func (a *Allocator) String() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.slots.DebugString()
}
