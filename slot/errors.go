package slot

import "errors"

var (
	// ErrInvalidCapacity is returned when the capacity is not in [1, MaxUint32].
	ErrInvalidCapacity = errors.New("slot: invalid capacity")

	// ErrExhausted is returned by Acquire when every slot is in use.
	ErrExhausted = errors.New("slot: no free slots")

	// ErrOutOfRange is returned for a slot outside [0, Capacity).
	ErrOutOfRange = errors.New("slot: out of range")

	// ErrInUse is returned by AcquireSlot when the slot is already taken.
	ErrInUse = errors.New("slot: already in use")

	// ErrNotAcquired is returned by Release for a free slot.
	ErrNotAcquired = errors.New("slot: not acquired")
)
