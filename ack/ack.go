package ack

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitarray"
)

var (
	// ErrInvalidChunkCount is returned when a transfer has no chunks.
	ErrInvalidChunkCount = errors.New("ack: chunk count must be positive")

	// ErrChunkOutOfRange is returned for a chunk index outside [0, ChunkCount).
	ErrChunkOutOfRange = errors.New("ack: chunk out of range")

	// ErrInvalidAck is returned by ApplyAck for an Ack that does not fit the transfer.
	ErrInvalidAck = errors.New("ack: invalid ack")
)

// MaskBits is the number of chunks past WaitingFor covered by an Ack.
const MaskBits = bitarray.AtomBits

// Ack summarizes the receiver's progress.
type Ack struct {
	// WaitingFor is the lowest chunk not yet received. It equals the chunk
	// count once the transfer is complete.
	WaitingFor int

	// ReceiveMask has bit i set when chunk WaitingFor+1+i was received.
	ReceiveMask uint32
}

// Acknowledges reports whether the Ack confirms chunk index.
func (a Ack) Acknowledges(index int) bool {
	if index < a.WaitingFor {
		return index >= 0
	}

	offset := index - a.WaitingFor - 1
	if offset < 0 || offset >= MaskBits {
		return false
	}

	return a.ReceiveMask&(1<<offset) != 0
}

func (a Ack) String() string {
	return fmt.Sprintf("waiting_for=%d mask=%032b", a.WaitingFor, a.ReceiveMask)
}
