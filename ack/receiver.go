package ack

import (
	"fmt"

	"github.com/hupe1980/bitarray"
)

// Receiver records which chunks of a transfer have arrived.
//
// A Receiver is not safe for concurrent use.
type Receiver struct {
	received *bitarray.BitArray
	logger   *bitarray.Logger
	metrics  bitarray.MetricsCollector
}

// NewReceiver creates a Receiver for a transfer of chunkCount chunks.
func NewReceiver(chunkCount int, opts ...bitarray.Option) (*Receiver, error) {
	if chunkCount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkCount, chunkCount)
	}

	o := bitarray.ApplyOptions(opts...)

	return &Receiver{
		received: bitarray.New(chunkCount),
		logger:   o.Logger.WithComponent("ack.receiver").WithCapacity(chunkCount),
		metrics:  o.MetricsCollector,
	}, nil
}

// Receive marks chunk index as arrived. It returns true if the chunk had
// not been received before.
func (r *Receiver) Receive(index int) (bool, error) {
	if index < 0 || index >= r.received.BitCount() {
		err := fmt.Errorf("%w: %d (chunk count %d)", ErrChunkOutOfRange, index, r.received.BitCount())
		r.logger.LogReceive(index, false, err)
		r.metrics.RecordReceive(false, err)
		return false, err
	}

	duplicate := r.received.Get(index)
	r.received.Set(index)

	r.logger.LogReceive(index, duplicate, nil)
	r.metrics.RecordReceive(duplicate, nil)

	if !duplicate && r.received.AllSet() {
		r.logger.LogTransferComplete(r.received.BitCount())
	}

	return !duplicate, nil
}

// Ack returns the acknowledgment describing the chunks received so far.
func (r *Receiver) Ack() Ack {
	waitingFor, ok := r.received.FirstUnsetBit()
	if !ok {
		waitingFor = r.received.BitCount()
	}

	a := Ack{
		WaitingFor:  waitingFor,
		ReceiveMask: r.received.AtomFromIndex(waitingFor + 1),
	}

	r.metrics.RecordAck(!ok)

	return a
}

// Complete reports whether every chunk has arrived.
func (r *Receiver) Complete() bool {
	return r.received.AllSet()
}

// Has reports whether chunk index has arrived.
// Indexes outside the transfer have never arrived.
func (r *Receiver) Has(index int) bool {
	if index < 0 || index >= r.received.BitCount() {
		return false
	}
	return r.received.Get(index)
}

// Received returns the number of distinct chunks received.
func (r *Receiver) Received() int {
	return r.received.CountSetBits()
}

// ChunkCount returns the number of chunks in the transfer.
func (r *Receiver) ChunkCount() int {
	return r.received.BitCount()
}

// Reset forgets every received chunk.
func (r *Receiver) Reset() {
	r.received.Reset()
}

func (r *Receiver) String() string {
	return r.received.DebugString()
}
