package ack

import (
	"fmt"
	"math/bits"

	"github.com/hupe1980/bitarray"
)

// Sender tracks which chunks the peer has acknowledged.
//
// A Sender is not safe for concurrent use.
type Sender struct {
	acked   *bitarray.BitArray
	logger  *bitarray.Logger
	metrics bitarray.MetricsCollector
}

// NewSender creates a Sender for a transfer of chunkCount chunks.
func NewSender(chunkCount int, opts ...bitarray.Option) (*Sender, error) {
	if chunkCount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkCount, chunkCount)
	}

	o := bitarray.ApplyOptions(opts...)

	return &Sender{
		acked:   bitarray.New(chunkCount),
		logger:  o.Logger.WithComponent("ack.sender").WithCapacity(chunkCount),
		metrics: o.MetricsCollector,
	}, nil
}

// ApplyAck folds a into the acknowledged set. Acks only ever add
// acknowledgments; stale acks are harmless. An Ack that names chunks beyond
// the transfer is rejected as a whole.
func (s *Sender) ApplyAck(a Ack) error {
	if err := s.validate(a); err != nil {
		s.logger.LogAckApplied(a.WaitingFor, s.acked.CountSetBits(), err)
		return err
	}

	start, ok := s.acked.FirstUnsetBit()
	if ok {
		for i := start; i < a.WaitingFor; i++ {
			s.acked.Set(i)
		}
	}

	for mask, base := a.ReceiveMask, a.WaitingFor+1; mask != 0; mask >>= 1 {
		if mask&1 != 0 {
			s.acked.Set(base)
		}
		base++
	}

	done := s.acked.AllSet()

	s.logger.LogAckApplied(a.WaitingFor, s.acked.CountSetBits(), nil)
	s.metrics.RecordAck(done)

	return nil
}

func (s *Sender) validate(a Ack) error {
	n := s.acked.BitCount()

	if a.WaitingFor < 0 || a.WaitingFor > n {
		return fmt.Errorf("%w: waiting for chunk %d of %d", ErrInvalidAck, a.WaitingFor, n)
	}

	// Highest chunk named by the mask must exist.
	if a.ReceiveMask != 0 {
		highest := a.WaitingFor + MaskBits - bits.LeadingZeros32(a.ReceiveMask)
		if highest >= n {
			return fmt.Errorf("%w: mask names chunk %d of %d", ErrInvalidAck, highest, n)
		}
	}

	return nil
}

// Pending returns the lowest unacknowledged chunks in ascending order, at
// most limit of them. A limit <= 0 returns all of them.
func (s *Sender) Pending(limit int) []int {
	start, ok := s.acked.FirstUnsetBit()
	if !ok {
		return nil
	}

	n := s.acked.BitCount()
	if limit <= 0 {
		limit = n - s.acked.CountSetBits()
	}

	pending := make([]int, 0, min(limit, n-start))

	for i := start; i < n && len(pending) < limit; i++ {
		if !s.acked.Get(i) {
			pending = append(pending, i)
		}
	}

	return pending
}

// Acked reports whether chunk index has been acknowledged.
// Indexes outside the transfer are never acknowledged.
func (s *Sender) Acked(index int) bool {
	if index < 0 || index >= s.acked.BitCount() {
		return false
	}
	return s.acked.Get(index)
}

// Done reports whether every chunk has been acknowledged.
func (s *Sender) Done() bool {
	return s.acked.AllSet()
}

// ChunkCount returns the number of chunks in the transfer.
func (s *Sender) ChunkCount() int {
	return s.acked.BitCount()
}

func (s *Sender) String() string {
	return s.acked.DebugString()
}
