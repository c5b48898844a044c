package bitarray

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics
// from the components built on BitArray.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAcquire is called after each slot acquisition.
	// duration is the time taken, err is nil if successful.
	RecordAcquire(duration time.Duration, err error)

	// RecordRelease is called after each slot release.
	RecordRelease(duration time.Duration, err error)

	// RecordReceive is called after each chunk arrival.
	// duplicate is true when the chunk had already been received.
	RecordReceive(duplicate bool, err error)

	// RecordAck is called whenever an acknowledgment is produced or applied.
	RecordAck(complete bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAcquire(time.Duration, error) {}
func (NoopMetricsCollector) RecordRelease(time.Duration, error) {}
func (NoopMetricsCollector) RecordReceive(bool, error)          {}
func (NoopMetricsCollector) RecordAck(bool)                     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AcquireCount      atomic.Int64
	AcquireErrors     atomic.Int64
	AcquireTotalNanos atomic.Int64
	ReleaseCount      atomic.Int64
	ReleaseErrors     atomic.Int64
	ReceiveCount      atomic.Int64
	ReceiveDuplicates atomic.Int64
	ReceiveErrors     atomic.Int64
	AckCount          atomic.Int64
	AckComplete       atomic.Int64
}

// RecordAcquire implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAcquire(duration time.Duration, err error) {
	b.AcquireCount.Add(1)
	b.AcquireTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AcquireErrors.Add(1)
	}
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(_ time.Duration, err error) {
	b.ReleaseCount.Add(1)
	if err != nil {
		b.ReleaseErrors.Add(1)
	}
}

// RecordReceive implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReceive(duplicate bool, err error) {
	b.ReceiveCount.Add(1)
	if duplicate {
		b.ReceiveDuplicates.Add(1)
	}
	if err != nil {
		b.ReceiveErrors.Add(1)
	}
}

// RecordAck implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAck(complete bool) {
	b.AckCount.Add(1)
	if complete {
		b.AckComplete.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AcquireCount:      b.AcquireCount.Load(),
		AcquireErrors:     b.AcquireErrors.Load(),
		AcquireAvgNanos:   b.getAvgAcquireNanos(),
		ReleaseCount:      b.ReleaseCount.Load(),
		ReleaseErrors:     b.ReleaseErrors.Load(),
		ReceiveCount:      b.ReceiveCount.Load(),
		ReceiveDuplicates: b.ReceiveDuplicates.Load(),
		ReceiveErrors:     b.ReceiveErrors.Load(),
		AckCount:          b.AckCount.Load(),
		AckComplete:       b.AckComplete.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgAcquireNanos() int64 {
	count := b.AcquireCount.Load()
	if count == 0 {
		return 0
	}
	return b.AcquireTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AcquireCount      int64
	AcquireErrors     int64
	AcquireAvgNanos   int64
	ReleaseCount      int64
	ReleaseErrors     int64
	ReceiveCount      int64
	ReceiveDuplicates int64
	ReceiveErrors     int64
	AckCount          int64
	AckComplete       int64
}
