package bitarray

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		o := ApplyOptions()
		assert.NotNil(t, o.Logger)
		assert.IsType(t, NoopMetricsCollector{}, o.MetricsCollector)
	})

	t.Run("nil restores defaults", func(t *testing.T) {
		o := ApplyOptions(WithLogger(nil), WithMetricsCollector(nil))
		assert.NotNil(t, o.Logger)
		assert.IsType(t, NoopMetricsCollector{}, o.MetricsCollector)
	})

	t.Run("overrides", func(t *testing.T) {
		l := NewTextLogger(slog.LevelDebug)
		m := &BasicMetricsCollector{}

		o := ApplyOptions(WithLogger(l), WithMetricsCollector(m))
		assert.Same(t, l, o.Logger)
		assert.Same(t, m, o.MetricsCollector)
	})
}

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}

	m.RecordAcquire(10*time.Nanosecond, nil)
	m.RecordAcquire(30*time.Nanosecond, errors.New("boom"))
	m.RecordRelease(time.Nanosecond, nil)
	m.RecordReceive(false, nil)
	m.RecordReceive(true, nil)
	m.RecordReceive(false, errors.New("boom"))
	m.RecordAck(false)
	m.RecordAck(true)

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.AcquireCount)
	assert.Equal(t, int64(1), stats.AcquireErrors)
	assert.Equal(t, int64(20), stats.AcquireAvgNanos)
	assert.Equal(t, int64(1), stats.ReleaseCount)
	assert.Equal(t, int64(0), stats.ReleaseErrors)
	assert.Equal(t, int64(3), stats.ReceiveCount)
	assert.Equal(t, int64(1), stats.ReceiveDuplicates)
	assert.Equal(t, int64(1), stats.ReceiveErrors)
	assert.Equal(t, int64(2), stats.AckCount)
	assert.Equal(t, int64(1), stats.AckComplete)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).
		WithComponent("test").
		WithCapacity(8)

	l.LogAcquire(3, nil)
	l.LogRelease(3, errors.New("boom"))
	l.LogAckApplied(2, 5, nil)

	out := buf.String()
	assert.Contains(t, out, "slot acquired")
	assert.Contains(t, out, "release failed")
	assert.Contains(t, out, "ack applied")
	assert.Contains(t, out, "component=test")
	assert.Contains(t, out, "capacity=8")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
