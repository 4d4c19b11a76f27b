package catgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordCast is called after each cast to categorical.
	// rows is the column length, duration the total time taken,
	// err is nil if successful.
	RecordCast(rows int, duration time.Duration, err error)

	// RecordDecode is called after each decode back to strings.
	RecordDecode(rows int, duration time.Duration, err error)

	// RecordConcat is called after each vertical concatenation.
	// rows is the output column length.
	RecordConcat(rows int, duration time.Duration, err error)

	// RecordJoin is called after each key join.
	// rows is the number of output rows.
	RecordJoin(rows int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCast(int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordDecode(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordConcat(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordJoin(int, time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CastCount        atomic.Int64
	CastErrors       atomic.Int64
	CastTotalNanos   atomic.Int64
	DecodeCount      atomic.Int64
	DecodeErrors     atomic.Int64
	DecodeTotalNanos atomic.Int64
	ConcatCount      atomic.Int64
	ConcatErrors     atomic.Int64
	JoinCount        atomic.Int64
	JoinErrors       atomic.Int64
}

// RecordCast implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCast(rows int, duration time.Duration, err error) {
	b.CastCount.Add(1)
	b.CastTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CastErrors.Add(1)
	}
}

// RecordDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecode(rows int, duration time.Duration, err error) {
	b.DecodeCount.Add(1)
	b.DecodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DecodeErrors.Add(1)
	}
}

// RecordConcat implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConcat(rows int, duration time.Duration, err error) {
	b.ConcatCount.Add(1)
	if err != nil {
		b.ConcatErrors.Add(1)
	}
}

// RecordJoin implements MetricsCollector.
func (b *BasicMetricsCollector) RecordJoin(rows int, duration time.Duration, err error) {
	b.JoinCount.Add(1)
	if err != nil {
		b.JoinErrors.Add(1)
	}
}
