package pixclust

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    segmentHistogram *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordSegment(alg pixclust.Algorithm, d time.Duration, err error) {
//	    p.segmentHistogram.WithLabelValues(alg.String()).Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordSegment is called after each clustering run.
	// duration is the total time taken, err is nil if successful.
	RecordSegment(alg Algorithm, duration time.Duration, err error)

	// RecordEvaluate is called after each quality evaluation.
	RecordEvaluate(duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSegment(Algorithm, time.Duration, error) {}
func (NoopMetricsCollector) RecordEvaluate(time.Duration)                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	KMeansCount        atomic.Int64
	DBSCANCount        atomic.Int64
	MeanShiftCount     atomic.Int64
	SegmentErrors      atomic.Int64
	SegmentTotalNanos  atomic.Int64
	EvaluateCount      atomic.Int64
	EvaluateTotalNanos atomic.Int64
}

// RecordSegment implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSegment(alg Algorithm, duration time.Duration, err error) {
	switch alg {
	case KMeans:
		b.KMeansCount.Add(1)
	case DBSCAN:
		b.DBSCANCount.Add(1)
	case MeanShift:
		b.MeanShiftCount.Add(1)
	}
	b.SegmentTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SegmentErrors.Add(1)
	}
}

// RecordEvaluate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEvaluate(duration time.Duration) {
	b.EvaluateCount.Add(1)
	b.EvaluateTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	segments := b.KMeansCount.Load() + b.DBSCANCount.Load() + b.MeanShiftCount.Load()
	evaluations := b.EvaluateCount.Load()
	return BasicMetricsStats{
		KMeansCount:      b.KMeansCount.Load(),
		DBSCANCount:      b.DBSCANCount.Load(),
		MeanShiftCount:   b.MeanShiftCount.Load(),
		SegmentCount:     segments,
		SegmentErrors:    b.SegmentErrors.Load(),
		SegmentAvgNanos:  avg(b.SegmentTotalNanos.Load(), segments),
		EvaluateCount:    evaluations,
		EvaluateAvgNanos: avg(b.EvaluateTotalNanos.Load(), evaluations),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	KMeansCount      int64
	DBSCANCount      int64
	MeanShiftCount   int64
	SegmentCount     int64
	SegmentErrors    int64
	SegmentAvgNanos  int64
	EvaluateCount    int64
	EvaluateAvgNanos int64
}
