package sinks

import (
	"event-insights/internal/shared/metrics"
)

var (
	// metricPointsWrittenTotal counts points successfully flushed to the
	// time-series store.
	metricPointsWrittenTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSink,
			Name:      "points_written_total",
		},
	)

	// metricFlushFailuresTotal counts dropped batches. Every increment is
	// data loss: flush failures are not retried.
	metricFlushFailuresTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSink,
			Name:      "flush_failures_total",
		},
	)
)
