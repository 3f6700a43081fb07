package streams

import (
	"event-insights/internal/shared/metrics"
)

var (
	// metricEventsReadTotal counts events decoded from the input files,
	// duplicates included.
	metricEventsReadTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "events_read_total",
		},
		[]string{metrics.FieldCategory},
	)

	// metricEventsDeduplicatedTotal counts events dropped by the
	// high-water-mark overlap suppression. A high rate relative to
	// events_read_total means heavily overlapping input files, or
	// out-of-order data being silently discarded.
	metricEventsDeduplicatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "events_deduplicated_total",
		},
		[]string{metrics.FieldCategory},
	)
)
