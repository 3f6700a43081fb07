package pipelines

import (
	"event-insights/internal/shared/metrics"
)

var (
	// metricWindowsProcessedTotal counts fully aggregated and emitted
	// time windows.
	metricWindowsProcessedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "windows_processed_total",
		},
	)
)
