package aggregators

import (
	"event-insights/internal/shared/metrics"
)

var (
	// metricBucketsCreatedTotal counts buckets opened for a label
	// combination not yet seen in the current window. Buckets are
	// discarded once their window is emitted, so this grows with the
	// number of distinct label combinations per window, not with the
	// event count.
	metricBucketsCreatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "buckets_created_total",
		},
		[]string{metrics.FieldCategory},
	)

	// metricEventsSkippedTotal counts in-window events dropped for
	// structural reasons: empty purchases, missing trigger sku, referrals
	// without a parent product.
	metricEventsSkippedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "events_skipped_total",
		},
		[]string{metrics.FieldCategory},
	)
)
