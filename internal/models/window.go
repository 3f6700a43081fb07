package models

import (
	"fmt"
	"time"
)

// All timestamps are epoch milliseconds. Day boundaries are fixed at
// 00:00 UTC+1 (German standard time, no DST handling).
const (
	Day      int64 = 86400000
	Hour     int64 = 3600000
	TZOffset       = Hour
)

// TimeWindow is one aggregation window. The bucketers consume events with
// Start <= t <= End and leave the first event beyond End on the cursor.
type TimeWindow struct {
	Start int64
	End   int64
}

// AlignTimeframe snaps a raw (first, last) timeframe to day boundaries:
// the start forward to the next 00:00 UTC+1, the end backward to the
// previous one. Partial days at the edges are never aggregated.
func AlignTimeframe(first, last int64) (int64, int64) {
	start := first + Day - first%Day + TZOffset
	end := last - last%Day + TZOffset
	return start, end
}

// NormalizeToNextDay moves a timestamp to the following 00:00 UTC+1.
// Referral buckets are attributed to the day after the impression.
func NormalizeToNextDay(ts int64) int64 {
	return ts - ts%Day + Day + TZOffset
}

// TimeWindowLabel renders the configured window duration as a tag value,
// e.g. "7d", so runs at different granularities stay distinguishable.
func TimeWindowLabel(stepDays int) string {
	return fmt.Sprintf("%dd", stepDays)
}

// FormatTimestamp renders an epoch-millisecond timestamp as a local
// (UTC+1) date string for log output.
func FormatTimestamp(ts int64) string {
	return time.UnixMilli(ts + TZOffset).UTC().Format("2006-01-02 15:04:05")
}
