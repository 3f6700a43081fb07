package aggregators

import (
	"github.com/mileusna/useragent"

	"event-insights/internal/models"
)

// mergeBucket folds entry into the first existing bucket that agrees on the
// given labels (and, when matchTime is set, on the bucket time), summing all
// measures. Otherwise entry is appended as a new bucket.
func mergeBucket(buckets []*models.Bucket, entry *models.Bucket, labels []string, matchTime bool, category models.EventCategory) []*models.Bucket {
	for _, bucket := range buckets {
		if !bucket.MatchesLabels(entry, labels) {
			continue
		}
		if matchTime && bucket.Time != entry.Time {
			continue
		}
		bucket.AddFields(entry)
		return buckets
	}

	metricBucketsCreatedTotal.WithLabelValues(string(category)).Inc()
	return append(buckets, entry)
}

// deviceTypeOf returns the reported device type, falling back to a
// classification of the user-agent string when the exporter left the
// field empty.
func deviceTypeOf(meta models.Meta) string {
	if meta.DeviceType != "" {
		return meta.DeviceType
	}
	if meta.UserAgent == "" {
		return ""
	}

	ua := useragent.Parse(meta.UserAgent)
	switch {
	case ua.Bot:
		return "bot"
	case ua.Tablet:
		return "tablet"
	case ua.Mobile:
		return "mobile"
	case ua.Desktop:
		return "desktop"
	default:
		return ""
	}
}
