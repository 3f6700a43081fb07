package aggregators

import (
	"strconv"

	"event-insights/internal/models"
	"event-insights/internal/products"
	"event-insights/internal/streams"
)

// ContentBucketer accumulates content-interaction events of one window into
// label-keyed buckets. The cursor is shared across windows: events beyond
// the window end stay un-consumed and open the next window's accumulation.
//
//go:generate mockgen -source=content_bucketer.go -destination=./mocks/content_bucketer_mock.go -package=mocks
type ContentBucketer interface {
	Accumulate(cursor *streams.Cursor[models.ContentEvent], window models.TimeWindow) ([]*models.Bucket, error)
}

type contentBucketer struct {
	resolver *products.Resolver
	digits   int
}

func NewContentBucketer(resolver *products.Resolver, articleCodeDigits int) ContentBucketer {
	return &contentBucketer{resolver: resolver, digits: articleCodeDigits}
}

func (b *contentBucketer) Accumulate(cursor *streams.Cursor[models.ContentEvent], window models.TimeWindow) ([]*models.Bucket, error) {
	var buckets []*models.Bucket

	for {
		event, ok, err := cursor.Peek()
		if err != nil {
			return nil, errInternalCursorFailed(models.CategoryContent, err)
		}
		if !ok {
			break
		}
		if event.Time > window.End {
			// First event of a later window; leave it on the cursor.
			break
		}
		if _, _, err := cursor.Next(); err != nil {
			return nil, errInternalCursorFailed(models.CategoryContent, err)
		}
		if event.Time < window.Start {
			continue
		}

		sku := event.Data.Widget.SKU
		if sku == "" {
			metricEventsSkippedTotal.WithLabelValues(string(models.CategoryContent)).Inc()
			continue
		}

		entry := models.NewBucket(window.End)
		entry.Fields[models.FieldCount] = 1
		entry.Labels[models.LabelType] = event.Type
		entry.Labels[models.LabelDeviceType] = deviceTypeOf(event.Meta)
		entry.Labels[models.LabelBereich] = b.resolver.Bereich(sku)
		entry.Labels[models.LabelArtikelcode] = b.resolver.Artikelcode(sku, b.digits)
		entry.Labels[models.LabelArticleCodeDigits] = strconv.Itoa(b.digits)

		if event.Type == models.TypeLoadSet {
			entry.Labels[models.LabelIsFound] = strconv.FormatBool(event.Data.Content.IsFound)
		}

		buckets = mergeBucket(buckets, entry, models.ComparableLabels, false, models.CategoryContent)
	}

	return buckets, nil
}
