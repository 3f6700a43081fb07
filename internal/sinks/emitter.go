package sinks

import (
	"context"
	"time"

	"event-insights/internal/models"
	"event-insights/internal/shared/loggers"
)

// Measurement is the fixed measurement name of all emitted points.
const Measurement = "event_data"

// Emitter translates aggregated buckets into points and writes them in
// batches. A failed flush is logged and the batch dropped; the run
// continues. There is no retry and no dead-letter handling.
//
//go:generate mockgen -source=emitter.go -destination=./mocks/emitter_mock.go -package=mocks
type Emitter interface {
	Emit(ctx context.Context, bucket *models.Bucket, category models.EventCategory)
	Flush(ctx context.Context)
}

type emitter struct {
	writer          PointWriter
	batchSize       int
	version         string
	timeWindowLabel string
	batch           []Point
	logger          loggers.Logger
}

func NewEmitter(writer PointWriter, batchSize int, version, timeWindowLabel string, logger loggers.Logger) Emitter {
	return &emitter{
		writer:          writer,
		batchSize:       batchSize,
		version:         version,
		timeWindowLabel: timeWindowLabel,
		logger:          logger,
	}
}

func (e *emitter) Emit(ctx context.Context, bucket *models.Bucket, category models.EventCategory) {
	e.batch = append(e.batch, e.pointFromBucket(bucket, category))
	if len(e.batch) > e.batchSize {
		e.flush(ctx)
	}
}

func (e *emitter) Flush(ctx context.Context) {
	if len(e.batch) > 0 {
		e.flush(ctx)
	}
}

func (e *emitter) flush(ctx context.Context) {
	err := e.writer.WritePoints(ctx, e.batch)
	if err != nil {
		metricFlushFailuresTotal.Inc()
		e.logger.Error().
			Err(err).
			Int(loggers.FieldBatchSize, len(e.batch)).
			Msg("Failed to write point batch, dropping it")
	} else {
		metricPointsWrittenTotal.Add(float64(len(e.batch)))
	}
	e.batch = nil
}

// pointFromBucket maps bucket labels to tags and measures to fields. Which
// labels and measures make it onto the point depends on the bucket type,
// mirroring the label sets the bucketers produce.
func (e *emitter) pointFromBucket(bucket *models.Bucket, category models.EventCategory) Point {
	point := Point{
		Measurement: Measurement,
		Tags: map[string]string{
			models.LabelVersion:    e.version,
			models.LabelType:       bucket.Label(models.LabelType),
			models.LabelDeviceType: bucket.Label(models.LabelDeviceType),
			models.LabelTimeWindow: e.timeWindowLabel,
		},
		Fields: map[string]float64{
			models.FieldCount: bucket.Fields[models.FieldCount],
		},
		Time: time.UnixMilli(bucket.Time),
	}

	if category == models.CategoryContent {
		point.Tags[models.LabelBereich] = bucket.Label(models.LabelBereich)
		point.Tags[models.LabelArtikelcode] = bucket.Label(models.LabelArtikelcode)
		point.Tags[models.LabelArticleCodeDigits] = bucket.Label(models.LabelArticleCodeDigits)
		if bucket.Label(models.LabelType) == models.TypeLoadSet {
			point.Tags[models.LabelIsFound] = bucket.Label(models.LabelIsFound)
		}
		return point
	}

	switch bucket.Label(models.LabelType) {
	case models.TypePurchasedProduct:
		for _, field := range models.ProductFields {
			point.Fields[field] = bucket.Fields[field]
		}
		point.Tags[models.LabelReferralProduct] = bucket.Label(models.LabelReferralProduct)
		point.Tags[models.LabelBereich] = bucket.Label(models.LabelBereich)
		point.Tags[models.LabelArtikelcode] = bucket.Label(models.LabelArtikelcode)
		point.Tags[models.LabelArticleCodeDigits] = bucket.Label(models.LabelArticleCodeDigits)

	case models.TypePurchase:
		for _, field := range models.PurchaseFields {
			point.Fields[field] = bucket.Fields[field]
		}
		point.Tags[models.LabelReferralOrder] = bucket.Label(models.LabelReferralOrder)

	case models.TypeReferral:
		point.Tags[models.LabelBereich] = bucket.Label(models.LabelBereich)
		point.Tags[models.LabelArtikelcode] = bucket.Label(models.LabelArtikelcode)
		point.Tags[models.LabelArticleCodeDigits] = bucket.Label(models.LabelArticleCodeDigits)
	}

	return point
}
