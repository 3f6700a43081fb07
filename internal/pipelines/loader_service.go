package pipelines

import (
	"context"

	"event-insights/internal/aggregators"
	"event-insights/internal/models"
	"event-insights/internal/shared/loggers"
	"event-insights/internal/sinks"
	"event-insights/internal/streams"
)

// LoaderService drives one full aggregation run: it computes the total
// timeframe of all input files, aligns it to day boundaries, and walks it
// forward window by window, feeding both bucketers from their shared,
// continuing cursors and handing the resulting buckets to the emitter.
//
// Processing is strictly sequential: one window is fully aggregated and
// emitted (both categories) before the next begins, so memory stays bounded
// by the distinct label combinations of a single window.
//
//go:generate mockgen -source=loader_service.go -destination=./mocks/loader_service_mock.go -package=mocks
type LoaderService interface {
	Run(ctx context.Context) error
}

type loaderService struct {
	contentPaths  []string
	purchasePaths []string

	contentBucketer  aggregators.ContentBucketer
	purchaseBucketer aggregators.PurchaseBucketer
	emitter          sinks.Emitter

	timeStep int64
	logger   loggers.Logger
}

func NewLoaderService(
	contentPaths, purchasePaths []string,
	contentBucketer aggregators.ContentBucketer,
	purchaseBucketer aggregators.PurchaseBucketer,
	emitter sinks.Emitter,
	timeStepDays int,
	logger loggers.Logger,
) LoaderService {
	return &loaderService{
		contentPaths:     contentPaths,
		purchasePaths:    purchasePaths,
		contentBucketer:  contentBucketer,
		purchaseBucketer: purchaseBucketer,
		emitter:          emitter,
		timeStep:         int64(timeStepDays) * models.Day,
		logger:           logger,
	}
}

func (s *loaderService) Run(ctx context.Context) error {
	if len(s.contentPaths) == 0 && len(s.purchasePaths) == 0 {
		return errNoInputFiles()
	}

	contentSpans, err := streams.ScanTimespans(s.contentPaths)
	if err != nil {
		return errInternalTimescanFailed(err)
	}
	purchaseSpans, err := streams.ScanTimespans(s.purchasePaths)
	if err != nil {
		return errInternalTimescanFailed(err)
	}

	allSpans := make([]streams.Timespan, 0, len(contentSpans)+len(purchaseSpans))
	allSpans = append(allSpans, contentSpans...)
	allSpans = append(allSpans, purchaseSpans...)
	first, last := streams.Timeframe(allSpans)

	s.logger.Info().Msgf("Found events from %s to %s",
		models.FormatTimestamp(first), models.FormatTimestamp(last))

	start, end := models.AlignTimeframe(first, last)
	if start+s.timeStep > end {
		s.logger.Warn().Msg("Timeframe does not cover a single full window, nothing to aggregate")
		return nil
	}

	contentCursor := streams.NewCursor[models.ContentEvent](streams.Paths(contentSpans), models.CategoryContent)
	defer contentCursor.Close()
	purchaseCursor := streams.NewCursor[models.PurchaseEvent](streams.Paths(purchaseSpans), models.CategoryPurchase)
	defer purchaseCursor.Close()

	progress := newProgress(int((end-start)/s.timeStep), s.logger)

	for windowStart := start; windowStart+s.timeStep <= end; windowStart += s.timeStep {
		window := models.TimeWindow{Start: windowStart, End: windowStart + s.timeStep}

		s.logger.Info().
			Int64(loggers.FieldWindowStart, window.Start).
			Int64(loggers.FieldWindowEnd, window.End).
			Msgf("Processing events from %s to %s",
				models.FormatTimestamp(window.Start), models.FormatTimestamp(window.End))

		contentBuckets, err := s.contentBucketer.Accumulate(contentCursor, window)
		if err != nil {
			return err
		}
		for _, bucket := range contentBuckets {
			s.emitter.Emit(ctx, bucket, models.CategoryContent)
		}

		purchaseBuckets, err := s.purchaseBucketer.Accumulate(purchaseCursor, window)
		if err != nil {
			return err
		}
		for _, bucket := range purchaseBuckets {
			s.emitter.Emit(ctx, bucket, models.CategoryPurchase)
		}

		metricWindowsProcessedTotal.Inc()
		progress.Step()
	}

	s.emitter.Flush(ctx)
	s.logger.Info().Msg("Events uploaded successfully")
	return nil
}
