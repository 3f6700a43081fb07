package aggregators

import (
	"strconv"

	"event-insights/internal/models"
	"event-insights/internal/products"
	"event-insights/internal/streams"
)

// referralMatchLabels is the label part of a referral bucket's key. Unlike
// every other bucket type, the normalized referral time also participates
// in the match: referrals are attributed to their own day, independent of
// the current window.
var referralMatchLabels = []string{
	models.LabelType,
	models.LabelDeviceType,
	models.LabelBereich,
	models.LabelArtikelcode,
	models.LabelArticleCodeDigits,
}

// purchaseMatchLabels keys the per-order purchase bucket. Numeric measures
// and time are ignored on match.
var purchaseMatchLabels = []string{
	models.LabelType,
	models.LabelDeviceType,
	models.LabelReferralOrder,
}

// PurchaseBucketer accumulates purchase events of one window. One source
// event fans out into per-line-item purchased_product buckets, per-referral
// referral buckets, and one order-level purchase bucket.
//
//go:generate mockgen -source=purchase_bucketer.go -destination=./mocks/purchase_bucketer_mock.go -package=mocks
type PurchaseBucketer interface {
	Accumulate(cursor *streams.Cursor[models.PurchaseEvent], window models.TimeWindow) ([]*models.Bucket, error)
}

type purchaseBucketer struct {
	resolver *products.Resolver
	digits   int
}

func NewPurchaseBucketer(resolver *products.Resolver, articleCodeDigits int) PurchaseBucketer {
	return &purchaseBucketer{resolver: resolver, digits: articleCodeDigits}
}

func (b *purchaseBucketer) Accumulate(cursor *streams.Cursor[models.PurchaseEvent], window models.TimeWindow) ([]*models.Bucket, error) {
	var buckets []*models.Bucket

	for {
		event, ok, err := cursor.Peek()
		if err != nil {
			return nil, errInternalCursorFailed(models.CategoryPurchase, err)
		}
		if !ok {
			break
		}
		if event.Timestamp > window.End {
			break
		}
		if _, _, err := cursor.Next(); err != nil {
			return nil, errInternalCursorFailed(models.CategoryPurchase, err)
		}
		if event.Timestamp < window.Start {
			continue
		}

		// skip empty purchases
		if len(event.ProcessedPurchase.Data.Products) == 0 {
			metricEventsSkippedTotal.WithLabelValues(string(models.CategoryPurchase)).Inc()
			continue
		}

		deviceType := deviceTypeOf(event.ProcessedPurchase.Meta)

		for _, product := range event.ProcessedPurchase.Data.Products {
			buckets = b.accumulateProduct(buckets, product, deviceType, window)

			if product.ReferralProduct == 1 {
				buckets = b.accumulateReferrals(buckets, product)
			}
		}

		buckets = accumulateOrder(buckets, event, deviceType, window)
	}

	return buckets, nil
}

// accumulateProduct counts one purchased line item into its
// purchased_product bucket.
func (b *purchaseBucketer) accumulateProduct(buckets []*models.Bucket, product models.ProductLine, deviceType string, window models.TimeWindow) []*models.Bucket {
	entry := models.NewBucket(window.End)
	entry.Fields[models.FieldCount] = 1
	entry.Fields[models.FieldAmount] = product.Amount
	entry.Fields[models.FieldTotal] = product.Total
	entry.Labels[models.LabelType] = models.TypePurchasedProduct
	entry.Labels[models.LabelReferralProduct] = strconv.FormatBool(product.ReferralProduct != 0)
	entry.Labels[models.LabelBereich] = b.resolver.Bereich(product.SKU)
	entry.Labels[models.LabelArtikelcode] = b.resolver.Artikelcode(product.SKU, b.digits)
	entry.Labels[models.LabelArticleCodeDigits] = strconv.Itoa(b.digits)
	entry.Labels[models.LabelDeviceType] = deviceType

	return mergeBucket(buckets, entry, models.ComparableLabels, false, models.CategoryPurchase)
}

// accumulateReferrals counts the referral impressions that preceded a
// purchased referral product. The referral's parent sku, not the purchased
// sku, drives the catalog lookup, and the bucket time is the referral's own
// normalized day, which mostly lies outside the current window.
func (b *purchaseBucketer) accumulateReferrals(buckets []*models.Bucket, product models.ProductLine) []*models.Bucket {
	for _, referral := range product.Referrals {
		sku := referral.ParentSKU()
		if sku == "" {
			metricEventsSkippedTotal.WithLabelValues(string(models.CategoryPurchase)).Inc()
			continue
		}

		entry := models.NewBucket(models.NormalizeToNextDay(referral.Time))
		entry.Fields[models.FieldCount] = 1
		entry.Labels[models.LabelType] = models.TypeReferral
		entry.Labels[models.LabelDeviceType] = deviceTypeOf(referral.Meta)
		entry.Labels[models.LabelBereich] = b.resolver.Bereich(sku)
		entry.Labels[models.LabelArtikelcode] = b.resolver.Artikelcode(sku, b.digits)
		entry.Labels[models.LabelArticleCodeDigits] = strconv.Itoa(b.digits)

		buckets = mergeBucket(buckets, entry, referralMatchLabels, true, models.CategoryPurchase)
	}
	return buckets
}

// accumulateOrder sums the order-level measures into the per-device,
// per-referral-flag purchase bucket.
func accumulateOrder(buckets []*models.Bucket, event models.PurchaseEvent, deviceType string, window models.TimeWindow) []*models.Bucket {
	entry := models.NewBucket(window.End)
	entry.Fields[models.FieldCount] = 1
	entry.Fields[models.FieldItemCount] = event.ItemCount
	entry.Fields[models.FieldItemValue] = event.ItemValue
	entry.Fields[models.FieldMixedItemCount] = event.MixedItemCount
	entry.Fields[models.FieldMixedItemValue] = event.MixedItemValue
	entry.Fields[models.FieldReferralItemCount] = event.ReferralItemCount
	entry.Fields[models.FieldReferralItemValue] = event.ReferralItemValue
	entry.Labels[models.LabelType] = models.TypePurchase
	entry.Labels[models.LabelReferralOrder] = strconv.FormatBool(event.ReferralOrder == 1)
	entry.Labels[models.LabelDeviceType] = deviceType

	return mergeBucket(buckets, entry, purchaseMatchLabels, false, models.CategoryPurchase)
}
