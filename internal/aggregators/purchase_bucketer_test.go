package aggregators_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"event-insights/internal/aggregators"
	"event-insights/internal/models"
	"event-insights/internal/streams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func purchaseCursor(t *testing.T, events []models.PurchaseEvent) *streams.Cursor[models.PurchaseEvent] {
	t.Helper()

	data, err := json.Marshal(events)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "purchase.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cursor := streams.NewCursor[models.PurchaseEvent]([]string{path}, models.CategoryPurchase)
	t.Cleanup(func() { _ = cursor.Close() })
	return cursor
}

func purchaseEvent(ts int64, deviceType string, products ...models.ProductLine) models.PurchaseEvent {
	return models.PurchaseEvent{
		Timestamp:         ts,
		ItemCount:         float64(len(products)),
		ItemValue:         100,
		MixedItemCount:    1,
		MixedItemValue:    50,
		ReferralItemCount: 0,
		ReferralItemValue: 0,
		ProcessedPurchase: models.ProcessedPurchase{
			Meta: models.Meta{DeviceType: deviceType},
			Data: models.PurchaseData{Products: products},
		},
	}
}

func bucketsOfType(buckets []*models.Bucket, bucketType string) []*models.Bucket {
	var out []*models.Bucket
	for _, bucket := range buckets {
		if bucket.Label(models.LabelType) == bucketType {
			out = append(out, bucket)
		}
	}
	return out
}

func TestPurchaseBucketer_MergesSameSKUPurchases(t *testing.T) {
	t.Parallel()

	bucketer := aggregators.NewPurchaseBucketer(testResolver(), 3)
	cursor := purchaseCursor(t, []models.PurchaseEvent{
		purchaseEvent(1000, "mobile", models.ProductLine{SKU: "MASTER00000001", Amount: 10, Total: 20}),
		purchaseEvent(2000, "mobile", models.ProductLine{SKU: "MASTER00000001", Amount: 15, Total: 30}),
	})
	window := models.TimeWindow{Start: 0, End: 10000}

	buckets, err := bucketer.Accumulate(cursor, window)
	require.NoError(t, err)

	productBuckets := bucketsOfType(buckets, models.TypePurchasedProduct)
	require.Len(t, productBuckets, 1)
	assert.Equal(t, float64(2), productBuckets[0].Fields[models.FieldCount])
	assert.Equal(t, float64(25), productBuckets[0].Fields[models.FieldAmount])
	assert.Equal(t, float64(50), productBuckets[0].Fields[models.FieldTotal])
	assert.Equal(t, "electronics", productBuckets[0].Label(models.LabelBereich))
	assert.Equal(t, "false", productBuckets[0].Label(models.LabelReferralProduct))

	orderBuckets := bucketsOfType(buckets, models.TypePurchase)
	require.Len(t, orderBuckets, 1)
	assert.Equal(t, float64(2), orderBuckets[0].Fields[models.FieldCount])
	assert.Equal(t, float64(2), orderBuckets[0].Fields[models.FieldItemCount])
	assert.Equal(t, float64(200), orderBuckets[0].Fields[models.FieldItemValue])
	assert.Equal(t, "false", orderBuckets[0].Label(models.LabelReferralOrder))
}

func TestPurchaseBucketer_SkipsEmptyPurchases(t *testing.T) {
	t.Parallel()

	bucketer := aggregators.NewPurchaseBucketer(testResolver(), 3)
	cursor := purchaseCursor(t, []models.PurchaseEvent{
		purchaseEvent(1000, "mobile"),
	})

	buckets, err := bucketer.Accumulate(cursor, models.TimeWindow{Start: 0, End: 10000})
	require.NoError(t, err)
	assert.Empty(t, buckets, "empty purchases produce no buckets, not even an order bucket")
}

func TestPurchaseBucketer_ReferralOrderSplitsOrderBuckets(t *testing.T) {
	t.Parallel()

	referralOrder := purchaseEvent(1000, "mobile", models.ProductLine{SKU: "MASTER00000001", Amount: 1, Total: 2})
	referralOrder.ReferralOrder = 1
	plainOrder := purchaseEvent(2000, "mobile", models.ProductLine{SKU: "MASTER00000001", Amount: 1, Total: 2})

	bucketer := aggregators.NewPurchaseBucketer(testResolver(), 3)
	cursor := purchaseCursor(t, []models.PurchaseEvent{referralOrder, plainOrder})

	buckets, err := bucketer.Accumulate(cursor, models.TimeWindow{Start: 0, End: 10000})
	require.NoError(t, err)

	orderBuckets := bucketsOfType(buckets, models.TypePurchase)
	require.Len(t, orderBuckets, 2)
	assert.NotEqual(t, orderBuckets[0].Label(models.LabelReferralOrder), orderBuckets[1].Label(models.LabelReferralOrder))
}

func TestPurchaseBucketer_ReferralBucketsKeyedByNormalizedDay(t *testing.T) {
	t.Parallel()

	referral := func(ts int64) models.Referral {
		return models.Referral{
			Time: ts,
			Meta: models.Meta{DeviceType: "mobile"},
			Data: models.ReferralData{Products: []models.ReferralProduct{
				{Properties: models.ReferralProperties{ParentSKU: "MASTER00000002"}},
			}},
		}
	}

	line := models.ProductLine{
		SKU:             "MASTER00000001",
		Amount:          1,
		Total:           2,
		ReferralProduct: 1,
		Referrals: []models.Referral{
			referral(5 * models.Hour),                // day 0 -> normalized day 1
			referral(7 * models.Hour),                // same day -> merges
			referral(models.Day + 2*models.Hour),     // day 1 -> normalized day 2
		},
	}

	bucketer := aggregators.NewPurchaseBucketer(testResolver(), 3)
	cursor := purchaseCursor(t, []models.PurchaseEvent{
		purchaseEvent(2*models.Day, "mobile", line),
	})

	buckets, err := bucketer.Accumulate(cursor, models.TimeWindow{Start: 0, End: 3 * models.Day})
	require.NoError(t, err)

	referralBuckets := bucketsOfType(buckets, models.TypeReferral)
	require.Len(t, referralBuckets, 2, "same normalized day merges, different days stay apart")

	byTime := map[int64]float64{}
	for _, bucket := range referralBuckets {
		byTime[bucket.Time] = bucket.Fields[models.FieldCount]
		assert.Equal(t, "home", bucket.Label(models.LabelBereich), "referral resolves the parent sku")
		assert.Equal(t, "HO9", bucket.Label(models.LabelArtikelcode))
	}
	assert.Equal(t, float64(2), byTime[models.Day+models.TZOffset])
	assert.Equal(t, float64(1), byTime[2*models.Day+models.TZOffset])
}

func TestPurchaseBucketer_NonReferralProductsProduceNoReferralBuckets(t *testing.T) {
	t.Parallel()

	line := models.ProductLine{
		SKU:    "MASTER00000001",
		Amount: 1,
		Total:  2,
		// ReferralProduct stays 0; attached referrals must be ignored.
		Referrals: []models.Referral{{Time: 1000}},
	}

	bucketer := aggregators.NewPurchaseBucketer(testResolver(), 3)
	cursor := purchaseCursor(t, []models.PurchaseEvent{purchaseEvent(1000, "mobile", line)})

	buckets, err := bucketer.Accumulate(cursor, models.TimeWindow{Start: 0, End: 10000})
	require.NoError(t, err)
	assert.Empty(t, bucketsOfType(buckets, models.TypeReferral))
}

func TestPurchaseBucketer_CursorResumesAcrossWindows(t *testing.T) {
	t.Parallel()

	bucketer := aggregators.NewPurchaseBucketer(testResolver(), 3)
	cursor := purchaseCursor(t, []models.PurchaseEvent{
		purchaseEvent(1000, "mobile", models.ProductLine{SKU: "MASTER00000001", Amount: 1, Total: 1}),
		purchaseEvent(6000, "mobile", models.ProductLine{SKU: "MASTER00000001", Amount: 1, Total: 1}),
	})

	first, err := bucketer.Accumulate(cursor, models.TimeWindow{Start: 0, End: 5000})
	require.NoError(t, err)
	require.Len(t, bucketsOfType(first, models.TypePurchase), 1)

	second, err := bucketer.Accumulate(cursor, models.TimeWindow{Start: 5000, End: 10000})
	require.NoError(t, err)
	require.Len(t, bucketsOfType(second, models.TypePurchase), 1)
	assert.Equal(t, float64(1), bucketsOfType(second, models.TypePurchase)[0].Fields[models.FieldCount])
}
