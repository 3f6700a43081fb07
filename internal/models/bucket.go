package models

// Label names of the bucket key space. The names double as output tag names,
// which is why Artikelcode keeps its capitalized spelling.
const (
	LabelBereich           = "bereich"
	LabelVersion           = "version"
	LabelType              = "type"
	LabelDeviceType        = "devicetype"
	LabelArtikelcode       = "Artikelcode"
	LabelArticleCodeDigits = "article_code_digits"
	LabelIsFound           = "isfound"
	LabelReferralProduct   = "referralProduct"
	LabelReferralOrder     = "referralOrder"
	LabelTimeWindow        = "time_window"
)

// ComparableLabels is the fixed label set used to decide whether two buckets
// are the same accumulation target. A label absent on either side compares
// as the empty string.
var ComparableLabels = []string{
	LabelBereich,
	LabelVersion,
	LabelType,
	LabelDeviceType,
	LabelArtikelcode,
	LabelArticleCodeDigits,
	LabelIsFound,
	LabelReferralProduct,
	LabelReferralOrder,
	LabelTimeWindow,
}

// Measure field names.
const (
	FieldCount             = "count"
	FieldAmount            = "amount"
	FieldTotal             = "total"
	FieldItemCount         = "itemCount"
	FieldItemValue         = "itemValue"
	FieldMixedItemCount    = "mixedItemCount"
	FieldMixedItemValue    = "mixedItemValue"
	FieldReferralItemCount = "referralItemCount"
	FieldReferralItemValue = "referralItemValue"
)

// ProductFields are the extra measures carried by purchased_product buckets.
var ProductFields = []string{FieldAmount, FieldTotal}

// PurchaseFields are all measures carried by purchase buckets, count included.
var PurchaseFields = []string{
	FieldCount,
	FieldItemCount,
	FieldItemValue,
	FieldMixedItemCount,
	FieldMixedItemValue,
	FieldReferralItemCount,
	FieldReferralItemValue,
}

// Bucket types produced by the purchase stream.
const (
	TypePurchasedProduct = "purchased_product"
	TypeReferral         = "referral"
	TypePurchase         = "purchase"
)

// TypeLoadSet is the content event type that carries a found/not-found flag.
const TypeLoadSet = "loadSet"

// Bucket is a mutable accumulator for one distinct label combination within
// a window. Time is the point timestamp in epoch milliseconds: the window
// end for content/product/purchase buckets, the normalized referral day for
// referral buckets.
type Bucket struct {
	Labels map[string]string
	Fields map[string]float64
	Time   int64
}

func NewBucket(timeMs int64) *Bucket {
	return &Bucket{
		Labels: make(map[string]string),
		Fields: make(map[string]float64),
		Time:   timeMs,
	}
}

// Label returns the value of a label, or "" when the bucket does not
// define it.
func (b *Bucket) Label(name string) string {
	return b.Labels[name]
}

// MatchesLabels reports whether b and other agree on every named label,
// with absent labels treated as "".
func (b *Bucket) MatchesLabels(other *Bucket, labels []string) bool {
	for _, label := range labels {
		if b.Labels[label] != other.Labels[label] {
			return false
		}
	}
	return true
}

// AddFields sums every measure of other into b. Measures are always summed,
// never overwritten.
func (b *Bucket) AddFields(other *Bucket) {
	for name, value := range other.Fields {
		b.Fields[name] += value
	}
}
