package models

// EventCategory distinguishes the two input streams of the pipeline.
type EventCategory string

const (
	CategoryContent  EventCategory = "content"
	CategoryPurchase EventCategory = "purchase"
)

// Meta carries the client metadata attached to every raw event.
type Meta struct {
	DeviceType string `json:"devicetype"`
	UserAgent  string `json:"useragent"`
}

// ContentEvent is a single content-interaction record (widget impressions,
// set loads, merchant detail views). Timestamps are epoch milliseconds.
type ContentEvent struct {
	Time int64       `json:"time"`
	Type string      `json:"type"`
	Meta Meta        `json:"meta"`
	Data ContentData `json:"data"`
}

type ContentData struct {
	Widget  Widget      `json:"widget"`
	Content ContentInfo `json:"content"`
}

type Widget struct {
	SKU string `json:"sku"`
}

type ContentInfo struct {
	IsFound bool `json:"isfound"`
}

// EventTime returns the event timestamp in epoch milliseconds.
func (e ContentEvent) EventTime() int64 {
	return e.Time
}

// PurchaseEvent is a single order record with its processed purchase payload.
// Order-level measures are already rolled up by the upstream exporter.
type PurchaseEvent struct {
	Timestamp         int64             `json:"timestamp"`
	ItemCount         float64           `json:"itemCount"`
	ItemValue         float64           `json:"itemValue"`
	MixedItemCount    float64           `json:"mixedItemCount"`
	MixedItemValue    float64           `json:"mixedItemValue"`
	ReferralItemCount float64           `json:"referralItemCount"`
	ReferralItemValue float64           `json:"referralItemValue"`
	ReferralOrder     int               `json:"referralOrder"`
	ProcessedPurchase ProcessedPurchase `json:"processedPurchase"`
}

type ProcessedPurchase struct {
	Meta Meta         `json:"meta"`
	Data PurchaseData `json:"data"`
}

type PurchaseData struct {
	Products []ProductLine `json:"products"`
}

// ProductLine is one purchased line item. ReferralProduct is 1 when the
// purchase was preceded by a recommendation impression for this product.
type ProductLine struct {
	SKU             string     `json:"sku"`
	Amount          float64    `json:"amount"`
	Total           float64    `json:"total"`
	ReferralProduct int        `json:"referralProduct"`
	Referrals       []Referral `json:"referrals"`
}

// Referral links a purchased product back to the originating impression.
type Referral struct {
	Time int64        `json:"time"`
	Meta Meta         `json:"meta"`
	Data ReferralData `json:"data"`
}

type ReferralData struct {
	Products []ReferralProduct `json:"products"`
}

type ReferralProduct struct {
	Properties ReferralProperties `json:"properties"`
}

type ReferralProperties struct {
	ParentSKU string `json:"parentSku"`
}

// EventTime returns the event timestamp in epoch milliseconds.
func (e PurchaseEvent) EventTime() int64 {
	return e.Timestamp
}

// ParentSKU returns the sku of the product that triggered the referral,
// or "" when the referral payload carries no product.
func (r Referral) ParentSKU() string {
	if len(r.Data.Products) == 0 {
		return ""
	}
	return r.Data.Products[0].Properties.ParentSKU
}
