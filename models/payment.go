package models

import "gorm.io/gorm"

const (
	PaymentPending   = "pending"
	PaymentCommitted = "committed"
	PaymentFailed    = "failed"
)

// Payment records a settled checkout. OrdersSnapshot keeps full copies of the
// orders that were settled, since the orders themselves are deleted.
type Payment struct {
	gorm.Model
	Reference      string  `gorm:"uniqueIndex;not null" json:"reference"`
	BuyerEmail     string  `gorm:"index;not null" json:"buyerEmail"`
	Amount         float64 `gorm:"not null" json:"amount"`
	Method         string  `json:"method"`
	Status         string  `gorm:"index;not null" json:"status"`
	OrdersSnapshot []Order `gorm:"serializer:json" json:"ordersSnapshot"`
	OrderCount     int     `json:"orderCount"`
}
