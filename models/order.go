package models

import "gorm.io/gorm"

// OrderLine is one cart row inside an order.
type OrderLine struct {
	FoodID   uint    `json:"foodId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is transient: it exists from checkout until payment settlement,
// at which point it is copied onto the Payment and deleted.
type Order struct {
	gorm.Model
	BuyerEmail string      `gorm:"index;not null" json:"buyerEmail"`
	Items      []OrderLine `gorm:"serializer:json" json:"items"`
	Amount     float64     `json:"amount"`
}
