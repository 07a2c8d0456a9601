package models

import "gorm.io/gorm"

// A catalog entry shown on the storefront
type FoodItem struct {
	gorm.Model
	Name         string  `gorm:"not null" json:"name"`
	Category     string  `json:"category"`
	Price        float64 `gorm:"not null" json:"price"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"image"`
	AddedByEmail string  `gorm:"index" json:"addedByEmail"`
}
