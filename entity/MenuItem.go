package entity

import (
	"gorm.io/gorm"
)

// MenuItem owns the authoritative stock counter; every change to
// StockQuantity must go through the inventory service so it leaves a
// StockMovement behind.
type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Code        *string `gorm:"uniqueIndex" json:"code"`
	Price       float64 `gorm:"not null;default:0" json:"price"`
	Description string  `json:"description"`

	IsAvailable  bool `gorm:"default:true" json:"isAvailable"`
	DisplayOrder int  `gorm:"default:0" json:"displayOrder"`

	StockQuantity     int  `gorm:"default:0" json:"stockQuantity"`
	LowStockThreshold int  `gorm:"default:10" json:"lowStockThreshold"`
	TrackStock        bool `gorm:"default:true" json:"trackStock"`

	CategoryID uint     `gorm:"not null;index" json:"categoryId"`
	Category   Category `json:"-"`

	OrderItems     []OrderItem     `json:"-"`
	StockMovements []StockMovement `json:"-"`
}
