package entity

import (
	"gorm.io/gorm"
)

// OrderItem snapshots the menu item's name and rate at order time, so a
// historical bill stays stable when the catalog changes later. Immutable
// once created.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	ItemName string  `gorm:"not null" json:"itemName"`
	Quantity int     `gorm:"not null;default:1" json:"quantity"`
	Rate     float64 `gorm:"not null" json:"rate"`
	Notes    string  `json:"notes"`
}
