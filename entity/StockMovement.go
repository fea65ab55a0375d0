package entity

import (
	"gorm.io/gorm"
)

const (
	MovementPurchase   = "purchase"
	MovementSale       = "sale"
	MovementAdjustment = "adjustment"
	MovementWaste      = "waste"
)

// StockMovement is an append-only audit row. PreviousStock/NewStock
// snapshot the counter around the change so the stock timeline can be
// reconstructed without the current state. Never updated or deleted.
type StockMovement struct {
	gorm.Model
	MenuItemID uint     `gorm:"not null;index" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	MovementType  string `gorm:"not null;index" json:"movementType"`
	Quantity      int    `gorm:"not null" json:"quantity"`
	PreviousStock int    `gorm:"not null" json:"previousStock"`
	NewStock      int    `gorm:"not null" json:"newStock"`

	ReferenceID string `json:"referenceId"`
	Notes       string `json:"notes"`

	UserID *uint `json:"userId"`
	User   *User `json:"-"`
}
