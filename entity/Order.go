package entity

import (
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

const (
	OrderTypeDineIn         = "dine-in"
	OrderTypeDineInBilling  = "dine-in-billing"
	OrderTypeTakeAway       = "take-away"
	OrderTypeHomeDelivery   = "home-delivery"
	OrderTypeExpressBilling = "express-billing"
)

// Order is created once from a submitted cart; Status is the only field
// that changes afterwards. Notes may carry a table number or delivery
// address using a simple prefix convention, the backend does not parse it.
type Order struct {
	gorm.Model
	OrderNumber string  `gorm:"uniqueIndex;not null" json:"orderNumber"`
	BillNumber  *string `gorm:"uniqueIndex" json:"billNumber"`
	OrderType   string  `gorm:"not null;default:dine-in" json:"orderType"`

	CustomerName string `json:"customerName"`
	ContactNo    string `json:"contactNo"`
	PaymentMode  string `gorm:"default:Cash" json:"paymentMode"`

	Subtotal float64 `gorm:"default:0" json:"subtotal"`
	Tax      float64 `gorm:"default:0" json:"tax"`
	Total    float64 `gorm:"default:0" json:"total"`

	Status string `gorm:"index;default:pending" json:"status"`
	Notes  string `json:"notes"`

	OrderItems []OrderItem `json:"-"`
}
