package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleCashier = "cashier"
)

type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `json:"-"`
	FullName     string `gorm:"not null" json:"fullName"`
	Role         string `gorm:"not null;default:cashier" json:"role"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`

	LastLogin *time.Time `json:"lastLogin"`

	ActivityLogs   []UserActivityLog `json:"-"`
	StockMovements []StockMovement   `json:"-"`
}
