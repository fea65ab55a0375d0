package entity

import (
	"gorm.io/gorm"
)

type UserActivityLog struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	Action  string `gorm:"not null" json:"action"`
	Details string `json:"details"`
}
