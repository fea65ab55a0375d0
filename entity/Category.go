package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name         string `gorm:"uniqueIndex;not null" json:"name"`
	DisplayOrder int    `gorm:"default:0" json:"displayOrder"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`

	MenuItems []MenuItem `json:"-"`
}
