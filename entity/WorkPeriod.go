package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	WorkPeriodActive = "active"
	WorkPeriodClosed = "closed"
)

// WorkPeriod is an operator shift used for cash reconciliation.
type WorkPeriod struct {
	gorm.Model
	StartTime    time.Time  `gorm:"not null" json:"startTime"`
	EndTime      *time.Time `json:"endTime"`
	OperatorName string     `gorm:"not null" json:"operatorName"`

	OpeningCash float64 `gorm:"default:0" json:"openingCash"`
	ClosingCash float64 `gorm:"default:0" json:"closingCash"`
	TotalSales  float64 `gorm:"default:0" json:"totalSales"`

	Status string `gorm:"default:active" json:"status"`
}
