package controllers

import (
	"pos-backend/entity"
	"pos-backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReportController struct{ DB *gorm.DB }

func NewReportController(db *gorm.DB) *ReportController { return &ReportController{DB: db} }

type salesSummary struct {
	TotalOrders   int     `json:"totalOrders"`
	TotalSales    float64 `json:"totalSales"`
	TotalTax      float64 `json:"totalTax"`
	TotalSubtotal float64 `json:"totalSubtotal"`
}

// GET /reports/sales?date_from=&date_to=
// Completed orders in the range plus the running totals. JSON only,
// rendering is the front office's problem.
func (rc *ReportController) Sales(c *gin.Context) {
	q := rc.DB.Model(&entity.Order{}).Where("status = ?", entity.OrderStatusCompleted)
	if from := c.Query("date_from"); from != "" {
		q = q.Where("DATE(created_at) >= ?", from)
	}
	if to := c.Query("date_to"); to != "" {
		q = q.Where("DATE(created_at) <= ?", to)
	}

	var orders []entity.Order
	if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	sum := salesSummary{TotalOrders: len(orders)}
	for _, o := range orders {
		sum.TotalSales += o.Total
		sum.TotalTax += o.Tax
		sum.TotalSubtotal += o.Subtotal
	}

	resp.OK(c, gin.H{"orders": orders, "summary": sum})
}
