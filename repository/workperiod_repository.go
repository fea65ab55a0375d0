package repository

import (
	"time"

	"pos-backend/entity"

	"gorm.io/gorm"
)

type WorkPeriodRepository struct {
	DB *gorm.DB
}

func NewWorkPeriodRepository(db *gorm.DB) *WorkPeriodRepository {
	return &WorkPeriodRepository{DB: db}
}

func (r *WorkPeriodRepository) Create(p *entity.WorkPeriod) error {
	return r.DB.Create(p).Error
}

func (r *WorkPeriodRepository) Get(id uint) (*entity.WorkPeriod, error) {
	var p entity.WorkPeriod
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *WorkPeriodRepository) GetActive() (*entity.WorkPeriod, error) {
	var p entity.WorkPeriod
	err := r.DB.Where("status = ?", entity.WorkPeriodActive).
		Order("start_time DESC").First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *WorkPeriodRepository) List(limit int) ([]entity.WorkPeriod, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []entity.WorkPeriod
	err := r.DB.Order("start_time DESC").Limit(limit).Find(&out).Error
	return out, err
}

// CompletedSalesBetween sums completed order totals inside a shift window.
func (r *WorkPeriodRepository) CompletedSalesBetween(from, to time.Time) (float64, error) {
	var total float64
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Where("status = ? AND created_at >= ? AND created_at <= ?", entity.OrderStatusCompleted, from, to).
		Scan(&total).Error
	return total, err
}

func (r *WorkPeriodRepository) Close(id uint, end time.Time, closingCash, totalSales float64) error {
	return r.DB.Model(&entity.WorkPeriod{}).Where("id = ?", id).Updates(map[string]any{
		"end_time":     end,
		"closing_cash": closingCash,
		"total_sales":  totalSales,
		"status":       entity.WorkPeriodClosed,
	}).Error
}
