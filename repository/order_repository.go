package repository

import (
	"time"

	"pos-backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// CountOrders feeds the OD- sequence; runs inside the create transaction.
func (r *OrderRepository) CountOrders(tx *gorm.DB) (int64, error) {
	var cnt int64
	err := tx.Model(&entity.Order{}).Count(&cnt).Error
	return cnt, err
}

// CountBilled feeds the INV- sequence (orders that got a bill number).
func (r *OrderRepository) CountBilled(tx *gorm.DB) (int64, error) {
	var cnt int64
	err := tx.Model(&entity.Order{}).Where("bill_number IS NOT NULL").Count(&cnt).Error
	return cnt, err
}

func (r *OrderRepository) UpdateStatus(orderID uint, status string) error {
	return r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{"status": status, "updated_at": time.Now()}).Error
}

type OrderFilters struct {
	Status    string
	OrderType string
	DateFrom  string // YYYY-MM-DD
	DateTo    string
	Limit     int
}

func (r *OrderRepository) ListOrders(f OrderFilters) ([]entity.Order, error) {
	if f.Limit <= 0 || f.Limit > 500 {
		f.Limit = 100
	}
	db := r.DB.Model(&entity.Order{})
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.OrderType != "" {
		db = db.Where("order_type = ?", f.OrderType)
	}
	if f.DateFrom != "" {
		db = db.Where("DATE(created_at) >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		db = db.Where("DATE(created_at) <= ?", f.DateTo)
	}
	var out []entity.Order
	err := db.Order("created_at DESC, id DESC").Limit(f.Limit).Find(&out).Error
	return out, err
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}
