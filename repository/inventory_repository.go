package repository

import (
	"time"

	"pos-backend/entity"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	DB *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

// ItemStock is the slice of MenuItem the ledger needs for a movement.
type ItemStock struct {
	ID            uint `json:"id"`
	StockQuantity int  `json:"stockQuantity"`
	TrackStock    bool `json:"trackStock"`
}

func (r *InventoryRepository) GetItemStock(tx *gorm.DB, itemID uint) (*ItemStock, error) {
	var row ItemStock
	err := tx.Model(&entity.MenuItem{}).
		Select("id, stock_quantity, track_stock").
		Where("id = ?", itemID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *InventoryRepository) UpdateStockQuantity(tx *gorm.DB, itemID uint, qty int) error {
	return tx.Model(&entity.MenuItem{}).
		Where("id = ?", itemID).
		Update("stock_quantity", qty).Error
}

func (r *InventoryRepository) CreateMovement(tx *gorm.DB, m *entity.StockMovement) error {
	return tx.Create(m).Error
}

// MovementRow is a movement augmented with the acting user's name.
type MovementRow struct {
	ID            uint      `json:"id"`
	MenuItemID    uint      `json:"menuItemId"`
	MovementType  string    `json:"movementType"`
	Quantity      int       `json:"quantity"`
	PreviousStock int       `json:"previousStock"`
	NewStock      int       `json:"newStock"`
	ReferenceID   string    `json:"referenceId"`
	Notes         string    `json:"notes"`
	UserID        *uint     `json:"userId"`
	UserName      string    `json:"userName"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r *InventoryRepository) ListMovements(itemID uint, limit int) ([]MovementRow, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	var rows []MovementRow
	err := r.DB.Table("stock_movements AS sm").
		Select("sm.id, sm.menu_item_id, sm.movement_type, sm.quantity, sm.previous_stock, sm.new_stock, sm.reference_id, sm.notes, sm.user_id, u.full_name AS user_name, sm.created_at").
		Joins("LEFT JOIN users u ON u.id = sm.user_id").
		Where("sm.menu_item_id = ?", itemID).
		Order("sm.created_at DESC, sm.id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// InventoryItem is a stock-tracked menu item with its category name.
type InventoryItem struct {
	ID                uint    `json:"id"`
	Name              string  `json:"name"`
	Code              *string `json:"code"`
	Price             float64 `json:"price"`
	StockQuantity     int     `json:"stockQuantity"`
	LowStockThreshold int     `json:"lowStockThreshold"`
	TrackStock        bool    `json:"trackStock"`
	CategoryID        uint    `json:"categoryId"`
	CategoryName      string  `json:"categoryName"`
}

const inventorySelect = "mi.id, mi.name, mi.code, mi.price, mi.stock_quantity, mi.low_stock_threshold, mi.track_stock, mi.category_id, c.name AS category_name"

func (r *InventoryRepository) ListTracked() ([]InventoryItem, error) {
	var rows []InventoryItem
	err := r.DB.Table("menu_items AS mi").
		Select(inventorySelect).
		Joins("JOIN categories c ON c.id = mi.category_id").
		Where("mi.track_stock = ? AND mi.deleted_at IS NULL", true).
		Order("c.display_order, mi.name").
		Scan(&rows).Error
	return rows, err
}

// ListLowStock returns tracked items at or under their threshold,
// most urgent first.
func (r *InventoryRepository) ListLowStock() ([]InventoryItem, error) {
	var rows []InventoryItem
	err := r.DB.Table("menu_items AS mi").
		Select(inventorySelect).
		Joins("JOIN categories c ON c.id = mi.category_id").
		Where("mi.track_stock = ? AND mi.stock_quantity <= mi.low_stock_threshold AND mi.deleted_at IS NULL", true).
		Order("mi.stock_quantity ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *InventoryRepository) UpdateItemSettings(itemID uint, threshold *int, track *bool) (int64, error) {
	updates := map[string]any{}
	if threshold != nil {
		updates["low_stock_threshold"] = *threshold
	}
	if track != nil {
		updates["track_stock"] = *track
	}
	if len(updates) == 0 {
		return 0, nil
	}
	res := r.DB.Model(&entity.MenuItem{}).Where("id = ?", itemID).Updates(updates)
	return res.RowsAffected, res.Error
}
