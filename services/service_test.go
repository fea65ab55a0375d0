package services

import (
	"path/filepath"
	"testing"

	"pos-backend/entity"
	"pos-backend/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "pos_test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.UserActivityLog{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.StockMovement{},
		&entity.WorkPeriod{},
		&entity.Setting{},
	))
	return db
}

type testServices struct {
	DB         *gorm.DB
	Orders     *OrderService
	Inventory  *InventoryService
	Settlement *SettlementService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	db := newTestDB(t)
	orderRepo := repository.NewOrderRepository(db)
	invRepo := repository.NewInventoryRepository(db)
	invSvc := NewInventoryService(db, invRepo)
	settlement := NewSettlementService(orderRepo, invRepo, invSvc)
	orderSvc := NewOrderService(db, orderRepo, settlement)
	return &testServices{DB: db, Orders: orderSvc, Inventory: invSvc, Settlement: settlement}
}

func seedCategory(t *testing.T, db *gorm.DB) entity.Category {
	t.Helper()
	cat := entity.Category{Name: "MAINS", DisplayOrder: 1, IsActive: true}
	require.NoError(t, db.Create(&cat).Error)
	return cat
}

func seedItem(t *testing.T, db *gorm.DB, categoryID uint, name string, stock, threshold int, track bool) entity.MenuItem {
	t.Helper()
	item := entity.MenuItem{
		CategoryID:        categoryID,
		Name:              name,
		Price:             12.00,
		IsAvailable:       true,
		StockQuantity:     stock,
		LowStockThreshold: threshold,
		TrackStock:        track,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func movementsFor(t *testing.T, db *gorm.DB, itemID uint) []entity.StockMovement {
	t.Helper()
	var out []entity.StockMovement
	require.NoError(t, db.Where("menu_item_id = ?", itemID).Order("id").Find(&out).Error)
	return out
}

func stockOf(t *testing.T, db *gorm.DB, itemID uint) int {
	t.Helper()
	var item entity.MenuItem
	require.NoError(t, db.First(&item, itemID).Error)
	return item.StockQuantity
}
