package services

import (
	"errors"
	"sync"

	"pos-backend/entity"
	"pos-backend/pkg/apperr"
	"pos-backend/repository"

	"gorm.io/gorm"
)

// InventoryService is the authoritative ledger for per-item stock.
// Every change goes through a read-modify-write guarded by a per-item
// lock, and leaves exactly one StockMovement row behind in the same
// transaction as the counter update.
type InventoryService struct {
	DB   *gorm.DB
	Repo *repository.InventoryRepository

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewInventoryService(db *gorm.DB, repo *repository.InventoryRepository) *InventoryService {
	return &InventoryService{DB: db, Repo: repo, locks: make(map[uint]*sync.Mutex)}
}

func (s *InventoryService) itemLock(itemID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[itemID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[itemID] = l
	}
	return l
}

type MovementResult struct {
	PreviousStock int `json:"previousStock"`
	NewStock      int `json:"newStock"`
}

// ApplyMovement applies a relative stock change. Quantity is a magnitude;
// the direction comes from the movement type. Sale and waste floor at zero
// rather than failing, the recorded movement still carries the requested
// quantity.
func (s *InventoryService) ApplyMovement(itemID uint, movementType string, quantity int, notes string, userID *uint, referenceID string) (*MovementResult, error) {
	if quantity <= 0 {
		return nil, apperr.Validation("quantity must be a positive integer")
	}
	var delta int
	switch movementType {
	case entity.MovementPurchase, entity.MovementAdjustment:
		delta = quantity
	case entity.MovementSale, entity.MovementWaste:
		delta = -quantity
	default:
		return nil, apperr.Validationf("invalid movement type %q", movementType)
	}

	l := s.itemLock(itemID)
	l.Lock()
	defer l.Unlock()

	var res MovementResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.Repo.GetItemStock(tx, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("menu item %d", itemID)
			}
			return err
		}

		newStock := item.StockQuantity + delta
		if newStock < 0 {
			newStock = 0
		}

		if err := s.Repo.UpdateStockQuantity(tx, itemID, newStock); err != nil {
			return err
		}
		m := entity.StockMovement{
			MenuItemID:    itemID,
			MovementType:  movementType,
			Quantity:      quantity,
			PreviousStock: item.StockQuantity,
			NewStock:      newStock,
			ReferenceID:   referenceID,
			Notes:         notes,
			UserID:        userID,
		}
		if err := s.Repo.CreateMovement(tx, &m); err != nil {
			return err
		}
		res = MovementResult{PreviousStock: item.StockQuantity, NewStock: newStock}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		return nil, apperr.Storage(err)
	}
	return &res, nil
}

// SetStock writes an absolute quantity (manual correction). The logged
// movement is an adjustment whose quantity is the distance from the
// previous value.
func (s *InventoryService) SetStock(itemID uint, newQuantity int, notes string, userID *uint) (*MovementResult, error) {
	if newQuantity < 0 {
		return nil, apperr.Validation("stock quantity cannot be negative")
	}
	if notes == "" {
		notes = "Stock adjustment"
	}

	l := s.itemLock(itemID)
	l.Lock()
	defer l.Unlock()

	var res MovementResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.Repo.GetItemStock(tx, itemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("menu item %d", itemID)
			}
			return err
		}

		if err := s.Repo.UpdateStockQuantity(tx, itemID, newQuantity); err != nil {
			return err
		}
		quantity := newQuantity - item.StockQuantity
		if quantity < 0 {
			quantity = -quantity
		}
		m := entity.StockMovement{
			MenuItemID:    itemID,
			MovementType:  entity.MovementAdjustment,
			Quantity:      quantity,
			PreviousStock: item.StockQuantity,
			NewStock:      newQuantity,
			Notes:         notes,
			UserID:        userID,
		}
		if err := s.Repo.CreateMovement(tx, &m); err != nil {
			return err
		}
		res = MovementResult{PreviousStock: item.StockQuantity, NewStock: newQuantity}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		return nil, apperr.Storage(err)
	}
	return &res, nil
}

func (s *InventoryService) History(itemID uint, limit int) ([]repository.MovementRow, error) {
	return s.Repo.ListMovements(itemID, limit)
}

func (s *InventoryService) ListTracked() ([]repository.InventoryItem, error) {
	return s.Repo.ListTracked()
}

func (s *InventoryService) LowStock() ([]repository.InventoryItem, error) {
	return s.Repo.ListLowStock()
}

func (s *InventoryService) UpdateItemSettings(itemID uint, threshold *int, track *bool) error {
	if threshold == nil && track == nil {
		return apperr.Validation("no settings provided")
	}
	affected, err := s.Repo.UpdateItemSettings(itemID, threshold, track)
	if err != nil {
		return apperr.Storage(err)
	}
	if affected == 0 {
		return apperr.NotFoundf("menu item %d", itemID)
	}
	return nil
}
