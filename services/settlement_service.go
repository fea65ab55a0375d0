package services

import (
	"fmt"
	"log"

	"pos-backend/entity"
	"pos-backend/repository"
)

// SettlementService is the glue between order completion and the
// inventory ledger: one sale movement per stock-tracked order line.
type SettlementService struct {
	Orders *repository.OrderRepository
	Items  *repository.InventoryRepository
	Ledger *InventoryService
}

func NewSettlementService(orders *repository.OrderRepository, items *repository.InventoryRepository, ledger *InventoryService) *SettlementService {
	return &SettlementService{Orders: orders, Items: items, Ledger: ledger}
}

// DeductForOrder applies one sale movement per line whose item tracks
// stock. Best effort by design: a failing line is logged and skipped, the
// lines already deducted stay deducted, and the return value only says
// whether every line went through. Callers must not re-invoke it for an
// order that already settled; the order service's completion guard is
// what makes settlement fire at most once.
func (s *SettlementService) DeductForOrder(orderID uint, actingUser *uint) bool {
	lines, err := s.Orders.GetOrderItems(orderID)
	if err != nil {
		log.Printf("settlement: load lines for order %d: %v", orderID, err)
		return false
	}

	ref := fmt.Sprintf("%d", orderID)
	if order, err := s.Orders.GetOrder(orderID); err == nil {
		ref = order.OrderNumber
	}

	ok := true
	for _, line := range lines {
		item, err := s.Items.GetItemStock(s.Items.DB, line.MenuItemID)
		if err != nil {
			log.Printf("settlement: order %s item %d lookup: %v", ref, line.MenuItemID, err)
			ok = false
			continue
		}
		if !item.TrackStock {
			continue
		}
		_, err = s.Ledger.ApplyMovement(line.MenuItemID, entity.MovementSale, line.Quantity, "Order: "+ref, actingUser, ref)
		if err != nil {
			log.Printf("settlement: order %s item %d deduct: %v", ref, line.MenuItemID, err)
			ok = false
		}
	}
	return ok
}
