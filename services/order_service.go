package services

import (
	"errors"
	"fmt"
	"sync"

	"pos-backend/entity"
	"pos-backend/pkg/apperr"
	"pos-backend/repository"

	"gorm.io/gorm"
)

// OrderEvent is pushed to connected displays when an order is created or
// changes status.
type OrderEvent struct {
	OrderID     uint   `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	Status      string `json:"status"`
}

// OrderNotifier fans order events out to live listeners (ws hub).
type OrderNotifier interface {
	Publish(OrderEvent)
}

type OrderService struct {
	DB         *gorm.DB
	Repo       *repository.OrderRepository
	Settlement *SettlementService
	Notifier   OrderNotifier

	// serializes creation so the count-derived order/bill numbers
	// cannot race between concurrent requests
	createMu sync.Mutex
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, settlement *SettlementService) *OrderService {
	return &OrderService{DB: db, Repo: repo, Settlement: settlement}
}

// ----- DTOs from Controller -----

type OrderLineIn struct {
	MenuItemID uint    `json:"menuItemId" binding:"required"`
	ItemName   string  `json:"itemName" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required,min=1"`
	Rate       float64 `json:"rate"`
	Notes      string  `json:"notes"`
}

type CreateOrderReq struct {
	OrderType    string        `json:"orderType"`
	OrderNumber  string        `json:"orderNumber"`
	BillNumber   string        `json:"billNumber"`
	CustomerName string        `json:"customerName"`
	ContactNo    string        `json:"contactNo"`
	PaymentMode  string        `json:"paymentMode"`
	Subtotal     float64       `json:"subtotal"`
	Tax          float64       `json:"tax"`
	Total        float64       `json:"total"`
	Status       string        `json:"status"`
	Notes        string        `json:"notes"`
	Items        []OrderLineIn `json:"items" binding:"required,min=1,dive"`
}

type CreateOrderRes struct {
	ID          uint   `json:"id"`
	OrderNumber string `json:"orderNumber"`
	BillNumber  string `json:"billNumber"`
}

// Create persists the order and all its lines as one unit. Order and bill
// numbers are derived from row counts inside the same transaction; the
// mutex keeps the sequence gap-free under concurrent requests.
func (s *OrderService) Create(req *CreateOrderReq) (*CreateOrderRes, error) {
	if len(req.Items) == 0 {
		return nil, apperr.Validation("order must contain at least one item")
	}
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return nil, apperr.Validation("item quantity must be at least 1")
		}
	}

	s.createMu.Lock()
	defer s.createMu.Unlock()

	var out CreateOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		orderNumber := req.OrderNumber
		if orderNumber == "" {
			count, err := s.Repo.CountOrders(tx)
			if err != nil {
				return err
			}
			orderNumber = fmt.Sprintf("OD-%03d", count+1)
		}
		billNumber := req.BillNumber
		if billNumber == "" {
			count, err := s.Repo.CountBilled(tx)
			if err != nil {
				return err
			}
			billNumber = fmt.Sprintf("INV-%04d", count+1)
		}

		orderType := req.OrderType
		if orderType == "" {
			orderType = entity.OrderTypeDineIn
		}
		paymentMode := req.PaymentMode
		if paymentMode == "" {
			paymentMode = "Cash"
		}
		status := req.Status
		if status == "" {
			status = entity.OrderStatusPending
		}

		order := entity.Order{
			OrderNumber:  orderNumber,
			BillNumber:   &billNumber,
			OrderType:    orderType,
			CustomerName: req.CustomerName,
			ContactNo:    req.ContactNo,
			PaymentMode:  paymentMode,
			Subtotal:     req.Subtotal,
			Tax:          req.Tax,
			Total:        req.Total,
			Status:       status,
			Notes:        req.Notes,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range req.Items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				ItemName:   it.ItemName,
				Quantity:   it.Quantity,
				Rate:       it.Rate,
				Notes:      it.Notes,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		out = CreateOrderRes{ID: order.ID, OrderNumber: orderNumber, BillNumber: billNumber}
		return nil
	})
	if err != nil {
		return nil, apperr.Storage(err)
	}

	s.notify(OrderEvent{OrderID: out.ID, OrderNumber: out.OrderNumber, Status: entity.OrderStatusPending})
	return &out, nil
}

// UpdateStatus writes the new status and, only on a transition into
// completed from a non-completed state, triggers stock settlement.
// Re-completing an already completed order re-writes the status but
// deducts nothing.
func (s *OrderService) UpdateStatus(orderID uint, status string, actingUser *uint) error {
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("order %d", orderID)
		}
		return apperr.Storage(err)
	}
	previous := order.Status

	if err := s.Repo.UpdateStatus(orderID, status); err != nil {
		return apperr.Storage(err)
	}

	if status == entity.OrderStatusCompleted && previous != entity.OrderStatusCompleted {
		s.Settlement.DeductForOrder(orderID, actingUser)
	}

	s.notify(OrderEvent{OrderID: order.ID, OrderNumber: order.OrderNumber, Status: status})
	return nil
}

// ----- Read side -----

func (s *OrderService) List(f repository.OrderFilters) ([]entity.Order, error) {
	return s.Repo.ListOrders(f)
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("order %d", orderID)
		}
		return nil, apperr.Storage(err)
	}
	items, err := s.Repo.GetOrderItems(orderID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return &OrderDetail{Order: *order, Items: items}, nil
}

func (s *OrderService) notify(ev OrderEvent) {
	if s.Notifier != nil {
		s.Notifier.Publish(ev)
	}
}
