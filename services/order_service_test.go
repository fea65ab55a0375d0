package services

import (
	"fmt"
	"testing"

	"pos-backend/entity"
	"pos-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineFor(item entity.MenuItem, qty int) OrderLineIn {
	return OrderLineIn{MenuItemID: item.ID, ItemName: item.Name, Quantity: qty, Rate: item.Price}
}

func TestCreateGeneratesSequentialNumbers(t *testing.T) {
	ts := newTestServices(t)
	cat := seedCategory(t, ts.DB)
	item := seedItem(t, ts.DB, cat.ID, "Burger", 100, 10, true)

	for i := 1; i <= 3; i++ {
		out, err := ts.Orders.Create(&CreateOrderReq{
			OrderType: entity.OrderTypeTakeAway,
			Items:     []OrderLineIn{lineFor(item, 1)},
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("OD-%03d", i), out.OrderNumber)
		assert.Equal(t, fmt.Sprintf("INV-%04d", i), out.BillNumber)
	}
}

func TestCreateKeepsExplicitNumbers(t *testing.T) {
	ts := newTestServices(t)
	cat := seedCategory(t, ts.DB)
	item := seedItem(t, ts.DB, cat.ID, "Burger", 100, 10, true)

	out, err := ts.Orders.Create(&CreateOrderReq{
		OrderNumber: "OD-900",
		BillNumber:  "INV-0900",
		Items:       []OrderLineIn{lineFor(item, 2)},
	})
	require.NoError(t, err)
	assert.Equal(t, "OD-900", out.OrderNumber)
	assert.Equal(t, "INV-0900", out.BillNumber)
}

func TestCreateValidation(t *testing.T) {
	ts := newTestServices(t)
	cat := seedCategory(t, ts.DB)
	item := seedItem(t, ts.DB, cat.ID, "Burger", 100, 10, true)

	_, err := ts.Orders.Create(&CreateOrderReq{Items: nil})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = ts.Orders.Create(&CreateOrderReq{
		Items: []OrderLineIn{lineFor(item, 0)},
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	var count int64
	ts.DB.Model(&entity.Order{}).Count(&count)
	assert.Zero(t, count, "no order may be persisted on validation failure")
}

func TestCreateAtomicOnLineFailure(t *testing.T) {
	ts := newTestServices(t)
	cat := seedCategory(t, ts.DB)
	item := seedItem(t, ts.DB, cat.ID, "Burger", 100, 10, true)

	// force the line insert to fail after the header write
	require.NoError(t, ts.DB.Migrator().DropTable(&entity.OrderItem{}))

	_, err := ts.Orders.Create(&CreateOrderReq{
		Items: []OrderLineIn{lineFor(item, 1)},
	})
	require.ErrorIs(t, err, apperr.ErrStorage)

	var count int64
	ts.DB.Model(&entity.Order{}).Count(&count)
	assert.Zero(t, count, "header must roll back with its lines")
}

func TestUpdateStatusNotFound(t *testing.T) {
	ts := newTestServices(t)
	err := ts.Orders.UpdateStatus(42, entity.OrderStatusCompleted, nil)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCompletionDeductsExactlyOnce(t *testing.T) {
	ts := newTestServices(t)
	cat := seedCategory(t, ts.DB)
	item := seedItem(t, ts.DB, cat.ID, "Shawarma", 10, 5, true)

	out, err := ts.Orders.Create(&CreateOrderReq{
		Items: []OrderLineIn{lineFor(item, 4)},
	})
	require.NoError(t, err)

	require.NoError(t, ts.Orders.UpdateStatus(out.ID, entity.OrderStatusCompleted, nil))
	assert.Equal(t, 6, stockOf(t, ts.DB, item.ID))
	require.Len(t, movementsFor(t, ts.DB, item.ID), 1)

	// re-completing is a harmless re-write, never a second deduction
	require.NoError(t, ts.Orders.UpdateStatus(out.ID, entity.OrderStatusCompleted, nil))
	assert.Equal(t, 6, stockOf(t, ts.DB, item.ID))
	assert.Len(t, movementsFor(t, ts.DB, item.ID), 1)
}

func TestNonCompletionTransitionHasNoStockEffect(t *testing.T) {
	ts := newTestServices(t)
	cat := seedCategory(t, ts.DB)
	item := seedItem(t, ts.DB, cat.ID, "Shawarma", 10, 5, true)

	out, err := ts.Orders.Create(&CreateOrderReq{
		Items: []OrderLineIn{lineFor(item, 4)},
	})
	require.NoError(t, err)

	require.NoError(t, ts.Orders.UpdateStatus(out.ID, entity.OrderStatusCancelled, nil))
	assert.Equal(t, 10, stockOf(t, ts.DB, item.ID))
	assert.Empty(t, movementsFor(t, ts.DB, item.ID))
}

func TestCompletionEndToEnd(t *testing.T) {
	ts := newTestServices(t)
	cat := seedCategory(t, ts.DB)
	itemA := seedItem(t, ts.DB, cat.ID, "Item A", 10, 5, true)

	first, err := ts.Orders.Create(&CreateOrderReq{
		Items: []OrderLineIn{{MenuItemID: itemA.ID, ItemName: itemA.Name, Quantity: 4, Rate: 12.00}},
	})
	require.NoError(t, err)
	require.NoError(t, ts.Orders.UpdateStatus(first.ID, entity.OrderStatusCompleted, nil))

	assert.Equal(t, 6, stockOf(t, ts.DB, itemA.ID))
	moves := movementsFor(t, ts.DB, itemA.ID)
	require.Len(t, moves, 1)
	assert.Equal(t, entity.MovementSale, moves[0].MovementType)
	assert.Equal(t, 4, moves[0].Quantity)
	assert.Equal(t, 10, moves[0].PreviousStock)
	assert.Equal(t, 6, moves[0].NewStock)
	assert.Equal(t, first.OrderNumber, moves[0].ReferenceID)
	assert.Equal(t, "Order: "+first.OrderNumber, moves[0].Notes)

	low, err := ts.Inventory.LowStock()
	require.NoError(t, err)
	assert.Empty(t, low, "6 > threshold 5, not low yet")

	second, err := ts.Orders.Create(&CreateOrderReq{
		Items: []OrderLineIn{{MenuItemID: itemA.ID, ItemName: itemA.Name, Quantity: 2, Rate: 12.00}},
	})
	require.NoError(t, err)
	require.NoError(t, ts.Orders.UpdateStatus(second.ID, entity.OrderStatusCompleted, nil))

	assert.Equal(t, 4, stockOf(t, ts.DB, itemA.ID))
	low, err = ts.Inventory.LowStock()
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, itemA.ID, low[0].ID)
}

func TestDetailReturnsSnapshotLines(t *testing.T) {
	ts := newTestServices(t)
	cat := seedCategory(t, ts.DB)
	item := seedItem(t, ts.DB, cat.ID, "Wrap", 20, 5, true)

	out, err := ts.Orders.Create(&CreateOrderReq{
		Items: []OrderLineIn{{MenuItemID: item.ID, ItemName: item.Name, Quantity: 3, Rate: 9.50, Notes: "no onions"}},
	})
	require.NoError(t, err)

	// catalog changes must not rewrite the order line
	require.NoError(t, ts.DB.Model(&entity.MenuItem{}).Where("id = ?", item.ID).
		Updates(map[string]any{"name": "Renamed Wrap", "price": 99.0}).Error)

	detail, err := ts.Orders.Detail(out.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "Wrap", detail.Items[0].ItemName)
	assert.Equal(t, 9.50, detail.Items[0].Rate)
	assert.Equal(t, "no onions", detail.Items[0].Notes)
}
