package services

import (
	"testing"

	"pos-backend/entity"
	"pos-backend/pkg/apperr"
	"pos-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPeriodService(ts *testServices) *WorkPeriodService {
	return NewWorkPeriodService(repository.NewWorkPeriodRepository(ts.DB))
}

func TestWorkPeriodLifecycle(t *testing.T) {
	ts := newTestServices(t)
	periods := newPeriodService(ts)

	p, err := periods.Start("Sara", 200)
	require.NoError(t, err)
	assert.Equal(t, entity.WorkPeriodActive, p.Status)
	assert.Equal(t, 200.0, p.OpeningCash)

	active, err := periods.Active()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, p.ID, active.ID)

	closed, err := periods.End(p.ID, 350)
	require.NoError(t, err)
	assert.Equal(t, entity.WorkPeriodClosed, closed.Status)
	assert.Equal(t, 350.0, closed.ClosingCash)
	require.NotNil(t, closed.EndTime)

	active, err = periods.Active()
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestWorkPeriodEndSumsCompletedSalesOnly(t *testing.T) {
	ts := newTestServices(t)
	periods := newPeriodService(ts)
	cat := seedCategory(t, ts.DB)
	item := seedItem(t, ts.DB, cat.ID, "Plate", 100, 5, true)

	p, err := periods.Start("", 0)
	require.NoError(t, err)
	assert.Equal(t, "Admin", p.OperatorName)

	completed, err := ts.Orders.Create(&CreateOrderReq{
		Total: 42.50,
		Items: []OrderLineIn{{MenuItemID: item.ID, ItemName: item.Name, Quantity: 1, Rate: 42.50}},
	})
	require.NoError(t, err)
	require.NoError(t, ts.Orders.UpdateStatus(completed.ID, entity.OrderStatusCompleted, nil))

	also, err := ts.Orders.Create(&CreateOrderReq{
		Total: 10.00,
		Items: []OrderLineIn{{MenuItemID: item.ID, ItemName: item.Name, Quantity: 1, Rate: 10.00}},
	})
	require.NoError(t, err)
	require.NoError(t, ts.Orders.UpdateStatus(also.ID, entity.OrderStatusCompleted, nil))

	// pending and cancelled orders contribute nothing
	_, err = ts.Orders.Create(&CreateOrderReq{
		Total: 99.00,
		Items: []OrderLineIn{{MenuItemID: item.ID, ItemName: item.Name, Quantity: 1, Rate: 99.00}},
	})
	require.NoError(t, err)
	cancelled, err := ts.Orders.Create(&CreateOrderReq{
		Total: 15.00,
		Items: []OrderLineIn{{MenuItemID: item.ID, ItemName: item.Name, Quantity: 1, Rate: 15.00}},
	})
	require.NoError(t, err)
	require.NoError(t, ts.Orders.UpdateStatus(cancelled.ID, entity.OrderStatusCancelled, nil))

	closed, err := periods.End(p.ID, 0)
	require.NoError(t, err)
	assert.InDelta(t, 52.50, closed.TotalSales, 0.001)
}

func TestWorkPeriodEndNotFound(t *testing.T) {
	ts := newTestServices(t)
	periods := newPeriodService(ts)
	_, err := periods.End(77, 0)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
