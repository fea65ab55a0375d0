package services

import (
	"testing"

	"pos-backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeductSkipsUntrackedItems(t *testing.T) {
	ts := newTestServices(t)
	cat := seedCategory(t, ts.DB)
	tracked := seedItem(t, ts.DB, cat.ID, "Tracked", 10, 5, true)
	untracked := seedItem(t, ts.DB, cat.ID, "Untracked", 10, 5, false)

	out, err := ts.Orders.Create(&CreateOrderReq{
		Items: []OrderLineIn{
			{MenuItemID: tracked.ID, ItemName: tracked.Name, Quantity: 2, Rate: 5},
			{MenuItemID: untracked.ID, ItemName: untracked.Name, Quantity: 3, Rate: 5},
		},
	})
	require.NoError(t, err)

	ok := ts.Settlement.DeductForOrder(out.ID, nil)
	assert.True(t, ok)

	assert.Equal(t, 8, stockOf(t, ts.DB, tracked.ID))
	assert.Equal(t, 10, stockOf(t, ts.DB, untracked.ID))
	assert.Empty(t, movementsFor(t, ts.DB, untracked.ID))
}

func TestDeductBestEffortOnMissingItem(t *testing.T) {
	ts := newTestServices(t)
	cat := seedCategory(t, ts.DB)
	item := seedItem(t, ts.DB, cat.ID, "Real Item", 10, 5, true)

	out, err := ts.Orders.Create(&CreateOrderReq{
		Items: []OrderLineIn{
			{MenuItemID: item.ID, ItemName: item.Name, Quantity: 2, Rate: 5},
			{MenuItemID: 9999, ItemName: "Ghost", Quantity: 1, Rate: 5},
		},
	})
	require.NoError(t, err)

	ok := ts.Settlement.DeductForOrder(out.ID, nil)
	assert.False(t, ok, "a missing line must be reported")
	assert.Equal(t, 8, stockOf(t, ts.DB, item.ID), "valid lines still settle")
}

func TestDeductStampsOrderReference(t *testing.T) {
	ts := newTestServices(t)
	cat := seedCategory(t, ts.DB)
	item := seedItem(t, ts.DB, cat.ID, "Kebab", 10, 5, true)

	user := entity.User{Username: "omar", PasswordHash: "x", FullName: "Omar A", Role: entity.RoleCashier, IsActive: true}
	require.NoError(t, ts.DB.Create(&user).Error)

	out, err := ts.Orders.Create(&CreateOrderReq{
		Items: []OrderLineIn{{MenuItemID: item.ID, ItemName: item.Name, Quantity: 1, Rate: 5}},
	})
	require.NoError(t, err)

	require.True(t, ts.Settlement.DeductForOrder(out.ID, &user.ID))

	moves := movementsFor(t, ts.DB, item.ID)
	require.Len(t, moves, 1)
	assert.Equal(t, out.OrderNumber, moves[0].ReferenceID)
	assert.Equal(t, "Order: "+out.OrderNumber, moves[0].Notes)
	require.NotNil(t, moves[0].UserID)
	assert.Equal(t, user.ID, *moves[0].UserID)
}

func TestDeductUnknownOrder(t *testing.T) {
	ts := newTestServices(t)
	// no lines to settle, nothing failed
	assert.True(t, ts.Settlement.DeductForOrder(4242, nil))
}
