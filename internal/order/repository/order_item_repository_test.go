package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candela/internal/domain"
	"candela/internal/testutil"
)

func TestOrderItemRepository_InsertAndFindByOrderID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	orders := NewMySQLOrderRepository(db)
	items := NewMySQLOrderItemRepository(db)

	orderID := insertTestOrder(t, orders, pendingOrder(7))

	tx, err := db.Begin()
	require.NoError(t, err)

	item := domain.OrderItem{
		OrderID:     orderID,
		Location:    "Warehouse A",
		ProductID:   11,
		ItemCode:    "LED-A19-60",
		Description: "A19 LED Bulb 60W Equivalent",
		UnitPrice:   decimal.NewFromFloat(12.75),
		Quantity:    2,
		Subtotal:    decimal.NewFromFloat(25.50),
	}
	_, err = items.Insert(context.Background(), tx, item)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	got, err := items.FindByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, orderID, got[0].OrderID)
	assert.Equal(t, 11, got[0].ProductID)
	assert.Equal(t, "LED-A19-60", got[0].ItemCode)
	assert.Equal(t, 2, got[0].Quantity)
	assert.True(t, got[0].UnitPrice.Equal(decimal.NewFromFloat(12.75)), "unitPrice = %s", got[0].UnitPrice)
	assert.True(t, got[0].Subtotal.Equal(decimal.NewFromFloat(25.50)), "subtotal = %s", got[0].Subtotal)
}

func TestOrderItemRepository_FindByOrderID_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	orders := NewMySQLOrderRepository(db)
	items := NewMySQLOrderItemRepository(db)

	orderID := insertTestOrder(t, orders, pendingOrder(7))

	got, err := items.FindByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Empty(t, got)
}
