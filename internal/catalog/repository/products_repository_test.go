package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candela/internal/domain"
	"candela/internal/errors"
	"candela/internal/testutil"
)

func newTestProduct(sku string) *domain.Product {
	return &domain.Product{
		SKU:          sku,
		Name:         "A19 LED Bulb 60W Equivalent",
		Description:  "Warm white, dimmable",
		Category:     "Bulbs",
		Subcategory:  "LED",
		BasePrice:    decimal.NewFromFloat(12.75),
		UnitsPerCase: 24,
		CasePrice:    decimal.NewFromFloat(280.00),
		SpecAttributes: domain.SpecAttributes{
			{Key: "wattage", Value: domain.NumberValue(9.5)},
			{Key: "dimmable", Value: domain.BoolValue(true)},
			{Key: "colorTemp", Value: domain.StringValue("2700K")},
		},
		Status: domain.ProductStatusAvailable,
	}
}

func TestProductsRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLProductsRepository(db)

	id, err := repo.Insert(context.Background(), newTestProduct("LED-A19-60"))
	require.NoError(t, err)

	got, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "LED-A19-60", got.SKU)
	assert.Equal(t, "Bulbs", got.Category)
	assert.Equal(t, 24, got.UnitsPerCase)
	assert.True(t, got.BasePrice.Equal(decimal.NewFromFloat(12.75)), "basePrice = %s", got.BasePrice)
	assert.Equal(t, domain.ProductStatusAvailable, got.Status)

	// spec attributes survive the JSON column round trip in order
	require.Len(t, got.SpecAttributes, 3)
	assert.Equal(t, "wattage", got.SpecAttributes[0].Key)
	assert.Equal(t, "dimmable", got.SpecAttributes[1].Key)
	assert.Equal(t, "colorTemp", got.SpecAttributes[2].Key)
}

func TestProductsRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLProductsRepository(db)

	_, err := repo.FindByID(context.Background(), 9999)
	assert.Error(t, err)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestProductsRepository_FindAssignedByClient(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	products := NewMySQLProductsRepository(db)
	assignments := NewMySQLAssignmentsRepository(db)

	res, err := db.Exec(`INSERT INTO Clients (name, contactEmail) VALUES ('Acme Lighting', 'buyer@acme.test')`)
	require.NoError(t, err)
	cid64, err := res.LastInsertId()
	require.NoError(t, err)
	clientID := int(cid64)

	assignedID, err := products.Insert(context.Background(), newTestProduct("LED-A19-60"))
	require.NoError(t, err)

	disabled := newTestProduct("LED-A19-100")
	disabled.Status = domain.ProductStatusDisabled
	disabledID, err := products.Insert(context.Background(), disabled)
	require.NoError(t, err)

	// a third product stays unassigned
	_, err = products.Insert(context.Background(), newTestProduct("LED-BR30-65"))
	require.NoError(t, err)

	override := decimal.NewFromFloat(10.99)
	require.NoError(t, assignments.Upsert(context.Background(), domain.ProductAssignment{
		ClientID:      clientID,
		ProductID:     assignedID,
		PriceOverride: &override,
	}))
	require.NoError(t, assignments.Upsert(context.Background(), domain.ProductAssignment{
		ClientID:  clientID,
		ProductID: disabledID,
	}))

	got, err := products.FindAssignedByClient(context.Background(), clientID, "", "")
	require.NoError(t, err)
	require.Len(t, got, 1, "disabled and unassigned products must be excluded")

	assert.Equal(t, assignedID, got[0].Product.ID)
	require.NotNil(t, got[0].PriceOverride)
	assert.True(t, got[0].PriceOverride.Equal(override), "override = %s", got[0].PriceOverride)
	assert.True(t, got[0].EffectivePrice().Equal(override))
}

func TestProductsRepository_FindAssignedByIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	products := NewMySQLProductsRepository(db)
	assignments := NewMySQLAssignmentsRepository(db)

	res, err := db.Exec(`INSERT INTO Clients (name, contactEmail) VALUES ('Acme Lighting', 'buyer@acme.test')`)
	require.NoError(t, err)
	cid64, err := res.LastInsertId()
	require.NoError(t, err)
	clientID := int(cid64)

	var ids []int
	for i := 0; i < 3; i++ {
		id, err := products.Insert(context.Background(), newTestProduct(fmt.Sprintf("LED-T8-%d", i)))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	// only the first two are assigned
	for _, id := range ids[:2] {
		require.NoError(t, assignments.Upsert(context.Background(), domain.ProductAssignment{
			ClientID:  clientID,
			ProductID: id,
		}))
	}

	got, err := products.FindAssignedByIDs(context.Background(), clientID, ids)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	empty, err := products.FindAssignedByIDs(context.Background(), clientID, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
