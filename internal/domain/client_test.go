package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductAssignment_EffectivePrice_WithOverride(t *testing.T) {
	override := decimal.NewFromFloat(7.25)
	assignment := ProductAssignment{
		ClientID:      1,
		ProductID:     10,
		PriceOverride: &override,
	}

	price := assignment.EffectivePrice(decimal.NewFromFloat(9.99))

	assert.True(t, price.Equal(override))
}

func TestProductAssignment_EffectivePrice_WithoutOverride(t *testing.T) {
	assignment := ProductAssignment{
		ClientID:  1,
		ProductID: 10,
	}

	base := decimal.NewFromFloat(9.99)
	assert.True(t, assignment.EffectivePrice(base).Equal(base))
}

func TestUser_CanAccessClient(t *testing.T) {
	clientID := 5

	owner := User{ID: "o1", Role: RoleOwner}
	assert.True(t, owner.IsOwner())
	assert.True(t, owner.CanAccessClient(5))
	assert.True(t, owner.CanAccessClient(99))

	clientUser := User{ID: "c1", Role: RoleClient, ClientID: &clientID}
	assert.False(t, clientUser.IsOwner())
	assert.True(t, clientUser.CanAccessClient(5))
	assert.False(t, clientUser.CanAccessClient(6))

	orphan := User{ID: "c2", Role: RoleClient}
	assert.False(t, orphan.CanAccessClient(5))
}
