package utils

import (
	"testing"

	"github.com/hungerbites/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func product(id uint, name string, price float64, stock int) *models.Product {
	return &models.Product{
		Model:    gorm.Model{ID: id},
		Name:     name,
		Price:    price,
		Stock:    stock,
		IsActive: true,
	}
}

func TestBuildOrderItems(t *testing.T) {
	products := map[uint]*models.Product{
		1: product(1, "Masala Peanuts", 120, 10),
		2: product(2, "Banana Chips", 80.50, 5),
	}

	t.Run("builds snapshot with server-side prices", func(t *testing.T) {
		items, total, err := BuildOrderItems([]OrderItemRequest{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 3},
		}, products)
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "Masala Peanuts", items[0].Name)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, 120.0, items[0].Price)
		assert.InDelta(t, 2*120+3*80.50, total, 0.001)
	})

	t.Run("unknown product fails", func(t *testing.T) {
		_, _, err := BuildOrderItems([]OrderItemRequest{{ProductID: 99, Quantity: 1}}, products)
		require.Error(t, err)

		var missing *MissingProductError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, uint(99), missing.ProductID)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("inactive product treated as missing", func(t *testing.T) {
		inactive := product(3, "Discontinued", 50, 10)
		inactive.IsActive = false
		withInactive := map[uint]*models.Product{3: inactive}

		_, _, err := BuildOrderItems([]OrderItemRequest{{ProductID: 3, Quantity: 1}}, withInactive)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("insufficient stock fails with availability", func(t *testing.T) {
		_, _, err := BuildOrderItems([]OrderItemRequest{{ProductID: 2, Quantity: 6}}, products)
		require.Error(t, err)

		var stockErr *StockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, uint(2), stockErr.ProductID)
		assert.Equal(t, 5, stockErr.Available)
		assert.Equal(t, 6, stockErr.Requested)
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("quantity equal to stock passes", func(t *testing.T) {
		items, _, err := BuildOrderItems([]OrderItemRequest{{ProductID: 2, Quantity: 5}}, products)
		require.NoError(t, err)
		assert.Equal(t, 5, items[0].Quantity)
	})
}
