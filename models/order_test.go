package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusDelivered, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusProcessing, false},
		{OrderStatusDelivered, OrderStatusShipped, false},
		{OrderStatusDelivered, OrderStatusProcessing, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusProcessing, false},
		{OrderStatusCancelled, OrderStatusDelivered, false},
		{OrderStatusProcessing, OrderStatusProcessing, false},
		{"Unknown", OrderStatusShipped, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestValidTransitions(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled},
		ValidTransitions(OrderStatusProcessing))
	assert.Empty(t, ValidTransitions(OrderStatusDelivered))
	assert.Empty(t, ValidTransitions(OrderStatusCancelled))
}

func TestMarkDelivered(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("settles payment and stamps delivery time", func(t *testing.T) {
		order := Order{Status: OrderStatusShipped, PaymentStatus: PaymentStatusPending}

		assert.True(t, order.MarkDelivered(now))
		assert.Equal(t, OrderStatusDelivered, order.Status)
		assert.Equal(t, PaymentStatusPaid, order.PaymentStatus)
		require.NotNil(t, order.DeliveredAt)
		assert.Equal(t, now, *order.DeliveredAt)
	})

	t.Run("replay is a no-op", func(t *testing.T) {
		order := Order{Status: OrderStatusShipped, PaymentStatus: PaymentStatusPending}
		require.True(t, order.MarkDelivered(now))

		later := now.Add(time.Hour)
		assert.False(t, order.MarkDelivered(later))
		assert.Equal(t, now, *order.DeliveredAt)
	})

	t.Run("cancelled order is never delivered", func(t *testing.T) {
		order := Order{Status: OrderStatusCancelled, PaymentStatus: PaymentStatusPending}

		assert.False(t, order.MarkDelivered(now))
		assert.Equal(t, OrderStatusCancelled, order.Status)
		assert.Equal(t, PaymentStatusPending, order.PaymentStatus)
		assert.Nil(t, order.DeliveredAt)
	})
}

func TestIsValidOrderStatus(t *testing.T) {
	for _, s := range ValidOrderStatuses {
		assert.True(t, IsValidOrderStatus(s))
	}
	assert.False(t, IsValidOrderStatus("processing")) // statuses are case sensitive
	assert.False(t, IsValidOrderStatus("Returned"))
}
