package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending ke processing", OrderStatusPending, OrderStatusProcessing, true},
		{"pending ke completed", OrderStatusPending, OrderStatusCompleted, true},
		{"pending ke canceled", OrderStatusPending, OrderStatusCanceled, true},
		{"processing ke completed", OrderStatusProcessing, OrderStatusCompleted, true},
		{"processing ke canceled", OrderStatusProcessing, OrderStatusCanceled, true},
		{"processing mundur ke pending", OrderStatusProcessing, OrderStatusPending, false},
		{"completed terminal", OrderStatusCompleted, OrderStatusCanceled, false},
		{"canceled terminal", OrderStatusCanceled, OrderStatusPending, false},
		{"canceled ke completed", OrderStatusCanceled, OrderStatusCompleted, false},
		{"status asing", "refunded", OrderStatusCompleted, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}

func TestIsValidOrderStatus(t *testing.T) {
	assert.True(t, IsValidOrderStatus(OrderStatusPending))
	assert.True(t, IsValidOrderStatus(OrderStatusCanceled))
	assert.False(t, IsValidOrderStatus("refunded"))
	assert.False(t, IsValidOrderStatus(""))
}

func TestOrderModel_Terminal(t *testing.T) {
	o := OrderModel{OrderStatus: OrderStatusPending}
	assert.True(t, o.IsPending())
	assert.False(t, o.IsTerminal())

	o.OrderStatus = OrderStatusCompleted
	assert.False(t, o.IsPending())
	assert.True(t, o.IsTerminal())
}
