package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/model"
	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/seed"
)

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	created, err := s.CreateOrder(ctx, "Alice", []model.OrderItem{
		{Name: "Gold Ring", Price: 100000, Qty: 2},
	})
	require.NoError(t, err)
	require.Equal(t, "ORD-0076", created.Code)
	require.Equal(t, model.OrderDraft, created.Status)
	require.Equal(t, int64(200000), created.Total)
	require.NotZero(t, created.ID)

	// New orders list first.
	orders, err := s.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, seed.DefaultOrders+1)
	require.Equal(t, "ORD-0076", orders[0].Code)
	require.Equal(t, "ORD-0001", orders[1].Code)

	got, err := s.Order(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice", got.CustomerName)
	require.Len(t, got.Items, 1)
	require.Equal(t, "Gold Ring", got.Items[0].Name)

	second, err := s.CreateOrder(ctx, "Bob", []model.OrderItem{
		{Name: "Silver Chain", Price: 50000, Qty: 1},
	})
	require.NoError(t, err)
	require.Equal(t, "ORD-0077", second.Code)

	orders, err = s.Orders(ctx)
	require.NoError(t, err)
	require.Equal(t, "ORD-0077", orders[0].Code)
	require.Equal(t, "ORD-0076", orders[1].Code)
}

func TestCreateOrderValidation(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	item := model.OrderItem{Name: "Ring", Price: 1000, Qty: 1}
	cases := []struct {
		name     string
		customer string
		items    []model.OrderItem
	}{
		{"empty customer", "", []model.OrderItem{item}},
		{"blank customer", "   ", []model.OrderItem{item}},
		{"no items", "Alice", nil},
		{"unnamed item", "Alice", []model.OrderItem{{Price: 1000, Qty: 1}}},
		{"zero qty", "Alice", []model.OrderItem{{Name: "Ring", Price: 1000, Qty: 0}}},
		{"negative price", "Alice", []model.OrderItem{{Name: "Ring", Price: -1, Qty: 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreateOrder(ctx, tc.customer, tc.items)
			require.ErrorIs(t, err, model.ErrValidation)
		})
	}

	orders, err := s.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, seed.DefaultOrders)
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	// Order 4 seeds as draft.
	o, prev, err := s.UpdateOrderStatus(ctx, 4, model.OrderOngoing)
	require.NoError(t, err)
	require.Equal(t, model.OrderDraft, prev)
	require.Equal(t, model.OrderOngoing, o.Status)

	o, prev, err = s.UpdateOrderStatus(ctx, 4, model.OrderCompleted)
	require.NoError(t, err)
	require.Equal(t, model.OrderOngoing, prev)
	require.Equal(t, model.OrderCompleted, o.Status)

	// The change is persisted, not just returned.
	got, err := s.Order(ctx, 4)
	require.NoError(t, err)
	require.Equal(t, model.OrderCompleted, got.Status)

	// Completed orders cannot be cancelled.
	_, _, err = s.UpdateOrderStatus(ctx, 4, model.OrderCancelled)
	require.ErrorIs(t, err, model.ErrInvalidTransition)

	// Order 8 seeds as draft; skipping a stage is rejected.
	_, _, err = s.UpdateOrderStatus(ctx, 8, model.OrderCompleted)
	require.ErrorIs(t, err, model.ErrInvalidTransition)

	// Cancelling from draft is fine.
	o, prev, err = s.UpdateOrderStatus(ctx, 8, model.OrderCancelled)
	require.NoError(t, err)
	require.Equal(t, model.OrderDraft, prev)
	require.Equal(t, model.OrderCancelled, o.Status)
}

func TestUpdateOrderStatusTerminalReplay(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	// Order 3 seeds as cancelled; asking for cancelled again is a no-op.
	before, err := s.Order(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, model.OrderCancelled, before.Status)

	o, prev, err := s.UpdateOrderStatus(ctx, 3, model.OrderCancelled)
	require.NoError(t, err)
	require.Equal(t, model.OrderCancelled, prev)
	require.Equal(t, model.OrderCancelled, o.Status)
	require.Equal(t, before.UpdatedAt, o.UpdatedAt)

	// Same for completed (order 2 seeds as completed).
	o, prev, err = s.UpdateOrderStatus(ctx, 2, model.OrderCompleted)
	require.NoError(t, err)
	require.Equal(t, model.OrderCompleted, prev)
	require.Equal(t, model.OrderCompleted, o.Status)
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	_, _, err := s.UpdateOrderStatus(ctx, 9999, model.OrderOngoing)
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = s.Order(ctx, 9999)
	require.ErrorIs(t, err, model.ErrNotFound)
}
