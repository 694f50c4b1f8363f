package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/model"
	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/workflow"
)

// Orders returns the full order snapshot, newest created orders first, then
// seeded orders in seed order.
func (s *Store) Orders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := s.db.WithContext(ctx).Preload("Items").Order("pos ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Order looks up a single order by id.
func (s *Store) Order(ctx context.Context, id uint) (model.Order, error) {
	var o model.Order
	err := s.db.WithContext(ctx).Preload("Items").First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Order{}, fmt.Errorf("%w: order %d", model.ErrNotFound, id)
		}
		return model.Order{}, err
	}
	return o, nil
}

// CreateOrder validates the request, mints the next ORD-#### code and inserts
// the order with status draft at the front of the snapshot. Total is computed
// from the items, never taken from input. All-or-nothing: a failed insert
// leaves the store untouched.
func (s *Store) CreateOrder(ctx context.Context, customerName string, items []model.OrderItem) (model.Order, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return model.Order{}, fmt.Errorf("%w: customer name is required", model.ErrValidation)
	}
	if len(items) == 0 {
		return model.Order{}, fmt.Errorf("%w: at least one item is required", model.ErrValidation)
	}
	for i, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return model.Order{}, fmt.Errorf("%w: item %d has no name", model.ErrValidation, i+1)
		}
		if it.Price < 0 {
			return model.Order{}, fmt.Errorf("%w: item %d has a negative price", model.ErrValidation, i+1)
		}
		if it.Qty < 1 {
			return model.Order{}, fmt.Errorf("%w: item %d needs qty >= 1", model.ErrValidation, i+1)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	order := model.Order{
		CustomerName: customerName,
		Items:        items,
		Total:        model.ItemsTotal(items),
		Status:       model.OrderDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxID int64
		if err := tx.Model(&model.Order{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return err
		}
		var minPos int64
		if err := tx.Model(&model.Order{}).Select("COALESCE(MIN(pos), 1)").Scan(&minPos).Error; err != nil {
			return err
		}
		order.Code = fmt.Sprintf("ORD-%04d", maxID+1)
		order.Pos = minPos - 1
		return tx.Create(&order).Error
	})
	if err != nil {
		return model.Order{}, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// UpdateOrderStatus moves an order to the requested status after the
// lifecycle check, refreshing updatedAt. A no-op transition (terminal status
// requested again) returns the order unchanged. Returns the updated order and
// the status it moved from.
func (s *Store) UpdateOrderStatus(ctx context.Context, id uint, to model.OrderStatus) (model.Order, model.OrderStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.Order(ctx, id)
	if err != nil {
		return model.Order{}, "", err
	}
	from := o.Status

	if err := workflow.Step(from, to); err != nil {
		return model.Order{}, "", err
	}
	if from == to {
		return o, from, nil
	}

	o.Status = to
	o.UpdatedAt = time.Now()
	err = s.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).
		Updates(map[string]any{"status": to, "updated_at": o.UpdatedAt}).Error
	if err != nil {
		return model.Order{}, "", fmt.Errorf("update order status: %w", err)
	}
	return o, from, nil
}
