// Package audit records order mutations as events. The hot path appends to a
// Redis Stream outbox; a relay ships the stream to Kafka for downstream
// reporting. Recording is best-effort by design: the store write has already
// committed, so a failed append is logged and never fails the request.
package audit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/model"
)

// Kind discriminates audit events.
type Kind string

const (
	KindOrderCreated       Kind = "order.created"
	KindOrderStatusChanged Kind = "order.status_changed"
)

// Event is one recorded order mutation. From/To are empty for creations; Note
// carries the free-text note attached to a status change, which otherwise has
// no destination in the data model.
type Event struct {
	ID        string `json:"event_id"`
	Kind      Kind   `json:"kind"`
	OrderID   uint   `json:"order_id"`
	OrderCode string `json:"order_code"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Note      string `json:"note,omitempty"`
	At        int64  `json:"at"` // unix millis
}

// OrderCreated builds the event for a freshly created order.
func OrderCreated(o model.Order, note string) Event {
	return Event{
		ID:        uuid.New().String(),
		Kind:      KindOrderCreated,
		OrderID:   o.ID,
		OrderCode: o.Code,
		To:        string(o.Status),
		Note:      note,
		At:        time.Now().UnixMilli(),
	}
}

// OrderStatusChanged builds the event for a status transition.
func OrderStatusChanged(o model.Order, from model.OrderStatus, note string) Event {
	return Event{
		ID:        uuid.New().String(),
		Kind:      KindOrderStatusChanged,
		OrderID:   o.ID,
		OrderCode: o.Code,
		From:      string(from),
		To:        string(o.Status),
		Note:      note,
		At:        time.Now().UnixMilli(),
	}
}

// Validate does minimal field checks so consumers never see dirty events.
func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event_id is required")
	}
	if e.Kind != KindOrderCreated && e.Kind != KindOrderStatusChanged {
		return fmt.Errorf("unknown kind %q", e.Kind)
	}
	if e.OrderID == 0 {
		return fmt.Errorf("order_id is required")
	}
	if e.OrderCode == "" {
		return fmt.Errorf("order_code is required")
	}
	if e.At <= 0 {
		return fmt.Errorf("at must be > 0")
	}
	return nil
}

// streamValues flattens the event into Redis Stream fields.
func (e Event) streamValues() map[string]any {
	return map[string]any{
		"event_id":   e.ID,
		"kind":       string(e.Kind),
		"order_id":   strconv.FormatUint(uint64(e.OrderID), 10),
		"order_code": e.OrderCode,
		"from":       e.From,
		"to":         e.To,
		"note":       e.Note,
		"at":         strconv.FormatInt(e.At, 10),
	}
}

// Recorder appends audit events somewhere durable enough for the demo.
type Recorder interface {
	Record(ctx context.Context, e Event) error
}
