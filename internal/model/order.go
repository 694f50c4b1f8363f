package model

import "time"

// OrderStatus tracks a customer order through the workshop.
type OrderStatus string

const (
	OrderDraft     OrderStatus = "draft"
	OrderOngoing   OrderStatus = "ongoing"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every OrderStatus in seed order.
var OrderStatuses = []OrderStatus{OrderDraft, OrderOngoing, OrderCompleted, OrderCancelled}

// OrderItem is one line of an order. Qty is always >= 1, Price >= 0.
type OrderItem struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	OrderID uint   `gorm:"not null;index" json:"-"`
	Name    string `gorm:"size:128;not null" json:"name"`
	Price   int64  `gorm:"not null" json:"price"`
	Qty     int    `gorm:"not null;default:1" json:"qty"`
}

func (OrderItem) TableName() string { return "order_items" }

// Order is a customer order. Total is derived from Items and recomputed on
// every mutation, never trusted from input.
//
// Pos is the snapshot sort key: seeded orders get ascending positions, newly
// created orders take min(pos)-1 so they list first (prepend semantics).
type Order struct {
	ID           uint        `gorm:"primarykey" json:"id"`
	Code         string      `gorm:"size:16;uniqueIndex;not null" json:"code"`
	CustomerName string      `gorm:"size:128;not null" json:"customer_name"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Total        int64       `gorm:"not null" json:"total"`
	Status       OrderStatus `gorm:"size:16;not null;index" json:"status"`
	Pos          int64       `gorm:"not null;index" json:"-"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

// ItemsTotal sums price*qty over the given lines.
func ItemsTotal(items []OrderItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.Price * int64(it.Qty)
	}
	return sum
}
