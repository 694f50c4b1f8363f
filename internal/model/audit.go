package model

import "time"

// AuditEntry is one persisted order-mutation event, written by the audit
// consumer once an event has made it through the outbox pipeline. EventID is
// unique so replayed deliveries collapse into a single row.
type AuditEntry struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	EventID    string    `gorm:"size:64;uniqueIndex;not null" json:"event_id"`
	Kind       string    `gorm:"size:32;not null" json:"kind"`
	OrderID    uint      `gorm:"not null;index" json:"order_id"`
	OrderCode  string    `gorm:"size:16;not null;index" json:"order_code"`
	FromStatus string    `gorm:"size:16" json:"from,omitempty"`
	ToStatus   string    `gorm:"size:16" json:"to,omitempty"`
	Note       string    `gorm:"size:255" json:"note,omitempty"`
	At         time.Time `json:"at"`
	CreatedAt  time.Time `json:"-"`
}

func (AuditEntry) TableName() string { return "audit_entries" }
