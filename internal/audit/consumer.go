package audit

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/model"
	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/store"
)

// Consumer reads audit events off Kafka and persists them as audit history
// rows, giving status-change notes a durable destination.
type Consumer struct {
	r  *kafka.Reader
	st *store.Store
}

func NewConsumer(brokers []string, topic, groupID string, st *store.Store) *Consumer {
	return &Consumer{
		r: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MinBytes: 1e3,
			MaxBytes: 1e6,
		}),
		st: st,
	}
}

func (c *Consumer) Close() error { return c.r.Close() }

func (c *Consumer) Run(ctx context.Context) {
	for {
		m, err := c.r.ReadMessage(ctx)
		if err != nil {
			return // ctx cancelled or connection gone
		}

		var e Event
		if err := json.Unmarshal(m.Value, &e); err != nil {
			log.Printf("audit consumer unmarshal: %v", err)
			continue
		}
		if err := e.Validate(); err != nil {
			log.Printf("audit consumer skip event: %v", err)
			continue
		}

		entry := model.AuditEntry{
			EventID:    e.ID,
			Kind:       string(e.Kind),
			OrderID:    e.OrderID,
			OrderCode:  e.OrderCode,
			FromStatus: e.From,
			ToStatus:   e.To,
			Note:       e.Note,
			At:         time.UnixMilli(e.At),
		}
		// AppendAuditEntry absorbs replays via the event_id unique index.
		if err := c.st.AppendAuditEntry(ctx, entry); err != nil {
			log.Printf("audit consumer persist: %v", err)
		}
	}
}
