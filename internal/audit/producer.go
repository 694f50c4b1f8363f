package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer wraps the Kafka writer the relay publishes to.
type Producer struct {
	w *kafka.Writer
}

// NewProducer configures the writer for at-least-once delivery:
// - Hash + key: events for the same order land on the same partition.
// - RequireAll: wait for ISR acknowledgement to limit message loss.
// - MaxAttempts/timeouts: bound retries so the relay can back off itself.
func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			MaxAttempts:  5,
			WriteTimeout: 5 * time.Second,
			ReadTimeout:  5 * time.Second,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

// Close releases the writer.
func (p *Producer) Close() error { return p.w.Close() }

// Publish writes one audit event, keyed by order code so a consumer sees each
// order's history in publish order.
func (p *Producer) Publish(ctx context.Context, e Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.OrderCode),
		Value: b,
	})
}
