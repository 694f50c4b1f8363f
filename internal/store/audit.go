package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/model"
)

// AppendAuditEntry inserts one audit row. Idempotent: a replayed event hits
// the unique index on event_id and is treated as already written.
func (s *Store) AppendAuditEntry(ctx context.Context, entry model.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.WithContext(ctx).Create(&entry).Error
	if err != nil && !errorsLikeUnique(err) {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

// OrderAudit returns an order's persisted audit history, oldest first.
func (s *Store) OrderAudit(ctx context.Context, orderID uint) ([]model.AuditEntry, error) {
	var entries []model.AuditEntry
	err := s.db.WithContext(ctx).Where("order_id = ?", orderID).Order("at ASC, id ASC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func errorsLikeUnique(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "UNIQUE") || strings.Contains(s, "unique")
}
