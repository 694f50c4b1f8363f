// Package store is the authoritative in-memory record store. It keeps the
// demo dataset in a SQLite database opened on an in-memory DSN, so records
// live exactly as long as the process. Snapshot reads feed the query engine;
// mutations are serialized by a store-level mutex (single-writer discipline).
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/model"
	"github.com/ElbertWijaya/sumatra-jewelry-v2.0/internal/seed"
)

// Store owns the record collections for all three domains.
type Store struct {
	db *gorm.DB
	mu sync.Mutex
}

// Open connects to SQLite at dsn, migrates the schema and returns the store.
// The default DSN keeps everything in memory; pointing it at a file works too
// but is not what this service is built for.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}
	return New(db)
}

// New wraps an existing gorm handle, migrating the schema first.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&model.InventoryItem{}, &model.Order{}, &model.OrderItem{}, &model.Task{}, &model.AuditEntry{}); err != nil {
		return nil, fmt.Errorf("db migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Empty reports whether the store has not been seeded yet.
func (s *Store) Empty(ctx context.Context) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&model.InventoryItem{}).Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := s.db.WithContext(ctx).Model(&model.Order{}).Count(&n).Error; err != nil {
		return false, err
	}
	return n == 0, nil
}

// Seed materializes the deterministic dataset: invN stock items, orderN
// orders and taskN tasks, all derived from base (see internal/seed).
func (s *Store) Seed(ctx context.Context, invN, orderN, taskN int, base time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := seed.Inventory(invN, base)
	orders := seed.Orders(orderN, base)
	tasks := seed.Tasks(taskN, base)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(items) > 0 {
			if err := tx.CreateInBatches(&items, 50).Error; err != nil {
				return fmt.Errorf("seed inventory: %w", err)
			}
		}
		if len(orders) > 0 {
			if err := tx.CreateInBatches(&orders, 50).Error; err != nil {
				return fmt.Errorf("seed orders: %w", err)
			}
		}
		if len(tasks) > 0 {
			if err := tx.CreateInBatches(&tasks, 50).Error; err != nil {
				return fmt.Errorf("seed tasks: %w", err)
			}
		}
		return nil
	})
}

// Inventory returns the full stock snapshot in seed order.
func (s *Store) Inventory(ctx context.Context) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Tasks returns the full task snapshot in seed order.
func (s *Store) Tasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
