package order

import (
	"context"

	"retail-storage/feature/order/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store is the record-store backend for orders. Every operation provisions
// the table first and contains its own errors: failures are logged and
// reported as a sentinel, never propagated.
type Store struct {
	db     *gorm.DB
	table  string
	logger *zap.Logger
}

// NewStore creates a new order record store over the given table.
func NewStore(db *gorm.DB, table string, logger *zap.Logger) *Store {
	return &Store{db: db, table: table, logger: logger}
}

// EnsureTable creates the orders table if it is missing. Safe to call before
// every operation; the common path is a single existence check.
func (s *Store) EnsureTable(ctx context.Context) bool {
	db := s.db.WithContext(ctx)
	if db.Migrator().HasTable(s.table) {
		return true
	}
	if err := db.Table(s.table).AutoMigrate(&models.OrderRecord{}); err != nil {
		s.logger.Error("Failed to create orders table",
			zap.String("table", s.table), zap.Error(err))
		return false
	}
	s.logger.Info("Orders table created", zap.String("table", s.table))
	return true
}

// Put inserts a new order record. The record's keys are regenerated from the
// order id before the write; a duplicate row key fails the insert. On failure
// the state is unchanged and no compensating action is taken.
func (s *Store) Put(ctx context.Context, record *models.OrderRecord) bool {
	if record.OrderID == "" {
		s.logger.Error("Refusing to save order without an id")
		return false
	}
	if !s.EnsureTable(ctx) {
		return false
	}

	record.SetKeys()

	if err := s.db.WithContext(ctx).Table(s.table).Create(record).Error; err != nil {
		s.logger.Error("Failed to save order",
			zap.String("order_id", record.OrderID), zap.Error(err))
		return false
	}

	s.logger.Info("Order saved", zap.String("order_id", record.OrderID))
	return true
}

// ListAll returns the full, materialized order snapshot. A read failure
// yields an empty slice; callers cannot tell it apart from an empty table.
func (s *Store) ListAll(ctx context.Context) []models.OrderRecord {
	if !s.EnsureTable(ctx) {
		return []models.OrderRecord{}
	}

	var orders []models.OrderRecord
	if err := s.db.WithContext(ctx).Table(s.table).Find(&orders).Error; err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return []models.OrderRecord{}
	}
	return orders
}
