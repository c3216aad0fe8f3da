// Package database manages the in-process data store. The store is a
// SQLite database living entirely in memory: it is created and
// migrated at startup, seeded once, and discarded when the process
// exits. Nothing is persisted across restarts.
package database

import (
	"fmt"
	"sync/atomic"

	"github.com/Frenzy29-SL/budget-vision-insights/internal/logger"
	"github.com/Frenzy29-SL/budget-vision-insights/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// allModels is the list of all GORM models migrated into the store.
var allModels = []interface{}{
	&models.Category{},
	&models.Transaction{},
	&models.Budget{},
	&models.Goal{},
	&models.Profile{},
	&models.FinancialInsight{},
}

// Manager owns the in-memory store connection.
type Manager struct {
	db *gorm.DB
}

// storeSeq distinguishes the memory databases of multiple managers in
// one process.
var storeSeq atomic.Int64

// NewManager opens a fresh in-memory store and migrates the schema.
// The store uses a shared-cache DSN with a single connection: every
// pooled connection must see the same memory database, and the single
// connection serializes all writes.
func NewManager() (*Manager, error) {
	dsn := fmt.Sprintf("file:store%d?mode=memory&cache=shared", storeSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(allModels...); err != nil {
		return nil, fmt.Errorf("failed to migrate store schema: %w", err)
	}

	logger.Get().Info("In-memory store ready")
	return &Manager{db: db}, nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the underlying connection.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying DB: %w", err)
	}
	return sqlDB.Close()
}
