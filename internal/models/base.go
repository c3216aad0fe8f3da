package models

import (
	"time"

	"github.com/Frenzy29-SL/budget-vision-insights/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all tables
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records unless the
// caller assigned an ID. UUIDv7 is time-ordered, so sorting by ID
// descending yields newest-insertion-first order for any collection.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
