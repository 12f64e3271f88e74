package models

import (
	"time"

	"budget/internal/uuid"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Amounts and saldo are JSON numbers on the wire, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Base contains common columns for all tables
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// All lists every persisted model, in creation order for schema migration.
// Only SQLite is auto-migrated from these models, so money columns are TEXT
// there and decimal strings round-trip exactly. PostgreSQL gets NUMERIC from
// the SQL migrations.
func All() []interface{} {
	return []interface{}{
		&Account{},
		&Category{},
		&Expense{},
		&Income{},
		&AuditLog{},
	}
}
