package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is an immutable ledger entry that raises the referenced account's
// saldo by Amount.
type Income struct {
	Base
	Amount      decimal.Decimal `gorm:"type:text;not null;default:'0'" json:"amount"`
	Date        *time.Time      `json:"date"`
	Description string          `gorm:"not null;default:''" json:"description"`
	AccountID   *string         `gorm:"type:uuid;index" json:"account"`
}

// IncomeView is an Income with its account resolved.
type IncomeView struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        *time.Time      `json:"date"`
	Description string          `json:"description"`
	Account     *Account        `json:"account"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
