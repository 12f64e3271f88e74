package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an immutable ledger entry that lowers the referenced account's
// saldo by Amount. References are stored as bare ids and are not checked.
type Expense struct {
	Base
	Amount      decimal.Decimal `gorm:"type:text;not null;default:'0'" json:"amount"`
	Date        *time.Time      `json:"date"`
	Description string          `gorm:"not null;default:''" json:"description"`
	CategoryID  *string         `gorm:"type:uuid;index" json:"category"`
	AccountID   *string         `gorm:"type:uuid;index" json:"account"`
}

// ExpenseView is an Expense with its references resolved. A reference that
// does not resolve is null.
type ExpenseView struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        *time.Time      `json:"date"`
	Description string          `json:"description"`
	Category    *Category       `json:"category"`
	Account     *Account        `json:"account"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
