package models

import "github.com/shopspring/decimal"

// Account is a place money lives. Saldo is the running balance: it starts at
// OpeningSaldo and afterwards only moves through the balance update routine
// or reconciliation.
type Account struct {
	Base
	Name         string          `gorm:"not null;default:''" json:"name"`
	Saldo        decimal.Decimal `gorm:"type:text;not null;default:'0'" json:"saldo"`
	OpeningSaldo decimal.Decimal `gorm:"type:text;not null;default:'0'" json:"-"`
}
