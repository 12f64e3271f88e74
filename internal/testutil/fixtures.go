package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"budget/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestAccount creates an account whose opening and current saldo are saldo.
func CreateTestAccount(t *testing.T, db *gorm.DB, saldo string) *models.Account {
	t.Helper()

	amount := decimal.RequireFromString(saldo)
	account := &models.Account{
		Name:         fmt.Sprintf("Test Account %d", nextID()),
		Saldo:        amount,
		OpeningSaldo: amount,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:        fmt.Sprintf("Test Category %d", nextID()),
		Description: "fixture",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestExpense stores an expense directly, without touching any saldo.
func CreateTestExpense(t *testing.T, db *gorm.DB, accountID, categoryID *string, amount string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Amount:      decimal.RequireFromString(amount),
		Description: fmt.Sprintf("Test Expense %d", nextID()),
		CategoryID:  categoryID,
		AccountID:   accountID,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestIncome stores an income directly, without touching any saldo.
func CreateTestIncome(t *testing.T, db *gorm.DB, accountID *string, amount string) *models.Income {
	t.Helper()

	income := &models.Income{
		Amount:      decimal.RequireFromString(amount),
		Description: fmt.Sprintf("Test Income %d", nextID()),
		AccountID:   accountID,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// ReloadAccount reads the account's current row.
func ReloadAccount(t *testing.T, db *gorm.DB, id string) *models.Account {
	t.Helper()

	var account models.Account
	if err := db.Where("id = ?", id).First(&account).Error; err != nil {
		t.Fatalf("failed to reload account %s: %v", id, err)
	}
	return &account
}
