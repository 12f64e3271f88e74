package services

import (
	"time"

	"github.com/shopspring/decimal"

	"budget/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=services_mock.go -package=services

// BalanceMode selects how the balance update routine writes saldo.
type BalanceMode string

const (
	// BalanceModeReadModifyWrite loads the account, adds the delta in memory
	// and saves it back. Concurrent updates to one account can be lost.
	BalanceModeReadModifyWrite BalanceMode = "read_modify_write"
	// BalanceModeAtomic adds the delta inside a single UPDATE statement.
	BalanceModeAtomic BalanceMode = "atomic"
)

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(name string, saldo decimal.Decimal) (*models.Account, error)
	ListAccounts() ([]models.Account, error)
	GetAccountByID(accountID string) (*models.Account, error)
	AdjustSaldo(accountID string, delta decimal.Decimal) error
	ReconcileAccount(accountID string) (*models.Account, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(name, description string) (*models.Category, error)
	ListCategories() ([]models.Category, error)
}

// ExpenseInput carries the fields of a new expense. Nil references are
// stored as null.
type ExpenseInput struct {
	Amount      decimal.Decimal
	Date        *time.Time
	Description string
	CategoryID  *string
	AccountID   *string
}

// IncomeInput carries the fields of a new income.
type IncomeInput struct {
	Amount      decimal.Decimal
	Date        *time.Time
	Description string
	AccountID   *string
}

// LedgerServicer records and lists ledger entries and keeps account saldo in
// step with them.
type LedgerServicer interface {
	CreateExpense(input ExpenseInput) (*models.ExpenseView, error)
	CreateIncome(input IncomeInput) (*models.IncomeView, error)
	ListExpenses() ([]models.ExpenseView, error)
	ListIncomes() ([]models.IncomeView, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
