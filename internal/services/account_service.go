package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "budget/internal/errors"
	"budget/internal/models"
)

// accountService handles account-related business logic.
type accountService struct {
	db   *gorm.DB
	mode BalanceMode
}

// NewAccountService creates a new AccountServicer. An empty mode means
// BalanceModeReadModifyWrite.
func NewAccountService(db *gorm.DB, mode BalanceMode) AccountServicer {
	if mode == "" {
		mode = BalanceModeReadModifyWrite
	}
	return &accountService{db: db, mode: mode}
}

// CreateAccount creates an account whose opening and current saldo are saldo.
func (s *accountService) CreateAccount(name string, saldo decimal.Decimal) (*models.Account, error) {
	account := &models.Account{
		Name:         name,
		Saldo:        saldo,
		OpeningSaldo: saldo,
	}

	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return account, nil
}

// ListAccounts returns every account in the store's natural order.
func (s *accountService) ListAccounts() ([]models.Account, error) {
	accounts := []models.Account{}
	if err := s.db.Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return accounts, nil
}

// GetAccountByID retrieves an account by ID
func (s *accountService) GetAccountByID(accountID string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ?", accountID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// AdjustSaldo adds delta to the account's saldo. It returns
// ErrAccountNotFound when accountID does not name an account.
func (s *accountService) AdjustSaldo(accountID string, delta decimal.Decimal) error {
	if s.mode == BalanceModeAtomic {
		return s.adjustSaldoAtomic(accountID, delta)
	}

	// Unlocked read-modify-write: a concurrent adjustment between the load
	// and the save is overwritten. ReconcileAccount repairs the result.
	account, err := s.GetAccountByID(accountID)
	if err != nil {
		return err
	}

	account.Saldo = account.Saldo.Add(delta)
	if err := s.db.Model(account).Update("saldo", account.Saldo).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// maxSaldoSwapAttempts bounds the compare-and-swap loop used on SQLite.
const maxSaldoSwapAttempts = 5

func (s *accountService) adjustSaldoAtomic(accountID string, delta decimal.Decimal) error {
	if s.db.Dialector.Name() != "postgres" {
		return s.swapSaldo(accountID, delta)
	}

	result := s.db.Model(&models.Account{}).
		Where("id = ?", accountID).
		Update("saldo", gorm.Expr("saldo + ?", delta))
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

// swapSaldo adds delta in Go and writes the sum only while saldo still holds
// the text it was read as. SQLite keeps saldo as TEXT, and adding inside SQL
// would go through floating point.
func (s *accountService) swapSaldo(accountID string, delta decimal.Decimal) error {
	for attempt := 0; attempt < maxSaldoSwapAttempts; attempt++ {
		var stored []string
		if err := s.db.Model(&models.Account{}).Where("id = ?", accountID).Pluck("saldo", &stored).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if len(stored) == 0 {
			return apperrors.ErrAccountNotFound
		}

		current, err := decimal.NewFromString(stored[0])
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		result := s.db.Model(&models.Account{}).
			Where("id = ? AND saldo = ?", accountID, stored[0]).
			Update("saldo", current.Add(delta))
		if result.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
		}
		if result.RowsAffected == 1 {
			return nil
		}
	}
	return apperrors.Wrap(apperrors.ErrInternalServer,
		fmt.Errorf("saldo of account %s changed during %d update attempts", accountID, maxSaldoSwapAttempts))
}

// ReconcileAccount recomputes saldo as the opening saldo plus all incomes
// minus all expenses that reference the account, and stores it.
func (s *accountService) ReconcileAccount(accountID string) (*models.Account, error) {
	account, err := s.GetAccountByID(accountID)
	if err != nil {
		return nil, err
	}

	var incomes, expenses []decimal.Decimal
	if err := s.db.Model(&models.Income{}).Where("account_id = ?", accountID).Pluck("amount", &incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Model(&models.Expense{}).Where("account_id = ?", accountID).Pluck("amount", &expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	saldo := account.OpeningSaldo
	for _, amount := range incomes {
		saldo = saldo.Add(amount)
	}
	for _, amount := range expenses {
		saldo = saldo.Sub(amount)
	}

	if err := s.db.Model(account).Update("saldo", saldo).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	account.Saldo = saldo
	return account, nil
}
