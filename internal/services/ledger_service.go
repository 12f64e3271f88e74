package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "budget/internal/errors"
	"budget/internal/logger"
	"budget/internal/models"
)

// ledgerService records expenses and incomes and moves account saldo.
type ledgerService struct {
	db             *gorm.DB
	accountService AccountServicer
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(db *gorm.DB, accountService AccountServicer) LedgerServicer {
	return &ledgerService{
		db:             db,
		accountService: accountService,
	}
}

// CreateExpense persists the expense, resolves its references and then
// subtracts its amount from the referenced account.
//
// The entry and the balance update are separate writes. If the update fails
// the expense stays persisted and ErrBalanceUpdateFailed is returned.
func (s *ledgerService) CreateExpense(input ExpenseInput) (*models.ExpenseView, error) {
	expense := &models.Expense{
		Amount:      input.Amount,
		Date:        input.Date,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		AccountID:   input.AccountID,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	views, err := s.resolveExpenses([]models.Expense{*expense})
	if err != nil {
		return nil, err
	}

	if err := s.adjust("expense", expense.ID, expense.AccountID, expense.Amount.Neg()); err != nil {
		return nil, err
	}
	return &views[0], nil
}

// CreateIncome persists the income, resolves its account and then adds its
// amount to that account. Failure semantics match CreateExpense.
func (s *ledgerService) CreateIncome(input IncomeInput) (*models.IncomeView, error) {
	income := &models.Income{
		Amount:      input.Amount,
		Date:        input.Date,
		Description: input.Description,
		AccountID:   input.AccountID,
	}

	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	views, err := s.resolveIncomes([]models.Income{*income})
	if err != nil {
		return nil, err
	}

	if err := s.adjust("income", income.ID, income.AccountID, income.Amount); err != nil {
		return nil, err
	}
	return &views[0], nil
}

// ListExpenses returns every expense with account and category resolved.
func (s *ledgerService) ListExpenses() ([]models.ExpenseView, error) {
	var expenses []models.Expense
	if err := s.db.Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.resolveExpenses(expenses)
}

// ListIncomes returns every income with its account resolved.
func (s *ledgerService) ListIncomes() ([]models.IncomeView, error) {
	var incomes []models.Income
	if err := s.db.Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.resolveIncomes(incomes)
}

func (s *ledgerService) adjust(entryType, entryID string, accountID *string, delta decimal.Decimal) error {
	if accountID == nil || *accountID == "" {
		logger.Get().Errorw("balance update failed; ledger entry has no account",
			"entry_type", entryType,
			"entry_id", entryID,
		)
		return apperrors.Wrap(apperrors.ErrBalanceUpdateFailed, apperrors.ErrAccountNotFound)
	}

	if err := s.accountService.AdjustSaldo(*accountID, delta); err != nil {
		logger.Get().Errorw("balance update failed; ledger entry needs reconciliation",
			"entry_type", entryType,
			"entry_id", entryID,
			"account_id", *accountID,
			"error", err,
		)
		return apperrors.Wrap(apperrors.ErrBalanceUpdateFailed, err)
	}
	return nil
}
