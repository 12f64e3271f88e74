package services

import (
	apperrors "budget/internal/errors"
	"budget/internal/models"
)

// resolveExpenses turns stored expenses into views, batch-loading the
// referenced accounts and categories. Unknown references resolve to nil.
func (s *ledgerService) resolveExpenses(expenses []models.Expense) ([]models.ExpenseView, error) {
	accountIDs := make([]*string, 0, len(expenses))
	categoryIDs := make([]*string, 0, len(expenses))
	for i := range expenses {
		accountIDs = append(accountIDs, expenses[i].AccountID)
		categoryIDs = append(categoryIDs, expenses[i].CategoryID)
	}

	accounts, err := s.loadAccounts(accountIDs)
	if err != nil {
		return nil, err
	}
	categories, err := s.loadCategories(categoryIDs)
	if err != nil {
		return nil, err
	}

	views := make([]models.ExpenseView, 0, len(expenses))
	for _, e := range expenses {
		views = append(views, models.ExpenseView{
			ID:          e.ID,
			Amount:      e.Amount,
			Date:        e.Date,
			Description: e.Description,
			Category:    lookup(categories, e.CategoryID),
			Account:     lookup(accounts, e.AccountID),
			CreatedAt:   e.CreatedAt,
			UpdatedAt:   e.UpdatedAt,
		})
	}
	return views, nil
}

// resolveIncomes turns stored incomes into views with the account loaded.
func (s *ledgerService) resolveIncomes(incomes []models.Income) ([]models.IncomeView, error) {
	accountIDs := make([]*string, 0, len(incomes))
	for i := range incomes {
		accountIDs = append(accountIDs, incomes[i].AccountID)
	}

	accounts, err := s.loadAccounts(accountIDs)
	if err != nil {
		return nil, err
	}

	views := make([]models.IncomeView, 0, len(incomes))
	for _, in := range incomes {
		views = append(views, models.IncomeView{
			ID:          in.ID,
			Amount:      in.Amount,
			Date:        in.Date,
			Description: in.Description,
			Account:     lookup(accounts, in.AccountID),
			CreatedAt:   in.CreatedAt,
			UpdatedAt:   in.UpdatedAt,
		})
	}
	return views, nil
}

func (s *ledgerService) loadAccounts(refs []*string) (map[string]*models.Account, error) {
	ids := distinct(refs)
	result := make(map[string]*models.Account, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var accounts []models.Account
	if err := s.db.Where("id IN ?", ids).Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range accounts {
		result[accounts[i].ID] = &accounts[i]
	}
	return result, nil
}

func (s *ledgerService) loadCategories(refs []*string) (map[string]*models.Category, error) {
	ids := distinct(refs)
	result := make(map[string]*models.Category, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var categories []models.Category
	if err := s.db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range categories {
		result[categories[i].ID] = &categories[i]
	}
	return result, nil
}

func distinct(refs []*string) []string {
	seen := make(map[string]struct{}, len(refs))
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref == nil || *ref == "" {
			continue
		}
		if _, ok := seen[*ref]; ok {
			continue
		}
		seen[*ref] = struct{}{}
		ids = append(ids, *ref)
	}
	return ids
}

func lookup[T any](resolved map[string]*T, ref *string) *T {
	if ref == nil {
		return nil
	}
	return resolved[*ref]
}
