package services

import (
	"gorm.io/gorm"

	apperrors "budget/internal/errors"
	"budget/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(name, description string) (*models.Category, error) {
	category := &models.Category{
		Name:        name,
		Description: description,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// ListCategories returns every category in the store's natural order.
func (s *categoryService) ListCategories() ([]models.Category, error) {
	categories := []models.Category{}
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}
