package models

// Category represents a spending category
type Category struct {
	Base
	Name        string `gorm:"not null;default:''" json:"name"`
	Description string `gorm:"not null;default:''" json:"description"`
}
