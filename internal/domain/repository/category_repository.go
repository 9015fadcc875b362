package repository

import (
	"context"

	"tourquote/internal/domain/entity"
	"tourquote/internal/errors"
)

// ErrCategoryNotFound is returned when a category document does not exist.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the interface for category catalog operations.
type CategoryRepository interface {
	// CreateCategory persists a new category and fills in its document ID.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// UpdateCategory overwrites an existing category document.
	UpdateCategory(ctx context.Context, category *entity.Category) error

	// FindCategoryByID retrieves a category by its document ID.
	FindCategoryByID(ctx context.Context, id string) (*entity.Category, error)

	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}
