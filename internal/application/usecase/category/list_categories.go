// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// ListCategoriesOutput represents the output of category listing.
type ListCategoriesOutput struct {
	Categories []entity.Category
}

// ListCategoriesUseCase handles category listing. The set is the fixed seed;
// there are no create/update/delete paths.
type ListCategoriesUseCase struct {
	categories adapter.CategoryStore
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categories adapter.CategoryStore) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categories: categories}
}

// Execute lists the category set, seeding defaults on first run.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	items, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListCategoriesOutput{Categories: items}, nil
}
