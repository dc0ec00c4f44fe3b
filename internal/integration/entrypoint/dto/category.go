package dto

import "github.com/finance-dashboard/backend/internal/domain/entity"

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

// ListCategoriesResponse represents the response for listing categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}

// ToListCategoriesResponse converts a category slice to its response form.
func ToListCategoriesResponse(categories []entity.Category) ListCategoriesResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, CategoryResponse{
			ID:    c.ID.String(),
			Name:  c.Name,
			Type:  string(c.Type),
			Color: c.Color,
		})
	}
	return ListCategoriesResponse{
		Categories: responses,
		Total:      len(responses),
	}
}
