package dto

import "github.com/finance-dashboard/backend/internal/domain/entity"

// UpdatePreferencesRequest represents the partial-update request body for
// display preferences. Absent fields are left untouched.
type UpdatePreferencesRequest struct {
	DarkMode *bool `json:"dark_mode,omitempty"`
	FontSize *int  `json:"font_size,omitempty" binding:"omitempty,min=10,max=24"`
}

// PreferencesResponse represents the stored display preferences.
type PreferencesResponse struct {
	DarkMode bool `json:"dark_mode"`
	FontSize int  `json:"font_size"`
}

// ToPreferencesResponse converts preferences to their response form.
func ToPreferencesResponse(p entity.Preferences) PreferencesResponse {
	return PreferencesResponse{
		DarkMode: p.DarkMode,
		FontSize: p.FontSize,
	}
}
