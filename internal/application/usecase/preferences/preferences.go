// Package preferences contains the display-preference use cases. The backend
// stores the two scalars and hands them back; it never interprets them.
package preferences

import (
	"context"
	"log/slog"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// GetPreferencesUseCase returns the stored preferences.
type GetPreferencesUseCase struct {
	prefs adapter.PreferenceStore
}

// NewGetPreferencesUseCase creates a new GetPreferencesUseCase instance.
func NewGetPreferencesUseCase(prefs adapter.PreferenceStore) *GetPreferencesUseCase {
	return &GetPreferencesUseCase{prefs: prefs}
}

// Execute returns the preferences, defaulting when nothing is stored.
func (uc *GetPreferencesUseCase) Execute(ctx context.Context) (entity.Preferences, error) {
	return uc.prefs.Get(ctx)
}

// UpdatePreferencesInput represents the partial preference update.
type UpdatePreferencesInput struct {
	DarkMode *bool
	FontSize *int
}

// UpdatePreferencesUseCase merges and persists preference changes.
type UpdatePreferencesUseCase struct {
	prefs adapter.PreferenceStore
}

// NewUpdatePreferencesUseCase creates a new UpdatePreferencesUseCase instance.
func NewUpdatePreferencesUseCase(prefs adapter.PreferenceStore) *UpdatePreferencesUseCase {
	return &UpdatePreferencesUseCase{prefs: prefs}
}

// Execute merges the provided fields into the stored preferences.
func (uc *UpdatePreferencesUseCase) Execute(ctx context.Context, input UpdatePreferencesInput) (entity.Preferences, error) {
	current, err := uc.prefs.Get(ctx)
	if err != nil {
		return entity.Preferences{}, err
	}

	if input.DarkMode != nil {
		current.DarkMode = *input.DarkMode
	}
	if input.FontSize != nil {
		current.FontSize = *input.FontSize
	}

	if err := uc.prefs.Set(ctx, current); err != nil {
		return entity.Preferences{}, err
	}

	slog.Info("Preferences updated",
		"dark_mode", current.DarkMode,
		"font_size", current.FontSize,
	)
	return current, nil
}
