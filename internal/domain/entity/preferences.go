// Package entity defines the core business entities for the domain layer.
package entity

// DefaultFontSize is the font size used before the user changes it.
const DefaultFontSize = 16

// Preferences holds the two user-facing display preferences. They are stored
// by the backend and applied by the client; the backend never interprets them.
type Preferences struct {
	DarkMode bool `json:"dark_mode"`
	FontSize int  `json:"font_size"`
}

// DefaultPreferences returns the preferences used when nothing is persisted.
func DefaultPreferences() Preferences {
	return Preferences{
		DarkMode: false,
		FontSize: DefaultFontSize,
	}
}
