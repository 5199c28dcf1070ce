package models

import (
	"encoding/json"
	"time"
)

// Color is a six digit upper-case hex color without the leading '#'
type Color string

// Hash returns the color with a leading '#', as lipgloss expects it
func (c Color) Hash() string {
	return "#" + string(c)
}

// Palette is an ordered list of colors displayed together
type Palette []Color

// Clone returns an independent copy of the palette
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	copy(out, p)
	return out
}

// Strings returns the palette as plain strings
func (p Palette) Strings() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = string(c)
	}
	return out
}

// Equal reports whether both palettes hold the same colors in the same order
func (p Palette) Equal(other Palette) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// DisplayMode is the UI theme flag, true means dark
type DisplayMode bool

const (
	Light DisplayMode = false
	Dark  DisplayMode = true
)

// String returns "dark" or "light"
func (d DisplayMode) String() string {
	if d {
		return "dark"
	}
	return "light"
}

// SavedPalette is a palette saved during the current session
type SavedPalette struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Position int    `gorm:"uniqueIndex;not null" json:"position"` // 0-based, insertion order
	Colors   string `gorm:"not null" json:"colors"`               // JSON array of hex strings
}

// Palette decodes the stored colors
func (s SavedPalette) Palette() (Palette, error) {
	var p Palette
	if err := json.Unmarshal([]byte(s.Colors), &p); err != nil {
		return nil, err
	}
	return p, nil
}
