package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/balkashynov/swatch/internal/models"
)

// ErrInvalidHex is returned when a string is not a hex color
var ErrInvalidHex = errors.New("invalid hex color")

var (
	hexLongRegex  = regexp.MustCompile(`^[0-9A-F]{6}$`)
	hexShortRegex = regexp.MustCompile(`^[0-9A-F]{3}$`)
)

// NormalizeHex normalizes a hex color to upper-case RRGGBB format
// Accepts formats like:
// - "#aabbcc", "AABBCC" -> "AABBCC"
// - "#abc", "ABC" -> "AABBCC"
func NormalizeHex(hex string) (models.Color, error) {
	s := strings.ToUpper(strings.TrimSpace(hex))
	s = strings.TrimPrefix(s, "#")

	if hexShortRegex.MatchString(s) {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}

	if !hexLongRegex.MatchString(s) {
		return "", fmt.Errorf("%w: %q (use RRGGBB or #RRGGBB)", ErrInvalidHex, hex)
	}

	return models.Color(s), nil
}

// IsValidHex checks if a string can be normalized into a hex color
func IsValidHex(hex string) bool {
	_, err := NormalizeHex(hex)
	return err == nil
}
