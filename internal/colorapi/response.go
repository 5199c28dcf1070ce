package colorapi

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/balkashynov/swatch/internal/models"
	"github.com/balkashynov/swatch/internal/parser"
)

// ErrNoColors is returned when the scheme response carries no colors
var ErrNoColors = errors.New("no colors in scheme response")

// StatusError is returned for a non-success HTTP status
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("color api returned HTTP %d: %s", e.Code, e.Status)
}

// ParseError is returned when the scheme response has an unexpected shape
type ParseError struct {
	Index int // -1 when the body itself could not be decoded
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("malformed scheme response: %v", e.Err)
	}
	return fmt.Sprintf("malformed color #%d %q: %v", e.Index, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// schemeResponse is the subset of the /scheme payload we read
type schemeResponse struct {
	Colors []struct {
		Hex *struct {
			Value string `json:"value"`
		} `json:"hex"`
	} `json:"colors"`
}

// parseScheme validates a /scheme body and extracts its colors in order
func parseScheme(body []byte) (models.Palette, error) {
	var resp schemeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ParseError{Index: -1, Err: err}
	}

	if len(resp.Colors) == 0 {
		return nil, ErrNoColors
	}

	palette := make(models.Palette, 0, len(resp.Colors))
	for i, entry := range resp.Colors {
		if entry.Hex == nil {
			return nil, &ParseError{Index: i, Err: errors.New("missing hex value")}
		}
		c, err := parser.NormalizeHex(entry.Hex.Value)
		if err != nil {
			return nil, &ParseError{Index: i, Value: entry.Hex.Value, Err: err}
		}
		palette = append(palette, c)
	}

	return palette, nil
}
