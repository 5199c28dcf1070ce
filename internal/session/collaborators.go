package session

import (
	"context"

	"github.com/atotto/clipboard"

	"github.com/balkashynov/swatch/internal/models"
)

// Fetcher produces a palette from a seed
type Fetcher interface {
	Fetch(ctx context.Context, seed string) (models.Palette, error)
}

// PaletteStore keeps saved palettes in insertion order
type PaletteStore interface {
	Append(p models.Palette) (*models.SavedPalette, error)
	List() ([]models.Palette, error)
	Get(index int) (models.Palette, error)
	Count() (int, error)
}

// Notifier shows a short confirmation to the user
type Notifier interface {
	Notify(title, description string)
}

// Clipboard writes text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}

// Downloader hands a payload to the user as a named file and reports where
// it ended up
type Downloader interface {
	Download(payload []byte, filename string) (string, error)
}

// ThemeSink switches the visual theme
type ThemeSink interface {
	SetDark(dark bool)
}

// SystemClipboard writes through to the OS clipboard
type SystemClipboard struct{}

// WriteAll copies text to the clipboard
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string) {}

type nopTheme struct{}

func (nopTheme) SetDark(bool) {}
