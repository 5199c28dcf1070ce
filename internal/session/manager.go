// Package session owns the state of one palette session: the current
// palette, the palettes saved so far and the display mode.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/balkashynov/swatch/internal/colorapi"
	"github.com/balkashynov/swatch/internal/export"
	"github.com/balkashynov/swatch/internal/models"
	"github.com/balkashynov/swatch/internal/parser"
)

var (
	// ErrStale is returned when a generation finished after a newer one was applied
	ErrStale = errors.New("palette superseded by a newer generation")

	// ErrIndexOutOfRange is returned by Restore for an index with no saved palette
	ErrIndexOutOfRange = errors.New("saved palette index out of range")
)

// Options wires a Manager to its collaborators. Fetcher and Store are
// required; the rest default to no-ops.
type Options struct {
	Fetcher    Fetcher
	Store      PaletteStore
	Notifier   Notifier
	Clipboard  Clipboard
	Downloader Downloader
	Theme      ThemeSink
	Seeds      colorapi.SeedSource
	Logger     hclog.Logger
	Mode       models.DisplayMode
}

// Manager is the palette session. All methods are safe for concurrent use;
// the lock is never held across a network fetch.
type Manager struct {
	fetcher    Fetcher
	store      PaletteStore
	notifier   Notifier
	clipboard  Clipboard
	downloader Downloader
	theme      ThemeSink
	seeds      colorapi.SeedSource
	log        hclog.Logger

	mu      sync.Mutex
	current models.Palette
	mode    models.DisplayMode
	issued  uint64 // last generation ticket handed out
	applied uint64 // ticket of the generation currently shown
}

// New creates a session manager
func New(opts Options) (*Manager, error) {
	if opts.Fetcher == nil {
		return nil, errors.New("session needs a palette fetcher")
	}
	if opts.Store == nil {
		return nil, errors.New("session needs a palette store")
	}

	m := &Manager{
		fetcher:    opts.Fetcher,
		store:      opts.Store,
		notifier:   opts.Notifier,
		clipboard:  opts.Clipboard,
		downloader: opts.Downloader,
		theme:      opts.Theme,
		seeds:      opts.Seeds,
		log:        opts.Logger,
		mode:       opts.Mode,
	}
	if m.notifier == nil {
		m.notifier = nopNotifier{}
	}
	if m.clipboard == nil {
		m.clipboard = SystemClipboard{}
	}
	if m.downloader == nil {
		m.downloader = export.FileDownloader{}
	}
	if m.theme == nil {
		m.theme = nopTheme{}
	}
	if m.seeds == nil {
		m.seeds = colorapi.RandomSeed
	}
	if m.log == nil {
		m.log = hclog.NewNullLogger()
	}
	m.log = m.log.Named("session")

	return m, nil
}

// Generate fetches a palette from a fresh random seed and makes it current
func (m *Manager) Generate(ctx context.Context) (models.Palette, error) {
	return m.GenerateFrom(ctx, m.seeds())
}

// GenerateFrom fetches a palette derived from seed and makes it current.
// A failed or empty fetch leaves the current palette untouched. If a newer
// generation was applied while this one was in flight, the result is
// dropped and ErrStale returned.
func (m *Manager) GenerateFrom(ctx context.Context, seed string) (models.Palette, error) {
	hex, err := parser.NormalizeHex(seed)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.issued++
	ticket := m.issued
	m.mu.Unlock()

	m.log.Debug("generating palette", "seed", hex, "ticket", ticket)

	palette, err := m.fetcher.Fetch(ctx, string(hex))
	if err == nil && len(palette) == 0 {
		err = colorapi.ErrNoColors
	}

	m.mu.Lock()
	if ticket <= m.applied {
		m.mu.Unlock()
		m.log.Debug("discarding stale generation", "ticket", ticket)
		return nil, ErrStale
	}
	if err != nil {
		m.mu.Unlock()
		m.log.Warn("palette generation failed", "seed", hex, "error", err)
		m.notifier.Notify("Generation failed", "Keeping the current palette.")
		return nil, fmt.Errorf("failed to generate palette: %w", err)
	}
	m.applied = ticket
	m.current = palette.Clone()
	m.mu.Unlock()

	return palette.Clone(), nil
}

// Save appends a copy of the current palette to the saved list. It
// reports false and does nothing when there is no current palette.
func (m *Manager) Save() (bool, error) {
	current := m.Current()
	if len(current) == 0 {
		return false, nil
	}

	if _, err := m.store.Append(current); err != nil {
		return false, err
	}

	m.notifier.Notify("Palette saved", "Your colors were saved below.")
	return true, nil
}

// Export hands the current palette to the downloader as a JSON array and
// returns where it was written. It does nothing when there is no current
// palette.
func (m *Manager) Export() (string, error) {
	current := m.Current()
	if len(current) == 0 {
		return "", nil
	}

	payload, err := export.Marshal(current)
	if err != nil {
		return "", fmt.Errorf("failed to encode palette: %w", err)
	}

	path, err := m.downloader.Download(payload, export.FileName)
	if err != nil {
		return "", err
	}

	m.log.Debug("palette exported", "path", path)
	return path, nil
}

// Copy writes the color to the clipboard
func (m *Manager) Copy(color models.Color) error {
	if err := m.clipboard.WriteAll(string(color)); err != nil {
		return fmt.Errorf("failed to copy %s: %w", color, err)
	}

	m.notifier.Notify("Color copied", fmt.Sprintf("%s copied to clipboard.", color))
	return nil
}

// Restore makes the saved palette at index current again. Any generation
// still in flight is discarded when it lands.
func (m *Manager) Restore(index int) error {
	count, err := m.store.Count()
	if err != nil {
		return err
	}
	if index < 0 || index >= count {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, count)
	}

	palette, err := m.store.Get(index)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.current = palette.Clone()
	m.applied = m.issued
	m.mu.Unlock()

	return nil
}

// ToggleDisplayMode flips between dark and light and tells the theme
func (m *Manager) ToggleDisplayMode() models.DisplayMode {
	m.mu.Lock()
	m.mode = !m.mode
	mode := m.mode
	m.mu.Unlock()

	m.theme.SetDark(bool(mode))
	return mode
}

// Current returns a copy of the current palette, nil before the first
// successful generation
func (m *Manager) Current() models.Palette {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.Clone()
}

// Saved returns the saved palettes in insertion order
func (m *Manager) Saved() ([]models.Palette, error) {
	return m.store.List()
}

// DisplayMode returns the current display mode
func (m *Manager) DisplayMode() models.DisplayMode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}
