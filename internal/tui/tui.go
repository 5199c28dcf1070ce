package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/swatch/internal/session"
)

// RunPaletteTUI starts the interactive palette screen
func RunPaletteTUI(ctx context.Context, s *session.Manager, theme *Theme, notifier *ToastNotifier) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewPaletteModel(ctx, s, theme, notifier)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()

	// Handle exit messages after TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(PaletteModel); ok {
		if len(m.current) > 0 {
			fmt.Printf("🎨 Last palette: %s\n", m.current.Strings())
		}
		if n := len(m.saved); n > 0 {
			fmt.Printf("💾 %d palette(s) saved this session (not kept after exit)\n", n)
		}
	}

	return nil
}
