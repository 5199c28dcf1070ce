package tui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ShimmerConfig holds configuration for the title shimmer
type ShimmerConfig struct {
	Enabled    bool    // animations: on|off
	SpeedMs    int     // tick interval (default 80)
	WidthRatio float64 // highlight width relative to text (default 0.35)
}

// ShimmerState sweeps a highlight across the title while a palette is loading
type ShimmerState struct {
	Center float64 // current center position
	Active bool    // whether shimmer is active
	Config ShimmerConfig
}

// shimmerTickMsg advances the shimmer
type shimmerTickMsg struct{}

// DefaultShimmerConfig returns default shimmer configuration
func DefaultShimmerConfig() ShimmerConfig {
	return ShimmerConfig{
		Enabled:    true,
		SpeedMs:    80,
		WidthRatio: 0.35,
	}
}

// NewShimmerState creates a new, inactive shimmer
func NewShimmerState(config ShimmerConfig) *ShimmerState {
	return &ShimmerState{Config: config}
}

// SetActive starts or stops the sweep
func (s *ShimmerState) SetActive(active bool) {
	s.Active = active && s.Config.Enabled
	if !s.Active {
		s.Center = 0
	}
}

// Advance moves the highlight one step; it wraps after passing the end
func (s *ShimmerState) Advance(textLen int) {
	if !s.Active || textLen == 0 {
		return
	}
	margin := float64(textLen) * s.Config.WidthRatio
	s.Center++
	if s.Center > float64(textLen)+margin {
		s.Center = -margin
	}
}

// Tick schedules the next shimmer step
func (s *ShimmerState) Tick() tea.Cmd {
	return tea.Tick(time.Duration(s.Config.SpeedMs)*time.Millisecond, func(time.Time) tea.Msg {
		return shimmerTickMsg{}
	})
}

// Render draws text blending from base to highlight around the center
func (s *ShimmerState) Render(text string, base, highlight lipgloss.Color) string {
	if !s.Active {
		return lipgloss.NewStyle().Foreground(base).Bold(true).Render(text)
	}

	from, err1 := colorful.Hex(string(base))
	to, err2 := colorful.Hex(string(highlight))
	if err1 != nil || err2 != nil {
		return lipgloss.NewStyle().Foreground(highlight).Bold(true).Render(text)
	}

	runes := []rune(text)
	sigma := math.Max(1, s.Config.WidthRatio*float64(len(runes))/2)

	var b strings.Builder
	for i, r := range runes {
		dx := float64(i) - s.Center
		weight := math.Exp(-(dx * dx) / (2 * sigma * sigma))
		c := from.BlendLab(to, weight).Clamped()
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Hex())).
			Bold(true).
			Render(string(r)))
	}
	return b.String()
}
