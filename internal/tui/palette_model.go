package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/swatch/internal/models"
	"github.com/balkashynov/swatch/internal/parser"
	"github.com/balkashynov/swatch/internal/session"
)

const appTitle = "swatch · color palette generator"

// Focus represents what UI element has focus
type Focus int

const (
	FocusPalette Focus = iota
	FocusSaved
	FocusSeed
)

// paletteMsg carries the outcome of a generation
type paletteMsg struct {
	palette models.Palette
	err     error
}

// PaletteModel is the interactive palette screen
type PaletteModel struct {
	ctx      context.Context
	session  *session.Manager
	theme    *Theme
	notifier *ToastNotifier

	width  int
	height int

	// Palette data, refreshed from the session after every action
	current models.Palette
	saved   []models.Palette

	// UI state
	focus         Focus
	selectedColor int
	selectedSaved int
	pending       int // generations in flight

	spinner   spinner.Model
	seedInput textinput.Model
	help      help.Model
	keys      keyMap
	shimmer   *ShimmerState

	toast   *toast
	toastID int
}

// NewPaletteModel creates the palette screen for a session
func NewPaletteModel(ctx context.Context, s *session.Manager, theme *Theme, notifier *ToastNotifier) PaletteModel {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	seed := textinput.New()
	seed.Placeholder = "RRGGBB"
	seed.Prompt = "Seed: #"
	seed.CharLimit = 7
	seed.Width = 10

	shimmer := NewShimmerState(DefaultShimmerConfig())
	shimmer.SetActive(true)

	return PaletteModel{
		ctx:       ctx,
		session:   s,
		theme:     theme,
		notifier:  notifier,
		focus:     FocusPalette,
		pending:   1, // Init starts the first generation
		spinner:   sp,
		seedInput: seed,
		help:      help.New(),
		keys:      defaultKeyMap(),
		shimmer:   shimmer,
	}
}

// Init generates the first palette and starts listening for toasts
func (m PaletteModel) Init() tea.Cmd {
	return tea.Batch(
		m.generateCmd(""),
		m.spinner.Tick,
		m.shimmer.Tick(),
		m.notifier.wait(),
	)
}

// generateCmd runs a generation off the UI loop; an empty seed means random
func (m PaletteModel) generateCmd(seed string) tea.Cmd {
	s := m.session
	ctx := m.ctx
	return func() tea.Msg {
		var (
			p   models.Palette
			err error
		)
		if seed == "" {
			p, err = s.Generate(ctx)
		} else {
			p, err = s.GenerateFrom(ctx, seed)
		}
		return paletteMsg{palette: p, err: err}
	}
}

// startGeneration marks a generation as pending and returns its commands
func (m PaletteModel) startGeneration(seed string) (PaletteModel, tea.Cmd) {
	m.pending++
	cmds := []tea.Cmd{m.generateCmd(seed)}
	if m.pending == 1 {
		m.shimmer.SetActive(true)
		cmds = append(cmds, m.spinner.Tick, m.shimmer.Tick())
	}
	return m, tea.Batch(cmds...)
}

// Update handles messages
func (m PaletteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case paletteMsg:
		if m.pending > 0 {
			m.pending--
		}
		if m.pending == 0 {
			m.shimmer.SetActive(false)
		}
		// failures already reach the user through the session's notifier
		if msg.err == nil {
			m = m.refresh()
		}
		return m, nil

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case shimmerTickMsg:
		if m.pending == 0 {
			return m, nil
		}
		m.shimmer.Advance(len([]rune(appTitle)))
		return m, m.shimmer.Tick()

	case toastMsg:
		t := toast(msg)
		m = m.showToast(t)
		return m, tea.Batch(m.notifier.wait(), expireToast(m.toastID))

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = nil
		}
		return m, nil

	case tea.KeyMsg:
		if m.focus == FocusSeed {
			return m.handleSeedKeys(msg)
		}
		return m.handleKeys(msg)
	}

	return m, nil
}

// handleKeys handles key input on the palette and saved list
func (m PaletteModel) handleKeys(msg tea.KeyMsg) (PaletteModel, tea.Cmd) {
	// enter restores on the saved list and copies on the palette
	if msg.String() == "enter" && m.focus == FocusSaved {
		return m.restoreSelected()
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Generate):
		return m.startGeneration("")

	case key.Matches(msg, m.keys.Save):
		return m.save()

	case key.Matches(msg, m.keys.Export):
		return m.export()

	case key.Matches(msg, m.keys.Copy):
		return m.copyColor(m.selectedColor)

	case key.Matches(msg, m.keys.CopyN):
		return m.copyColor(int(msg.Runes[0] - '1'))

	case key.Matches(msg, m.keys.Left):
		if m.selectedColor > 0 {
			m.selectedColor--
		}
		m.focus = FocusPalette
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.selectedColor < len(m.current)-1 {
			m.selectedColor++
		}
		m.focus = FocusPalette
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if len(m.saved) > 0 {
			m.focus = FocusSaved
			if m.selectedSaved > 0 {
				m.selectedSaved--
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if len(m.saved) > 0 {
			m.focus = FocusSaved
			if m.selectedSaved < len(m.saved)-1 {
				m.selectedSaved++
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Restore):
		return m.restoreSelected()

	case key.Matches(msg, m.keys.Focus):
		if m.focus == FocusPalette && len(m.saved) > 0 {
			m.focus = FocusSaved
		} else {
			m.focus = FocusPalette
		}
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.session.ToggleDisplayMode()
		return m, nil

	case key.Matches(msg, m.keys.Seed):
		m.focus = FocusSeed
		m.seedInput.SetValue("")
		return m, m.seedInput.Focus()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// handleSeedKeys handles key input while the seed prompt is open
func (m PaletteModel) handleSeedKeys(msg tea.KeyMsg) (PaletteModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.focus = FocusPalette
		m.seedInput.Blur()
		return m, nil

	case "enter":
		value := m.seedInput.Value()
		if !parser.IsValidHex(value) {
			m = m.showToast(toast{title: "Invalid seed", description: fmt.Sprintf("%q is not a hex color.", value), isErr: true})
			return m, expireToast(m.toastID)
		}
		m.focus = FocusPalette
		m.seedInput.Blur()
		return m.startGeneration(value)
	}

	var cmd tea.Cmd
	m.seedInput, cmd = m.seedInput.Update(msg)
	return m, cmd
}

func (m PaletteModel) save() (PaletteModel, tea.Cmd) {
	if _, err := m.session.Save(); err != nil {
		return m.showError("Save failed", err)
	}
	return m.refresh(), nil
}

func (m PaletteModel) export() (PaletteModel, tea.Cmd) {
	path, err := m.session.Export()
	if err != nil {
		return m.showError("Export failed", err)
	}
	if path == "" {
		return m, nil
	}
	m = m.showToast(toast{title: "Palette exported", description: path})
	return m, expireToast(m.toastID)
}

func (m PaletteModel) copyColor(index int) (PaletteModel, tea.Cmd) {
	if index < 0 || index >= len(m.current) {
		return m, nil
	}
	m.selectedColor = index
	m.focus = FocusPalette
	if err := m.session.Copy(m.current[index]); err != nil {
		return m.showError("Copy failed", err)
	}
	return m, nil
}

func (m PaletteModel) restoreSelected() (PaletteModel, tea.Cmd) {
	if m.selectedSaved < 0 || m.selectedSaved >= len(m.saved) {
		return m, nil
	}
	if err := m.session.Restore(m.selectedSaved); err != nil {
		return m.showError("Restore failed", err)
	}
	m = m.refresh()
	m.focus = FocusPalette
	return m, nil
}

// refresh copies palette state out of the session
func (m PaletteModel) refresh() PaletteModel {
	m.current = m.session.Current()
	if m.selectedColor >= len(m.current) {
		m.selectedColor = 0
	}
	if saved, err := m.session.Saved(); err == nil {
		m.saved = saved
	}
	return m
}

func (m PaletteModel) showToast(t toast) PaletteModel {
	m.toastID++
	m.toast = &t
	return m
}

func (m PaletteModel) showError(title string, err error) (PaletteModel, tea.Cmd) {
	desc := err.Error()
	if errors.Is(err, session.ErrIndexOutOfRange) {
		desc = "That palette is no longer available."
	}
	m = m.showToast(toast{title: title, description: desc, isErr: true})
	return m, expireToast(m.toastID)
}

// View renders the palette screen
func (m PaletteModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	c := m.theme.Colors()

	sections := []string{
		m.renderHeader(),
		"",
		m.renderPalette(),
	}
	if m.focus == FocusSeed {
		sections = append(sections, "", m.renderSeedPrompt())
	}
	if len(m.saved) > 0 {
		sections = append(sections, "", m.renderSaved())
	}
	sections = append(sections, "", m.renderToast(), m.renderHelpBar())

	content := lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Left, lipgloss.Top,
		content,
		lipgloss.WithWhitespaceBackground(c.Background),
	)
}

// renderHeader renders the title, spinner and display mode
func (m PaletteModel) renderHeader() string {
	c := m.theme.Colors()

	title := m.shimmer.Render(appTitle, c.AccentMain, c.AccentBright)
	if m.pending > 0 {
		title += " " + lipgloss.NewStyle().Foreground(c.AccentBright).Render(m.spinner.View())
	}

	mode := "☀ light"
	if m.theme.IsDark() {
		mode = "☾ dark"
	}
	modeStyle := lipgloss.NewStyle().
		Foreground(c.SecondaryText).
		Background(c.Card).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Center, title, "   ", modeStyle.Render(mode))
}

// renderPalette renders the current palette as a row of swatches
func (m PaletteModel) renderPalette() string {
	c := m.theme.Colors()

	if len(m.current) == 0 {
		msg := "Fetching your first palette..."
		if m.pending == 0 {
			msg = "No palette yet. Press g to generate one."
		}
		return lipgloss.NewStyle().Foreground(c.SecondaryText).Italic(true).Render(msg)
	}

	// Swatch width adapts to the terminal, leaving room for padding and borders
	swatchWidth := (m.width - 4) / len(m.current)
	swatchWidth = min(max(swatchWidth-3, 8), 18)
	swatchHeight := 5

	swatches := make([]string, 0, len(m.current))
	for i, color := range m.current {
		label := fmt.Sprintf("%d · #%s", i+1, color)
		if swatchWidth < len(label) {
			label = "#" + string(color)
		}

		body := lipgloss.NewStyle().
			Background(lipgloss.Color(color.Hash())).
			Foreground(labelColor(color)).
			Width(swatchWidth).
			Height(swatchHeight).
			Align(lipgloss.Center, lipgloss.Bottom).
			Render(label)

		border := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border)
		if i == m.selectedColor && m.focus != FocusSaved {
			border = border.
				Border(lipgloss.ThickBorder()).
				BorderForeground(c.AccentBright)
		}
		swatches = append(swatches, border.Render(body))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, swatches...)
}

// renderSeedPrompt renders the seed input
func (m PaletteModel) renderSeedPrompt() string {
	c := m.theme.Colors()
	return lipgloss.NewStyle().
		Foreground(c.PrimaryText).
		Background(c.Card).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.AccentBright).
		Padding(0, 1).
		Render(m.seedInput.View() + "  enter generate · esc cancel")
}

// renderSaved renders the saved palettes, newest last
func (m PaletteModel) renderSaved() string {
	c := m.theme.Colors()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(c.PrimaryText).Bold(true).Render("Saved palettes"))
	b.WriteString("\n")

	for i, p := range m.saved {
		cursor := "  "
		numberStyle := lipgloss.NewStyle().Foreground(c.SecondaryText)
		if m.focus == FocusSaved && i == m.selectedSaved {
			cursor = lipgloss.NewStyle().Foreground(c.AccentBright).Render("▶ ")
			numberStyle = numberStyle.Foreground(c.AccentBright).Bold(true)
		}

		var row strings.Builder
		for _, color := range p {
			row.WriteString(lipgloss.NewStyle().
				Background(lipgloss.Color(color.Hash())).
				Render("      "))
		}

		b.WriteString(cursor)
		b.WriteString(numberStyle.Render(fmt.Sprintf("%2d ", i+1)))
		b.WriteString(row.String())
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// renderToast renders the latest notification, or an empty line
func (m PaletteModel) renderToast() string {
	if m.toast == nil {
		return ""
	}
	c := m.theme.Colors()

	accent := c.Success
	if m.toast.isErr {
		accent = c.Error
	}

	title := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(m.toast.title)
	desc := lipgloss.NewStyle().Foreground(c.SecondaryText).Render(m.toast.description)
	return lipgloss.NewStyle().
		Background(c.Card).
		Padding(0, 1).
		Render(title + "  " + desc)
}

// renderHelpBar renders the help bar with hotkey hints
func (m PaletteModel) renderHelpBar() string {
	c := m.theme.Colors()
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(c.SecondaryText)
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(c.HelpText)
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(c.HelpText)
	m.help.Styles.FullKey = m.help.Styles.ShortKey
	m.help.Styles.FullDesc = m.help.Styles.ShortDesc
	m.help.Styles.FullSeparator = m.help.Styles.ShortSeparator
	return m.help.View(m.keys)
}
