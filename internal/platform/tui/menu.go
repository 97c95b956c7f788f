package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shapeswap/internal/config"
	"github.com/vovakirdan/shapeswap/internal/core"
)

// PresetMenuModel lets the user pick a board preset before playing.
type PresetMenuModel struct {
	presets   []config.PresetInfo
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  *config.Preset
	quitting  bool
}

// NewPresetMenuModel creates the preset menu with the cursor on normal.
func NewPresetMenuModel(width, height int) PresetMenuModel {
	presets := config.Presets()
	cursor := 0
	for i, p := range presets {
		if p.Preset == config.PresetNormal {
			cursor = i
		}
	}
	return PresetMenuModel{
		presets:   presets,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m PresetMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PresetMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m PresetMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		p := m.presets[m.cursor].Preset
		m.selected = &p
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m PresetMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S H A P E   S W A P", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a board:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-7s %s", cursor, p.Preset, p.Description)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Esc/Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset, or nil if none was chosen.
func (m PresetMenuModel) Selected() *config.Preset {
	return m.selected
}

// IsQuitting returns true if the user left without choosing.
func (m PresetMenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// RunPresetSelector shows the preset menu and returns the choice, or nil if
// the user quit.
func RunPresetSelector(cfg core.RuntimeConfig) (*config.Preset, error) {
	model := NewPresetMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(PresetMenuModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}
