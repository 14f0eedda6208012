package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/orba-arcade/internal/config"
)

// presetOption is one row of the difficulty picker.
type presetOption struct {
	Preset config.DifficultyPreset
	Label  string
	Hint   string
}

var presetOptions = []presetOption{
	{"", "Default", "as configured"},
	{config.DifficultyEasy, "Easy", "start calm, ramp to max"},
	{config.DifficultyNormal, "Normal", "start at 30% pressure"},
	{config.DifficultyHard, "Hard", "start at 70% pressure"},
	{config.DifficultyFixed, "Fixed", "no ramp at all"},
}

// PresetModel lets the player choose a difficulty preset for the picked game.
type PresetModel struct {
	item      MenuItem
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    bool
	quitting  bool
	back      bool
}

// NewPresetModel creates a picker for item.
func NewPresetModel(item MenuItem, width, height int) PresetModel {
	return PresetModel{
		item:      item,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m PresetModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PresetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
		case MenuActionBack:
			m.back = true
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(presetOptions)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			m.chosen = true
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the picker.
func (m PresetModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(spaced(strings.ToUpper(m.item.Title))), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, o := range presetOptions {
		line := fmt.Sprintf("  %-8s %s", o.Label, menuDim.Render(o.Hint))
		if i == m.cursor {
			line = menuCursor.Render(fmt.Sprintf("> %-8s", o.Label)) + " " + menuDim.Render(o.Hint)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDim.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))
	return b.String()
}

// Preset returns the chosen preset and whether a choice was made.
func (m PresetModel) Preset() (config.DifficultyPreset, bool) {
	return presetOptions[m.cursor].Preset, m.chosen
}

// IsQuitting returns true if user wants to quit.
func (m PresetModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m PresetModel) WantsBack() bool {
	return m.back
}

// spaced puts a space between the letters of a title.
func spaced(s string) string {
	r := []rune(s)
	parts := make([]string, len(r))
	for i, c := range r {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}
