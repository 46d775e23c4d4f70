package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/engine"
	"github.com/vovakirdan/ramadhan-rush/internal/registry"
)

// CustomModel lets the player pick which variants a practice run uses.
// Custom runs never score, spend or bank.
type CustomModel struct {
	variants  []config.VariantDef
	checked   map[registry.VariantID]bool
	profiles  []config.DifficultyProfile
	profile   int
	cursor    int
	width     int
	keyMapper *KeyMapper
	quitting  bool
	goingBack bool
	confirmed bool
}

// NewCustomModel lists the catalog variants that are registered.
func NewCustomModel(cfg config.Config, width int) CustomModel {
	var variants []config.VariantDef
	for _, v := range cfg.Variants {
		if registry.Exists(registry.VariantID(v.ID)) {
			variants = append(variants, v)
		}
	}
	return CustomModel{
		variants:  variants,
		checked:   make(map[registry.VariantID]bool),
		profiles:  cfg.Profiles,
		width:     width,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the picker.
func (m CustomModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m CustomModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack:
			m.goingBack = true
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.variants)-1 {
				m.cursor++
			}
		case MenuActionLeft:
			if len(m.profiles) > 0 {
				m.profile = (m.profile + len(m.profiles) - 1) % len(m.profiles)
			}
		case MenuActionRight:
			if len(m.profiles) > 0 {
				m.profile = (m.profile + 1) % len(m.profiles)
			}
		case MenuActionToggle:
			if len(m.variants) > 0 {
				id := registry.VariantID(m.variants[m.cursor].ID)
				m.checked[id] = !m.checked[id]
			}
		case MenuActionSelect:
			m.confirmed = true
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// Options returns the run options for the current selection, in catalog
// order. An empty selection plays the whole catalog.
func (m CustomModel) Options() engine.RunOptions {
	opts := engine.RunOptions{Custom: true}
	if len(m.profiles) > 0 {
		opts.Profile = m.profiles[m.profile].ID
	}
	for _, v := range m.variants {
		if id := registry.VariantID(v.ID); m.checked[id] {
			opts.Variants = append(opts.Variants, id)
		}
	}
	return opts
}

// View renders the picker.
func (m CustomModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("CUSTOM RUN"), m.width))
	b.WriteString("\n\n")

	profile := "?"
	if len(m.profiles) > 0 {
		profile = m.profiles[m.profile].Name
	}
	b.WriteString(centerText(fmt.Sprintf("< Difficulty: %s >", profile), m.width))
	b.WriteString("\n\n")

	for i, v := range m.variants {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		box := "[ ]"
		if m.checked[registry.VariantID(v.ID)] {
			box = "[x]"
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s %-16s", cursor, box, v.Name), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Nothing ticked plays every game. Custom runs are not scored."), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Space: Toggle  |  Left/Right: Difficulty  |  Enter: Start  |  Esc: Back"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Confirmed returns true once the player started the run.
func (m CustomModel) Confirmed() bool {
	return m.confirmed
}

// IsGoingBack returns true if user wants to go back to menu.
func (m CustomModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m CustomModel) IsQuitting() bool {
	return m.quitting
}
