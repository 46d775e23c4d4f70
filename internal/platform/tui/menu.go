package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/render"
	"github.com/vovakirdan/ramadhan-rush/internal/save"
	"github.com/vovakirdan/ramadhan-rush/internal/shop"
)

// MenuChoice is what a main-menu entry leads to.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceCustom
	ChoiceShop
	ChoiceScores
	ChoiceQuit
)

// MenuItem represents a selectable entry in the main menu.
type MenuItem struct {
	Title   string
	Choice  MenuChoice
	Profile config.ProfileID // for ChoicePlay
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	snapshot  save.Snapshot
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel creates the main menu: one play entry per difficulty
// profile, then custom run, shop, scores and quit.
func NewMenuModel(cfg config.Config, snap save.Snapshot, width, height int, withScores bool) MenuModel {
	items := make([]MenuItem, 0, len(cfg.Profiles)+4)
	for _, p := range cfg.Profiles {
		items = append(items, MenuItem{
			Title:   "Play " + p.Name,
			Choice:  ChoicePlay,
			Profile: p.ID,
		})
	}
	items = append(items,
		MenuItem{Title: "Custom Run", Choice: ChoiceCustom},
		MenuItem{Title: "Shop", Choice: ChoiceShop},
	)
	if withScores {
		items = append(items, MenuItem{Title: "High Scores", Choice: ChoiceScores})
	}
	items = append(items, MenuItem{Title: "Quit", Choice: ChoiceQuit})

	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		snapshot:  snap,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect, MenuActionToggle:
		if len(m.items) == 0 {
			return m, nil
		}
		selected := m.items[m.cursor]
		if selected.Choice == ChoiceQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &selected
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(spaced(render.Title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(walletLine(m.snapshot), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// walletLine summarizes banked score, consumables and the equipped effect.
func walletLine(s save.Snapshot) string {
	fx := "none"
	if it, ok := shop.Lookup(s.EquippedFx()); ok {
		fx = it.Name
	}
	return fmt.Sprintf("Banked: %d  |  Lives +%d  |  Double x%d  |  Effect: %s",
		s.BankedScore, s.Consumables.Life, s.Consumables.Double, fx)
}

// spaced puts a space between the letters of a title.
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
