package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/save"
	"github.com/vovakirdan/ramadhan-rush/internal/shop"
)

// Wallet is the part of the engine the shop screen needs.
type Wallet interface {
	Snapshot() save.Snapshot
	Buy(id string) error
	ToggleEquip(id string) error
}

// ShopKeyMap defines the key bindings for the shop.
type ShopKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Buy   key.Binding
	Equip key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ShopKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Buy, k.Equip, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ShopKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Buy, k.Equip},
		{k.Back, k.Quit},
	}
}

// DefaultShopKeyMap returns default key bindings.
func DefaultShopKeyMap() ShopKeyMap {
	return ShopKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Buy: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "buy"),
		),
		Equip: key.NewBinding(
			key.WithKeys("e", " "),
			key.WithHelp("e", "equip"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShopModel is the Bubble Tea model for the shop screen.
type ShopModel struct {
	wallet    Wallet
	items     []shop.Item
	table     table.Model
	help      help.Model
	keys      ShopKeyMap
	status    string
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewShopModel creates the shop over w.
func NewShopModel(w Wallet, width, height int) ShopModel {
	h := help.New()
	h.Width = width
	m := ShopModel{
		wallet: w,
		items:  shop.Catalog(),
		help:   h,
		keys:   DefaultShopKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *ShopModel) createTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "", Width: 2},
			{Title: "Item", Width: 18},
			{Title: "Cost", Width: 6},
			{Title: "Status", Width: 10},
			{Title: "Description", Width: 34},
		}),
		table.WithFocused(true),
		table.WithHeight(clampHeight(m.height-10, len(m.items)+1)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// clampHeight clamps a table height into [1, limit].
func clampHeight(h, limit int) int {
	return core.Clamp(h, 1, core.Max(limit, 1))
}

// itemStatus describes what the player has of an item.
func itemStatus(s save.Snapshot, it shop.Item) string {
	switch {
	case it.ID == shop.ExtraLife:
		return fmt.Sprintf("%d/%d", s.Consumables.Life, it.Max)
	case it.ID == shop.DoubleScore:
		return fmt.Sprintf("%d/%d", s.Consumables.Double, it.Max)
	case s.EquippedFx() == it.ID:
		return "equipped"
	case s.Owns(it.ID):
		return "owned"
	}
	return ""
}

func (m *ShopModel) updateTableRows() {
	snap := m.wallet.Snapshot()
	rows := make([]table.Row, len(m.items))
	for i, it := range m.items {
		rows[i] = table.Row{
			string(it.Symbol),
			it.Name,
			fmt.Sprintf("%d", it.Cost),
			itemStatus(snap, it),
			it.Desc,
		}
	}
	m.table.SetRows(rows)
}

// Init initializes the shop model.
func (m ShopModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the shop.
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Buy):
			m.buy()
			return m, nil

		case key.Matches(msg, m.keys.Equip):
			m.equip()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ShopModel) current() (shop.Item, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.items) {
		return shop.Item{}, false
	}
	return m.items[i], true
}

func (m *ShopModel) buy() {
	it, ok := m.current()
	if !ok {
		return
	}
	if err := m.wallet.Buy(it.ID); err != nil {
		m.status = shopError(err)
	} else {
		m.status = fmt.Sprintf("Bought %s.", it.Name)
	}
	m.updateTableRows()
}

func (m *ShopModel) equip() {
	it, ok := m.current()
	if !ok {
		return
	}
	if err := m.wallet.ToggleEquip(it.ID); err != nil {
		m.status = shopError(err)
	} else if m.wallet.Snapshot().EquippedFx() == it.ID {
		m.status = fmt.Sprintf("Equipped %s.", it.Name)
	} else {
		m.status = fmt.Sprintf("Unequipped %s.", it.Name)
	}
	m.updateTableRows()
}

// shopError turns a shop error into a player-facing line.
func shopError(err error) string {
	switch {
	case errors.Is(err, shop.ErrInsufficientFunds):
		return "Not enough banked score."
	case errors.Is(err, shop.ErrLimitReached):
		return "You are carrying the maximum already."
	case errors.Is(err, shop.ErrAlreadyOwned):
		return "Already owned. Press e to equip."
	case errors.Is(err, shop.ErrNotOwned):
		return "Buy it first."
	case errors.Is(err, shop.ErrNotEquippable):
		return "Consumables are used automatically at the next run."
	}
	return err.Error()
}

// View renders the shop.
func (m ShopModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SHOP"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Banked score: %d", m.wallet.Snapshot().BankedScore), m.width))
	b.WriteString("\n\n")
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Status returns the result line of the last purchase or equip.
func (m ShopModel) Status() string {
	return m.status
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ShopModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ShopModel) IsQuitting() bool {
	return m.quitting
}
