package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/engine"
)

type view int

const (
	viewMenu view = iota
	viewCustom
	viewShop
	viewScores
	viewGame
)

// SessionOptions configure one player's session.
type SessionOptions struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Deps    engine.Deps
	// Runs feeds the scoreboard; nil hides it.
	Runs RunSource
	// Start skips the menu and begins this run right away.
	Start *engine.RunOptions
}

// SessionModel manages the full session flow: menu -> run -> menu, with
// the custom picker, shop and scoreboard in between. It owns the one
// engine of this player. Used both locally and per SSH session.
type SessionModel struct {
	opts     SessionOptions
	engine   *engine.Engine
	runtime  core.RuntimeConfig
	view     view
	menu     MenuModel
	custom   CustomModel
	shop     ShopModel
	scores   ScoreboardModel
	game     *GameModel
	err      error
	quitting bool
}

// NewSessionModel creates a session on the main menu.
func NewSessionModel(opts SessionOptions) SessionModel {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}

	m := SessionModel{
		opts:    opts,
		engine:  engine.New(opts.Config, opts.Deps, rt.Seed),
		runtime: rt,
	}
	m.menu = m.newMenu()
	if opts.Start != nil {
		m.startRun(*opts.Start)
	}
	return m
}

func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.opts.Config, m.engine.Snapshot(), m.runtime.ScreenW, m.runtime.ScreenH, m.opts.Runs != nil)
}

// startRun switches to the game view, or stays put and records the error.
func (m *SessionModel) startRun(opts engine.RunOptions) tea.Cmd {
	gm, err := NewGameModel(m.engine, opts, m.runtime)
	if err != nil {
		m.err = err
		m.view = viewMenu
		m.menu = m.newMenu()
		return nil
	}
	m.err = nil
	m.game = &gm
	m.view = viewGame
	return gm.Init()
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.view == viewGame && m.game != nil {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewCustom:
		return m.updateCustom(msg)
	case viewShop:
		return m.updateShop(msg)
	case viewScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}
	m.menu.selected = nil

	switch selected.Choice {
	case ChoicePlay:
		cmd = m.startRun(engine.RunOptions{Profile: selected.Profile})
	case ChoiceCustom:
		m.custom = NewCustomModel(m.opts.Config, m.runtime.ScreenW)
		m.view = viewCustom
	case ChoiceShop:
		m.shop = NewShopModel(m.engine, m.runtime.ScreenW, m.runtime.ScreenH)
		m.view = viewShop
	case ChoiceScores:
		m.scores = NewScoreboardModel(m.opts.Runs, m.opts.Config.Profiles, m.runtime.ScreenW, m.runtime.ScreenH)
		m.view = viewScores
	}
	return m, cmd
}

func (m SessionModel) updateCustom(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.custom.Update(msg)
	if custom, ok := newModel.(CustomModel); ok {
		m.custom = custom
	}

	switch {
	case m.custom.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.custom.IsGoingBack():
		m.backToMenu()
	case m.custom.Confirmed():
		cmd = m.startRun(m.custom.Options())
	}
	return m, cmd
}

func (m SessionModel) updateShop(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.shop.Update(msg)
	if shopModel, ok := newModel.(ShopModel); ok {
		m.shop = shopModel
	}

	switch {
	case m.shop.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.shop.IsGoingBack():
		m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = scores
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.backToMenu()
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.game = nil
		m.backToMenu()
		return m, nil
	}
	return m, cmd
}

func (m *SessionModel) backToMenu() {
	m.view = viewMenu
	m.menu = m.newMenu()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		if m.game != nil {
			return m.game.View()
		}
	case viewCustom:
		return m.custom.View()
	case viewShop:
		return m.shop.View()
	case viewScores:
		return m.scores.View()
	}

	out := m.menu.View()
	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		out += "\n" + centerText(errStyle.Render(m.err.Error()), m.runtime.ScreenW)
	}
	return out
}

// Engine returns the session's engine.
func (m SessionModel) Engine() *engine.Engine {
	return m.engine
}

// Run starts a local session in the alternate screen with mouse support.
func Run(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
