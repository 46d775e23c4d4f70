package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/engine"
	"github.com/vovakirdan/ramadhan-rush/internal/render"
)

// Keyboard cursor step in logical units.
const (
	cursorStepX = 25.0
	cursorStepY = 25.0
)

// GameModel is the Bubble Tea model for a run in progress. Mouse clicks
// and the keyboard cursor both become taps in the loop's buffer; every
// tick advances the engine by the elapsed wall-clock time.
type GameModel struct {
	loop       *engine.Loop
	screen     *core.Screen
	raster     *core.Raster
	config     core.RuntimeConfig
	opts       engine.RunOptions
	keys       GameKeyMap
	keyMapper  *KeyMapper
	help       help.Model
	cursor     core.Vec
	lastErr    error
	quitting   bool
	backToMenu bool
}

// NewGameModel starts a run on e and wraps it for Bubble Tea.
func NewGameModel(e *engine.Engine, opts engine.RunOptions, cfg core.RuntimeConfig) (GameModel, error) {
	if err := e.Start(opts); err != nil {
		return GameModel{}, err
	}

	cfg = playfieldConfig(cfg)
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		loop:      engine.NewLoop(e, &core.TapBuffer{}),
		screen:    screen,
		raster:    core.NewRaster(screen),
		config:    cfg,
		opts:      opts,
		keys:      DefaultGameKeyMap(),
		keyMapper: NewKeyMapper(),
		help:      h,
		cursor:    core.Vec{X: core.LogicalW / 2, Y: core.LogicalH / 2},
	}, nil
}

// playfieldConfig reserves the last terminal row for the help bar.
func playfieldConfig(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.ScreenW = core.Max(cfg.ScreenW, 1)
	cfg.ScreenH = core.Max(cfg.ScreenH-1, 1)
	return cfg
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if !m.loop.Frame(time.Time(msg)) {
			return m, nil
		}
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.loop.Stop()
		return m, tea.Quit
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	e := m.loop.Engine()
	if e.Screen() == engine.ScreenGameOver {
		action, _ := m.keyMapper.MapKey(msg)
		switch action {
		case core.ActionRestart:
			if m.lastErr = e.ReturnToMenu(); m.lastErr == nil {
				m.lastErr = e.Start(m.opts)
			}
		case core.ActionConfirm, core.ActionBack:
			m.lastErr = e.ReturnToMenu()
			m.backToMenu = m.lastErr == nil
			m.loop.Stop()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -cursorStepY)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, cursorStepY)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-cursorStepX, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(cursorStepX, 0)
	case key.Matches(msg, m.keys.Tap):
		m.loop.Taps().Push(m.cursor.X, m.cursor.Y)
	}
	return m, nil
}

func (m *GameModel) moveCursor(dx, dy float64) {
	m.cursor.X = core.ClampF(m.cursor.X+dx, 0, core.LogicalW-1)
	m.cursor.Y = core.ClampF(m.cursor.Y+dy, 0, core.LogicalH-1)
}

// handleMouse turns a left click into a tap at the clicked cell.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.config.ScreenH {
		return m, nil // help bar
	}
	p := m.config.ToLogical(msg.X, msg.Y)
	m.cursor = p
	m.loop.Taps().Push(p.X, p.Y)
	return m, nil
}

// handleResize processes window resize events. The engine works in logical
// units, so a resize never touches the run.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.config = playfieldConfig(m.config)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// saveScreenshot saves the current frame to a text file.
func (m *GameModel) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".rush", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	e := m.loop.Engine()
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_L%d_%s.txt", e.VariantID(), e.Level(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// draw composes the frame and the keyboard cursor into the screen buffer.
func (m GameModel) draw() {
	e := m.loop.Engine()
	render.Frame(m.raster, e)
	if e.Screen() == engine.ScreenPlay {
		col, row := m.config.ToCell(m.cursor)
		cell := m.screen.GetCell(col, row)
		if cell.Rune == ' ' {
			m.screen.SetCell(col, row, '┼', core.ColorGray)
		}
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	footer := m.help.View(m.keys)
	if m.loop.Engine().Screen() == engine.ScreenGameOver {
		footer = "r: play again  •  enter/esc: menu  •  q: quit"
	}
	if m.lastErr != nil {
		footer = m.lastErr.Error()
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Engine returns the engine this model drives.
func (m GameModel) Engine() *engine.Engine {
	return m.loop.Engine()
}

// Cursor returns the keyboard cursor in logical coordinates.
func (m GameModel) Cursor() core.Vec {
	return m.cursor
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
