package gui

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/engine"
	"github.com/vovakirdan/ramadhan-rush/internal/render"
)

// Game adapts the engine to ebiten.Game. A run starts as soon as the
// window opens; on the game-over screen a click or R starts the next one.
type Game struct {
	loop    *engine.Loop
	opts    engine.RunOptions
	touches []ebiten.TouchID
	logger  *log.Logger
}

// NewGame starts a run on e.
func NewGame(e *engine.Engine, opts engine.RunOptions, logger *log.Logger) (*Game, error) {
	if err := e.Start(opts); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		loop:   engine.NewLoop(e, &core.TapBuffer{}),
		opts:   opts,
		logger: logger,
	}, nil
}

// Update polls input and advances the engine by the elapsed wall time.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.loop.Stop()
		return ebiten.Termination
	}

	e := g.loop.Engine()
	tapped := g.pollTaps()
	if e.Screen() == engine.ScreenGameOver {
		if tapped || inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.loop.Taps().Take()
			if err := playAgain(e, g.opts); err != nil {
				g.logger.Error("cannot restart run", "err", err)
			}
		}
	}

	if !g.loop.Frame(time.Now()) {
		return ebiten.Termination
	}
	return nil
}

// playAgain leaves the game-over screen through the menu and starts the
// next run with the same options.
func playAgain(e *engine.Engine, opts engine.RunOptions) error {
	if err := e.ReturnToMenu(); err != nil {
		return err
	}
	return e.Start(opts)
}

// pollTaps pushes this tick's mouse and touch presses into the buffer.
func (g *Game) pollTaps() bool {
	tapped := false
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.loop.Taps().Push(float64(x), float64(y))
		tapped = true
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.loop.Taps().Push(float64(x), float64(y))
		tapped = true
	}
	return tapped
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	render.Frame(newCanvas(screen), g.loop.Engine())
}

// Layout fixes the screen to the logical play field; ebiten scales it to
// the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return core.LogicalW, core.LogicalH
}

// Engine returns the engine the window drives.
func (g *Game) Engine() *engine.Engine {
	return g.loop.Engine()
}

// Run opens the window and blocks until it is closed. tps <= 0 keeps
// ebiten's default of 60 updates per second.
func Run(g *Game, title string, tps int) error {
	if tps > 0 {
		ebiten.SetTPS(tps)
	}
	ebiten.SetWindowSize(core.LogicalW, core.LogicalH)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
