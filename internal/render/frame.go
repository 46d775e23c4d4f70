// Package render composes a full frame from the engine state onto any
// core.Canvas: backdrop, the running variant, particles, the HUD and the
// between-round card.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/engine"
	"github.com/vovakirdan/ramadhan-rush/internal/entity"
)

const (
	timerBarH  = 12
	lowTimeCut = 0.3 // timer bar turns red below this fraction
	starCount  = 20
)

// Title is the name shown on the menu card.
const Title = "RAMADHAN RUSH"

// Frame draws the engine's current state.
func Frame(c core.Canvas, e *engine.Engine) {
	hard := e.Hard()
	Background(c, hard, e.Scenery(), e.Clock())

	switch e.Screen() {
	case engine.ScreenMenu:
		menuCard(c)
		return
	case engine.ScreenGameOver:
		gameOverCard(c, e)
		return
	}

	timerBar(c, e.TimeRatio(), hard)
	if e.Screen() == engine.ScreenTransition {
		transitionCard(c, e)
		return
	}

	if v := e.Variant(); v != nil {
		v.Draw(c, hard)
	}
	Particles(c, e.Particles())
	hud(c, e)
}

// BackgroundColor returns the base color of a backdrop.
func BackgroundColor(hard bool, s engine.Scenery) core.Color {
	if hard {
		return core.ColorBrown
	}
	switch s {
	case engine.SceneryNightMarket:
		return core.ColorPurple
	case engine.SceneryStreet:
		return core.ColorNavy
	case engine.SceneryVillage:
		return core.ColorDarkGreen
	}
	return core.ColorGreen
}

// Background draws the sky, the moon, drifting stars and the silhouette of
// the scenery.
func Background(c core.Canvas, hard bool, s engine.Scenery, clock float64) {
	c.Background(BackgroundColor(hard, s))

	moon := core.Vec{X: core.LogicalW - 120, Y: 120}
	if hard {
		c.Circle(moon, 50, 'O', core.ColorGold)
	} else {
		c.Circle(moon, 50, '(', core.ColorYellow)
	}

	starCol := core.ColorWhite
	if hard {
		starCol = core.ColorGold
	}
	for i := 0; i < starCount; i++ {
		x := math.Mod(clock/15+float64(i)*80, core.LogicalW)
		y := core.LogicalH - math.Mod(clock/25+float64(i)*50, core.LogicalH)
		c.Glyph(core.Vec{X: x, Y: y}, '.', starCol)
	}

	shade := core.ColorGray
	if hard || s == engine.SceneryMosque {
		// Dome and two minarets.
		c.Circle(core.Vec{X: core.LogicalW / 2, Y: core.LogicalH}, 160, '^', shade)
		c.FillRect(core.Box{X: core.LogicalW/2 - 260, Y: core.LogicalH - 300, W: 45, H: 300}, '|', shade)
		c.FillRect(core.Box{X: core.LogicalW/2 + 215, Y: core.LogicalH - 300, W: 45, H: 300}, '|', shade)
		return
	}
	switch s {
	case engine.SceneryNightMarket:
		c.FillRect(core.Box{X: 50, Y: core.LogicalH - 150, W: 150, H: 150}, '#', shade)
		c.FillRect(core.Box{X: core.LogicalW - 250, Y: core.LogicalH - 100, W: 200, H: 100}, '#', shade)
	case engine.SceneryStreet:
		c.FillRect(core.Box{X: 100, Y: core.LogicalH - 250, W: 100, H: 250}, '#', shade)
		c.FillRect(core.Box{X: core.LogicalW - 180, Y: core.LogicalH - 200, W: 80, H: 200}, '#', shade)
		c.FillRect(core.Box{X: core.LogicalW - 200, Y: core.LogicalH - 400, W: 20, H: 400}, '|', shade)
	case engine.SceneryVillage:
		c.Circle(core.Vec{X: 150, Y: core.LogicalH}, 200, '^', shade)
		c.Circle(core.Vec{X: core.LogicalW - 150, Y: core.LogicalH}, 250, '^', shade)
	}
}

// Particles draws every live particle as its symbol or a dot.
func Particles(c core.Canvas, ps *entity.Particles) {
	ps.Each(func(p entity.Particle) {
		r := p.Symbol
		if r == 0 {
			r = '.'
			if p.Size > 5 {
				r = 'o'
			}
		}
		c.Glyph(p.Pos, r, p.Color)
	})
}

func timerBar(c core.Canvas, ratio float64, hard bool) {
	col := core.Accent(hard)
	if ratio < lowTimeCut {
		col = core.ColorDanger
	}
	c.FillRect(core.Box{X: 0, Y: 0, W: core.LogicalW * ratio, H: timerBarH}, '=', col)
}

// ScoreLabel returns the score text of the HUD.
func ScoreLabel(score int, custom, double bool) string {
	if custom {
		return "CUSTOM"
	}
	s := fmt.Sprintf("SCORE: %d", score)
	if double {
		s += " (2X)"
	}
	return s
}

// LivesLabel returns the lives text of the HUD.
func LivesLabel(lives int) string {
	if lives <= 0 {
		return ""
	}
	return strings.Repeat("♥", lives)
}

func hud(c core.Canvas, e *engine.Engine) {
	hard := e.Hard()
	c.Text(core.Vec{X: 20, Y: 45}, ScoreLabel(e.Score(), e.Custom(), e.Double()), core.ColorBrightWhite)
	lives := LivesLabel(e.Lives())
	c.Text(core.Vec{X: core.LogicalW - 20 - float64(len([]rune(lives)))*10 - 60, Y: 45}, lives, core.ColorDanger)
	c.Text(core.Vec{X: core.LogicalW/2 - 30, Y: 45}, fmt.Sprintf("LV %d", e.Level()), core.Accent(hard))
}

func transitionCard(c core.Canvas, e *engine.Engine) {
	hard := e.Hard()
	def := e.VariantDef()
	mid := core.LogicalH / 2.0

	titleCol, nameCol := core.ColorMint, core.ColorAmber
	if hard {
		titleCol, nameCol = core.ColorBrightWhite, core.ColorGold
	}
	c.TextCentered(mid-40, "GET READY", titleCol)
	c.TextCentered(mid+30, strings.ToUpper(def.Name), nameCol)
	c.TextCentered(mid+85, def.BriefFor(hard), core.ColorWhite)
}

func menuCard(c core.Canvas) {
	c.TextCentered(220, Title, core.ColorGold)
	c.TextCentered(300, "tap or press enter to start", core.ColorWhite)
}

func gameOverCard(c core.Canvas, e *engine.Engine) {
	c.TextCentered(220, "GAME OVER", core.ColorDanger)
	if e.Custom() {
		c.TextCentered(290, "practice run finished", core.ColorWhite)
	} else {
		c.TextCentered(290, fmt.Sprintf("SCORE %d  LEVEL %d", e.Score(), e.Level()), core.ColorBrightWhite)
		c.TextCentered(330, fmt.Sprintf("BANK %d", e.Snapshot().BankedScore), core.ColorGold)
	}
	c.TextCentered(400, "tap or press enter for the menu", core.ColorWhite)
}
