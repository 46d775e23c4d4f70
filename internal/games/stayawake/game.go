// Package stayawake implements the alertness-meter minigame: the meter
// drains over time, faster while the fan blows, and every tap tops it up.
// In hard mode overshooting to full is as bad as dozing off.
package stayawake

import (
	"github.com/vovakirdan/ramadhan-rush/internal/audio"
	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/entity"
	"github.com/vovakirdan/ramadhan-rush/internal/registry"
)

// ID is the catalog id of this variant.
const ID = registry.VariantID(config.StayAwake)

const (
	startMeter     = 50.0
	casualReset    = 60.0
	hardReset      = 50.0
	fanChance      = 0.008 // per frame while the fan is off
	fanDurationMs  = 1000.0
	fanDrainFactor = 2.5
)

// Game holds the state of one round.
type Game struct {
	meter     float64 // 0..100
	fanActive bool
	fanTimer  float64
	fanAngle  float64
}

func init() {
	registry.Register(ID, func() registry.Variant { return New() })
}

// New creates a new round.
func New() *Game {
	return &Game{meter: startMeter}
}

// Init fills the meter halfway and turns the fan off.
func (g *Game) Init(r registry.Round) {
	g.meter = startMeter
	g.fanActive = false
	g.fanTimer = 0
	g.fanAngle = 0
}

// Meter returns the current alertness in 0..100.
func (g *Game) Meter() float64 {
	return g.meter
}

// FanActive reports whether the drain hazard is running.
func (g *Game) FanActive() bool {
	return g.fanActive
}

// Update drains the meter, rolls the fan hazard and applies the tap.
func (g *Game) Update(r registry.Round, dt float64, p core.PointerSignal) {
	hard := r.Hard()
	drain := 0.05 * r.Multiplier()
	if hard {
		drain = 0.08 * r.Multiplier()
	}

	if g.fanActive {
		drain *= fanDrainFactor
		g.fanTimer -= dt
		g.fanAngle += 0.3 * entity.Ratio(dt)
		if g.fanTimer <= 0 {
			g.fanActive = false
		}
	} else if r.Rand().Float64() < fanChance {
		g.fanActive = true
		g.fanTimer = fanDurationMs
	}

	g.meter -= drain * dt

	if p.Tapped {
		r.Play(audio.CueTap)
		if hard {
			g.meter += 12
		} else {
			g.meter += 16
		}
		r.Burst(core.LogicalW/2, 250, core.ColorMint, 3, '\'')
	}
	g.meter = core.ClampF(g.meter, 0, 100)

	switch {
	case hard && (g.meter <= 0 || g.meter >= 100):
		r.LoseLife()
		g.meter = hardReset
		g.fanActive = false
	case !hard && g.meter <= 0:
		r.LoseLife()
		g.meter = casualReset
		g.fanActive = false
	}
}

// Complete is always false; the round runs until the timer ends.
func (g *Game) Complete() bool { return false }

// TimeoutPenalty is always false; the meter already costs lives.
func (g *Game) TimeoutPenalty() bool { return false }

func (g *Game) sleepy(hard bool) bool {
	if hard {
		return g.meter < 40 || g.meter > 80
	}
	return g.meter < 40
}

var fanFrames = []rune{'|', '/', '-', '\\'}

// Draw renders the face, the fan and the meter.
func (g *Game) Draw(c core.Canvas, hard bool) {
	if g.fanActive {
		frame := fanFrames[int(g.fanAngle*2)%len(fanFrames)]
		c.Circle(core.Vec{X: core.LogicalW - 150, Y: 200}, 30, frame, core.ColorCyan)
		c.Text(core.Vec{X: core.LogicalW - 200, Y: 250}, "FAN!", core.ColorCyan)
	}

	face, col := "(o_o)", core.Accent(hard)
	if g.sleepy(hard) {
		face, col = "(-_-) zZ", core.ColorDanger
	}
	c.TextCentered(250, face, col)

	const meterW, meterH = 400.0, 36.0
	meterX, meterY := core.LogicalW/2-meterW/2, 400.0
	c.FillRect(core.Box{X: meterX, Y: meterY, W: meterW, H: meterH}, '.', core.ColorGray)
	if hard {
		c.FillRect(core.Box{X: meterX, Y: meterY, W: meterW * 0.3, H: meterH}, ':', core.ColorRed)
		c.FillRect(core.Box{X: meterX + meterW*0.7, Y: meterY, W: meterW * 0.3, H: meterH}, ':', core.ColorRed)
	}
	c.FillRect(core.Box{X: meterX, Y: meterY, W: meterW * g.meter / 100, H: meterH}, '█', col)
}
