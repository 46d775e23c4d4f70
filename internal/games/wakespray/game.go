// Package wakespray implements the wake-up minigame: sleepers doze off
// and wake up on their own timers, and the player sprays the sleepy ones
// with a limited water tank that is refilled at the tap.
package wakespray

import (
	"github.com/vovakirdan/ramadhan-rush/internal/audio"
	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/entity"
	"github.com/vovakirdan/ramadhan-rush/internal/registry"
)

// ID is the catalog id of this variant.
const ID = registry.VariantID(config.WakeSpray)

const (
	tankFull    = 100
	sprayCost   = 20
	sleeperN    = 6
	hitRadius   = 60.0
	refillLineY = 500.0 // taps below this line are on the refill counter
)

// Refill is the hot-zone of the water tap.
var Refill = core.Box{X: 650, Y: 520, W: 120, H: 50}

type sleeper struct {
	entity.Body
	Sleepy bool
	Timer  float64 // ms until the state flips
}

// Game holds the state of one round.
type Game struct {
	water    int
	sleepers *entity.Store[sleeper]
}

func init() {
	registry.Register(ID, func() registry.Variant { return New() })
}

// New creates a new round.
func New() *Game {
	return &Game{sleepers: entity.NewStore[sleeper](sleeperN)}
}

// Init fills the tank and seats the sleepers on a jittered 3x2 grid.
func (g *Game) Init(r registry.Round) {
	rng := r.Rand()
	g.water = tankFull
	g.sleepers.Clear()
	for i := 0; i < sleeperN; i++ {
		pos := core.Vec{
			X: 150 + float64(i%3)*200 + (rng.Float64()*40 - 20),
			Y: 250 + float64(i/3)*150 + (rng.Float64()*40 - 20),
		}
		g.sleepers.Add(sleeper{
			Body:   entity.Body{Pos: pos},
			Sleepy: rng.Float64() > 0.5,
			Timer:  1000 + rng.Float64()*2000,
		})
	}
}

// Water returns the tank level.
func (g *Game) Water() int {
	return g.water
}

// Update flips sleepers whose timer ran out, then applies the tap.
func (g *Game) Update(r registry.Round, dt float64, p core.PointerSignal) {
	rng := r.Rand()
	awakeBase := 2000.0
	if r.Hard() {
		awakeBase = 800
	}
	g.sleepers.Each(func(_ int, s *sleeper) {
		s.Timer -= dt
		if s.Timer > 0 {
			return
		}
		s.Sleepy = !s.Sleepy
		if s.Sleepy {
			s.Timer = 1500 + rng.Float64()*1500
		} else {
			s.Timer = awakeBase + rng.Float64()*2000
		}
	})

	if p.Tapped {
		g.tap(r, p)
	}
}

func (g *Game) tap(r registry.Round, p core.PointerSignal) {
	if Refill.Contains(p.Pos()) {
		g.water = tankFull
		r.Play(audio.CueWater)
		c := Refill.Center()
		r.Burst(c.X, c.Y, core.ColorWater, 15, '~')
		return
	}

	if g.water >= sprayCost {
		if i := g.sleepers.FirstWithin(p.Pos(), hitRadius, nil); i >= 0 {
			s := g.sleepers.At(i)
			g.water -= sprayCost
			r.Play(audio.CueWater)
			r.Burst(s.Pos.X, s.Pos.Y, core.ColorWater, 10, '~')
			if s.Sleepy {
				if r.Hard() {
					r.AddScore(40)
				} else {
					r.AddScore(20)
				}
				r.Play(audio.CueWin)
				s.Sleepy = false
				s.Timer = 2000 + r.Rand().Float64()*2000
			} else {
				r.LoseLife()
				r.Play(audio.CueAngry)
				r.Burst(s.Pos.X, s.Pos.Y, core.ColorDanger, 15, '!')
			}
			return
		}
	}

	if g.water < sprayCost && p.Y < refillLineY {
		r.Play(audio.CueWrong)
	}
}

// Complete is always false; the round runs until the timer ends.
func (g *Game) Complete() bool { return false }

// TimeoutPenalty is always false; sleepers only cost lives when woken
// while awake.
func (g *Game) TimeoutPenalty() bool { return false }

// Draw renders the sleepers, the tank gauge and the refill counter.
func (g *Game) Draw(c core.Canvas, hard bool) {
	g.sleepers.Each(func(_ int, s *sleeper) {
		if s.Sleepy {
			c.Glyph(s.Pos, 'z', core.ColorBlue)
			c.Text(core.Vec{X: s.Pos.X + 20, Y: s.Pos.Y - 30}, "Zz", core.ColorGray)
		} else {
			c.Glyph(s.Pos, 'O', core.Accent(hard))
		}
	})

	c.FillRect(core.Box{X: 30, Y: 520, W: 200, H: 20}, '.', core.ColorGray)
	c.FillRect(core.Box{X: 30, Y: 520, W: 2 * float64(g.water), H: 20}, '=', core.ColorWater)
	col := core.ColorWater
	if g.water < sprayCost {
		col = core.ColorDanger
	}
	c.FillRect(Refill, ' ', col)
	c.Text(core.Vec{X: Refill.X + 20, Y: Refill.Y + 25}, "REFILL", core.ColorBrightWhite)
}
