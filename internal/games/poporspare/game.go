// Package poporspare implements the balloon minigame: bad balloons rise
// from the bottom and must be popped before they escape, while good ones
// must be spared.
package poporspare

import (
	"math"

	"github.com/vovakirdan/ramadhan-rush/internal/audio"
	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/entity"
	"github.com/vovakirdan/ramadhan-rush/internal/registry"
)

// ID is the catalog id of this variant.
const ID = registry.VariantID(config.PopOrSpare)

const (
	spawnChance = 0.06 // times multiplier
	baseCount   = 5    // plus floor(multiplier)
	spawnY      = 650.0
	escapeY     = -50.0
	hitRadius   = 55.0
	swayAmp     = 80.0
	swayPeriod  = 200.0
)

type balloon struct {
	entity.Body
	Bad    bool
	BaseX  float64
	Offset float64
}

// Game holds the state of one round.
type Game struct {
	balloons *entity.Store[balloon]
}

func init() {
	registry.Register(ID, func() registry.Variant { return New() })
}

// New creates a new round.
func New() *Game {
	return &Game{balloons: entity.NewStore[balloon](8)}
}

// Init clears the sky.
func (g *Game) Init(r registry.Round) {
	g.balloons.Clear()
}

// Update spawns, applies the tap, then lifts every balloon.
func (g *Game) Update(r registry.Round, dt float64, p core.PointerSignal) {
	hard := r.Hard()
	g.spawn(r)

	if p.Tapped {
		if i := g.balloons.LastWithin(p.Pos(), hitRadius, nil); i >= 0 {
			b := *g.balloons.At(i)
			if b.Bad {
				if hard {
					r.AddScore(30)
				} else {
					r.AddScore(15)
				}
				r.Play(audio.CueHit)
				r.Burst(b.Pos.X, b.Pos.Y, core.ColorDanger, 15, '*')
			} else {
				r.LoseLife()
				r.Burst(b.Pos.X, b.Pos.Y, core.ColorAmber, 15, 0)
			}
			g.balloons.RemoveAt(i)
		}
	}

	ratio := entity.Ratio(dt)
	clock := r.Clock()
	g.balloons.Each(func(_ int, b *balloon) {
		b.Pos.Y += b.Vel.Y * ratio
		if hard {
			b.Pos.X = b.BaseX + math.Sin((clock+b.Offset)/swayPeriod)*swayAmp
		} else {
			b.Pos.X += math.Sin(b.Pos.Y/50) * 1.5 * ratio
		}
	})
	g.balloons.Prune(func(b *balloon) bool {
		if b.Pos.Y >= escapeY {
			return true
		}
		if b.Bad {
			r.LoseLife()
		}
		return false
	})
}

func (g *Game) spawn(r registry.Round) {
	mult := r.Multiplier()
	rng := r.Rand()
	if g.balloons.Len() >= baseCount+int(math.Floor(mult)) || rng.Float64() >= spawnChance*mult {
		return
	}

	threshold := 0.6
	if r.Hard() {
		threshold = 0.4
	}
	b := balloon{Bad: rng.Float64() > threshold}
	b.Pos = core.Vec{X: 80 + rng.Float64()*640, Y: spawnY}
	b.BaseX = 80 + rng.Float64()*640
	b.Vel.Y = -(2 + rng.Float64()*2 + mult)
	b.Offset = rng.Float64() * 1000
	g.balloons.Add(b)
}

// Complete is always false; the round runs until the timer ends.
func (g *Game) Complete() bool { return false }

// TimeoutPenalty is always false; escaped balloons already cost lives.
func (g *Game) TimeoutPenalty() bool { return false }

// Draw renders every balloon with its string.
func (g *Game) Draw(c core.Canvas, hard bool) {
	g.balloons.Each(func(_ int, b *balloon) {
		col := core.ColorBlue
		sym := 'O'
		if b.Bad {
			col = core.ColorDanger
			sym = 'X'
		}
		c.Circle(b.Pos, 35, 'o', col)
		c.Glyph(b.Pos, sym, core.ColorWhite)
		c.Glyph(core.Vec{X: b.Pos.X, Y: b.Pos.Y + 50}, '|', core.ColorGray)
	})
}
