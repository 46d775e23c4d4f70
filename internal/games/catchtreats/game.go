// Package catchtreats implements the tap-the-treats minigame: treats pop up
// for a short time and must be tapped before they spoil, while spoiled food
// and rivals must be left alone.
package catchtreats

import (
	"math"

	"github.com/vovakirdan/ramadhan-rush/internal/audio"
	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/entity"
	"github.com/vovakirdan/ramadhan-rush/internal/registry"
)

// ID is the catalog id of this variant.
const ID = registry.VariantID(config.CatchTreats)

const (
	spawnChance   = 0.08
	baseCount     = 4  // plus floor(multiplier)
	minSpacing    = 80 // casual spawns keep this far from existing treats
	hitRadius     = 60
	goodLife      = 1800.0 // ms, divided by multiplier
	otherLife     = 2200.0
	swayAmplitude = 50
	swayPeriod    = 150
	treatSize     = 65
)

type kind int

const (
	kindGood kind = iota
	kindBad
	kindRival
)

var (
	goodSymbols  = []rune{'o', '@', '&', '%', 'Q', 'e', 'a', '8'}
	badSymbols   = []rune{'x', '#', '?'}
	rivalSymbols = []rune{'R', 'M'}
)

type treat struct {
	entity.Body
	Kind   kind
	Symbol rune
	BaseX  float64
	Offset float64 // ms added to the clock for the hard-mode sway
	Scale  float64 // pop-in animation, 0..1
}

// Game holds the state of one round.
type Game struct {
	treats *entity.Store[treat]
}

func init() {
	registry.Register(ID, func() registry.Variant { return New() })
}

// New creates a new round.
func New() *Game {
	return &Game{treats: entity.NewStore[treat](8)}
}

// Init clears the field; treats appear during Update.
func (g *Game) Init(r registry.Round) {
	g.treats.Clear()
}

// Update spawns, applies the tap, then ages and sways every treat.
func (g *Game) Update(r registry.Round, dt float64, p core.PointerSignal) {
	g.spawn(r)
	if p.Tapped {
		g.tap(r, p)
	}

	ratio := entity.Ratio(dt)
	hard := r.Hard()
	clock := r.Clock()
	g.treats.Each(func(_ int, t *treat) {
		t.Age(dt)
		if t.Scale < 1 {
			t.Scale = math.Min(1, t.Scale+0.15*ratio)
		}
		if hard {
			t.Pos.X = t.BaseX + math.Sin((clock+t.Offset)/swayPeriod)*swayAmplitude
		}
	})
	g.treats.Prune(func(t *treat) bool {
		if !t.Expired() {
			return true
		}
		if t.Kind == kindGood {
			r.LoseLife()
		}
		return false
	})
}

func (g *Game) spawn(r registry.Round) {
	mult := r.Multiplier()
	rng := r.Rand()
	if g.treats.Len() >= baseCount+int(math.Floor(mult)) || rng.Float64() >= spawnChance {
		return
	}

	pos := core.Vec{
		X: 80 + rng.Float64()*(core.LogicalW-160),
		Y: 150 + rng.Float64()*(core.LogicalH-280),
	}
	if !r.Hard() && g.treats.AnyWithin(pos, minSpacing) {
		return
	}

	t := treat{Body: entity.Body{Pos: pos}, BaseX: pos.X}
	life := otherLife
	switch roll := rng.Float64(); {
	case roll > 0.75:
		t.Kind = kindBad
		t.Symbol = badSymbols[rng.Intn(len(badSymbols))]
	case roll > 0.60:
		t.Kind = kindRival
		t.Symbol = rivalSymbols[rng.Intn(len(rivalSymbols))]
	default:
		t.Kind = kindGood
		t.Symbol = goodSymbols[rng.Intn(len(goodSymbols))]
		life = goodLife
	}
	t.Life = life / mult
	t.MaxLife = t.Life
	t.Offset = rng.Float64() * 1000
	g.treats.Add(t)
}

func (g *Game) tap(r registry.Round, p core.PointerSignal) {
	i := g.treats.LastWithin(p.Pos(), hitRadius, nil)
	if i < 0 {
		return
	}
	t := *g.treats.At(i)
	if t.Kind == kindGood {
		if r.Hard() {
			r.AddScore(40)
		} else {
			r.AddScore(20)
		}
		r.Play(audio.CueCoin)
		r.Burst(t.Pos.X, t.Pos.Y, core.Accent(r.Hard()), 10, t.Symbol)
	} else {
		r.LoseLife()
		r.Burst(t.Pos.X, t.Pos.Y, core.ColorDanger, 15, '*')
	}
	g.treats.RemoveAt(i)
}

// Complete is always false; the round runs until the timer ends.
func (g *Game) Complete() bool { return false }

// TimeoutPenalty is always false; missed treats already cost lives.
func (g *Game) TimeoutPenalty() bool { return false }

// Draw renders every treat with its remaining-life bar.
func (g *Game) Draw(c core.Canvas, hard bool) {
	g.treats.Each(func(_ int, t *treat) {
		size := treatSize * t.Scale
		col := core.ColorDanger
		if t.Kind == kindGood {
			col = core.Accent(hard)
		}
		c.FillRect(core.Box{X: t.Pos.X - size/2, Y: t.Pos.Y - size/2, W: size, H: size}, '.', col)
		c.Glyph(t.Pos, t.Symbol, col)
		if t.MaxLife > 0 {
			bar := size * math.Max(0, t.Life) / t.MaxLife
			c.FillRect(core.Box{X: t.Pos.X - size/2, Y: t.Pos.Y + size/2 + 6, W: bar, H: 5}, '_', core.ColorWhite)
		}
	})
}
