// Package servetables implements the waiter minigame: each table shows a
// row of empty plates, dishes come out of the kitchen one at a time, and
// the player must put every dish on its matching plate, left to right.
package servetables

import (
	"fmt"

	"github.com/vovakirdan/ramadhan-rush/internal/audio"
	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/entity"
	"github.com/vovakirdan/ramadhan-rush/internal/registry"
)

// ID is the catalog id of this variant.
const ID = registry.VariantID(config.ServeTables)

// Dishes is everything the kitchen cooks.
var Dishes = []rune{'r', 'n', 'p', 'g', 'f', 'l', 'u', 'h'}

const (
	plateY    = 270.0
	plateStep = 100.0
	hitRadius = 60.0
)

type plate struct {
	entity.Body
	Dish   rune
	Filled bool
}

// Game holds the state of one round.
type Game struct {
	plates  *entity.Store[plate]
	pending []rune // dishes still to serve, front first
	served  int
	quota   int
	done    bool
}

func init() {
	registry.Register(ID, func() registry.Variant { return New() })
}

// New creates a new round.
func New() *Game {
	return &Game{plates: entity.NewStore[plate](4)}
}

func plateCount(hard bool) int {
	if hard {
		return 4
	}
	return 3
}

// Init sets the table quota and deals the first table.
func (g *Game) Init(r registry.Round) {
	g.quota = plateCount(r.Hard())
	g.served = 0
	g.done = false
	g.deal(r)
}

// deal lays out a fresh table with distinct dishes and queues them in a
// shuffled order.
func (g *Game) deal(r registry.Round) {
	rng := r.Rand()
	n := plateCount(r.Hard())

	pool := append([]rune(nil), Dishes...)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	g.plates.Clear()
	x0 := core.LogicalW/2 - float64(n-1)*plateStep/2
	for i := 0; i < n; i++ {
		g.plates.Add(plate{
			Body: entity.Body{Pos: core.Vec{X: x0 + float64(i)*plateStep, Y: plateY}},
			Dish: pool[i],
		})
	}
	g.pending = append(g.pending[:0], pool[:n]...)
	rng.Shuffle(len(g.pending), func(i, j int) { g.pending[i], g.pending[j] = g.pending[j], g.pending[i] })
}

// Current returns the dish waiting to be served, or 0 when none.
func (g *Game) Current() rune {
	if len(g.pending) == 0 {
		return 0
	}
	return g.pending[0]
}

// Served returns the number of completed tables.
func (g *Game) Served() int {
	return g.served
}

// Update applies the tap; nothing moves on its own.
func (g *Game) Update(r registry.Round, dt float64, p core.PointerSignal) {
	if !p.Tapped || g.done || len(g.pending) == 0 {
		return
	}

	i := g.plates.FirstWithin(p.Pos(), hitRadius, func(pl *plate) bool { return !pl.Filled })
	if i < 0 {
		return
	}
	pl := g.plates.At(i)
	if pl.Dish != g.pending[0] {
		r.LoseLife()
		r.Play(audio.CueWrong)
		r.Burst(pl.Pos.X, pl.Pos.Y, core.ColorDanger, 15, 'x')
		return
	}

	pl.Filled = true
	r.Play(audio.CueCoin)
	r.Burst(pl.Pos.X, pl.Pos.Y, core.ColorGold, 10, pl.Dish)
	g.pending = g.pending[1:]
	if len(g.pending) > 0 {
		return
	}

	g.served++
	r.Play(audio.CueWin)
	if g.served >= g.quota {
		if r.Hard() {
			r.AddScore(100)
		} else {
			r.AddScore(50)
		}
		g.done = true
		return
	}
	g.deal(r)
}

// Complete reports that the table quota was met.
func (g *Game) Complete() bool {
	return g.done
}

// TimeoutPenalty applies while tables are still waiting.
func (g *Game) TimeoutPenalty() bool {
	return g.served < g.quota
}

// Draw renders the plates, the dish in hand and the table counter.
func (g *Game) Draw(c core.Canvas, hard bool) {
	c.FillRect(core.Box{X: 150, Y: plateY - 60, W: 500, H: 120}, ' ', core.ColorBrown)
	g.plates.Each(func(_ int, pl *plate) {
		col := core.ColorGray
		if pl.Filled {
			col = core.Accent(hard)
		}
		c.Circle(pl.Pos, 40, 'o', col)
		if pl.Filled {
			c.Glyph(pl.Pos, pl.Dish, core.ColorBrightWhite)
		} else {
			// Faded hint of the dish that belongs here.
			c.Glyph(pl.Pos, pl.Dish, core.ColorGray)
		}
	})
	if d := g.Current(); d != 0 {
		c.TextCentered(450, "SERVE: "+string(d), core.ColorBrightWhite)
	}
	c.TextCentered(520, tableLabel(g.served, g.quota), core.ColorWhite)
}

func tableLabel(served, quota int) string {
	return fmt.Sprintf("TABLES %d/%d", served, quota)
}
