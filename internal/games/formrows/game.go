// Package formrows implements the fill-the-gaps minigame: each row of
// worshippers has one empty spot, and rows must be completed in order by
// tapping the gap of the active row.
package formrows

import (
	"math"

	"github.com/vovakirdan/ramadhan-rush/internal/audio"
	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/entity"
	"github.com/vovakirdan/ramadhan-rush/internal/registry"
)

// ID is the catalog id of this variant.
const ID = registry.VariantID(config.FormRows)

const (
	slotStart   = 100
	slotStep    = 80
	bandHalf    = 50 // a tap within this of the row's y counts as on the row
	gapRadius   = 65
	driftMinX   = 150
	driftMaxX   = core.LogicalW - 150
	driftPeriod = 300
	driftSpeed  = 3
)

// slots returns the x positions a worshipper (or the gap) can take.
func slots() []float64 {
	var xs []float64
	for x := slotStart; x < core.LogicalW-100; x += slotStep {
		xs = append(xs, float64(x))
	}
	return xs
}

type row struct {
	GapX float64
}

// Game holds the state of one round.
type Game struct {
	rows   []row
	active int // index of the row waiting for a tap
}

func init() {
	registry.Register(ID, func() registry.Variant { return New() })
}

// New creates a new round.
func New() *Game {
	return &Game{}
}

func rowCount(hard bool) int {
	if hard {
		return 4
	}
	return 3
}

// rowY returns the vertical center of row i.
func rowY(i int, hard bool) float64 {
	if hard {
		return 150 + float64(i)*80
	}
	return 200 + float64(i)*100
}

// Init lays out the rows with one random gap each.
func (g *Game) Init(r registry.Round) {
	xs := slots()
	rng := r.Rand()
	n := rowCount(r.Hard())
	g.rows = make([]row, n)
	for i := range g.rows {
		g.rows[i].GapX = xs[rng.Intn(len(xs))]
	}
	g.active = 0
}

// Active returns the index of the row waiting for a tap.
func (g *Game) Active() int {
	return g.active
}

// Update drifts the active gap in hard mode and resolves the tap.
func (g *Game) Update(r registry.Round, dt float64, p core.PointerSignal) {
	hard := r.Hard()
	if g.active >= len(g.rows) {
		return
	}

	cur := &g.rows[g.active]
	if hard {
		cur.GapX += math.Sin(r.Clock()/driftPeriod) * driftSpeed * entity.Ratio(dt)
		cur.GapX = core.ClampF(cur.GapX, driftMinX, driftMaxX)
	}

	if !p.Tapped {
		return
	}
	y := rowY(g.active, hard)
	if p.Y <= y-bandHalf || p.Y >= y+bandHalf {
		return
	}
	if math.Abs(p.X-cur.GapX) >= gapRadius {
		r.LoseLife()
		return
	}

	if hard {
		r.AddScore(50)
	} else {
		r.AddScore(40)
	}
	r.Play(audio.CueCoin)
	r.Burst(cur.GapX, y, core.ColorMint, 15, '+')
	g.active++

	if g.active >= len(g.rows) {
		if hard {
			r.AddScore(150)
		} else {
			r.AddScore(100)
		}
		r.Play(audio.CueWin)
	}
}

// Complete reports that every row is filled.
func (g *Game) Complete() bool {
	return len(g.rows) > 0 && g.active >= len(g.rows)
}

// TimeoutPenalty applies while any row is still open.
func (g *Game) TimeoutPenalty() bool {
	return g.active < len(g.rows)
}

// Draw renders the rows, the worshippers and the active gap.
func (g *Game) Draw(c core.Canvas, hard bool) {
	accent := core.Accent(hard)
	xs := slots()
	for i, rw := range g.rows {
		y := rowY(i, hard)
		done := i < g.active
		bandCol := core.ColorGray
		if i == g.active {
			bandCol = accent
		}
		c.FillRect(core.Box{X: 50, Y: y - 35, W: core.LogicalW - 100, H: 4}, '-', bandCol)

		for _, x := range xs {
			if !done && math.Abs(x-rw.GapX) < 40 {
				continue
			}
			c.Glyph(core.Vec{X: x, Y: y}, 'i', core.ColorWhite)
		}
		if i == g.active {
			c.Text(core.Vec{X: rw.GapX - 10, Y: y}, "[ ]", core.ColorGold)
		}
	}
}
