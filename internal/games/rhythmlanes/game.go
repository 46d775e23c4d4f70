// Package rhythmlanes implements the falling-notes minigame: notes drop
// down vertical lanes and are hit by tapping their lane as they cross the
// hit line.
package rhythmlanes

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ramadhan-rush/internal/audio"
	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/entity"
	"github.com/vovakirdan/ramadhan-rush/internal/registry"
)

// ID is the catalog id of this variant.
const ID = registry.VariantID(config.RhythmLanes)

const (
	HitLineY     = core.LogicalH - 120
	missY        = core.LogicalH - 50
	spawnY       = -50
	spawnChance  = 0.035 // times multiplier
	hitWindow    = 120   // notes further than this from the line can't be hit
	perfectRange = 35
)

var (
	casualLanes = []float64{-130, 0, 130}
	hardLanes   = []float64{-150, -50, 50, 150}
	noteSymbols = []rune{'O', '=', 'U', '@'} // barrel, log, pot, drum
)

// lanes returns the lane center offsets from the middle of the field and
// the lane width.
func lanes(hard bool) ([]float64, float64) {
	if hard {
		return hardLanes, 100
	}
	return casualLanes, 130
}

type note struct {
	entity.Body
	Lane int
	Kind int // instrument, indexes noteSymbols
}

// Game holds the state of one round.
type Game struct {
	notes *entity.Store[note]
	combo int
}

func init() {
	registry.Register(ID, func() registry.Variant { return New() })
}

// New creates a new round.
func New() *Game {
	return &Game{notes: entity.NewStore[note](16)}
}

// Init resets the lanes and the combo.
func (g *Game) Init(r registry.Round) {
	g.notes.Clear()
	g.combo = 0
}

// Combo returns the current streak of hits.
func (g *Game) Combo() int {
	return g.combo
}

// Update spawns a note, resolves the tap, then moves notes down.
func (g *Game) Update(r registry.Round, dt float64, p core.PointerSignal) {
	hard, mult := r.Hard(), r.Multiplier()
	offsets, _ := lanes(hard)
	rng := r.Rand()

	if rng.Float64() < spawnChance*mult {
		lane := rng.Intn(len(offsets))
		speed := 3.5 + mult*1.8
		if hard {
			speed = 3.5 + mult*2.5
		}
		g.notes.Add(note{
			Body: entity.Body{
				Pos: core.Vec{X: core.LogicalW/2 + offsets[lane], Y: spawnY},
				Vel: core.Vec{Y: speed},
			},
			Lane: lane,
			Kind: rng.Intn(len(noteSymbols)),
		})
	}

	if p.Tapped {
		g.tap(r, p)
	}

	ratio := entity.Ratio(dt)
	g.notes.Each(func(_ int, n *note) { n.Move(ratio) })
	g.notes.Prune(func(n *note) bool {
		if n.Pos.Y <= missY {
			return true
		}
		r.LoseLife()
		g.combo = 0
		return false
	})
}

// laneAt returns the lane under x, or -1. Overlapping lanes resolve to the
// rightmost one.
func laneAt(x float64, hard bool) int {
	offsets, width := lanes(hard)
	lane := -1
	for i, off := range offsets {
		if math.Abs(x-(core.LogicalW/2+off)) < width/2 {
			lane = i
		}
	}
	return lane
}

func (g *Game) tap(r registry.Round, p core.PointerSignal) {
	hard := r.Hard()
	lane := laneAt(p.X, hard)
	if lane < 0 {
		return
	}

	i := g.notes.Nearest(hitWindow, func(n *note) (float64, bool) {
		return math.Abs(n.Pos.Y - HitLineY), n.Lane == lane
	})
	if i < 0 {
		g.combo = 0
		r.Play(audio.CueWrong)
		return
	}

	n := *g.notes.At(i)
	switch {
	case math.Abs(n.Pos.Y-HitLineY) >= perfectRange:
		r.AddScore(10)
	case hard:
		r.AddScore(50)
	default:
		r.AddScore(30)
	}
	r.Play(audio.Note(n.Kind))
	r.Burst(n.Pos.X, HitLineY, core.Accent(hard), 10, '♪')
	g.notes.RemoveAt(i)
	g.combo++
}

// Complete is always false; the round runs until the timer ends.
func (g *Game) Complete() bool { return false }

// TimeoutPenalty is always false; missed notes already cost lives.
func (g *Game) TimeoutPenalty() bool { return false }

// Draw renders the lanes, the hit line, the notes and the combo counter.
func (g *Game) Draw(c core.Canvas, hard bool) {
	offsets, _ := lanes(hard)
	accent := core.Accent(hard)
	for _, off := range offsets {
		x := core.LogicalW/2 + off
		c.FillRect(core.Box{X: x - 2, Y: 80, W: 4, H: core.LogicalH - 80}, ':', core.ColorGray)
	}
	c.FillRect(core.Box{X: 50, Y: HitLineY - 2, W: core.LogicalW - 100, H: 4}, '=', accent)

	g.notes.Each(func(_ int, n *note) {
		c.Glyph(n.Pos, noteSymbols[n.Kind], core.ColorBrightWhite)
	})

	col := core.ColorWhite
	if g.combo > 3 {
		col = accent
	}
	c.TextCentered(100, fmt.Sprintf("COMBO: %d", g.combo), col)
}
