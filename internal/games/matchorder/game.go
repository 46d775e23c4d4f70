// Package matchorder implements the takeaway-counter minigame: a customer
// asks for a set of dishes and the player must tap them in before the
// customer loses patience. Order of taps does not matter.
package matchorder

import (
	"sort"

	"github.com/vovakirdan/ramadhan-rush/internal/audio"
	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
	"github.com/vovakirdan/ramadhan-rush/internal/registry"
)

// ID is the catalog id of this variant.
const ID = registry.VariantID(config.MatchOrder)

// Menu is every dish a customer can order.
var Menu = []rune{'c', 'd', 'k', 'b', 't', 's', 'j', 'm'}

const (
	optionCount = 4
	btnW        = 100.0
	btnGap      = 15.0
	btnY        = 470.0
	totalW      = optionCount*btnW + (optionCount-1)*btnGap
	startX      = (core.LogicalW - totalW) / 2
)

// Button returns the hot-zone of the i-th option.
func Button(i int) core.Box {
	return core.Box{X: startX + float64(i)*(btnW+btnGap), Y: btnY, W: btnW, H: btnW}
}

// Game holds the state of one round.
type Game struct {
	target  []rune
	options []rune
	current []rune
	timer   float64 // customer patience, ms
}

func init() {
	registry.Register(ID, func() registry.Variant { return New() })
}

// New creates a new round.
func New() *Game {
	return &Game{}
}

// Init seats the first customer.
func (g *Game) Init(r registry.Round) {
	g.next(r)
}

// Target returns the dishes the current customer wants.
func (g *Game) Target() []rune { return g.target }

// Options returns the dishes on the buttons, left to right.
func (g *Game) Options() []rune { return g.options }

// Current returns the dishes tapped so far for this customer.
func (g *Game) Current() []rune { return g.current }

// next replaces the customer with a new order.
func (g *Game) next(r registry.Round) {
	rng := r.Rand()
	hard := r.Hard()

	size := 2
	g.timer = 5000
	if hard {
		size = 3
		g.timer = 3500
	}

	pool := append([]rune(nil), Menu...)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	g.target = append([]rune(nil), pool[:size]...)
	// pool is already shuffled, so the next dishes are distinct random fillers.
	g.options = append([]rune(nil), pool[:optionCount]...)
	rng.Shuffle(len(g.options), func(i, j int) { g.options[i], g.options[j] = g.options[j], g.options[i] })
	g.current = g.current[:0]
}

// Update ticks the customer's patience and applies the tap.
func (g *Game) Update(r registry.Round, dt float64, p core.PointerSignal) {
	g.timer -= dt
	if g.timer <= 0 {
		r.LoseLife()
		r.Play(audio.CueAngry)
		r.Burst(core.LogicalW/2, 250, core.ColorDanger, 20, '!')
		g.next(r)
	}
	if !p.Tapped {
		return
	}

	for i, dish := range g.options {
		b := Button(i)
		if !b.Contains(p.Pos()) {
			continue
		}
		g.current = append(g.current, dish)
		r.Play(audio.CueTap)
		c := b.Center()
		r.Burst(c.X, c.Y, core.ColorWhite, 5, 0)
		if r.Hard() {
			rng := r.Rand()
			rng.Shuffle(len(g.options), func(i, j int) { g.options[i], g.options[j] = g.options[j], g.options[i] })
		}
		break
	}

	if len(g.current) < len(g.target) {
		return
	}
	if sameDishes(g.current, g.target) {
		if r.Hard() {
			r.AddScore(80)
		} else {
			r.AddScore(50)
		}
		r.Play(audio.CueWin)
		r.Burst(core.LogicalW/2, 250, core.ColorGold, 20, '$')
	} else {
		r.LoseLife()
		r.Play(audio.CueWrong)
		r.Burst(core.LogicalW/2, 250, core.ColorDanger, 15, 'x')
	}
	g.next(r)
}

// sameDishes compares two orders as multisets.
func sameDishes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	sa := append([]rune(nil), a...)
	sb := append([]rune(nil), b...)
	sort.Slice(sa, func(i, j int) bool { return sa[i] < sa[j] })
	sort.Slice(sb, func(i, j int) bool { return sb[i] < sb[j] })
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

// Complete is always false; customers keep coming until the timer ends.
func (g *Game) Complete() bool { return false }

// TimeoutPenalty is always false; impatient customers already cost lives.
func (g *Game) TimeoutPenalty() bool { return false }

// Patience returns the customer's remaining time in milliseconds.
func (g *Game) Patience() float64 {
	return g.timer
}

// Draw renders the customer's bubble, the tray and the option buttons.
func (g *Game) Draw(c core.Canvas, hard bool) {
	c.Glyph(core.Vec{X: core.LogicalW / 2, Y: 150}, '&', core.ColorWhite)
	c.FillRect(core.Box{X: 250, Y: 200, W: 300, H: 80}, ' ', core.ColorWhite)
	c.TextCentered(230, "WANTS: "+string(g.target), core.ColorWhite)
	c.TextCentered(330, "TRAY: "+string(g.current), core.Accent(hard))

	limit := 5000.0
	if hard {
		limit = 3500
	}
	w := 300 * g.timer / limit
	c.FillRect(core.Box{X: 250, Y: 290, W: w, H: 8}, '=', core.ColorAmber)

	for i, dish := range g.options {
		b := Button(i)
		c.FillRect(b, ' ', core.ColorGray)
		c.Glyph(b.Center(), dish, core.ColorBrightWhite)
	}
}
