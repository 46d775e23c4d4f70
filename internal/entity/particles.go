package entity

import (
	"math/rand"

	"github.com/vovakirdan/ramadhan-rush/internal/core"
)

// MaxParticles bounds the live particle count. The oldest are dropped first.
const MaxParticles = 600

// Particle is a short-lived cosmetic dot or symbol.
type Particle struct {
	Pos    core.Vec
	Vel    core.Vec
	Life   float64 // ms
	Size   float64
	Color  core.Color
	Symbol rune // 0 draws a dot
}

// Particles owns the live particles and their RNG. The RNG is separate from
// gameplay randomness so bursts never shift a variant's random sequence.
type Particles struct {
	items []Particle
	rng   *rand.Rand
	max   int
}

// NewParticles creates an empty system. max <= 0 selects MaxParticles.
func NewParticles(seed int64, max int) *Particles {
	if max <= 0 {
		max = MaxParticles
	}
	return &Particles{
		items: make([]Particle, 0, 64),
		rng:   rand.New(rand.NewSource(seed)),
		max:   max,
	}
}

// Burst emits count particles from (x, y). Each particle carries symbol
// with even odds; the rest draw as dots in c.
func (ps *Particles) Burst(x, y float64, c core.Color, count int, symbol rune) {
	for i := 0; i < count; i++ {
		p := Particle{
			Pos:   core.Vec{X: x, Y: y},
			Vel:   core.Vec{X: (ps.rng.Float64() - 0.5) * 15, Y: (ps.rng.Float64() - 0.5) * 15},
			Life:  600 + ps.rng.Float64()*400,
			Size:  ps.rng.Float64()*5 + 2,
			Color: c,
		}
		if ps.rng.Float64() > 0.5 {
			p.Symbol = symbol
		}
		ps.items = append(ps.items, p)
	}
	if over := len(ps.items) - ps.max; over > 0 {
		n := copy(ps.items, ps.items[over:])
		ps.items = ps.items[:n]
	}
}

// Update moves every particle and drops the expired ones.
func (ps *Particles) Update(dt float64) {
	ratio := Ratio(dt)
	valid := ps.items[:0]
	for _, p := range ps.items {
		p.Pos = p.Pos.Add(p.Vel.Scale(ratio))
		p.Life -= dt
		if p.Life > 0 {
			valid = append(valid, p)
		}
	}
	ps.items = valid
}

// Each calls fn for every live particle, oldest first.
func (ps *Particles) Each(fn func(p Particle)) {
	for _, p := range ps.items {
		fn(p)
	}
}

// Len returns the live particle count.
func (ps *Particles) Len() int {
	return len(ps.items)
}

// Clear drops every particle.
func (ps *Particles) Clear() {
	ps.items = ps.items[:0]
}
