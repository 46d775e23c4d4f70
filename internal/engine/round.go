package engine

import (
	"math/rand"

	"github.com/vovakirdan/ramadhan-rush/internal/audio"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
)

// round is the registry.Round handed to variants. It forwards to the
// engine so variants cannot reach anything else.
type round struct {
	e *Engine
}

func (r *round) Hard() bool          { return r.e.profile.Hard }
func (r *round) Multiplier() float64 { return r.e.multiplier }
func (r *round) Clock() float64      { return r.e.clock }
func (r *round) Rand() *rand.Rand    { return r.e.rng }
func (r *round) AddScore(n int)      { r.e.addScore(n) }
func (r *round) LoseLife()           { r.e.loseLife() }
func (r *round) Play(c audio.Cue)    { r.e.sound.Play(c) }

func (r *round) Burst(x, y float64, c core.Color, count int, symbol rune) {
	r.e.particles.Burst(x, y, c, count, symbol)
}
