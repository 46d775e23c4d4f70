// Package registrytest provides a scripted Round for exercising variants
// without an engine.
package registrytest

import (
	"math/rand"

	"github.com/vovakirdan/ramadhan-rush/internal/audio"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
)

// Burst records one Burst call.
type Burst struct {
	X, Y   float64
	Color  core.Color
	Count  int
	Symbol rune
}

// Round is a Round that records everything a variant reports.
// Its fields may be changed between Update calls to script a scenario.
type Round struct {
	IsHard bool
	Mult   float64
	Now    float64 // returned by Clock
	Rng    *rand.Rand

	Score     int
	LivesLost int
	Cues      []audio.Cue
	Bursts    []Burst
}

// New creates a round with a seeded RNG.
func New(hard bool, mult float64, seed int64) *Round {
	return &Round{
		IsHard: hard,
		Mult:   mult,
		Rng:    rand.New(rand.NewSource(seed)),
	}
}

func (r *Round) Hard() bool          { return r.IsHard }
func (r *Round) Multiplier() float64 { return r.Mult }
func (r *Round) Clock() float64      { return r.Now }
func (r *Round) Rand() *rand.Rand    { return r.Rng }
func (r *Round) AddScore(n int)      { r.Score += n }
func (r *Round) LoseLife()           { r.LivesLost++ }

func (r *Round) Burst(x, y float64, c core.Color, count int, symbol rune) {
	r.Bursts = append(r.Bursts, Burst{X: x, Y: y, Color: c, Count: count, Symbol: symbol})
}

func (r *Round) Play(cue audio.Cue) {
	r.Cues = append(r.Cues, cue)
}

// Played reports whether the cue was requested at least once.
func (r *Round) Played(cue audio.Cue) bool {
	for _, c := range r.Cues {
		if c == cue {
			return true
		}
	}
	return false
}

// Advance moves the clock forward by dt. Variants read the clock, so tests
// advance it the way the engine does before each Update.
func (r *Round) Advance(dt float64) {
	r.Now += dt
}
