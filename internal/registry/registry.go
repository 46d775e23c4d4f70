// Package registry provides the minigame contract and a global registry of
// variant factories. Variants register themselves in init() functions,
// allowing the engine to instantiate them by id without hardcoded
// dependencies.
package registry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/ramadhan-rush/internal/audio"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
)

// VariantID identifies a minigame (e.g. "catch_treats").
// The ids match the catalog entries in the config package.
type VariantID string

// Round is the engine context a variant sees while it runs. It is the only
// way a variant touches score, lives, particles or sound.
type Round interface {
	// Hard reports whether the run uses the hard profile.
	Hard() bool
	// Multiplier is the current difficulty multiplier.
	Multiplier() float64
	// Clock is the engine clock in milliseconds. Used for drift and sway.
	Clock() float64
	// Rand is the gameplay RNG shared by the whole run.
	Rand() *rand.Rand
	// AddScore adds n points, doubled when double-score is active and
	// ignored in custom mode.
	AddScore(n int)
	// LoseLife takes one life; the run may end as a result.
	LoseLife()
	// Burst emits cosmetic particles.
	Burst(x, y float64, c core.Color, count int, symbol rune)
	// Play fires a sound cue without waiting for it.
	Play(cue audio.Cue)
}

// Variant is the contract every minigame implements.
// Variants contain pure logic; the engine owns timing and the frontends
// own input devices and output.
type Variant interface {
	// Init sets up layout and inventory and seeds the first entities.
	// Called once per round on a fresh instance.
	Init(r Round)

	// Update advances the simulation by dt milliseconds and applies at most
	// one tap.
	Update(r Round, dt float64, p core.PointerSignal)

	// Complete reports that the round goal was reached early. The engine
	// ends the round on the next check.
	Complete() bool

	// TimeoutPenalty reports whether running out of time with the goal
	// unmet costs a life.
	TimeoutPenalty() bool

	// Draw renders the variant's entities and widgets.
	Draw(c core.Canvas, hard bool)
}

// Factory is a function that creates a new, uninitialized variant.
type Factory func() Variant

// ErrUnknownVariant is returned by Create for ids nobody registered.
var ErrUnknownVariant = errors.New("registry: unknown variant")

var (
	factories = make(map[VariantID]Factory)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Typically called from a variant's init() function.
// Panics if a variant with the same ID is already registered.
func Register(id VariantID, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}
	factories[id] = f
}

// List returns all registered variant ids, sorted.
func List() []VariantID {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantID, 0, len(factories))
	for id := range factories {
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})
	return result
}

// Create instantiates a fresh variant by its ID.
func Create(id VariantID) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}
	return f(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id VariantID) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
