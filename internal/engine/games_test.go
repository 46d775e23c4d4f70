package engine

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/core"
	_ "github.com/vovakirdan/ramadhan-rush/internal/games/all"
	"github.com/vovakirdan/ramadhan-rush/internal/registry"
)

type outcome struct {
	score, lives, level int
	screen              Screen
	history             []registry.VariantID
}

// simulate plays the real catalog with scripted taps for the given frames.
func simulate(t *testing.T, maxParticles int, profile config.ProfileID, frames int) outcome {
	t.Helper()
	cfg := config.Default()
	cfg.Engine.MaxParticles = maxParticles
	e := New(cfg, Deps{}, 2024)
	if err := e.Start(RunOptions{Profile: profile}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	taps := rand.New(rand.NewSource(99))
	for i := 0; i < frames && e.Screen() != ScreenGameOver; i++ {
		var p core.PointerSignal
		if taps.Intn(12) == 0 {
			p = core.Tap(taps.Float64()*core.LogicalW, taps.Float64()*core.LogicalH)
		}
		e.Update(16.67, p)
	}
	return outcome{e.Score(), e.Lives(), e.Level(), e.Screen(), e.History()}
}

func TestParticleCapDoesNotChangeGameplay(t *testing.T) {
	for _, profile := range []config.ProfileID{config.ProfileCasual, config.ProfileHard} {
		t.Run(string(profile), func(t *testing.T) {
			full := simulate(t, 600, profile, 6000)
			capped := simulate(t, 1, profile, 6000)

			if full.score != capped.score || full.lives != capped.lives ||
				full.level != capped.level || full.screen != capped.screen {
				t.Errorf("outcome with cap 1 = %+v, expected %+v", capped, full)
			}
			if len(full.history) != len(capped.history) {
				t.Fatalf("history = %v, expected %v", capped.history, full.history)
			}
			for i := range full.history {
				if full.history[i] != capped.history[i] {
					t.Errorf("history[%d] = %s, expected %s", i, capped.history[i], full.history[i])
				}
			}
		})
	}
}

func TestEveryCatalogVariantRegistered(t *testing.T) {
	for _, id := range config.Default().VariantIDs() {
		if !registry.Exists(registry.VariantID(id)) {
			t.Errorf("variant %s is in the catalog but not registered", id)
		}
	}
}

func TestRunNeverRepeatsRecentVariant(t *testing.T) {
	e := New(config.Default(), Deps{}, 5)
	if err := e.Start(RunOptions{Profile: config.ProfileCasual, Custom: true}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	var seen []registry.VariantID
	for i := 0; i < 60; i++ {
		seen = append(seen, e.VariantID())
		e.Update(e.cfg.Engine.TransitionMs, core.PointerSignal{})
		// End the round without input; variants with goals may cost a life.
		e.Update(e.RoundTimer(), core.PointerSignal{})
		if e.Screen() == ScreenGameOver {
			break
		}
	}

	for i := 1; i < len(seen); i++ {
		if seen[i] == seen[i-1] {
			t.Errorf("round %d repeats %s", i, seen[i])
		}
		if i >= 2 && seen[i] == seen[i-2] {
			t.Errorf("round %d repeats %s from two rounds back", i, seen[i])
		}
	}
}
