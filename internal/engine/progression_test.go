package engine

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/ramadhan-rush/internal/registry"
)

func ids(names ...string) []registry.VariantID {
	out := make([]registry.VariantID, len(names))
	for i, n := range names {
		out[i] = registry.VariantID(n)
	}
	return out
}

func TestPickNextAvoidsHistory(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	candidates := ids("a", "b", "c", "d", "e", "f", "g", "h", "i")
	var history []registry.VariantID

	for i := 0; i < 2000; i++ {
		next := pickNext(rng, candidates, history)
		if contains(history, next) {
			t.Fatalf("pick %d = %s repeats history %v", i, next, history)
		}
		history = remember(history, next, 2)
	}
}

func TestPickNextThreeCandidates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	candidates := ids("a", "b", "c")
	history := ids("a", "b")

	for i := 0; i < 100; i++ {
		if got := pickNext(rng, candidates, history); got != "c" {
			t.Fatalf("pickNext() = %s, expected the only admissible c", got)
		}
	}
}

func TestPickNextSmallSetMayRepeat(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	candidates := ids("a", "b")
	history := ids("a", "b")

	seen := map[registry.VariantID]bool{}
	for i := 0; i < 200; i++ {
		seen[pickNext(rng, candidates, history)] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Errorf("pickNext() over two candidates saw %v, expected both", seen)
	}
}

func TestPickNextSingle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := pickNext(rng, ids("only"), ids("only")); got != "only" {
		t.Errorf("pickNext() = %s, expected only", got)
	}
}

func TestPickNextFallback(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// History covers every candidate; the fallback still returns one.
	candidates := ids("a", "b", "c")
	history := ids("a", "b", "c")

	got := pickNext(rng, candidates, history)
	if !contains(candidates, got) {
		t.Errorf("pickNext() = %s, expected a candidate", got)
	}
}

func TestRemember(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"window", 2},
		{"zero falls back to window", 0},
		{"negative falls back to window", -3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var h []registry.VariantID
			for _, id := range ids("a", "b", "c", "d", "e") {
				h = remember(h, id, tc.size)
			}
			if len(h) != 2 || h[0] != "d" || h[1] != "e" {
				t.Errorf("remember() = %v, expected [d e]", h)
			}
		})
	}
}

func TestDedupe(t *testing.T) {
	got := dedupe(ids("a", "b", "a", "c", "b"))
	want := ids("a", "b", "c")
	if len(got) != len(want) {
		t.Fatalf("dedupe() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dedupe()[%d] = %s, expected %s", i, got[i], want[i])
		}
	}
}
