package engine

import (
	"math/rand"

	"github.com/vovakirdan/ramadhan-rush/internal/config"
	"github.com/vovakirdan/ramadhan-rush/internal/registry"
)

// maxRedraws bounds the anti-repeat rejection sampling.
const maxRedraws = 64

// pickNext chooses the next variant. With more than two candidates the
// recent history is excluded; with two or fewer any candidate may repeat.
func pickNext(rng *rand.Rand, candidates, history []registry.VariantID) registry.VariantID {
	if len(candidates) <= 2 {
		return candidates[rng.Intn(len(candidates))]
	}

	for i := 0; i < maxRedraws; i++ {
		id := candidates[rng.Intn(len(candidates))]
		if !contains(history, id) {
			return id
		}
	}

	admissible := make([]registry.VariantID, 0, len(candidates))
	for _, id := range candidates {
		if !contains(history, id) {
			admissible = append(admissible, id)
		}
	}
	if len(admissible) == 0 {
		admissible = candidates
	}
	return admissible[rng.Intn(len(admissible))]
}

// remember appends id and keeps at most size entries. A non-positive
// size uses the anti-repeat window.
func remember(history []registry.VariantID, id registry.VariantID, size int) []registry.VariantID {
	if size <= 0 {
		size = config.AntiRepeatWindow
	}
	history = append(history, id)
	if len(history) > size {
		history = append(history[:0], history[len(history)-size:]...)
	}
	return history
}

func contains(ids []registry.VariantID, id registry.VariantID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// dedupe returns ids without repeats, keeping first occurrences in order.
func dedupe(ids []registry.VariantID) []registry.VariantID {
	out := make([]registry.VariantID, 0, len(ids))
	for _, id := range ids {
		if !contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
