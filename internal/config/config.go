// Package config provides YAML-based configuration loading for the engine:
// difficulty profiles, the variant catalog and the engine constants.
package config

import (
	"errors"
	"fmt"
)

// Config is the full tunable surface of the game.
type Config struct {
	Engine   EngineConfig        `yaml:"engine"`
	Profiles []DifficultyProfile `yaml:"profiles"`
	Variants []VariantDef        `yaml:"variants"`
}

// AntiRepeatWindow is how many recent variants the next pick avoids. A
// round never repeats either of the two rounds before it.
const AntiRepeatWindow = 2

// EngineConfig holds the meta-loop constants.
type EngineConfig struct {
	BaseLives        int     `yaml:"base_lives"`
	TransitionMs     float64 `yaml:"transition_ms"`
	StallThresholdMs float64 `yaml:"stall_threshold_ms"` // frames at least this long skip the update
	HistorySize      int     `yaml:"history_size"`       // recent variants excluded from the next pick
	MaxParticles     int     `yaml:"max_particles"`
	TapFxCount       int     `yaml:"tap_fx_count"` // particles per tap for an equipped effect
}

// VariantDef describes one minigame in the catalog.
type VariantDef struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	BaseDurationMs float64 `yaml:"base_duration_ms"`
	Brief          string  `yaml:"brief"`
	BriefHard      string  `yaml:"brief_hard"`
}

// BriefFor returns the one-line instruction for the given mode.
func (v VariantDef) BriefFor(hard bool) string {
	if hard && v.BriefHard != "" {
		return v.BriefHard
	}
	return v.Brief
}

// Profile looks up a difficulty profile by id.
func (c Config) Profile(id ProfileID) (DifficultyProfile, bool) {
	for _, p := range c.Profiles {
		if p.ID == id {
			return p, true
		}
	}
	return DifficultyProfile{}, false
}

// Variant looks up a catalog entry by id.
func (c Config) Variant(id string) (VariantDef, bool) {
	for _, v := range c.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return VariantDef{}, false
}

// VariantIDs returns the catalog ids in catalog order.
func (c Config) VariantIDs() []string {
	ids := make([]string, len(c.Variants))
	for i, v := range c.Variants {
		ids[i] = v.ID
	}
	return ids
}

// Validate reports the first setting that would break the engine.
func (c Config) Validate() error {
	if c.Engine.BaseLives <= 0 {
		return errors.New("config: base_lives must be positive")
	}
	if c.Engine.TransitionMs < 0 {
		return errors.New("config: transition_ms must not be negative")
	}
	if c.Engine.StallThresholdMs <= 0 {
		return errors.New("config: stall_threshold_ms must be positive")
	}
	if c.Engine.HistorySize != AntiRepeatWindow {
		return fmt.Errorf("config: history_size must be %d, got %d", AntiRepeatWindow, c.Engine.HistorySize)
	}
	if len(c.Variants) == 0 {
		return errors.New("config: variant catalog is empty")
	}
	seen := make(map[string]bool, len(c.Variants))
	for _, v := range c.Variants {
		if v.ID == "" {
			return errors.New("config: variant without id")
		}
		if seen[v.ID] {
			return fmt.Errorf("config: duplicate variant %q", v.ID)
		}
		seen[v.ID] = true
		if v.BaseDurationMs <= 0 {
			return fmt.Errorf("config: variant %q needs a positive base_duration_ms", v.ID)
		}
	}
	for _, p := range c.Profiles {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	for _, id := range []ProfileID{ProfileCasual, ProfileHard} {
		if _, ok := c.Profile(id); !ok {
			return fmt.Errorf("config: missing built-in profile %q", id)
		}
	}
	return nil
}
