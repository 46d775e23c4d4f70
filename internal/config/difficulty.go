package config

import (
	"fmt"
	"strings"
)

// ProfileID names a difficulty profile.
type ProfileID string

const (
	ProfileCasual ProfileID = "casual"
	ProfileHard   ProfileID = "hard"
)

// DifficultyProfile sets how a run starts and how fast it escalates.
type DifficultyProfile struct {
	ID               ProfileID `yaml:"id"`
	Name             string    `yaml:"name"`
	MultiplierStart  float64   `yaml:"multiplier_start"`
	MultiplierGrowth float64   `yaml:"multiplier_growth"` // added per completed round
	DurationScale    float64   `yaml:"duration_scale"`    // applied to every base duration
	Hard             bool      `yaml:"hard"`              // selects the hard branch of each variant
}

// Validate checks that the profile can drive a run.
func (p DifficultyProfile) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("config: profile without id")
	}
	if p.MultiplierStart <= 0 {
		return fmt.Errorf("config: profile %q needs a positive multiplier_start", p.ID)
	}
	if p.MultiplierGrowth < 0 {
		return fmt.Errorf("config: profile %q has negative multiplier_growth", p.ID)
	}
	if p.DurationScale <= 0 {
		return fmt.Errorf("config: profile %q needs a positive duration_scale", p.ID)
	}
	return nil
}

// RoundDuration returns the effective round length for v in milliseconds.
func (p DifficultyProfile) RoundDuration(v VariantDef) float64 {
	return v.BaseDurationMs * p.DurationScale
}

// MultiplierAt returns the multiplier in effect during the given level.
func (p DifficultyProfile) MultiplierAt(level int) float64 {
	if level < 1 {
		level = 1
	}
	return p.MultiplierStart + float64(level-1)*p.MultiplierGrowth
}

// ParseProfile accepts a profile id or one of its common aliases.
func ParseProfile(s string) (ProfileID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "casual", "kasual", "easy", "normal":
		return ProfileCasual, nil
	case "hard", "pahala":
		return ProfileHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want casual or hard)", s)
	}
}
