package config

import (
	_ "embed"
)

//go:embed defaults/rush.yaml
var defaultRushYAML []byte

// Variant ids of the built-in catalog.
const (
	CatchTreats = "catch_treats"
	RhythmLanes = "rhythm_lanes"
	StayAwake   = "stay_awake"
	FormRows    = "form_rows"
	RunStomp    = "run_stomp"
	PopOrSpare  = "pop_or_spare"
	MatchOrder  = "match_order"
	WakeSpray   = "wake_spray"
	ServeTables = "serve_tables"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Engine: DefaultEngine(),
		Profiles: []DifficultyProfile{
			{ID: ProfileCasual, Name: "Casual", MultiplierStart: 0.6, MultiplierGrowth: 0.04, DurationScale: 1.3},
			{ID: ProfileHard, Name: "Hard", MultiplierStart: 1.8, MultiplierGrowth: 0.25, DurationScale: 0.7, Hard: true},
		},
		Variants: []VariantDef{
			{ID: CatchTreats, Name: "Catch Treats", BaseDurationMs: 6000,
				Brief: "Tap the treats! Skip the spoiled ones!", BriefHard: "Treats on the move! Tap fast!"},
			{ID: RhythmLanes, Name: "Sahur Patrol", BaseDurationMs: 7000,
				Brief: "Tap on the beat line!", BriefHard: "Four lanes! Focus!"},
			{ID: StayAwake, Name: "Stay Awake", BaseDurationMs: 6000,
				Brief: "Spam tap to stay awake!", BriefHard: "Don't overshoot!"},
			{ID: FormRows, Name: "Form the Rows", BaseDurationMs: 5500,
				Brief: "Tap the empty spot in each row!", BriefHard: "The gaps are drifting!"},
			{ID: RunStomp, Name: "Sarong Fight", BaseDurationMs: 8000,
				Brief: "Tap to jump! Stomp the rivals!", BriefHard: "Faster run! Brutal rivals!"},
			{ID: PopOrSpare, Name: "Temptation Popper", BaseDurationMs: 7000,
				Brief: "Pop temptations! Spare the good deeds!", BriefHard: "Bubbles gone wild!"},
			{ID: MatchOrder, Name: "Cook the Order", BaseDurationMs: 8000,
				Brief: "Pick the ingredients on the order!", BriefHard: "Three items and shuffled buttons!"},
			{ID: WakeSpray, Name: "Wake Spray", BaseDurationMs: 7000,
				Brief: "Spray the sleepy ones! Mind the water!", BriefHard: "Deep sleepers! Spray fast!"},
			{ID: ServeTables, Name: "Serve the Tables", BaseDurationMs: 18000,
				Brief: "Serve every table!", BriefHard: "Big tables! Long menu!"},
		},
	}
}

// DefaultEngine returns the built-in engine constants.
func DefaultEngine() EngineConfig {
	return EngineConfig{
		BaseLives:        5,
		TransitionMs:     2000,
		StallThresholdMs: 100,
		HistorySize:      2,
		MaxParticles:     600,
		TapFxCount:       3,
	}
}
