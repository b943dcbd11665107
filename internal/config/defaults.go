package config

import (
	_ "embed"
)

//go:embed defaults/retris.yaml
var defaultRetrisYAML []byte

// Default returns the default gameplay configuration.
// Kept in sync with defaults/retris.yaml.
func Default() RetrisConfig {
	return RetrisConfig{
		Board: BoardConfig{
			Width:         10,
			VisibleHeight: 20,
			SpawnRows:     4,
		},
		Gravity: GravityConfig{
			BaseCellsPerSec:  2.0,
			PerLevelIncrease: 1.0,
			MaxCellsPerSec:   20.0,
			SoftDropFactor:   5,
		},
		Handling: HandlingConfig{
			LockDelayTicks: 0,
		},
		Scoring: ScoringConfig{
			BasePoints:    137,
			LinesPerLevel: 10,
		},
		Transition: TransitionConfig{
			DurationTicks: 90, // ~1.5 seconds at 60 ticks/s
			WipeBoard:     true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRetrisYAML
}
