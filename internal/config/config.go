// Package config provides YAML-based gameplay configuration loading and
// difficulty presets for retris.
package config

import "fmt"

// RetrisConfig contains all gameplay configuration.
type RetrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Handling   HandlingConfig   `yaml:"handling"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Transition TransitionConfig `yaml:"transition"`
}

// BoardConfig defines the playfield dimensions.
// SpawnRows are hidden rows above the visible area where pieces enter.
type BoardConfig struct {
	Width         int `yaml:"width"`
	VisibleHeight int `yaml:"visible_height"`
	SpawnRows     int `yaml:"spawn_rows"`
}

// GravityConfig defines fall-speed parameters in cells per second.
type GravityConfig struct {
	BaseCellsPerSec  float64 `yaml:"base_cells_per_second"`
	PerLevelIncrease float64 `yaml:"per_level_increase"`
	MaxCellsPerSec   float64 `yaml:"max_cells_per_second"`
	SoftDropFactor   int     `yaml:"soft_drop_factor"`
}

// HandlingConfig defines piece-handling parameters.
type HandlingConfig struct {
	// LockDelayTicks is how many simulation ticks a piece may rest on
	// support before it locks. 0 locks on the first blocked gravity move.
	LockDelayTicks int `yaml:"lock_delay_ticks"`
}

// ScoringConfig defines the scoring formula parameters.
type ScoringConfig struct {
	BasePoints    int `yaml:"base_points"`
	LinesPerLevel int `yaml:"lines_per_level"`
}

// TransitionConfig defines the level-up transition behavior.
type TransitionConfig struct {
	DurationTicks int  `yaml:"duration_ticks"`
	WipeBoard     bool `yaml:"wipe_board"`
}

// Validate checks the configuration for values the engine cannot run with.
// Called once at startup; any error here is fatal.
func (c RetrisConfig) Validate() error {
	if c.Board.Width < 4 {
		return fmt.Errorf("config: board.width must be at least 4, got %d", c.Board.Width)
	}
	if c.Board.VisibleHeight < 4 {
		return fmt.Errorf("config: board.visible_height must be at least 4, got %d", c.Board.VisibleHeight)
	}
	if c.Board.SpawnRows < 4 {
		return fmt.Errorf("config: board.spawn_rows must be at least 4 to fit every piece, got %d", c.Board.SpawnRows)
	}
	if c.Gravity.BaseCellsPerSec <= 0 {
		return fmt.Errorf("config: gravity.base_cells_per_second must be positive, got %g", c.Gravity.BaseCellsPerSec)
	}
	if c.Gravity.PerLevelIncrease < 0 {
		return fmt.Errorf("config: gravity.per_level_increase cannot be negative, got %g", c.Gravity.PerLevelIncrease)
	}
	if c.Gravity.MaxCellsPerSec < c.Gravity.BaseCellsPerSec {
		return fmt.Errorf("config: gravity.max_cells_per_second (%g) is below base (%g)",
			c.Gravity.MaxCellsPerSec, c.Gravity.BaseCellsPerSec)
	}
	if c.Gravity.SoftDropFactor < 1 {
		return fmt.Errorf("config: gravity.soft_drop_factor must be at least 1, got %d", c.Gravity.SoftDropFactor)
	}
	if c.Handling.LockDelayTicks < 0 {
		return fmt.Errorf("config: handling.lock_delay_ticks cannot be negative, got %d", c.Handling.LockDelayTicks)
	}
	if c.Scoring.BasePoints <= 0 {
		return fmt.Errorf("config: scoring.base_points must be positive, got %d", c.Scoring.BasePoints)
	}
	if c.Scoring.LinesPerLevel < 1 {
		return fmt.Errorf("config: scoring.lines_per_level must be at least 1, got %d", c.Scoring.LinesPerLevel)
	}
	if c.Transition.DurationTicks < 0 {
		return fmt.Errorf("config: transition.duration_ticks cannot be negative, got %d", c.Transition.DurationTicks)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset adjusts the config for a named difficulty.
// "fixed" freezes gravity at the base speed (no per-level increase).
func ApplyPreset(cfg *RetrisConfig, preset DifficultyPreset) error {
	switch preset {
	case "":
		return nil
	case DifficultyEasy:
		cfg.Gravity.BaseCellsPerSec = 1.5
		cfg.Gravity.PerLevelIncrease = 0.5
	case DifficultyNormal:
		// Defaults already describe normal.
	case DifficultyHard:
		cfg.Gravity.BaseCellsPerSec = 4.0
		cfg.Gravity.PerLevelIncrease = 1.5
	case DifficultyFixed:
		cfg.Gravity.PerLevelIncrease = 0
	default:
		return fmt.Errorf("config: unknown difficulty preset %q", preset)
	}
	return nil
}
