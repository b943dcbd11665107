package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkruglov/retris/internal/config"
	"github.com/mkruglov/retris/internal/core"
	"github.com/mkruglov/retris/internal/games/retris"
	"github.com/mkruglov/retris/internal/platform/tui"
	"github.com/mkruglov/retris/internal/registry"
	"github.com/mkruglov/retris/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a game mode",
	Long: `Start playing the specified mode.

Controls:
  A/D, Left/Right  - Shift piece
  W/Up/Space       - Rotate clockwise
  S/Down           - Soft drop
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow gravity, gentle per-level speed-up
  normal - Default gravity curve
  hard   - Fast gravity, steep per-level speed-up
  fixed  - Gravity never increases with the level

Examples:
  retris play retris
  retris play retris_zen
  retris play retris --difficulty hard
  retris play retris --level 5
  retris play retris --config ./my-retris.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (marathon only)")
}

// resolveGameplayConfig loads and validates the gameplay options shared
// by play and menu. A bad --config file, a config that fails validation
// or an unknown --difficulty preset is an error.
func resolveGameplayConfig(configPath, difficulty string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	return config.ApplyPreset(&cfg, config.DifficultyPreset(difficulty))
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'retris list' to see available modes.")
		os.Exit(1)
	}

	// Fail fast on bad gameplay options before anything starts.
	if err := resolveGameplayConfig(flagConfig, flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Apply gameplay options before the game is created
	retris.SetConfigPath(flagConfig)
	retris.SetDifficultyPreset(flagDifficulty)
	retris.SetStartLevel(flagLevel)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
