package retris

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/mkruglov/retris/internal/config"
	"github.com/mkruglov/retris/internal/core"
	"github.com/mkruglov/retris/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeMarathon is the standard game: gravity rises with the level
	// and every level-up pauses play and wipes the board.
	ModeMarathon Mode = "marathon"
	// ModeZen keeps gravity fixed. No levels, no transitions.
	ModeZen Mode = "zen"
)

// Game implements the falling-block game.
type Game struct {
	mode Mode
	cfg  config.RetrisConfig
	rng  *rand.Rand
	tick uint64

	grid    *Grid
	active  Piece
	falling bool // false between lock and the next spawn
	next    Shape
	score   *scoreTracker

	fallTicker int // counts ticks until the next descent
	tickRate   int
	lockTimer  int // consecutive simulation ticks spent grounded

	// Level transition animation
	inTransition    bool
	transitionTicks int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool

	events []core.Event

	// Board placement on screen
	boardX int
	boardY int

	fixedCfg *config.RetrisConfig // set by NewWithConfig, bypasses Load
}

// Package-level variables for config/difficulty (set by the CLI before Reset).
var (
	configPath       string
	difficultyPreset string
	startLevel       int
)

// SetConfigPath sets the gameplay config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level. 0 means level 0.
func SetStartLevel(level int) {
	if level < 0 {
		level = 0
	}
	startLevel = level
}

// New creates a marathon game.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewZen creates a zen game with fixed gravity.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

// NewWithConfig creates a game that uses the given config instead of
// loading one. Intended for tests.
func NewWithConfig(mode Mode, cfg config.RetrisConfig) *Game {
	return &Game{mode: mode, fixedCfg: &cfg}
}

func init() {
	registry.Register("retris", func() registry.Game {
		return New()
	})
	registry.Register("retris_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "retris_zen"
	}
	return "retris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Retris (Zen)"
	}
	return "Retris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = g.loadConfig()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.grid = NewGrid(g.cfg.Board.Width, g.cfg.Board.VisibleHeight, g.cfg.Board.SpawnRows)
	g.score = newScoreTracker(g.cfg.Scoring.BasePoints, g.cfg.Scoring.LinesPerLevel, g.mode == ModeMarathon)
	if g.mode == ModeMarathon && startLevel > 0 {
		g.score.level = startLevel
		g.score.lines = startLevel * g.cfg.Scoring.LinesPerLevel
		startLevel = 0 // consumed
	}

	g.fallTicker = 0
	g.lockTimer = 0
	g.inTransition = false
	g.transitionTicks = 0
	g.gameOver = false
	g.paused = false
	g.events = nil

	g.layout()

	g.next = g.randomShape()
	g.spawn()
}

// loadConfig resolves the gameplay config. The CLI rejects a bad
// --config or --difficulty before any game is created; a failure here
// can only come from a user config file changing underneath a running
// SSH server, and falls back to the defaults so the session survives.
func (g *Game) loadConfig() config.RetrisConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(difficultyPreset)); err != nil {
		return config.Default()
	}
	return cfg
}

// layout positions the board on screen and checks the screen is big enough.
func (g *Game) layout() {
	boardW := g.grid.Width()*2 + 2 // two chars per cell plus borders
	boardH := g.grid.VisibleHeight() + 2
	requiredW := boardW + sidebarWidth
	requiredH := boardH + 1

	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.boardX = (g.screenW - requiredW) / 2
	g.boardY = (g.screenH - boardH) / 2
}

func (g *Game) randomShape() Shape {
	return Shape(g.rng.Intn(ShapeCount()))
}

// spawn promotes the pending piece to active and draws a new pending
// piece. A blocked spawn ends the game and leaves the grid untouched.
func (g *Game) spawn() {
	p := Piece{
		Shape: g.next,
		Rot:   0,
		X:     g.grid.Width() / 2,
		Y:     1,
	}
	g.next = g.randomShape()

	if !CanPlace(g.grid, p) {
		g.falling = false
		g.gameOver = true
		g.emit(core.EventGameOver)
		return
	}
	g.active = p
	g.falling = true
	g.fallTicker = 0
	g.lockTimer = 0
}

func (g *Game) emit(ev core.Event) {
	g.events = append(g.events, ev)
}

// cellsPerSec returns the current gravity speed.
func (g *Game) cellsPerSec() float64 {
	speed := g.cfg.Gravity.BaseCellsPerSec
	if g.mode == ModeMarathon {
		speed += g.cfg.Gravity.PerLevelIncrease * float64(g.score.level)
	}
	if speed > g.cfg.Gravity.MaxCellsPerSec {
		speed = g.cfg.Gravity.MaxCellsPerSec
	}
	return speed
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.events = g.events[:0]

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return g.result()
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return g.result()
	}

	// Level transition freezes play for a moment, then wipes the board.
	if g.inTransition {
		g.transitionTicks++
		if g.transitionTicks >= g.cfg.Transition.DurationTicks {
			g.inTransition = false
			if g.cfg.Transition.WipeBoard {
				g.grid.Clear()
			}
			g.spawn()
		}
		return g.result()
	}

	if !g.falling {
		g.spawn()
		return g.result()
	}

	g.processInput(input)
	g.applyGravity(input.Has(core.ActionSoftDrop))

	return g.result()
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append(res.Events, g.events...)
	}
	return res
}

// processInput applies movement intents. Blocked moves are dropped
// without feedback.
func (g *Game) processInput(input core.InputFrame) {
	if input.Has(core.ActionLeft) {
		g.active, _ = shifted(g.grid, g.active, -1)
	}
	if input.Has(core.ActionRight) {
		g.active, _ = shifted(g.grid, g.active, 1)
	}
	if input.Has(core.ActionRotate) {
		g.active, _ = rotatedCW(g.grid, g.active)
	}
}

// dropInterval converts the gravity speed into a tick interval.
// Soft drop divides the interval instead of multiplying the speed so
// the factor applies even when gravity is already at its cap.
func (g *Game) dropInterval(softDrop bool) int {
	interval := int(float64(g.tickRate)/g.cellsPerSec() + 0.5)
	if softDrop {
		interval /= g.cfg.Gravity.SoftDropFactor
	}
	if interval < 1 {
		interval = 1
	}
	return interval
}

// applyGravity moves the piece down on its tick interval. A grounded
// piece locks on the first gravity attempt after it has rested longer
// than lock_delay_ticks simulation ticks.
func (g *Game) applyGravity(softDrop bool) {
	moved, canDrop := dropped(g.grid, g.active)
	if canDrop {
		g.lockTimer = 0
	} else {
		g.lockTimer++
	}

	g.fallTicker++
	if g.fallTicker < g.dropInterval(softDrop) {
		return
	}
	g.fallTicker = 0

	if canDrop {
		g.active = moved
		return
	}
	if g.lockTimer > g.cfg.Handling.LockDelayTicks {
		g.lockPiece()
	}
}

// lockPiece writes the active piece into the grid, scores any cleared
// rows and either spawns the next piece or starts a level transition.
func (g *Game) lockPiece() {
	g.grid.Lock(g.active)
	g.falling = false
	g.emit(core.EventPieceLocked)

	rows := g.grid.FullRows()
	if len(rows) == 0 {
		g.score.onLockNoClear()
		g.spawn()
		return
	}

	g.grid.ClearRows(rows)
	_, leveledUp := g.score.onRowsCleared(len(rows))
	g.emit(core.EventLinesCleared)

	if leveledUp {
		g.emit(core.EventLevelUp)
		if g.cfg.Transition.DurationTicks > 0 {
			g.inTransition = true
			g.transitionTicks = 0
			return
		}
		if g.cfg.Transition.WipeBoard {
			g.grid.Clear()
		}
	}
	g.spawn()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.score,
		Lines:    g.score.lines,
		Level:    g.score.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, Lines: %d, Level: %d\n",
		g.tick, g.score.score, g.score.lines, g.score.level))
	if g.falling {
		b.WriteString(fmt.Sprintf("Active: %s rot=%d at (%d, %d), Next: %s\n",
			g.active.Shape.Name(), g.active.Rot, g.active.X, g.active.Y, g.next.Name()))
	}
	b.WriteString(fmt.Sprintf("GameOver: %v, Paused: %v, Transition: %v\n",
		g.gameOver, g.paused, g.inTransition))
	return b.String()
}
