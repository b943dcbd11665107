package retris

// scoreTracker accumulates score, line count and level.
//
// Points for a clear compound four ways: a bonus for the number of
// rows cleared at once, the bonus carried over from the previous clear,
// a combo doubling for consecutive clearing locks, and a level band
// multiplier. Landing a piece without clearing anything breaks the
// chain: the carried bonus and the combo both reset.
type scoreTracker struct {
	basePoints    int
	linesPerLevel int
	progression   bool // when false the level never advances

	score   int
	lines   int
	level   int
	combo   int
	prevMul int // rows bonus of the previous clear, 1 after a break
}

func newScoreTracker(basePoints, linesPerLevel int, progression bool) *scoreTracker {
	return &scoreTracker{
		basePoints:    basePoints,
		linesPerLevel: linesPerLevel,
		progression:   progression,
		prevMul:       1,
	}
}

// rowsBonus rewards clearing more rows at once: 1, 3, 7, 15, ...
func rowsBonus(rows int) int {
	if rows <= 0 {
		return 0
	}
	return (1 << rows) - 1
}

// levelMultiplier maps a level to its scoring band.
func levelMultiplier(level int) int {
	switch {
	case level < 5:
		return 1
	case level < 10:
		return 2
	case level < 15:
		return 3
	case level < 20:
		return 5
	default:
		return 8
	}
}

// onRowsCleared records a clearing lock. It returns the points awarded
// and whether the clear pushed the player to a new level.
// The level multiplier uses the level as it was before this clear.
func (t *scoreTracker) onRowsCleared(rows int) (points int, leveledUp bool) {
	if rows <= 0 {
		t.onLockNoClear()
		return 0, false
	}

	t.combo++
	bonus := rowsBonus(rows)
	points = t.basePoints * bonus * t.prevMul * (1 << (t.combo - 1)) * levelMultiplier(t.level)
	t.prevMul = bonus
	t.score += points

	t.lines += rows
	if t.progression {
		newLevel := t.lines / t.linesPerLevel
		if newLevel > t.level {
			t.level = newLevel
			leveledUp = true
		}
	}
	return points, leveledUp
}

// onLockNoClear records a lock that cleared nothing, breaking the chain.
func (t *scoreTracker) onLockNoClear() {
	t.combo = 0
	t.prevMul = 1
}
