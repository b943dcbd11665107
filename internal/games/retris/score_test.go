package retris

import "testing"

func TestRowsBonus(t *testing.T) {
	tests := []struct{ rows, want int }{
		{1, 1}, {2, 3}, {3, 7}, {4, 15}, {5, 31}, {0, 0},
	}
	for _, tc := range tests {
		if got := rowsBonus(tc.rows); got != tc.want {
			t.Errorf("rowsBonus(%d) = %d, expected %d", tc.rows, got, tc.want)
		}
	}
}

func TestLevelMultiplier(t *testing.T) {
	tests := []struct{ level, want int }{
		{0, 1}, {4, 1}, {5, 2}, {9, 2}, {10, 3}, {14, 3}, {15, 5}, {19, 5}, {20, 8}, {99, 8},
	}
	for _, tc := range tests {
		if got := levelMultiplier(tc.level); got != tc.want {
			t.Errorf("levelMultiplier(%d) = %d, expected %d", tc.level, got, tc.want)
		}
	}
}

func TestScoreSingleClear(t *testing.T) {
	tr := newScoreTracker(137, 10, true)

	points, leveledUp := tr.onRowsCleared(1)
	if points != 137 {
		t.Errorf("first single clear = %d points, expected 137", points)
	}
	if leveledUp {
		t.Error("one line should not level up")
	}
	if tr.lines != 1 || tr.level != 0 {
		t.Errorf("lines=%d level=%d, expected 1 and 0", tr.lines, tr.level)
	}
}

func TestScoreQuadThenQuad(t *testing.T) {
	tr := newScoreTracker(137, 10, true)

	// 137 * 15 (quad) * 1 (no previous) * 1 (combo 1) * 1 (level 0)
	points, _ := tr.onRowsCleared(4)
	if points != 2055 {
		t.Errorf("first quad = %d, expected 2055", points)
	}

	// 137 * 15 * 15 (previous quad) * 2 (combo 2) * 1 (level 0)
	points, _ = tr.onRowsCleared(4)
	if points != 61650 {
		t.Errorf("back-to-back quad = %d, expected 61650", points)
	}
	if tr.score != 2055+61650 {
		t.Errorf("total = %d, expected %d", tr.score, 2055+61650)
	}
}

func TestScoreChainBreak(t *testing.T) {
	tr := newScoreTracker(137, 10, true)
	tr.onRowsCleared(4)
	tr.onLockNoClear()

	if tr.combo != 0 || tr.prevMul != 1 {
		t.Errorf("combo=%d prevMul=%d after break, expected 0 and 1", tr.combo, tr.prevMul)
	}

	points, _ := tr.onRowsCleared(1)
	if points != 137 {
		t.Errorf("clear after break = %d, expected 137 with no carried bonus", points)
	}
}

func TestScoreUsesLevelBeforeClear(t *testing.T) {
	tr := newScoreTracker(137, 10, true)
	tr.lines = 9
	tr.level = 0

	// This clear crosses into level 1, but the multiplier still uses level 0.
	points, leveledUp := tr.onRowsCleared(1)
	if !leveledUp {
		t.Fatal("crossing 10 lines should level up")
	}
	if tr.level != 1 {
		t.Errorf("level = %d, expected 1", tr.level)
	}
	if points != 137 {
		t.Errorf("points = %d, expected 137 scored at the pre-clear level", points)
	}
}

func TestScoreLevelBandMultiplier(t *testing.T) {
	tr := newScoreTracker(137, 10, true)
	tr.level = 5

	// 137 * 1 * 1 * 1 * 2 (levels 5-9 band)
	points, _ := tr.onRowsCleared(1)
	if points != 274 {
		t.Errorf("points at level 5 = %d, expected 274", points)
	}
}

func TestScoreNoProgression(t *testing.T) {
	tr := newScoreTracker(137, 10, false)
	for i := 0; i < 30; i++ {
		tr.onRowsCleared(1)
	}
	if tr.level != 0 {
		t.Errorf("level = %d, progression disabled should stay at 0", tr.level)
	}
	if tr.lines != 30 {
		t.Errorf("lines = %d, expected 30", tr.lines)
	}
}

func TestScoreZeroRowsBreaksChain(t *testing.T) {
	tr := newScoreTracker(137, 10, true)
	tr.onRowsCleared(4)

	points, leveledUp := tr.onRowsCleared(0)
	if points != 0 || leveledUp {
		t.Errorf("clearing nothing must score 0, got %d", points)
	}
	if tr.combo != 0 {
		t.Error("clearing nothing must break the combo")
	}
}
