package phantom

import "time"

// MoveTime is the base interval between Phantom move cycles.
const MoveTime = time.Second

// LevelData holds the per-level toughness and speed of Phantoms.
// Speed is MoveTime shifted left by SpeedShiftLeft and then right by
// SpeedShiftRight.
type LevelData struct {
	MinHP           int
	MaxHP           int
	SpeedShiftLeft  uint
	SpeedShiftRight uint
}

// levelTable is indexed by level-1. Levels past the end reuse the last row.
var levelTable = []LevelData{
	{1, 1, 1, 0}, // 1
	{1, 2, 1, 0},
	{1, 3, 1, 0},
	{1, 4, 0, 0},
	{1, 5, 0, 0}, // 5
	{1, 6, 0, 0},
	{2, 6, 0, 0},
	{2, 6, 0, 0},
	{2, 6, 0, 0},
	{3, 6, 0, 1}, // 10
	{3, 6, 0, 1},
	{3, 6, 0, 1},
	{4, 6, 0, 1},
	{4, 6, 0, 1},
	{4, 6, 0, 1}, // 15
	{4, 8, 0, 2},
	{4, 8, 0, 2},
	{4, 8, 0, 2},
	{5, 9, 0, 2},
	{5, 9, 0, 2}, // 20
	{5, 9, 0, 2},
}

// TableLevels is the number of distinct levels in the table.
var TableLevels = len(levelTable)

// DataForLevel returns the row for a 1-based level, clamped to the table.
func DataForLevel(level int) LevelData {
	if level < 1 {
		level = 1
	}
	if level > len(levelTable) {
		level = len(levelTable)
	}
	return levelTable[level-1]
}

// Speed returns the move interval for a level.
func Speed(level int) time.Duration {
	d := DataForLevel(level)
	return (MoveTime << d.SpeedShiftLeft) >> d.SpeedShiftRight
}

// InitialSpeed is the interval used before the first level-up.
const InitialSpeed = MoveTime << 1

// CountForLevel returns how many Phantoms roam a level: one per level
// until MaxPhantoms is reached.
func CountForLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > MaxPhantoms {
		return MaxPhantoms
	}
	return level
}

// KillTarget is the number of kills that completes a level.
func KillTarget(level int) int {
	return CountForLevel(level)
}
