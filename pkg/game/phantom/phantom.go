// Package phantom implements the maze-hunting enemies: a single Phantom's
// pursuit step and the fixed-capacity roster that owns them.
package phantom

import (
	"github.com/sirupsen/logrus"

	"phantomslayer/pkg/engine/logger"
	"phantomslayer/pkg/engine/rng"
	"phantomslayer/pkg/engine/world"
)

// MoveResult reports what a Phantom did on its move step.
type MoveResult int

const (
	Idle     MoveResult = iota // off-board
	Blocked                    // every exit walled or occupied
	Moved                      // stepped one square
	Captured                   // standing on the player
)

func (r MoveResult) String() string {
	switch r {
	case Blocked:
		return "blocked"
	case Moved:
		return "moved"
	case Captured:
		return "captured"
	default:
		return "idle"
	}
}

// Phantom is one enemy. The zero value is off-board.
type Phantom struct {
	pos     world.Point
	onBoard bool

	HP     int
	HPMax  int
	Facing world.Direction

	// Backtrack is non-zero while the Phantom is retreating from a spot where
	// it could not close on the player. It is cleared at the next junction.
	Backtrack int
}

// Position returns the Phantom's square and whether it is on the board.
func (p *Phantom) Position() (world.Point, bool) {
	return p.pos, p.onBoard
}

// OnBoard reports whether the Phantom is placed in the maze.
func (p *Phantom) OnBoard() bool {
	return p.onBoard
}

// At reports whether the Phantom is on the board at pt.
func (p *Phantom) At(pt world.Point) bool {
	return p.onBoard && p.pos == pt
}

// SetPosition places the Phantom on the board at pt.
func (p *Phantom) SetPosition(pt world.Point) {
	p.pos = pt
	p.onBoard = true
}

// TakeOffBoard removes the Phantom from the maze.
func (p *Phantom) TakeOffBoard() {
	p.onBoard = false
}

// IsDefeated reports whether the Phantom has no hit points left.
func (p *Phantom) IsDefeated() bool {
	return p.HP <= 0
}

// Reset rolls fresh hit points for level and takes the Phantom off the board.
func (p *Phantom) Reset(level int, src rng.Source) {
	d := DataForLevel(level)
	p.HP = rng.Between(src, d.MinHP, d.MaxHP)
	p.HPMax = p.HP
	p.Backtrack = 0
	p.Facing = world.North
	p.onBoard = false
}

// Occupied reports whether another Phantom stands on a square.
type Occupied func(pt world.Point) bool

// Move advances the Phantom one step toward (or, while backtracking, away
// from) the player. The Phantom's own square is never reported occupied.
func (p *Phantom) Move(grid *world.Grid, player world.Point, occupied Occupied, src rng.Source) MoveResult {
	if !p.onBoard {
		return Idle
	}

	dx := p.pos.X - player.X
	dy := p.pos.Y - player.Y
	if dx == 0 && dy == 0 {
		return Captured
	}

	available := grid.OpenExits(p.pos.X, p.pos.Y)
	if occupied != nil {
		for _, d := range available.Directions() {
			if occupied(p.pos.Step(d)) {
				available = available.Without(d.Exit())
			}
		}
	}
	if available == world.ExitNone {
		return Blocked
	}

	from := world.ExitNone
	if p.Backtrack > 0 {
		from = p.Facing.Opposite().Exit()
		if available.Count() > 2 {
			p.Backtrack = 0
		} else {
			dx, dy = -dx, -dy
		}
	}

	favoured := favouredExits(dx, dy).Without(from)
	usable := available & favoured

	var choice world.Direction
	switch usable.Count() {
	case 1:
		choice, _ = usable.Direction()
	case 2:
		dirs := usable.Directions()
		choice = dirs[1]
		if rng.CoinFlip(src) {
			choice = dirs[0]
		}
	default:
		choice = escapeDirection(available, p.Facing.Opposite().Exit(), src)
		p.Backtrack = 1
	}

	p.pos = p.pos.Step(choice)
	p.Facing = choice
	logger.Log.WithFields(logrus.Fields{
		"to":        p.pos.String(),
		"facing":    choice.String(),
		"available": available.String(),
		"favoured":  favoured.String(),
		"backtrack": p.Backtrack,
	}).Debug("phantom moved")
	return Moved
}

// favouredExits returns the exits that close the gap (dx, dy) between a
// Phantom and its target. y grows southwards, so a positive dy means the
// target lies to the north.
func favouredExits(dx, dy int) world.ExitSet {
	var e world.ExitSet
	if dy > 0 {
		e = e.With(world.ExitNorth)
	}
	if dy < 0 {
		e = e.With(world.ExitSouth)
	}
	if dx > 0 {
		e = e.With(world.ExitWest)
	}
	if dx < 0 {
		e = e.With(world.ExitEast)
	}
	return e
}

// escapeDirection picks uniformly among the available exits other than the
// one the Phantom came through. The way back is only used at a dead end.
func escapeDirection(available, from world.ExitSet, src rng.Source) world.Direction {
	options := available.Without(from)
	if options == world.ExitNone {
		options = available
	}
	dirs := options.Directions()
	return dirs[src.Intn(len(dirs))]
}
