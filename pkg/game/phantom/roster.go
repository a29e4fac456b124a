package phantom

import (
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"phantomslayer/pkg/engine/logger"
	"phantomslayer/pkg/engine/rng"
	"phantomslayer/pkg/engine/world"
)

// MaxPhantoms is the number of roster slots.
const MaxPhantoms = 3

// MinPlacementGap is how far a new Phantom must be from the player on
// both axes.
const MinPlacementGap = 4

// placementAttempts bounds the random search before the gap rule is relaxed.
const placementAttempts = 4000

// Roster owns every Phantom in fixed slots. Slots are never added or removed;
// a defeated Phantom is taken off the board and its slot re-rolled later.
type Roster struct {
	slots [MaxPhantoms]Phantom
}

// NewRoster creates a roster with every slot off-board.
func NewRoster() *Roster {
	return &Roster{}
}

// Slot returns the Phantom in slot i, or nil when i is out of range.
func (r *Roster) Slot(i int) *Phantom {
	if i < 0 || i >= MaxPhantoms {
		return nil
	}
	return &r.slots[i]
}

// Clear takes every Phantom off the board.
func (r *Roster) Clear() {
	for i := range r.slots {
		r.slots[i].TakeOffBoard()
	}
}

// At returns the slot of the Phantom standing on pt.
func (r *Roster) At(pt world.Point) (int, bool) {
	for i := range r.slots {
		if r.slots[i].At(pt) {
			return i, true
		}
	}
	return 0, false
}

// OnBoard returns the slots of Phantoms currently in the maze, in order.
func (r *Roster) OnBoard() []int {
	var out []int
	for i := range r.slots {
		if r.slots[i].OnBoard() {
			out = append(out, i)
		}
	}
	return out
}

// Occupancy returns the set of squares holding a Phantom.
func (r *Roster) Occupancy() mapset.Set[world.Point] {
	cells := mapset.New[world.Point]()
	for i := range r.slots {
		if pos, ok := r.slots[i].Position(); ok {
			cells.Put(pos)
		}
	}
	return cells
}

// Place puts the Phantom in slot i on a random clear square that is at
// least MinPlacementGap from the player on both axes and not already
// occupied. If no such square turns up the gap rule is dropped, but the
// player's own square is always avoided.
func (r *Roster) Place(i int, grid *world.Grid, player world.Point, src rng.Source) bool {
	p := r.Slot(i)
	if p == nil {
		return false
	}
	p.TakeOffBoard()
	taken := r.Occupancy()

	fits := func(pt world.Point, gap int) bool {
		if !grid.IsClear(pt.X, pt.Y) || taken.Has(pt) || pt == player {
			return false
		}
		return abs(pt.X-player.X) >= gap && abs(pt.Y-player.Y) >= gap
	}

	for attempt := 0; attempt < placementAttempts; attempt++ {
		pt := world.Point{X: src.Intn(world.Size), Y: src.Intn(world.Size)}
		if fits(pt, MinPlacementGap) {
			p.SetPosition(pt)
			logger.Log.WithFields(logrus.Fields{"slot": i, "at": pt.String(), "hp": p.HP}).Debug("phantom placed")
			return true
		}
	}

	var found bool
	grid.ForEachCell(func(x, y int, _ world.Tile) {
		pt := world.Point{X: x, Y: y}
		if !found && fits(pt, 0) {
			p.SetPosition(pt)
			found = true
		}
	})
	if !found {
		logger.Log.WithField("slot", i).Warn("no free square for phantom")
	}
	return found
}

// Spawn rolls fresh hit points for slot i and places it.
func (r *Roster) Spawn(i, level int, grid *world.Grid, player world.Point, src rng.Source) bool {
	p := r.Slot(i)
	if p == nil {
		return false
	}
	p.Reset(level, src)
	return r.Place(i, grid, player, src)
}

// AdvanceAll moves each Phantom in slot order. It stops at the first capture
// and returns the capturing slot.
func (r *Roster) AdvanceAll(grid *world.Grid, player world.Point, src rng.Source) (captured bool, slot int) {
	for i := range r.slots {
		self := &r.slots[i]
		occupied := func(pt world.Point) bool {
			for j := range r.slots {
				if j != i && r.slots[j].At(pt) {
					return true
				}
			}
			return false
		}
		if self.Move(grid, player, occupied, src) == Captured {
			return true, i
		}
	}
	return false, 0
}

// WithinSquare reports whether any Phantom lies inside the square reaching
// radius squares out from centre on each axis. Walls are ignored.
func (r *Roster) WithinSquare(centre world.Point, radius int) bool {
	for i := range r.slots {
		pos, ok := r.slots[i].Position()
		if !ok {
			continue
		}
		if abs(pos.X-centre.X) <= radius && abs(pos.Y-centre.Y) <= radius {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
