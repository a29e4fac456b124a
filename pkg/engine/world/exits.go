package world

import "math/bits"

// ExitSet is a 4-bit flag set of compass exits. It is kept separate from
// Direction so that movement code can use set algebra on it.
type ExitSet uint8

// Exit flags. The bit order matches the Direction order.
const (
	ExitNorth ExitSet = 1 << iota
	ExitEast
	ExitSouth
	ExitWest

	ExitNone ExitSet = 0
	ExitAll          = ExitNorth | ExitEast | ExitSouth | ExitWest
)

// Has reports whether every flag in o is set in e.
func (e ExitSet) Has(o ExitSet) bool {
	return o != 0 && e&o == o
}

// With returns e with the flags of o added.
func (e ExitSet) With(o ExitSet) ExitSet {
	return e | o
}

// Without returns e with the flags of o cleared.
func (e ExitSet) Without(o ExitSet) ExitSet {
	return e &^ o
}

// Count returns the number of exits in the set.
func (e ExitSet) Count() int {
	return bits.OnesCount8(uint8(e & ExitAll))
}

// Directions lists the set's exits in North, East, South, West order.
func (e ExitSet) Directions() []Direction {
	dirs := make([]Direction, 0, 4)
	for _, d := range AllDirections() {
		if e.Has(d.Exit()) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Direction converts a single-flag set back to a facing.
// ok is false when the set does not hold exactly one exit.
func (e ExitSet) Direction() (d Direction, ok bool) {
	if e.Count() != 1 {
		return North, false
	}
	return Direction(bits.TrailingZeros8(uint8(e))), true
}

func (e ExitSet) String() string {
	if e&ExitAll == 0 {
		return "-"
	}
	s := ""
	for _, d := range e.Directions() {
		s += d.String()[:1]
	}
	return s
}
