package world

// Direction is a facing. The cycle is North, East, South, West.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{"North", "East", "South", "West"}

// AllDirections lists the facings in turning order.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directionNames[d]
}

// IsValid reports whether d is one of the four facings.
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the facing turned half way round.
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % 4
}

// TurnRight returns the next direction clockwise.
func (d Direction) TurnRight() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 1) % 4
}

// TurnLeft returns the next direction anticlockwise.
func (d Direction) TurnLeft() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 3) % 4
}

// Sides returns the compass directions to the viewer's left and right.
func (d Direction) Sides() (left, right Direction) {
	return d.TurnLeft(), d.TurnRight()
}

// Delta returns the x and y offsets for one step in this direction.
// y grows southwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Exit converts a facing into its single-bit exit flag.
func (d Direction) Exit() ExitSet {
	if !d.IsValid() {
		return 0
	}
	return 1 << uint(d)
}
