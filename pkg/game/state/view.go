package state

import "phantomslayer/pkg/engine/world"

// Sighting is a Phantom seen along a line of squares.
type Sighting struct {
	Slot     int
	Distance int // squares from the viewer; 0 is the viewer's own square
}

// SightingsFrom lists the Phantoms on the squares 0..depth out from (x, y)
// in dir, nearest first. Walls are not consulted; callers pass a depth that
// already stops at the first wall.
func (g *Game) SightingsFrom(x, y int, dir world.Direction, depth int) []Sighting {
	var out []Sighting
	p := world.Point{X: x, Y: y}
	for d := 0; d <= depth; d++ {
		if !g.Grid.IsValidPosition(p.X, p.Y) {
			break
		}
		if slot, ok := g.Phantoms.At(p); ok {
			out = append(out, Sighting{Slot: slot, Distance: d})
		}
		p = p.Step(dir)
	}
	return out
}
