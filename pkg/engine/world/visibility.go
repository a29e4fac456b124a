package world

// MaxViewRange is the deepest corridor square that can be drawn. It is one
// less than the number of perspective frames.
const MaxViewRange = 5

// ViewDistance counts the clear squares seen from (x, y) looking in dir,
// stopping at the first wall or the edge of the grid, capped at MaxViewRange.
// The starting square itself is not counted.
func (g *Grid) ViewDistance(x, y int, dir Direction) int {
	if !dir.IsValid() {
		return 0
	}
	dx, dy := dir.Delta()
	count := 0
	for count < MaxViewRange {
		x += dx
		y += dy
		if !g.IsClear(x, y) {
			break
		}
		count++
	}
	return count
}

// Sightline returns the squares from (x, y) outward in dir, starting with
// (x, y) itself, for the visible depth. Index i of the result is i squares
// from the viewer.
func (g *Grid) Sightline(x, y int, dir Direction) []Point {
	depth := g.ViewDistance(x, y, dir)
	line := make([]Point, 0, depth+1)
	p := Point{X: x, Y: y}
	for i := 0; i <= depth; i++ {
		line = append(line, p)
		p = p.Step(dir)
	}
	return line
}
