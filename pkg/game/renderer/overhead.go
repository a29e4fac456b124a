package renderer

import (
	"phantomslayer/pkg/engine/world"
	"phantomslayer/pkg/game/state"
)

// Overhead map placement
const (
	MapCell = 8
	MapLeft = (ScreenWidth - world.Size*MapCell) / 2
	MapTop  = ViewTop
)

// MapOptions picks what the overhead map reveals besides the maze and the
// player.
type MapOptions struct {
	Phantoms   bool
	Teleporter bool
}

// DrawOverhead draws the whole maze from above with the player's arrow.
func DrawOverhead(c Canvas, g *state.Game, opt MapOptions) {
	c.FillRect(MapLeft, MapTop, world.Size*MapCell, world.Size*MapCell, ColourWall)

	g.Grid.ForEachCell(func(x, y int, t world.Tile) {
		if t != world.Clear {
			return
		}
		col := ColourMapFloor
		pt := world.Point{X: x, Y: y}
		if opt.Teleporter && pt == g.Teleporter {
			col = ColourTeleporter
		}
		if opt.Phantoms {
			if _, ok := g.Phantoms.At(pt); ok {
				col = ColourMapPhantom
			}
		}
		c.FillRect(MapLeft+float64(x*MapCell), MapTop+float64(y*MapCell), MapCell, MapCell, col)
	})

	drawArrow(c, g.Player.Pos(), g.Player.Facing)
}

// drawArrow draws a triangle in the player's square pointing the way they
// face.
func drawArrow(c Canvas, at world.Point, facing world.Direction) {
	x := MapLeft + float64(at.X*MapCell)
	y := MapTop + float64(at.Y*MapCell)
	const m = MapCell

	var pts []Vec
	switch facing {
	case world.North:
		pts = []Vec{{x + m/2, y}, {x + m, y + m}, {x, y + m}}
	case world.East:
		pts = []Vec{{x + m, y + m/2}, {x, y + m}, {x, y}}
	case world.South:
		pts = []Vec{{x + m/2, y + m}, {x, y}, {x + m, y}}
	default:
		pts = []Vec{{x, y + m/2}, {x + m, y}, {x + m, y + m}}
	}
	c.FillPolygon(pts, ColourMapPlayer)
}
