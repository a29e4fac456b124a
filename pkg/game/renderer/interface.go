package renderer

import (
	"phantomslayer/pkg/game/state"
)

// Screen geometry in device pixels. The maze view and the overhead map both
// occupy the band between ViewTop and ViewBottom.
const (
	ScreenWidth  = 240
	ScreenHeight = 240
	ViewTop      = 40
	ViewBottom   = 200
	LineHeight   = 10
)

// Colour is a logical palette entry. Backends choose the actual colours.
type Colour int

const (
	ColourBackground Colour = iota
	ColourWall
	ColourWallEdge
	ColourFarWall
	ColourFloorLine
	ColourTeleporter
	ColourPhantom
	ColourPhantomZapped
	ColourPhantomEye
	ColourReticule
	ColourZap
	ColourText
	ColourTextDim
	ColourTitle
	ColourMapFloor
	ColourMapPlayer
	ColourMapPhantom
	ColourFlash
	ColourCharge

	NumColours
)

// Align positions a text run relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCentre
	AlignRight
)

// Sprite identifies a scalable image.
type Sprite int

const (
	SpritePhantom Sprite = iota
	SpritePhantomZapped
)

// Vec is a point in device space.
type Vec struct {
	X, Y float64
}

// Canvas is the drawing surface a backend provides. All coordinates are in
// the 240x240 device space, origin top left.
type Canvas interface {
	Clear(c Colour)
	FillRect(x, y, w, h float64, c Colour)
	FillPolygon(pts []Vec, c Colour)
	Line(x1, y1, x2, y2 float64, c Colour)
	Circle(cx, cy, r float64, c Colour)
	Sprite(s Sprite, x, y, w, h float64)
	Text(s string, x, y float64, align Align, c Colour)
}

// Renderer defines the interface for game rendering backends.
// Implementations are the ebiten window and the tcell terminal.
type Renderer interface {
	// Init opens the window or screen.
	Init() error

	// Run drives the game loop until the player quits.
	Run(g *state.Game) error

	// Close releases the window or screen. Safe to call more than once.
	Close()
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}
