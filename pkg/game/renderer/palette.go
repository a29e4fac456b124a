package renderer

import "image/color"

// Palette is the full-colour rendering of each logical colour, shared by
// the window and screenshots.
var Palette = [NumColours]color.RGBA{
	ColourBackground:    {0, 0, 0, 255},
	ColourWall:          {60, 60, 180, 255},   // corridor walls
	ColourWallEdge:      {30, 30, 100, 255},   // wall corners, empty charge bar
	ColourFarWall:       {0, 0, 255, 255},     // end of the corridor
	ColourFloorLine:     {255, 0, 0, 255},     // floor grid
	ColourTeleporter:    {0, 255, 0, 255},     // escape square
	ColourPhantom:       {255, 255, 255, 255}, // phantom body
	ColourPhantomZapped: {255, 160, 0, 255},   // phantom caught by the beam
	ColourPhantomEye:    {255, 0, 0, 255},
	ColourReticule:      {255, 255, 0, 255},
	ColourZap:           {255, 220, 40, 255},
	ColourText:          {230, 230, 230, 255},
	ColourTextDim:       {140, 140, 160, 255},
	ColourTitle:         {255, 255, 0, 255},
	ColourMapFloor:      {255, 255, 0, 255}, // paths on the overhead map
	ColourMapPlayer:     {255, 0, 0, 255},
	ColourMapPhantom:    {255, 80, 80, 255},
	ColourFlash:         {0, 200, 0, 255}, // teleport flash
	ColourCharge:        {255, 165, 0, 255},
}

// RGBA returns the palette colour for c.
func RGBA(c Colour) color.RGBA {
	if c < 0 || c >= NumColours {
		return Palette[ColourText]
	}
	return Palette[c]
}
