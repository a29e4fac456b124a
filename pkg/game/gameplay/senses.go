package gameplay

import (
	"phantomslayer/pkg/game/state"
)

// CheckSenses sounds the detector if any Phantom is within the radar range
// of the player on both axes. Returns true if it beeped.
func CheckSenses(g *state.Game) bool {
	if g.Phantoms.WithinSquare(g.Player.Pos(), g.RadarRange) {
		sound.Beep()
		return true
	}
	return false
}

// AdjustRadar changes the detector range by delta, wrapping within
// RadarMin..RadarMax.
func AdjustRadar(g *state.Game, delta int) {
	span := state.RadarMax - state.RadarMin + 1
	r := (g.RadarRange - state.RadarMin + delta) % span
	if r < 0 {
		r += span
	}
	g.RadarRange = r + state.RadarMin
	sound.Beep()
	logMessage(g, "RADAR_RANGE", g.RadarRange)
	if OnRadarChanged != nil {
		OnRadarChanged(g.RadarRange)
	}
}
