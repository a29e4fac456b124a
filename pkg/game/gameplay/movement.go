package gameplay

import (
	"phantomslayer/pkg/engine/logger"
	"phantomslayer/pkg/game/state"
)

// MovePlayer steps the player one square forward or back. Walls block the
// move. Stepping onto a Phantom is fatal. Returns true if the player moved.
func MovePlayer(g *state.Game, forward bool) bool {
	dir := g.Player.Facing
	if !forward {
		dir = dir.Opposite()
	}
	next := g.Player.Pos().Step(dir)
	if !g.Grid.IsClear(next.X, next.Y) {
		return false
	}
	if _, ok := g.Phantoms.At(next); ok {
		Death(g)
		return false
	}
	g.Player.MoveTo(next)
	logger.Log.WithField("player", describe(g)).Debug("player moved")
	return true
}

// TurnPlayer rotates the player a quarter turn on the spot.
func TurnPlayer(g *state.Game, right bool) {
	if right {
		g.Player.Facing = g.Player.Facing.TurnRight()
	} else {
		g.Player.Facing = g.Player.Facing.TurnLeft()
	}
}
