package gameplay

import (
	"time"

	"phantomslayer/pkg/engine/logger"
	"phantomslayer/pkg/game/state"
)

// Teleport timing: the screen flashes every TeleportFlip for TeleportTime,
// and the player is moved once TeleportJump has passed.
const (
	TeleportTime = 2 * time.Second
	TeleportJump = time.Second
	TeleportFlip = 100 * time.Millisecond
)

// StartTeleport sends the player back to the level's start square if they
// stand on the teleporter. The teleporter moves straight away.
func StartTeleport(g *state.Game) bool {
	if !g.OnTeleporter() {
		return false
	}
	g.SetState(state.Teleporting)
	g.TeleFlash = true
	ResetLaser(g)
	SetTeleportSquare(g)
	logMessage(g, "TELEPORTING")
	logger.Log.WithField("to", g.Start.String()).Info("teleport")
	return true
}

func updateTeleport(g *state.Game, dt time.Duration) {
	g.StateElapsed += dt
	g.StepElapsed += dt
	if g.StepElapsed < TeleportFlip {
		return
	}
	g.StepElapsed = 0
	g.TeleFlash = !g.TeleFlash
	if g.StateElapsed >= TeleportJump {
		g.Player.MoveTo(g.Start)
	}
	if g.StateElapsed >= TeleportTime {
		g.TeleFlash = false
		g.SetState(state.InPlay)
	}
}
