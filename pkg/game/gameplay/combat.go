package gameplay

import (
	"time"

	"github.com/sirupsen/logrus"

	"phantomslayer/pkg/engine/logger"
	"phantomslayer/pkg/engine/world"
	"phantomslayer/pkg/game/state"
)

// Laser timing
const (
	LaserRecharge  = 2 * time.Second
	LaserFrameTime = 200 * time.Millisecond
	LaserLastFrame = 6
)

// Scores
const (
	HitScore  = 2
	KillScore = 10
)

// FacingPhantom finds the nearest Phantom in front of the player, up to the
// end of the visible corridor.
func FacingPhantom(g *state.Game) (slot int, ok bool) {
	p := g.Player
	depth := g.Grid.ViewDistance(p.X, p.Y, p.Facing)
	for _, s := range g.SightingsFrom(p.X, p.Y, p.Facing, depth) {
		if s.Distance > 0 {
			return s.Slot, true
		}
	}
	return 0, false
}

// CountFacingPhantoms counts the Phantoms on the player's square and the
// next rangeLimit squares ahead, stopping at the first wall.
func CountFacingPhantoms(g *state.Game, rangeLimit int) int {
	return CountPhantomsInView(g, g.Player.X, g.Player.Y, g.Player.Facing, rangeLimit)
}

// CountPhantomsInView is CountFacingPhantoms for an arbitrary viewpoint.
func CountPhantomsInView(g *state.Game, x, y int, dir world.Direction, rangeLimit int) int {
	depth := g.Grid.ViewDistance(x, y, dir)
	if rangeLimit < depth {
		depth = rangeLimit
	}
	return len(g.SightingsFrom(x, y, dir, depth))
}

// FireLaser resolves a shot against the nearest facing Phantom. A hit costs
// it one hit point and scores HitScore; the killing hit adds KillScore and
// switches to ZapPhantom.
func FireLaser(g *state.Game) {
	sound.Zap()
	slot, ok := FacingPhantom(g)
	if !ok {
		logger.Log.WithField("player", describe(g)).Debug("laser missed")
		return
	}

	p := g.Phantoms.Slot(slot)
	p.HP--
	g.AddScore(HitScore)
	g.LevelHits++
	g.Laser.IsFiring = false
	sound.Hit()

	fields := logrus.Fields{"slot": slot, "hp": p.HP, "score": g.Score}
	if !p.IsDefeated() {
		logMessage(g, "PHANTOM_HIT")
		logger.Log.WithFields(fields).Debug("phantom hit")
		return
	}

	g.AddScore(KillScore)
	g.LevelKills++
	g.Kills++
	g.SetState(state.ZapPhantom)
	g.Defeated = state.Defeated{Slot: slot, Active: true}
	ResetLaser(g)
	logMessage(g, "PHANTOM_DOWN")
	logger.Log.WithFields(fields).Info("phantom destroyed")
}

// ResetLaser stops any zap and starts the recharge.
func ResetLaser(g *state.Game) {
	g.Laser.IsFiring = false
	g.Laser.CanFire = false
	g.Laser.Charging = true
	g.Laser.SinceCharge = 0
	g.Laser.SinceFrame = 0
	g.Laser.ZapFrame = 0
}

// updateLaser advances the recharge timer and the zap animation.
func updateLaser(g *state.Game, dt time.Duration) {
	l := &g.Laser
	if l.Charging {
		l.SinceCharge += dt
		if l.SinceCharge >= LaserRecharge {
			l.Charging = false
			l.CanFire = true
		}
	}
	if l.IsFiring {
		l.SinceFrame += dt
		if l.SinceFrame >= LaserFrameTime {
			if l.ZapFrame >= LaserLastFrame {
				ResetLaser(g)
			} else {
				l.ZapFrame++
				l.SinceFrame = 0
			}
		}
	}
}

// handleTrigger implements fire-on-release: holding the trigger while the
// laser is charged arms it, letting go fires.
func handleTrigger(g *state.Game, held bool) {
	if held {
		if g.Laser.CanFire && !g.Laser.ShowReticule {
			g.Laser.ShowReticule = true
			logger.Log.Debug("laser armed")
		}
		return
	}
	if g.Laser.ShowReticule {
		g.Laser.ShowReticule = false
		ResetLaser(g)
		g.Laser.IsFiring = true
		FireLaser(g)
	}
}
