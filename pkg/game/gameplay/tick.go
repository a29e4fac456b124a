package gameplay

import (
	"time"

	"github.com/sirupsen/logrus"

	"phantomslayer/pkg/engine/input"
	"phantomslayer/pkg/engine/logger"
	"phantomslayer/pkg/game/phantom"
	"phantomslayer/pkg/game/state"
	"phantomslayer/pkg/game/text"
)

// State durations
const (
	ZapTime       = 500 * time.Millisecond
	TempMapTime   = 3 * time.Second
	DeathShowTime = 2 * time.Second
	CountTick     = time.Second
)

// Update advances the game by dt using this tick's input.
func Update(g *state.Game, in input.Frame, dt time.Duration) {
	for _, intent := range in.Intents {
		ProcessIntent(g, intent)
	}

	switch g.State {
	case state.OfferHelp:
		switch {
		case in.HasIntent(input.ActionHelp):
			g.HelpPage = 0
			g.SetState(state.ShowHelp)
			sound.Beep()
		case in.AnyKey:
			StartNewGame(g)
		}

	case state.ShowHelp:
		if in.AnyKey {
			if in.HasIntent(input.ActionBack) || in.Pressed.Has(input.ButtonBackward) {
				if g.HelpPage > 0 {
					g.HelpPage--
				}
			} else {
				g.HelpPage++
			}
			sound.Beep()
		}
		if g.HelpPage >= text.HelpPages {
			StartNewGame(g)
		}

	case state.StartCount:
		g.StepElapsed += dt
		for g.StepElapsed >= CountTick && g.CountDown > 0 {
			g.StepElapsed -= CountTick
			g.CountDown--
			sound.Count()
		}
		if g.CountDown <= 0 {
			g.SetState(state.InPlay)
		}

	case state.PlayerDead:
		g.StateElapsed += dt
		if g.StateElapsed >= DeathShowTime {
			g.SetState(state.PlayerDeadNextGame)
		}

	case state.PlayerDeadNextGame:
		if in.AnyKey {
			StartNewGame(g)
		}

	case state.Teleporting:
		updateTeleport(g, dt)

	case state.ShowTempMap:
		g.StateElapsed += dt
		if g.StateElapsed >= TempMapTime {
			g.SetState(state.InPlay)
		}

	case state.ZapPhantom:
		g.StateElapsed += dt
		if g.StateElapsed >= ZapTime {
			acknowledgeKill(g)
			return
		}
		playTick(g, in, dt)

	case state.InPlay:
		playTick(g, in, dt)
	}
}

// acknowledgeKill ends the zap: the overhead map is shown, the dead Phantom
// leaves the board and the level-up rule runs.
func acknowledgeKill(g *state.Game) {
	lastOfLevel := g.LevelKills == phantom.KillTarget(g.Level)
	g.ShowTeleOnMap = lastOfLevel
	g.SetState(state.ShowTempMap)
	if g.Defeated.Active {
		if p := g.Phantoms.Slot(g.Defeated.Slot); p != nil {
			p.TakeOffBoard()
		}
		g.Defeated = state.Defeated{}
	}
	LevelUpCheck(g)
}

// playTick is one tick of live play: player actions, then the world.
func playTick(g *state.Game, in input.Frame, dt time.Duration) {
	armed := g.Laser.ShowReticule
	switch {
	case !armed && in.Pressed.Has(input.ButtonForward):
		MovePlayer(g, true)
	case !armed && in.Pressed.Has(input.ButtonBackward):
		MovePlayer(g, false)
	case !armed && in.Pressed.Has(input.ButtonTurnLeft):
		TurnPlayer(g, false)
	case !armed && in.Pressed.Has(input.ButtonTurnRight):
		TurnPlayer(g, true)
	case !armed && in.Pressed.Has(input.ButtonTeleport):
		if StartTeleport(g) {
			return
		}
	case in.Pressed.Has(input.ButtonRadarUp):
		AdjustRadar(g, 1)
	case in.Pressed.Has(input.ButtonRadarDown):
		AdjustRadar(g, -1)
	}
	if !g.State.Playing() {
		return
	}

	handleTrigger(g, in.Held.Has(input.ButtonFire))
	updateWorld(g, dt)
}

// updateWorld moves the Phantoms when their interval has passed, then runs
// the laser timers.
func updateWorld(g *state.Game, dt time.Duration) {
	g.SinceMove += dt
	if g.SinceMove >= g.PhantomSpeed {
		g.SinceMove = 0
		if captured, slot := g.Phantoms.AdvanceAll(g.Grid, g.Player.Pos(), g.Rand); captured {
			logger.Log.WithFields(logrus.Fields{"slot": slot}).Debug("phantom caught player")
			Death(g)
			return
		}
		CheckSenses(g)
	}
	updateLaser(g, dt)
}
