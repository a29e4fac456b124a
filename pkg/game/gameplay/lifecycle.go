// Package gameplay drives the game: level setup, player actions, combat and
// the per-tick state machine.
package gameplay

import (
	"github.com/sirupsen/logrus"

	"phantomslayer/pkg/engine/logger"
	"phantomslayer/pkg/engine/rng"
	"phantomslayer/pkg/engine/world"
	"phantomslayer/pkg/game/phantom"
	"phantomslayer/pkg/game/state"
)

// CountdownSeconds is the pause between the level map and play.
const CountdownSeconds = 5

// BuildGame creates a session waiting at the help offer. startLevel is used
// by every new game; values below 1 mean level 1.
func BuildGame(src rng.Source, startLevel, highScore int) *state.Game {
	g := state.NewGame(src)
	if startLevel > 1 {
		g.FirstLevel = startLevel
	}
	g.HighScore = highScore
	return g
}

// StartNewGame resets the session and begins the countdown on a fresh maze.
func StartNewGame(g *state.Game) {
	initGame(g)
	g.Phantoms.Clear()
	g.PhantomSpeed = phantom.Speed(g.Level)
	g.SinceMove = 0
	StartNewLevel(g)

	g.SetState(state.StartCount)
	g.CountDown = CountdownSeconds
	sound.Beep()
	logger.Log.WithFields(logrus.Fields{"level": g.Level, "map": g.MapID}).Info("new game")
}

func initGame(g *state.Game) {
	g.ChaseMode = false
	g.MapMode = false
	g.MapID = world.NoLayout
	g.Level = g.FirstLevel
	if g.Level < 1 {
		g.Level = 1
	}
	g.PhantomCount = phantom.CountForLevel(g.Level)
	g.Player = state.Player{Facing: world.North}
	g.Teleporter = world.Point{}
	g.Start = world.Point{}
	g.Score = 0
	g.Kills = 0
	g.RadarRange = g.RadarInitial
	if g.RadarRange < state.RadarMin || g.RadarRange > state.RadarMax {
		g.RadarRange = state.RadarDefault
	}
	g.Defeated = state.Defeated{}
	g.ShowTeleOnMap = false
	g.ClearMessages()
}

// initLevel resets the per-level counters and the laser.
func initLevel(g *state.Game) {
	g.Laser = state.Laser{CanFire: true}
	g.LevelKills = 0
	g.LevelHits = 0
}

// StartNewLevel loads a maze different from the last one, puts the player
// near the centre and populates the Phantoms.
func StartNewLevel(g *state.Game) {
	g.Grid = world.SelectLayout(g.MapID, g.Rand)
	g.MapID = g.Grid.ID()
	initLevel(g)

	g.Start = PlacePlayer(g)
	g.Player.MoveTo(g.Start)
	g.Player.Facing = world.Direction(g.Rand.Intn(4))

	SetTeleportSquare(g)

	for i := 0; i < g.PhantomCount; i++ {
		g.Phantoms.Spawn(i, g.Level, g.Grid, g.Player.Pos(), g.Rand)
	}
	logMessage(g, "LEVEL_START", g.Level)
	logger.Log.WithFields(logrus.Fields{
		"level":    g.Level,
		"map":      g.MapID,
		"player":   describe(g),
		"phantoms": g.PhantomCount,
		"speed":    g.PhantomSpeed.String(),
	}).Info("level started")
}

// PlacePlayer picks a clear square within one step of the grid centre.
func PlacePlayer(g *state.Game) world.Point {
	cx, cy := g.Grid.CenterPosition()
	for {
		x := cx + g.Rand.Intn(3) - 1
		y := cy + g.Rand.Intn(3) - 1
		if g.Grid.IsClear(x, y) {
			return world.Point{X: x, Y: y}
		}
	}
}

// SetTeleportSquare rolls a new teleporter square. It is clear, shares
// neither row nor column with the player and is not the start square.
// On a maze too small for that, any clear square other than the player's
// and the start is used.
func SetTeleportSquare(g *state.Game) {
	player := g.Player.Pos()
	for attempt := 0; attempt < 10000; attempt++ {
		p := world.Point{X: g.Rand.Intn(world.Size), Y: g.Rand.Intn(world.Size)}
		if !g.Grid.IsClear(p.X, p.Y) {
			continue
		}
		if p.X == player.X || p.Y == player.Y || p == g.Start {
			continue
		}
		g.Teleporter = p
		return
	}
	g.Grid.ForEachCell(func(x, y int, t world.Tile) {
		p := world.Point{X: x, Y: y}
		if t == world.Clear && p != player && p != g.Start {
			g.Teleporter = p
		}
	})
}

// LevelUpCheck advances the level once enough Phantoms have been killed.
// Until the roster is full each level needs as many kills as its number;
// after that every level needs MaxPhantoms. Returns true if a new level
// was started.
func LevelUpCheck(g *state.Game) bool {
	levelUp := false
	if g.Level < phantom.MaxPhantoms {
		if g.LevelKills == g.Level {
			levelUp = true
			g.Level++
			g.PhantomCount = g.Level
		}
	} else if g.LevelKills == phantom.MaxPhantoms {
		levelUp = true
		g.Level++
		g.PhantomCount = phantom.MaxPhantoms
	}
	if !levelUp {
		return false
	}

	if g.PhantomCount > phantom.MaxPhantoms {
		g.PhantomCount = phantom.MaxPhantoms
	}
	g.PhantomSpeed = phantom.Speed(g.Level)
	g.Phantoms.Clear()
	logger.Log.WithFields(logrus.Fields{"level": g.Level, "kills": g.Kills}).Info("level up")
	StartNewLevel(g)
	return true
}

// Death ends the game.
func Death(g *state.Game) {
	g.SetState(state.PlayerDead)
	g.Laser.ShowReticule = false
	g.Laser.IsFiring = false
	g.ShowTeleOnMap = true
	if g.Score > g.HighScore {
		g.HighScore = g.Score
	}
	sound.Roar()
	logger.Log.WithFields(logrus.Fields{
		"score":  g.Score,
		"kills":  g.Kills,
		"level":  g.Level,
		"player": describe(g),
	}).Info("player died")
	if OnGameOver != nil {
		OnGameOver(g)
	}
}
