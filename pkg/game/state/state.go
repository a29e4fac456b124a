// Package state holds the game aggregate shared by gameplay and the renderers.
package state

import (
	"time"

	"phantomslayer/pkg/engine/rng"
	"phantomslayer/pkg/engine/world"
	"phantomslayer/pkg/game/phantom"
)

// State is the top-level mode of the game. Exactly one is active.
type State int

const (
	OfferHelp State = iota
	ShowHelp
	StartCount
	InPlay
	Teleporting
	ZapPhantom
	ShowTempMap
	PlayerDead
	PlayerDeadNextGame
)

var stateNames = [...]string{
	OfferHelp:          "OfferHelp",
	ShowHelp:           "ShowHelp",
	StartCount:         "StartCount",
	InPlay:             "InPlay",
	Teleporting:        "Teleporting",
	ZapPhantom:         "ZapPhantom",
	ShowTempMap:        "ShowTempMap",
	PlayerDead:         "PlayerDead",
	PlayerDeadNextGame: "PlayerDeadNextGame",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// Playing reports whether the maze is live: in play or one of its transient
// sub-states.
func (s State) Playing() bool {
	switch s {
	case InPlay, Teleporting, ZapPhantom, ShowTempMap:
		return true
	}
	return false
}

// Player is the slayer's square and facing.
type Player struct {
	X, Y   int
	Facing world.Direction
}

// Pos returns the player's square.
func (p Player) Pos() world.Point {
	return world.Point{X: p.X, Y: p.Y}
}

// MoveTo sets the player's square.
func (p *Player) MoveTo(pt world.Point) {
	p.X, p.Y = pt.X, pt.Y
}

// Laser is the weapon's charge and firing state.
type Laser struct {
	CanFire      bool
	IsFiring     bool
	ShowReticule bool
	Charging     bool          // recharge timer running
	SinceCharge  time.Duration // time since the recharge started
	SinceFrame   time.Duration // time since the zap frame last advanced
	ZapFrame     int
}

// Defeated identifies the roster slot of the Phantom shot down during
// ZapPhantom.
type Defeated struct {
	Slot   int
	Active bool
}

// Radar range limits
const (
	RadarMin     = 1
	RadarMax     = 6
	RadarDefault = 4
)

// Game represents the whole state of one session
type Game struct {
	Grid   *world.Grid
	MapID  int
	Player Player
	Start  world.Point

	Teleporter world.Point

	Phantoms     *phantom.Roster
	PhantomCount int
	PhantomSpeed time.Duration
	SinceMove    time.Duration

	Level      int
	FirstLevel int // level a new game starts on
	LevelKills int
	LevelHits  int
	Kills      int
	Score      int
	HighScore  int

	RadarRange   int
	RadarInitial int // range a new game starts with
	Laser        Laser
	Defeated     Defeated

	State         State
	StateElapsed  time.Duration
	StepElapsed   time.Duration // sub-timer inside a state (countdown ticks, teleport flashes)
	HelpPage      int
	CountDown     int
	TeleFlash     bool
	ShowTeleOnMap bool

	// Debug views
	ChaseMode bool
	MapMode   bool

	Messages []string

	Rand rng.Source
}

// NewGame creates a session waiting at the help offer.
func NewGame(src rng.Source) *Game {
	return &Game{
		Grid:         world.NewGrid(),
		MapID:        world.NoLayout,
		Phantoms:     phantom.NewRoster(),
		RadarRange:   RadarDefault,
		RadarInitial: RadarDefault,
		Level:        1,
		FirstLevel:   1,
		State:        OfferHelp,
		Messages:     make([]string, 0),
		Rand:         src,
	}
}

// SetState switches mode and restarts the state timers.
func (g *Game) SetState(s State) {
	g.State = s
	g.StateElapsed = 0
	g.StepElapsed = 0
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// AddScore awards points and keeps the session high score current.
func (g *Game) AddScore(points int) {
	g.Score += points
	if g.Score > g.HighScore {
		g.HighScore = g.Score
	}
}

// PhantomAt returns the slot of the Phantom on (x, y).
func (g *Game) PhantomAt(x, y int) (int, bool) {
	return g.Phantoms.At(world.Point{X: x, Y: y})
}

// OnTeleporter reports whether the player stands on the teleporter.
func (g *Game) OnTeleporter() bool {
	return g.Player.Pos() == g.Teleporter
}
