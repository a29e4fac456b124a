package gameplay

import (
	"fmt"

	"phantomslayer/pkg/game/state"
	"phantomslayer/pkg/game/text"
)

// Voices plays the game's sound effects. Implementations must not block.
type Voices interface {
	Beep()
	Zap()
	Hit()
	Roar()
	Count()
}

type silent struct{}

func (silent) Beep()  {}
func (silent) Zap()   {}
func (silent) Hit()   {}
func (silent) Roar()  {}
func (silent) Count() {}

var sound Voices = silent{}

// SetVoices installs the sound backend. nil restores silence.
func SetVoices(v Voices) {
	if v == nil {
		v = silent{}
	}
	sound = v
}

// OnGameOver is called once when the player dies, after the high score is
// updated. main uses it to persist the high score.
var OnGameOver func(g *state.Game)

// OnDumpMap handles the dump-map debug action and returns where the map
// went.
var OnDumpMap func(g *state.Game) (string, error)

// OnRadarChanged is called after the player changes the detector range.
var OnRadarChanged func(r int)

// OnScreenshot saves the current screen and returns the file name.
var OnScreenshot func(g *state.Game) (string, error)

// logMessage adds a translated, formatted message to the game's message log
func logMessage(g *state.Game, key string, a ...any) {
	g.AddMessage(text.Get(key, a...))
}

func describe(g *state.Game) string {
	return fmt.Sprintf("L%d %v@%v", g.Level, g.Player.Facing, g.Player.Pos())
}
