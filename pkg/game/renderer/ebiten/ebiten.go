package ebiten

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"

	engineinput "phantomslayer/pkg/engine/input"
	"phantomslayer/pkg/engine/logger"
	"phantomslayer/pkg/game/config"
	"phantomslayer/pkg/game/gameplay"
	"phantomslayer/pkg/game/renderer"
	"phantomslayer/pkg/game/state"
)

// Options configures the window.
type Options struct {
	Scale int  // integer window scale over the 240x240 screen
	Debug bool // show the frame rate and state overlay
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	scale int
	debug bool

	game    *state.Game
	tracker engineinput.Tracker
	last    time.Time

	fontSource *text.GoTextFaceSource
	cachedFace *text.GoTextFace
	sprites    map[renderer.Sprite]*ebiten.Image

	heldKeys []ebiten.Key
	newKeys  []ebiten.Key
	pads     []ebiten.GamepadID

	windowOpenedLogged bool
}

// New creates a new Ebiten renderer
func New(opts Options) *EbitenRenderer {
	scale := opts.Scale
	if scale < minScale || scale > maxScale {
		scale = defaultScale
	}
	return &EbitenRenderer{
		scale:   scale,
		debug:   opts.Debug,
		sprites: make(map[renderer.Sprite]*ebiten.Image),
	}
}

// Init sets up the window and loads the font
func (e *EbitenRenderer) Init() error {
	if err := e.loadFont(); err != nil {
		return err
	}
	ebiten.SetWindowSize(renderer.ScreenWidth*e.scale, renderer.ScreenHeight*e.scale)
	ebiten.SetWindowTitle("Phantom Slayer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Run starts the Ebiten game loop and blocks until the window closes or the
// player quits.
func (e *EbitenRenderer) Run(g *state.Game) error {
	e.game = g
	e.last = time.Time{}
	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

// Close is a no-op; ebiten tears the window down when RunGame returns.
func (e *EbitenRenderer) Close() {}

// Update reads input and advances the game (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		logger.Log.WithFields(logrus.Fields{"width": w, "height": h}).Info("window opened")
	}

	frame := e.readInput()
	if frame.HasIntent(engineinput.ActionQuit) {
		return ebiten.Termination
	}

	gameplay.Update(e.game, frame, e.frameTime())
	return nil
}

// frameTime measures the time since the last update, clamped so a stalled
// window does not fast-forward the maze.
func (e *EbitenRenderer) frameTime() time.Duration {
	now := time.Now()
	dt := time.Second / time.Duration(ebiten.TPS())
	if !e.last.IsZero() {
		dt = now.Sub(e.last)
	}
	e.last = now
	if limit := maxFrameTime * time.Millisecond; dt > limit {
		dt = limit
	}
	return dt
}

// Draw renders the current state (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	renderer.DrawGame(&canvas{dst: screen, e: e}, e.game)

	if e.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f TPS %v", ebiten.ActualTPS(), e.game.State), 2, renderer.ScreenHeight-16)
	}
}

// Layout returns the fixed logical screen size (Ebiten interface). A
// resize that changes the whole-number scale is saved for the next start.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if scale := scaleForWindow(outsideWidth, outsideHeight); scale != e.scale {
		e.scale = scale
		cfg := config.Current()
		if err := cfg.SetWindowScale(scale); err != nil {
			logger.Log.WithError(err).WithField("path", cfg.Path()).Warn("could not save window scale")
		}
	}
	return renderer.ScreenWidth, renderer.ScreenHeight
}

// scaleForWindow is the largest whole scale of the screen that fits a
// window, clamped to the supported range.
func scaleForWindow(w, h int) int {
	scale := min(w/renderer.ScreenWidth, h/renderer.ScreenHeight)
	return max(minScale, min(scale, maxScale))
}
