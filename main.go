package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/sirupsen/logrus"

	"phantomslayer/pkg/engine/input"
	"phantomslayer/pkg/engine/logger"
	"phantomslayer/pkg/engine/rng"
	"phantomslayer/pkg/game/audio"
	"phantomslayer/pkg/game/config"
	"phantomslayer/pkg/game/devtools"
	"phantomslayer/pkg/game/gameplay"
	"phantomslayer/pkg/game/renderer"
	ebitenrenderer "phantomslayer/pkg/game/renderer/ebiten"
	"phantomslayer/pkg/game/renderer/tui"
	"phantomslayer/pkg/game/state"
	"phantomslayer/pkg/game/text"
)

func main() {
	os.Exit(play())
}

// play runs the session and returns the exit code.
func play() int {
	useTUI := flag.Bool("tui", false, "play in the terminal instead of a window")
	seed := flag.Int64("seed", 0, "random seed (0 picks one)")
	startLevel := flag.Int("level", 1, "starting level (for developer testing)")
	debug := flag.Bool("debug", false, "debug logging and the frame rate overlay")
	logPath := flag.String("log", "", "write the log to this file")
	noSound := flag.Bool("nosound", false, "disable sound")
	configPath := flag.String("config", "", "config file (default "+config.DefaultPath()+")")
	printMap := flag.Int("print-map", -1, "print a maze layout and exit")
	flag.Parse()

	closer, err := logger.Setup(*debug, *logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	defer closer.Close()

	if *printMap >= 0 {
		if err := devtools.PrintLayoutToTerminal(os.Stdout, *printMap); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.WithError(err).Warn("using default config")
	}
	logger.Log.WithField("path", cfg.Path()).Debug("config loaded")
	applyBindings(cfg.Bindings)

	if *useTUI {
		cfg.Backend = config.BackendTUI
	}

	if cfg.Sound && !*noSound {
		player := audio.NewPlayer(cfg.Volume)
		if err := player.Initialize(); err != nil {
			logger.Log.WithError(err).Warn("sound disabled")
		} else {
			defer player.Close()
			gameplay.SetVoices(player)
		}
	}

	gameplay.OnGameOver = func(g *state.Game) {
		if err := cfg.SetHighScore(g.HighScore); err != nil {
			logger.Log.WithError(err).Warn("could not save high score")
		}
	}
	gameplay.OnRadarChanged = func(r int) {
		if err := cfg.SetRadarRange(r); err != nil {
			logger.Log.WithError(err).Warn("could not save radar range")
		}
	}
	gameplay.OnDumpMap = devtools.DumpMapToFile
	gameplay.OnScreenshot = devtools.SaveScreenshotPNG

	if *seed == 0 {
		*seed = rng.EntropySeed()
	}
	logger.Log.WithFields(logrus.Fields{
		"seed":    *seed,
		"level":   *startLevel,
		"backend": cfg.Backend,
	}).Info("starting")

	g := gameplay.BuildGame(rng.New(*seed), *startLevel, cfg.HighScore)
	g.RadarInitial = cfg.RadarRange

	if err := run(g, cfg, *debug, *logPath != ""); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	printSummary(g)
	return 0
}

// printSummary writes the session's results once the screen is gone.
func printSummary(g *state.Game) {
	label := color.Style{color.FgCyan}
	value := color.Style{color.FgYellow, color.OpBold}
	fmt.Printf("%s %s  %s %s  %s %s  %s %s\n",
		label.Sprint(text.Get("SCORE")), value.Sprint(g.Score),
		label.Sprint(text.Get("HIGH")), value.Sprint(g.HighScore),
		label.Sprint(text.Get("LEVEL")), value.Sprint(g.Level),
		label.Sprint(text.Get("KILLS")), value.Sprint(g.Kills))
	fmt.Println(text.Get("GOODBYE"))
}

// run plays on the configured backend. A window that cannot open falls
// back to the terminal.
func run(g *state.Game, cfg *config.Config, debug, logToFile bool) error {
	backends := []string{cfg.Backend}
	if cfg.Backend == config.BackendEbiten {
		backends = append(backends, config.BackendTUI)
	}

	var lastErr error
	for _, name := range backends {
		if name == config.BackendTUI && !logToFile {
			// the terminal belongs to the game
			logger.Discard()
		}
		r := newRenderer(name, cfg, debug)
		renderer.SetRenderer(r)
		if err := r.Init(); err != nil {
			logger.Log.WithError(err).WithField("backend", name).Warn("backend unavailable")
			lastErr = err
			continue
		}
		err := r.Run(g)
		r.Close()
		return err
	}
	return fmt.Errorf("no backend could start: %w", lastErr)
}

func newRenderer(name string, cfg *config.Config, debug bool) renderer.Renderer {
	if name == config.BackendTUI {
		return tui.New()
	}
	return ebitenrenderer.New(ebitenrenderer.Options{Scale: cfg.WindowScale, Debug: debug})
}

// applyBindings installs key overrides from the config. Unknown action
// names are logged and skipped.
func applyBindings(b map[string]string) {
	for name, code := range b {
		action, ok := input.ActionByName(name)
		if !ok {
			logger.Log.WithField("action", name).Warn("unknown action in key bindings")
			continue
		}
		input.SetSingleBinding(action, code)
	}
}
