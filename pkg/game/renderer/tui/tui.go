// Package tui renders the game in a terminal with tcell, drawing the
// 240x240 screen as half-block characters.
package tui

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"phantomslayer/pkg/engine/input"
	"phantomslayer/pkg/engine/logger"
	"phantomslayer/pkg/engine/terminal"
	"phantomslayer/pkg/game/gameplay"
	"phantomslayer/pkg/game/renderer"
	"phantomslayer/pkg/game/state"
)

// Loop timing
const (
	tickInterval = 20 * time.Millisecond
	maxFrameTime = 100 * time.Millisecond
)

// halfBlock paints the top pixel in the foreground and the bottom one in
// the background.
const halfBlock = '▀'

// colourOf converts a palette entry to a true-colour terminal colour;
// tcell downgrades it on terminals with fewer colours.
func colourOf(c renderer.Colour) tcell.Color {
	rgba := renderer.RGBA(c)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	screen tcell.Screen
	raster *renderer.Raster
	keys   *keyState

	closeOnce sync.Once
}

// New creates a new TUI renderer on the real terminal
func New() *TUIRenderer {
	return &TUIRenderer{
		raster: renderer.NewRaster(),
		keys:   newKeyState(),
	}
}

// NewWithScreen creates a renderer over an existing screen, such as a
// tcell simulation screen.
func NewWithScreen(s tcell.Screen) *TUIRenderer {
	t := New()
	t.screen = s
	return t
}

// Init opens the terminal screen
func (t *TUIRenderer) Init() error {
	if t.screen == nil {
		if !terminal.IsInteractive() {
			return errors.New("stdin and stdout must be a terminal")
		}
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		t.screen = s
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

// Close restores the terminal
func (t *TUIRenderer) Close() {
	t.closeOnce.Do(func() {
		if t.screen != nil {
			t.screen.Fini()
		}
	})
}

// Run reads key events on a goroutine and runs the game and drawing on
// the ticker until the player quits.
func (t *TUIRenderer) Run(g *state.Game) error {
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	w, h := t.screen.Size()
	logger.Log.WithFields(logrus.Fields{"cols": w, "rows": h}).Info("terminal opened")

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !t.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			if dt > maxFrameTime {
				dt = maxFrameTime
			}
			last = now

			frame := t.keys.frame(now)
			if frame.HasIntent(input.ActionQuit) {
				return nil
			}
			gameplay.Update(g, frame, dt)
			t.Draw(g)
		}
	}
}

// handleEvent returns false when the loop should stop.
func (t *TUIRenderer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		t.keys.press(keyCode(ev), time.Now())
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// Draw renders the game into the raster and copies it to the terminal.
func (t *TUIRenderer) Draw(g *state.Game) {
	renderer.DrawGame(t.raster, g)
	t.paint()
	t.screen.Show()
}

// area returns the square pixel area, in terminal cells, that the screen
// is scaled into: cols wide and rows = cols/2 tall, centred.
func (t *TUIRenderer) area() (left, top, cols, rows int) {
	w, h := t.screen.Size()
	cols = w
	if 2*h < cols {
		cols = 2 * h
	}
	cols -= cols % 2
	rows = cols / 2
	return (w - cols) / 2, (h - rows) / 2, cols, rows
}

// paint samples the raster into half-block cells and overlays the text.
func (t *TUIRenderer) paint() {
	t.screen.Clear()
	left, top, cols, rows := t.area()
	if cols <= 0 {
		return
	}

	sample := func(vx, vy int) tcell.Color {
		px := vx * renderer.ScreenWidth / cols
		py := vy * renderer.ScreenHeight / (2 * rows)
		return colourOf(t.raster.At(px, py))
	}

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			style := tcell.StyleDefault.
				Foreground(sample(cx, 2*cy)).
				Background(sample(cx, 2*cy+1))
			t.screen.SetContent(left+cx, top+cy, halfBlock, nil, style)
		}
	}

	for _, run := range t.raster.Texts {
		runes := []rune(run.S)
		col := int(run.X) * cols / renderer.ScreenWidth
		switch run.Align {
		case renderer.AlignCentre:
			col -= len(runes) / 2
		case renderer.AlignRight:
			col -= len(runes)
		}
		row := int(run.Y) * rows / renderer.ScreenHeight
		style := tcell.StyleDefault.Foreground(colourOf(run.Col)).Background(tcell.ColorBlack)
		for i, r := range runes {
			x := col + i
			if x < 0 || x >= cols {
				continue
			}
			t.screen.SetContent(left+x, top+row, r, nil, style)
		}
	}
}
