package tui

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"phantomslayer/pkg/engine/input"
)

// holdWindow is how long a key counts as held after its last key event.
// Terminals only report presses (and auto-repeats), so a key is taken as
// released once its repeats stop arriving.
const holdWindow = 300 * time.Millisecond

var keyNames = map[tcell.Key]string{
	tcell.KeyUp:         "arrow_up",
	tcell.KeyDown:       "arrow_down",
	tcell.KeyLeft:       "arrow_left",
	tcell.KeyRight:      "arrow_right",
	tcell.KeyEscape:     "escape",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyEnter:      "enter",
	tcell.KeyF6:         "f6",
	tcell.KeyF7:         "f7",
	tcell.KeyF8:         "f8",
}

// keyCode converts a tcell key event into its binding code.
func keyCode(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			return "space"
		}
		return strings.ToLower(string(ev.Rune()))
	}
	return keyNames[ev.Key()]
}

// keyState rebuilds held/pressed key state from a stream of press events.
type keyState struct {
	lastSeen map[string]time.Time
	pressed  []string
	tracker  input.Tracker
}

func newKeyState() *keyState {
	return &keyState{lastSeen: make(map[string]time.Time)}
}

// press records a key event at time now.
func (k *keyState) press(code string, now time.Time) {
	if code == "" {
		return
	}
	k.lastSeen[code] = now
	k.pressed = append(k.pressed, code)
}

// frame returns the input for the tick at time now and starts a new tick.
// Every key event in the tick counts as a press, so auto-repeat moves the
// player again.
func (k *keyState) frame(now time.Time) input.Frame {
	held := make([]string, 0, len(k.lastSeen))
	for code, seen := range k.lastSeen {
		if now.Sub(seen) > holdWindow {
			delete(k.lastSeen, code)
			continue
		}
		held = append(held, code)
	}

	buttons, intents := input.Collect(held, k.pressed)
	repeated, _ := input.Collect(k.pressed, nil)
	f := k.tracker.Next(buttons, intents, len(k.pressed) > 0)
	f.Pressed |= repeated
	k.pressed = k.pressed[:0]
	return f
}
