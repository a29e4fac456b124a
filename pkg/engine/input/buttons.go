package input

import "strings"

// Buttons is the set of logical game buttons held during one tick.
type Buttons uint16

const (
	ButtonForward Buttons = 1 << iota
	ButtonBackward
	ButtonTurnLeft
	ButtonTurnRight
	ButtonFire
	ButtonTeleport
	ButtonRadarUp
	ButtonRadarDown

	ButtonNone Buttons = 0
)

var buttonActions = map[Action]Buttons{
	ActionForward:   ButtonForward,
	ActionBackward:  ButtonBackward,
	ActionTurnLeft:  ButtonTurnLeft,
	ActionTurnRight: ButtonTurnRight,
	ActionFire:      ButtonFire,
	ActionTeleport:  ButtonTeleport,
	ActionRadarUp:   ButtonRadarUp,
	ActionRadarDown: ButtonRadarDown,
}

// ButtonFor returns the button that carries an action, or ButtonNone for
// actions that are only ever delivered as intents.
func ButtonFor(a Action) Buttons {
	return buttonActions[a]
}

// Has reports whether every button in o is held.
func (b Buttons) Has(o Buttons) bool {
	return o != 0 && b&o == o
}

func (b Buttons) String() string {
	if b == 0 {
		return "-"
	}
	var names []string
	for a := ActionForward; a <= ActionRadarDown; a++ {
		if b.Has(ButtonFor(a)) {
			names = append(names, ActionName(a))
		}
	}
	return strings.Join(names, "+")
}

// Frame is everything the game needs to know about input for one tick.
type Frame struct {
	Held     Buttons  // down now
	Pressed  Buttons  // down now, up last tick
	Released Buttons  // up now, down last tick
	Intents  []Intent // meta actions triggered this tick
	AnyKey   bool     // any key at all went down this tick
}

// Tracker turns per-tick held state into edges. The zero value is ready.
type Tracker struct {
	prev Buttons
}

// Next produces the Frame for the current tick.
func (t *Tracker) Next(held Buttons, intents []Intent, anyKey bool) Frame {
	f := Frame{
		Held:     held,
		Pressed:  held &^ t.prev,
		Released: t.prev &^ held,
		Intents:  intents,
		AnyKey:   anyKey || held&^t.prev != 0,
	}
	t.prev = held
	return f
}

// Reset forgets the previous state, so nothing counts as released.
func (t *Tracker) Reset() {
	t.prev = ButtonNone
}

// HasIntent reports whether the frame carries action a.
func (f Frame) HasIntent(a Action) bool {
	for _, in := range f.Intents {
		if in.Action == a {
			return true
		}
	}
	return false
}

// Collect maps a set of held codes and a list of freshly pressed codes into
// a Buttons mask and meta intents. Backends call this once per tick.
func Collect(held []string, pressed []string) (Buttons, []Intent) {
	var b Buttons
	for _, code := range held {
		act := MapToIntent(DebouncedInput{Code: strings.ToLower(code)}).Action
		b |= ButtonFor(act)
	}
	var intents []Intent
	for _, code := range pressed {
		in := MapToIntent(DebouncedInput{Code: strings.ToLower(code)})
		if in.Action != ActionNone && ButtonFor(in.Action) == ButtonNone {
			intents = append(intents, in)
		}
	}
	return b, intents
}
