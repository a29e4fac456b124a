package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionForward
	ActionBackward
	ActionTurnLeft
	ActionTurnRight

	// Weapons and gadgets
	ActionFire
	ActionTeleport
	ActionRadarUp
	ActionRadarDown

	// Meta / UI
	ActionHelp
	ActionBack
	ActionQuit
	ActionChaseMode // Render from the first Phantom's point of view (F6)
	ActionMapMode   // Overhead map instead of the corridor view (F7)
	ActionDumpMap   // Write the current maze to a file and the clipboard (F8)
	ActionScreenshot
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "gamepad_a").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten and tcell already collapse key repeat for us, so this stays a thin
// copy, but it keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(raw.Code),
	}
}

// defaultBindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var defaultBindings = map[string]Action{
	// Movement (arrows, WASD, Vim)
	"arrow_up":    ActionForward,
	"w":           ActionForward,
	"k":           ActionForward,
	"arrow_down":  ActionBackward,
	"s":           ActionBackward,
	"j":           ActionBackward,
	"arrow_left":  ActionTurnLeft,
	"a":           ActionTurnLeft,
	"h":           ActionTurnLeft,
	"arrow_right": ActionTurnRight,
	"d":           ActionTurnRight,
	"l":           ActionTurnRight,

	"space": ActionFire,
	"t":     ActionTeleport,
	"]":     ActionRadarUp,
	"[":     ActionRadarDown,

	"?":         ActionHelp,
	"backspace": ActionBack,

	"q":      ActionQuit,
	"escape": ActionQuit,

	"f6": ActionChaseMode,
	"f7": ActionMapMode,
	"f8": ActionDumpMap,
	"f9": ActionScreenshot,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":    ActionForward,
	"gamepad_dpad_down":  ActionBackward,
	"gamepad_dpad_left":  ActionTurnLeft,
	"gamepad_dpad_right": ActionTurnRight,
	"gamepad_a":          ActionFire,
	"gamepad_b":          ActionTeleport,
	"gamepad_x":          ActionRadarUp,
	"gamepad_y":          ActionRadarDown,
	"gamepad_start":      ActionHelp,
}

var bindings = copyBindings(defaultBindings)

func copyBindings(src map[string]Action) map[string]Action {
	dst := make(map[string]Action, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// ResetBindings restores the built-in key map.
func ResetBindings() {
	bindings = copyBindings(defaultBindings)
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionFor returns the action bound to a code, or ActionNone.
func ActionFor(code string) Action {
	return bindings[strings.ToLower(code)]
}

var actionNames = map[Action]string{
	ActionForward:    "Forward",
	ActionBackward:   "Backward",
	ActionTurnLeft:   "Turn Left",
	ActionTurnRight:  "Turn Right",
	ActionFire:       "Fire",
	ActionTeleport:   "Teleport",
	ActionRadarUp:    "Radar Up",
	ActionRadarDown:  "Radar Down",
	ActionHelp:       "Help",
	ActionBack:       "Back",
	ActionQuit:       "Quit",
	ActionChaseMode:  "Chase Mode",
	ActionMapMode:    "Map Mode",
	ActionDumpMap:    "Dump Map",
	ActionScreenshot: "Screenshot",
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "None"
}

// ActionByName is the inverse of ActionName. Matching ignores case, spaces
// and underscores so config files can say "turn_left".
func ActionByName(name string) (Action, bool) {
	norm := func(s string) string {
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		return strings.ReplaceAll(s, "_", "")
	}
	want := norm(name)
	for a, n := range actionNames {
		if norm(n) == want {
			return a, true
		}
	}
	return ActionNone, false
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// reserved codes always keep their built-in meaning.
func reserved(code string) bool {
	switch code {
	case "arrow_up", "arrow_down", "arrow_left", "arrow_right", "escape":
		return true
	}
	return false
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Arrow keys and escape cannot be rebound or removed.
func SetSingleBinding(action Action, code string) {
	code = strings.ToLower(code)
	for c, a := range bindings {
		if reserved(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved(code) {
		bindings[code] = action
	}
}
