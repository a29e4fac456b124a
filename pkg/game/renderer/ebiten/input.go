package ebiten

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "phantomslayer/pkg/engine/input"
)

// keyNames covers the keys whose ebiten names differ from the binding codes.
var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowUp:      "arrow_up",
	ebiten.KeyArrowDown:    "arrow_down",
	ebiten.KeyArrowLeft:    "arrow_left",
	ebiten.KeyArrowRight:   "arrow_right",
	ebiten.KeySpace:        "space",
	ebiten.KeyBracketLeft:  "[",
	ebiten.KeyBracketRight: "]",
	ebiten.KeySlash:        "?",
	ebiten.KeyBackspace:    "backspace",
	ebiten.KeyEscape:       "escape",
	ebiten.KeyEnter:        "enter",
}

// keyCode converts an ebiten key to its binding code.
func keyCode(k ebiten.Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	name := strings.ToLower(k.String())
	return strings.TrimPrefix(name, "digit")
}

// standard gamepad buttons and their binding codes
var padButtons = []struct {
	button ebiten.StandardGamepadButton
	code   string
}{
	{ebiten.StandardGamepadButtonLeftTop, "gamepad_dpad_up"},
	{ebiten.StandardGamepadButtonLeftBottom, "gamepad_dpad_down"},
	{ebiten.StandardGamepadButtonLeftLeft, "gamepad_dpad_left"},
	{ebiten.StandardGamepadButtonLeftRight, "gamepad_dpad_right"},
	{ebiten.StandardGamepadButtonRightBottom, "gamepad_a"},
	{ebiten.StandardGamepadButtonRightRight, "gamepad_b"},
	{ebiten.StandardGamepadButtonRightLeft, "gamepad_x"},
	{ebiten.StandardGamepadButtonRightTop, "gamepad_y"},
	{ebiten.StandardGamepadButtonCenterRight, "gamepad_start"},
}

// readInput samples the keyboard and gamepads into this tick's Frame.
func (e *EbitenRenderer) readInput() engineinput.Frame {
	e.heldKeys = inpututil.AppendPressedKeys(e.heldKeys[:0])
	e.newKeys = inpututil.AppendJustPressedKeys(e.newKeys[:0])

	held := make([]string, 0, len(e.heldKeys)+2)
	pressed := make([]string, 0, len(e.newKeys)+2)
	for _, k := range e.heldKeys {
		held = append(held, keyCode(k))
	}
	for _, k := range e.newKeys {
		pressed = append(pressed, keyCode(k))
	}

	e.pads = ebiten.AppendGamepadIDs(e.pads[:0])
	for _, id := range e.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, pb := range padButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, pb.button) {
				held = append(held, pb.code)
			}
			if inpututil.IsStandardGamepadButtonJustPressed(id, pb.button) {
				pressed = append(pressed, pb.code)
			}
		}
	}

	buttons, intents := engineinput.Collect(held, pressed)
	return e.tracker.Next(buttons, intents, len(pressed) > 0)
}
