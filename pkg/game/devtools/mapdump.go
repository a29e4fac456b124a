// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atotto/clipboard"

	"phantomslayer/pkg/engine/input"
	"phantomslayer/pkg/engine/logger"
	"phantomslayer/pkg/engine/world"
	"phantomslayer/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// facingSymbols draws the player as an arrow.
var facingSymbols = [...]rune{
	world.North: '^',
	world.East:  '>',
	world.South: 'v',
	world.West:  '<',
}

// squareSymbol returns the dump symbol for (x, y) with the player, Phantoms,
// teleporter and start square overlaid on the maze.
func squareSymbol(g *state.Game, x, y int) rune {
	pt := world.Point{X: x, Y: y}
	switch {
	case pt == g.Player.Pos() && g.Player.Facing.IsValid():
		return facingSymbols[g.Player.Facing]
	case g.Phantoms != nil:
		if slot, ok := g.Phantoms.At(pt); ok {
			return rune('0' + slot)
		}
	}
	switch {
	case pt == g.Teleporter:
		return 'T'
	case pt == g.Start:
		return 'S'
	case g.Grid.IsClear(x, y):
		return world.SymbolClear
	default:
		return world.SymbolWall
	}
}

// DumpMap renders the current level, its entities and the session counters
// as plain text.
func DumpMap(g *state.Game) string {
	var b strings.Builder

	fmt.Fprintln(&b, "=== MAP DUMP ===")
	fmt.Fprintln(&b, "")
	fmt.Fprintln(&b, "--- Metadata ---")
	fmt.Fprintf(&b, "layout: %d\n", g.MapID)
	fmt.Fprintf(&b, "level: %d\n", g.Level)
	fmt.Fprintf(&b, "state: %v\n", g.State)
	fmt.Fprintf(&b, "score: %d high: %d kills: %d\n", g.Score, g.HighScore, g.Kills)
	fmt.Fprintf(&b, "level_kills: %d level_hits: %d phantoms: %d\n", g.LevelKills, g.LevelHits, g.PhantomCount)
	fmt.Fprintf(&b, "phantom_speed: %v\n", g.PhantomSpeed)
	fmt.Fprintf(&b, "radar_range: %d\n", g.RadarRange)
	fmt.Fprintf(&b, "player: %v facing: %v\n", g.Player.Pos(), g.Player.Facing)
	fmt.Fprintf(&b, "start: %v teleporter: %v\n", g.Start, g.Teleporter)
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- Legend ---")
	fmt.Fprintln(&b, ". = clear  # = wall  ^>v< = player  0-2 = phantom slot  T = teleporter  S = start")
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- Map (x across, y down) ---")
	for y := 0; y < world.Size; y++ {
		for x := 0; x < world.Size; x++ {
			b.WriteRune(squareSymbol(g, x, y))
		}
		b.WriteByte('\n')
	}
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- Phantoms ---")
	onBoard := 0
	if g.Phantoms != nil {
		for _, slot := range g.Phantoms.OnBoard() {
			p := g.Phantoms.Slot(slot)
			pos, _ := p.Position()
			fmt.Fprintf(&b, "  slot: %d at: %v hp: %d/%d facing: %v backtrack: %d\n",
				slot, pos, p.HP, p.HPMax, p.Facing, p.Backtrack)
			onBoard++
		}
	}
	if onBoard == 0 {
		fmt.Fprintln(&b, "  (none)")
	}
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- Key bindings ---")
	byAction := input.GetBindingsByAction()
	actions := make([]input.Action, 0, len(byAction))
	for a := range byAction {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	for _, a := range actions {
		fmt.Fprintf(&b, "  %s: %s\n", input.ActionName(a), strings.Join(byAction[a], ", "))
	}
	fmt.Fprintln(&b, "")
	fmt.Fprintln(&b, "=== END MAP DUMP ===")
	return b.String()
}

// DumpMapToFile writes DumpMap to map.txt in the working directory and
// copies it to the clipboard when one is available. It returns the file's
// absolute path.
func DumpMapToFile(g *state.Game) (string, error) {
	if g.Grid == nil {
		return "", fmt.Errorf("no grid")
	}
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	dump := DumpMap(g)
	if err := os.WriteFile(absPath, []byte(dump), 0o644); err != nil {
		return "", fmt.Errorf("write map dump: %w", err)
	}

	if clipboard.Unsupported {
		return absPath, nil
	}
	if err := clipboard.WriteAll(dump); err != nil {
		logger.Log.WithError(err).Warn("could not copy map dump to clipboard")
	}
	return absPath, nil
}
