package devtools

import (
	"fmt"
	"io"

	"github.com/gookit/color"

	"phantomslayer/pkg/engine/terminal"
	"phantomslayer/pkg/engine/world"
)

var (
	styleWall  = color.Style{color.FgBlue, color.BgBlue}
	styleClear = color.Style{color.FgYellow, color.OpBold}
	styleLabel = color.Style{color.FgGray}
)

// PrintLayout writes layout id to w, two characters per square so the maze
// keeps its shape in a terminal. Colour is used only when useColour is set.
func PrintLayout(w io.Writer, id int, useColour bool) error {
	grid, err := world.LoadLayout(id)
	if err != nil {
		return err
	}

	label := fmt.Sprintf("layout %d of %d", id, world.NumberOfLayouts())
	if useColour {
		label = styleLabel.Sprint(label)
	}
	if _, err := fmt.Fprintln(w, label); err != nil {
		return err
	}

	for y := 0; y < world.Size; y++ {
		line := ""
		for x := 0; x < world.Size; x++ {
			sq := "##"
			style := styleWall
			if grid.IsClear(x, y) {
				sq = ". "
				style = styleClear
			}
			if useColour {
				sq = style.Sprint(sq)
			}
			line += sq
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// PrintLayoutToTerminal prints a layout on stdout, in colour when stdout is
// a terminal wide enough for it.
func PrintLayoutToTerminal(w io.Writer, id int) error {
	useColour := terminal.StdoutIsTerminal() && terminal.FitsMap(2*world.Size, world.Size+1)
	return PrintLayout(w, id, useColour)
}
