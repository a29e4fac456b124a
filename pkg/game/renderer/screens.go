package renderer

import (
	"fmt"
	"strings"

	"phantomslayer/pkg/game/gameplay"
	"phantomslayer/pkg/game/state"
	"phantomslayer/pkg/game/text"
)

// DrawGame draws the whole screen for the game's current state.
func DrawGame(c Canvas, g *state.Game) {
	c.Clear(ColourBackground)

	switch g.State {
	case state.OfferHelp:
		drawTitle(c)
		drawLines(c, text.Get("OFFER_HELP"), ScreenWidth/2, 110, AlignCentre, ColourText)

	case state.ShowHelp:
		drawLines(c, text.HelpPage(g.HelpPage), 8, 16, AlignLeft, ColourText)
		c.Text(fmt.Sprintf("%d/%d", g.HelpPage+1, text.HelpPages), ScreenWidth-8, ScreenHeight-14, AlignRight, ColourTextDim)

	case state.StartCount:
		drawTitle(c)
		c.Text(text.Get("LEVEL_START", g.Level), ScreenWidth/2, 100, AlignCentre, ColourText)
		c.Text(fmt.Sprintf("%d", g.CountDown), ScreenWidth/2, 130, AlignCentre, ColourTitle)

	case state.InPlay, state.ZapPhantom:
		if g.MapMode {
			DrawOverhead(c, g, MapOptions{Phantoms: true, Teleporter: true})
		} else {
			Render(c, PlayerView(g))
			drawZap(c, g.Laser)
			if g.Laser.ShowReticule {
				drawReticule(c)
			}
		}
		drawHUD(c, g)

	case state.Teleporting:
		if g.TeleFlash {
			c.FillRect(0, ViewTop, ScreenWidth, ViewBottom-ViewTop, ColourFlash)
		} else {
			Render(c, PlayerView(g))
		}
		drawHUD(c, g)

	case state.ShowTempMap:
		DrawOverhead(c, g, MapOptions{Phantoms: g.MapMode, Teleporter: g.ShowTeleOnMap})
		drawHUD(c, g)

	case state.PlayerDead, state.PlayerDeadNextGame:
		c.Text(text.Get("PLAYER_DEAD"), ScreenWidth/2, 90, AlignCentre, ColourPhantom)
		c.Text(fmt.Sprintf("%s %d", text.Get("SCORE"), g.Score), ScreenWidth/2, 115, AlignCentre, ColourText)
		c.Text(fmt.Sprintf("%s %d", text.Get("HIGH"), g.HighScore), ScreenWidth/2, 128, AlignCentre, ColourText)
		if g.State == state.PlayerDeadNextGame {
			c.Text(text.Get("ANY_KEY"), ScreenWidth/2, 170, AlignCentre, ColourTextDim)
		}
	}
}

func drawTitle(c Canvas) {
	c.Text(text.Get("TITLE"), ScreenWidth/2, 50, AlignCentre, ColourTitle)
}

// drawLines writes a multi-line string one LineHeight apart.
func drawLines(c Canvas, s string, x, y float64, align Align, col Colour) {
	for i, line := range strings.Split(s, "\n") {
		if line == "" {
			continue
		}
		c.Text(line, x, y+float64(i*LineHeight), align, col)
	}
}

func drawHUD(c Canvas, g *state.Game) {
	c.Text(fmt.Sprintf("%s %d", text.Get("SCORE"), g.Score), 4, 4, AlignLeft, ColourText)
	c.Text(fmt.Sprintf("%s %d", text.Get("HIGH"), g.HighScore), ScreenWidth-4, 4, AlignRight, ColourText)
	c.Text(fmt.Sprintf("%s %d", text.Get("LEVEL"), g.Level), 4, 18, AlignLeft, ColourText)
	c.Text(fmt.Sprintf("%s %d", text.Get("RADAR"), g.RadarRange), ScreenWidth-4, 18, AlignRight, ColourText)

	drawCharge(c, g.Laser)

	if n := len(g.Messages); n > 0 {
		c.Text(g.Messages[n-1], ScreenWidth/2, ScreenHeight-14, AlignCentre, ColourTextDim)
	}
}

// drawCharge shows the laser state with a bar that fills while recharging.
func drawCharge(c Canvas, l state.Laser) {
	const barX, barY, barW, barH = 4, ViewBottom + 6, 80, 6

	label := text.Get("LASER_READY")
	fill := 1.0
	if !l.CanFire {
		label = text.Get("LASER_CHARGING")
		fill = 0
		if l.Charging {
			fill = float64(l.SinceCharge) / float64(gameplay.LaserRecharge)
		}
	}
	if fill > 1 {
		fill = 1
	}
	c.FillRect(barX, barY, barW, barH, ColourWallEdge)
	if fill > 0 {
		c.FillRect(barX, barY, barW*fill, barH, ColourCharge)
	}
	c.Text(label, barX+barW+6, barY-2, AlignLeft, ColourText)
}

func drawReticule(c Canvas) {
	c.Line(100, 120, 140, 120, ColourReticule)
	c.Line(120, 100, 120, 140, ColourReticule)
}

// drawZap draws the beam for the current animation frame: two streaks from
// the bottom corners that close in on the centre of the view.
func drawZap(c Canvas, l state.Laser) {
	if !l.IsFiring {
		return
	}
	const steps = gameplay.LaserLastFrame + 1
	cx, cy := float64(ScreenWidth/2), float64(ViewTop+ViewBottom)/2
	from := float64(l.ZapFrame) / steps
	to := float64(l.ZapFrame+1) / steps

	for _, sx := range []float64{0, ScreenWidth} {
		sy := float64(ViewBottom)
		x1, y1 := sx+(cx-sx)*from, sy+(cy-sy)*from
		x2, y2 := sx+(cx-sx)*to, sy+(cy-sy)*to
		for w := -1.0; w <= 1; w++ {
			c.Line(x1, y1+w, x2, y2+w, ColourZap)
		}
	}
}
