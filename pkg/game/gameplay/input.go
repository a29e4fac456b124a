package gameplay

import (
	"phantomslayer/pkg/engine/input"
	"phantomslayer/pkg/engine/logger"
	"phantomslayer/pkg/game/state"
	"phantomslayer/pkg/game/text"
)

// ProcessIntent handles the meta actions that are not part of the button
// mask. Quit is left to the frontend, which owns the loop.
func ProcessIntent(g *state.Game, intent input.Intent) {
	switch intent.Action {
	case input.ActionChaseMode:
		if !g.State.Playing() {
			return
		}
		g.ChaseMode = !g.ChaseMode
		logMessage(g, "CHASE_MODE", text.OnOff(g.ChaseMode))

	case input.ActionMapMode:
		if !g.State.Playing() {
			return
		}
		g.MapMode = !g.MapMode
		logMessage(g, "MAP_MODE", text.OnOff(g.MapMode))

	case input.ActionDumpMap:
		if OnDumpMap == nil {
			return
		}
		path, err := OnDumpMap(g)
		if err != nil {
			logger.Log.WithError(err).Warn("map dump failed")
			logMessage(g, "MAP_DUMP_FAILED", err)
			return
		}
		logMessage(g, "MAP_DUMPED", path)

	case input.ActionScreenshot:
		if OnScreenshot == nil {
			return
		}
		name, err := OnScreenshot(g)
		if err != nil {
			logger.Log.WithError(err).Warn("screenshot failed")
			return
		}
		logMessage(g, "SCREENSHOT_SAVED", name)
	}
}
