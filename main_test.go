package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"phantomslayer/pkg/engine/input"
	"phantomslayer/pkg/engine/logger"
)

func TestApplyBindings(t *testing.T) {
	defer input.ResetBindings()

	applyBindings(map[string]string{
		"turn_left": "z",
		"no such":   "x",
	})

	if got := input.ActionFor("z"); got != input.ActionTurnLeft {
		t.Errorf("ActionFor(z) = %v, want %v", got, input.ActionTurnLeft)
	}
	if got := input.ActionFor("a"); got != input.ActionNone {
		t.Errorf("ActionFor(a) = %v, want old binding removed", got)
	}
	if got := input.ActionFor("arrow_left"); got != input.ActionTurnLeft {
		t.Errorf("ActionFor(arrow_left) = %v, want reserved binding kept", got)
	}
	if got := input.ActionFor("x"); got != input.ActionNone {
		t.Errorf("ActionFor(x) = %v, want unknown action ignored", got)
	}
}

func TestPlay_PrintMapExitCodes(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "game.log")
	args, cmd := os.Args, flag.CommandLine
	t.Cleanup(func() {
		os.Args, flag.CommandLine = args, cmd
		logger.Log.SetOutput(os.Stderr)
	})

	tests := []struct {
		layout string
		want   int
	}{
		{"0", 0},
		{"99", 1},
	}
	for _, tt := range tests {
		flag.CommandLine = flag.NewFlagSet("phantomslayer", flag.ContinueOnError)
		os.Args = []string{"phantomslayer", "-log", logPath, "-print-map", tt.layout}
		if got := play(); got != tt.want {
			t.Errorf("play(-print-map %s) = %d, want %d", tt.layout, got, tt.want)
		}
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("log file: %v", err)
	}
}
