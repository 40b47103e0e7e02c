// Command terminal-rain-thunder renders an animated weather scene on the
// terminal: falling rain with an optional thunderstorm of branching
// lightning bolts. Press 't' to toggle the storm, 'q' or ESC to quit.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/wilark1207/terminal-rain-thunder/audio"
	"github.com/wilark1207/terminal-rain-thunder/engine"
	"github.com/wilark1207/terminal-rain-thunder/render"
)

var (
	rainColorFlag      = pflag.StringP("rain-color", "r", "cyan", "rain color: black, red, green, yellow, blue, magenta, cyan, white")
	lightningColorFlag = pflag.StringP("lightning-color", "l", "yellow", "lightning color, same names as --rain-color")
	muteFlag           = pflag.Bool("mute", false, "disable thunder audio")
	logFileFlag        = pflag.String("log-file", "", "write debug logs to this file")
)

func main() {
	pflag.Parse()

	logger := newLogger(*logFileFlag)

	// The one fatal precondition: a real interactive terminal. Nothing has
	// touched terminal modes yet, so there is nothing to roll back.
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: this program requires an interactive terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.HideCursor()

	// Restore the terminal before reporting a crash, so the trace is readable
	defer func() {
		p := recover()
		screen.Fini()
		if p != nil {
			fmt.Fprintf(os.Stderr, "crashed: %v\n%s\n", p, debug.Stack())
			os.Exit(1)
		}
	}()

	thunder, err := audio.NewThunder(*muteFlag)
	if err != nil {
		// Non-fatal, the scene runs silent
		logger.WithError(err).Warn("audio unavailable")
	}
	defer thunder.Close()

	renderer := render.New(screen,
		render.ColorFromName(*rainColorFlag, render.DefaultRainColor),
		render.ColorFromName(*lightningColorFlag, render.DefaultLightningColor))

	game := engine.New(screen, renderer, engine.Config{
		Logger:      logger,
		OnBoltSpawn: thunder.Rumble,
	})
	game.Run()
}

// newLogger returns a discard logger, or a debug file logger when path is
// set. The animation owns the terminal, so logs never go to stdout/stderr
// while it runs.
func newLogger(path string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if path == "" {
		return logger
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: cannot open log file: %v\n", err)
		return logger
	}
	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	return logger
}
