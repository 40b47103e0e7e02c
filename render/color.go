package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// DefaultRainColor and DefaultLightningColor are used when a color flag is
// absent or names an unknown color
var (
	DefaultRainColor      = tcell.ColorTeal
	DefaultLightningColor = tcell.ColorOlive
)

// colorNames maps the accepted CLI color names to the base ANSI palette
// entries (tcell names them by their W3C aliases)
var colorNames = map[string]tcell.Color{
	"black":   tcell.ColorBlack,
	"red":     tcell.ColorMaroon,
	"green":   tcell.ColorGreen,
	"yellow":  tcell.ColorOlive,
	"blue":    tcell.ColorNavy,
	"magenta": tcell.ColorPurple,
	"cyan":    tcell.ColorTeal,
	"white":   tcell.ColorSilver,
}

// ColorFromName resolves a case-insensitive color name, falling back to def
// for anything unrecognized
func ColorFromName(name string, def tcell.Color) tcell.Color {
	if c, ok := colorNames[strings.ToLower(name)]; ok {
		return c
	}
	return def
}
