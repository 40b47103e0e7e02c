// Package render maps simulation state onto the terminal cell grid. It is a
// pure consumer of the storm store: one call per frame erases the buffer,
// paints bolts then rain, and commits a single atomic refresh.
package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/wilark1207/terminal-rain-thunder/constant"
	"github.com/wilark1207/terminal-rain-thunder/sim"
)

// Renderer draws one frame of the weather scene. Styles are fixed at
// construction; when the terminal reports no color support the styles
// degrade to attribute-only monochrome.
type Renderer struct {
	screen    tcell.Screen
	rain      tcell.Style
	rainDim   tcell.Style
	rainBold  tcell.Style
	lightning tcell.Style
}

// New builds a renderer for screen with the two logical color pairs
func New(screen tcell.Screen, rainColor, lightningColor tcell.Color) *Renderer {
	base := tcell.StyleDefault
	rain := base
	lightning := base
	if screen.Colors() > 0 {
		rain = rain.Foreground(rainColor)
		lightning = lightning.Foreground(lightningColor)
	}
	return &Renderer{
		screen:    screen,
		rain:      rain,
		rainDim:   rain.Dim(true),
		rainBold:  rain.Bold(true),
		lightning: lightning.Bold(true),
	}
}

// Draw paints the whole scene and commits it in one Show. Entities outside
// the current bounds are skipped silently.
func (r *Renderer) Draw(rows, cols int, thunder bool, storm *sim.Storm, now time.Time) {
	r.screen.Clear()

	for _, b := range storm.Bolts {
		for _, seg := range b.Segments() {
			glyph, ok := sim.FadeGlyph(now.Sub(seg.Birth))
			if !ok {
				continue
			}
			if seg.Row < 0 || seg.Row >= rows || seg.Col < 0 || seg.Col >= cols {
				continue
			}
			r.screen.SetContent(seg.Col, seg.Row, glyph, nil, r.lightning)
		}
	}

	for _, d := range storm.Drops {
		row := int(d.Row)
		if row < 0 || row >= rows || d.Col < 0 || d.Col >= cols {
			continue
		}
		style := r.rain
		if thunder {
			style = r.rainBold
		} else if d.Speed < constant.DimSpeedThreshold {
			style = r.rainDim
		}
		r.screen.SetContent(d.Col, row, d.Glyph, nil, style)
	}

	r.screen.Show()
}
