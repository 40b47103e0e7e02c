package sim

import (
	"math/rand"

	"github.com/wilark1207/terminal-rain-thunder/constant"
)

// RainGlyphs is the fixed symbol set drops are drawn with
var RainGlyphs = []rune{'|', '.', '`'}

// Raindrop is a single falling drop. Col is fixed for its lifetime; Row
// advances by Speed each frame until it leaves the bottom of the screen.
type Raindrop struct {
	Col   int
	Row   float64
	Speed float64
	Glyph rune
}

// newRaindrop spawns a drop at the top of the screen with a random column,
// speed and glyph. maxSpeed varies with thunderstorm intensity.
func newRaindrop(cols int, maxSpeed float64, rng *rand.Rand) Raindrop {
	if cols < 1 {
		cols = 1
	}
	return Raindrop{
		Col:   rng.Intn(cols),
		Row:   0,
		Speed: constant.MinDropSpeed + rng.Float64()*(maxSpeed-constant.MinDropSpeed),
		Glyph: RainGlyphs[rng.Intn(len(RainGlyphs))],
	}
}
