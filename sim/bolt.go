package sim

import (
	"math/rand"
	"time"

	"github.com/wilark1207/terminal-rain-thunder/constant"
)

// FadeGlyphs is the brightness sequence a segment walks through as it ages,
// youngest first
var FadeGlyphs = []rune{'#', '+', '*'}

// Segment is one glyph-bearing point along a bolt's path. It is immutable
// after creation; its apparent brightness is derived from Birth each frame.
type Segment struct {
	Row, Col int
	Birth    time.Time
}

// Bolt is a single lightning strike. It grows segment by segment from its
// spawn point toward the bottom of the screen, occasionally widening into
// branches and throwing off one-shot forks, then fades out per segment.
type Bolt struct {
	targetLen  int
	growing    bool
	lastGrowth time.Time
	maxRow     int
	maxCol     int
	trunkLen   int
	segs       []Segment
}

// NewBolt creates a bolt with one initial segment at the spawn point. The
// trunk length target is drawn uniformly between half the screen height and
// two rows short of the bottom.
func NewBolt(startRow, startCol, maxRows, maxCols int, now time.Time, rng *rand.Rand) *Bolt {
	minLen := maxRows / 2
	if minLen < 2 {
		minLen = 2
	}
	maxLen := maxRows - 2
	if maxLen < minLen {
		maxLen = minLen + 1
	}
	b := &Bolt{
		targetLen:  minLen + rng.Intn(maxLen-minLen+1),
		growing:    true,
		lastGrowth: now,
		maxRow:     maxRows,
		maxCol:     maxCols,
		trunkLen:   1,
		segs:       make([]Segment, 0, 64),
	}
	b.segs = append(b.segs, Segment{Row: startRow, Col: startCol, Birth: now})
	return b
}

// Update runs one growth tick if the bolt is still growing and enough time
// has passed, then reports liveness. A bolt is alive while at least one
// segment is younger than the segment lifespan; the caller removes dead
// bolts from the store.
func (b *Bolt) Update(now time.Time, rng *rand.Rand) bool {
	if b.growing && now.Sub(b.lastGrowth) >= constant.GrowthDelay {
		b.lastGrowth = now
		b.growTick(now, rng)
	}

	for i := range b.segs {
		if now.Sub(b.segs[i].Birth) <= constant.SegmentLifespan {
			return true
		}
	}
	return false
}

// growTick extends the bolt by one step. Growth is gated on the total
// segment count against the trunk target; a branching tick may add up to
// MaxBranches extra segments and an independent fork may add one more, so
// the final tick can overshoot the target before the bolt freezes.
func (b *Bolt) growTick(now time.Time, rng *rand.Rand) {
	added := false
	last := b.segs[len(b.segs)-1]

	if len(b.segs) < b.targetLen && last.Row < b.maxRow-1 {
		branches := 1
		if rng.Float64() < constant.BranchChance {
			branches = 1 + rng.Intn(constant.MaxBranches+1)
		}

		col := last.Col
		primaryCol := col
		for i := 0; i < branches; i++ {
			next := clamp(col+rng.Intn(5)-2, 0, b.maxCol-1)
			row := last.Row + 1
			if row >= b.maxRow {
				row = b.maxRow - 1
			}
			b.segs = append(b.segs, Segment{Row: row, Col: next, Birth: now})
			if i == 0 {
				primaryCol = next
				b.trunkLen++
			}
			col = next
			added = true
		}

		if rng.Float64() < constant.ForkChance {
			off := rng.Intn(2*constant.ForkSpread+1) - constant.ForkSpread
			if off == 0 {
				off = 1
				if rng.Intn(2) == 0 {
					off = -1
				}
			}
			forkCol := clamp(last.Col+off, 0, b.maxCol-1)
			forkRow := last.Row + 1
			if forkRow >= b.maxRow {
				forkRow = b.maxRow - 1
			}
			// A fork landing on the primary path would just repaint it
			if forkCol != primaryCol {
				b.segs = append(b.segs, Segment{Row: forkRow, Col: forkCol, Birth: now})
				added = true
			}
		}
	}

	if !added || len(b.segs) >= b.targetLen || last.Row >= b.maxRow-1 {
		b.growing = false
	}
}

// Segments exposes the segment slice for rendering. Callers must not mutate it.
func (b *Bolt) Segments() []Segment {
	return b.segs
}

// TargetLen returns the fixed trunk growth budget drawn at creation
func (b *Bolt) TargetLen() int {
	return b.targetLen
}

// TrunkLen returns how many segments the primary growth path has produced
func (b *Bolt) TrunkLen() int {
	return b.trunkLen
}

// Growing reports whether the bolt is still extending
func (b *Bolt) Growing() bool {
	return b.growing
}

// FadeGlyph maps a segment age to the glyph it should be drawn with. The
// second return is false once the segment has outlived the fade sequence
// and should be skipped entirely.
func FadeGlyph(age time.Duration) (rune, bool) {
	if age > constant.SegmentLifespan {
		return 0, false
	}
	norm := age.Seconds() / constant.SegmentLifespan.Seconds()
	switch {
	case norm < 0.33:
		return FadeGlyphs[0], true
	case norm < 0.66:
		return FadeGlyphs[1], true
	default:
		return FadeGlyphs[2], true
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
