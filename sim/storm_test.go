package sim

import (
	"math/rand"
	"testing"
	"time"

	"github.com/wilark1207/terminal-rain-thunder/constant"
)

// TestSpawnRainBounds spawns many batches and checks every drop starts at
// the top with in-range column, speed, and glyph
func TestSpawnRainBounds(t *testing.T) {
	const rows, cols = 24, 80
	s := NewStorm(rand.New(rand.NewSource(42)))

	for frame := 0; frame < 100; frame++ {
		s.SpawnRain(rows, cols, true)
	}
	if len(s.Drops) == 0 {
		t.Fatal("no drops spawned in 100 storm frames")
	}

	glyphs := map[rune]bool{'|': true, '.': true, '`': true}
	for i, d := range s.Drops {
		if d.Row != 0 {
			t.Errorf("drop %d: spawned at row %v, want 0", i, d.Row)
		}
		if d.Col < 0 || d.Col >= cols {
			t.Errorf("drop %d: column %d outside [0, %d)", i, d.Col, cols)
		}
		if d.Speed < constant.MinDropSpeed || d.Speed > constant.MaxDropSpeedStorm {
			t.Errorf("drop %d: speed %v outside [%v, %v]",
				i, d.Speed, constant.MinDropSpeed, constant.MaxDropSpeedStorm)
		}
		if !glyphs[d.Glyph] {
			t.Errorf("drop %d: unexpected glyph %q", i, d.Glyph)
		}
	}
}

// TestAdvanceRain verifies each survivor moved by exactly its speed and that
// no survivor sits at or below the bottom row
func TestAdvanceRain(t *testing.T) {
	const rows = 10
	s := NewStorm(rand.New(rand.NewSource(1)))
	s.Drops = []Raindrop{
		{Col: 0, Row: 0, Speed: 0.5, Glyph: '|'},
		{Col: 1, Row: 8.7, Speed: 0.4, Glyph: '.'},
		{Col: 2, Row: 9.2, Speed: 1.0, Glyph: '`'}, // falls off
		{Col: 3, Row: 4.0, Speed: 0.3, Glyph: '|'},
	}

	before := make(map[int]Raindrop, len(s.Drops))
	for _, d := range s.Drops {
		before[d.Col] = d
	}

	s.AdvanceRain(rows)

	if len(s.Drops) != 3 {
		t.Fatalf("expected 3 survivors, got %d", len(s.Drops))
	}
	seen := map[int]bool{}
	for _, d := range s.Drops {
		prev, ok := before[d.Col]
		if !ok || seen[d.Col] {
			t.Fatalf("unexpected or duplicated survivor in column %d", d.Col)
		}
		seen[d.Col] = true
		if d.Row != prev.Row+prev.Speed {
			t.Errorf("column %d: row %v, want %v", d.Col, d.Row, prev.Row+prev.Speed)
		}
		if int(d.Row) >= rows {
			t.Errorf("column %d: survivor at row %v past bottom %d", d.Col, d.Row, rows)
		}
	}
	if seen[2] {
		t.Error("drop that crossed the bottom row survived compaction")
	}
}

// TestMaybeSpawnBoltPlacement forces spawns and checks the cap and the
// middle-half / top-fifth placement bias
func TestMaybeSpawnBoltPlacement(t *testing.T) {
	const rows, cols = 30, 100
	s := NewStorm(rand.New(rand.NewSource(3)))
	now := time.Now()

	spawned := 0
	for i := 0; i < 100000 && spawned < constant.MaxBolts; i++ {
		if s.MaybeSpawnBolt(rows, cols, now) {
			spawned++
		}
	}
	if spawned != constant.MaxBolts {
		t.Fatalf("spawned %d bolts, want %d", spawned, constant.MaxBolts)
	}

	// Cap holds no matter how often the gate is rolled
	for i := 0; i < 10000; i++ {
		if s.MaybeSpawnBolt(rows, cols, now) {
			t.Fatal("spawned past the bolt cap")
		}
	}

	for i, b := range s.Bolts {
		seg := b.Segments()[0]
		if seg.Col < cols/4 || seg.Col >= cols/4+cols/2 {
			t.Errorf("bolt %d: column %d outside middle half", i, seg.Col)
		}
		if seg.Row < 0 || seg.Row >= rows/5 {
			t.Errorf("bolt %d: row %d outside top fifth", i, seg.Row)
		}
	}
}

// TestUpdateBoltsRetires verifies a bolt is removed the first update after
// all its segments expire, and survives until then
func TestUpdateBoltsRetires(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(9))
	s := NewStorm(rng)
	s.Bolts = append(s.Bolts, NewBolt(0, 40, 20, 80, now, rng))
	s.Bolts[0].growing = false

	s.UpdateBolts(now.Add(constant.SegmentLifespan))
	if len(s.Bolts) != 1 {
		t.Fatal("bolt retired while its segment was still within lifespan")
	}

	s.UpdateBolts(now.Add(constant.SegmentLifespan + time.Millisecond))
	if len(s.Bolts) != 0 {
		t.Fatal("bolt not retired after all segments expired")
	}
}

// TestClear drops every entity at once, as a resize does
func TestClear(t *testing.T) {
	now := time.Now()
	rng := rand.New(rand.NewSource(5))
	s := NewStorm(rng)
	s.Drops = append(s.Drops, Raindrop{Col: 1, Row: 2, Speed: 0.5, Glyph: '|'})
	s.Bolts = append(s.Bolts, NewBolt(0, 10, 20, 80, now, rng))

	s.Clear()
	if len(s.Drops) != 0 || len(s.Bolts) != 0 {
		t.Errorf("clear left %d drops and %d bolts", len(s.Drops), len(s.Bolts))
	}
}
