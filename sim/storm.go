// Package sim owns the weather simulation state: the raindrop and lightning
// bolt stores and their per-frame transitions. It knows nothing about the
// terminal; the engine drives it with the current bounds and clock reading.
package sim

import (
	"math/rand"
	"time"

	"github.com/wilark1207/terminal-rain-thunder/constant"
)

// Storm holds every live simulation entity. All methods are called from the
// frame loop only; the store is not safe for concurrent use.
type Storm struct {
	Drops []Raindrop
	Bolts []*Bolt

	rng *rand.Rand
}

// NewStorm creates an empty store drawing randomness from rng
func NewStorm(rng *rand.Rand) *Storm {
	return &Storm{
		Drops: make([]Raindrop, 0, 256),
		Bolts: make([]*Bolt, 0, constant.MaxBolts),
		rng:   rng,
	}
}

// SpawnRain rolls the per-frame spawn gate and, when it fires, adds a batch
// of 1..maxNew drops at the top of the screen. Storm mode raises both the
// gate probability and the batch cap, and lets drops fall faster.
func (s *Storm) SpawnRain(rows, cols int, thunder bool) {
	chance := constant.RainChance
	maxNew := cols / constant.RainBatchDivisor
	maxSpeed := constant.MaxDropSpeed
	if thunder {
		chance = constant.RainChanceStorm
		maxNew = cols / constant.RainBatchDivisorStorm
		maxSpeed = constant.MaxDropSpeedStorm
	}

	if s.rng.Float64() >= chance {
		return
	}
	n := 1
	if maxNew > 1 {
		n += s.rng.Intn(maxNew)
	}
	for i := 0; i < n; i++ {
		s.Drops = append(s.Drops, newRaindrop(cols, maxSpeed, s.rng))
	}
}

// AdvanceRain moves every drop down by its speed and compacts out the ones
// that fell past the bottom row. Survivor order may change; identity does not.
func (s *Storm) AdvanceRain(rows int) {
	w := 0
	for i := range s.Drops {
		s.Drops[i].Row += s.Drops[i].Speed
		if int(s.Drops[i].Row) < rows {
			s.Drops[w] = s.Drops[i]
			w++
		}
	}
	s.Drops = s.Drops[:w]
}

// MaybeSpawnBolt rolls the lightning gate and, when it fires and the bolt
// cap allows, creates a bolt in the top fifth of the screen with its column
// biased toward the middle half. Returns whether a bolt was spawned.
func (s *Storm) MaybeSpawnBolt(rows, cols int, now time.Time) bool {
	if len(s.Bolts) >= constant.MaxBolts || s.rng.Float64() >= constant.LightningChance {
		return false
	}

	span := cols / 2
	if span < 1 {
		span = 1
	}
	col := cols/4 + s.rng.Intn(span)

	rowSpan := rows
	if rows > 5 {
		rowSpan = rows / 5
	}
	if rowSpan < 1 {
		rowSpan = 1
	}
	row := s.rng.Intn(rowSpan)

	s.Bolts = append(s.Bolts, NewBolt(row, col, rows, cols, now, s.rng))
	return true
}

// UpdateBolts steps every bolt and compacts out the ones whose segments have
// all expired, dropping their segment storage with them.
func (s *Storm) UpdateBolts(now time.Time) {
	w := 0
	for _, b := range s.Bolts {
		if b.Update(now, s.rng) {
			s.Bolts[w] = b
			w++
		}
	}
	for i := w; i < len(s.Bolts); i++ {
		s.Bolts[i] = nil
	}
	s.Bolts = s.Bolts[:w]
}

// Clear drops every entity, used when a resize invalidates all coordinates
func (s *Storm) Clear() {
	s.Drops = s.Drops[:0]
	for i := range s.Bolts {
		s.Bolts[i] = nil
	}
	s.Bolts = s.Bolts[:0]
}
