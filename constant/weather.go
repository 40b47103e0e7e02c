package constant

import "time"

// Frame Loop Timing
const (
	// FrameInterval is the fixed redraw budget per frame (~66 FPS)
	FrameInterval = 15 * time.Millisecond
)

// Rain Tuning
const (
	// RainChance is the per-frame probability of spawning a drop batch
	RainChance = 0.3

	// RainChanceStorm replaces RainChance while the thunderstorm is active
	RainChanceStorm = 0.5

	// RainBatchDivisor caps a spawn batch at cols/RainBatchDivisor drops
	RainBatchDivisor = 15

	// RainBatchDivisorStorm replaces RainBatchDivisor under the storm
	RainBatchDivisorStorm = 8

	// MinDropSpeed and MaxDropSpeed bound the uniform speed draw, in rows per frame
	MinDropSpeed = 0.3
	MaxDropSpeed = 0.6

	// MaxDropSpeedStorm replaces MaxDropSpeed under the storm
	MaxDropSpeedStorm = 1.0

	// DimSpeedThreshold marks slow drops for dimmed rendering outside the storm
	DimSpeedThreshold = 0.8
)

// Lightning Tuning
const (
	// LightningChance is the per-frame probability of a new bolt under the storm
	LightningChance = 0.005

	// MaxBolts caps the number of simultaneous bolts
	MaxBolts = 3

	// GrowthDelay is the minimum elapsed time between growth ticks of one bolt,
	// decoupling bolt growth speed from the terminal refresh rate
	GrowthDelay = 2 * time.Millisecond

	// BranchChance is the probability a growth tick extends by 2-3 segments
	BranchChance = 0.3

	// MaxBranches is the number of extra segments a branching tick may add
	MaxBranches = 2

	// ForkChance is the independent probability of a one-off side segment
	ForkChance = 0.15

	// ForkSpread bounds a fork's horizontal offset to [-ForkSpread, ForkSpread]
	ForkSpread = 3

	// SegmentLifespan is how long a segment stays visible while fading
	SegmentLifespan = 800 * time.Millisecond
)
