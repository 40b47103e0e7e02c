// Package audio plays the thunder rumble accompanying a lightning strike.
// Audio is strictly optional: speaker init failure leaves a silent player
// and the scene runs unchanged.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	rumbleFreq    = 52.0
	rumbleLength  = 900 * time.Millisecond
	rumbleAttack  = 30 * time.Millisecond
	rumbleRelease = 600 * time.Millisecond
	rumbleVolume  = 0.6
)

// Thunder owns the speaker. A disabled or failed Thunder swallows every call.
type Thunder struct {
	enabled bool
}

// NewThunder initializes the speaker unless muted. Returns the player and
// any init error; the player is usable (as a no-op) either way.
func NewThunder(mute bool) (*Thunder, error) {
	if mute {
		return &Thunder{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return &Thunder{}, err
	}
	return &Thunder{enabled: true}, nil
}

// Rumble plays one low rolling burst, non-blocking
func (t *Thunder) Rumble() {
	if !t.enabled {
		return
	}
	osc := &rumbleOsc{freq: rumbleFreq, rate: sampleRate}
	shaped := newEnvelope(osc, rumbleLength, rumbleAttack, rumbleRelease, sampleRate)
	speaker.Play(&effects.Volume{
		Streamer: shaped,
		Base:     2,
		Volume:   math.Log2(rumbleVolume),
	})
}

// Close releases the speaker
func (t *Thunder) Close() {
	if t.enabled {
		speaker.Close()
	}
}

// rumbleOsc generates a low sine with a noise layer on top, which reads as
// a distant rolling thunder rather than a clean organ tone
type rumbleOsc struct {
	freq     float64
	rate     beep.SampleRate
	phase    float64
	position int
}

func (o *rumbleOsc) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := 0.7*math.Sin(2*math.Pi*o.phase) + 0.3*(rand.Float64()*2-1)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *rumbleOsc) Err() error { return nil }

// envelope applies attack/release shaping and ends the stream after the
// configured duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
