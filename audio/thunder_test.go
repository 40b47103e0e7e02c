package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// constStreamer emits a constant full-scale sample forever
type constStreamer struct{}

func (constStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i][0] = 1.0
		samples[i][1] = 1.0
	}
	return len(samples), true
}

func (constStreamer) Err() error { return nil }

// TestEnvelopeTerminates verifies the shaped stream ends at the configured
// duration instead of running forever
func TestEnvelopeTerminates(t *testing.T) {
	rate := beep.SampleRate(48000)
	duration := 100 * time.Millisecond
	env := newEnvelope(constStreamer{}, duration, 10*time.Millisecond, 20*time.Millisecond, rate)

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := env.Stream(buf)
		total += n
		if !ok {
			break
		}
		if total > rate.N(duration)+len(buf) {
			t.Fatal("envelope did not terminate")
		}
	}

	if want := rate.N(duration); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

// TestEnvelopeShape verifies attack ramps up from silence and release ramps
// back down to it
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(48000)
	duration := 100 * time.Millisecond
	env := newEnvelope(constStreamer{}, duration, 10*time.Millisecond, 20*time.Millisecond, rate)

	buf := make([][2]float64, rate.N(duration))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d samples, want %d", n, len(buf))
	}

	if buf[0][0] != 0 {
		t.Errorf("attack starts at %v, want 0", buf[0][0])
	}
	mid := rate.N(50 * time.Millisecond)
	if buf[mid][0] != 1.0 {
		t.Errorf("sustain at %v, want 1.0", buf[mid][0])
	}
	if last := buf[len(buf)-1][0]; last > 0.01 {
		t.Errorf("release ends at %v, want ~0", last)
	}
}

// TestMutedThunderIsInert verifies a muted player neither initializes the
// speaker nor panics on use
func TestMutedThunderIsInert(t *testing.T) {
	th, err := NewThunder(true)
	if err != nil {
		t.Fatalf("muted thunder returned error: %v", err)
	}
	th.Rumble()
	th.Close()
}
