package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone renders a Recipe sample by sample.
type tone struct {
	recipe   Recipe
	rate     beep.SampleRate
	phase    float64
	position int
	duration int
}

// NewTone creates a finite streamer that plays r once.
func NewTone(r Recipe, rate beep.SampleRate) beep.Streamer {
	return &tone{
		recipe:   r,
		rate:     rate,
		duration: rate.N(r.Duration),
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		t := time.Duration(float64(o.position) / float64(o.rate) * float64(time.Second))
		val := waveAt(o.recipe.Wave, o.phase) * o.recipe.Gain.At(t)

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.recipe.Freq.At(t) / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// waveAt returns the unit-amplitude waveform value at phase in [0, 1).
func waveAt(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// newVolume wraps s with a linear gain.
// math.Log2(0) is -Inf, so zero volume means silent.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setVolume(v, vol)
	return v
}

func setVolume(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(vol)
	v.Silent = false
}
