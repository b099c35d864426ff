package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/poemwalk/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// Ramp says how a parameter travels from the previous point to this one.
type Ramp int

const (
	RampSet    Ramp = iota // jump to Value at At
	RampLinear             // straight line to Value at At
	RampExp                // exponential curve to Value at At
)

// Point is one automation event on a parameter.
type Point struct {
	At    time.Duration
	Value float64
	Ramp  Ramp
}

// Envelope is a parameter timeline. The first point sets the start value.
type Envelope []Point

// At evaluates the envelope at offset t.
func (e Envelope) At(t time.Duration) float64 {
	if len(e) == 0 {
		return 0
	}
	prevT, prevV := e[0].At, e[0].Value
	if t <= prevT {
		return prevV
	}
	for _, p := range e[1:] {
		if t < p.At {
			frac := float64(t-prevT) / float64(p.At-prevT)
			switch p.Ramp {
			case RampLinear:
				return prevV + (p.Value-prevV)*frac
			case RampExp:
				// exponential ramps need both ends on the same side of zero
				if prevV > 0 && p.Value > 0 {
					return prevV * math.Pow(p.Value/prevV, frac)
				}
				return prevV + (p.Value-prevV)*frac
			default:
				return prevV
			}
		}
		prevT, prevV = p.At, p.Value
	}
	return prevV
}

// Recipe fully describes one procedural sound.
type Recipe struct {
	Wave     Wave
	Freq     Envelope // Hz
	Gain     Envelope // linear amplitude before the master volume
	Duration time.Duration
}

func set(v float64) Point { return Point{Value: v} }

func setAt(at time.Duration, v float64) Point { return Point{At: at, Value: v} }

func linTo(at time.Duration, v float64) Point { return Point{At: at, Value: v, Ramp: RampLinear} }

func expTo(at time.Duration, v float64) Point { return Point{At: at, Value: v, Ramp: RampExp} }

// RecipeFor returns the sound for a cue. rng supplies the pitch jitter for
// voice and step; nil means no jitter.
func RecipeFor(c core.Cue, rng *rand.Rand) (Recipe, bool) {
	jitter := func(span float64) float64 {
		if rng == nil {
			return 0
		}
		return rng.Float64() * span
	}

	switch c {
	case core.CueVoice:
		d := 50 * time.Millisecond
		return Recipe{
			Wave:     WaveSquare,
			Freq:     Envelope{set(200 + jitter(80))},
			Gain:     Envelope{set(0.08), expTo(d, 0.001)},
			Duration: d,
		}, true
	case core.CueAmbient:
		return Recipe{
			Wave:     WaveSine,
			Freq:     Envelope{set(110), linTo(3*time.Second, 105)},
			Gain:     Envelope{set(0.03), linTo(4*time.Second, 0)},
			Duration: 4 * time.Second,
		}, true
	case core.CueSparkle:
		d := 600 * time.Millisecond
		return Recipe{
			Wave:     WaveTriangle,
			Freq:     Envelope{set(800), linTo(d, 1400)},
			Gain:     Envelope{set(0.04), expTo(d, 0.001)},
			Duration: d,
		}, true
	case core.CueInteract:
		d := 150 * time.Millisecond
		return Recipe{
			Wave:     WaveSine,
			Freq:     Envelope{set(440), setAt(50*time.Millisecond, 880)},
			Gain:     Envelope{set(0.1), expTo(d, 0.001)},
			Duration: d,
		}, true
	case core.CueDiscovery:
		d := 400 * time.Millisecond
		return Recipe{
			Wave: WaveSine,
			// C5, E5, G5
			Freq: Envelope{
				set(523.25),
				setAt(100*time.Millisecond, 659.25),
				setAt(200*time.Millisecond, 783.99),
			},
			Gain:     Envelope{set(0.1), expTo(d, 0.001)},
			Duration: d,
		}, true
	case core.CueStep:
		d := 80 * time.Millisecond
		return Recipe{
			Wave:     WaveSine,
			Freq:     Envelope{set(80 + jitter(20))},
			Gain:     Envelope{set(0.02), expTo(d, 0.001)},
			Duration: d,
		}, true
	}
	return Recipe{}, false
}
