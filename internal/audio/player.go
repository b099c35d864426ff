// Package audio plays the walk's cues as procedural oscillator tones.
//
// Every cue becomes an independent streamer on one mixer behind a master
// volume. When no output device is available the player goes silent and
// the game carries on.
package audio

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/poemwalk/internal/core"
)

// output is the device a Player writes to.
type output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

// speakerOutput is the default device.
type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}
func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }

type playerState int

const (
	stateIdle playerState = iota
	stateReady
	stateSilent
)

// Player turns cues into sound. Safe for concurrent use.
type Player struct {
	mu     sync.Mutex
	cfg    Config
	out    output
	logger *log.Logger
	rng    *rand.Rand
	state  playerState
	mixer  *beep.Mixer
	master *effects.Volume
	volume float64
	muted  bool
}

// NewPlayer creates a player for the local speaker. The device is opened
// lazily by Init or the first Play.
func NewPlayer(cfg Config) *Player {
	return newPlayer(cfg, speakerOutput{})
}

// NewSilentPlayer creates a player that never opens a device.
func NewSilentPlayer() *Player {
	cfg := DefaultConfig()
	cfg.Enabled = false
	return newPlayer(cfg, nil)
}

func newPlayer(cfg Config, out output) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	p := &Player{
		cfg: cfg,
		out: out,
		logger: log.NewWithOptions(io.Discard, log.Options{
			Prefix: "audio",
		}),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		mixer:  &beep.Mixer{},
		volume: ClampVolume(cfg.MasterVolume),
	}
	if !cfg.Enabled || out == nil {
		p.state = stateSilent
	}
	return p
}

// SetLogger replaces the logger used for device warnings.
func (p *Player) SetLogger(l *log.Logger) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.logger = l
}

// Init opens the output device once. On failure it logs a warning and
// the player stays silent from then on.
func (p *Player) Init() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.initLocked()
}

func (p *Player) initLocked() {
	if p.state != stateIdle {
		return
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := p.out.Init(rate, rate.N(time.Millisecond*100)); err != nil {
		p.logger.Warn("audio unavailable, continuing without sound", "error", err)
		p.state = stateSilent
		return
	}

	p.master = newVolume(p.mixer, p.effectiveVolume())
	p.out.Play(p.master)
	p.state = stateReady
}

// Silent reports whether the player has no working device.
func (p *Player) Silent() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == stateSilent
}

// Play starts one tone per cue. Unknown cues are skipped.
func (p *Player) Play(cues ...core.Cue) {
	if len(cues) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.initLocked()
	if p.state != stateReady {
		return
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	streamers := make([]beep.Streamer, 0, len(cues))
	for _, c := range cues {
		r, ok := RecipeFor(c, p.rng)
		if !ok {
			continue
		}
		streamers = append(streamers, NewTone(r, rate))
	}
	if len(streamers) == 0 {
		return
	}

	p.out.Lock()
	p.mixer.Add(streamers...)
	p.out.Unlock()
}

// Volume returns the master volume in [0, 1].
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// SetVolume sets the master volume, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = ClampVolume(v)
	p.applyLocked()
}

// Muted reports whether output is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// ToggleMute flips mute and returns the new state.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	p.applyLocked()
	return p.muted
}

func (p *Player) effectiveVolume() float64 {
	if p.muted {
		return 0
	}
	return p.volume
}

func (p *Player) applyLocked() {
	if p.master == nil {
		return
	}
	p.out.Lock()
	setVolume(p.master, p.effectiveVolume())
	p.out.Unlock()
}

// Active returns the number of tones still playing.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != stateReady {
		return 0
	}
	p.out.Lock()
	defer p.out.Unlock()
	return p.mixer.Len()
}
