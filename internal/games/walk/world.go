package walk

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/poemwalk/internal/config"
	"github.com/vovakirdan/poemwalk/internal/core"
)

// World is everything that changes while walking. The update loop owns it;
// the renderer and the platform only read it.
type World struct {
	Player        Player
	Interactables []Interactable
	Particles     []Particle
	Camera        Camera
	Dialogue      Dialogue

	Discovered int   // interactables found so far
	Order      []int // poem line indices in discovery order
	Chapter    int   // derived each tick, never authoritative
	Nearest    int   // index into Interactables, -1 when none in range

	Ticks     int
	Started   bool
	Paused    bool
	Completed bool

	completion core.Timer
	rng        *rand.Rand
	cues       []core.Cue
}

func newWorld(cfg config.VariantConfig, seed int64) *World {
	w := &World{rng: rand.New(rand.NewSource(seed))}
	w.reset(cfg)
	return w
}

// reset returns the world to its initial pose. Started is left alone so a
// restart keeps walking without the start overlay.
func (w *World) reset(cfg config.VariantConfig) {
	w.Player = newPlayer(cfg.Player)
	w.Player.Pos = playerBounds(cfg).Clamp(w.Player.Pos)
	w.Interactables = newInteractables(cfg.Catalog)
	w.Particles = nil
	w.Camera = Camera{Pos: cameraTarget(&w.Player, cfg)}
	w.Dialogue.Reset()
	w.Discovered = 0
	w.Order = nil
	w.Chapter = 0
	w.Nearest = -1
	w.Ticks = 0
	w.Paused = false
	w.Completed = false
	w.completion.Cancel()
}

// Total is the number of lines to find. A catalog may place fewer
// objects than the poem has lines; the walk ends when all of them are read.
func (w *World) Total() int {
	return len(w.Interactables)
}

// CompletionPending reports whether the completion screen is scheduled.
func (w *World) CompletionPending() bool {
	return w.completion.Armed()
}

func (w *World) emit(c core.Cue) {
	w.cues = append(w.cues, c)
}

// interact handles one interact edge. Each edge drives exactly one
// transition of the dialogue state machine.
func (w *World) interact(cfg config.VariantConfig) {
	d := &w.Dialogue
	switch {
	case d.Typing:
		d.Skip()
	case d.AwaitingAdvance():
		d.Close()
		w.emit(core.CueInteract)
		if w.Discovered >= w.Total() && !w.Completed {
			w.completion.Schedule(time.Duration(cfg.Interaction.CompletionDelayMS) * time.Millisecond)
		}
	case w.Nearest >= 0:
		w.discover(w.Nearest, cfg)
	}
}

// discover reveals the line held by interactable i.
func (w *World) discover(i int, cfg config.VariantConfig) {
	obj := &w.Interactables[i]
	if obj.Discovered {
		return
	}
	obj.Discovered = true
	w.Discovered++
	w.Order = append(w.Order, obj.Line)
	w.Nearest = -1

	w.Dialogue.Show(cfg.Interaction.DialoguePrefix + cfg.Poem.Lines[obj.Line])
	w.emit(core.CueDiscovery)

	fx := cfg.Effects
	w.Camera.Shake = fx.Shake
	w.Camera.Flash = fx.Flash

	color := core.ColorSky
	if w.Chapter >= 2 {
		color = core.ColorGold
	}
	origin := core.V(obj.Pos.X, obj.Pos.Y-10)
	w.Particles = spawnBurst(w.Particles, w.rng, origin, fx.BurstCount, color)
	w.Particles = spawnRing(w.Particles, origin, fx.RingCount)
}

// step runs one tick of simulation after lifecycle handling.
func (w *World) step(in core.InputFrame, cfg config.VariantConfig, chapters *config.ChapterManager, scale float64) {
	w.Ticks++

	if w.completion.Advance(scale) {
		w.complete(cfg)
	}

	// The world freezes while reading and after the last line.
	if !w.Dialogue.Open && !w.Completed {
		if w.Player.move(in, cfg, playerBounds(cfg), scale) {
			w.emit(core.CueStep)
		}
		w.Nearest = nearestIndex(w.Interactables, w.Player.Pos, cfg.Interaction.Radius, cfg.Interaction.Metric)
	} else {
		w.Player.Vel = core.Vec{}
	}

	if in.Has(core.ActionInteract) && !w.Completed {
		w.interact(cfg)
	}

	w.Chapter = chapters.Chapter(w.Discovered, w.Player.Pos.X)

	w.stepParticles(cfg, scale)
	w.Camera.follow(cameraTarget(&w.Player, cfg), cfg.Effects, cameraBounds(cfg), scale, w.rng)

	for n := w.Dialogue.advance(scale, cfg.Interaction.TypeTicks); n > 0; n-- {
		w.emit(core.CueVoice)
	}
}

func (w *World) stepParticles(cfg config.VariantConfig, scale float64) {
	fx := cfg.Effects
	if w.Chapter >= 1 && w.rng.Float64() < fx.AmbientChance*scale {
		color := core.ColorSky
		if w.Chapter >= 3 {
			color = core.ColorGold
		}
		view := core.V(cfg.View.Width, cfg.View.Height)
		w.Particles = append(w.Particles, ambientParticle(w.rng, view, w.Camera.Pos, color))
	}
	w.Particles = stepParticles(w.Particles, fx.LifeDecay, scale)
}

// complete shows the completion screen.
func (w *World) complete(cfg config.VariantConfig) {
	w.Completed = true
	w.emit(core.CueSparkle)
	center := core.V(w.Camera.Pos.X+cfg.View.Width/2, w.Camera.Pos.Y+cfg.View.Height/2)
	w.Particles = spawnFinale(w.Particles, w.rng, center, cfg.Effects.FinaleCount)
}
