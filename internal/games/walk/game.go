// Package walk implements the poem walk: wander a world, find the objects
// that hold the lines of a poem, read them one by one.
//
// One core serves every variant. The variant config decides the world
// bounds, movement, catalog, parallax layers and chapter rule.
package walk

import (
	"time"

	"github.com/vovakirdan/poemwalk/internal/config"
	"github.com/vovakirdan/poemwalk/internal/core"
	"github.com/vovakirdan/poemwalk/internal/registry"
)

func init() {
	for _, id := range config.VariantIDs() {
		registry.Register(id, func() registry.Game {
			return New(config.MustLoad(id))
		})
	}
}

// Game drives one variant.
type Game struct {
	cfg      config.VariantConfig
	chapters *config.ChapterManager
	runtime  core.RuntimeConfig
	world    *World
}

// New creates a game for a variant. Call Reset before stepping.
func New(cfg config.VariantConfig) *Game {
	g := &Game{
		cfg:      cfg,
		chapters: config.NewChapterManager(cfg.Chapters),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the variant ID.
func (g *Game) ID() string {
	return g.cfg.ID
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	if g.cfg.Title == "" {
		return g.cfg.ID
	}
	return g.cfg.Title
}

// Description returns the one-line variant description.
func (g *Game) Description() string {
	return g.cfg.Description
}

// Config returns the variant configuration.
func (g *Game) Config() config.VariantConfig {
	return g.cfg
}

// World exposes the world for read-only use.
func (g *Game) World() *World {
	return g.world
}

// ChapterName returns the display name of the current chapter.
func (g *Game) ChapterName() string {
	return g.chapters.Name(g.world.Chapter)
}

// Reset starts a fresh walk behind the start overlay.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = newWorld(g.cfg, runtime.Seed)
}

// Restart resets the walk without showing the start overlay again.
// A pending completion screen is cancelled.
func (g *Game) Restart() {
	g.world.reset(g.cfg)
}

// Step advances the walk by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	w := g.world
	w.cues = nil

	if !w.Started {
		if in.Has(core.ActionStart) {
			w.Started = true
			w.emit(core.CueAmbient)
		}
		return g.result(false)
	}

	if in.Has(core.ActionRestart) {
		g.Restart()
		return g.result(true)
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !w.Completed {
		w.Paused = !w.Paused
	}
	if w.Paused {
		return g.result(false)
	}

	w.step(in, g.cfg, g.chapters, g.runtime.TickScale())
	return g.result(false)
}

func (g *Game) result(restarted bool) core.StepResult {
	state := g.State()
	state.Restarted = restarted
	return core.StepResult{State: state, Cues: g.world.cues}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	w := g.world
	return core.GameState{
		Score:    w.Discovered,
		Total:    w.Total(),
		Ticks:    w.Ticks,
		Started:  w.Started,
		GameOver: w.Completed,
		Paused:   w.Paused,
		Dialogue: w.Dialogue.Open,
	}
}

// Summary describes a walk for the journal.
type Summary struct {
	Variant  string
	Lines    []int // poem line indices in discovery order
	Found    int
	Total    int
	Duration time.Duration
	Complete bool
}

// Summary returns the walk so far.
func (g *Game) Summary() Summary {
	w := g.world
	tickRate := g.runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.ReferenceTickRate
	}
	return Summary{
		Variant:  g.cfg.ID,
		Lines:    append([]int(nil), w.Order...),
		Found:    w.Discovered,
		Total:    w.Total(),
		Duration: time.Duration(w.Ticks) * time.Second / time.Duration(tickRate),
		Complete: w.Completed,
	}
}

// Poem returns the variant's poem.
func (g *Game) Poem() config.PoemConfig {
	return g.cfg.Poem
}
