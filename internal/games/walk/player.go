package walk

import (
	"github.com/vovakirdan/poemwalk/internal/config"
	"github.com/vovakirdan/poemwalk/internal/core"
)

// Facing is the direction the player sprite looks.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

// ParseFacing maps a config string to a Facing. Unknown strings face down.
func ParseFacing(s string) Facing {
	switch s {
	case "up":
		return FacingUp
	case "left":
		return FacingLeft
	case "right":
		return FacingRight
	default:
		return FacingDown
	}
}

// diagonal is the per-axis factor for two-axis movement.
const diagonal = 0.707

// Player is the walker. Pos is the top-left corner of its bounding box.
type Player struct {
	Pos       core.Vec
	Vel       core.Vec
	Facing    Facing
	W, H      float64
	Frame     int     // walk cycle frame, 0 or 1
	AnimTimer float64 // reference ticks since the last frame flip
	StepTimer int     // frame flips since the last footstep
}

func newPlayer(cfg config.PlayerConfig) Player {
	return Player{
		Pos:    core.V(cfg.SpawnX, cfg.SpawnY),
		Facing: ParseFacing(cfg.Facing),
		W:      cfg.Width,
		H:      cfg.Height,
	}
}

// Center returns the middle of the bounding box.
func (p *Player) Center() core.Vec {
	return core.V(p.Pos.X+p.W/2, p.Pos.Y+p.H/2)
}

// Moving reports whether the player moved on the last step.
func (p *Player) Moving() bool {
	return !p.Vel.IsZero()
}

// move integrates one tick of held input and reports whether a footstep
// cue is due. Later directions win when opposite keys are both held.
func (p *Player) move(in core.InputFrame, cfg config.VariantConfig, bounds core.Bounds, scale float64) bool {
	speed := cfg.Player.Speed
	lateral := cfg.Lateral()
	p.Vel = core.Vec{}

	if in.IsHeld(core.ActionRight) {
		p.Vel.X = speed
		p.Facing = FacingRight
	}
	if in.IsHeld(core.ActionLeft) {
		p.Vel.X = -speed
		p.Facing = FacingLeft
	}
	if in.IsHeld(core.ActionUp) {
		p.Vel.Y = -speed
		if !lateral {
			p.Facing = FacingUp
		}
	}
	if in.IsHeld(core.ActionDown) {
		p.Vel.Y = speed
		if !lateral {
			p.Facing = FacingDown
		}
	}

	if p.Vel.X != 0 && p.Vel.Y != 0 {
		p.Vel = p.Vel.Scale(diagonal)
	}

	p.Pos = bounds.Clamp(p.Pos.Add(p.Vel.Scale(scale)))

	if !p.Moving() {
		p.Frame = 0
		p.StepTimer = 0
		return false
	}

	p.AnimTimer += scale
	if p.AnimTimer <= float64(cfg.Player.AnimTicks) {
		return false
	}
	p.Frame = (p.Frame + 1) % 2
	p.AnimTimer = 0
	p.StepTimer++
	if p.StepTimer > cfg.Player.StepFrames {
		p.StepTimer = 0
		return true
	}
	return false
}

// playerBounds is where the player's top-left corner may go.
func playerBounds(cfg config.VariantConfig) core.Bounds {
	maxX := cfg.World.Width - cfg.Player.Width
	if maxX < 0 {
		maxX = 0
	}
	if cfg.Lateral() {
		return core.Bounds{MinX: 0, MinY: cfg.World.BandMin, MaxX: maxX, MaxY: cfg.World.BandMax}
	}
	maxY := cfg.World.Height - cfg.Player.Height
	if maxY < 0 {
		maxY = 0
	}
	return core.Bounds{MinX: 0, MinY: 0, MaxX: maxX, MaxY: maxY}
}
