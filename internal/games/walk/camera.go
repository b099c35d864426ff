package walk

import (
	"math/rand"

	"github.com/vovakirdan/poemwalk/internal/config"
	"github.com/vovakirdan/poemwalk/internal/core"
)

// Camera follows the player with easing and carries the screen effects.
type Camera struct {
	Pos         core.Vec
	Shake       float64
	Flash       float64
	ShakeOffset core.Vec // draw offset for this tick, zero when not shaking
	Pulse       float64  // hint pulse phase
}

// cameraTarget centers the view on the player, clamped to the world.
func cameraTarget(p *Player, cfg config.VariantConfig) core.Vec {
	target := core.V(p.Pos.X-cfg.View.Width/2, p.Pos.Y-cfg.View.Height/2)
	return cameraBounds(cfg).Clamp(target)
}

func cameraBounds(cfg config.VariantConfig) core.Bounds {
	return core.Bounds{
		MaxX: max(0, cfg.World.Width-cfg.View.Width),
		MaxY: max(0, cfg.World.Height-cfg.View.Height),
	}
}

// follow eases toward the target and decays the effects.
func (c *Camera) follow(target core.Vec, fx config.EffectsConfig, bounds core.Bounds, scale float64, rng *rand.Rand) {
	k := core.EaseFactor(fx.CameraEase, scale)
	c.Pos = bounds.Clamp(core.V(
		core.Lerp(c.Pos.X, target.X, k),
		core.Lerp(c.Pos.Y, target.Y, k),
	))

	c.Shake = core.Decay(c.Shake, fx.ShakeDecay, scale, fx.ShakeFloor)
	c.Flash = core.Decay(c.Flash, fx.FlashDecay, scale, fx.FlashFloor)
	c.Pulse += fx.PulseSpeed * scale

	if c.Shake > 0 {
		c.ShakeOffset = core.V((rng.Float64()-0.5)*c.Shake, (rng.Float64()-0.5)*c.Shake)
	} else {
		c.ShakeOffset = core.Vec{}
	}
}
