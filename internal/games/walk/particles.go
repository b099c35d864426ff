package walk

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/poemwalk/internal/core"
)

// Particle is one spark. Life runs from 1.0 (or less) down to 0.
type Particle struct {
	Pos   core.Vec
	Vel   core.Vec
	Life  float64
	Color core.Color
	Size  float64
}

// spawnBurst scatters n particles upward from origin.
func spawnBurst(ps []Particle, rng *rand.Rand, origin core.Vec, n int, color core.Color) []Particle {
	for i := 0; i < n; i++ {
		ps = append(ps, Particle{
			Pos:   core.V(origin.X+(rng.Float64()-0.5)*10, origin.Y+(rng.Float64()-0.5)*10),
			Vel:   core.V((rng.Float64()-0.5)*3, -1-rng.Float64()*3),
			Life:  1.0,
			Color: color,
			Size:  2 + rng.Float64()*3,
		})
	}
	return ps
}

// spawnRing sends n particles outward at even angles.
func spawnRing(ps []Particle, origin core.Vec, n int) []Particle {
	if n <= 0 {
		return ps
	}
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := float64(i) * step
		ps = append(ps, Particle{
			Pos:   origin,
			Vel:   core.V(math.Cos(a)*2, math.Sin(a)*2),
			Life:  0.8,
			Color: core.ColorWhite,
			Size:  2,
		})
	}
	return ps
}

// spawnFinale explodes n gold particles in every direction.
func spawnFinale(ps []Particle, rng *rand.Rand, origin core.Vec, n int) []Particle {
	for i := 0; i < n; i++ {
		ps = append(ps, Particle{
			Pos:   origin,
			Vel:   core.V((rng.Float64()-0.5)*5, (rng.Float64()-0.5)*5),
			Life:  1.0,
			Color: core.ColorGold,
			Size:  2 + rng.Float64()*4,
		})
	}
	return ps
}

// ambientParticle is a slow drifting mote somewhere in the view.
func ambientParticle(rng *rand.Rand, view core.Vec, cam core.Vec, color core.Color) Particle {
	return Particle{
		Pos:   core.V(cam.X+rng.Float64()*view.X, cam.Y+rng.Float64()*view.Y*0.78),
		Vel:   core.V((rng.Float64()-0.5)*0.3, -0.3-rng.Float64()*0.5),
		Life:  1.0,
		Color: color,
		Size:  1 + rng.Float64(),
	}
}

// stepParticles moves every particle, ages it and drops the dead ones
// in the same pass. Order is preserved.
func stepParticles(ps []Particle, decay, scale float64) []Particle {
	live := ps[:0]
	for _, p := range ps {
		p.Pos = p.Pos.Add(p.Vel.Scale(scale))
		p.Life -= decay * scale
		if p.Life <= 0 {
			continue
		}
		live = append(live, p)
	}
	// Clear the tail so dropped particles don't linger in the backing array.
	for i := len(live); i < len(ps); i++ {
		ps[i] = Particle{}
	}
	return live
}
