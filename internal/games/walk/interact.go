package walk

import (
	"math"

	"github.com/vovakirdan/poemwalk/internal/config"
	"github.com/vovakirdan/poemwalk/internal/core"
)

// Interactable is a fixed object holding one poem line.
type Interactable struct {
	Pos        core.Vec
	Kind       string
	Line       int
	Discovered bool
}

func newInteractables(catalog []config.InteractableEntry) []Interactable {
	items := make([]Interactable, len(catalog))
	for i, e := range catalog {
		items[i] = Interactable{Pos: core.V(e.X, e.Y), Kind: e.Kind, Line: e.Line}
	}
	return items
}

// distance measures how far the player is from an interactable.
func distance(metric string, player, obj core.Vec) float64 {
	if metric == config.MetricHorizontal {
		return math.Abs(player.X - obj.X)
	}
	return core.Dist(player, obj)
}

// nearestIndex returns the closest undiscovered interactable strictly
// inside radius, or -1. Ties keep the earlier catalog entry.
func nearestIndex(items []Interactable, player core.Vec, radius float64, metric string) int {
	best := -1
	bestDist := radius
	for i := range items {
		if items[i].Discovered {
			continue
		}
		d := distance(metric, player, items[i].Pos)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
