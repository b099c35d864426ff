package config

import (
	"errors"
	"fmt"
)

// Validate checks that a variant can be played.
// Every catalog entry must point at a distinct poem line and sit inside the world.
func Validate(cfg VariantConfig) error {
	var errs []error

	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", cfg.World.Width, cfg.World.Height))
	}
	if cfg.View.Width <= 0 || cfg.View.Height <= 0 {
		errs = append(errs, fmt.Errorf("view size must be positive, got %gx%g", cfg.View.Width, cfg.View.Height))
	}
	if len(cfg.Poem.Lines) == 0 {
		errs = append(errs, errors.New("poem has no lines"))
	}
	if len(cfg.Catalog) == 0 {
		errs = append(errs, errors.New("catalog is empty"))
	}

	switch cfg.Movement {
	case MovementPlanar:
	case MovementLateral:
		if cfg.World.BandMax < cfg.World.BandMin {
			errs = append(errs, fmt.Errorf("band_max %g is above band_min %g", cfg.World.BandMax, cfg.World.BandMin))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown movement %q", cfg.Movement))
	}

	switch cfg.Interaction.Metric {
	case MetricEuclidean, MetricHorizontal:
	default:
		errs = append(errs, fmt.Errorf("unknown metric %q", cfg.Interaction.Metric))
	}

	switch cfg.Chapters.Progression {
	case ProgressionDiscoveries, ProgressionDistance:
	default:
		errs = append(errs, fmt.Errorf("unknown progression %q", cfg.Chapters.Progression))
	}
	for i := 1; i < len(cfg.Chapters.Thresholds); i++ {
		if cfg.Chapters.Thresholds[i] < cfg.Chapters.Thresholds[i-1] {
			errs = append(errs, errors.New("chapter thresholds must be ascending"))
			break
		}
	}

	seen := make(map[int]int, len(cfg.Catalog))
	for i, e := range cfg.Catalog {
		if e.Line < 0 || e.Line >= len(cfg.Poem.Lines) {
			errs = append(errs, fmt.Errorf("catalog[%d]: line %d out of range [0,%d)", i, e.Line, len(cfg.Poem.Lines)))
			continue
		}
		if j, dup := seen[e.Line]; dup {
			errs = append(errs, fmt.Errorf("catalog[%d]: line %d already used by catalog[%d]", i, e.Line, j))
			continue
		}
		seen[e.Line] = i
		if e.X < 0 || e.X > cfg.World.Width || e.Y < 0 || e.Y > cfg.World.Height {
			errs = append(errs, fmt.Errorf("catalog[%d]: (%g,%g) outside world", i, e.X, e.Y))
		}
	}

	return errors.Join(errs...)
}
