package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads a variant configuration.
// Search order: customPath -> ~/.poemwalk/variants/<id>.yaml -> ./variants/<id>.yaml -> embedded default
func Load(id, customPath string) (VariantConfig, error) {
	if id == "" {
		id = DefaultVariantID
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return VariantConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return VariantConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if cfg.ID == "" {
			cfg.ID = id
		}
		if err := Validate(cfg); err != nil {
			return VariantConfig{}, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := id + ".yaml"

	// Try user variants directory
	if userPath := userConfigPath(filename); userPath != "" {
		if cfg, ok := tryFile(userPath, id); ok {
			return cfg, nil
		}
	}

	// Try local variants directory
	if cfg, ok := tryFile(filepath.Join("variants", filename), id); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	data, err := GetDefaultYAML(id)
	if err != nil {
		return VariantConfig{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil || Validate(cfg) != nil {
		if id == DefaultVariantID {
			return DefaultVariant(), nil // Fallback to hardcoded if embed fails
		}
		return VariantConfig{}, fmt.Errorf("config: embedded variant %q is broken", id)
	}
	return cfg, nil
}

// MustLoad loads an embedded variant, falling back to the hardcoded default.
func MustLoad(id string) VariantConfig {
	cfg, err := Load(id, "")
	if err != nil {
		return DefaultVariant()
	}
	return cfg
}

// Parse decodes variant YAML and fills in everything the file leaves out.
func Parse(data []byte) (VariantConfig, error) {
	var cfg VariantConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

// ParsePoem decodes a standalone poem file.
func ParsePoem(data []byte) (PoemConfig, error) {
	var p PoemConfig
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, err
	}
	return p, nil
}

func tryFile(path, id string) (VariantConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return VariantConfig{}, false
	}
	cfg, err := Parse(data)
	if err != nil {
		return VariantConfig{}, false
	}
	if cfg.ID == "" {
		cfg.ID = id
	}
	if Validate(cfg) != nil {
		return VariantConfig{}, false
	}
	return cfg, true
}

// applyDefaults fills zero fields with the stock values.
func applyDefaults(cfg *VariantConfig) {
	if len(cfg.Poem.Lines) == 0 {
		if p, err := ParsePoem(defaultPoemYAML); err == nil && len(p.Lines) > 0 {
			cfg.Poem = p
		} else {
			cfg.Poem = DefaultPoem()
		}
	}
	if cfg.Movement == "" {
		cfg.Movement = MovementPlanar
	}
	if cfg.View.Width <= 0 {
		cfg.View.Width = 320
	}
	if cfg.View.Height <= 0 {
		cfg.View.Height = 180
	}

	p := &cfg.Player
	if p.Width <= 0 {
		p.Width = 12
	}
	if p.Height <= 0 {
		p.Height = 18
	}
	if p.Speed <= 0 {
		p.Speed = 1.5
	}
	if p.Facing == "" {
		if cfg.Lateral() {
			p.Facing = "right"
		} else {
			p.Facing = "down"
		}
	}
	if p.AnimTicks <= 0 {
		p.AnimTicks = 8
	}
	if p.StepFrames <= 0 {
		p.StepFrames = 15
	}

	in := &cfg.Interaction
	if in.Radius <= 0 {
		in.Radius = 30
	}
	if in.Metric == "" {
		if cfg.Lateral() {
			in.Metric = MetricHorizontal
		} else {
			in.Metric = MetricEuclidean
		}
	}
	if in.DialoguePrefix == "" {
		in.DialoguePrefix = "* "
	}
	if in.TypeTicks <= 0 {
		in.TypeTicks = 2
	}
	if in.CompletionDelayMS <= 0 {
		in.CompletionDelayMS = 1000
	}

	ch := &cfg.Chapters
	if ch.Progression == "" {
		ch.Progression = ProgressionDiscoveries
	}
	if len(ch.Thresholds) == 0 {
		ch.Thresholds = []float64{5, 10, 15}
	}
	if len(ch.Names) == 0 {
		ch.Names = []string{"Darkness", "The Light", "The Gods", "Delight"}
	}

	// Zero effect fields take the stock value.
	d := DefaultEffects()
	e := &cfg.Effects
	setF := func(v *float64, def float64) {
		if *v <= 0 {
			*v = def
		}
	}
	setI := func(v *int, def int) {
		if *v <= 0 {
			*v = def
		}
	}
	setF(&e.Shake, d.Shake)
	setF(&e.ShakeDecay, d.ShakeDecay)
	setF(&e.ShakeFloor, d.ShakeFloor)
	setF(&e.Flash, d.Flash)
	setF(&e.FlashDecay, d.FlashDecay)
	setF(&e.FlashFloor, d.FlashFloor)
	setF(&e.CameraEase, d.CameraEase)
	setI(&e.BurstCount, d.BurstCount)
	setI(&e.RingCount, d.RingCount)
	setI(&e.FinaleCount, d.FinaleCount)
	setF(&e.LifeDecay, d.LifeDecay)
	setF(&e.AmbientChance, d.AmbientChance)
	setF(&e.PulseSpeed, d.PulseSpeed)
}

// userConfigPath returns the path to a user variant file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".poemwalk", "variants", filename)
}
