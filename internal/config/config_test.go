package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedVariantsLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	ids := VariantIDs()
	expected := []string{"coast", "corridor", "highlands"}
	if strings.Join(ids, ",") != strings.Join(expected, ",") {
		t.Fatalf("VariantIDs() = %v, expected %v", ids, expected)
	}

	for _, id := range ids {
		cfg, err := Load(id, "")
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", id, err)
		}
		if cfg.ID != id {
			t.Errorf("Load(%q).ID = %q", id, cfg.ID)
		}
		if err := Validate(cfg); err != nil {
			t.Errorf("Validate(%q) = %v", id, err)
		}
		if len(cfg.Poem.Lines) != 19 {
			t.Errorf("%s: poem has %d lines, expected 19", id, len(cfg.Poem.Lines))
		}
		if len(cfg.Catalog) != 19 {
			t.Errorf("%s: catalog has %d entries, expected 19", id, len(cfg.Catalog))
		}
	}
}

func TestEmbeddedHighlandsMatchesHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("highlands", "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	def := DefaultVariant()

	if cfg.World != def.World {
		t.Errorf("World = %+v, expected %+v", cfg.World, def.World)
	}
	if cfg.Player != def.Player {
		t.Errorf("Player = %+v, expected %+v", cfg.Player, def.Player)
	}
	if cfg.Interaction != def.Interaction {
		t.Errorf("Interaction = %+v, expected %+v", cfg.Interaction, def.Interaction)
	}
	if cfg.Effects != def.Effects {
		t.Errorf("Effects = %+v, expected %+v", cfg.Effects, def.Effects)
	}
	for i := range def.Catalog {
		if cfg.Catalog[i] != def.Catalog[i] {
			t.Errorf("Catalog[%d] = %+v, expected %+v", i, cfg.Catalog[i], def.Catalog[i])
		}
	}
	for i := range def.Poem.Lines {
		if cfg.Poem.Lines[i] != def.Poem.Lines[i] {
			t.Errorf("Poem.Lines[%d] = %q, expected %q", i, cfg.Poem.Lines[i], def.Poem.Lines[i])
		}
	}
}

func TestLoadUnknownVariant(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := Load("atlantis", ""); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.yaml")
	data := `
id: tiny
movement: lateral
world: { width: 400, height: 180, band_min: 120, band_max: 140 }
catalog:
  - { x: 100, y: 130, kind: stone, line: 0 }
  - { x: 300, y: 130, kind: light, line: 18 }
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("ignored", path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ID != "tiny" {
		t.Errorf("ID = %q, expected tiny", cfg.ID)
	}
	if !cfg.Lateral() {
		t.Error("expected lateral movement")
	}
	if cfg.Interaction.Metric != MetricHorizontal {
		t.Errorf("Metric = %q, expected %q for lateral variant", cfg.Interaction.Metric, MetricHorizontal)
	}
	if len(cfg.Poem.Lines) != 19 {
		t.Errorf("poem should default to 19 lines, got %d", len(cfg.Poem.Lines))
	}
	if cfg.Effects.Shake != 8 || cfg.Effects.CameraEase != 0.1 {
		t.Errorf("effects not defaulted: %+v", cfg.Effects)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load("x", filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load("x", bad); err == nil {
		t.Error("expected error for malformed yaml")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("world: { width: 100, height: 100 }\ncatalog:\n  - { x: 1, y: 1, line: 99 }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load("x", invalid); err == nil {
		t.Error("expected validation error for out-of-range line")
	}
}

func TestLoadUserOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".poemwalk", "variants")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := "title: My Moor\nworld: { width: 500, height: 500 }\ncatalog:\n  - { x: 50, y: 50, kind: cairn, line: 3 }\n"
	if err := os.WriteFile(filepath.Join(dir, "highlands.yaml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("highlands", "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Title != "My Moor" {
		t.Errorf("Title = %q, expected user override", cfg.Title)
	}
	if cfg.ID != "highlands" {
		t.Errorf("ID = %q, expected highlands", cfg.ID)
	}
}

func TestLoadInvalidUserFileFallsThrough(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".poemwalk", "variants")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := "world: { width: -1, height: 500 }\ncatalog:\n  - { x: 50, y: 50, line: 0 }\n"
	if err := os.WriteFile(filepath.Join(dir, "highlands.yaml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("highlands", "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.World.Width != 800 {
		t.Errorf("World.Width = %g, expected embedded 800", cfg.World.Width)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*VariantConfig)
		wantErr string
	}{
		{"default ok", func(*VariantConfig) {}, ""},
		{"zero width", func(c *VariantConfig) { c.World.Width = 0 }, "world size"},
		{"empty poem", func(c *VariantConfig) { c.Poem.Lines = nil }, "poem has no lines"},
		{"line out of range", func(c *VariantConfig) { c.Catalog[3].Line = 19 }, "out of range"},
		{"negative line", func(c *VariantConfig) { c.Catalog[0].Line = -1 }, "out of range"},
		{"duplicate line", func(c *VariantConfig) { c.Catalog[1].Line = 0 }, "already used"},
		{"outside world", func(c *VariantConfig) { c.Catalog[2].X = 9000 }, "outside world"},
		{"bad metric", func(c *VariantConfig) { c.Interaction.Metric = "manhattan" }, "unknown metric"},
		{"bad movement", func(c *VariantConfig) { c.Movement = "diagonal" }, "unknown movement"},
		{"descending thresholds", func(c *VariantConfig) { c.Chapters.Thresholds = []float64{10, 5} }, "ascending"},
		{"inverted band", func(c *VariantConfig) {
			c.Movement = MovementLateral
			c.World.BandMin, c.World.BandMax = 140, 120
		}, "band_max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultVariant()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSubsetCatalog(t *testing.T) {
	cfg := DefaultVariant()
	cfg.Catalog = cfg.Catalog[:5]
	if err := Validate(cfg); err != nil {
		t.Errorf("subset catalog should validate, got %v", err)
	}
}

func TestLayerVisibleIn(t *testing.T) {
	tests := []struct {
		layer   LayerConfig
		chapter int
		want    bool
	}{
		{LayerConfig{}, 0, true},
		{LayerConfig{}, 3, true},
		{LayerConfig{MinChapter: 1}, 0, false},
		{LayerConfig{MinChapter: 1}, 1, true},
		{LayerConfig{MaxChapter: 1}, 1, true},
		{LayerConfig{MaxChapter: 1}, 2, false},
		{LayerConfig{MinChapter: 1, MaxChapter: 2}, 3, false},
	}

	for _, tt := range tests {
		if got := tt.layer.VisibleIn(tt.chapter); got != tt.want {
			t.Errorf("%+v.VisibleIn(%d) = %v, expected %v", tt.layer, tt.chapter, got, tt.want)
		}
	}
}
