package config

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed defaults/*.yaml
var defaultFS embed.FS

//go:embed defaults/poem.yaml
var defaultPoemYAML []byte

// DefaultVariantID is the variant played when none is named.
const DefaultVariantID = "highlands"

// VariantIDs returns the IDs of the embedded variants, sorted.
func VariantIDs() []string {
	entries, err := defaultFS.ReadDir("defaults")
	if err != nil {
		return []string{DefaultVariantID}
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if name == "poem.yaml" || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".yaml"))
	}
	sort.Strings(ids)
	return ids
}

// GetDefaultYAML returns the embedded YAML for a variant.
func GetDefaultYAML(id string) ([]byte, error) {
	data, err := defaultFS.ReadFile("defaults/" + id + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown variant %q", id)
	}
	return data, nil
}

// DefaultPoem returns the built-in poem.
func DefaultPoem() PoemConfig {
	return PoemConfig{
		Title:  "The Laughing Heart",
		Author: "Charles Bukowski",
		Lines: []string{
			"your life is your life",
			"don't let it be clubbed into dank submission.",
			"be on the watch.",
			"there are ways out.",
			"there is a light somewhere.",
			"it may not be much light but",
			"it beats the darkness.",
			"be on the watch.",
			"the gods will offer you chances.",
			"know them.",
			"take them.",
			"you can't beat death but",
			"you can beat death in life, sometimes.",
			"and the more often you learn to do it,",
			"the more light there will be.",
			"your life is your life.",
			"know it while you have it.",
			"you are marvelous",
			"the gods wait to delight in you.",
		},
	}
}

// DefaultEffects returns the stock effect constants.
func DefaultEffects() EffectsConfig {
	return EffectsConfig{
		Shake:         8,
		ShakeDecay:    0.9,
		ShakeFloor:    0.1,
		Flash:         1.0,
		FlashDecay:    0.85,
		FlashFloor:    0.01,
		CameraEase:    0.1,
		BurstCount:    25,
		RingCount:     16,
		FinaleCount:   50,
		LifeDecay:     0.008,
		AmbientChance: 0.08,
		PulseSpeed:    0.05,
	}
}

// DefaultVariant returns the highlands variant without touching the embedded files.
// Used when every other source fails to produce a valid config.
func DefaultVariant() VariantConfig {
	return VariantConfig{
		ID:          DefaultVariantID,
		Title:       "Highlands",
		Description: "Top-down walk across an 800x600 moor",
		Movement:    MovementPlanar,
		HUD:         true,
		World:       WorldConfig{Width: 800, Height: 600},
		View:        ViewConfig{Width: 320, Height: 180},
		Player: PlayerConfig{
			SpawnX:     160,
			SpawnY:     90,
			Width:      12,
			Height:     18,
			Speed:      1.5,
			Facing:     "down",
			AnimTicks:  8,
			StepFrames: 15,
		},
		Interaction: InteractionConfig{
			Radius:            30,
			Metric:            MetricEuclidean,
			DialoguePrefix:    "* ",
			TypeTicks:         2,
			CompletionDelayMS: 1000,
		},
		Chapters: ChapterConfig{
			Progression: ProgressionDiscoveries,
			Thresholds:  []float64{5, 10, 15},
			Names:       []string{"Darkness", "The Light", "The Gods", "Delight"},
			Palettes: []ChapterPalette{
				{Sky: "#050505", Horizon: "#0b0f0b", Ground: "#0d120d", Accent: "#87ceeb"},
				{Sky: "#080808", Horizon: "#101a12", Ground: "#121c13", Accent: "#87ceeb"},
				{Sky: "#0a0a0a", Horizon: "#18221a", Ground: "#1a241a", Accent: "#ffd700"},
				{Sky: "#1a1a0d", Horizon: "#2a2a14", Ground: "#2a2a16", Accent: "#ffd700"},
			},
		},
		Effects: DefaultEffects(),
		Poem:    DefaultPoem(),
		Catalog: []InteractableEntry{
			{X: 200, Y: 120, Kind: "signpost", Line: 0},
			{X: 120, Y: 200, Kind: "cairn", Line: 1},
			{X: 180, Y: 300, Kind: "hiker", Line: 2},
			{X: 280, Y: 350, Kind: "plane_wreck", Line: 3},
			{X: 380, Y: 280, Kind: "lighthouse", Line: 4},
			{X: 450, Y: 200, Kind: "weather_station", Line: 5},
			{X: 520, Y: 120, Kind: "geothermal_vent", Line: 6},
			{X: 620, Y: 150, Kind: "telescope", Line: 7},
			{X: 700, Y: 220, Kind: "viking_statue", Line: 8},
			{X: 680, Y: 320, Kind: "tourist", Line: 9},
			{X: 600, Y: 400, Kind: "globe", Line: 10},
			{X: 500, Y: 450, Kind: "ice_sculpture", Line: 11},
			{X: 400, Y: 500, Kind: "flag_pole", Line: 12},
			{X: 300, Y: 520, Kind: "abandoned_car", Line: 13},
			{X: 200, Y: 480, Kind: "bench", Line: 14},
			{X: 120, Y: 420, Kind: "ruins", Line: 15},
			{X: 80, Y: 320, Kind: "whale_bones", Line: 16},
			{X: 100, Y: 220, Kind: "hot_spring", Line: 17},
			{X: 150, Y: 120, Kind: "viewpoint", Line: 18},
		},
		Layers: []LayerConfig{
			{Kind: "terrain", Speed: 1, Height: 600, Color: "#2f4f2f", AltColor: "#4a5a3a", Spacing: 24},
			{Kind: "stones", Speed: 1, Height: 600, Color: "#555555", Spacing: 70},
			{Kind: "fireflies", Speed: 1, Height: 600, Color: "#ffe066", Spacing: 90, MinChapter: 1},
		},
	}
}
