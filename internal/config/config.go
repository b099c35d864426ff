// Package config provides YAML-based variant configuration loading and
// chapter progression for the walk.
package config

// Movement modes.
const (
	MovementPlanar  = "planar"  // four-way movement inside a rectangle
	MovementLateral = "lateral" // left/right across the world, up/down inside a narrow band
)

// Distance metrics for proximity checks.
const (
	MetricEuclidean  = "euclidean"
	MetricHorizontal = "horizontal"
)

// Chapter progression rules.
const (
	ProgressionDiscoveries = "discoveries"
	ProgressionDistance    = "distance"
)

// VariantConfig is one playable world: bounds, movement, catalog, layers.
type VariantConfig struct {
	ID          string              `yaml:"id"`
	Title       string              `yaml:"title"`
	Description string              `yaml:"description"`
	Movement    string              `yaml:"movement"`
	HUD         bool                `yaml:"hud"`
	World       WorldConfig         `yaml:"world"`
	View        ViewConfig          `yaml:"view"`
	Player      PlayerConfig        `yaml:"player"`
	Interaction InteractionConfig   `yaml:"interaction"`
	Chapters    ChapterConfig       `yaml:"chapters"`
	Effects     EffectsConfig       `yaml:"effects"`
	Poem        PoemConfig          `yaml:"poem"`
	Catalog     []InteractableEntry `yaml:"catalog"`
	Layers      []LayerConfig       `yaml:"layers"`
}

// WorldConfig defines the walkable area in world units.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	BandMin float64 `yaml:"band_min"` // lateral only: top of the walkable band
	BandMax float64 `yaml:"band_max"` // lateral only: bottom of the walkable band
}

// ViewConfig is the logical camera size in world units.
type ViewConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's spawn pose and gait.
type PlayerConfig struct {
	SpawnX     float64 `yaml:"spawn_x"`
	SpawnY     float64 `yaml:"spawn_y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`       // world units per reference tick
	Facing     string  `yaml:"facing"`      // initial facing: down, up, left, right
	AnimTicks  int     `yaml:"anim_ticks"`  // walk frame flips after this many ticks
	StepFrames int     `yaml:"step_frames"` // footstep cue after this many frame flips
}

// InteractionConfig defines proximity and dialogue behavior.
type InteractionConfig struct {
	Radius            float64 `yaml:"radius"`
	Metric            string  `yaml:"metric"`
	DialoguePrefix    string  `yaml:"dialogue_prefix"`
	TypeTicks         int     `yaml:"type_ticks"`          // reference ticks per revealed rune
	CompletionDelayMS int     `yaml:"completion_delay_ms"` // wait after the last dialogue closes
}

// ChapterConfig defines how progress maps to chapters and how they look.
type ChapterConfig struct {
	Progression string           `yaml:"progression"`
	Thresholds  []float64        `yaml:"thresholds"` // ascending; chapter = thresholds reached
	Names       []string         `yaml:"names"`
	Palettes    []ChapterPalette `yaml:"palettes"`
}

// ChapterPalette holds the background colors for one chapter.
type ChapterPalette struct {
	Sky     string `yaml:"sky"`
	Horizon string `yaml:"horizon"`
	Ground  string `yaml:"ground"`
	Accent  string `yaml:"accent"`
}

// EffectsConfig holds the per-reference-tick juice constants.
type EffectsConfig struct {
	Shake         float64 `yaml:"shake"`
	ShakeDecay    float64 `yaml:"shake_decay"`
	ShakeFloor    float64 `yaml:"shake_floor"`
	Flash         float64 `yaml:"flash"`
	FlashDecay    float64 `yaml:"flash_decay"`
	FlashFloor    float64 `yaml:"flash_floor"`
	CameraEase    float64 `yaml:"camera_ease"`
	BurstCount    int     `yaml:"burst_count"`
	RingCount     int     `yaml:"ring_count"`
	FinaleCount   int     `yaml:"finale_count"`
	LifeDecay     float64 `yaml:"life_decay"`
	AmbientChance float64 `yaml:"ambient_chance"`
	PulseSpeed    float64 `yaml:"pulse_speed"`
}

// PoemConfig is the text revealed one line per interactable.
type PoemConfig struct {
	Title  string   `yaml:"title"`
	Author string   `yaml:"author"`
	Lines  []string `yaml:"lines"`
}

// InteractableEntry places one interactable in the world.
type InteractableEntry struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Kind string  `yaml:"kind"`
	Line int     `yaml:"line"`
}

// LayerConfig describes one parallax band.
type LayerConfig struct {
	Kind       string  `yaml:"kind"`
	Speed      float64 `yaml:"speed"` // fraction of camera movement; 1 = world-locked
	Y          float64 `yaml:"y"`     // top of the band in view units
	Height     float64 `yaml:"height"`
	Color      string  `yaml:"color"`
	AltColor   string  `yaml:"alt_color"`
	Spacing    float64 `yaml:"spacing"`
	Offset     float64 `yaml:"offset"`
	Count      int     `yaml:"count"`
	MinChapter int     `yaml:"min_chapter"`
	MaxChapter int     `yaml:"max_chapter"` // 0 means no upper limit
	Foreground bool    `yaml:"foreground"`
}

// VisibleIn reports whether the layer is drawn in the given chapter.
func (l LayerConfig) VisibleIn(chapter int) bool {
	if chapter < l.MinChapter {
		return false
	}
	if l.MaxChapter > 0 && chapter > l.MaxChapter {
		return false
	}
	return true
}

// Lateral reports whether the variant is a side-scroller.
func (c VariantConfig) Lateral() bool {
	return c.Movement == MovementLateral
}
