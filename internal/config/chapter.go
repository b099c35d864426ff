package config

// ChapterManager derives the narrative chapter from progress.
// The chapter is a step function: the number of thresholds reached.
type ChapterManager struct {
	cfg ChapterConfig
}

// NewChapterManager creates a new chapter manager.
func NewChapterManager(cfg ChapterConfig) *ChapterManager {
	return &ChapterManager{cfg: cfg}
}

// Count returns the number of chapters.
func (m *ChapterManager) Count() int {
	return len(m.cfg.Thresholds) + 1
}

// Progress returns the value compared against the thresholds.
func (m *ChapterManager) Progress(discovered int, playerX float64) float64 {
	if m.cfg.Progression == ProgressionDistance {
		return playerX
	}
	return float64(discovered)
}

// Chapter returns the current chapter (0-based).
func (m *ChapterManager) Chapter(discovered int, playerX float64) int {
	progress := m.Progress(discovered, playerX)
	chapter := 0
	for _, t := range m.cfg.Thresholds {
		if progress >= t {
			chapter++
		}
	}
	return chapter
}

// Name returns the display name of a chapter.
func (m *ChapterManager) Name(chapter int) string {
	if chapter >= 0 && chapter < len(m.cfg.Names) {
		return m.cfg.Names[chapter]
	}
	return ""
}

// Palette returns the colors for a chapter, reusing the last one when short.
func (m *ChapterManager) Palette(chapter int) ChapterPalette {
	n := len(m.cfg.Palettes)
	if n == 0 {
		return ChapterPalette{Sky: "#050505", Horizon: "#0a0a0a", Ground: "#1a1a1a", Accent: "#87ceeb"}
	}
	if chapter < 0 {
		chapter = 0
	}
	if chapter >= n {
		chapter = n - 1
	}
	return m.cfg.Palettes[chapter]
}
