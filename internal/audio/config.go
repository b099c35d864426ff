package audio

import (
	"os"
	"strconv"
)

// Environment variables read by LoadConfig.
const (
	EnvEnabled      = "POEMWALK_AUDIO_ENABLED"
	EnvMasterVolume = "POEMWALK_MASTER_VOLUME"
	EnvSampleRate   = "POEMWALK_SAMPLE_RATE"
)

// DefaultMasterVolume is the master gain a fresh player starts with.
const DefaultMasterVolume = 0.3

// Config holds audio settings.
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 - 1.0
	SampleRate   int
}

// DefaultConfig returns audio enabled at the stock master volume.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: DefaultMasterVolume,
		SampleRate:   44100,
	}
}

// LoadConfig loads audio configuration from environment variables.
// Unparseable values are ignored.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv(EnvEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = ClampVolume(float64(val) / 100.0)
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// ClampVolume limits v to [0, 1].
func ClampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
