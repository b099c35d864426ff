package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/poemwalk/internal/audio"
)

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr     string
		expected string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:2200", "2200"},
		{"nonsense", "nonsense"},
	}

	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.expected {
			t.Errorf("portOf(%q) = %q, expected %q", tt.addr, got, tt.expected)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("3f2a9c1b-0000-4000-8000-000000000000"); got != "3f2a9c1b" {
		t.Errorf("shortID() = %q, expected %q", got, "3f2a9c1b")
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID() = %q, expected %q", got, "abc")
	}
}

func TestVolumeFlagNamesEnvVar(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("volume")
	if flag == nil {
		t.Fatal("--volume flag not registered")
	}
	if !strings.Contains(flag.Usage, audio.EnvMasterVolume) {
		t.Errorf("--volume usage = %q, expected it to name %s", flag.Usage, audio.EnvMasterVolume)
	}
}
