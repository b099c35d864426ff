// poemwalk is a quiet exploration game for the terminal: walk a small world,
// find the things scattered through it, and piece together a poem.
//
// Usage:
//
//	poemwalk list               - List available variants
//	poemwalk play <variant>     - Walk one variant directly
//	poemwalk menu               - Pick variants interactively
//	poemwalk serve              - Start SSH server for remote walks
//	poemwalk journal [variant]  - Show journaled walks
//	poemwalk export <run-id>    - Export a walk's poem as PDF
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible effects
//	--db <path>       - Set database path (default: ~/.poemwalk/journal.db)
//	--volume <0..1>   - Master volume
//	--mute            - Start muted
//	--log <path>      - Write debug logs to a file
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/poemwalk/internal/audio"
	"github.com/vovakirdan/poemwalk/internal/core"
	"github.com/vovakirdan/poemwalk/internal/platform/tui"
	"github.com/vovakirdan/poemwalk/internal/storage"

	// Import the walk to register its variants
	_ "github.com/vovakirdan/poemwalk/internal/games/walk"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVolume  float64
	flagMute    bool
	flagLogPath string
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "poemwalk",
	Short: "Poemwalk - Find a poem by walking through it",
	Long: `Poemwalk is a small exploration game for the terminal. Each variant is a
world with things to find; every discovery reveals one line of a poem.

Available commands:
  list     - Show all available variants
  play     - Walk a specific variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote walks
  journal  - View journaled walks
  export   - Export a walk's poem as PDF

Examples:
  poemwalk list
  poemwalk play highlands
  poemwalk menu --volume 0.5
  poemwalk serve --ssh :2222
  poemwalk export 3f2a9c1b -o poem.pdf`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.ReferenceTickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.poemwalk/journal.db", "Path to journal database")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", -1, "Master volume 0..1 (default from "+audio.EnvMasterVolume+" or 0.3)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(exportCmd)
}

// runtimeConfig builds the runtime config for the local terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the journal, or returns nil with a warning.
// Walks still work without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open journal database: %v\n", err)
		return nil
	}
	return store
}

// newLogger returns a file logger when --log is set, nil otherwise.
// The terminal belongs to the walk, so nothing is logged to it.
func newLogger() (*log.Logger, func()) {
	if flagLogPath == "" {
		return nil, func() {}
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return nil, func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "poemwalk",
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }
}

// newAudio builds the local audio player from the environment and flags.
func newAudio(logger *log.Logger) *audio.Player {
	cfg := audio.LoadConfig()
	if flagVolume >= 0 {
		cfg.MasterVolume = audio.ClampVolume(flagVolume)
	}
	player := audio.NewPlayer(cfg)
	if logger != nil {
		player.SetLogger(logger)
	}
	if flagMute {
		player.ToggleMute()
	}
	return player
}

// newSession wires the collaborators for a local walk.
func newSession(store *storage.Store, logger *log.Logger) tui.Session {
	player := os.Getenv("USER")
	if player == "" {
		player = "local"
	}
	return tui.Session{
		Store:  store,
		Audio:  newAudio(logger),
		Player: player,
		Logger: logger,
	}
}
