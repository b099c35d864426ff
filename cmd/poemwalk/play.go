package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/poemwalk/internal/config"
	"github.com/vovakirdan/poemwalk/internal/games/walk"
	"github.com/vovakirdan/poemwalk/internal/platform/tui"
	"github.com/vovakirdan/poemwalk/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Walk a variant",
	Long: `Start walking the specified variant (default: highlands).

Controls:
  Arrows/WASD/HJKL  - Move
  Z/Enter/Space     - Start, interact, advance dialogue
  P                 - Pause
  R                 - Restart
  M, +/-            - Mute, volume
  Ctrl+S            - Save a screenshot
  Esc/B, Q          - Leave

Variant files are looked up in order:
  --config <path>, ~/.poemwalk/variants/<id>.yaml, ./variants/<id>.yaml,
  then the built-in default.

Examples:
  poemwalk play
  poemwalk play coast
  poemwalk play corridor --fps 30
  poemwalk play highlands --config ./my-highlands.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom variant YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	variantID := config.DefaultVariantID
	if len(args) > 0 {
		variantID = args[0]
	}

	// A custom file may define a brand new variant
	if flagConfig == "" && !registry.Exists(variantID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'poemwalk list' to see available variants.")
		os.Exit(1)
	}

	variant, err := config.Load(variantID, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading variant: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger()
	defer closeLog()

	store := openStore()
	session := newSession(store, logger)

	res, runErr := tui.Run(walk.New(variant), session, runtimeConfig(), false)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running walk: %v\n", runErr)
		os.Exit(1)
	}
	if res.LastRunID != "" {
		fmt.Printf("Journaled as %s. Export with 'poemwalk export %s'.\n", shortID(res.LastRunID), shortID(res.LastRunID))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
