package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/poemwalk/internal/config"
	"github.com/vovakirdan/poemwalk/internal/games/walk"
	"github.com/vovakirdan/poemwalk/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start poemwalk in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a variant.
Leaving a walk returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start walking
  Tab          - Open the journal
  Q            - Quit

Examples:
  poemwalk menu
  poemwalk menu --fps 30
  poemwalk menu --db ./journal.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	session := newSession(store, logger)

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsJournal {
			goBack, jErr := tui.RunJournal(store, cfg.ScreenW, cfg.ScreenH, "")
			if jErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", jErr)
			}
			if goBack {
				continue
			}
			return
		}

		if menuResult.VariantID == "" {
			return
		}

		variant, err := config.Load(menuResult.VariantID, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading variant: %v\n", err)
			continue
		}

		res, err := tui.Run(walk.New(variant), session, cfg, true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running walk: %v\n", err)
			return
		}
		if !res.BackToMenu {
			return
		}
	}
}
