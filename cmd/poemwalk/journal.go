package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/poemwalk/internal/platform/tui"
	"github.com/vovakirdan/poemwalk/internal/registry"
	"github.com/vovakirdan/poemwalk/internal/storage"
)

var (
	flagJournalLimit int
	flagJournalBest  bool
	flagJournalTUI   bool
	flagJournalClear bool
)

var journalCmd = &cobra.Command{
	Use:   "journal [variant]",
	Short: "Show journaled walks",
	Long: `List the walks recorded in the journal, newest first.

Without a variant every walk is listed. Use --best to order by lines
found and time taken, or --tui for the interactive journal.

Examples:
  poemwalk journal
  poemwalk journal coast --best
  poemwalk journal --tui
  poemwalk journal corridor --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runJournal,
}

func init() {
	journalCmd.Flags().IntVarP(&flagJournalLimit, "limit", "n", 10, "Number of walks to show")
	journalCmd.Flags().BoolVar(&flagJournalBest, "best", false, "Order by lines found, then fastest")
	journalCmd.Flags().BoolVar(&flagJournalTUI, "tui", false, "Open the interactive journal")
	journalCmd.Flags().BoolVar(&flagJournalClear, "clear", false, "Delete the listed walks")
}

func runJournal(cmd *cobra.Command, args []string) error {
	variant := ""
	if len(args) > 0 {
		variant = args[0]
		if !registry.Exists(variant) {
			return fmt.Errorf("unknown variant %q (run 'poemwalk list' to see available variants)", variant)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening journal database: %w", err)
	}
	defer store.Close()

	if flagJournalTUI {
		cfg := runtimeConfig()
		_, err := tui.RunJournal(store, cfg.ScreenW, cfg.ScreenH, variant)
		return err
	}

	out := cmd.OutOrStdout()

	if flagJournalClear {
		if err := store.ClearRuns(variant); err != nil {
			return err
		}
		if variant == "" {
			fmt.Fprintln(out, "Journal cleared.")
		} else {
			fmt.Fprintf(out, "Journal cleared for %s.\n", variant)
		}
		return nil
	}

	var runs []storage.Run
	if flagJournalBest {
		runs, err = store.BestRuns(variant, flagJournalLimit)
	} else {
		runs, err = store.RecentRuns(variant, flagJournalLimit)
	}
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No walks recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'poemwalk play' to take the first one.")
		return nil
	}

	fmt.Fprintf(out, "  %-8s  %-10s  %-7s  %-8s  %s\n", "Run", "Variant", "Lines", "Time", "When")
	fmt.Fprintf(out, "  %-8s  %-10s  %-7s  %-8s  %s\n", "---", "-------", "-----", "----", "----")

	for _, r := range runs {
		lines := fmt.Sprintf("%d/%d", r.Found, r.Total)
		if r.Completed {
			lines += " *"
		}
		fmt.Fprintf(out, "  %-8s  %-10s  %-7s  %-8s  %s\n",
			r.ShortID(), r.Variant, lines, r.Duration.Round(time.Second).String(), humanize.Time(r.CreatedAt))
	}

	if variant != "" {
		if stats, err := store.Stats(variant); err == nil && stats.Completed > 0 {
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Completed %s times, best time %s\n",
				humanize.Comma(int64(stats.Completed)), stats.BestDuration.Round(time.Second))
		}
	}
	return nil
}
