package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/poemwalk/internal/storage"
)

// seedJournal points --db at a fresh journal holding one walk per variant.
func seedJournal(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.db")
	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveRun(storage.Run{ID: "aaaa1111-high", Variant: "highlands", Found: 19, Total: 19, Duration: time.Minute, Completed: true})
	store.SaveRun(storage.Run{ID: "bbbb2222-coast", Variant: "coast", Found: 4, Total: 19, Duration: time.Minute})
	store.Close()

	oldDB, oldBest, oldClear, oldLimit := flagDBPath, flagJournalBest, flagJournalClear, flagJournalLimit
	t.Cleanup(func() {
		flagDBPath, flagJournalBest, flagJournalClear, flagJournalLimit = oldDB, oldBest, oldClear, oldLimit
	})
	flagDBPath = path
	flagJournalLimit = 10
	return path
}

func runJournalOutput(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	journalCmd.SetOut(&buf)
	defer journalCmd.SetOut(nil)

	if err := runJournal(journalCmd, args); err != nil {
		t.Fatalf("runJournal(%v) failed: %v", args, err)
	}
	return buf.String()
}

func TestJournalListsEveryVariant(t *testing.T) {
	tests := []struct {
		name string
		best bool
	}{
		{"recent", false},
		{"best", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seedJournal(t)
			flagJournalBest = tt.best

			got := runJournalOutput(t)
			for _, id := range []string{"aaaa1111", "bbbb2222"} {
				if !strings.Contains(got, id) {
					t.Errorf("journal output missing %s:\n%s", id, got)
				}
			}
		})
	}
}

func TestJournalClear(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		remaining int
	}{
		{"every variant", nil, 0},
		{"one variant", []string{"coast"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := seedJournal(t)
			flagJournalClear = true
			runJournalOutput(t, tt.args...)

			store, err := storage.Open(path)
			if err != nil {
				t.Fatalf("Open() failed: %v", err)
			}
			defer store.Close()

			runs, _ := store.RecentRuns("", 10)
			if len(runs) != tt.remaining {
				t.Errorf("RecentRuns() after clear = %d runs, expected %d", len(runs), tt.remaining)
			}
		})
	}
}

func TestJournalUnknownVariant(t *testing.T) {
	seedJournal(t)
	if err := runJournal(journalCmd, []string{"atlantis"}); err == nil {
		t.Error("runJournal() with unknown variant should fail")
	}
}
