package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saved := Run{
		Variant:   "highlands",
		Player:    "ada",
		Found:     19,
		Total:     19,
		Ticks:     5400,
		Duration:  90 * time.Second,
		Lines:     []int{3, 0, 18, 7},
		Completed: true,
	}

	id, err := store.SaveRun(saved)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("SaveRun() id = %q, expected a uuid", id)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() = nil, expected run")
	}

	if got.Variant != saved.Variant || got.Player != saved.Player {
		t.Errorf("RunByID() = %s/%s, expected %s/%s", got.Variant, got.Player, saved.Variant, saved.Player)
	}
	if got.Found != 19 || got.Total != 19 || got.Ticks != 5400 {
		t.Errorf("RunByID() counts = %d/%d/%d, expected 19/19/5400", got.Found, got.Total, got.Ticks)
	}
	if got.Duration != saved.Duration {
		t.Errorf("Duration = %v, expected %v", got.Duration, saved.Duration)
	}
	if !reflect.DeepEqual(got.Lines, saved.Lines) {
		t.Errorf("Lines = %v, expected %v", got.Lines, saved.Lines)
	}
	if !got.Completed {
		t.Error("Completed = false, expected true")
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID("no-such-run")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("RunByID() = %+v, expected nil", got)
	}
}

func TestStoreKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{ID: "fixed-id", Variant: "coast"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("SaveRun() id = %q, expected fixed-id", id)
	}

	if _, err := store.SaveRun(Run{ID: "fixed-id", Variant: "coast"}); err == nil {
		t.Error("SaveRun() with duplicate id should fail")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(Run{Variant: "highlands", Found: i}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	store.SaveRun(Run{Variant: "corridor", Found: 9})

	runs, err := store.RecentRuns("highlands", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("RecentRuns() returned %d runs, expected 3", len(runs))
	}
	// newest first
	for i, expected := range []int{4, 3, 2} {
		if runs[i].Found != expected {
			t.Errorf("runs[%d].Found = %d, expected %d", i, runs[i].Found, expected)
		}
	}

	all, err := store.RecentRuns("", 0)
	if err != nil {
		t.Fatalf("RecentRuns(all) failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("RecentRuns(all) returned %d runs, expected 6", len(all))
	}
	if all[0].Variant != "corridor" {
		t.Errorf("newest run variant = %s, expected corridor", all[0].Variant)
	}
}

func TestStoreBestRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{ID: "slow", Variant: "highlands", Found: 19, Total: 19, Duration: 5 * time.Minute, Completed: true})
	store.SaveRun(Run{ID: "partial", Variant: "highlands", Found: 12, Total: 19, Duration: time.Minute})
	store.SaveRun(Run{ID: "fast", Variant: "highlands", Found: 19, Total: 19, Duration: 2 * time.Minute, Completed: true})
	store.SaveRun(Run{ID: "other", Variant: "coast", Found: 19, Total: 19, Duration: time.Second, Completed: true})

	runs, err := store.BestRuns("highlands", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}

	var ids []string
	for _, r := range runs {
		ids = append(ids, r.ID)
	}
	expected := []string{"fast", "slow", "partial"}
	if !reflect.DeepEqual(ids, expected) {
		t.Errorf("BestRuns() order = %v, expected %v", ids, expected)
	}
}

func TestStoreRunByPrefix(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{ID: "abc12345-one", Variant: "highlands"})
	store.SaveRun(Run{ID: "abc12345-two", Variant: "highlands"})
	store.SaveRun(Run{ID: "ffee0000-three", Variant: "coast"})

	tests := []struct {
		prefix   string
		expected string
		err      error
	}{
		{"ffee", "ffee0000-three", nil},
		{"abc12345-t", "abc12345-two", nil},
		{"abc", "", ErrAmbiguous},
		{"zzz", "", nil},
		{"", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			got, err := store.RunByPrefix(tt.prefix)
			if !errors.Is(err, tt.err) {
				t.Fatalf("RunByPrefix(%q) error = %v, expected %v", tt.prefix, err, tt.err)
			}
			if tt.expected == "" {
				if got != nil {
					t.Errorf("RunByPrefix(%q) = %s, expected nil", tt.prefix, got.ID)
				}
				return
			}
			if got == nil || got.ID != tt.expected {
				t.Errorf("RunByPrefix(%q) = %v, expected %s", tt.prefix, got, tt.expected)
			}
		})
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Variant: "highlands"})
	store.SaveRun(Run{Variant: "highlands"})
	store.SaveRun(Run{Variant: "corridor"})

	if err := store.ClearRuns("highlands"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	highlands, _ := store.RecentRuns("highlands", 10)
	if len(highlands) != 0 {
		t.Errorf("Expected 0 highlands runs after clear, got %d", len(highlands))
	}

	corridor, _ := store.RecentRuns("corridor", 10)
	if len(corridor) != 1 {
		t.Errorf("Corridor runs should not be affected by clearing highlands")
	}
}

func TestStoreEmptyVariantMeansAll(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Variant: "highlands", Found: 3, Total: 19})
	store.SaveRun(Run{Variant: "coast", Found: 19, Total: 19, Completed: true})

	recent, _ := store.RecentRuns("", 10)
	best, _ := store.BestRuns("", 10)
	if len(recent) != 2 || len(best) != 2 {
		t.Fatalf("RecentRuns/BestRuns(\"\") = %d/%d runs, expected 2/2", len(recent), len(best))
	}
	if best[0].Variant != "coast" {
		t.Errorf("BestRuns(\"\")[0] = %s, expected coast", best[0].Variant)
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if left, _ := store.RecentRuns("", 10); len(left) != 0 {
		t.Errorf("ClearRuns(\"\") left %d runs, expected 0", len(left))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("highlands")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestDuration != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty journal = %+v", empty)
	}

	store.SaveRun(Run{Variant: "highlands", Found: 19, Duration: 3 * time.Minute, Completed: true})
	store.SaveRun(Run{Variant: "highlands", Found: 19, Duration: 2 * time.Minute, Completed: true})
	store.SaveRun(Run{Variant: "highlands", Found: 4, Duration: time.Minute})
	store.SaveRun(Run{Variant: "coast", Found: 2})

	stats, err := store.Stats("highlands")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Runs = %d, expected 3", stats.Runs)
	}
	if stats.Completed != 2 {
		t.Errorf("Completed = %d, expected 2", stats.Completed)
	}
	if stats.MostFound != 19 {
		t.Errorf("MostFound = %d, expected 19", stats.MostFound)
	}
	if stats.BestDuration != 2*time.Minute {
		t.Errorf("BestDuration = %v, expected 2m", stats.BestDuration)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("AllStats() returned %d variants, expected 2", len(all))
	}
	if all["coast"].BestDuration != 0 {
		t.Errorf("coast BestDuration = %v, expected 0", all["coast"].BestDuration)
	}
}

func TestLinesCodec(t *testing.T) {
	tests := []struct {
		encoded  string
		expected []int
	}{
		{"", nil},
		{"5", []int{5}},
		{"3,0,18", []int{3, 0, 18}},
		{"1,x,2", []int{1, 2}},
	}
	for _, tt := range tests {
		if got := decodeLines(tt.encoded); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("decodeLines(%q) = %v, expected %v", tt.encoded, got, tt.expected)
		}
	}
	if got := encodeLines([]int{3, 0, 18}); got != "3,0,18" {
		t.Errorf("encodeLines() = %q, expected 3,0,18", got)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/nested/deep/journal.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, "nested", "deep", "journal.db")); os.IsNotExist(err) {
		t.Error("Database file was not created under home")
	}
}
