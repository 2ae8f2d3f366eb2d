package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestRecordRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.RecordRun(Run{Seed: 42, Map: "island", FruitsCollected: 3, FruitsTotal: 10})
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("RecordRun() id %q is not a UUID: %v", id, err)
	}

	n, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("RunCount() = %d, want 1", n)
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := store.RecordRun(Run{
			Seed:            int64(i),
			Map:             "island",
			FruitsCollected: i,
			FruitsTotal:     10,
			CaveVisits:      i % 2,
			Duration:        time.Duration(i+1) * time.Second,
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("RecordRun(%d) failed: %v", i, err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("len(runs) = %d, want 3", len(runs))
	}

	for i, want := range []int64{4, 3, 2} {
		if runs[i].Seed != want {
			t.Errorf("runs[%d].Seed = %d, want %d", i, runs[i].Seed, want)
		}
	}

	first := runs[0]
	if first.FruitsCollected != 4 || first.CaveVisits != 0 || first.Duration != 5*time.Second {
		t.Errorf("runs[0] = %+v, want 4 fruits, 0 visits, 5s", first)
	}
	if !first.CreatedAt.Equal(base.Add(4 * time.Minute)) {
		t.Errorf("runs[0].CreatedAt = %v, want %v", first.CreatedAt, base.Add(4*time.Minute))
	}
}

func TestRecordRunDuplicateID(t *testing.T) {
	store := openTestStore(t)

	run := Run{ID: uuid.NewString(), Map: "island"}
	if _, err := store.RecordRun(run); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if _, err := store.RecordRun(run); err == nil {
		t.Error("RecordRun() with a duplicate id succeeded, want error")
	}
}
