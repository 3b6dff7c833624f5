package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSlotRoundTrip(t *testing.T) {
	slot := NewFileSlot(filepath.Join(t.TempDir(), "tasks.json"))

	data, err := slot.Load()
	if err != nil {
		t.Fatalf("Load empty: %v", err)
	}
	if data != nil {
		t.Fatalf("expected nil before first save, got %q", data)
	}

	if err := slot.Save([]byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := slot.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != `[{"id":"a"}]` {
		t.Errorf("got %q", got)
	}

	// Overwrite replaces the whole value.
	if err := slot.Save([]byte(`[]`)); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}
	got, _ = slot.Load()
	if string(got) != `[]` {
		t.Errorf("after overwrite: got %q", got)
	}
}

func TestFileSlotCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "tasks.json")
	slot := NewFileSlot(path)

	if err := slot.Save([]byte(`[]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("slot file missing: %v", err)
	}
}

func TestFileSlotLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	slot := NewFileSlot(filepath.Join(dir, "tasks.json"))
	if err := slot.Save([]byte(`[]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the slot file, found %d entries", len(entries))
	}
}

func TestSQLiteSlotRoundTrip(t *testing.T) {
	slot, err := OpenSQLiteSlot(filepath.Join(t.TempDir(), "taskmaster.db"), "taskmaster-tasks")
	if err != nil {
		t.Fatalf("OpenSQLiteSlot: %v", err)
	}
	defer slot.Close()

	data, err := slot.Load()
	if err != nil {
		t.Fatalf("Load empty: %v", err)
	}
	if data != nil {
		t.Fatalf("expected nil before first save, got %q", data)
	}

	if err := slot.Save([]byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := slot.Save([]byte(`[{"id":"b"}]`)); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}

	got, err := slot.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != `[{"id":"b"}]` {
		t.Errorf("got %q", got)
	}
}

func TestSQLiteSlotSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskmaster.db")

	slot, err := OpenSQLiteSlot(path, "taskmaster-tasks")
	if err != nil {
		t.Fatal(err)
	}
	if err := slot.Save([]byte(`[1,2,3]`)); err != nil {
		t.Fatal(err)
	}
	slot.Close()

	slot2, err := OpenSQLiteSlot(path, "taskmaster-tasks")
	if err != nil {
		t.Fatal(err)
	}
	defer slot2.Close()

	got, err := slot2.Load()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `[1,2,3]` {
		t.Errorf("got %q", got)
	}
}

func TestOpenDrivers(t *testing.T) {
	dir := t.TempDir()

	if _, err := Open("file", filepath.Join(dir, "t.json"), "x"); err != nil {
		t.Errorf("file driver: %v", err)
	}
	if _, err := Open("memory", "", "x"); err != nil {
		t.Errorf("memory driver: %v", err)
	}
	slot, err := Open("sqlite", filepath.Join(dir, "t.db"), "x")
	if err != nil {
		t.Errorf("sqlite driver: %v", err)
	} else if c, ok := slot.(*SQLiteSlot); ok {
		c.Close()
	}
	if _, err := Open("redis", "", "x"); err == nil {
		t.Error("expected error for unknown driver")
	}
}
