package macro

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/TanaroSch/macro-manager/internal/keyspec"
)

func TestRegistryAddReturnsPriorLength(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 5; i++ {
		before := r.Len()
		got := r.Add(keyspec.Char(rune('a'+i)), "text", "name")
		if got != before {
			t.Fatalf("Add #%d returned %d, want %d", i, got, before)
		}
		if r.Len() != before+1 {
			t.Fatalf("Len after Add #%d = %d, want %d", i, r.Len(), before+1)
		}
	}
}

func TestRegistryAddPartialEntries(t *testing.T) {
	r := NewRegistry()
	r.Add(keyspec.KeySpec{}, "", "only a name")
	r.Add(keyspec.Char('q'), "", "")

	e, err := r.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	if !e.Hotkey.IsZero() || e.Name != "only a name" {
		t.Fatalf("unexpected entry 0: %+v", e)
	}
	if e.ID == uuid.Nil {
		t.Fatalf("Add should assign an ID")
	}
}

func TestRegistryRemoveShiftsHigherIndices(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"a", "b", "c", "d"} {
		r.Add(keyspec.Char(rune(n[0])), "", n)
	}
	before := r.Entries()

	if err := r.Remove(1); err != nil {
		t.Fatalf("Remove(1): %v", err)
	}
	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}

	after := r.Entries()
	if after[0] != before[0] {
		t.Errorf("entry below removed index changed: %+v -> %+v", before[0], after[0])
	}
	for i := 1; i < len(after); i++ {
		if after[i] != before[i+1] {
			t.Errorf("entry %d = %+v, want %+v", i, after[i], before[i+1])
		}
	}
}

func TestRegistryOutOfRange(t *testing.T) {
	r := NewRegistry()
	r.Add(keyspec.Char('a'), "x", "y")

	for _, idx := range []int{-1, 1, 42} {
		if err := r.Remove(idx); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Remove(%d) error = %v, want ErrOutOfRange", idx, err)
		}
		if _, err := r.Get(idx); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Get(%d) error = %v, want ErrOutOfRange", idx, err)
		}
		if err := r.SetText(idx, "z"); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SetText(%d) error = %v, want ErrOutOfRange", idx, err)
		}
		if err := r.SetName(idx, "z"); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SetName(%d) error = %v, want ErrOutOfRange", idx, err)
		}
		if err := r.SetHotkey(idx, keyspec.Char('z')); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SetHotkey(%d) error = %v, want ErrOutOfRange", idx, err)
		}
	}
	if r.Len() != 1 {
		t.Fatalf("failed operations must not change the registry, Len = %d", r.Len())
	}
}

func TestRegistrySetters(t *testing.T) {
	r := NewRegistry()
	idx := r.Add(keyspec.KeySpec{}, "", "")

	if err := r.SetHotkey(idx, keyspec.Named("home")); err != nil {
		t.Fatal(err)
	}
	if err := r.SetText(idx, "body"); err != nil {
		t.Fatal(err)
	}
	if err := r.SetName(idx, "title"); err != nil {
		t.Fatal(err)
	}

	e, _ := r.Get(idx)
	if e.Hotkey != keyspec.Named("home") || e.Text != "body" || e.Name != "title" {
		t.Fatalf("unexpected entry after setters: %+v", e)
	}
}

func TestRegistryIndexOfSurvivesRemoval(t *testing.T) {
	r := NewRegistry()
	r.Add(keyspec.Char('a'), "", "first")
	r.Add(keyspec.Char('b'), "", "second")
	second, _ := r.Get(1)
	first, _ := r.Get(0)

	if err := r.Remove(0); err != nil {
		t.Fatal(err)
	}
	idx, err := r.IndexOf(second.ID)
	if err != nil || idx != 0 {
		t.Fatalf("IndexOf(second) = %d, %v; want 0, nil", idx, err)
	}
	if _, err := r.IndexOf(first.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("IndexOf(removed) error = %v, want ErrNotFound", err)
	}
}

func TestRegistryReplaceAssignsIDs(t *testing.T) {
	r := NewRegistry()
	r.Add(keyspec.Char('a'), "", "old")

	keep := uuid.New()
	r.Replace([]Entry{
		{ID: keep, Name: "kept"},
		{Name: "fresh"},
	})

	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}
	e0, _ := r.Get(0)
	e1, _ := r.Get(1)
	if e0.ID != keep {
		t.Errorf("existing ID not preserved")
	}
	if e1.ID == uuid.Nil {
		t.Errorf("missing ID not assigned")
	}
}
