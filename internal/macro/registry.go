package macro

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/TanaroSch/macro-manager/internal/keyspec"
)

var (
	// ErrOutOfRange is returned for an index outside 0..Len()-1.
	ErrOutOfRange = errors.New("macro index out of range")
	// ErrNotFound is returned when a stable ID no longer names an entry.
	ErrNotFound = errors.New("macro not found")
)

// Entry is a single macro: the hotkey that triggers it, the text it types
// and the name shown to the user. Any field may be empty.
type Entry struct {
	ID     uuid.UUID
	Hotkey keyspec.KeySpec
	Text   string
	Name   string
}

// Registry is an ordered list of macros. The index of an entry is its
// identity for matching and display; removing an entry shifts every later
// index down by one. Each entry also carries a stable ID that survives
// such shifts.
//
// Registry is not safe for concurrent use; the engine guards it.
type Registry struct {
	entries []Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Len returns the number of entries.
func (r *Registry) Len() int { return len(r.entries) }

// Add appends a macro and returns its index, which is always the length of
// the registry before the call.
func (r *Registry) Add(hotkey keyspec.KeySpec, text, name string) int {
	r.entries = append(r.entries, Entry{
		ID:     uuid.New(),
		Hotkey: hotkey,
		Text:   text,
		Name:   name,
	})
	return len(r.entries) - 1
}

// Remove deletes the entry at index.
func (r *Registry) Remove(index int) error {
	if err := r.check(index); err != nil {
		return err
	}
	r.entries = append(r.entries[:index], r.entries[index+1:]...)
	return nil
}

// Get returns a copy of the entry at index.
func (r *Registry) Get(index int) (Entry, error) {
	if err := r.check(index); err != nil {
		return Entry{}, err
	}
	return r.entries[index], nil
}

// SetHotkey rebinds the entry at index.
func (r *Registry) SetHotkey(index int, hotkey keyspec.KeySpec) error {
	if err := r.check(index); err != nil {
		return err
	}
	r.entries[index].Hotkey = hotkey
	return nil
}

// SetText replaces the macro body of the entry at index.
func (r *Registry) SetText(index int, text string) error {
	if err := r.check(index); err != nil {
		return err
	}
	r.entries[index].Text = text
	return nil
}

// SetName renames the entry at index.
func (r *Registry) SetName(index int, name string) error {
	if err := r.check(index); err != nil {
		return err
	}
	r.entries[index].Name = name
	return nil
}

// IndexOf resolves a stable ID to the entry's current index.
func (r *Registry) IndexOf(id uuid.UUID) (int, error) {
	for i := range r.entries {
		if r.entries[i].ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("macro %s: %w", id, ErrNotFound)
}

// Hotkeys returns the hotkey of every entry in index order.
func (r *Registry) Hotkeys() []keyspec.KeySpec {
	keys := make([]keyspec.KeySpec, len(r.entries))
	for i := range r.entries {
		keys[i] = r.entries[i].Hotkey
	}
	return keys
}

// Entries returns a snapshot of all entries.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Replace swaps the registry content for entries. Entries without an ID
// are given one.
func (r *Registry) Replace(entries []Entry) {
	r.entries = make([]Entry, len(entries))
	copy(r.entries, entries)
	for i := range r.entries {
		if r.entries[i].ID == uuid.Nil {
			r.entries[i].ID = uuid.New()
		}
	}
}

func (r *Registry) check(index int) error {
	if index < 0 || index >= len(r.entries) {
		return fmt.Errorf("index %d (len %d): %w", index, len(r.entries), ErrOutOfRange)
	}
	return nil
}
