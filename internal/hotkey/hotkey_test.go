package hotkey

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeHotkey struct {
	ch   chan struct{}
	once sync.Once
}

func (f *fakeHotkey) Keydown() <-chan struct{} { return f.ch }
func (f *fakeHotkey) Close() error {
	f.once.Do(func() { close(f.ch) })
	return nil
}

type fakeBackend struct {
	mu   sync.Mutex
	keys map[string]*fakeHotkey
	fail map[string]bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{keys: make(map[string]*fakeHotkey), fail: make(map[string]bool)}
}

func (b *fakeBackend) Register(s string) (RegisteredHotkey, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail[s] {
		return nil, errors.New("grab failed")
	}
	hk := &fakeHotkey{ch: make(chan struct{})}
	b.keys[s] = hk
	return hk, nil
}

func (b *fakeBackend) Unregister(s string) error { return nil }

func (b *fakeBackend) UnregisterAll() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, hk := range b.keys {
		hk.Close()
	}
	b.keys = make(map[string]*fakeHotkey)
	return nil
}

func (b *fakeBackend) Name() string      { return "fake" }
func (b *fakeBackend) IsAvailable() bool { return true }

func (b *fakeBackend) press(t *testing.T, s string) {
	t.Helper()
	b.mu.Lock()
	hk, ok := b.keys[s]
	b.mu.Unlock()
	if !ok {
		t.Fatalf("hotkey %q not registered", s)
	}
	select {
	case hk.ch <- struct{}{}:
	case <-time.After(time.Second):
		t.Fatalf("hotkey %q not consumed", s)
	}
}

func TestManagerRunsActions(t *testing.T) {
	backend := newFakeBackend()
	m := NewManager(backend)

	fired := make(chan string, 4)
	err := m.RegisterAll([]Action{
		{Name: "toggle", Hotkey: "ctrl+alt+m", Run: func() { fired <- "toggle" }},
		{Name: "reload", Hotkey: "ctrl+alt+r", Run: func() { fired <- "reload" }},
		{Name: "unbound", Hotkey: ""},
	})
	if err != nil {
		t.Fatalf("RegisterAll() error: %v", err)
	}

	backend.press(t, "ctrl+alt+r")
	select {
	case got := <-fired:
		if got != "reload" {
			t.Errorf("fired %q, want reload", got)
		}
	case <-time.After(time.Second):
		t.Fatal("action not run")
	}

	m.UnregisterAll()
	if len(backend.keys) != 0 {
		t.Errorf("backend still holds %d hotkeys", len(backend.keys))
	}
}

func TestManagerCollectsErrors(t *testing.T) {
	backend := newFakeBackend()
	backend.fail["ctrl+alt+s"] = true
	m := NewManager(backend)

	err := m.RegisterAll([]Action{
		{Name: "toggle", Hotkey: "ctrl+alt+m"},
		{Name: "save", Hotkey: "ctrl+alt+s"},
		{Name: "dup", Hotkey: "ctrl+alt+m"},
	})
	if err == nil {
		t.Fatal("expected joined error")
	}
	if _, ok := backend.keys["ctrl+alt+m"]; !ok {
		t.Error("valid hotkey should still be registered")
	}
}

func TestManagerWithoutBackend(t *testing.T) {
	m := NewManager(nil)
	if err := m.RegisterAll([]Action{{Name: "x", Hotkey: "ctrl+x"}}); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("RegisterAll() = %v, want ErrBackendNotAvailable", err)
	}
}
