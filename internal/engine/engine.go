package engine

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TanaroSch/macro-manager/internal/keyspec"
	"github.com/TanaroSch/macro-manager/internal/macro"
)

// Engine is the macro hotkey engine. Create one with New; the zero value
// is not usable.
type Engine struct {
	mu       sync.Mutex
	registry *macro.Registry
	mode     mode

	listener Listener
	player   player
}

// Option configures an Engine.
type Option func(*Engine)

// WithExpander rewrites macro text before it is typed.
func WithExpander(x Expander) Option {
	return func(e *Engine) { e.player.expander = x }
}

// WithSettleDelay holds the typing guard for d after each playback.
func WithSettleDelay(d time.Duration) Option {
	return func(e *Engine) { e.player.settle = d }
}

// New creates an engine with an empty registry and playback enabled.
// A nil listener discards learning callbacks.
func New(listener Listener, injector Injector, opts ...Option) *Engine {
	if listener == nil {
		listener = nopListener{}
	}
	e := &Engine{
		registry: macro.NewRegistry(),
		mode:     mode{playbackEnabled: true},
		listener: listener,
		player:   player{injector: injector},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetPlaybackEnabled arms (true) or suspends (false) macro playback.
// While suspended, key presses are routed to the Listener.
func (e *Engine) SetPlaybackEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode.playbackEnabled = enabled
}

// PlaybackEnabled reports the externally set playback flag.
func (e *Engine) PlaybackEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode.playbackEnabled
}

// IsListeningActive reports whether a hotkey press would play a macro now.
func (e *Engine) IsListeningActive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode.listeningActive()
}

// IsTyping reports whether a macro is being typed.
func (e *Engine) IsTyping() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode.typing
}

// AddMacro appends a macro and returns its index. Pass the zero KeySpec
// for a macro without a hotkey.
func (e *Engine) AddMacro(hotkey keyspec.KeySpec, text, name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Add(hotkey, text, name)
}

// RemoveMacro deletes the macro at index. Later macros move down by one.
func (e *Engine) RemoveMacro(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Remove(index)
}

// Macro returns a copy of the macro at index.
func (e *Engine) Macro(index int) (macro.Entry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Get(index)
}

// SetHotkey rebinds the macro at index.
func (e *Engine) SetHotkey(index int, hotkey keyspec.KeySpec) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.SetHotkey(index, hotkey)
}

// SetText replaces the body of the macro at index.
func (e *Engine) SetText(index int, text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.SetText(index, text)
}

// SetName renames the macro at index.
func (e *Engine) SetName(index int, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.SetName(index, name)
}

// SetHotkeyByID rebinds the macro with the given stable ID and returns its
// current index. It fails with macro.ErrNotFound if the macro was removed.
func (e *Engine) SetHotkeyByID(id uuid.UUID, hotkey keyspec.KeySpec) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	index, err := e.registry.IndexOf(id)
	if err != nil {
		return -1, err
	}
	return index, e.registry.SetHotkey(index, hotkey)
}

// IndexOf resolves a stable macro ID to its current index.
func (e *Engine) IndexOf(id uuid.UUID) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.IndexOf(id)
}

// DisplayName returns the label of the hotkey bound to the macro at index.
func (e *Engine) DisplayName(index int) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.KeyName(index)
}

// Len returns the number of macros.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Len()
}

// Entries returns a snapshot of every macro in index order.
func (e *Engine) Entries() []macro.Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Entries()
}

// LoadFile replaces the registry with the macros stored at path. On any
// read or parse error the registry is left unchanged and the error is
// logged and returned; it is never fatal.
func (e *Engine) LoadFile(path string) error {
	entries, err := macro.Load(path)
	if err != nil {
		log.Printf("Engine: unable to read %s: %v", path, err)
		return err
	}

	e.mu.Lock()
	e.registry.Replace(entries)
	e.mu.Unlock()

	log.Printf("Engine: loaded %d macros from %s", len(entries), path)
	return nil
}

// SaveFile writes the current macros to path.
func (e *Engine) SaveFile(path string) error {
	entries := e.Entries()
	if err := macro.Save(path, entries); err != nil {
		return fmt.Errorf("failed to save macros to '%s': %w", path, err)
	}
	log.Printf("Engine: saved %d macros to %s", len(entries), path)
	return nil
}
