package engine

import (
	"github.com/TanaroSch/macro-manager/internal/keyspec"
	"github.com/TanaroSch/macro-manager/internal/macro"
)

// KeyEvent is a single physical key press as reported by the OS listener.
type KeyEvent struct {
	// Key is the event's own identity, compared for raw equality.
	Key keyspec.KeySpec

	// Char is the literal character produced by the key, if any.
	Char    rune
	HasChar bool

	// VirtualCode is the platform key code, if the listener exposes one.
	VirtualCode int
	HasVirtual  bool
}

// CharEvent builds the event for a plain character key.
func CharEvent(r rune) KeyEvent {
	return KeyEvent{Key: keyspec.Char(r), Char: r, HasChar: true}
}

// Listener receives keys pressed while playback is disabled.
type Listener interface {
	// OnNewKey is called with a key that no macro is bound to.
	OnNewKey(key keyspec.KeySpec)
	// OnUsedKey is called with the index of the macro already bound to the
	// pressed key.
	OnUsedKey(index int)
}

// EntryListener is an optional extension of Listener. A listener that
// implements it receives the owning entry as it was when the key matched,
// in place of OnUsedKey. The index alone may name a different macro once
// the engine lock is released.
type EntryListener interface {
	OnUsedEntry(index int, entry macro.Entry)
}

type nopListener struct{}

func (nopListener) OnNewKey(keyspec.KeySpec) {}
func (nopListener) OnUsedKey(int)            {}
