package app

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/TanaroSch/macro-manager/internal/engine"
	"github.com/TanaroSch/macro-manager/internal/keyspec"
	"github.com/TanaroSch/macro-manager/internal/macro"
)

// learner binds the next key press to one macro. It implements
// engine.Listener; the engine only calls it while playback is suspended.
type learner struct {
	eng *engine.Engine

	mu      sync.Mutex
	active  bool
	target  uuid.UUID
	restore bool

	// bound is called after the target received key at index.
	bound func(index int, key keyspec.KeySpec)
	// rejected is called when the pressed key already belongs to owner,
	// the macro that was at index when the key matched.
	rejected func(index int, owner macro.Entry)
	// lost is called when the target was removed before a key arrived.
	lost func()
}

// Begin suspends playback and waits for a key for the macro id. A
// running session is replaced.
func (l *learner) Begin(id uuid.UUID) {
	l.mu.Lock()
	if !l.active {
		l.restore = l.eng.PlaybackEnabled()
	}
	l.active = true
	l.target = id
	l.mu.Unlock()

	l.eng.SetPlaybackEnabled(false)
	log.Printf("App: waiting for a new hotkey for macro %s", id)
}

// Cancel ends a running session and restores playback.
func (l *learner) Cancel() {
	if _, ok := l.end(); ok {
		log.Println("App: hotkey learning canceled")
	}
}

// Active reports whether a session is running.
func (l *learner) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

// end closes the session, restoring the playback state it found.
func (l *learner) end() (uuid.UUID, bool) {
	l.mu.Lock()
	if !l.active {
		l.mu.Unlock()
		return uuid.Nil, false
	}
	id, restore := l.target, l.restore
	l.active = false
	l.target = uuid.Nil
	l.mu.Unlock()

	l.eng.SetPlaybackEnabled(restore)
	return id, true
}

// OnNewKey implements engine.Listener.
func (l *learner) OnNewKey(key keyspec.KeySpec) {
	id, ok := l.end()
	if !ok {
		return
	}

	index, err := l.eng.SetHotkeyByID(id, key)
	if err != nil {
		log.Printf("App: macro %s disappeared before its hotkey was set: %v", id, err)
		if l.lost != nil {
			l.lost()
		}
		return
	}
	log.Printf("App: macro %d bound to %s", index, key)
	if l.bound != nil {
		l.bound(index, key)
	}
}

// OnUsedKey implements engine.Listener. The engine prefers OnUsedEntry.
func (l *learner) OnUsedKey(index int) {
	owner, _ := l.eng.Macro(index)
	l.OnUsedEntry(index, owner)
}

// OnUsedEntry implements engine.EntryListener.
func (l *learner) OnUsedEntry(index int, owner macro.Entry) {
	if _, ok := l.end(); !ok {
		return
	}
	log.Printf("App: key already used by macro %d", index)
	if l.rejected != nil {
		l.rejected(index, owner)
	}
}
