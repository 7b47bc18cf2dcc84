package engine

import (
	"context"
	"log"

	"github.com/TanaroSch/macro-manager/internal/macro"
)

// Outcome describes what HandleKey did with an event.
type Outcome int

const (
	// OutcomeIgnored: listening, but the key is not a hotkey.
	OutcomeIgnored Outcome = iota
	// OutcomePlayed: a macro was typed.
	OutcomePlayed
	// OutcomeDropped: a macro was being typed, the event was discarded.
	OutcomeDropped
	// OutcomeUsedKey: learning, the key is already bound.
	OutcomeUsedKey
	// OutcomeNewKey: learning, the key is free.
	OutcomeNewKey
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayed:
		return "played"
	case OutcomeDropped:
		return "dropped"
	case OutcomeUsedKey:
		return "used-key"
	case OutcomeNewKey:
		return "new-key"
	default:
		return "ignored"
	}
}

// HandleKey routes one key press. It blocks while a matched macro is typed.
func (e *Engine) HandleKey(ev KeyEvent) Outcome {
	e.mu.Lock()

	if e.mode.listeningActive() {
		index, ok := Match(ev, e.registry.Hotkeys())
		if !ok {
			e.mu.Unlock()
			return OutcomeIgnored
		}
		entry, _ := e.registry.Get(index)
		e.mode.typing = true
		e.mu.Unlock()

		_ = e.playGuarded(entry.Text)
		return OutcomePlayed
	}

	if e.mode.typing {
		e.mu.Unlock()
		return OutcomeDropped
	}

	index, ok := Match(ev, e.registry.Hotkeys())
	var owner macro.Entry
	if ok {
		owner, _ = e.registry.Get(index)
	}
	e.mu.Unlock()

	if ok {
		if el, isEntry := e.listener.(EntryListener); isEntry {
			el.OnUsedEntry(index, owner)
		} else {
			e.listener.OnUsedKey(index)
		}
		return OutcomeUsedKey
	}
	e.listener.OnNewKey(ev.Key)
	return OutcomeNewKey
}

// Run handles events in arrival order until ctx is cancelled or events is
// closed. Events that arrive while a macro is being typed, including the
// engine's own synthetic keystrokes, are discarded as they arrive rather
// than queued behind the playback.
func (e *Engine) Run(ctx context.Context, events <-chan KeyEvent) error {
	log.Println("Engine: listening for key presses")
	accepted := make(chan KeyEvent)
	go e.admit(ctx, events, accepted)

	for {
		select {
		case <-ctx.Done():
			// Wait for admit so no reader of events outlives Run.
			for range accepted {
			}
			log.Println("Engine: stopped")
			return ctx.Err()
		case ev, ok := <-accepted:
			if !ok {
				if err := ctx.Err(); err != nil {
					log.Println("Engine: stopped")
					return err
				}
				log.Println("Engine: key event source closed")
				return nil
			}
			e.HandleKey(ev)
		}
	}
}

// admit forwards events from src to dst. It keeps draining src while
// HandleKey is blocked in playback and drops what arrives during typing.
func (e *Engine) admit(ctx context.Context, src <-chan KeyEvent, dst chan<- KeyEvent) {
	defer close(dst)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-src:
			if !ok {
				return
			}
			if e.IsTyping() {
				continue
			}
			select {
			case dst <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}
