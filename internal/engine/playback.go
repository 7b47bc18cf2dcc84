package engine

import (
	"errors"
	"fmt"
	"log"
	"time"
)

var (
	// ErrNoInjector is returned when playback is requested without an Injector.
	ErrNoInjector = errors.New("no keystroke injector configured")
	// ErrBusy is returned when a playback is already in flight.
	ErrBusy = errors.New("a macro is already being typed")
)

// Injector emits synthetic keystrokes through the OS input facility.
type Injector interface {
	// Type emits key down/up events reproducing every character of text,
	// in order. It returns once emission has finished.
	Type(text string) error
}

// Expander rewrites macro text just before it is typed.
type Expander interface {
	Expand(text string) string
}

type player struct {
	injector Injector
	expander Expander
	// settle keeps the typing guard held after emission so synthetic
	// keystrokes the OS hook reports late are still dropped.
	settle time.Duration
}

// emit types text. A panic inside the injector is reported as an error.
func (p *player) emit(text string) (err error) {
	if p.injector == nil {
		return ErrNoInjector
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("injector panicked: %v", r)
		}
	}()

	if p.expander != nil {
		text = p.expander.Expand(text)
	}
	if err := p.injector.Type(text); err != nil {
		return fmt.Errorf("failed to type macro: %w", err)
	}
	if p.settle > 0 {
		time.Sleep(p.settle)
	}
	return nil
}

// playGuarded emits text and clears the typing flag on every exit path.
// The caller must already have set typing while holding e.mu.
func (e *Engine) playGuarded(text string) error {
	defer func() {
		e.mu.Lock()
		e.mode.typing = false
		e.mu.Unlock()
	}()

	err := e.player.emit(text)
	if err != nil {
		log.Printf("Engine: playback failed: %v", err)
	}
	return err
}

// Play types text under the typing guard. It fails with ErrBusy if a
// playback is already in flight.
func (e *Engine) Play(text string) error {
	e.mu.Lock()
	if e.mode.typing {
		e.mu.Unlock()
		return ErrBusy
	}
	e.mode.typing = true
	e.mu.Unlock()

	return e.playGuarded(text)
}
