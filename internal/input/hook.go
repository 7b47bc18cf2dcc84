package input

import (
	"log"
	"sync"

	hook "github.com/robotn/gohook"

	"github.com/TanaroSch/macro-manager/internal/engine"
)

// HookSource delivers global key presses from the OS hook as engine events,
// one at a time and in arrival order.
type HookSource struct {
	events chan engine.KeyEvent
	stopCh chan struct{}
	once   sync.Once
}

// StartHook installs the global keyboard hook and starts translating its
// key-press events. Call Close to remove the hook.
func StartHook() *HookSource {
	s := &HookSource{
		events: make(chan engine.KeyEvent, 64),
		stopCh: make(chan struct{}),
	}

	raw := hook.Start()
	log.Println("Input: global keyboard hook started")

	go func() {
		defer close(s.events)
		defer func() {
			if r := recover(); r != nil {
				log.Printf("RECOVERED FROM PANIC IN KEYBOARD HOOK: %v", r)
			}
		}()

		for {
			select {
			case <-s.stopCh:
				return
			case ev, ok := <-raw:
				if !ok {
					log.Println("Input: keyboard hook channel closed")
					return
				}
				// KeyHold is the physical press; KeyDown only carries typed
				// characters and never fires for keys like Home.
				if ev.Kind != hook.KeyHold {
					continue
				}
				select {
				case s.events <- translate(ev.Rawcode):
				case <-s.stopCh:
					return
				}
			}
		}
	}()

	return s
}

// Events returns the channel of translated key presses. It is closed when
// the hook stops.
func (s *HookSource) Events() <-chan engine.KeyEvent {
	return s.events
}

// Close removes the OS hook. It is safe to call more than once.
func (s *HookSource) Close() error {
	s.once.Do(func() {
		close(s.stopCh)
		hook.End()
		log.Println("Input: global keyboard hook stopped")
	})
	return nil
}
