package hotkey

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// Action is a control hotkey: a key combination string such as "ctrl+alt+m"
// and the function it triggers.
type Action struct {
	Name   string
	Hotkey string
	Run    func()
}

// Manager handles registration and lifecycle of the control hotkeys.
type Manager struct {
	backend Backend

	mu         sync.Mutex
	registered map[string]RegisteredHotkey
}

// NewManager creates a manager on top of backend. A nil backend yields a
// manager that logs and registers nothing.
func NewManager(backend Backend) *Manager {
	return &Manager{
		backend:    backend,
		registered: make(map[string]RegisteredHotkey),
	}
}

// RegisterAll replaces the registered hotkeys with actions. Actions with
// an empty hotkey are skipped. Every action is attempted; the returned
// error joins all failures.
func (m *Manager) RegisterAll(actions []Action) error {
	m.UnregisterAll()

	if m.backend == nil {
		log.Println("Hotkeys: no backend available, control hotkeys disabled")
		return ErrBackendNotAvailable
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for _, action := range actions {
		if action.Hotkey == "" {
			log.Printf("Hotkeys: '%s' has no hotkey configured, skipping", action.Name)
			continue
		}
		if _, exists := m.registered[action.Hotkey]; exists {
			errs = append(errs, fmt.Errorf("hotkey '%s' for '%s' is already used by another action", action.Hotkey, action.Name))
			continue
		}

		rh, err := m.backend.Register(action.Hotkey)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to register hotkey '%s' for '%s': %w", action.Hotkey, action.Name, err))
			continue
		}
		m.registered[action.Hotkey] = rh

		go func(action Action, rh RegisteredHotkey) {
			for range rh.Keydown() {
				log.Printf("Hotkey '%s' pressed: %s", action.Hotkey, action.Name)
				if action.Run != nil {
					action.Run()
				}
			}
		}(action, rh)

		log.Printf("Registered hotkey '%s' for: %s", action.Hotkey, action.Name)
	}

	return errors.Join(errs...)
}

// UnregisterAll unregisters all currently registered hotkeys.
func (m *Manager) UnregisterAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil && len(m.registered) > 0 {
		if err := m.backend.UnregisterAll(); err != nil {
			log.Printf("Hotkeys: error unregistering: %v", err)
		}
	}
	m.registered = make(map[string]RegisteredHotkey)
}
