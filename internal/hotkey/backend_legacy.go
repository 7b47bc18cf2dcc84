package hotkey

import (
	"fmt"
	"log"
	"sync"

	"golang.design/x/hotkey"
)

// LegacyBackend registers global hotkeys through golang.design/x/hotkey.
// It supports Windows, macOS and X11. Wayland has no global grab.
type LegacyBackend struct {
	mu             sync.Mutex
	registeredKeys map[string]*legacyHotkey
	displayServer  DisplayServer
}

// NewLegacyBackend creates a backend for the detected display server.
func NewLegacyBackend() *LegacyBackend {
	ds := DetectDisplayServer()
	log.Printf("Hotkeys: detected display server: %s", ds)

	return &LegacyBackend{
		registeredKeys: make(map[string]*legacyHotkey),
		displayServer:  ds,
	}
}

func (b *LegacyBackend) Name() string {
	return "golang.design/x/hotkey"
}

func (b *LegacyBackend) IsAvailable() bool {
	switch b.displayServer {
	case DisplayServerWindows, DisplayServerX11, DisplayServerMacOS:
		return true
	default:
		return false
	}
}

// Register grabs hotkeyStr. On X11 every lock-key variant of the
// modifier set is grabbed and their events are merged.
func (b *LegacyBackend) Register(hotkeyStr string) (RegisteredHotkey, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if existing, exists := b.registeredKeys[hotkeyStr]; exists {
		return existing, nil
	}

	modifiers, key, err := parseHotkey(hotkeyStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse hotkey '%s': %w", hotkeyStr, err)
	}

	wrapped := &legacyHotkey{
		hotkeyStr: hotkeyStr,
		keydownCh: make(chan struct{}),
		stopCh:    make(chan struct{}),
	}

	for i, mods := range expandModifiers(modifiers) {
		hk := hotkey.New(mods, key)
		if err := hk.Register(); err != nil {
			if i == 0 {
				wrapped.Close()
				return nil, fmt.Errorf("failed to register hotkey '%s': %w", hotkeyStr, err)
			}
			// Lock-key variants are best effort.
			log.Printf("Hotkeys: variant %d of '%s' not registered: %v", i, hotkeyStr, err)
			continue
		}
		wrapped.hotkeys = append(wrapped.hotkeys, hk)
	}

	wrapped.startEventConverter()

	b.registeredKeys[hotkeyStr] = wrapped
	return wrapped, nil
}

func (b *LegacyBackend) Unregister(hotkeyStr string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	hk, exists := b.registeredKeys[hotkeyStr]
	if !exists {
		return nil
	}
	delete(b.registeredKeys, hotkeyStr)
	return hk.Close()
}

func (b *LegacyBackend) UnregisterAll() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for hotkeyStr, hk := range b.registeredKeys {
		if err := hk.Close(); err != nil {
			log.Printf("Hotkeys: error unregistering '%s': %v", hotkeyStr, err)
		}
	}
	b.registeredKeys = make(map[string]*legacyHotkey)
	return nil
}

// legacyHotkey merges the Keydown channels of one or more grabs.
type legacyHotkey struct {
	hotkeys   []*hotkey.Hotkey
	hotkeyStr string
	keydownCh chan struct{}
	stopCh    chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func (lh *legacyHotkey) Keydown() <-chan struct{} {
	return lh.keydownCh
}

func (lh *legacyHotkey) startEventConverter() {
	for _, hk := range lh.hotkeys {
		lh.wg.Add(1)
		go func(hk *hotkey.Hotkey) {
			defer lh.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("RECOVERED FROM PANIC IN HOTKEY CONVERTER (%s): %v", lh.hotkeyStr, r)
				}
			}()

			for {
				select {
				case <-lh.stopCh:
					return
				case <-hk.Keydown():
					select {
					case lh.keydownCh <- struct{}{}:
					case <-lh.stopCh:
						return
					}
				}
			}
		}(hk)
	}

	go func() {
		lh.wg.Wait()
		close(lh.keydownCh)
	}()
}

// Close stops the converters and ungrabs every variant.
func (lh *legacyHotkey) Close() error {
	var firstErr error
	lh.closeOnce.Do(func() {
		close(lh.stopCh)
		for _, hk := range lh.hotkeys {
			if err := hk.Unregister(); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("failed to unregister hotkey '%s': %w", lh.hotkeyStr, err)
			}
		}
	})
	return firstErr
}

// SelectBackend returns the legacy backend when the display server can
// grab global keys, or nil otherwise.
func SelectBackend() Backend {
	backend := NewLegacyBackend()
	if backend.IsAvailable() {
		log.Printf("Hotkeys: using %s on %s", backend.Name(), backend.displayServer)
		return backend
	}

	if backend.displayServer == DisplayServerWayland {
		log.Println("Hotkeys: Wayland has no global key grab, control hotkeys disabled")
		log.Println("Hotkeys: macros still work through the tray menu")
	} else {
		log.Printf("Hotkeys: unsupported display server %s, control hotkeys disabled", backend.displayServer)
	}
	return nil
}
