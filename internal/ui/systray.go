package ui

import (
	"fmt"
	"log"
	"sync"

	"github.com/getlantern/systray"
	"github.com/google/uuid"
)

// MacroItem is one macro as shown in the tray menu.
type MacroItem struct {
	ID     uuid.UUID
	Name   string
	Hotkey string
}

func (m MacroItem) title() string {
	name := m.Name
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("%s [%s]", name, m.Hotkey)
}

// TrayCallbacks are invoked from menu click goroutines. Nil callbacks are
// skipped.
type TrayCallbacks struct {
	OnTogglePlayback func(enabled bool)
	OnAddMacro       func()
	OnRebind         func(id uuid.UUID)
	OnRename         func(id uuid.UUID)
	OnEditText       func(id uuid.UUID)
	OnRemove         func(id uuid.UUID)
	OnSave           func()
	OnReload         func()
	OnOpenMacroFile  func()
	OnViewLastSave   func()
	OnStoreSecret    func()
	OnQuit           func()
}

// SystrayManager handles the system tray icon and menu.
type SystrayManager struct {
	version   string
	icon      []byte
	callbacks TrayCallbacks

	mu         sync.Mutex
	ready      bool
	macros     []MacroItem
	enabled    bool
	miEnabled  *systray.MenuItem
	miMacros   *systray.MenuItem
	macroItems []*systray.MenuItem
	generation int
}

// NewSystrayManager creates a new system tray manager. icon may be nil.
func NewSystrayManager(version string, icon []byte, callbacks TrayCallbacks) *SystrayManager {
	return &SystrayManager{
		version:   version,
		icon:      icon,
		callbacks: callbacks,
		enabled:   true,
	}
}

// Run initializes and starts the system tray. It blocks until Quit.
func (s *SystrayManager) Run() {
	systray.Run(s.onReady, s.onExit)
}

// Quit stops the tray loop and makes Run return.
func (s *SystrayManager) Quit() {
	systray.Quit()
}

// SetMacros replaces the macro submenu entries.
func (s *SystrayManager) SetMacros(items []MacroItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.macros = append([]MacroItem(nil), items...)
	if s.ready {
		s.rebuildMacroMenuLocked()
	}
}

// SetPlaybackEnabled updates the check mark on the playback toggle.
func (s *SystrayManager) SetPlaybackEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
	if s.miEnabled != nil {
		if enabled {
			s.miEnabled.Check()
		} else {
			s.miEnabled.Uncheck()
		}
	}
}

func (s *SystrayManager) onReady() {
	title := fmt.Sprintf("Macro Manager %s", s.version)
	systray.SetTitle("Macro Manager")
	systray.SetTooltip(title)
	if len(s.icon) > 0 {
		systray.SetIcon(s.icon)
	}

	miVersion := systray.AddMenuItem(fmt.Sprintf("Version: %s", s.version), "Macro Manager version")
	miVersion.Disable()
	systray.AddSeparator()

	s.mu.Lock()
	s.miEnabled = systray.AddMenuItemCheckbox("Macros enabled", "Play macros when their hotkey is pressed", s.enabled)
	s.miMacros = systray.AddMenuItem("Macros", "Edit recorded macros")
	s.ready = true
	s.rebuildMacroMenuLocked()
	s.mu.Unlock()

	miAdd := systray.AddMenuItem("Add Macro...", "Create a new macro and record its hotkey")
	systray.AddSeparator()
	miSave := systray.AddMenuItem("Save Macros", "Write macros to the macro file")
	miReload := systray.AddMenuItem("Reload Macros", "Re-read the macro file")
	miOpen := systray.AddMenuItem("Open Macro File", "Open the macro file in the default editor")
	miLastSave := systray.AddMenuItem("View Last Save Changes", "Show what the last save changed")
	miSecret := systray.AddMenuItem("Store Secret...", "Store a value for {{secret:NAME}} placeholders")
	systray.AddSeparator()
	miQuit := systray.AddMenuItem("Quit", "Exit the application")

	go func() {
		for range s.miEnabled.ClickedCh {
			s.mu.Lock()
			enabled := !s.enabled
			s.mu.Unlock()
			s.SetPlaybackEnabled(enabled)
			log.Printf("Tray: playback toggled to %t", enabled)
			if s.callbacks.OnTogglePlayback != nil {
				s.callbacks.OnTogglePlayback(enabled)
			}
		}
	}()
	s.forward(miAdd, "Add Macro", s.callbacks.OnAddMacro)
	s.forward(miSave, "Save Macros", s.callbacks.OnSave)
	s.forward(miReload, "Reload Macros", s.callbacks.OnReload)
	s.forward(miOpen, "Open Macro File", s.callbacks.OnOpenMacroFile)
	s.forward(miLastSave, "View Last Save Changes", s.callbacks.OnViewLastSave)
	s.forward(miSecret, "Store Secret", s.callbacks.OnStoreSecret)

	go func() {
		<-miQuit.ClickedCh
		log.Println("Tray: Quit clicked.")
		if s.callbacks.OnQuit != nil {
			s.callbacks.OnQuit()
		}
		systray.Quit()
	}()

	log.Println("Systray ready and menu configured.")
}

func (s *SystrayManager) onExit() {
	log.Println("Systray exiting.")
}

func (s *SystrayManager) forward(item *systray.MenuItem, label string, fn func()) {
	if fn == nil {
		item.Disable()
		return
	}
	go func() {
		for range item.ClickedCh {
			log.Printf("Tray: '%s' clicked.", label)
			fn()
		}
	}()
}

// rebuildMacroMenuLocked hides the previous macro entries and adds fresh
// ones. systray cannot remove items, so stale entries stay hidden and
// their goroutines exit on the generation check.
func (s *SystrayManager) rebuildMacroMenuLocked() {
	for _, item := range s.macroItems {
		item.Hide()
	}
	s.macroItems = nil
	s.generation++
	gen := s.generation

	if len(s.macros) == 0 {
		empty := s.miMacros.AddSubMenuItem("(no macros)", "Use Add Macro to create one")
		empty.Disable()
		s.macroItems = append(s.macroItems, empty)
		return
	}

	for _, m := range s.macros {
		parent := s.miMacros.AddSubMenuItem(m.title(), "Macro actions")
		s.macroItems = append(s.macroItems, parent)

		s.macroAction(parent, gen, m.ID, "Rebind Hotkey", s.callbacks.OnRebind)
		s.macroAction(parent, gen, m.ID, "Rename...", s.callbacks.OnRename)
		s.macroAction(parent, gen, m.ID, "Edit Text...", s.callbacks.OnEditText)
		s.macroAction(parent, gen, m.ID, "Remove", s.callbacks.OnRemove)
	}
}

func (s *SystrayManager) macroAction(parent *systray.MenuItem, gen int, id uuid.UUID, label string, fn func(uuid.UUID)) {
	item := parent.AddSubMenuItem(label, "")
	if fn == nil {
		item.Disable()
		return
	}
	go func() {
		for range item.ClickedCh {
			s.mu.Lock()
			stale := gen != s.generation
			s.mu.Unlock()
			if stale {
				return
			}
			log.Printf("Tray: '%s' clicked for macro %s", label, id)
			fn(id)
		}
	}()
}
