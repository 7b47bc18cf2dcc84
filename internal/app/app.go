package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/TanaroSch/macro-manager/internal/config"
	"github.com/TanaroSch/macro-manager/internal/engine"
	"github.com/TanaroSch/macro-manager/internal/hotkey"
	"github.com/TanaroSch/macro-manager/internal/input"
	"github.com/TanaroSch/macro-manager/internal/macro"
	"github.com/TanaroSch/macro-manager/internal/resources"
	"github.com/TanaroSch/macro-manager/internal/secrets"
	"github.com/TanaroSch/macro-manager/internal/ui"
	"github.com/TanaroSch/macro-manager/internal/watcher"
)

const appName = "Macro Manager"

// Application wires the engine to the OS hook, control hotkeys, the macro
// file watcher and the tray menu.
type Application struct {
	config    *config.Config
	version   string
	macroPath string

	engine  *engine.Engine
	learner *learner
	keyring *secrets.KeyringStore
	dialogs ui.Dialogs

	hotkeyManager  *hotkey.Manager
	systrayManager *ui.SystrayManager
	hook           *input.HookSource
	watcher        *watcher.Watcher

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.Mutex
	lastSave savedVersions

	shutdownOnce sync.Once
}

// savedVersions holds the macro file text around the last save.
type savedVersions struct {
	before, after string
	ok            bool
}

// New creates an application for the given settings and macro file.
func New(cfg *config.Config, macroPath, version string) *Application {
	ctx, cancel := context.WithCancel(context.Background())
	a := &Application{
		config:    cfg,
		version:   version,
		macroPath: macroPath,
		dialogs:   ui.Dialogs{AppName: appName},
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	var opts []engine.Option
	opts = append(opts, engine.WithSettleDelay(cfg.SettleDelay()))
	if cfg.ExpandSecrets {
		if store, err := secrets.OpenKeyring(cfg.KeyringService); err != nil {
			log.Printf("Warning: secret expansion disabled: %v", err)
			ui.ShowAdminNotification(ui.LevelWarn, "Secrets Unavailable", "The keyring could not be opened. Placeholders will be typed as is.")
		} else {
			a.keyring = store
			opts = append(opts, engine.WithExpander(secrets.NewExpander(store)))
		}
	}

	a.learner = &learner{
		bound:    a.onHotkeyBound,
		rejected: a.onHotkeyRejected,
		lost: func() {
			ui.ShowAdminNotification(ui.LevelWarn, "Hotkey Not Set", "The macro was removed before a key was pressed.")
		},
	}
	a.engine = engine.New(a.learner, newInjector(cfg.Playback), opts...)
	a.learner.eng = a.engine

	icon, err := resources.GetIcon()
	if err != nil {
		log.Printf("Warning: Failed to load embedded icon: %v", err)
	}
	a.systrayManager = ui.NewSystrayManager(version, icon, ui.TrayCallbacks{
		OnTogglePlayback: a.setPlaybackEnabled,
		OnAddMacro:       a.onAddMacro,
		OnRebind:         a.onRebind,
		OnRename:         a.onRename,
		OnEditText:       a.onEditText,
		OnRemove:         a.onRemove,
		OnSave:           a.onSave,
		OnReload:         a.onReload,
		OnOpenMacroFile:  a.onOpenMacroFile,
		OnViewLastSave:   a.onViewLastSave,
		OnStoreSecret:    a.onStoreSecret,
		OnQuit:           a.Shutdown,
	})
	a.hotkeyManager = hotkey.NewManager(hotkey.SelectBackend())

	return a
}

// newInjector returns the emitter for the configured playback method.
func newInjector(pc config.PlaybackConfig) engine.Injector {
	if pc.Method == config.MethodPaste {
		log.Println("App: playback by clipboard paste")
		return input.NewPaster()
	}
	log.Printf("App: playback by typing (key delay %d ms)", pc.KeyDelayMs)
	return input.NewTyper(pc.KeyDelayMs)
}

// Run loads the macros, starts listening and blocks in the tray loop
// until the user quits or Shutdown is called.
func (a *Application) Run() {
	if err := a.engine.LoadFile(a.macroPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("App: macro file %s does not exist yet, starting empty", a.macroPath)
		} else {
			ui.ShowAdminNotification(ui.LevelWarn, "Macros Not Loaded", fmt.Sprintf("Could not read %s: %v", a.macroPath, err))
		}
	}
	a.logSecretReferences()
	a.refreshTray()

	a.hook = input.StartHook()
	go func() {
		defer close(a.done)
		_ = a.engine.Run(a.ctx, a.hook.Events())
	}()

	if err := a.hotkeyManager.RegisterAll(a.controlActions()); err != nil {
		log.Printf("Warning: Failed to register some hotkeys: %v", err)
		if !errors.Is(err, hotkey.ErrBackendNotAvailable) {
			ui.ShowAdminNotification(ui.LevelWarn, "Hotkey Registration Issue", fmt.Sprintf("Some hotkeys could not be registered: %v", err))
		}
	}

	if a.config.WatchMacroFile {
		w, err := watcher.Start(a.macroPath, watcher.DefaultDebounce, a.onMacroFileChanged)
		if err != nil {
			log.Printf("Warning: not watching %s: %v", a.macroPath, err)
		} else {
			a.watcher = w
		}
	}

	// Blocks until systray.Quit.
	a.systrayManager.Run()
	a.Shutdown()
}

// Quit asks the tray loop to stop, which makes Run return.
func (a *Application) Quit() {
	a.systrayManager.Quit()
}

// Shutdown stops the hook, hotkeys and watcher. It is safe to call more
// than once.
func (a *Application) Shutdown() {
	a.shutdownOnce.Do(func() {
		log.Println("App: shutting down")
		a.learner.Cancel()
		a.cancel()
		a.hotkeyManager.UnregisterAll()
		if a.watcher != nil {
			_ = a.watcher.Close()
		}
		if a.hook != nil {
			_ = a.hook.Close()
			select {
			case <-a.done:
			case <-time.After(2 * time.Second):
				log.Println("App: engine did not stop in time")
			}
		}
	})
}

func (a *Application) controlActions() []hotkey.Action {
	return []hotkey.Action{
		{Name: "Toggle macro playback", Hotkey: a.config.Hotkeys.TogglePlayback, Run: func() {
			a.setPlaybackEnabled(!a.engine.PlaybackEnabled())
		}},
		{Name: "Reload macros", Hotkey: a.config.Hotkeys.ReloadMacros, Run: a.onReload},
		{Name: "Save macros", Hotkey: a.config.Hotkeys.SaveMacros, Run: a.onSave},
	}
}

func (a *Application) setPlaybackEnabled(enabled bool) {
	a.learner.Cancel()
	a.engine.SetPlaybackEnabled(enabled)
	a.systrayManager.SetPlaybackEnabled(enabled)

	status := map[bool]string{true: "enabled", false: "disabled"}[enabled]
	ui.ShowAdminNotification(ui.LevelInfo, "Macros "+status, fmt.Sprintf("Macro playback %s.", status))
}

func (a *Application) refreshTray() {
	a.systrayManager.SetMacros(macroItems(a.engine.Entries()))
}

// macroItems converts registry entries into tray entries.
func macroItems(entries []macro.Entry) []ui.MacroItem {
	items := make([]ui.MacroItem, len(entries))
	for i, e := range entries {
		items[i] = ui.MacroItem{ID: e.ID, Name: e.Name, Hotkey: macro.KeyName(e.Hotkey)}
	}
	return items
}

// secretReferences returns the sorted, unique secret names used by
// entries.
func secretReferences(entries []macro.Entry) []string {
	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		for _, name := range secrets.Names(e.Text) {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

func (a *Application) logSecretReferences() {
	names := secretReferences(a.engine.Entries())
	if len(names) == 0 {
		return
	}
	if !a.config.ExpandSecrets {
		log.Printf("App: macros reference %d secret(s) but expand_secrets is off: %v", len(names), names)
		return
	}
	log.Printf("App: macros reference %d secret(s): %v", len(names), names)
	if a.keyring == nil {
		return
	}
	for _, name := range names {
		if _, err := a.keyring.Get(name); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}
