package app

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TanaroSch/macro-manager/internal/diffutil"
	"github.com/TanaroSch/macro-manager/internal/keyspec"
	"github.com/TanaroSch/macro-manager/internal/macro"
	"github.com/TanaroSch/macro-manager/internal/secrets"
	"github.com/TanaroSch/macro-manager/internal/ui"
)

// onAddMacro asks for a name and text, appends the macro unbound and
// starts learning its hotkey.
func (a *Application) onAddMacro() {
	name, err := a.dialogs.PromptText("Add Macro", "Macro name:", "")
	if err != nil {
		return
	}
	text, err := a.dialogs.PromptMacroText("Add Macro", "")
	if err != nil {
		return
	}

	index := a.engine.AddMacro(keyspec.KeySpec{}, text, strings.TrimSpace(name))
	entry, err := a.engine.Macro(index)
	if err != nil {
		log.Printf("App: new macro vanished: %v", err)
		return
	}
	a.refreshTray()
	a.beginLearning(entry)
}

func (a *Application) onRebind(id uuid.UUID) {
	entry, ok := a.entryByID(id)
	if !ok {
		return
	}
	a.beginLearning(entry)
}

func (a *Application) beginLearning(entry macro.Entry) {
	a.learner.Begin(entry.ID)
	a.systrayManager.SetPlaybackEnabled(false)
	ui.ShowAdminNotification(ui.LevelInfo, "Press a Key", fmt.Sprintf("Press the key that should play '%s'.", displayName(entry)))
}

func (a *Application) onHotkeyBound(index int, key keyspec.KeySpec) {
	a.systrayManager.SetPlaybackEnabled(a.engine.PlaybackEnabled())
	a.refreshTray()
	ui.ShowAdminNotification(ui.LevelInfo, "Hotkey Set", fmt.Sprintf("Macro %d now plays on %s.", index+1, macro.KeyName(key)))
}

func (a *Application) onHotkeyRejected(index int, owner macro.Entry) {
	a.systrayManager.SetPlaybackEnabled(a.engine.PlaybackEnabled())
	// The hook goroutine must not block on a modal dialog.
	go a.dialogs.Error("Already Used", rejectedMessage(index, owner))
}

// rejectedMessage names the key and the macro that owned it at match time.
func rejectedMessage(index int, owner macro.Entry) string {
	who := fmt.Sprintf("macro %d", index+1)
	if owner.ID != uuid.Nil {
		who = "'" + displayName(owner) + "'"
	}
	return fmt.Sprintf("%s is already used by %s.", macro.KeyName(owner.Hotkey), who)
}

func (a *Application) onRename(id uuid.UUID) {
	entry, ok := a.entryByID(id)
	if !ok {
		return
	}
	name, err := a.dialogs.PromptText("Rename Macro", "Macro name:", entry.Name)
	if err != nil {
		return
	}
	a.editByID(id, func(index int) error { return a.engine.SetName(index, strings.TrimSpace(name)) })
}

func (a *Application) onEditText(id uuid.UUID) {
	entry, ok := a.entryByID(id)
	if !ok {
		return
	}
	text, err := a.dialogs.PromptMacroText("Edit "+displayName(entry), entry.Text)
	if err != nil {
		return
	}
	a.editByID(id, func(index int) error { return a.engine.SetText(index, text) })
}

func (a *Application) onRemove(id uuid.UUID) {
	entry, ok := a.entryByID(id)
	if !ok {
		return
	}
	if !a.dialogs.Confirm("Remove Macro", fmt.Sprintf("Remove '%s'?", displayName(entry))) {
		return
	}
	a.editByID(id, a.engine.RemoveMacro)
}

// editByID resolves id to its current index and applies edit. The index
// is looked up after any dialog closed since macros may have moved.
func (a *Application) editByID(id uuid.UUID, edit func(index int) error) {
	index, err := a.engine.IndexOf(id)
	if err == nil {
		err = edit(index)
	}
	if err != nil {
		log.Printf("App: edit of macro %s failed: %v", id, err)
		ui.ShowAdminNotification(ui.LevelWarn, "Macro Changed", "The macro was changed or removed meanwhile. Please try again.")
	}
	a.refreshTray()
}

func (a *Application) entryByID(id uuid.UUID) (macro.Entry, bool) {
	index, err := a.engine.IndexOf(id)
	if err == nil {
		var entry macro.Entry
		if entry, err = a.engine.Macro(index); err == nil {
			return entry, true
		}
	}
	log.Printf("App: macro %s not found: %v", id, err)
	ui.ShowAdminNotification(ui.LevelWarn, "Macro Not Found", "The macro no longer exists. The menu has been refreshed.")
	a.refreshTray()
	return macro.Entry{}, false
}

func displayName(e macro.Entry) string {
	if e.Name != "" {
		return e.Name
	}
	return "(unnamed)"
}

// onSave writes the macro file and reports what changed.
func (a *Application) onSave() {
	before, _ := os.ReadFile(a.macroPath)
	if a.watcher != nil {
		a.watcher.Suppress(time.Second)
	}

	if err := a.engine.SaveFile(a.macroPath); err != nil {
		log.Printf("Error: %v", err)
		ui.ShowAdminNotification(ui.LevelError, "Save Failed", err.Error())
		return
	}

	after, err := os.ReadFile(a.macroPath)
	if err != nil {
		log.Printf("App: could not re-read %s: %v", a.macroPath, err)
	}
	stats := diffutil.Compare(string(before), string(after))

	a.mu.Lock()
	a.lastSave = savedVersions{before: string(before), after: string(after), ok: true}
	a.mu.Unlock()

	ui.ShowAdminNotification(ui.LevelInfo, "Macros Saved", diffutil.Summary(stats))
}

// onReload re-reads the macro file. A failed read keeps the current macros.
func (a *Application) onReload() {
	a.reload(true)
}

func (a *Application) onMacroFileChanged() {
	a.reload(false)
}

func (a *Application) reload(manual bool) {
	if a.learner.Active() {
		a.learner.Cancel()
		a.systrayManager.SetPlaybackEnabled(a.engine.PlaybackEnabled())
	}

	if err := a.engine.LoadFile(a.macroPath); err != nil {
		ui.ShowAdminNotification(ui.LevelError, "Reload Failed", fmt.Sprintf("Keeping current macros: %v", err))
		return
	}
	a.logSecretReferences()
	a.refreshTray()

	title := "Macros Reloaded"
	if !manual {
		title = "Macro File Changed"
	}
	ui.ShowAdminNotification(ui.LevelInfo, title, fmt.Sprintf("%d macro(s) loaded.", a.engine.Len()))
}

func (a *Application) onOpenMacroFile() {
	if _, err := os.Stat(a.macroPath); errors.Is(err, os.ErrNotExist) {
		// Give the editor something to open.
		a.onSave()
	}
	if err := ui.OpenFileInDefaultApp(a.macroPath); err != nil {
		ui.ShowAdminNotification(ui.LevelError, "Open Failed", err.Error())
	}
}

func (a *Application) onViewLastSave() {
	a.mu.Lock()
	last := a.lastSave
	a.mu.Unlock()

	if !last.ok {
		ui.ShowAdminNotification(ui.LevelInfo, "View Changes", "Nothing has been saved yet.")
		return
	}
	if err := ui.ShowDiffViewer("Last macro save", last.before, last.after); err != nil {
		ui.ShowAdminNotification(ui.LevelError, "View Changes", err.Error())
	}
}

// onStoreSecret saves a value to the keyring for {{secret:NAME}}
// placeholders.
func (a *Application) onStoreSecret() {
	name, value, err := a.dialogs.PromptSecret()
	if err != nil {
		return
	}
	if !secrets.ValidName(name) {
		a.dialogs.Error("Store Secret", fmt.Sprintf("'%s' is not a valid secret name. Use letters, digits, '.', '_' or '-'.", name))
		return
	}

	store := a.keyring
	if store == nil {
		if store, err = secrets.OpenKeyring(a.config.KeyringService); err != nil {
			ui.ShowAdminNotification(ui.LevelError, "Keyring Error", err.Error())
			return
		}
	}
	if err := store.Set(name, value); err != nil {
		ui.ShowAdminNotification(ui.LevelError, "Keyring Error", err.Error())
		return
	}

	msg := fmt.Sprintf("Use {{secret:%s}} in macro text.", name)
	if !a.config.ExpandSecrets {
		msg += " Enable expand_secrets in the settings to use it."
	}
	ui.ShowAdminNotification(ui.LevelInfo, "Secret Stored", msg)
}
