// Package engine turns global key presses into macro playback.
//
// An Engine owns the macro registry and two mode flags. Key presses from
// the OS listener are handled one at a time by HandleKey (or Run):
//
//   - listening (playback enabled, nothing typing): a matching hotkey types
//     its macro text through the Injector; other keys are ignored.
//   - typing: every key is dropped, including the engine's own synthetic
//     keystrokes. Run discards them as they arrive instead of queueing them
//     behind the playback.
//   - learning (playback disabled): a key that is already bound is reported
//     to Listener.OnUsedKey, or with the owning entry to
//     EntryListener.OnUsedEntry; any other key goes to Listener.OnNewKey.
//
// All registry and flag access goes through a single mutex so the editing
// surface may call Engine methods from its own goroutine. Listener
// callbacks and keystroke injection run without the lock held.
package engine
