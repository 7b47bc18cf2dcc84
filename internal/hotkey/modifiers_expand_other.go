//go:build !linux

package hotkey

import "golang.design/x/hotkey"

// expandModifiers returns the modifier sets to register for one hotkey.
// Only X11 needs lock-key variants.
func expandModifiers(modifiers []hotkey.Modifier) [][]hotkey.Modifier {
	return [][]hotkey.Modifier{modifiers}
}
