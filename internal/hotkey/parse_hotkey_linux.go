//go:build linux

package hotkey

import (
	"fmt"

	"golang.design/x/hotkey"
)

// parseHotkey converts a string hotkey combination (e.g., "ctrl+alt+m")
// into golang.design/x/hotkey modifiers and key.
//
// On X11 Alt is Mod1 and Super is Mod4.
func parseHotkey(hotkeyStr string) ([]hotkey.Modifier, hotkey.Key, error) {
	names, keyStr, err := splitHotkey(hotkeyStr)
	if err != nil {
		return nil, 0, err
	}

	var modifiers []hotkey.Modifier
	for _, part := range names {
		switch part {
		case "ctrl":
			modifiers = append(modifiers, hotkey.ModCtrl)
		case "alt":
			modifiers = append(modifiers, hotkey.Mod1)
		case "shift":
			modifiers = append(modifiers, hotkey.ModShift)
		case "super", "win", "cmd":
			modifiers = append(modifiers, hotkey.Mod4)
		default:
			return nil, 0, fmt.Errorf("unsupported modifier: %s", part)
		}
	}

	return modifiers, KeyMap[keyStr], nil
}
