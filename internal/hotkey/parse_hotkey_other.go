//go:build !linux && !windows && !darwin

package hotkey

import (
	"errors"

	"golang.design/x/hotkey"
)

func parseHotkey(hotkeyStr string) ([]hotkey.Modifier, hotkey.Key, error) {
	return nil, 0, errors.New("hotkeys are not supported on this OS")
}
