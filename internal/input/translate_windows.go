//go:build windows

package input

import (
	"github.com/TanaroSch/macro-manager/internal/engine"
	"github.com/TanaroSch/macro-manager/internal/keyspec"
)

// Windows virtual-key codes with a symbolic name.
var namedVirtualKeys = map[uint16]string{
	0x08: "backspace",
	0x09: "tab",
	0x0D: "enter",
	0x10: "shift",
	0x11: "ctrl",
	0x12: "alt",
	0x13: "pause",
	0x14: "caps_lock",
	0x1B: "esc",
	0x20: "space",
	0x21: "page_up",
	0x22: "page_down",
	0x23: "end",
	0x24: "home",
	0x25: "left",
	0x26: "up",
	0x27: "right",
	0x28: "down",
	0x2C: "print_screen",
	0x2D: "insert",
	0x2E: "delete",
	0x5B: "cmd_l",
	0x5C: "cmd_r",
	0x5D: "menu",
	0x90: "num_lock",
	0x91: "scroll_lock",
	0xA0: "shift_l",
	0xA1: "shift_r",
	0xA2: "ctrl_l",
	0xA3: "ctrl_r",
	0xA4: "alt_l",
	0xA5: "alt_r",
}

const (
	vkF1  = 0x70
	vkF20 = 0x83
)

// translate converts a Windows virtual-key code into an engine event.
func translate(raw uint16) engine.KeyEvent {
	ev := engine.KeyEvent{VirtualCode: int(raw), HasVirtual: true}

	if name, ok := namedVirtualKeys[raw]; ok {
		ev.Key = keyspec.Named(name)
		return ev
	}
	if raw >= vkF1 && raw <= vkF20 {
		ev.Key = keyspec.Named(functionKeyName(int(raw - vkF1 + 1)))
		return ev
	}

	var r rune
	switch {
	case raw >= 'A' && raw <= 'Z':
		r = rune(raw) + ('a' - 'A')
	case raw >= '0' && raw <= '9':
		r = rune(raw)
	}
	if r != 0 {
		ev.Key = keyspec.Char(r)
		ev.Char = r
		ev.HasChar = true
		return ev
	}

	ev.Key = keyspec.VirtualCode(int(raw))
	return ev
}
