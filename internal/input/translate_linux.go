//go:build linux

package input

import (
	"github.com/TanaroSch/macro-manager/internal/engine"
	"github.com/TanaroSch/macro-manager/internal/keyspec"
)

// On X11 the hook reports key syms as raw codes. Latin-1 key syms equal
// their code points.
var namedKeySyms = map[uint16]string{
	0x0020: "space",
	0xff08: "backspace",
	0xff09: "tab",
	0xff0d: "enter",
	0xff13: "pause",
	0xff14: "scroll_lock",
	0xff1b: "esc",
	0xff50: "home",
	0xff51: "left",
	0xff52: "up",
	0xff53: "right",
	0xff54: "down",
	0xff55: "page_up",
	0xff56: "page_down",
	0xff57: "end",
	0xff61: "print_screen",
	0xff63: "insert",
	0xff67: "menu",
	0xff7f: "num_lock",
	0xffe1: "shift_l",
	0xffe2: "shift_r",
	0xffe3: "ctrl_l",
	0xffe4: "ctrl_r",
	0xffe5: "caps_lock",
	0xffe9: "alt_l",
	0xffea: "alt_r",
	0xffeb: "cmd_l",
	0xffec: "cmd_r",
	0xfe03: "alt_gr",
	0xffff: "delete",
}

const (
	keySymF1  = 0xffbe
	keySymF20 = 0xffd1
)

// translate converts an X11 key sym into an engine event.
func translate(raw uint16) engine.KeyEvent {
	ev := engine.KeyEvent{VirtualCode: int(raw), HasVirtual: true}

	if name, ok := namedKeySyms[raw]; ok {
		ev.Key = keyspec.Named(name)
		return ev
	}
	if raw >= keySymF1 && raw <= keySymF20 {
		ev.Key = keyspec.Named(functionKeyName(int(raw - keySymF1 + 1)))
		return ev
	}
	if (raw > 0x20 && raw <= 0x7e) || (raw >= 0xa0 && raw <= 0xff) {
		r := rune(raw)
		ev.Key = keyspec.Char(r)
		ev.Char = r
		ev.HasChar = true
		return ev
	}

	ev.Key = keyspec.VirtualCode(int(raw))
	return ev
}
