package keyspec

// namedKeys lists the symbolic key names accepted in macro files and
// produced by the OS listener for non-character keys.
var namedKeys = map[string]struct{}{
	"alt": {}, "alt_l": {}, "alt_r": {}, "alt_gr": {},
	"backspace": {}, "caps_lock": {}, "cmd": {}, "cmd_l": {}, "cmd_r": {},
	"ctrl": {}, "ctrl_l": {}, "ctrl_r": {}, "delete": {}, "down": {},
	"end": {}, "enter": {}, "esc": {}, "home": {}, "insert": {},
	"left": {}, "menu": {}, "num_lock": {}, "page_down": {}, "page_up": {},
	"pause": {}, "print_screen": {}, "right": {}, "scroll_lock": {},
	"shift": {}, "shift_l": {}, "shift_r": {}, "space": {}, "tab": {}, "up": {},
	"media_play_pause": {}, "media_volume_mute": {}, "media_volume_down": {},
	"media_volume_up": {}, "media_previous": {}, "media_next": {},
	"f1": {}, "f2": {}, "f3": {}, "f4": {}, "f5": {}, "f6": {}, "f7": {},
	"f8": {}, "f9": {}, "f10": {}, "f11": {}, "f12": {}, "f13": {},
	"f14": {}, "f15": {}, "f16": {}, "f17": {}, "f18": {}, "f19": {}, "f20": {},
}

var aliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"del":      "delete",
	"pgup":     "page_up",
	"pgdn":     "page_down",
	"pageup":   "page_up",
	"pagedown": "page_down",
	"control":  "ctrl",
	"super":    "cmd",
	"win":      "cmd",
}

// IsKnownName reports whether name is a recognized symbolic key name.
func IsKnownName(name string) bool {
	_, ok := namedKeys[name]
	return ok
}
