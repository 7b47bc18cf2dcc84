package engine

import "github.com/TanaroSch/macro-manager/internal/keyspec"

// Match returns the index of the hotkey the event selects.
//
// Three scans run over every hotkey in order: by virtual-key code, by
// literal character, and by raw equality with ev.Key. Each successful scan
// overrides the result of the previous ones, and within a scan a later index
// overrides an earlier one, so the last successful check wins. Unbound
// hotkeys never match.
func Match(ev KeyEvent, hotkeys []keyspec.KeySpec) (int, bool) {
	found := -1

	if ev.HasVirtual {
		want := keyspec.VirtualCode(ev.VirtualCode)
		for i, hk := range hotkeys {
			if hk == want {
				found = i
			}
		}
	}

	if ev.HasChar {
		want := keyspec.Char(ev.Char)
		for i, hk := range hotkeys {
			if hk == want {
				found = i
			}
		}
	}

	if !ev.Key.IsZero() {
		for i, hk := range hotkeys {
			if hk == ev.Key {
				found = i
			}
		}
	}

	return found, found >= 0
}
